package porkchop

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/soniakeys/meeus/v3/julian"
)

const dateFormat = "2006-Jan-02"

// WriteContour writes one metric as a contour matrix: a % commented header, then one line per
// departure epoch with one comma terminated value per arrival epoch.
func WriteContour(w io.Writer, header string, numDeparture, numArrival int, values []float64) error {
	if len(values) != numDeparture*numArrival {
		return fmt.Errorf("%w: %d values for a %dx%d grid", ErrShape, len(values), numDeparture, numArrival)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%% %s\n%%departure epochs as new lines, arrival epochs as new columns", header)
	for i := 0; i < numDeparture; i++ {
		bw.WriteString("\n")
		for _, v := range values[i*numArrival : (i+1)*numArrival] {
			fmt.Fprintf(bw, "%f,", v)
		}
	}
	bw.WriteString("\n")
	return bw.Flush()
}

// writeDates writes the first epochs and the grid dimensions.
func writeDates(w io.Writer, header string, req Request) error {
	dep, arr := "", ""
	if req.Departure.Len() > 0 {
		dep = julian.JDToTime(req.Departure.Epochs[0]).Format(dateFormat)
	}
	if req.Arrival.Len() > 0 {
		arr = julian.JDToTime(req.Arrival.Epochs[0]).Format(dateFormat)
	}
	_, err := fmt.Fprintf(w, "%% %s\n%%departure: \"%s\"\n%%arrival: \"%s\"\n%d,%d\n%d,%d\n", header, dep, arr, 1, req.Departure.Len(), 1, req.Arrival.Len())
	return err
}

// Export writes the contour-<prefix>-{c3,dv1,totaldv,tof,dates}.dat files into dir.
func Export(dir, prefix string, req Request, res *Result) error {
	files := []struct {
		name   string
		values []float64
	}{
		{"c3", res.C3},
		{"dv1", res.DepartureDV},
		{"totaldv", res.TotalDV},
		{"tof", res.TOFDays(req)},
		{"dates", nil},
	}
	for _, file := range files {
		f, err := os.Create(filepath.Join(dir, fmt.Sprintf("contour-%s-%s.dat", prefix, file.name)))
		if err != nil {
			return err
		}
		header := fmt.Sprintf("%s %s", prefix, file.name)
		if file.values == nil {
			err = writeDates(f, header, req)
		} else {
			err = WriteContour(f, header, res.NumDeparture, res.NumArrival, file.values)
		}
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("writing %s: %w", f.Name(), err)
		}
	}
	return nil
}

// WriteCSV writes one record per cell: departure JD, arrival JD, time of flight in days, c3,
// departure Δv and total Δv.
func WriteCSV(w io.Writer, req Request, res *Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"departure_jd", "arrival_jd", "tof_days", "c3", "dv1", "total_dv"}); err != nil {
		return err
	}
	format := func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	for i := 0; i < res.NumDeparture; i++ {
		dep := req.Departure.Epochs[i]
		for j := 0; j < res.NumArrival; j++ {
			arr := req.Arrival.Epochs[j]
			c := res.At(i, j)
			if err := cw.Write([]string{format(dep), format(arr), format(arr - dep), format(c.C3), format(c.DepartureDV), format(c.TotalDV)}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
