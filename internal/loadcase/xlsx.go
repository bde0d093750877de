package loadcase

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadLoadsXLSX reads loads from the first sheet of a spreadsheet.
//
// Each row is: kind, a, b, value, case
//
//	point   a = position           value = force
//	udl     a = start,  b = end    value = intensity
//	moment  a = position           value = moment
//
// Rows with an empty first cell and a header row starting with "kind" are skipped.
func ReadLoadsXLSX(r io.Reader) (Loads, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Loads{}, fmt.Errorf("invalid spreadsheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Loads{}, err
	}

	var loads Loads
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		kind := strings.ToLower(strings.TrimSpace(row[0]))
		if kind == "" || kind == "kind" {
			continue
		}
		if err := parseLoadRow(&loads, kind, row); err != nil {
			return Loads{}, invalid("%s row %d: %v", sheet, i+1, err)
		}
	}
	return loads, nil
}

func parseLoadRow(loads *Loads, kind string, row []string) error {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	num := func(i int, name string) (float64, error) {
		v, err := strconv.ParseFloat(cell(i), 64)
		if err != nil {
			return 0, fmt.Errorf("bad %s %q", name, cell(i))
		}
		return v, nil
	}

	a, err := num(1, "position")
	if err != nil {
		return err
	}
	value, err := num(3, "value")
	if err != nil {
		return err
	}
	c := cell(4)

	switch kind {
	case "point", "p":
		loads.PointLoads = append(loads.PointLoads, PointLoadSpec{Position: a, Magnitude: value, Case: c})
	case "udl", "distributed", "w":
		b, err := num(2, "end")
		if err != nil {
			return err
		}
		loads.DistributedLoads = append(loads.DistributedLoads, DistributedLoadSpec{Start: a, End: b, Intensity: value, Case: c})
	case "moment", "m":
		loads.Moments = append(loads.Moments, MomentSpec{Position: a, Magnitude: value, Case: c})
	default:
		return fmt.Errorf("unknown load kind %q", kind)
	}
	return nil
}
