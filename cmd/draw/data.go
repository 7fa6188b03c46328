package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/midbel/slices"

	charts "github.com/midbel/chartlayout"
)

func parseTicks(str string) (charts.TickSet, error) {
	if str == "" {
		return nil, nil
	}
	var list charts.TickSet
	for _, s := range strings.Split(str, ",") {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid tick %q: %w", s, err)
		}
		list = append(list, f)
	}
	return list, nil
}

func getIdent(file string) string {
	file = filepath.Base(file)
	for {
		e := filepath.Ext(file)
		if e == "" {
			break
		}
		file = strings.TrimSuffix(file, e)
	}
	return file
}

func readAllSeries(files []string, x, y int) ([]charts.Series, error) {
	var list []charts.Series
	for i, f := range files {
		r, err := os.Open(f)
		if err != nil {
			return nil, err
		}
		values, err := readValues(r, x, y)
		r.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
		list = append(list, charts.Series{
			Label:  getIdent(f),
			Color:  charts.Tableau10.At(i),
			Values: values,
		})
	}
	return list, nil
}

func readSlices(file string, x, y int) ([]charts.Slice, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	values, err := readValues(r, x, y)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	list := make([]charts.Slice, 0, len(values))
	for i, v := range values {
		list = append(list, charts.Slice{
			Label: v.Label,
			Value: v.Value,
			Color: charts.Tableau10.At(i),
		})
	}
	return list, nil
}

// readValues reads label/value pairs from csv rows. The first row is a header
// and is skipped.
func readValues(r io.Reader, x, y int) ([]charts.Value, error) {
	var (
		rs     = csv.NewReader(r)
		values []charts.Value
	)
	rs.FieldsPerRecord = -1
	rows, err := rs.ReadAll()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	for _, row := range slices.Rest(rows) {
		if x >= len(row) || x < 0 || y >= len(row) || y < 0 {
			return nil, fmt.Errorf("invalid label/value index columns given")
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[y]), 64)
		if err != nil {
			return nil, err
		}
		values = append(values, charts.NewValue(v, row[x]))
	}
	return values, nil
}
