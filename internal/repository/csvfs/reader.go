package csvfs

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/infectieradar-dashboard/internal/pkg/errors"
)

const utf8BOM = "\ufeff"

// table - прочитанный CSV: индекс колонок по имени и строки данных
type table struct {
	path    string
	columns map[string]int
	records [][]string
}

// readTable reads a CSV file with a header row. Header names are matched
// case-insensitively after trimming; every required column must be present.
func readTable(path string, required ...string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.ErrDataFileUnreadable.
			WithDetails(map[string]interface{}{"path": path}).
			Wrap(err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.ErrDataColumnMissing.
				WithDetails(map[string]interface{}{"path": path, "column": strings.Join(required, ",")}).
				Wrap(fmt.Errorf("empty file"))
		}
		return nil, errors.ErrDataMalformed.
			WithDetails(map[string]interface{}{"path": path, "line": 1}).
			Wrap(err)
	}

	t := &table{path: path, columns: make(map[string]int, len(header))}
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		key := strings.ToLower(strings.TrimSpace(name))
		if _, dup := t.columns[key]; !dup {
			t.columns[key] = i
		}
	}

	for _, col := range required {
		if !t.has(col) {
			return nil, errors.ErrDataColumnMissing.WithDetails(map[string]interface{}{
				"path":   path,
				"column": col,
			})
		}
	}

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line, _ := r.FieldPos(0)
			return nil, errors.ErrDataMalformed.
				WithDetails(map[string]interface{}{"path": path, "line": line}).
				Wrap(err)
		}
		if blank(rec) {
			continue
		}
		t.records = append(t.records, rec)
	}

	return t, nil
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func (t *table) has(col string) bool {
	_, ok := t.columns[col]
	return ok
}

// str returns the trimmed cell of column col in row i, or "" if the row is short.
func (t *table) str(i int, col string) string {
	idx, ok := t.columns[col]
	if !ok {
		return ""
	}
	rec := t.records[i]
	if idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

func (t *table) number(i int, col string) (float64, error) {
	raw := t.str(i, col)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, t.malformed(i, col, raw, err)
	}
	// ParseFloat принимает NaN и Inf, в данных это битая ячейка
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, t.malformed(i, col, raw, fmt.Errorf("non-finite number"))
	}
	return v, nil
}

func (t *table) integer(i int, col string) (int, error) {
	raw := t.str(i, col)
	v, err := strconv.Atoi(raw)
	if err != nil {
		// integer counts are sometimes exported as 12.0
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, t.malformed(i, col, raw, err)
		}
		v = int(f)
	}
	return v, nil
}

// weekLabel accepts integer weeks written as floats ("27.0") and keeps other labels as is.
func (t *table) weekLabel(i int, col string) string {
	raw := t.str(i, col)
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f == float64(int(f)) {
		return strconv.Itoa(int(f))
	}
	return raw
}

func (t *table) malformed(i int, col, raw string, cause error) error {
	return errors.ErrDataMalformed.
		WithDetails(map[string]interface{}{
			"path":   t.path,
			"row":    i + 1,
			"column": col,
			"value":  raw,
		}).
		Wrap(cause)
}

func (t *table) invalid(i int, cause error) error {
	return errors.ErrDataMalformed.
		WithDetails(map[string]interface{}{
			"path": t.path,
			"row":  i + 1,
		}).
		Wrap(cause)
}
