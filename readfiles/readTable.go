package readfiles

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/io"

	"github.com/notargets/gubser/utils"
)

/*
ReadTable reads a whitespace delimited table of numbers into a matrix, one row per line.
Blank lines and lines starting with '#' are skipped, trailing '#' comments are dropped.
Every row must carry the same number of columns, and every token must parse as a number.
*/
func ReadTable(filename string) (T utils.Matrix, err error) {
	var (
		file   *os.File
		data   []float64
		nr, nc int
	)
	if file, err = os.Open(filename); err != nil {
		err = fmt.Errorf("unable to open table %s: %w", filename, err)
		return
	}
	defer file.Close()
	// gosl panics on read failures and over long lines
	defer func() {
		if r := recover(); r != nil {
			T, err = utils.Matrix{}, fmt.Errorf("unable to read table %s: %v", filename, r)
		}
	}()
	io.ReadLinesFile(file, func(idx int, line string) (stop bool) {
		lineNo := idx + 1
		if ind := strings.IndexByte(line, '#'); ind >= 0 {
			line = line[:ind]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return
		}
		if nc == 0 {
			nc = len(fields)
		} else if len(fields) != nc {
			err = fmt.Errorf("%s:%d: expected %d columns, found %d", filename, lineNo, nc, len(fields))
			return true
		}
		for j, field := range fields {
			var val float64
			if val, err = strconv.ParseFloat(field, 64); err != nil {
				err = fmt.Errorf("%s:%d: column %d: %w", filename, lineNo, j, err)
				return true
			}
			data = append(data, val)
		}
		nr++
		return
	})
	if err != nil {
		return
	}
	if nr == 0 {
		err = fmt.Errorf("table %s contains no data", filename)
		return
	}
	T = utils.NewMatrix(nr, nc, data)
	T.SetReadOnly(filename)
	return
}

// ReadTables reads each file relative to dir, in order, stopping at the first failure
func ReadTables(dir string, files ...string) (Tables []utils.Matrix, err error) {
	Tables = make([]utils.Matrix, len(files))
	for i, f := range files {
		if Tables[i], err = ReadTable(filepath.Join(dir, f)); err != nil {
			return nil, err
		}
	}
	return
}

// RequireColumns checks that T has at least minCols columns
func RequireColumns(T utils.Matrix, minCols int) (err error) {
	_, nc := T.Dims()
	if nc < minCols {
		err = fmt.Errorf("table %s has %d columns, need at least %d", T.Name(), nc, minCols)
	}
	return
}
