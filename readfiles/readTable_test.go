package readfiles

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tableFile = `# x y ed ux
-1.0  0.0   1.5e-1  -0.25
 0.0  1e-8  2.0e-1   0.0

 1.0  0.5   1.5e-1   0.25   # trailing comment
 2.0 -0.0   1.0e-1   0.5
`

func writeTable(t *testing.T, dir, name, contents string) string {
	t.Helper()
	filename := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(filename, []byte(contents), 0o644))
	return filename
}

func TestReadTable(t *testing.T) {
	dir := t.TempDir()
	{ // Comments, blank lines and exponents
		filename := writeTable(t, dir, "table.dat", tableFile)
		T, err := ReadTable(filename)
		require.NoError(t, err)
		nr, nc := T.Dims()
		assert.Equal(t, 4, nr)
		assert.Equal(t, 4, nc)
		assert.Equal(t, []float64{-1, 0, 1, 2}, T.Col(0))
		assert.Equal(t, []float64{-0.25, 0, 0.25, 0.5}, T.Col(3))
		assert.Equal(t, 1.e-8, T.At(1, 1))
		assert.Equal(t, filename, T.Name())
		assert.Panics(t, func() { T.Set(0, 0, 1) })
		assert.NoError(t, RequireColumns(T, 4))
		assert.Error(t, RequireColumns(T, 5))
	}
	{ // Last line without a newline
		T, err := ReadTable(writeTable(t, dir, "nonl.dat", "1 2\n3 4"))
		require.NoError(t, err)
		assert.Equal(t, []float64{2, 4}, T.Col(1))
	}
	{ // Ragged rows
		_, err := ReadTable(writeTable(t, dir, "ragged.dat", "1 2 3\n4 5\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ragged.dat:2")
	}
	{ // Non numeric token, including a text line that leads the table
		_, err := ReadTable(writeTable(t, dir, "bad.dat", "1 2 3\n4 five 6\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad.dat:2: column 1")
		_, err = ReadTable(writeTable(t, dir, "header.dat", "x y z\n1 2 3\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "header.dat:1: column 0")
	}
	{ // Empty
		_, err := ReadTable(writeTable(t, dir, "empty.dat", "# only a header\n\n"))
		assert.Error(t, err)
	}
	{ // Lines too long for the line reader become errors
		long := strings.Repeat("1.0 ", 4096) + "\n"
		_, err := ReadTable(writeTable(t, dir, "long.dat", long))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "long.dat")
	}
}

func TestReadTables(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "a.dat", tableFile)
	writeTable(t, dir, "b.dat", "1 2 3 4\n")

	Tables, err := ReadTables(dir, "a.dat", "b.dat")
	require.NoError(t, err)
	require.Len(t, Tables, 2)
	assert.Equal(t, 4, Tables[0].Rows())
	assert.Equal(t, 1, Tables[1].Rows())
	assert.Equal(t, filepath.Join(dir, "b.dat"), Tables[1].Name())

	_, err = ReadTables(dir, "a.dat", "missing.dat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.dat")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
