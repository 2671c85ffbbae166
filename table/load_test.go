package table

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRectangular(t *testing.T) {
	tbl, err := Load(writeFile(t, "1,2,3\n4,5,6\n"))
	require.NoError(t, err)

	r, c := tbl.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, tbl.Rows())
}

func TestReadFormats(t *testing.T) {
	in := "# t=0\n0.5, -1e-3 ,2\n\n  3.25,4,+5\n"
	tbl, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.5, -1e-3, 2}, {3.25, 4, 5}}, tbl.Rows())
}

func TestReadSkipsWhitespaceLines(t *testing.T) {
	for _, in := range []string{
		"1,2,3\n   \n4,5,6\n",
		"\t\n1,2,3\n4,5,6\n  \n",
	} {
		tbl, err := Read(strings.NewReader(in))
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, tbl.Rows(), "input %q", in)
	}
}

func TestReadRaggedRows(t *testing.T) {
	_, err := Read(strings.NewReader("1,2,3\n4,5\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse), "err = %v", err)
	assert.False(t, errors.Is(err, ErrFileAccess))
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadNonNumeric(t *testing.T) {
	_, err := Read(strings.NewReader("1,2,3\n4,x,6\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse), "err = %v", err)
	assert.Contains(t, err.Error(), "field 2")
}

func TestReadEmptyField(t *testing.T) {
	_, err := Read(strings.NewReader("1,,3\n"))
	assert.True(t, errors.Is(err, ErrParse), "err = %v", err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileAccess), "err = %v", err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "err = %v", err)
	assert.False(t, errors.Is(err, ErrParse))
}

func TestLoadRaggedFileWrapsPath(t *testing.T) {
	path := writeFile(t, "1,2,3\n4,5\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
	assert.Contains(t, err.Error(), path)
}

func TestLoadIdempotent(t *testing.T) {
	path := writeFile(t, "1,2\n3,4\n5,6\n")
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	a, err := Load(path)
	require.NoError(t, err)
	b, err := Load(path)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestLoadEmptyFile(t *testing.T) {
	tbl, err := Load(writeFile(t, "# nothing yet\n\n"))
	require.NoError(t, err)
	assert.True(t, tbl.Empty())
	r, c := tbl.Dims()
	assert.Zero(t, r)
	assert.Zero(t, c)
	assert.Nil(t, tbl.Matrix())
	assert.Empty(t, tbl.Rows())
}
