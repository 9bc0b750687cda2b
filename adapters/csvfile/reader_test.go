package csvfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rwescore/domain/core"
	"rwescore/domain/tabular"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadBasicFile(t *testing.T) {
	path := writeCSV(t, "id,name,score\n1,alice,0.9\n2,bob,0.7\n")

	ds, err := NewReader().Read(path)
	require.NoError(t, err)

	assert.Equal(t, 2, ds.N())
	assert.ElementsMatch(t, []string{"id", "name", "score"}, ds.Columns())

	name, ok := tabular.Lookup(ds.Rows()[0], "name").String()
	assert.True(t, ok)
	assert.Equal(t, "alice", name)
}

func TestReadEmptyFieldsBecomeNull(t *testing.T) {
	path := writeCSV(t, "id,name\n1,\n2,bob\n")

	ds, err := NewReader().Read(path)
	require.NoError(t, err)

	cell := tabular.Lookup(ds.Rows()[0], "name")
	assert.True(t, cell.Present)
	assert.True(t, cell.Null())
	assert.InDelta(t, 0.5, ds.NonNullFraction("name"), 1e-9)
}

func TestReadShortRecordsPadWithNulls(t *testing.T) {
	path := writeCSV(t, "id,name,extra\n1,alice\n")

	ds, err := NewReader().Read(path)
	require.NoError(t, err)

	cell := tabular.Lookup(ds.Rows()[0], "extra")
	assert.True(t, cell.Present)
	assert.True(t, cell.Null())
}

func TestReadHeaderOnlyFile(t *testing.T) {
	path := writeCSV(t, "id,name\n")

	ds, err := NewReader().Read(path)
	require.NoError(t, err)
	assert.True(t, ds.IsEmpty())
}

func TestReadMissingFile(t *testing.T) {
	_, err := NewReader().Read(filepath.Join(t.TempDir(), "nope.csv"))
	assert.True(t, core.IsNotFoundError(err))
}

func TestReadEmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	_, err := NewReader().Read(path)
	assert.True(t, core.IsInputError(err))
}

func TestReadBlankHeader(t *testing.T) {
	path := writeCSV(t, ",,\n1,2,3\n")

	_, err := NewReader().Read(path)
	assert.True(t, core.IsInputError(err))
}

func TestReadCustomDelimiter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.tsv")
	require.NoError(t, os.WriteFile(path, []byte("id\tname\n1\talice\n"), 0o644))

	ds, err := (&Reader{Comma: '\t'}).Read(path)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"id", "name"}, ds.Columns())
}

func TestReadFromStream(t *testing.T) {
	ds, err := NewReader().ReadFrom(strings.NewReader("a,b\n1,2\n"), "inline")
	require.NoError(t, err)
	assert.Equal(t, 1, ds.N())
}
