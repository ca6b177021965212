package csvconv

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sample = "name,age,city\nAlice,30,Paris\nBob,25,Tokyo\n"

func writeSample(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadWithHeader(t *testing.T) {
	records, err := Read(strings.NewReader(sample), ',', false)
	require.NoError(t, err)
	require.Equal(t, []string{"name", "age", "city"}, records.Headers)
	require.Len(t, records.Rows, 2)
	require.Equal(t, []string{"Bob", "25", "Tokyo"}, records.Rows[1])
}

func TestReadWithoutHeader(t *testing.T) {
	records, err := Read(strings.NewReader(sample), ',', true)
	require.NoError(t, err)
	require.Nil(t, records.Headers)
	require.Len(t, records.Rows, 3)
}

func TestReadDelimiter(t *testing.T) {
	records, err := Read(strings.NewReader("a;b\n1;2\n"), ';', false)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, records.Headers)
	require.Equal(t, [][]string{{"1", "2"}}, records.Rows)
}

func TestConvertRaw(t *testing.T) {
	records, err := Read(strings.NewReader(sample), ',', false)
	require.NoError(t, err)

	out, err := Convert(records, Raw)
	require.NoError(t, err)
	require.Equal(t, strings.TrimSuffix(sample, "\n"), out)
}

func TestConvertJSON(t *testing.T) {
	records, err := Read(strings.NewReader(sample), ',', false)
	require.NoError(t, err)

	out, err := Convert(records, JSON)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "[\n  {\n"))

	var got []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, []map[string]string{
		{"name": "Alice", "age": "30", "city": "Paris"},
		{"name": "Bob", "age": "25", "city": "Tokyo"},
	}, got)
}

func TestConvertJSONWithoutHeader(t *testing.T) {
	records, err := Read(strings.NewReader("1,2\n3,4\n"), ',', true)
	require.NoError(t, err)

	out, err := Convert(records, JSON)
	require.NoError(t, err)

	var got [][]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, [][]string{{"1", "2"}, {"3", "4"}}, got)
}

func TestConvertYAML(t *testing.T) {
	records, err := Read(strings.NewReader(sample), ',', false)
	require.NoError(t, err)

	out, err := Convert(records, YAML)
	require.NoError(t, err)

	var got []map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	require.Equal(t, "Paris", got[0]["city"])
}

func TestConvertTOML(t *testing.T) {
	records, err := Read(strings.NewReader(sample), ',', false)
	require.NoError(t, err)

	out, err := Convert(records, TOML)
	require.NoError(t, err)
	require.Contains(t, out, "[[items]]")

	var doc tableDoc
	_, err = toml.Decode(out, &doc)
	require.NoError(t, err)
	require.Len(t, doc.Items, 2)
	require.Equal(t, "Tokyo", doc.Items[1]["city"])

	records, err = Read(strings.NewReader("1,2\n"), ',', true)
	require.NoError(t, err)
	out, err = Convert(records, TOML)
	require.NoError(t, err)

	var arr arrayDoc
	_, err = toml.Decode(out, &arr)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"1", "2"}}, arr.Items)
}

func TestReadFile(t *testing.T) {
	path := writeSample(t, "people.csv", sample)
	records, err := ReadFile(path, ',', false)
	require.NoError(t, err)
	require.Len(t, records.Rows, 2)

	txt := writeSample(t, "people.txt", sample)
	_, err = ReadFile(txt, ',', false)
	require.True(t, errors.Is(err, ErrInvalidInput))

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.csv"), ',', false)
	require.True(t, errors.Is(err, ErrInvalidInput))
}

func TestParseOutputFormat(t *testing.T) {
	for _, name := range []string{"raw", "JSON", "yaml", "Toml"} {
		f, err := ParseOutputFormat(name)
		require.NoError(t, err)
		require.Equal(t, strings.ToLower(name), f.String())
	}

	_, err := ParseOutputFormat("xml")
	require.True(t, errors.Is(err, ErrUnsupportedFormat))
}
