// Package csvconv reads CSV files and renders them as raw CSV, JSON, YAML or TOML.
package csvconv

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// OutputFormat selects the rendering
type OutputFormat int

const (
	// Raw re-joins the rows as comma-separated lines
	Raw OutputFormat = iota
	// JSON renders an array indented by two spaces
	JSON
	// YAML renders a sequence
	YAML
	// TOML renders the rows under an items array
	TOML
)

var (
	// ErrInvalidInput is returned when the input path is not an existing .csv file
	ErrInvalidInput = errors.New("input must be an existing .csv file")
	// ErrUnsupportedFormat is returned for an unknown output format name
	ErrUnsupportedFormat = errors.New("unsupported csv output format")
)

// ParseOutputFormat maps raw/json/yaml/toml (any case) to an OutputFormat
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raw":
		return Raw, nil
	case "json":
		return JSON, nil
	case "yaml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}
	return 0, errors.Wrapf(ErrUnsupportedFormat, "%q", s)
}

func (f OutputFormat) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	}
	return "raw"
}

// Records holds parsed rows. Headers is nil when the file was read without a header row.
type Records struct {
	Headers []string
	Rows    [][]string
}

// CheckInput verifies path names an existing file with a .csv extension
func CheckInput(path string) error {
	if !strings.HasSuffix(path, ".csv") {
		return errors.Wrapf(ErrInvalidInput, "%q", path)
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return errors.Wrapf(ErrInvalidInput, "%q", path)
	}
	return nil
}

// ReadFile opens path and parses it with Read
func ReadFile(path string, delimiter rune, noHeader bool) (*Records, error) {
	if err := CheckInput(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open csv")
	}
	defer f.Close()

	return Read(f, delimiter, noHeader)
}

// Read parses CSV from r. Unless noHeader is set, the first row becomes Headers.
func Read(r io.Reader, delimiter rune, noHeader bool) (*Records, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse csv")
	}

	records := &Records{Rows: rows}
	if !noHeader && len(rows) > 0 {
		records.Headers = rows[0]
		records.Rows = rows[1:]
	}
	return records, nil
}

// objects zips each row with the headers. Extra cells beyond the header count are dropped.
func (r *Records) objects() []map[string]string {
	out := make([]map[string]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		obj := make(map[string]string, len(r.Headers))
		for i, h := range r.Headers {
			if i < len(row) {
				obj[h] = row[i]
			}
		}
		out = append(out, obj)
	}
	return out
}

func (r *Records) items() interface{} {
	if r.Headers == nil {
		rows := r.Rows
		if rows == nil {
			rows = [][]string{}
		}
		return rows
	}
	return r.objects()
}

type tableDoc struct {
	Items []map[string]string `toml:"items"`
}

type arrayDoc struct {
	Items [][]string `toml:"items"`
}

// Convert renders records in the requested format
func Convert(r *Records, format OutputFormat) (string, error) {
	switch format {
	case Raw:
		lines := make([]string, 0, len(r.Rows)+1)
		if r.Headers != nil {
			lines = append(lines, strings.Join(r.Headers, ","))
		}
		for _, row := range r.Rows {
			lines = append(lines, strings.Join(row, ","))
		}
		return strings.Join(lines, "\n"), nil

	case JSON:
		b, err := json.MarshalIndent(r.items(), "", "  ")
		if err != nil {
			return "", errors.Wrap(err, "failed to marshal json")
		}
		return string(b), nil

	case YAML:
		b, err := yaml.Marshal(r.items())
		if err != nil {
			return "", errors.Wrap(err, "failed to marshal yaml")
		}
		return string(b), nil

	case TOML:
		var doc interface{}
		if r.Headers == nil {
			doc = arrayDoc{Items: r.Rows}
		} else {
			doc = tableDoc{Items: r.objects()}
		}
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return "", errors.Wrap(err, "failed to marshal toml")
		}
		return buf.String(), nil
	}
	return "", errors.Wrapf(ErrUnsupportedFormat, "format %d", int(format))
}
