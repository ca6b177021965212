package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const stdio = "-"

// ErrInvalidInput is returned when --input is neither "-" nor an existing file
var ErrInvalidInput = errors.New("input must be - or an existing file")

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// readInput returns the trimmed content of path, or of stdin for "-"
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch {
	case path == stdio:
		log.Debug().Msg("Reading input from stdin")
		data, err = io.ReadAll(cmd.InOrStdin())
	case fileExists(path):
		log.Debug().Str("path", path).Msg("Reading input from file")
		data, err = os.ReadFile(path)
	default:
		return nil, errors.Wrapf(ErrInvalidInput, "%q", path)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read input")
	}
	return bytes.TrimSpace(data), nil
}

// readContent resolves a key or signature argument: the trimmed file content
// when value names an existing file, else the literal value.
func readContent(name, value string) (string, error) {
	if !fileExists(value) {
		log.Debug().Str("arg", name).Msg("Using literal value")
		return strings.TrimSpace(value), nil
	}
	log.Debug().Str("arg", name).Str("path", value).Msg("Reading value from file")
	data, err := os.ReadFile(value)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", name)
	}
	return strings.TrimSpace(string(data)), nil
}

// writeOutput prints content to stdout for "-" or writes it to path
func writeOutput(cmd *cobra.Command, path, content string) error {
	if path == stdio {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), content)
		return err
	}
	log.Debug().Str("path", path).Msg("Writing output to file")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
