package cmd

import (
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"silvertiger.com/go/rcli/csvconv"
)

// NewCSVCmd returns the `csv` command
func NewCSVCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Show CSV, or convert CSV to other formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := bindFlags(v, cmd)
			if err != nil {
				return err
			}
			format, err := csvconv.ParseOutputFormat(s.String("format"))
			if err != nil {
				return err
			}
			delim := s.String("delimiter")
			if utf8.RuneCountInString(delim) != 1 {
				return errors.Errorf("delimiter must be a single character, got %q", delim)
			}
			r, _ := utf8.DecodeRuneInString(delim)

			records, err := csvconv.ReadFile(s.String("input"), r, s.Bool("no-header"))
			if err != nil {
				return err
			}
			log.Debug().Int("rows", len(records.Rows)).Str("format", format.String()).Msg("Parsed csv")

			out, err := csvconv.Convert(records, format)
			if err != nil {
				return err
			}
			return writeOutput(cmd, s.String("output"), out)
		},
	}
	cmd.Flags().StringP("input", "i", "", "Input .csv file")
	cmd.Flags().StringP("output", "o", stdio, "Output file, or - for stdout")
	cmd.Flags().StringP("format", "f", csvconv.Raw.String(), "Output format (raw, json, yaml, toml)")
	cmd.Flags().StringP("delimiter", "d", ",", "Field delimiter")
	cmd.Flags().Bool("no-header", false, "Treat the first row as data")
	return cmd
}
