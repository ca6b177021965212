package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"silvertiger.com/go/rcli/b64"
)

// NewBase64Cmd returns the `base64` command with encode and decode
func NewBase64Cmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "base64",
		Short: "Encode or decode base64",
	}
	cmd.AddCommand(newBase64EncodeCmd(v), newBase64DecodeCmd(v))
	return cmd
}

func addBase64Flags(cmd *cobra.Command) {
	addInputFlag(cmd)
	cmd.Flags().String("format", b64.Standard.String(), "Alphabet (standard, urlsafe)")
}

func newBase64EncodeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode input as base64",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := bindFlags(v, cmd)
			if err != nil {
				return err
			}
			format, err := b64.ParseFormat(s.String("format"))
			if err != nil {
				return err
			}
			input, err := readInput(cmd, s.String("input"))
			if err != nil {
				return err
			}
			return writeOutput(cmd, stdio, b64.Encode(input, format))
		},
	}
	addBase64Flags(cmd)
	return cmd
}

func newBase64DecodeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode base64 input to text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := bindFlags(v, cmd)
			if err != nil {
				return err
			}
			format, err := b64.ParseFormat(s.String("format"))
			if err != nil {
				return err
			}
			input, err := readInput(cmd, s.String("input"))
			if err != nil {
				return err
			}
			text, err := b64.Decode(string(input), format)
			if err != nil {
				return err
			}
			return writeOutput(cmd, stdio, text)
		},
	}
	addBase64Flags(cmd)
	return cmd
}
