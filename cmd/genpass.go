package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"silvertiger.com/go/rcli/passgen"
)

// NewGenpassCmd returns the `genpass` command. The password goes to stdout and
// its estimated strength to stderr.
func NewGenpassCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genpass",
		Short: "Generate a random password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := bindFlags(v, cmd)
			if err != nil {
				return err
			}
			password, err := passgen.Generate(passgen.Options{
				Length:   s.Int("length"),
				NoUpper:  s.Bool("no-upper"),
				NoLower:  s.Bool("no-lower"),
				NoNum:    s.Bool("no-num"),
				NoSymbol: s.Bool("no-symbol"),
			}, nil)
			if err != nil {
				return err
			}

			if err := writeOutput(cmd, stdio, password); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.ErrOrStderr(), "Estimated strength: %d\n", passgen.Strength(password))
			return err
		},
	}
	cmd.Flags().IntP("length", "l", passgen.DefaultLength, "Password length")
	cmd.Flags().Bool("no-upper", false, "Leave out uppercase letters")
	cmd.Flags().Bool("no-lower", false, "Leave out lowercase letters")
	cmd.Flags().Bool("no-num", false, "Leave out digits")
	cmd.Flags().Bool("no-symbol", false, "Leave out symbols")
	return cmd
}
