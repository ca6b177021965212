package cmd

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"silvertiger.com/go/rcli/token"
)

const defaultJWTSecret = "secret"

// NewJWTCmd returns the `jwt` command with sign and verify
func NewJWTCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Sign or verify a JWT",
	}
	cmd.AddCommand(newJWTSignCmd(v), newJWTVerifyCmd(v))
	return cmd
}

func newJWTSignCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a JWT with HS256",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := bindFlags(v, cmd)
			if err != nil {
				return err
			}
			expiry, err := token.ParseTimeDelta(s.String("exp"))
			if err != nil {
				return err
			}
			secret, err := readContent("key", s.String("key"))
			if err != nil {
				return err
			}

			signed, err := token.Sign(secret, token.Claims{
				Audience: s.String("aud"),
				Issuer:   s.String("iss"),
				Subject:  s.String("sub"),
				Expiry:   expiry,
			})
			if err != nil {
				return err
			}
			return writeOutput(cmd, stdio, signed)
		},
	}
	cmd.Flags().StringP("key", "k", defaultJWTSecret, "HMAC secret, or a file containing it")
	cmd.Flags().StringP("exp", "e", "1d", "Lifetime: <n>h, <n>d, <n>w or <n>m")
	cmd.Flags().StringP("aud", "a", "", "Audience")
	cmd.Flags().StringP("iss", "s", "", "Issuer")
	cmd.Flags().String("sub", "", "Subject")
	return cmd
}

func newJWTVerifyCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a JWT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := bindFlags(v, cmd)
			if err != nil {
				return err
			}
			if s.String("token") == "" {
				return errors.New("--token is required")
			}
			raw, err := readContent("token", s.String("token"))
			if err != nil {
				return err
			}
			secret, err := readContent("key", s.String("key"))
			if err != nil {
				return err
			}

			_, err = token.Verify(secret, raw, s.String("aud"))
			if err != nil {
				log.Debug().Err(err).Msg("Token rejected")
			}
			return writeOutput(cmd, stdio, strconv.FormatBool(err == nil))
		},
	}
	cmd.Flags().StringP("key", "k", defaultJWTSecret, "HMAC secret, or a file containing it")
	cmd.Flags().StringP("token", "t", "", "Token, or a file containing it")
	cmd.Flags().StringP("aud", "a", "", "Expected audience")
	return cmd
}
