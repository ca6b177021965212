package cmd

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"silvertiger.com/go/rcli/crypto"
)

// cipherFormat lets `text generate` emit an encryption key alongside the signature formats
const cipherFormat = "chacha20poly1305"

// NewTextCmd returns the `text` command tree: sign, verify, generate, encrypt, decrypt.
func NewTextCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Sign, verify, encrypt or decrypt text",
	}
	cmd.AddCommand(
		newTextSignCmd(v),
		newTextVerifyCmd(v),
		newTextGenerateCmd(v),
		newTextEncryptCmd(v),
		newTextDecryptCmd(v),
	)
	return cmd
}

func addInputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", stdio, "Input file, or - for stdin")
}

func addKeyFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "Key as hex, or a file containing it")
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", crypto.FormatBlake3.String(), "Signature format (blake3, ed25519)")
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", stdio, "Output file, or - for stdout")
}

// requireKey resolves --key and fails when it is empty
func requireKey(s *settings) (string, error) {
	value := s.String("key")
	if value == "" {
		return "", errors.New("--key is required")
	}
	return readContent("key", value)
}

func newTextSignCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := bindFlags(v, cmd)
			if err != nil {
				return err
			}
			format, err := crypto.ParseSignatureFormat(s.String("format"))
			if err != nil {
				return err
			}
			key, err := requireKey(s)
			if err != nil {
				return err
			}
			msg, err := readInput(cmd, s.String("input"))
			if err != nil {
				return err
			}

			sig, err := crypto.NewToolkit().Sign(msg, key, format)
			if err != nil {
				return errors.Wrap(err, "failed to sign")
			}
			log.Debug().Str("format", format.String()).Int("bytes", len(msg)).Msg("Signed message")
			return writeOutput(cmd, stdio, sig)
		},
	}
	addInputFlag(cmd)
	addKeyFlag(cmd)
	addFormatFlag(cmd)
	return cmd
}

func newTextVerifyCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signed message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := bindFlags(v, cmd)
			if err != nil {
				return err
			}
			format, err := crypto.ParseSignatureFormat(s.String("format"))
			if err != nil {
				return err
			}
			key, err := requireKey(s)
			if err != nil {
				return err
			}
			if s.String("sig") == "" {
				return errors.New("--sig is required")
			}
			sig, err := readContent("sig", s.String("sig"))
			if err != nil {
				return err
			}
			msg, err := readInput(cmd, s.String("input"))
			if err != nil {
				return err
			}

			ok, err := crypto.NewToolkit().Verify(msg, key, sig, format)
			if err != nil {
				return errors.Wrap(err, "failed to verify")
			}
			return writeOutput(cmd, stdio, strconv.FormatBool(ok))
		},
	}
	addInputFlag(cmd)
	addKeyFlag(cmd)
	addFormatFlag(cmd)
	cmd.Flags().StringP("sig", "s", "", "Signature as hex, or a file containing it")
	return cmd
}

func newTextGenerateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := bindFlags(v, cmd)
			if err != nil {
				return err
			}
			tk := crypto.NewToolkit()

			name := s.String("format")
			if strings.EqualFold(strings.TrimSpace(name), cipherFormat) {
				if s.Bool("json") {
					return errors.New("--json is only supported for signature formats")
				}
				key, err := tk.GenerateCipherKey()
				if err != nil {
					return err
				}
				return writeOutput(cmd, s.String("output"), key)
			}

			format, err := crypto.ParseSignatureFormat(name)
			if err != nil {
				return err
			}
			key, err := tk.GenerateKey(format)
			if err != nil {
				return err
			}
			log.Debug().Str("format", format.String()).Msg("Generated key")

			if !s.Bool("json") {
				return writeOutput(cmd, s.String("output"), key)
			}
			info, err := crypto.DescribeKey(format, key)
			if err != nil {
				return err
			}
			data, err := crypto.SerializeKeyInfo(info)
			if err != nil {
				return err
			}
			return writeOutput(cmd, s.String("output"), string(data))
		},
	}
	addOutputFlag(cmd)
	cmd.Flags().StringP("format", "f", crypto.FormatBlake3.String(), "Key format (blake3, ed25519, chacha20poly1305)")
	cmd.Flags().Bool("json", false, "Emit the key with its format and public half as JSON")
	return cmd
}

func newTextEncryptCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt text with ChaCha20-Poly1305",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := bindFlags(v, cmd)
			if err != nil {
				return err
			}
			key, err := requireKey(s)
			if err != nil {
				return err
			}
			msg, err := readInput(cmd, s.String("input"))
			if err != nil {
				return err
			}

			blob, err := crypto.NewToolkit().Encrypt(msg, key)
			if err != nil {
				return errors.Wrap(err, "failed to encrypt")
			}
			return writeOutput(cmd, s.String("output"), blob)
		},
	}
	addInputFlag(cmd)
	addKeyFlag(cmd)
	addOutputFlag(cmd)
	return cmd
}

func newTextDecryptCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt text produced by encrypt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := bindFlags(v, cmd)
			if err != nil {
				return err
			}
			key, err := requireKey(s)
			if err != nil {
				return err
			}
			blob, err := readInput(cmd, s.String("input"))
			if err != nil {
				return err
			}

			text, err := crypto.NewToolkit().Decrypt(string(blob), key)
			if err != nil {
				return errors.Wrap(err, "failed to decrypt")
			}
			return writeOutput(cmd, s.String("output"), text)
		},
	}
	addInputFlag(cmd)
	addKeyFlag(cmd)
	addOutputFlag(cmd)
	return cmd
}
