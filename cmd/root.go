// Package cmd wires the rcli command tree.
package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "RCLI"

// NewRootCmd returns the rcli root command with every subcommand attached.
// Each call gets its own viper instance so commands can be built repeatedly in tests.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "rcli",
		Short:         "Text signing, encryption and encoding toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(v, cmd.Root().PersistentFlags()); err != nil {
				return err
			}
			return setupLogging(cmd.ErrOrStderr(), v.GetString("log-level"))
		},
	}

	root.PersistentFlags().String("config", "", "Config file (yaml, toml or json)")
	root.PersistentFlags().String("log-level", zerolog.WarnLevel.String(), "Log level (debug, info, warn, error)")

	root.AddCommand(
		NewTextCmd(v),
		NewBase64Cmd(v),
		NewCSVCmd(v),
		NewGenpassCmd(v),
		NewJWTCmd(v),
	)
	return root
}

// Execute runs the root command against os.Args
func Execute() error {
	return NewRootCmd().Execute()
}

func loadConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlag("log-level", flags.Lookup("log-level")); err != nil {
		return errors.Wrap(err, "failed to bind log level")
	}

	path, err := flags.GetString("config")
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read config %s", path)
	}
	return nil
}

func setupLogging(w io.Writer, level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: !isTerminal(w)}).
		With().Timestamp().Logger()
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// settings reads a command's flags through viper, so a flag left unset on the
// command line falls back to the environment and then the config file.
type settings struct {
	v       *viper.Viper
	section string
}

// bindFlags binds the non-inherited flags of cmd under its command path,
// e.g. "text.sign.format".
func bindFlags(v *viper.Viper, cmd *cobra.Command) (*settings, error) {
	path := strings.Fields(cmd.CommandPath())
	s := &settings{v: v, section: strings.Join(path[1:], ".")}

	var bindErr error
	cmd.NonInheritedFlags().VisitAll(func(f *pflag.Flag) {
		if bindErr != nil {
			return
		}
		if err := v.BindPFlag(s.key(f.Name), f); err != nil {
			bindErr = errors.Wrapf(err, "failed to bind flag %s", f.Name)
		}
	})
	return s, bindErr
}

func (s *settings) key(name string) string {
	return s.section + "." + name
}

func (s *settings) String(name string) string {
	return s.v.GetString(s.key(name))
}

func (s *settings) Bool(name string) bool {
	return s.v.GetBool(s.key(name))
}

func (s *settings) Int(name string) int {
	return s.v.GetInt(s.key(name))
}
