package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	application "github.com/rocketscienceinc/tictactoe-cli/internal"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
)

const version = "v0.1.0"

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe for two players in the terminal",
		Long: heredoc.Doc(`
			Play tic-tac-toe for two players sharing one terminal.

			Player X moves first. On each turn enter the row and then the
			column of the cell to mark, one number (0-2) per line. The game
			ends when a player completes a row, a column or a diagonal, or
			when the board is full.
		`),
		Example: heredoc.Doc(`
			$ tictactoe
			$ tictactoe --color never
			$ TICTACTOE_LOG_LEVEL=debug tictactoe 2>game.log
		`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: run,
	}

	root.Flags().StringP("config", "c", "", "Path to the config file (default ./config.yml or $XDG_CONFIG_HOME/tictactoe/config.yml)")
	root.Flags().String("log-level", "", "Log level: debug, info, warn or error")
	root.Flags().String("color", "", "Color the marks: auto, always or never")

	root.SetVersionTemplate(version + "\n")
	root.Version = version

	return root
}

func run(cmd *cobra.Command, _ []string) error {
	conf, err := initConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := initLogger(cmd.ErrOrStderr(), conf)
	if err != nil {
		return err
	}

	return application.RunApp(logger, conf, cmd.InOrStdin(), cmd.OutOrStdout())
}

// initialize config, flags take precedence over the file and the environment.
func initConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to read config flag: %w", err)
	}

	conf, err := config.Load(config.ResolvePath(path))
	if err != nil {
		return nil, err
	}

	if err = stringFlag(cmd.Flags(), "log-level", &conf.LogLevel); err != nil {
		return nil, err
	}

	if err = stringFlag(cmd.Flags(), "color", &conf.Color); err != nil {
		return nil, err
	}

	if err = conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

// stringFlag - copies the flag value into target only when the flag was set on the command line.
func stringFlag(flags *pflag.FlagSet, name string, target *string) error {
	if !flags.Changed(name) {
		return nil
	}

	value, err := flags.GetString(name)
	if err != nil {
		return fmt.Errorf("failed to read %s flag: %w", name, err)
	}

	*target = value

	return nil
}

// initialize logger.
func initLogger(w io.Writer, conf *config.Config) (*slog.Logger, error) {
	level, err := conf.SlogLevel()
	if err != nil {
		return nil, err
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})), nil
}
