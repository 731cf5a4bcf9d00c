package terminal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/growth-scorecard/pkg/clock"
	"github.com/de-tools/growth-scorecard/pkg/runtime/terminal/commands"
	"github.com/de-tools/growth-scorecard/pkg/runtime/terminal/export"
	"github.com/de-tools/growth-scorecard/pkg/services/source"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	session  *commands.Session
	flags    commands.Flags
	table    *export.Reporter
	plain    *Reporter
	rootCmd  *cobra.Command
	output   io.Writer
	errWrite io.Writer
}

// Options contain configuration for the CLI
type Options struct {
	Registry source.Registry
	Clock    clock.Clock
	Output   io.Writer
	// ErrOutput receives progress bars and errors; defaults to os.Stderr.
	ErrOutput io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}

	cli := &CLI{
		session: &commands.Session{
			Registry:  opts.Registry,
			Clock:     clock.OrSystem(opts.Clock),
			LogOutput: opts.ErrOutput,
		},
		table:    export.NewReporter(opts.Output),
		plain:    NewReporter(opts.Output),
		output:   opts.Output,
		errWrite: opts.ErrOutput,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// Run executes the command line given by args.
func (cli *CLI) Run(ctx context.Context, args []string) error {
	cli.rootCmd.SetArgs(args)
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) reporter() commands.Reporter {
	if cli.flags.Format == "text" {
		return cli.plain
	}
	return cli.table
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "scorecard",
		Short:         "Growth scorecard: business metrics and recommendations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cli.flags.Format != "table" && cli.flags.Format != "text" {
				return fmt.Errorf("unknown output format %q", cli.flags.Format)
			}
			if err := cli.session.Load(cmd.Context(), cli.flags); err != nil {
				return err
			}
			cmd.SetContext(cli.session.Logger.WithContext(cmd.Context()))
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return cli.session.Close()
		},
	}
	cmd.SetOut(cli.output)
	cmd.SetErr(cli.errWrite)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&cli.flags.ConfigPath, "config", "c", "", "Path to scorecard.yaml")
	flags.StringVar(&cli.flags.Driver, "driver", "", "Record store driver: memory or duckdb")
	flags.StringVar(&cli.flags.DSN, "dsn", "", "Record store data source (the database path for duckdb)")
	flags.StringVar(&cli.flags.PrefsPath, "prefs", "", "Path to the preferences profile file")
	flags.StringVar(&cli.flags.Profile, "profile", "", "Preferences profile")
	flags.StringVar(&cli.flags.Format, "format", "table", "Output format: table or text")

	cmd.AddCommand(commands.NewReportCmd(cli.session, cli.reporter))
	cmd.AddCommand(commands.NewCustomersCmd(cli.session, cli.reporter))
	cmd.AddCommand(commands.NewRecommendationsCmd(cli.session, cli.reporter))
	cmd.AddCommand(commands.NewSeedCmd(cli.session))

	return cmd
}
