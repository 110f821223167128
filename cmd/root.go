package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/exprify/config"
	"github.com/gnoswap-labs/exprify/formatter"
)

// querySource names the query in rendered errors.
const querySource = "query"

// errSilentExit makes the process exit with status 1 after the command has
// already written everything the user needs to see.
var errSilentExit = errors.New("exit status 1")

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfgFile string
	verbose bool
	noColor bool

	logger *zap.Logger
	config config.Config
}

// NewRootCmd builds the exprify command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop(), config: config.Default()}

	rootCmd := &cobra.Command{
		Use:           "exprify",
		Short:         "exprify - parse search expressions and turn them into queries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", config.DefaultPath, "Path to the configuration file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(a.newInitCmd())
	rootCmd.AddCommand(a.newParseCmd())
	rootCmd.AddCommand(a.newSQLCmd())
	rootCmd.AddCommand(a.newMatchCmd())
	rootCmd.AddCommand(a.newGrepCmd())

	return rootCmd
}

// Execute runs the command line and renders any error that the failing
// command did not already report.
func Execute() error {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errSilentExit) {
		fmt.Fprint(rootCmd.ErrOrStderr(), formatter.FormatError(querySource, "", err))
	}
	return err
}

func (a *app) setup() error {
	logger, err := newLogger(a.verbose)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	a.logger = logger

	conf, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("loading %s: %w", a.cfgFile, err)
	}
	a.config = conf
	a.logger.Debug("Loaded configuration", zap.String("path", a.cfgFile), zap.String("name", conf.Name))

	if a.noColor || !conf.Output.Color {
		color.NoColor = true
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// reportQueryError renders err against the query that produced it and
// returns errSilentExit so Execute does not print it a second time.
func (a *app) reportQueryError(cmd *cobra.Command, query string, err error) error {
	a.logger.Debug("Query failed", zap.String("query", query), zap.Error(err))
	fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatError(querySource, query, err))
	return errSilentExit
}

// queryFromArgs joins positional arguments so unquoted shell words form one
// query.
func queryFromArgs(args []string) string {
	return strings.Join(args, " ")
}
