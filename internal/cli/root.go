package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/sealsel/sealsel/internal/config"
	"github.com/sealsel/sealsel/internal/metrics"
	"github.com/sealsel/sealsel/pkg/seal"
)

// RootOptions holds global flags and the state built from them before any
// subcommand runs.
type RootOptions struct {
	ConfigPath string
	Format     string // "json" | "text"
	Verbose    bool

	Config    *config.Config
	Selector  *seal.Selector
	Collector *metrics.Collector
	Logger    *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the sealsel CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

// Execute runs the CLI with args and returns the process exit code. Metrics
// are flushed whether or not the command succeeded.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts := &RootOptions{}
	cmd := newRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if flushErr := opts.flushMetrics(); flushErr != nil && err == nil {
		err = flushErr
	}
	if err != nil {
		fmt.Fprintf(stderr, "sealsel: %v\n", err)
	}
	return GetExitCode(err)
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sealsel",
		Short: "Mechanical seal selection",
		Long: `Recommend a mechanical seal from the catalog for a bore, groove,
temperature, medium and pressure, and compute groove diameter, squeeze,
temperature derating and chemical compatibility.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to config file")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(NewRecommendCommand(opts))
	cmd.AddCommand(NewWatchCommand(opts))
	cmd.AddCommand(NewCatalogCommand(opts))
	cmd.AddCommand(NewGrooveCommand(opts))
	cmd.AddCommand(NewSqueezeCommand(opts))
	cmd.AddCommand(NewDerateCommand(opts))
	cmd.AddCommand(NewChemCommand(opts))

	return cmd
}

// setup validates global flags, loads the config, installs the logger and
// builds the selector.
func (o *RootOptions) setup(logOut io.Writer) error {
	if !slices.Contains(ValidFormats, o.Format) {
		return WrapExitError(ExitCommandError,
			fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats), nil)
	}

	cfg := config.Default()
	if o.ConfigPath != "" {
		loaded, err := config.Load(o.ConfigPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "load config", err)
		}
		cfg = loaded
	}
	o.Config = cfg

	level := cfg.Log.SlogLevel()
	if o.Verbose {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Log.Format == "text" {
		handler = slog.NewTextHandler(logOut, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(logOut, handlerOpts)
	}
	o.Logger = slog.New(handler)
	slog.SetDefault(o.Logger)

	o.Collector = metrics.New()
	selOpts := []seal.Option{
		seal.WithRecorder(o.Collector),
		seal.WithLogger(o.Logger),
	}
	if cfg.Catalog.UniquePartNumbers {
		selOpts = append(selOpts, seal.WithUniquePartNumbers())
	}
	o.Selector = seal.New(selOpts...)

	o.Logger.Debug("sealsel: ready",
		"config", o.ConfigPath,
		"catalog_size", len(o.Selector.Catalog()),
		"unique_part_numbers", cfg.Catalog.UniquePartNumbers,
	)
	return nil
}

// flushMetrics writes the metrics textfile when one is configured.
func (o *RootOptions) flushMetrics() error {
	if o.Config == nil || o.Collector == nil || o.Config.Metrics.Textfile == "" {
		return nil
	}
	if err := o.Collector.WriteTextfile(o.Config.Metrics.Textfile); err != nil {
		return WrapExitError(ExitCommandError, "write metrics", err)
	}
	o.Logger.Debug("sealsel: metrics written", "path", o.Config.Metrics.Textfile)
	return nil
}

// formatter returns an OutputFormatter for cmd's stdout.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}
