// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/fibernet/pipeline"
	"github.com/katalvlaran/fibernet/report"
)

const envPrefix = "FIBERNET"

// App holds what the commands read from and write to.
type App struct {
	Fs     afero.Fs
	Out    io.Writer
	Logger *log.Logger

	v        *viper.Viper
	registry *prometheus.Registry
	metrics  *pipeline.Metrics
}

// NewApp returns an App on the OS filesystem, stdout, and the standard logger.
func NewApp() *App {
	return &App{Fs: afero.NewOsFs(), Out: os.Stdout, Logger: log.StandardLogger()}
}

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	if err := NewRootCommand(ctx, NewApp(), version).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree around app.
func NewRootCommand(ctx context.Context, app *App, version string) *cobra.Command {
	app.v = viper.New()

	var rootCmd = &cobra.Command{
		Use:          "fibernet",
		Short:        "Plan fibre networks: spanning trees, delivery tours, max flow and nearest centers.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
	}
	rootCmd.PersistentFlags().String("config", "", "YAML file with flag values")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text or json")
	rootCmd.PersistentFlags().StringP("format", "o", report.FormatText, "report format: "+strings.Join(report.Formats(), ", "))
	rootCmd.PersistentFlags().String("metrics-file", "", "write pipeline metrics in Prometheus text format to this file")
	rootCmd.SetContext(ctx)

	rootCmd.AddCommand(
		newSolveCommand(app),
		newGenerateCommand(app),
		newValidateCommand(app),
		newBenchCommand(app),
	)

	return rootCmd
}

// setup binds flags, environment and config file, then configures logging
// and metrics.
func (a *App) setup(cmd *cobra.Command) error {
	v := a.v
	v.SetFs(a.Fs)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "bind flags")
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", path)
		}
	}

	if a.Logger == nil {
		a.Logger = log.StandardLogger()
	}
	if v.GetBool("verbose") {
		a.Logger.SetLevel(log.DebugLevel)
	}
	switch f := v.GetString("log-format"); f {
	case "json":
		a.Logger.SetFormatter(&log.JSONFormatter{})
	case "text", "":
		a.Logger.SetFormatter(&log.TextFormatter{})
	default:
		return errors.Errorf("unknown log format %q", f)
	}

	a.registry = prometheus.NewRegistry()
	m, err := pipeline.NewMetrics(a.registry)
	if err != nil {
		return err
	}
	a.metrics = m

	return nil
}

// context returns the command context carrying the app logger.
func (a *App) context(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return pipeline.WithLogger(ctx, a.Logger)
}

// finish renders reports and writes the metrics file when requested.
func (a *App) finish(reports []*pipeline.Report) error {
	if err := report.Write(a.Out, a.v.GetString("format"), reports...); err != nil {
		return err
	}
	return a.writeMetrics()
}
