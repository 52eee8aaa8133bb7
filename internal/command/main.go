package command

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/rfc-lookup/internal/build"
	"github.com/bornholm/rfc-lookup/internal/command/common"
	"github.com/bornholm/rfc-lookup/internal/config"
	"github.com/bornholm/rfc-lookup/internal/metrics"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

func Main(conf *config.Config, name string, usage string, commands ...*cli.Command) {
	app := NewApp(conf, name, usage, commands...)

	if err := app.Run(os.Args); err != nil {
		os.Exit(ExitCode(err))
	}
}

func NewApp(conf *config.Config, name string, usage string, commands ...*cli.Command) *cli.App {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Aliases:            []string{"V"},
		Usage:              "print the version",
		DisableDefaultText: true,
	}

	flags := common.GlobalFlags(conf)
	loadConfigFile := altsrc.InitInputSourceWithContext(flags, common.NewConfigSourceFromFlagFunc(common.ParamConfig))

	app := &cli.App{
		Name:     name,
		Usage:    usage,
		Commands: commands,
		Version:  build.LongVersion,
		Before: func(ctx *cli.Context) error {
			if err := loadConfigFile(ctx); err != nil {
				return errors.WithStack(err)
			}

			logLevel := ctx.String(common.ParamLogLevel)
			slogLevel := slog.LevelWarn

			switch logLevel {
			case "debug":
				slogLevel = slog.LevelDebug
			case "info":
				slogLevel = slog.LevelInfo
			case "warn":
				slogLevel = slog.LevelWarn
			case "error":
				slogLevel = slog.LevelError
			}

			logger := slog.New(slogx.ContextHandler{
				Handler: slog.NewTextHandler(ctx.App.ErrWriter, &slog.HandlerOptions{
					Level:     slog.Level(slogLevel),
					AddSource: ctx.Bool(common.ParamDebug),
				}),
			})

			slog.SetDefault(logger)

			return nil
		},
		After: func(ctx *cli.Context) error {
			if !ctx.Bool(common.ParamMetrics) {
				return nil
			}

			if err := metrics.Dump(ctx.App.ErrWriter, prometheus.DefaultGatherer); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
		Flags:     flags,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
	}

	app.ExitErrHandler = func(ctx *cli.Context, err error) {
		if err == nil {
			return
		}

		if ctx.Bool(common.ParamDebug) {
			fmt.Fprintf(ctx.App.ErrWriter, "Error: %+v\n", err)
			return
		}

		fmt.Fprintf(ctx.App.ErrWriter, "Error: %s\n", err)
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	return app
}

// ExitCode returns the process exit code matching err.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitCoder cli.ExitCoder
	if errors.As(err, &exitCoder) {
		return exitCoder.ExitCode()
	}

	return 1
}
