package common

import (
	"github.com/bornholm/rfc-lookup/internal/config"
	"github.com/bornholm/rfc-lookup/pkg/client"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	ParamConfig       = "config"
	ParamDebug        = "debug"
	ParamLogLevel     = "log-level"
	ParamMetrics      = "metrics"
	ParamTimeout      = "timeout"
	ParamRateInterval = "rate-interval"
	ParamRateBurst    = "rate-burst"
)

// ConfigurableFlags returns the flags whose value can be read from the
// configuration file. Their defaults come from the environment
// configuration.
func ConfigurableFlags(conf *config.Config) []cli.Flag {
	return []cli.Flag{
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:  ParamLogLevel,
			Usage: "Set logging level (debug, info, warn, error)",
			Value: conf.Logger.Level,
		}),
		altsrc.NewDurationFlag(&cli.DurationFlag{
			Name:  ParamTimeout,
			Usage: "Timeout of each HTTP request",
			Value: conf.HTTP.Timeout,
		}),
		altsrc.NewDurationFlag(&cli.DurationFlag{
			Name:  ParamRateInterval,
			Usage: "Minimum interval between two HTTP requests (0 to disable)",
			Value: conf.HTTP.RateLimit.Interval,
		}),
		altsrc.NewIntFlag(&cli.IntFlag{
			Name:  ParamRateBurst,
			Usage: "Maximum burst of HTTP requests when rate limited",
			Value: conf.HTTP.RateLimit.Burst,
		}),
	}
}

func GlobalFlags(conf *config.Config) []cli.Flag {
	return append([]cli.Flag{
		&cli.StringFlag{
			Name:    ParamConfig,
			Aliases: []string{"c"},
			Value:   DefaultConfigFile(),
			Usage:   "Configuration file to use",
		},
		&cli.BoolFlag{
			Name:  ParamDebug,
			Value: false,
			Usage: "Toggle debug mode",
		},
		&cli.BoolFlag{
			Name:  ParamMetrics,
			Value: false,
			Usage: "Dump collected metrics on stderr before exiting",
		},
	}, ConfigurableFlags(conf)...)
}

func GetClient(ctx *cli.Context) *client.Client {
	httpClient := client.NewHTTPClient(
		ctx.Duration(ParamTimeout),
		ctx.Duration(ParamRateInterval),
		ctx.Int(ParamRateBurst),
	)

	if transport := Transport(ctx); transport != nil {
		if rateLimited, ok := httpClient.Transport.(*client.RateLimitTransport); ok {
			rateLimited.Base = transport
		}
	}

	return client.New(
		client.WithHTTPClient(httpClient),
	)
}
