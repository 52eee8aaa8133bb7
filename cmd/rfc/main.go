package main

import (
	"log/slog"
	"os"

	"github.com/bornholm/rfc-lookup/internal/command"
	"github.com/bornholm/rfc-lookup/internal/command/get"
	"github.com/bornholm/rfc-lookup/internal/command/index"
	"github.com/bornholm/rfc-lookup/internal/command/search"
	"github.com/bornholm/rfc-lookup/internal/config"
	"github.com/pkg/errors"
)

func main() {
	conf, err := config.Parse()
	if err != nil {
		slog.Error("could not parse config", slog.Any("error", errors.WithStack(err)))
		os.Exit(1)
	}

	command.Main(
		conf,
		"rfc", "look up and search IETF RFC documents",
		get.Command(),
		search.Command(),
		index.Command(),
	)
}
