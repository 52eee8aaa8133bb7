package search

import (
	"fmt"
	"io"

	"github.com/bornholm/rfc-lookup/internal/command/common"
	"github.com/bornholm/rfc-lookup/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search RFCs by title",
		ArgsUsage: "<value>",
		Flags: []cli.Flag{
			common.NewFormatFlag(),
		},
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			if cCtx.NArg() != 1 {
				return cli.Exit("Missing argument 'VALUE'.", 2)
			}

			format, err := common.GetFormat(cCtx)
			if err != nil {
				return err
			}

			value := cCtx.Args().First()

			rfcClient := common.GetClient(cCtx)

			results, err := rfcClient.Search(ctx, value)
			if err != nil {
				return errors.WithStack(err)
			}

			if format != common.FormatText {
				return common.Encode(cCtx.App.Writer, format, results)
			}

			writeResults(cCtx.App.Writer, value, results)

			return nil
		},
	}
}

func writeResults(w io.Writer, value string, results []client.SearchResult) {
	fmt.Fprintf(w, "Search '%s' with %d results.\n", value, len(results))
	for _, r := range results {
		fmt.Fprintf(w, "%d: %s\n", r.ID, r.Title)
	}
}
