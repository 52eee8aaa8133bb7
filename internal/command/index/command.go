package index

import (
	"fmt"

	"github.com/bornholm/rfc-lookup/internal/command/common"
	"github.com/bornholm/rfc-lookup/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const flagAll = "all"

type Summary struct {
	Latest int   `json:"latest" yaml:"latest"`
	Count  int   `json:"count" yaml:"count"`
	IDs    []int `json:"ids,omitempty" yaml:"ids,omitempty"`
}

func Command() *cli.Command {
	return &cli.Command{
		Name:  "index",
		Usage: "Show the latest published RFC number",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagAll,
				Aliases: []string{"a"},
				Usage:   "List every indexed RFC number",
			},
			common.NewFormatFlag(),
		},
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			format, err := common.GetFormat(cCtx)
			if err != nil {
				return err
			}

			rfcClient := common.GetClient(cCtx)

			ids, err := rfcClient.LatestIDs(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			if len(ids) == 0 {
				return errors.WithStack(client.ErrIndexUnavailable)
			}

			summary := Summary{
				Latest: ids[len(ids)-1],
				Count:  len(ids),
			}

			if cCtx.Bool(flagAll) {
				summary.IDs = ids
			}

			if format != common.FormatText {
				return common.Encode(cCtx.App.Writer, format, summary)
			}

			if summary.IDs != nil {
				for _, id := range summary.IDs {
					fmt.Fprintln(cCtx.App.Writer, id)
				}
				return nil
			}

			fmt.Fprintf(cCtx.App.Writer, "Latest RFC: %d (%d indexed)\n", summary.Latest, summary.Count)

			return nil
		},
	}
}
