package get

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/bornholm/rfc-lookup/internal/command/common"
	"github.com/bornholm/rfc-lookup/pkg/client"
	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
)

const (
	flagURL    = "url"
	flagOutput = "output"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Fetch the plain text of an RFC",
		ArgsUsage: "<id> (use \"--\" before a negative id: get -- -1)",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagURL,
				Aliases: []string{"u"},
				Usage:   "Only print the URL of the RFC HTML page",
			},
			&cli.StringFlag{
				Name:    flagOutput,
				Aliases: []string{"o"},
				Usage:   "Write the RFC to the given file instead of stdout",
			},
		},
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			id, err := parseID(cCtx)
			if err != nil {
				return err
			}

			if cCtx.Bool(flagURL) {
				fmt.Fprintln(cCtx.App.Writer, client.ReportHTMLURL(id))
				return nil
			}

			rfcClient := common.GetClient(cCtx)

			report, err := rfcClient.Report(ctx, id)
			if err != nil {
				return errors.WithStack(err)
			}

			if mime := mimetype.Detect([]byte(report)); !mime.Is("text/plain") {
				slog.WarnContext(ctx, "rfc does not look like plain text", slog.Int("rfc", id), slog.String("mimetype", mime.String()))
			}

			output := cCtx.String(flagOutput)
			if output == "" {
				fmt.Fprint(cCtx.App.Writer, report)
				return nil
			}

			if err := afero.WriteFile(common.Filesystem(cCtx), output, []byte(report), 0o644); err != nil {
				return errors.Wrapf(err, "could not write rfc to '%s'", output)
			}

			slog.InfoContext(ctx, "rfc written", slog.Int("rfc", id), slog.String("file", output), slog.String("size", humanize.Bytes(uint64(len(report)))))

			return nil
		},
	}
}

func parseID(cCtx *cli.Context) (int, error) {
	if cCtx.NArg() != 1 {
		return 0, cli.Exit("Missing argument 'ID'.", 2)
	}

	raw := cCtx.Args().First()

	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, cli.Exit(fmt.Sprintf("Invalid value for 'ID': '%s' is not a valid integer.", raw), 2)
	}

	return id, nil
}
