package common

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const ParamFormat = "format"

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

func NewFormatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    ParamFormat,
		Aliases: []string{"f"},
		Value:   FormatText,
		Usage:   "Output format (text, json, yaml)",
	}
}

// GetFormat returns the requested output format, or a usage error.
func GetFormat(ctx *cli.Context) (string, error) {
	format := ctx.String(ParamFormat)

	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return format, nil
	default:
		return "", cli.Exit(errors.Errorf("unknown output format '%s'", format), 2)
	}
}

// Encode writes v to w in a structured format.
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			return errors.WithStack(err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return errors.WithStack(err)
		}
		if err := encoder.Close(); err != nil {
			return errors.WithStack(err)
		}
	default:
		return errors.Errorf("unsupported structured format '%s'", format)
	}

	return nil
}
