package common

import (
	"net/http"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
)

const (
	metadataFilesystem = "filesystem"
	metadataTransport  = "transport"
)

func SetFilesystem(app *cli.App, fs afero.Fs) {
	setMetadata(app, metadataFilesystem, fs)
}

// Filesystem returns the filesystem commands read and write files with.
func Filesystem(ctx *cli.Context) afero.Fs {
	if fs, ok := ctx.App.Metadata[metadataFilesystem].(afero.Fs); ok {
		return fs
	}

	return afero.NewOsFs()
}

// SetTransport replaces the network transport used by the commands' RFC
// client.
func SetTransport(app *cli.App, transport http.RoundTripper) {
	setMetadata(app, metadataTransport, transport)
}

func Transport(ctx *cli.Context) http.RoundTripper {
	transport, _ := ctx.App.Metadata[metadataTransport].(http.RoundTripper)
	return transport
}

func setMetadata(app *cli.App, key string, value any) {
	if app.Metadata == nil {
		app.Metadata = map[string]any{}
	}

	app.Metadata[key] = value
}
