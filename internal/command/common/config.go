package common

import (
	"os"
	"path/filepath"

	"github.com/bornholm/rfc-lookup/pkg/client"
	"github.com/kirsle/configdir"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
	"gopkg.in/yaml.v3"
)

const configFilename = "config.yml"

func DefaultConfigFile() string {
	return filepath.Join(configdir.LocalConfig(client.AppName), configFilename)
}

// NewConfigSourceFromFlagFunc returns an input source reading the YAML file
// named by the given flag. A missing file is ignored unless the flag was
// explicitly set.
func NewConfigSourceFromFlagFunc(flag string) func(cCtx *cli.Context) (altsrc.InputSourceContext, error) {
	return func(cCtx *cli.Context) (altsrc.InputSourceContext, error) {
		path := cCtx.String(flag)
		if path == "" {
			return altsrc.NewMapInputSource("", map[any]any{}), nil
		}

		source, err := NewConfigFileInputSource(Filesystem(cCtx), path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) && !cCtx.IsSet(flag) {
				return altsrc.NewMapInputSource("", map[any]any{}), nil
			}

			return nil, errors.Wrapf(err, "could not load configuration file '%s'", path)
		}

		return source, nil
	}
}

func NewConfigFileInputSource(fs afero.Fs, path string) (altsrc.InputSourceContext, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	values := map[any]any{}

	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, errors.WithStack(err)
	}

	return altsrc.NewMapInputSource(path, values), nil
}
