package config

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gnoswap-labs/exprify/transformers/mailsql"
)

// DefaultPath is the configuration file looked up when no path is given.
const DefaultPath = ".exprify.yaml"

// Config is the on-disk configuration of the exprify command.
type Config struct {
	Name    string          `yaml:"name"`
	Output  OutputConfig    `yaml:"output"`
	MailSQL mailsql.Columns `yaml:"mailsql"`
}

type OutputConfig struct {
	// Pretty prints parsed trees in the indented form.
	Pretty bool `yaml:"pretty"`
	// Color enables colored error output. Output to a non-terminal is
	// never colored.
	Color bool `yaml:"color"`
}

func Default() Config {
	return Config{
		Name:    "exprify",
		Output:  OutputConfig{Color: true},
		MailSQL: mailsql.DefaultColumns(),
	}
}

// Load reads the configuration at path on top of the defaults. A missing
// file is not an error and yields Default().
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath
	}

	config := Default()

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, err
	}

	return config, nil
}

// Write stores config at path, replacing any existing file.
func Write(path string, config Config) error {
	if path == "" {
		path = DefaultPath
	}

	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}
