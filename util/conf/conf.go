package conf

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DEFAULT_LANGUAGE = "english"
	DEFAULT_EPOCHS   = 10
	DEFAULT_SEED     = 333
)

var languageAliases = map[string]string{
	"en": "english",
	"de": "german",
}

type Store struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Conf is the parser configuration file. Fields left out of the file
// keep their defaults.
type Conf struct {
	Language string `yaml:"language"`
	Epochs   int    `yaml:"epochs"`
	Seed     int64  `yaml:"seed"`
	Workers  int    `yaml:"workers"`
	Store    Store  `yaml:"store"`
	Log      Log    `yaml:"log"`
}

func Default() *Conf {
	return &Conf{
		Language: DEFAULT_LANGUAGE,
		Epochs:   DEFAULT_EPOCHS,
		Seed:     DEFAULT_SEED,
		Workers:  runtime.NumCPU(),
		Store:    Store{Backend: "file", Path: "."},
		Log:      Log{Level: "info"},
	}
}

func Read(reader io.Reader) (*Conf, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	retval := Default()
	if err := yaml.Unmarshal(data, retval); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}
	retval.Language = Language(retval.Language)
	if err := retval.Validate(); err != nil {
		return nil, err
	}
	return retval, nil
}

// ReadFile reads filename; a missing file yields the defaults
func ReadFile(filename string) (*Conf, error) {
	file, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file)
}

func (c *Conf) Validate() error {
	if c.Language == "" {
		return errors.New("configuration: language is empty")
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("configuration: epochs must be positive, got %d", c.Epochs)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("configuration: workers must be positive, got %d", c.Workers)
	}
	switch c.Store.Backend {
	case "file", "badger":
	default:
		return fmt.Errorf("configuration: unknown store backend %q", c.Store.Backend)
	}
	return nil
}

// Language resolves a short language code to the name models are
// stored under
func Language(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if full, exists := languageAliases[name]; exists {
		return full
	}
	return name
}
