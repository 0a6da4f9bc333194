package app

import (
	"fmt"
	"os"

	"github.com/Reem-Alatrash/Dependency-Parser/util/conf"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Pre-allocating the feature vocabulary saves frequent reallocation
// while collecting training instances
const APPROX_FEATURES = 1 << 16

// number of features per transition logged after training at debug level
const STRONGEST_FEATURES = 10

var (
	// processing options
	Iterations int
	Seed       int64
	Workers    int
	language   string

	// file names
	tConll    string
	input     string
	inputGold string
	outConll  string
	confFile  string
	modelDir  string
	backend   string
	logLevel  string
)

// flag names that override configuration values
const (
	LANG_FLAG    = "lang"
	ITER_FLAG    = "it"
	SEED_FLAG    = "seed"
	WORKERS_FLAG = "j"
	MODEL_FLAG   = "m"
	STORE_FLAG   = "store"
	LOG_FLAG     = "log"
)

func addCommonFlags(cmd *commander.Command) {
	cmd.Flag.StringVar(&confFile, "c", "parser.yaml", "Optional - Configuration File")
	cmd.Flag.StringVar(&language, LANG_FLAG, "", "Optional - Language of the model (en, de or a full name)")
	cmd.Flag.IntVar(&Workers, WORKERS_FLAG, 0, "Optional - Number of concurrent sentence workers")
	cmd.Flag.StringVar(&modelDir, MODEL_FLAG, "", "Optional - Model directory")
	cmd.Flag.StringVar(&backend, STORE_FLAG, "", "Optional - Model store [file, badger]")
	cmd.Flag.StringVar(&logLevel, LOG_FLAG, "", "Optional - Log level [debug, info, warn, error]")
}

// LoadConf reads the configuration file and applies the flags that were
// set explicitly on cmd
func LoadConf(cmd *commander.Command) (*conf.Conf, error) {
	c, err := conf.ReadFile(confFile)
	if err != nil {
		return nil, fmt.Errorf("failed reading configuration %s: %w", confFile, err)
	}
	cmd.Flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case LANG_FLAG:
			c.Language = conf.Language(language)
		case ITER_FLAG:
			c.Epochs = Iterations
		case SEED_FLAG:
			c.Seed = Seed
		case WORKERS_FLAG:
			c.Workers = Workers
		case MODEL_FLAG:
			c.Store.Path = modelDir
		case STORE_FLAG:
			c.Store.Backend = backend
		case LOG_FLAG:
			c.Log.Level = logLevel
		}
	})
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewLogger builds the process logger from the log section of the
// configuration
func NewLogger(c conf.Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	var cfgZap zap.Config
	if c.Development {
		cfgZap = zap.NewDevelopmentConfig()
	} else {
		cfgZap = zap.NewProductionConfig()
		cfgZap.Encoding = "console"
		cfgZap.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfgZap.Level.SetLevel(level)
	return cfgZap.Build()
}

func VerifyExists(log *zap.Logger, filename string) bool {
	_, err := os.Stat(filename)
	if err != nil {
		log.Error("Error accessing file", zap.String("file", filename), zap.Error(err))
		return false
	}
	return true
}

func VerifyFlags(cmd *commander.Command, required []string) error {
	for _, name := range required {
		f := cmd.Flag.Lookup(name)
		if f == nil || f.Value.String() == "" {
			cmd.Usage()
			return fmt.Errorf("required flag %s not set", name)
		}
	}
	return nil
}
