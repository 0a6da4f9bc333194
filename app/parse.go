package app

import (
	"context"
	"fmt"

	"github.com/Reem-Alatrash/Dependency-Parser/alg/perceptron"
	"github.com/Reem-Alatrash/Dependency-Parser/nlp/format/conll"
	"github.com/Reem-Alatrash/Dependency-Parser/nlp/parser/dependency/transition"
	"github.com/Reem-Alatrash/Dependency-Parser/util/conf"
	"github.com/Reem-Alatrash/Dependency-Parser/util/persist"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"go.uber.org/zap"
)

func ParseConfigOut(log *zap.Logger, c *conf.Conf) bool {
	log.Info("Configuration",
		zap.String("language", c.Language),
		zap.Int("workers", c.Workers),
		zap.String("store", c.Store.Backend),
		zap.String("model", c.Store.Path))
	log.Info("Data", zap.String("input", input), zap.String("output", outConll))
	return VerifyExists(log, input)
}

// LoadModel reads the model of the configured language
func LoadModel(c *conf.Conf, log *zap.Logger) (*persist.Model, error) {
	blobs, err := persist.Open(c.Store.Backend, c.Store.Path, log)
	if err != nil {
		return nil, err
	}
	defer blobs.Close()
	store := &persist.ModelStore{Blobs: blobs, Log: log}
	return store.Load(c.Language, transition.NUM_TRANSITIONS)
}

// ParseFile parses every sentence of inputFile with model and writes
// the result to outputFile. It returns the number of tokens that were
// left headless by the parser and got a default head when written.
func ParseFile(ctx context.Context, c *conf.Conf, log *zap.Logger, model *persist.Model, inputFile, outputFile string) (int, error) {
	reader := &conll.Reader{Log: log}
	sents, err := reader.ReadFile(inputFile)
	if err != nil {
		return 0, fmt.Errorf("failed reading input file %s: %w", inputFile, err)
	}
	log.Info("Read input sentences",
		zap.Int("sentences", len(sents)),
		zap.Int("skipped_lines", len(reader.Skipped)),
		zap.Int("dropped_sentences", len(reader.Dropped)))

	parser := &transition.Deterministic{
		TransFunc: &transition.ArcEager{},
		Extractor: &transition.Extractor{},
		Features:  model.Features,
		Guide:     &perceptron.Guide{Weights: model.Weights},
		Log:       log,
	}
	parsed, err := parser.ParseAll(ctx, sents, c.Workers)
	if err != nil {
		return 0, fmt.Errorf("parsing failed: %w", err)
	}
	heads := make([][]int, len(parsed))
	tokens := 0
	for i, state := range parsed {
		heads[i] = state.Heads()
		tokens += sents[i].Len() - 1
	}

	repaired, err := conll.WriteFile(outputFile, sents, heads)
	if err != nil {
		return repaired, fmt.Errorf("failed writing output file %s: %w", outputFile, err)
	}
	percent := 0.0
	if tokens > 0 {
		percent = 100 * float64(repaired) / float64(tokens)
	}
	log.Info("Wrote parsed sentences",
		zap.String("file", outputFile),
		zap.Int("sentences", len(sents)),
		zap.Int("repaired_heads", repaired),
		zap.Float64("repaired_percent", percent))
	return repaired, nil
}

func Parse(cmd *commander.Command, args []string) error {
	REQUIRED_FLAGS := []string{"in", "oc"}
	if err := VerifyFlags(cmd, REQUIRED_FLAGS); err != nil {
		return err
	}
	c, err := LoadConf(cmd)
	if err != nil {
		return err
	}
	log, err := NewLogger(c.Log)
	if err != nil {
		return err
	}
	defer log.Sync()

	LogCPUs(log)
	if !ParseConfigOut(log, c) {
		return fmt.Errorf("input file %s not found", input)
	}
	model, err := LoadModel(c, log)
	if err != nil {
		log.Fatal("Failed loading model", zap.String("language", c.Language), zap.Error(err))
	}
	_, err = ParseFile(context.Background(), c, log, model, input, outConll)
	return err
}

func ParseCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Parse,
		UsageLine: "parse <file options> [arguments]",
		Short:     "parses sentences with a trained model",
		Long: `
parses the sentences of a conll file with the model of a language

	$ ./parser parse -in <conll> -oc <out conll> [-lang en|de] [-c <conf>] [options]

`,
		Flag: *flag.NewFlagSet("parse", flag.ExitOnError),
	}
	addCommonFlags(cmd)
	cmd.Flag.StringVar(&input, "in", "", "Input Conll File")
	cmd.Flag.StringVar(&outConll, "oc", "", "Output Conll File")
	return cmd
}
