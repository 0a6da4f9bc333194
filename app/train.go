package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/Reem-Alatrash/Dependency-Parser/alg/featurevector"
	"github.com/Reem-Alatrash/Dependency-Parser/alg/perceptron"
	"github.com/Reem-Alatrash/Dependency-Parser/nlp/format/conll"
	"github.com/Reem-Alatrash/Dependency-Parser/nlp/parser/dependency/transition"
	"github.com/Reem-Alatrash/Dependency-Parser/util"
	"github.com/Reem-Alatrash/Dependency-Parser/util/conf"
	"github.com/Reem-Alatrash/Dependency-Parser/util/persist"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TrainConfigOut(log *zap.Logger, c *conf.Conf) bool {
	log.Info("Configuration",
		zap.String("language", c.Language),
		zap.Int("iterations", c.Epochs),
		zap.Int64("seed", c.Seed),
		zap.Int("workers", c.Workers),
		zap.String("store", c.Store.Backend),
		zap.String("model", c.Store.Path))
	log.Info("Data", zap.String("train", tConll))
	return VerifyExists(log, tConll)
}

// TrainModel learns a model from the gold sentences of trainFile and
// saves it to the store named in c
func TrainModel(ctx context.Context, c *conf.Conf, log *zap.Logger, trainFile string) (*persist.Model, error) {
	reader := &conll.Reader{Gold: true, Log: log}
	sents, err := reader.ReadFile(trainFile)
	if err != nil {
		return nil, fmt.Errorf("failed reading training file %s: %w", trainFile, err)
	}
	digest, err := util.Digest(trainFile)
	if err != nil {
		return nil, err
	}
	log.Info("Read training sentences",
		zap.String("md5", digest),
		zap.Int("sentences", len(sents)),
		zap.Int("skipped_lines", len(reader.Skipped)),
		zap.Int("dropped_sentences", len(reader.Dropped)))

	gold := &transition.GoldInstances{
		TransFunc: &transition.ArcEager{},
		Extractor: &transition.Extractor{},
		Workers:   c.Workers,
		Log:       log,
	}
	vocab := featurevector.NewVocabulary(APPROX_FEATURES)
	instances, skipped, err := gold.Instances(ctx, sents, vocab)
	if err != nil {
		return nil, err
	}
	if len(skipped) > 0 {
		log.Warn("Sentences without an arc-eager derivation were not used",
			zap.Int("skipped", len(skipped)),
			zap.Float64("percent", 100*float64(len(skipped))/float64(len(sents))))
	}

	trainer := &perceptron.Trainer{
		Epochs:  c.Epochs,
		Seed:    c.Seed,
		Classes: int(transition.NUM_TRANSITIONS),
		RunID:   uuid.NewString(),
		Log:     log,
	}
	weights, err := trainer.Train(instances, vocab.Len())
	if err != nil {
		return nil, fmt.Errorf("training failed: %w", err)
	}
	LogStrongestFeatures(log, vocab, weights, STRONGEST_FEATURES)
	model := &persist.Model{
		Language: c.Language,
		Features: vocab.Freeze(),
		Weights:  weights,
	}

	blobs, err := persist.Open(c.Store.Backend, c.Store.Path, log)
	if err != nil {
		return nil, err
	}
	defer blobs.Close()
	store := &persist.ModelStore{Blobs: blobs, Log: log}
	if err := store.Save(model); err != nil {
		return nil, err
	}
	return model, nil
}

// LogStrongestFeatures logs, for every transition, the names of the n
// features with the largest averaged weight. It only runs at debug level.
func LogStrongestFeatures(log *zap.Logger, vocab *featurevector.Vocabulary, weights *perceptron.WeightTable, n int) {
	if !log.Core().Enabled(zap.DebugLevel) {
		return
	}
	if n > weights.Features {
		n = weights.Features
	}
	for class := 0; class < weights.Classes; class++ {
		rows := make([]int, weights.Features)
		for i := range rows {
			rows[i] = i
		}
		weight := func(row int) float64 {
			return weights.Weights[row*weights.Classes+class]
		}
		sort.SliceStable(rows, func(i, j int) bool {
			return weight(rows[i]) > weight(rows[j])
		})
		names := make([]string, n)
		for i, row := range rows[:n] {
			names[i] = vocab.ValueOf(row)
		}
		log.Debug("Strongest features",
			zap.Stringer("transition", transition.Transition(class)),
			zap.Strings("features", names))
	}
}

func Train(cmd *commander.Command, args []string) error {
	REQUIRED_FLAGS := []string{"tc"}
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
	if !TrainConfigOut(log, c) {
		return fmt.Errorf("training file %s not found", tConll)
	}
	_, err = TrainModel(context.Background(), c, log, tConll)
	return err
}

func TrainCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Train,
		UsageLine: "train <file options> [arguments]",
		Short:     "trains an arc-eager perceptron model",
		Long: `
trains an arc-eager perceptron model and stores it under the model directory

	$ ./parser train -tc <conll> [-lang en|de] [-it 10] [-seed 333] [-c <conf>] [options]

`,
		Flag: *flag.NewFlagSet("train", flag.ExitOnError),
	}
	addCommonFlags(cmd)
	cmd.Flag.StringVar(&tConll, "tc", "", "Training Conll File")
	cmd.Flag.IntVar(&Iterations, ITER_FLAG, conf.DEFAULT_EPOCHS, "Number of Perceptron Iterations")
	cmd.Flag.Int64Var(&Seed, SEED_FLAG, conf.DEFAULT_SEED, "Seed of the instance shuffle")
	return cmd
}
