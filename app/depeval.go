package app

import (
	"fmt"

	"github.com/Reem-Alatrash/Dependency-Parser/eval"
	"github.com/Reem-Alatrash/Dependency-Parser/nlp/format/conll"
	"github.com/Reem-Alatrash/Dependency-Parser/util/conf"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"go.uber.org/zap"
)

func DepEvalConfigOut(log *zap.Logger) bool {
	log.Info("Data", zap.String("parsed", input), zap.String("gold", inputGold))
	return VerifyExists(log, input) && VerifyExists(log, inputGold)
}

// EvalFiles scores the parsed sentences of testFile against goldFile
func EvalFiles(log *zap.Logger, testFile, goldFile string) (*eval.Total, error) {
	test, err := (&conll.Reader{Log: log}).ReadFile(testFile)
	if err != nil {
		return nil, fmt.Errorf("failed reading parsed file %s: %w", testFile, err)
	}
	gold, err := (&conll.Reader{Gold: true, Log: log}).ReadFile(goldFile)
	if err != nil {
		return nil, fmt.Errorf("failed reading gold file %s: %w", goldFile, err)
	}
	total, err := eval.Corpus(test, gold)
	if err != nil {
		return nil, err
	}
	log.Info("Result",
		zap.Float64("UAS", total.UAS()),
		zap.Float64("LAS", total.LAS()),
		zap.Int("UEM", total.Exact),
		zap.Float64("UEM_percent", 100*total.ExactMatch()),
		zap.Int("tokens", total.Tokens),
		zap.Int("sentences", total.Population))
	return total, nil
}

func DepEval(cmd *commander.Command, args []string) error {
	REQUIRED_FLAGS := []string{"p", "g"}
	if err := VerifyFlags(cmd, REQUIRED_FLAGS); err != nil {
		return err
	}
	log, err := NewLogger(conf.Default().Log)
	if err != nil {
		return err
	}
	defer log.Sync()

	LogCPUs(log)
	if !DepEvalConfigOut(log) {
		return fmt.Errorf("evaluation files not found")
	}
	_, err = EvalFiles(log, input, inputGold)
	return err
}

func DepEvalCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       DepEval,
		UsageLine: "depeval <file options> [arguments]",
		Short:     "runs dependency eval",
		Long: `
runs dependency eval

	$ ./parser depeval -p <conll> -g <conll> [options]

`,
		Flag: *flag.NewFlagSet("depeval", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&input, "p", "", "Parse Result Conll File")
	cmd.Flag.StringVar(&inputGold, "g", "", "Gold Conll File")
	return cmd
}
