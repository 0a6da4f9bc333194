package app

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"go.uber.org/zap"
)

const (
	NUM_CPUS_FLAG = "cpus"
)

var (
	CPUs       int
	cappedCPUs int
)

func AppCommands() []*commander.Command {
	return []*commander.Command{
		TrainCmd(),
		ParseCmd(),
		DepEvalCmd(),
	}
}

// AllCommands returns the root command with every subcommand wrapped to
// set up the process before it runs
func AllCommands() *commander.Command {
	cmd := &commander.Command{
		UsageLine:   filepath.Base(os.Args[0]),
		Short:       "arc-eager dependency parser",
		Subcommands: AppCommands(),
		Flag:        *flag.NewFlagSet("app", flag.ExitOnError),
	}
	for _, app := range cmd.Subcommands {
		app.Run = NewAppWrapCommand(app.Run)
		app.Flag.IntVar(&CPUs, NUM_CPUS_FLAG, 0, "Max CPUS to use (runtime.GOMAXPROCS); 0 = all")
	}
	return cmd
}

// InitCommand sets GOMAXPROCS from the -cpus flag. A request above the
// available CPUs is capped and remembered for LogCPUs.
func InitCommand(cmd *commander.Command, args []string) {
	maxCPUs := runtime.NumCPU()
	cappedCPUs = 0
	if CPUs > maxCPUs {
		cappedCPUs = CPUs
		CPUs = 0
	}
	if CPUs == 0 {
		CPUs = maxCPUs
	}
	runtime.GOMAXPROCS(CPUs)
}

// LogCPUs reports the CPU setting once the command's logger exists
func LogCPUs(log *zap.Logger) {
	if cappedCPUs > 0 {
		log.Warn("Number of CPUs capped to all available",
			zap.Int("requested", cappedCPUs), zap.Int("available", CPUs))
	}
	log.Debug("CPUs", zap.Int("gomaxprocs", CPUs))
}

func NewAppWrapCommand(f func(cmd *commander.Command, args []string) error) func(cmd *commander.Command, args []string) error {
	wrapped := func(cmd *commander.Command, args []string) error {
		InitCommand(cmd, args)
		return f(cmd, args)
	}

	return wrapped
}
