package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"cluedo-toolbox/internal/cli"
	"cluedo-toolbox/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	logLevel   string
	configPath string
	seed       int64

	log = logrus.New()

	rootCmd = &cobra.Command{
		Use:           "cluedo",
		Short:         "A Cluedo detective co-pilot and AI simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				level = logrus.InfoLevel
			}
			log.SetLevel(level)
			log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, ForceColors: true})
		},
	}

	detectiveCmd = &cobra.Command{
		Use:     "detective",
		Short:   "Run the AI co-pilot for a real-life game",
		Aliases: []string{"d"},
		Args:    cobra.NoArgs,
		RunE:    runDetective,
	}

	startCmd = &cobra.Command{
		Use:   "start <humans> <ai>",
		Short: "Run a simulation with a mix of human and AI players",
		Args:  cobra.ExactArgs(2),
		RunE:  runStart,
	}

	benchCmd = &cobra.Command{
		Use:   "bench <games> <players>",
		Short: "Play many AI-only games and report statistics",
		Args:  cobra.ExactArgs(2),
		RunE:  runBench,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "loglevel", "info", "Set logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "default_config.json", "Deck definition (.json or .yaml)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Random seed; 0 picks one from the clock")

	rootCmd.AddCommand(detectiveCmd, startCmd, benchCmd)
}

func loadConfig() (*config.GameConfig, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func newRand() *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debugf("Using random seed %d", seed)
	return rand.New(rand.NewSource(seed))
}

func intArgs(args []string) ([]int, error) {
	nums := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("'%s' is not a number", a)
		}
		nums[i] = n
	}
	return nums, nil
}

func runDetective(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ui := cli.NewCLI(log)
	defer ui.Close()
	return ui.RunDetective(cfg)
}

func runStart(cmd *cobra.Command, args []string) error {
	nums, err := intArgs(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ui := cli.NewCLI(log)
	defer ui.Close()
	return ui.RunSimulation(cfg, nums[0], nums[1], newRand())
}

func runBench(cmd *cobra.Command, args []string) error {
	nums, err := intArgs(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if f := cmd.Flag("loglevel"); f == nil || !f.Changed {
		// Per-move logging from hundreds of games buries the report.
		log.SetLevel(logrus.WarnLevel)
	}
	ui := cli.NewCLI(log)
	defer ui.Close()
	return ui.RunBench(cfg, nums[0], nums[1], newRand())
}
