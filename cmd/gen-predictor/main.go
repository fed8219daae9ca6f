// Command gen-predictor reads an execution trace and writes the sparse
// history-successor table a downstream specializer consumes.
//
// Usage:
//
//	gen-predictor TRACE-FILENAME PREDICTOR-FILENAME
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"smite/internal/config"
	"smite/predictor"
)

const usageLine = "usage: gen-predictor TRACE-FILENAME PREDICTOR-FILENAME"

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	var configPath string

	root := &cobra.Command{
		Use:           "gen-predictor TRACE-FILENAME PREDICTOR-FILENAME",
		Short:         "Generate a history predictor table from an execution trace",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				fmt.Println(usageLine)
				return nil
			}

			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			return run(log, cfg, args[0], args[1])
		},
	}
	root.Flags().StringVar(&configPath, "config", "", "path to an optional TOML config file overriding the count threshold")

	if err := root.Execute(); err != nil {
		log.WithError(err).Error("gen-predictor failed")
		os.Exit(1)
	}
}

func run(log *logrus.Logger, cfg *config.Config, tracePath, predictorPath string) error {
	trace, err := os.Open(tracePath)
	if err != nil {
		return fmt.Errorf("open trace file %s: %w", tracePath, err)
	}
	defer trace.Close()

	out, err := os.Create(predictorPath)
	if err != nil {
		return fmt.Errorf("create predictor file %s: %w", predictorPath, err)
	}
	defer out.Close()

	b := predictor.NewBuilderWithThreshold(cfg.Predictor.CountThreshold)
	log.WithField("trace", tracePath).Info("reading trace")
	if err := b.ReadTrace(trace); err != nil {
		return fmt.Errorf("read trace file %s: %w", tracePath, err)
	}

	log.WithField("predictor", predictorPath).Info("writing predictor table")
	if err := b.WritePredictor(out); err != nil {
		return fmt.Errorf("write predictor file %s: %w", predictorPath, err)
	}

	return nil
}
