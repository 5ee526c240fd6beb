package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/landmarks/cityio"
)

var errScenariosFailed = errors.New("scenarios failed")

func newScenariosCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios <file.yaml>",
		Short: "Run and check every scenario in a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScenarios(cmd.Context(), args[0])
		},
	}
}

func (a *app) runScenarios(ctx context.Context, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scs, err := cityio.LoadScenarios(f)
	if err != nil {
		return err
	}

	failed := 0
	for i := range scs {
		sc := &scs[i]
		entry := a.log.WithFields(logrus.Fields{"scenario": sc.Name, "kind": sc.Kind})

		out, err := sc.Run(ctx, a.hooks()...)
		if err == nil {
			err = sc.Check(out)
		}
		if err != nil {
			failed++
			entry.WithError(err).Warn("scenario failed")
			fmt.Fprintf(a.out, "FAIL %s: %v\n", sc.Name, err)
			continue
		}
		entry.Debug("scenario passed")
		fmt.Fprintf(a.out, "PASS %s\n", sc.Name)
	}

	a.log.WithFields(logrus.Fields{"total": len(scs), "failed": failed}).Info("scenarios done")
	if failed > 0 {
		return fmt.Errorf("%d of %d: %w", failed, len(scs), errScenariosFailed)
	}
	return nil
}
