package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/landmarks/cityio"
	"github.com/katalvlaran/landmarks/spanning"
)

func newWalkCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk [file]",
		Short: "Walk every landmark depth-first (input: M N, then N pairs)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runWalk(args)
		},
	}
	cmd.Flags().IntVar(&a.start, "start", spanning.ReferenceStart, fmt.Sprintf("Start landmark label (env: %s)", envStart))
	return cmd
}

func (a *app) runWalk(args []string) error {
	f, err := a.input(args)
	if err != nil {
		return err
	}
	defer f.Close()

	q, err := cityio.ReadWalkQuery(f)
	if err != nil {
		return err
	}
	g, err := q.Graph(a.graphOptions()...)
	if err != nil {
		return err
	}

	res, err := spanning.Walk(g, a.start, spanning.WithOnVisit(func(label int) error {
		a.log.WithField("landmark", label).Debug("visit")
		return nil
	}))
	if err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"nodes":     q.Nodes,
		"roads":     len(q.Roads),
		"start":     a.start,
		"connected": res.Connected,
		"visited":   len(res.Order),
	}).Info("spanning walk")

	return cityio.WriteWalkResult(a.out, res)
}
