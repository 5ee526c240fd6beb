package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/landmarks/cityio"
	"github.com/katalvlaran/landmarks/roads"
)

func newRoadsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "roads [file]",
		Short: "List new roads that keep the X–Y distance (input: N M X Y, then M pairs)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRoads(args)
		},
	}
}

func (a *app) runRoads(args []string) error {
	f, err := a.input(args)
	if err != nil {
		return err
	}
	defer f.Close()

	opts, mode, err := a.planOptions()
	if err != nil {
		return err
	}

	q, err := cityio.ReadRoadQuery(f)
	if err != nil {
		return err
	}
	g, err := q.Graph(a.graphOptions()...)
	if err != nil {
		return err
	}

	res, err := roads.Plan(g, q.X, q.Y, opts...)
	if err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"nodes":    q.Nodes,
		"roads":    len(q.Roads),
		"x":        q.X,
		"y":        q.Y,
		"mode":     mode,
		"status":   res.Status,
		"distance": res.OriginalDistance,
		"pairs":    len(res.Pairs),
	}).Info("road plan")

	return cityio.WriteRoadResult(a.out, res)
}
