package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/landmarks/cityio"
	"github.com/katalvlaran/landmarks/dfs"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file]",
		Short: "Summarize a road network (input: M N, then N pairs)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStats(args)
		},
	}
}

func (a *app) runStats(args []string) error {
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

	comps, err := dfs.Components(g)
	if err != nil {
		return err
	}
	forest, err := dfs.IsForest(g)
	if err != nil {
		return err
	}
	st := g.Stats()

	fmt.Fprintf(a.out, "nodes %d\n", st.NodeCount)
	fmt.Fprintf(a.out, "roads %d\n", st.EdgeCount)
	fmt.Fprintf(a.out, "distinct %d\n", st.DistinctEdges)
	fmt.Fprintf(a.out, "isolated %d\n", st.Isolated)
	fmt.Fprintf(a.out, "max-degree %d\n", st.MaxDegree)
	fmt.Fprintf(a.out, "components %d\n", len(comps))
	fmt.Fprintf(a.out, "forest %t\n", forest)
	return nil
}
