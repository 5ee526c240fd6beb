package main

import "github.com/spf13/cobra"

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "landmarks",
		Short: "Landmark road planner and spanning walk",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.resolve(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(a.in)
	root.SetOut(a.out)

	root.PersistentFlags().StringVar(&a.level, "log-level", "info", "Log level: debug|info|warn|error (env: "+envLogLevel+")")
	root.PersistentFlags().StringVar(&a.mode, "mode", "literal", "Unreachable arithmetic: literal|infinite (env: "+envMode+")")
	root.PersistentFlags().BoolVar(&a.index, "indexed", false, "Back road lookups with a hash index")

	root.AddCommand(newRoadsCmd(a))
	root.AddCommand(newWalkCmd(a))
	root.AddCommand(newScenariosCmd(a))
	root.AddCommand(newStatsCmd(a))
	return root
}
