package main

import (
	"github.com/spf13/cobra"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo [values...]",
		Short: "Build a web from the given values and print it",
		Long: `Demo appends every argument to an empty web and prints it level by level.
Without arguments the values 1..10 are used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.newWeb()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}
			}
			for _, v := range args {
				w.Add(v)
			}

			return w.Print(cmd.OutOrStdout())
		},
	}
}
