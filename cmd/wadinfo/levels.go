package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newLevelsCmd())
}

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the levels in the WAD",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLevels(cmd)
		},
	}
}

func runLevels(cmd *cobra.Command) error {
	w, err := openArchive(cmd)
	if err != nil {
		return err
	}

	names := w.LevelNames()
	if jsonOut {
		return printJSON(names)
	}
	for i, name := range names {
		printInfo("%3d %s\n", i, name)
	}
	printVerbose("%d levels\n", len(names))
	return nil
}
