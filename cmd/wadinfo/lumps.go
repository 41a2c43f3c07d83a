package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newLumpsCmd())
}

func newLumpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lumps [pattern]",
		Short: "List directory entries, optionally filtered by a glob pattern",
		Example: `  wadinfo lumps
  wadinfo lumps 'E1M*'
  wadinfo lumps 'SKY?' --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := "*"
			if len(args) == 1 {
				pattern = args[0]
			}
			return runLumps(cmd, pattern)
		},
	}
}

type lumpRow struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Offset int    `json:"offset"`
	Size   int    `json:"size"`
}

func runLumps(cmd *cobra.Command, pattern string) error {
	w, err := openArchive(cmd)
	if err != nil {
		return err
	}
	matches, err := w.Find(pattern)
	if err != nil {
		return err
	}

	// Find returns entries in directory order, so walking the full list recovers indexes.
	all := w.Lumps()
	rows := make([]lumpRow, 0, len(matches))
	j := 0
	for i, li := range all {
		if j < len(matches) && li == matches[j] {
			rows = append(rows, lumpRow{Index: i, Name: li.Name, Offset: li.Filepos, Size: li.Size})
			j++
		}
	}

	if jsonOut {
		return printJSON(rows)
	}
	printInfo("%s %s, %d lumps\n", cfg.IWAD, w.Identifier(), w.NumLumps())
	for _, r := range rows {
		printInfo("%5d %-8s %10d %8d\n", r.Index, r.Name, r.Offset, r.Size)
	}
	return nil
}
