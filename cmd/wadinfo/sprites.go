package main

import (
	"sort"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "sprites",
		Short: "List sprites with their frame counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSprites(cmd)
		},
	})
}

func runSprites(cmd *cobra.Command) error {
	w, err := openArchive(cmd)
	if err != nil {
		return err
	}
	sprites, err := w.Sprites()
	if err != nil {
		return err
	}

	if jsonOut {
		frames := make(map[string]int, len(sprites))
		for name, s := range sprites {
			frames[name] = len(s)
		}
		return printJSON(frames)
	}
	names := make([]string, 0, len(sprites))
	for name := range sprites {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		printInfo("%s %d frames\n", name, len(sprites[name]))
	}
	return nil
}
