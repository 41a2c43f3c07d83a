package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:     "music <name>",
		Short:   "Show the header of a MUS music lump",
		Example: "  wadinfo music D_E1M1",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMusic(cmd, args[0])
		},
	})
}

func runMusic(cmd *cobra.Command, name string) error {
	w, err := openArchive(cmd)
	if err != nil {
		return err
	}
	m, err := w.Music(name)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(map[string]any{
			"name":               m.Name,
			"primary_channels":   m.PrimaryChannels,
			"secondary_channels": m.SecondaryChannels,
			"instruments":        m.Instruments,
			"score_bytes":        len(m.Score),
		})
	}
	printInfo("%s: %d primary, %d secondary channels, %d instruments, %d score bytes\n",
		m.Name, m.PrimaryChannels, m.SecondaryChannels, len(m.Instruments), len(m.Score))
	return nil
}
