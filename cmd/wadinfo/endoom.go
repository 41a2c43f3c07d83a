package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "endoom",
		Short: "Print the ENDOOM exit screen as text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEndoom(cmd)
		},
	})
}

func runEndoom(cmd *cobra.Command) error {
	w, err := openArchive(cmd)
	if err != nil {
		return err
	}
	e, err := w.Endoom()
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(map[string]string{"text": e.Text()})
	}
	printInfo("%s", e.Text())
	return nil
}
