package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	wad "github.com/stuarthighley/wadrec"
)

func init() {
	rootCmd.AddCommand(newCheckCmd())
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify record layouts and decode every level in the WAD",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd)
		},
	}
}

type checkResult struct {
	Level    string `json:"level"`
	Error    string `json:"error,omitempty"`
	Duration string `json:"duration"`
}

func runCheck(cmd *cobra.Command) error {
	if err := wad.CheckSchemas(); err != nil {
		return fmt.Errorf("record layouts: %w", err)
	}
	printVerbose("Record layouts match canonical sizes\n")

	w, err := openArchive(cmd)
	if err != nil {
		return err
	}
	if raw := w.Metadata(); raw != nil {
		if _, err := wad.ParseMetadata(raw); err != nil {
			return err
		}
		printVerbose("Metadata parsed\n")
	}

	var results []checkResult
	var errs []error
	for _, name := range w.LevelNames() {
		start := time.Now()
		err := checkLevel(w, name)
		r := checkResult{Level: name, Duration: time.Since(start).String()}
		if err != nil {
			r.Error = err.Error()
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
		results = append(results, r)
	}

	if jsonOut {
		if err := printJSON(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			status := "ok"
			if r.Error != "" {
				status = r.Error
			}
			printInfo("%-8s %s (%s)\n", r.Level, status, r.Duration)
		}
	}
	return errors.Join(errs...)
}

// checkLevel decodes a level's records and, where present, its REJECT and BLOCKMAP lumps.
func checkLevel(w *wad.Archive, name string) error {
	l, err := w.ReadLevel(name)
	if err != nil {
		return err
	}
	if len(l.Reject) > 0 {
		if _, err := l.RejectTable(); err != nil {
			return err
		}
	}
	if len(l.Blockmap) > 0 {
		if _, err := l.DecodeBlockmap(); err != nil {
			return err
		}
	}
	return wad.FprintTree(io.Discard, l)
}
