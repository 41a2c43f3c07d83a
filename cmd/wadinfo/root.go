package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/spf13/cobra"
	wad "github.com/stuarthighley/wadrec"
	"github.com/stuarthighley/wadrec/internal/config"
)

var (
	// Global flags
	iwadPath   string
	metaPath   string
	configPath string
	verbose    bool
	jsonOut    bool

	// cfg is resolved from the config file and flags before any command runs
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "wadinfo",
	Short: "Inspect Doom WAD archives",
	Long: `wadinfo decodes the lump directory and level records of a Doom WAD
archive and reports what it finds.`,
	SilenceUsage:      true,
	PersistentPreRunE: resolveConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&iwadPath, "iwad", "i", "", "WAD file to use (default doom1.wad)")
	rootCmd.PersistentFlags().StringVarP(&metaPath, "metadata", "m", "", "TOML metadata file (default doom.toml)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveConfig loads the config file, then lets explicitly set flags override it.
func resolveConfig(cmd *cobra.Command, args []string) error {
	c := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		c = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("iwad") {
		c.IWAD = iwadPath
	}
	if flags.Changed("metadata") {
		c.Metadata = metaPath
	}
	if flags.Changed("verbose") {
		c.Verbose = verbose
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c

	if cfg.Verbose {
		wad.SetLogger(log.New(os.Stderr, "", log.LstdFlags))
	}
	return nil
}

// openArchive opens the configured WAD. A missing metadata file is only an error when the
// metadata path was given explicitly.
func openArchive(cmd *cobra.Command) (*wad.Archive, error) {
	meta := cfg.Metadata
	if _, err := os.Stat(meta); errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("metadata") {
		printVerbose("No metadata file %s, continuing without it\n", meta)
		meta = ""
	}
	printVerbose("Opening WAD: %s\n", cfg.IWAD)
	w, err := wad.OpenFileWithOptions(cfg.IWAD, meta, wad.Options{LevelCacheSize: cfg.LevelCacheSize})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", cfg.IWAD, err)
	}
	return w, nil
}

// printInfo prints to stdout
func printInfo(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if cfg != nil && cfg.Verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
