package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newTexturesCmd())
}

func newTexturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "textures",
		Short: "List wall texture definitions and flats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTextures(cmd)
		},
	}
}

type textureRow struct {
	Name    string   `json:"name"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Masked  bool     `json:"masked"`
	Patches []string `json:"patches"`
}

func runTextures(cmd *cobra.Command) error {
	w, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defs, err := w.TextureDefs()
	if err != nil {
		return err
	}
	flats, err := w.Flats()
	if err != nil {
		return err
	}

	if jsonOut {
		out := struct {
			Textures []textureRow `json:"textures"`
			Flats    []string     `json:"flats"`
		}{}
		for _, t := range defs {
			out.Textures = append(out.Textures, textureRow{t.Name, t.Width, t.Height, t.IsMasked, t.PatchNames})
		}
		for _, f := range flats {
			out.Flats = append(out.Flats, f.Name)
		}
		return printJSON(out)
	}
	for _, t := range defs {
		printInfo("Texture: %4d %-8s %3dx%-3d %d patches\n", t.Index, t.Name, t.Width, t.Height, len(t.Patches))
	}
	for _, f := range flats {
		printInfo("Flat: %4d %s\n", f.Index, f.Name)
	}
	return nil
}
