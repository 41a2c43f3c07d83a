package main

import (
	"os"

	"github.com/spf13/cobra"
	wad "github.com/stuarthighley/wadrec"
)

func init() {
	rootCmd.AddCommand(newLevelCmd())
}

func newLevelCmd() *cobra.Command {
	var tree, lines bool
	cmd := &cobra.Command{
		Use:   "level <name>",
		Short: "Decode one level and summarise its records",
		Example: `  wadinfo level E1M1
  wadinfo level e1m1 --tree
  wadinfo level E1M2 --lines --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLevel(cmd, args[0], tree, lines)
		},
	}
	cmd.Flags().BoolVar(&tree, "tree", false, "Print the BSP tree")
	cmd.Flags().BoolVar(&lines, "lines", false, "List linedefs with their flags and specials")
	return cmd
}

type levelSummary struct {
	Name       string      `json:"name"`
	Lumps      []string    `json:"lumps"`
	Things     int         `json:"things"`
	Linedefs   int         `json:"linedefs"`
	Sidedefs   int         `json:"sidedefs"`
	Vertexes   int         `json:"vertexes"`
	Segs       int         `json:"segs"`
	Subsectors int         `json:"subsectors"`
	Nodes      int         `json:"nodes"`
	Sectors    int         `json:"sectors"`
	Reject     int         `json:"reject_bytes"`
	Blockmap   int         `json:"blockmap_bytes"`
	Sky        string      `json:"sky,omitempty"`
	Lines      []lineEntry `json:"lines,omitempty"`
}

type lineEntry struct {
	Index   int    `json:"index"`
	Start   uint16 `json:"start"`
	End     uint16 `json:"end"`
	Flags   string `json:"flags"`
	Special string `json:"special"`
	Tag     uint16 `json:"tag"`
}

func runLevel(cmd *cobra.Command, name string, tree, lines bool) error {
	w, err := openArchive(cmd)
	if err != nil {
		return err
	}
	lumps, err := w.LevelLumps(name)
	if err != nil {
		return err
	}
	l, err := w.ReadLevel(name)
	if err != nil {
		return err
	}

	s := levelSummary{
		Name:       l.Name,
		Things:     len(l.Things),
		Linedefs:   len(l.Linedefs),
		Sidedefs:   len(l.Sidedefs),
		Vertexes:   len(l.Vertexes),
		Segs:       len(l.Segs),
		Subsectors: len(l.Subsectors),
		Nodes:      len(l.Nodes),
		Sectors:    len(l.Sectors),
		Reject:     len(l.Reject),
		Blockmap:   len(l.Blockmap),
	}
	for _, li := range lumps {
		s.Lumps = append(s.Lumps, li.Name)
	}
	if raw := w.Metadata(); raw != nil {
		meta, err := wad.ParseMetadata(raw)
		if err != nil {
			return err
		}
		if sky, ok := meta.SkyFor(l.Name); ok {
			s.Sky = sky.TextureName
		}
	}
	if lines {
		for i, ld := range l.Linedefs {
			s.Lines = append(s.Lines, lineEntry{
				Index:   i,
				Start:   ld.StartVertex,
				End:     ld.EndVertex,
				Flags:   ld.Flags.String(),
				Special: ld.Special().String(),
				Tag:     ld.SectorTag,
			})
		}
	}

	if jsonOut {
		return printJSON(s)
	}
	printInfo("Level %s: %v\n", s.Name, s.Lumps)
	printInfo("  things:     %d\n", s.Things)
	printInfo("  linedefs:   %d\n", s.Linedefs)
	printInfo("  sidedefs:   %d\n", s.Sidedefs)
	printInfo("  vertexes:   %d\n", s.Vertexes)
	printInfo("  segs:       %d\n", s.Segs)
	printInfo("  subsectors: %d\n", s.Subsectors)
	printInfo("  nodes:      %d\n", s.Nodes)
	printInfo("  sectors:    %d\n", s.Sectors)
	printInfo("  reject:     %d bytes\n", s.Reject)
	printInfo("  blockmap:   %d bytes\n", s.Blockmap)
	if s.Sky != "" {
		printInfo("  sky:        %s\n", s.Sky)
	}
	for _, e := range s.Lines {
		printInfo("  line %4d: %d -> %d [%s] %s tag %d\n", e.Index, e.Start, e.End, e.Flags, e.Special, e.Tag)
	}
	if tree {
		return wad.FprintTree(os.Stdout, l)
	}
	return nil
}
