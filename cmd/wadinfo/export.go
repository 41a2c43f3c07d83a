package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/spf13/cobra"
	wad "github.com/stuarthighley/wadrec"
)

func init() {
	rootCmd.AddCommand(newExportCmd())
}

func newExportCmd() *cobra.Command {
	var opts exportOptions
	cmd := &cobra.Command{
		Use:   "export <picture|flat|sound> <name> <out>",
		Short: "Render a picture or flat lump to PNG, or a sound lump to WAV",
		Example: `  wadinfo export picture HELP1 help1.png
  wadinfo export flat FLOOR4_8 floor.png --scale 4
  wadinfo export sound DSPISTOL pistol.wav`,
		Args:      cobra.ExactArgs(3),
		ValidArgs: []string{"picture", "flat", "sound"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], args[1], args[2], opts)
		},
	}
	cmd.Flags().IntVar(&opts.scale, "scale", 1, "Integer scale factor")
	cmd.Flags().IntVar(&opts.palette, "palette", 0, "PLAYPAL palette index")
	cmd.Flags().IntVar(&opts.colormap, "colormap", 0, "COLORMAP index")
	return cmd
}

type exportOptions struct {
	scale    int
	palette  int
	colormap int
}

func runExport(cmd *cobra.Command, kind, name, out string, opts exportOptions) error {
	if opts.scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", opts.scale)
	}
	if opts.palette < 0 || opts.palette >= wad.NumPalettes {
		return fmt.Errorf("palette must be in [0,%d), got %d", wad.NumPalettes, opts.palette)
	}
	if opts.colormap < 0 || opts.colormap >= wad.NumColorMaps {
		return fmt.Errorf("colormap must be in [0,%d), got %d", wad.NumColorMaps, opts.colormap)
	}

	w, err := openArchive(cmd)
	if err != nil {
		return err
	}
	if kind == "sound" {
		s, err := w.Sound(name)
		if err != nil {
			return err
		}
		if err := writeWAV(out, s); err != nil {
			return err
		}
		printVerbose("Wrote %s (%d samples at %d Hz)\n", out, len(s.Samples), s.SampleRate)
		return nil
	}

	palettes, err := w.Palettes()
	if err != nil {
		return err
	}
	colormaps, err := w.ColorMaps()
	if err != nil {
		return err
	}
	palette := &palettes[opts.palette]
	colormap := &colormaps[opts.colormap]

	var img *image.RGBA
	switch kind {
	case "picture":
		p, err := w.Picture(name, wad.TransparentIndex)
		if err != nil {
			return err
		}
		if opts.scale > 1 {
			p = p.Scaled(p.Width*opts.scale, p.Height*opts.scale)
		}
		img = pictureImage(p, palette, colormap)
	case "flat":
		f, err := findFlat(w, name)
		if err != nil {
			return err
		}
		img = flatImage(f, palette, colormap, opts.scale)
	default:
		return fmt.Errorf("unknown export kind %q, want picture, flat or sound", kind)
	}

	if err := writePNG(out, img); err != nil {
		return err
	}
	printVerbose("Wrote %s (%dx%d)\n", out, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}

func findFlat(w *wad.Archive, name string) (*wad.Flat, error) {
	flats, err := w.Flats()
	if err != nil {
		return nil, err
	}
	for i := range flats {
		if wad.NamesEqual(flats[i].Name, name) {
			return &flats[i], nil
		}
	}
	return nil, fmt.Errorf("%w: flat %q", wad.ErrNotFound, name)
}

// pictureImage leaves transparent pixels at zero alpha.
func pictureImage(p *wad.Picture, palette *wad.Palette, colormap *wad.ColorMap) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))

	// Set color for each pixel.
	for x := range p.Columns {
		for y, b := range p.Columns[x] {
			if b != wad.TransparentIndex {
				c := palette[colormap[b]]
				img.SetRGBA(x, y, color.RGBA{c.Red, c.Green, c.Blue, 0xff})
			}
		}
	}
	return img
}

func flatImage(flat *wad.Flat, palette *wad.Palette, colormap *wad.ColorMap, scale int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, wad.FlatWidth*scale, wad.FlatHeight*scale))

	// Set color for each pixel.
	for i, b := range flat.Data {
		c := palette[colormap[b]]
		rgb := color.RGBA{c.Red, c.Green, c.Blue, 0xff}
		x, y := (i%wad.FlatWidth)*scale, (i/wad.FlatWidth)*scale
		for dy := 0; dy < scale; dy++ {
			for dx := 0; dx < scale; dx++ {
				img.SetRGBA(x+dx, y+dy, rgb)
			}
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

// writeWAV writes the sound as 8-bit unsigned mono PCM.
func writeWAV(path string, s *wad.Sound) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: s.SampleRate},
		SourceBitDepth: 8,
		Data:           make([]int, len(s.Samples)),
	}
	for i, b := range s.Samples {
		buf.Data[i] = int(b)
	}

	enc := wav.NewEncoder(f, s.SampleRate, 8, 1, 1)
	if err := enc.Write(buf); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
