package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/stuarthighley/wadrec/internal/config"
	"github.com/stuarthighley/wadrec/internal/testutil"
)

// testWAD writes a small IWAD with one of each lump kind wadinfo reports on.
func testWAD(t *testing.T) string {
	t.Helper()

	playpal := make([]byte, 14*256*3)
	for i := range playpal {
		playpal[i] = byte(i)
	}
	colormap := make([]byte, 34*256)
	for i := range colormap {
		colormap[i] = byte(i)
	}
	endoom := make([]byte, 4000)
	for i := 0; i < len(endoom); i += 2 {
		endoom[i] = ' '
	}
	copy(endoom, []byte{'B', 0x07, 'Y', 0x07, 'E', 0x07})

	texture1 := testutil.LE(uint32(1), int32(8), "STARTAN3", uint32(0), uint16(64), uint16(128), uint32(0), uint16(1),
		int16(0), int16(0), uint16(0), uint16(1), uint16(0))
	picture := testutil.LE(int16(1), int16(2), int16(0), int16(0), uint32(12))
	picture = append(picture, 0, 2, 0, 5, 6, 0, 0xff)
	sound := testutil.LE(uint16(3), uint16(11025), uint32(35))
	sound = append(sound, make([]byte, 35)...)
	music := append([]byte("MUS\x1a"), testutil.LE(uint16(1), uint16(18), uint16(1), uint16(0), uint16(1), uint16(0), uint16(30))...)
	music = append(music, 0x60)

	return testutil.NewBuilder("IWAD").
		Add("PLAYPAL", playpal).
		Add("COLORMAP", colormap).
		Add("ENDOOM", endoom).
		SquareLevel("E1M1").
		SquareLevel("E1M2").
		Add("TEXTURE1", texture1).
		Add("PNAMES", testutil.LE(uint32(1), "WALL00_1")).
		Add("HELP1", picture).
		Add("DSPISTOL", sound).
		Add("D_E1M1", music).
		Marker("S_START").
		Add("TROOA1", picture).
		Add("TROOB0", picture).
		Marker("S_END").
		Marker("F_START").
		Add("FLOOR4_8", make([]byte, 64*64)).
		Marker("F_END").
		WriteFile(t, "test.wad")
}

// setupTest points the global config at wadPath and resets output flags.
func setupTest(t *testing.T, wadPath string) *cobra.Command {
	t.Helper()
	cfg = &config.Config{
		IWAD:           wadPath,
		Metadata:       filepath.Join(t.TempDir(), "doom.toml"),
		LevelCacheSize: 4,
	}
	jsonOut = false
	return &cobra.Command{}
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	// Drain concurrently so large outputs cannot fill the pipe
	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout
	return string(<-done), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
