package main

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/chaos-io/gif2alpha/config"
	"github.com/matryer/is"
)

// writeTestGIF 黑底动图，中间一个红色方块，帧时长 80/120/40ms
func writeTestGIF(t *testing.T, path string) {
	t.Helper()

	pal := color.Palette{color.Black, color.RGBA{R: 0xff, A: 0xff}}
	g := &gif.GIF{LoopCount: 0}
	for _, delay := range []int{8, 12, 4} {
		img := image.NewPaletted(image.Rect(0, 0, 8, 8), pal)
		for y := 3; y < 5; y++ {
			for x := 3; x < 5; x++ {
				img.SetColorIndex(x, y, 1)
			}
		}
		g.Image = append(g.Image, img)
		g.Delay = append(g.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := gif.EncodeAll(f, g); err != nil {
		t.Fatal(err)
	}
}

func TestRunConvert(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "mascot.gif")
	out := filepath.Join(dir, "out", "mascot.png")
	writeTestGIF(t, in)

	var stdout, stderr bytes.Buffer
	err := run([]string{"-in", in, "-out", out, "-bg-thresh", "40"}, &stdout, &stderr)
	is.NoErr(err)
	is.Equal(stdout.String(), "OK: wrote "+out+"\n")

	data, err := os.ReadFile(out)
	is.NoErr(err)
	is.True(bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")))
	is.True(bytes.Contains(data, []byte("acTL"))) // 动画 PNG

	stdout.Reset()
	is.NoErr(run([]string{"inspect", out}, &stdout, &stderr))
	is.Equal(stdout.String(), "format: apng\n"+
		"frames: 3\n"+
		"size: 8x8\n"+
		"loop: 0 (forever)\n"+
		"first durations (ms): [80 120 40]\n")
}

func TestRunConvertToGIFAndInspect(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "mascot.gif")
	out := filepath.Join(dir, "mascot-alpha.gif")
	writeTestGIF(t, in)

	var stdout, stderr bytes.Buffer
	err := run([]string{"-in", in, "-out", out, "-bg-thresh", "40", "-lossless=false", "-log-level", "error"}, &stdout, &stderr)
	is.NoErr(err)
	is.Equal(stderr.Len(), 0) // error 级别下没有日志

	stdout.Reset()
	is.NoErr(run([]string{"inspect", out}, &stdout, &stderr))
	is.Equal(stdout.String(), "format: gif\n"+
		"frames: 3\n"+
		"size: 8x8\n"+
		"loop: 0 (forever)\n"+
		"first durations (ms): [80 120 40]\n")
}

func TestRunRequiresThreshold(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "mascot.gif")
	writeTestGIF(t, in)

	var stdout, stderr bytes.Buffer
	err := run([]string{"-in", in, "-out", filepath.Join(dir, "out.png")}, &stdout, &stderr)
	is.True(err != nil)
	is.True(bytes.Contains([]byte(err.Error()), []byte(config.ErrThresholdRequired.Error())))
	is.Equal(stdout.Len(), 0)

	_, statErr := os.Stat(filepath.Join(dir, "out.png"))
	is.True(os.IsNotExist(statErr))
}

func TestRunMissingInput(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	err := run([]string{"-in", filepath.Join(dir, "nope.gif"), "-out", filepath.Join(dir, "out.png"), "-bg-thresh", "40"}, &stdout, &stderr)
	is.True(err != nil)
	is.Equal(stdout.Len(), 0)
}

func TestRunHelp(t *testing.T) {
	is := is.New(t)

	var stdout, stderr bytes.Buffer
	is.NoErr(run([]string{"-h"}, &stdout, &stderr))
	is.True(bytes.Contains(stderr.Bytes(), []byte("-bg-thresh")))
}

func TestInspectUsage(t *testing.T) {
	is := is.New(t)

	var stdout bytes.Buffer
	err := run([]string{"inspect"}, &stdout, &stdout)
	is.True(err != nil)
	is.Equal(err.Error(), "usage: gif2alpha inspect <path>")
}
