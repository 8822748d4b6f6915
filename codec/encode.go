package codec

import (
	"bufio"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/chaos-io/gif2alpha/anim"
	"github.com/kettek/apng"
	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
)

// Encode 按扩展名写出动图。先写临时文件再改名，失败时不会留下半个文件。
// GIF 是调色板量化的有损格式，lossless 为 true 时拒绝写 GIF。
func (c *Codec) Encode(path string, seq *anim.Sequence, lossless bool) error {
	format, err := OutputFormat(path)
	if err != nil {
		return err
	}
	if format == FormatGIF && lossless {
		return errors.Wrap(ErrLossyFormat, "gif output is palette-quantized, disable lossless or write .png")
	}
	if err := seq.Validate(); err != nil {
		return err
	}

	return c.writeAtomic(path, func(w io.Writer) error {
		switch format {
		case FormatGIF:
			return encodeGIF(w, seq)
		default:
			return encodeAPNG(w, seq)
		}
	})
}

func (c *Codec) writeAtomic(path string, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := c.fs.MkdirAll(dir, os.ModePerm); err != nil {
		return errors.Wrapf(err, "create output directory %s", dir)
	}

	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+ksuid.New().String()+".tmp")
	f, err := c.fs.Create(tmp)
	if err != nil {
		return errors.Wrapf(err, "create %s", tmp)
	}
	defer func() {
		if err != nil {
			_ = c.fs.Remove(tmp)
		}
	}()

	bw := bufio.NewWriter(f)
	if err = write(bw); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "encode %s", path)
	}
	if err = bw.Flush(); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", tmp)
	}

	if err = c.fs.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "rename %s to %s", tmp, path)
	}
	return nil
}

func encodeAPNG(w io.Writer, seq *anim.Sequence) error {
	a := apng.APNG{
		Frames:    make([]apng.Frame, len(seq.Frames)),
		LoopCount: uint(seq.LoopCount),
	}
	for i, f := range seq.Frames {
		num, den := apngDelay(f.Duration)
		// dispose/blend 都用默认值 none/source：每帧整张覆盖画布，透明区域不会叠上前一帧
		a.Frames[i] = apng.Frame{
			Image:            f.Image,
			DelayNumerator:   num,
			DelayDenominator: den,
		}
	}
	return apng.Encode(w, a)
}

// apngDelay 用毫秒表示，超过 uint16 时退到 1/100 秒
func apngDelay(d time.Duration) (num, den uint16) {
	ms := d.Milliseconds()
	if ms <= 0xffff {
		return uint16(ms), 1000
	}
	cs := ms / 10
	if cs > 0xffff {
		cs = 0xffff
	}
	return uint16(cs), 100
}

// gifPalette 第 0 项透明，其余 255 色取自 Plan9（去掉第 254 项，保留纯黑和纯白）
var (
	gifOpaquePalette = func() color.Palette {
		p := make(color.Palette, 0, 255)
		p = append(p, palette.Plan9[:254]...)
		return append(p, palette.Plan9[255])
	}()
	gifPalette = append(color.Palette{color.NRGBA{}}, gifOpaquePalette...)
)

func encodeGIF(w io.Writer, seq *anim.Sequence) error {
	g := &gif.GIF{
		Image:           make([]*image.Paletted, len(seq.Frames)),
		Delay:           make([]int, len(seq.Frames)),
		Disposal:        make([]byte, len(seq.Frames)),
		LoopCount:       loopCountToGIF(seq.LoopCount),
		BackgroundIndex: 0,
	}

	lookup := map[color.NRGBA]uint8{}
	for i, f := range seq.Frames {
		g.Image[i] = quantize(f.Image, lookup)
		g.Delay[i] = int((f.Duration + 5*time.Millisecond) / (10 * time.Millisecond))
		// 透明区域要清掉上一帧，否则会透出前面的画面
		g.Disposal[i] = gif.DisposalBackground
	}
	return gif.EncodeAll(w, g)
}

// quantize alpha < 128 的像素映射到透明项，其余取最近的不透明颜色
func quantize(img *image.NRGBA, lookup map[color.NRGBA]uint8) *image.Paletted {
	b := img.Bounds()
	pm := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), gifPalette)

	for y := 0; y < b.Dy(); y++ {
		row := y * img.Stride
		for x := 0; x < b.Dx(); x++ {
			i := row + x*4
			if img.Pix[i+3] < 0x80 {
				pm.Pix[y*pm.Stride+x] = 0
				continue
			}

			c := color.NRGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: 0xff}
			idx, ok := lookup[c]
			if !ok {
				idx = uint8(gifOpaquePalette.Index(c) + 1)
				lookup[c] = idx
			}
			pm.Pix[y*pm.Stride+x] = idx
		}
	}
	return pm
}
