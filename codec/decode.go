package codec

import (
	"bytes"
	"image"
	"image/gif"
	_ "image/jpeg"
	"time"

	"github.com/chaos-io/gif2alpha/anim"
	"github.com/chaos-io/gif2alpha/util"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Decode 读取动图，每一帧都是逻辑屏幕大小的完整画面
func (c *Codec) Decode(path string) (*anim.Sequence, error) {
	seq, _, err := c.decode(path)
	return seq, err
}

func (c *Codec) decode(path string) (*anim.Sequence, string, error) {
	data, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return nil, "", errors.Wrapf(err, "read %s", path)
	}

	switch {
	case bytes.HasPrefix(data, []byte("GIF8")):
		seq, err := decodeGIF(data)
		if err != nil {
			return nil, "", errors.Wrapf(ErrDecode, "%s: %v", path, err)
		}
		return seq, FormatGIF, nil
	case bytes.HasPrefix(data, pngSignature):
		seq, format, err := decodePNG(data)
		if err != nil {
			return nil, "", errors.Wrapf(ErrDecode, "%s: %v", path, err)
		}
		return seq, format, nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", errors.Wrapf(ErrDecode, "%s: %v", path, err)
	}
	return stillSequence(img), format, nil
}

// stillSequence 静态图当作只有一帧的动画
func stillSequence(img image.Image) *anim.Sequence {
	return &anim.Sequence{
		Frames:    []anim.Frame{{Image: util.CloneNRGBA(img), Duration: anim.DefaultFrameDuration}},
		LoopCount: anim.LoopForever,
	}
}

func decodeGIF(data []byte) (*anim.Sequence, error) {
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if len(g.Image) == 0 {
		return nil, errors.New("gif has no frames")
	}

	frames := composeGIF(g)
	seq := &anim.Sequence{
		Frames:    make([]anim.Frame, len(frames)),
		LoopCount: loopCountFromGIF(g.LoopCount),
	}
	for i, img := range frames {
		d := anim.DefaultFrameDuration
		// delay 为 0 当作没有时长信息，和静态图一样用默认值
		if i < len(g.Delay) && g.Delay[i] > 0 {
			d = time.Duration(g.Delay[i]) * 10 * time.Millisecond
		}
		seq.Frames[i] = anim.Frame{Image: img, Duration: d}
	}
	return seq, nil
}

// composeGIF 把每一帧画到逻辑屏幕上，按 disposal 处理下一帧之前的画布
func composeGIF(g *gif.GIF) []*image.NRGBA {
	w, h := g.Config.Width, g.Config.Height
	if w == 0 || h == 0 {
		// 逻辑屏幕尺寸缺失时用所有帧的并集
		var r image.Rectangle
		for _, pm := range g.Image {
			r = r.Union(pm.Bounds())
		}
		w, h = r.Max.X, r.Max.Y
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	frames := make([]*image.NRGBA, 0, len(g.Image))

	for i, pm := range g.Image {
		var disposal byte
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}

		var saved *image.NRGBA
		if disposal == gif.DisposalPrevious {
			saved = util.CloneNRGBA(canvas)
		}

		r := pm.Bounds().Intersect(canvas.Bounds())
		draw.Draw(canvas, r, pm, r.Min, draw.Over)
		frames = append(frames, util.CloneNRGBA(canvas))

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, r, image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = saved
		}
	}
	return frames
}

// GIF 的 LoopCount：0 无限，-1 只播一次，n 表示再重复 n 次。
// Sequence 里统一用播放次数，0 表示无限。
func loopCountFromGIF(n int) int {
	switch {
	case n == 0:
		return anim.LoopForever
	case n < 0:
		return 1
	default:
		return n + 1
	}
}

func loopCountToGIF(plays int) int {
	switch {
	case plays <= 0:
		return 0
	case plays == 1:
		return -1
	default:
		return plays - 1
	}
}
