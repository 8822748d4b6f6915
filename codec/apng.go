package codec

import (
	"bytes"
	"image"
	"time"

	"github.com/chaos-io/gif2alpha/anim"
	"github.com/chaos-io/gif2alpha/util"
	"github.com/kettek/apng"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// decodePNG 没有 fcTL 的普通 PNG 按静态图处理，APNG 逐帧合成到画布上
func decodePNG(data []byte) (*anim.Sequence, string, error) {
	a, err := apng.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}
	if len(a.Frames) == 0 || a.Frames[0].Image == nil {
		return nil, "", errors.New("png has no image")
	}

	// 默认图不属于动画
	frames := a.Frames
	if frames[0].IsDefault {
		frames = frames[1:]
	}
	if len(frames) == 0 {
		return stillSequence(a.Frames[0].Image), FormatPNG, nil
	}

	b := a.Frames[0].Image.Bounds()
	images, err := composeAPNG(frames, b.Dx(), b.Dy())
	if err != nil {
		return nil, "", err
	}

	seq := &anim.Sequence{
		Frames:    make([]anim.Frame, len(frames)),
		LoopCount: int(a.LoopCount),
	}
	for i, img := range images {
		seq.Frames[i] = anim.Frame{Image: img, Duration: durationFromAPNG(frames[i])}
	}
	return seq, FormatAPNG, nil
}

// composeAPNG 按 blend_op 画到画布上，再按 dispose_op 处理下一帧之前的画布
func composeAPNG(frames []apng.Frame, w, h int) ([]*image.NRGBA, error) {
	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	out := make([]*image.NRGBA, 0, len(frames))

	for i, f := range frames {
		if f.Image == nil {
			return nil, errors.Errorf("apng frame %d has no image data", i)
		}

		dispose := f.DisposeOp
		// 第一帧的 PREVIOUS 按 BACKGROUND 处理
		if i == 0 && dispose == apng.DISPOSE_OP_PREVIOUS {
			dispose = apng.DISPOSE_OP_BACKGROUND
		}

		var saved *image.NRGBA
		if dispose == apng.DISPOSE_OP_PREVIOUS {
			saved = util.CloneNRGBA(canvas)
		}

		src := f.Image.Bounds()
		r := image.Rect(f.XOffset, f.YOffset, f.XOffset+src.Dx(), f.YOffset+src.Dy()).Intersect(canvas.Bounds())

		op := draw.Over
		if f.BlendOp == apng.BLEND_OP_SOURCE {
			op = draw.Src
		}
		draw.Draw(canvas, r, f.Image, src.Min, op)
		out = append(out, util.CloneNRGBA(canvas))

		switch dispose {
		case apng.DISPOSE_OP_BACKGROUND:
			draw.Draw(canvas, r, image.Transparent, image.Point{}, draw.Src)
		case apng.DISPOSE_OP_PREVIOUS:
			canvas = saved
		}
	}
	return out, nil
}

// durationFromAPNG delay_num/delay_den 秒，分母为 0 时按 1/100 秒；为 0 的时长用默认值
func durationFromAPNG(f apng.Frame) time.Duration {
	den := f.DelayDenominator
	if den == 0 {
		den = 100
	}
	d := time.Duration(f.DelayNumerator) * time.Second / time.Duration(den)
	if d <= 0 {
		return anim.DefaultFrameDuration
	}
	return d
}
