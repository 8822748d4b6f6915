// Package pipeline 逐帧抠图：读入动图 -> 每帧去背景 -> 按原时长写出，无限循环
package pipeline

import (
	"image"
	"time"

	"github.com/chaos-io/gif2alpha/anim"
	"github.com/chaos-io/gif2alpha/codec"
	"github.com/chaos-io/gif2alpha/config"
	"github.com/chaos-io/gif2alpha/matte"
	"github.com/chaos-io/gif2alpha/util"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Decoder interface {
	Decode(path string) (*anim.Sequence, error)
}

type Encoder interface {
	Encode(path string, seq *anim.Sequence, lossless bool) error
}

// progressEvery 每处理这么多帧打一条 info 日志
const progressEvery = 10

type Pipeline struct {
	Decoder Decoder
	Encoder Encoder
	// NewRemover 按阈值创建抠图器，为空时用 matte.Engine
	NewRemover func(threshold int) matte.BackgroundRemover
	Log        zerolog.Logger
}

type Result struct {
	Frames  int
	Output  string
	Elapsed time.Duration
}

// New 使用本地文件系统的 codec 和默认抠图引擎
func New(log zerolog.Logger) *Pipeline {
	c := codec.Default()
	return &Pipeline{
		Decoder: c,
		Encoder: c,
		Log:     log,
	}
}

func (p *Pipeline) remover(threshold int) matte.BackgroundRemover {
	if p.NewRemover != nil {
		return p.NewRemover(threshold)
	}
	return matte.NewEngine(threshold)
}

// Run 执行一次完整转换。任何一帧失败都会中止，不会写出缺帧的动画。
func (p *Pipeline) Run(opts config.Options) (Result, error) {
	start := time.Now()
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	defer util.Trace(p.Log, "convert")()

	in, err := p.Decoder.Decode(opts.Input)
	if err != nil {
		return Result{}, errors.Wrap(err, "decode input")
	}

	n := len(in.Frames)
	p.Log.Info().Str("input", opts.Input).Int("frames", n).Int("bg_thresh", opts.Threshold).Msg("loaded animation")

	size := targetSize(in, opts.MaxSize)
	remover := p.remover(opts.Threshold)

	out := &anim.Sequence{
		Frames:    make([]anim.Frame, 0, n),
		LoopCount: anim.LoopForever,
	}
	for i, f := range in.Frames {
		img := resizeTo(f.Image, size)

		matted, err := remover.Remove(img)
		if err != nil {
			return Result{}, errors.Wrapf(err, "frame %d/%d", i+1, n)
		}

		out.Frames = append(out.Frames, anim.Frame{
			Image:    util.ToNRGBA(matted),
			Duration: f.Duration,
		})

		p.Log.Debug().Int("frame", i+1).Int("duration_ms", anim.DurationMillis(f.Duration)).Msg("frame done")
		if (i+1)%progressEvery == 0 {
			p.Log.Info().Msgf("processed %d/%d frames", i+1, n)
		}
	}

	if err := p.Encoder.Encode(opts.Output, out, opts.Lossless); err != nil {
		return Result{}, errors.Wrap(err, "encode output")
	}

	return Result{
		Frames:  len(out.Frames),
		Output:  opts.Output,
		Elapsed: time.Since(start),
	}, nil
}

// targetSize 整个序列统一的输出尺寸，不需要缩放时返回空
func targetSize(seq *anim.Sequence, maxSize int) image.Point {
	w, h := seq.Size()
	nw, nh := fitWithin(w, h, maxSize)
	if nw == w && nh == h {
		return image.Point{}
	}
	return image.Pt(nw, nh)
}
