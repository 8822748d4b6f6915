// Package anim 动图的数据模型：帧序列、每帧时长、循环次数
package anim

import (
	"image"
	"time"

	"github.com/pkg/errors"
)

// DefaultFrameDuration 源文件没有时长信息时使用
const DefaultFrameDuration = 80 * time.Millisecond

// LoopForever 循环次数 0 表示无限循环
const LoopForever = 0

var ErrInvalidSequence = errors.New("invalid animation sequence")

type Frame struct {
	Image    *image.NRGBA
	Duration time.Duration
}

type Sequence struct {
	Frames    []Frame
	LoopCount int
}

// Size 返回第一帧的尺寸，没有帧时为 0x0
func (s *Sequence) Size() (w, h int) {
	if len(s.Frames) == 0 || s.Frames[0].Image == nil {
		return 0, 0
	}
	b := s.Frames[0].Image.Bounds()
	return b.Dx(), b.Dy()
}

// Durations 按顺序返回每帧时长
func (s *Sequence) Durations() []time.Duration {
	ds := make([]time.Duration, len(s.Frames))
	for i, f := range s.Frames {
		ds[i] = f.Duration
	}
	return ds
}

// Validate 检查：至少一帧、所有帧尺寸一致、时长非负、循环次数非负
func (s *Sequence) Validate() error {
	if len(s.Frames) == 0 {
		return errors.Wrap(ErrInvalidSequence, "no frames")
	}
	if s.LoopCount < 0 {
		return errors.Wrapf(ErrInvalidSequence, "negative loop count %d", s.LoopCount)
	}

	w, h := s.Size()
	for i, f := range s.Frames {
		if f.Image == nil {
			return errors.Wrapf(ErrInvalidSequence, "frame %d has no image", i)
		}
		b := f.Image.Bounds()
		if b.Dx() != w || b.Dy() != h {
			return errors.Wrapf(ErrInvalidSequence, "frame %d is %dx%d, expected %dx%d", i, b.Dx(), b.Dy(), w, h)
		}
		if f.Duration < 0 {
			return errors.Wrapf(ErrInvalidSequence, "frame %d has negative duration %s", i, f.Duration)
		}
	}
	return nil
}

// DurationMillis 帧时长换算成毫秒，和源文件的 duration 字段同一单位
func DurationMillis(d time.Duration) int {
	return int(d / time.Millisecond)
}
