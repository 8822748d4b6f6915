package codec

import (
	"time"
)

// Info 动图的基本信息，用于检查转换前后的帧数和时长
type Info struct {
	Format    string
	Frames    int
	Width     int
	Height    int
	LoopCount int
	Durations []time.Duration
}

func (c *Codec) Inspect(path string) (Info, error) {
	seq, format, err := c.decode(path)
	if err != nil {
		return Info{}, err
	}

	w, h := seq.Size()
	return Info{
		Format:    format,
		Frames:    len(seq.Frames),
		Width:     w,
		Height:    h,
		LoopCount: seq.LoopCount,
		Durations: seq.Durations(),
	}, nil
}
