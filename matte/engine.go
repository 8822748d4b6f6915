package matte

import (
	"image"

	"github.com/chaos-io/gif2alpha/util"
	"github.com/pkg/errors"
)

// Engine 对单帧做背景抠除，帧与帧之间不共享任何状态
type Engine struct {
	// Threshold 颜色距离阈值，推荐 30-80
	Threshold int
}

func NewEngine(threshold int) *Engine {
	return &Engine{Threshold: threshold}
}

// Stats 单帧处理结果，用于日志
type Stats struct {
	Background Color
	Candidates int
	Removed    int
}

// MatteFrame 原地处理一帧：估计背景色 -> 候选 mask -> 边框连通区域 -> alpha 置 0
func (e *Engine) MatteFrame(img *image.NRGBA) (Stats, error) {
	bg, err := EstimateBackground(img)
	if err != nil {
		return Stats{}, err
	}

	cand := BuildCandidateMask(img, bg, e.Threshold)
	region := FloodFillFromBorder(cand)
	if err := ApplyTransparency(img, region); err != nil {
		return Stats{}, err
	}

	return Stats{
		Background: bg,
		Candidates: cand.Count(),
		Removed:    region.Count(),
	}, nil
}

// Remove 实现 BackgroundRemover，不修改输入，返回处理后的 *image.NRGBA
func (e *Engine) Remove(img image.Image) (image.Image, error) {
	if img == nil {
		return nil, errors.New("nil image")
	}

	dst := util.CloneNRGBA(img)
	if _, err := e.MatteFrame(dst); err != nil {
		return nil, err
	}
	return dst, nil
}
