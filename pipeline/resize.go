package pipeline

import (
	"image"

	"github.com/chaos-io/gif2alpha/util"
	"github.com/nfnt/resize"
)

// fitWithin 最长边 <= maxSize，保持宽高比；maxSize <= 0 表示不限制
func fitWithin(w, h, maxSize int) (int, int) {
	longest := max(w, h)
	if maxSize <= 0 || longest <= maxSize {
		return w, h
	}

	scale := float64(maxSize) / float64(longest)
	return max(1, int(float64(w)*scale)), max(1, int(float64(h)*scale))
}

// resizeTo 缩放到 size，size 为空时原样返回
func resizeTo(img *image.NRGBA, size image.Point) *image.NRGBA {
	if size == (image.Point{}) {
		return img
	}
	resized := resize.Resize(uint(size.X), uint(size.Y), img, resize.Lanczos3)
	return util.ToNRGBA(resized)
}
