package matte

import "image"

// Mask 每个像素一个布尔值，按行存储：Bits[y*W+x]
type Mask struct {
	W, H int
	Bits []bool
}

func NewMask(w, h int) Mask {
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	return Mask{W: w, H: h, Bits: make([]bool, w*h)}
}

func (m Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.Bits[y*m.W+x]
}

func (m Mask) Set(x, y int, v bool) {
	m.Bits[y*m.W+x] = v
}

// Count 返回为 true 的像素数
func (m Mask) Count() int {
	n := 0
	for _, b := range m.Bits {
		if b {
			n++
		}
	}
	return n
}

// BuildCandidateMask 标记与背景色距离 <= threshold 的像素
func BuildCandidateMask(img *image.NRGBA, bg Color, threshold int) Mask {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	mask := NewMask(w, h)

	for y := 0; y < h; y++ {
		row := y * img.Stride
		for x := 0; x < w; x++ {
			i := row + x*4
			c := Color{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2]}
			mask.Bits[y*w+x] = Distance(c, bg) <= threshold
		}
	}
	return mask
}
