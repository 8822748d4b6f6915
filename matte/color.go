package matte

import "image"

// Color 只有 RGB，背景估计和距离比较都不看 alpha
type Color struct {
	R, G, B uint8
}

// Distance 颜色距离：各通道差的绝对值之和，范围 0-765
func Distance(a, b Color) int {
	return absDiff(a.R, b.R) + absDiff(a.G, b.G) + absDiff(a.B, b.B)
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// colorAt 读取 (x, y) 的 RGB，坐标相对于 img.Bounds().Min
func colorAt(img *image.NRGBA, x, y int) Color {
	i := y*img.Stride + x*4
	return Color{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2]}
}
