package util

import (
	"image"

	"golang.org/x/image/draw"
)

// ToNRGBA 转为 NRGBA，已经是 NRGBA 的直接返回（不复制）
func ToNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba
	}
	return CloneNRGBA(img)
}

// CloneNRGBA 复制成一块新的、从 (0,0) 开始的 NRGBA 缓冲区。
// NRGBA 输入按行拷贝，透明像素的 RGB 也会保留（draw 会按预乘 alpha 把它们清零）。
func CloneNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+b.Dx()*4], src.Pix[y*src.Stride:])
		}
		return dst
	}

	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
