package matte

import "image"

var (
	black = Color{0, 0, 0}
	white = Color{255, 255, 255}
	red   = Color{200, 30, 30}
)

// solidFrame 生成纯色、完全不透明的帧
func solidFrame(w, h int, c Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			setPixel(img, x, y, c)
		}
	}
	return img
}

func setPixel(img *image.NRGBA, x, y int, c Color) {
	i := y*img.Stride + x*4
	img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, 255
}

func alphaAt(img *image.NRGBA, x, y int) uint8 {
	return img.Pix[y*img.Stride+x*4+3]
}

// ringFrame 背景色 bg 上画一个 3x3 的 fg 方框（中心 (2,2) 仍是 bg），尺寸 5x5
func ringFrame(bg, fg Color) *image.NRGBA {
	img := solidFrame(5, 5, bg)
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			if x == 2 && y == 2 {
				continue
			}
			setPixel(img, x, y, fg)
		}
	}
	return img
}
