package matte

import "image"

// ApplyTransparency 把 region 里的像素 alpha 置 0，RGB 不动
func ApplyTransparency(img *image.NRGBA, region Mask) error {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if region.W != w || region.H != h {
		return ErrSizeMismatch
	}

	for y := 0; y < h; y++ {
		row := y * img.Stride
		for x := 0; x < w; x++ {
			if region.Bits[y*w+x] {
				img.Pix[row+x*4+3] = 0
			}
		}
	}
	return nil
}
