package matte

import "image"

// EstimateBackground 用四个角的颜色投票估计背景色。
//
// 取样顺序固定为 左上、右上、左下、右下，出现次数相同时取先出现的那个。
// 前景碰到三个及以上角的帧会估计错误，这是已知的限制。
func EstimateBackground(img *image.NRGBA) (Color, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return Color{}, ErrEmptyFrame
	}

	corners := [4]Color{
		colorAt(img, 0, 0),
		colorAt(img, w-1, 0),
		colorAt(img, 0, h-1),
		colorAt(img, w-1, h-1),
	}

	best, bestCount := corners[0], 0
	for _, c := range corners {
		n := 0
		for _, o := range corners {
			if o == c {
				n++
			}
		}
		if n > bestCount {
			best, bestCount = c, n
		}
	}
	return best, nil
}
