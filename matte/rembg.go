package matte

import "image"

// BackgroundRemover 把输入帧的背景变成透明
type BackgroundRemover interface {
	Remove(img image.Image) (image.Image, error)
}
