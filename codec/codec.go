// Package codec 动图的读取和写出。
//
// 读取：GIF（按 disposal 合成完整帧）以及 image 包注册的静态格式（png/jpeg/webp/bmp）。
// 写出：APNG（无损）和 GIF（调色板量化，有损）。所有文件操作都经过 afero.Fs。
package codec

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	FormatGIF  = "gif"
	FormatAPNG = "apng"
	// FormatPNG 没有动画控制块的普通 PNG
	FormatPNG  = "png"
)

var (
	ErrDecode            = errors.New("cannot decode animation")
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrLossyFormat       = errors.New("output format is lossy")
)

type Codec struct {
	fs afero.Fs
}

func New(fs afero.Fs) *Codec {
	return &Codec{fs: fs}
}

// Default 使用本地文件系统
func Default() *Codec {
	return New(afero.NewOsFs())
}

// OutputFormat 根据扩展名决定输出格式
func OutputFormat(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png", ".apng":
		return FormatAPNG, nil
	case ".gif":
		return FormatGIF, nil
	case ".webp":
		return "", errors.Wrap(ErrUnsupportedFormat, "animated webp has no encoder here, use .png (APNG) or .gif")
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "extension %q", ext)
	}
}
