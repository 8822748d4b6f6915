// Package config 转换参数：命令行参数 + 可选的 JSON 配置文件
package config

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/dealancer/validate.v2"
)

const (
	// ThresholdUnset 阈值没有默认值，必须显式给出
	ThresholdUnset = -1
	// MaxThreshold 三个通道差值之和的上限
	MaxThreshold = 765
)

var (
	ErrThresholdRequired = errors.New("bg_thresh is required (recommended 30-80)")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

var fs afero.Fs = afero.NewOsFs()

type Options struct {
	Input  string `json:"input" validate:"empty=false"`
	Output string `json:"output" validate:"empty=false"`
	// Threshold 背景色距离阈值，两个旧脚本用 80，带参数的工具默认 40
	Threshold int  `json:"bg_thresh" validate:"gte=0 & lte=765"`
	Lossless  bool `json:"lossless"`
	// MaxSize 最长边上限，0 表示不缩放
	MaxSize  int    `json:"max_size" validate:"gte=0"`
	LogLevel string `json:"log_level"`
}

func Defaults() Options {
	return Options{
		Threshold: ThresholdUnset,
		Lossless:  true,
		LogLevel:  "info",
	}
}

// Load 读取 JSON 配置文件，文件里没有的字段保持默认值
func Load(path string) (Options, error) {
	opts := Defaults()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Options{}, errors.Wrapf(err, "read config %s", path)
	}
	if err := json.Unmarshal(data, &opts); err != nil {
		return Options{}, errors.Errorf("parsing configuration %s error: %v", path, err)
	}
	return opts, nil
}

// rawOptions 字段和 tag 与 Options 相同，但没有 Validate 方法。
// validate.Validate 会调用值上的 Validate()，直接传 Options 会无限递归。
type rawOptions Options

func (o Options) Validate() error {
	if o.Threshold == ThresholdUnset {
		return ErrThresholdRequired
	}
	raw := rawOptions(o)
	if err := validate.Validate(&raw); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return nil
}
