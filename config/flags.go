package config

import (
	"flag"
	"io"
)

// Parse 解析命令行参数。给了 -config 时先读文件，再用显式设置过的参数覆盖。
func Parse(name string, args []string, output io.Writer) (Options, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(output)

	fromFlags := Defaults()
	configPath := flags.String("config", "", "JSON config file; flags override its values")
	flags.StringVar(&fromFlags.Input, "in", "", "input animation (GIF or still image)")
	flags.StringVar(&fromFlags.Output, "out", "", "output path: .png/.apng (APNG) or .gif")
	flags.IntVar(&fromFlags.Threshold, "bg-thresh", ThresholdUnset,
		"required: color distance threshold for background similarity (sum of abs RGB diff, 0-765). Try 30-80.")
	flags.BoolVar(&fromFlags.Lossless, "lossless", true, "write lossless output (GIF output needs -lossless=false)")
	flags.IntVar(&fromFlags.MaxSize, "max-size", 0, "downscale frames whose longest side exceeds this, 0 disables")
	flags.StringVar(&fromFlags.LogLevel, "log-level", "info", "debug, info, warn or error")

	if err := flags.Parse(args); err != nil {
		return Options{}, err
	}

	opts := Defaults()
	if *configPath != "" {
		loaded, err := Load(*configPath)
		if err != nil {
			return Options{}, err
		}
		opts = loaded
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in":
			opts.Input = fromFlags.Input
		case "out":
			opts.Output = fromFlags.Output
		case "bg-thresh":
			opts.Threshold = fromFlags.Threshold
		case "lossless":
			opts.Lossless = fromFlags.Lossless
		case "max-size":
			opts.MaxSize = fromFlags.MaxSize
		case "log-level":
			opts.LogLevel = fromFlags.LogLevel
		}
	})

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}
