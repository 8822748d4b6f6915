package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chaos-io/gif2alpha/anim"
	"github.com/chaos-io/gif2alpha/codec"
	"github.com/chaos-io/gif2alpha/config"
	"github.com/chaos-io/gif2alpha/pipeline"
	"github.com/chaos-io/gif2alpha/util"
	"github.com/pkg/errors"
)

const name = "gif2alpha"

// inspectDurations inspect 只打印前几帧的时长
const inspectDurations = 5

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 && args[0] == "inspect" {
		return inspect(args[1:], stdout)
	}

	opts, err := config.Parse(name, args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	log, err := util.NewLogger(stderr, opts.LogLevel)
	if err != nil {
		return err
	}

	res, err := pipeline.New(log).Run(opts)
	if err != nil {
		return err
	}

	log.Info().Int("frames", res.Frames).Dur("elapsed", res.Elapsed).Str("output", res.Output).Send()
	fmt.Fprintf(stdout, "OK: wrote %s\n", res.Output)
	return nil
}

func inspect(args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return errors.Errorf("usage: %s inspect <path>", name)
	}

	info, err := codec.Default().Inspect(args[0])
	if err != nil {
		return err
	}

	loop := fmt.Sprint(info.LoopCount)
	if info.LoopCount == anim.LoopForever {
		loop = "0 (forever)"
	}

	ms := make([]int, 0, inspectDurations)
	for _, d := range info.Durations[:min(len(info.Durations), inspectDurations)] {
		ms = append(ms, anim.DurationMillis(d))
	}

	fmt.Fprintf(stdout, "format: %s\n", info.Format)
	fmt.Fprintf(stdout, "frames: %d\n", info.Frames)
	fmt.Fprintf(stdout, "size: %dx%d\n", info.Width, info.Height)
	fmt.Fprintf(stdout, "loop: %s\n", loop)
	fmt.Fprintf(stdout, "first durations (ms): %v\n", ms)
	return nil
}
