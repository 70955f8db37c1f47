package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/pprof"
	"strconv"
	"strings"

	"github.com/lukaszgryglicki/raytracer/internal/raytracer"
)

func main() {
	debug := os.Getenv("DEBUG") != ""
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	raytracer.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	raytracer.RayLogging = debug

	opt := raytracer.Options{OutDir: os.Getenv("OUT_DIR")}
	if f := os.Getenv("FORMATS"); f != "" {
		opt.Formats = strings.Split(f, ",")
	}
	if os.Getenv("RAW") != "" {
		opt.Raw = true
	}
	if s := os.Getenv("SCALE"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			fmt.Printf("Error: SCALE=%q: %v\n", s, err)
			os.Exit(1)
		}
		opt.Output.Scale = n
	}
	if os.Getenv("SMOOTH") != "" {
		opt.Output.Kernel = raytracer.KernelCatmullRom
	}
	opt.Output.Caption = os.Getenv("CAPTION")

	if os.Getenv("PROFILE") != "" {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	if len(os.Args) > 1 {
		opt.Name = os.Args[1]
	}
	switch {
	case len(os.Args) > 2:
		opt.Input = os.Args[2]
	case opt.Name == "scene":
		opt.Input = "scenes/config.json"
	case opt.Name == "script":
		opt.Input = "scenes/spheres.js"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if _, err := raytracer.Run(ctx, opt); err != nil {
		fmt.Printf("Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
