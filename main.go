package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cordshot/icongen/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := app.DefaultConfigFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		return 1
	}

	// Flags override the environment.
	flag.StringVar(&cfg.OutDir, "out", cfg.OutDir, "directory to write cordshot.ico and icon_256.png into; also configurable via "+app.EnvOutDir)
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging to ./cordshot-icon-debug.log")
	flag.StringVar(&cfg.StdioLog, "stdio-log", cfg.StdioLog, "redirect stdout+stderr (including panics) to this file; also configurable via "+app.EnvStdioLog)
	flag.StringVar(&cfg.Preview, "preview", cfg.Preview, "also write a contact sheet of every size to this PNG; also configurable via "+app.EnvPreview)
	flag.StringVar(&cfg.Framebuffer, "fb", cfg.Framebuffer, "show the contact sheet on this framebuffer device (Linux); also configurable via "+app.EnvFramebuffer)
	flag.Parse()

	if cfg.StdioLog != "" {
		if err := redirectStdIO(cfg.StdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if cfg.Debug {
		f, err := os.OpenFile("./cordshot-icon-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled (out=%s)", cfg.OutDir)
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg)
	a.Logger = logger
	lines, err := a.Run(ctx)
	if err != nil {
		logger.Errorf("main", "run failed: %v", err)
		fmt.Fprintln(os.Stderr, "icon generation error:", err)
		return 1
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	return 0
}
