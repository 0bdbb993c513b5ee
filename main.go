package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/perlw/vksurface/config"
	"github.com/perlw/vksurface/logger"
	"github.com/perlw/vksurface/myr"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	log := logger.New("vksurface")

	defaultPath, err := config.DefaultPath()
	if err != nil {
		log.Warn("%v", err)
	}
	configPath := flag.String("config", defaultPath, "path to config file")
	platform := flag.String("platform", "", "override platform (auto, windows, x11, macos)")
	trace := flag.Bool("trace", false, "trace surface acquisition")
	tui := flag.Bool("tui", false, "show the result in a terminal view")
	hold := flag.Duration("hold", 0, "keep the window open this long")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Err(err, "load config")
		os.Exit(1)
	}
	if *platform != "" {
		cfg.Platform = *platform
	}
	cfg.Trace = cfg.Trace || *trace
	cfg.TUI = cfg.TUI || *tui
	log.SetTrace(cfg.Trace)

	m, err := myr.New(cfg, log)
	if err != nil {
		log.Err(err, "bring up vulkan")
		os.Exit(1)
	}
	defer m.Destroy()

	lines := reportLines(m.Report())
	if cfg.TUI {
		if err := showReport(lines); err != nil {
			log.Err(err, "terminal view")
		}
		return
	}
	for _, line := range lines {
		fmt.Println(line)
	}

	if *hold > 0 {
		deadline := time.Now().Add(*hold)
		for !m.ShouldClose() && time.Now().Before(deadline) {
			m.PollEvents()
			time.Sleep(16 * time.Millisecond)
		}
	}
}

func reportLines(r myr.Report) []string {
	lines := []string{
		fmt.Sprintf("platform:        %s", r.Platform),
		fmt.Sprintf("window bounds:   %v", r.Bounds),
		fmt.Sprintf("gpu:             %s", r.GPU),
		fmt.Sprintf("graphics family: %d", r.GraphicsIndex),
		fmt.Sprintf("present family:  %d", r.PresentIndex),
	}
	for t, name := range r.GPUs {
		lines = append(lines, fmt.Sprintf("  gpu %d: %s", t, name))
	}
	return lines
}
