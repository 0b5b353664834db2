package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Lemonade/pkg/config"
	"Lemonade/pkg/lemonade"
	"Lemonade/pkg/logger"
	"Lemonade/pkg/resources"
	"Lemonade/pkg/tui"

	"github.com/charmbracelet/lipgloss"
)

const version = "1.0.0"

var (
	successStyle = lipgloss.NewStyle().
			Foreground(tui.LemonGreen).
			Bold(true)
)

func main() {
	// Flags
	configPath := flag.String("config", "", "Path to configuration file")
	plain := flag.Bool("plain", false, "Line mode: each input line is a tap")
	preview := flag.String("preview", "", "Print one frame of a stage (tree, lemon, drink, empty) and exit")
	previewW := flag.Int("width", 80, "Preview width in columns")
	previewH := flag.Int("height", 24, "Preview height in rows")
	writeConfig := flag.String("write-config", "", "Write the effective configuration to this path and exit")
	showVersion := flag.Bool("version", false, "Show version")
	showHelp := flag.Bool("help", false, "Show help")
	flag.Parse()

	if *showHelp {
		printHelp()
		return
	}

	if *showVersion {
		fmt.Printf("Lemonade v%s\n", version)
		return
	}

	cfg, cfgPath, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	if *writeConfig != "" {
		if err := cfg.Save(*writeConfig); err != nil {
			log.Fatalf("❌ Failed to write config: %v", err)
		}
		fmt.Println(successStyle.Render("✅ Configuration written to " + *writeConfig))
		return
	}

	res, err := resources.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load resources: %v", err)
	}

	if *preview != "" {
		stage, err := lemonade.ParseStage(*preview)
		if err != nil {
			log.Fatalf("❌ Invalid -preview: %v", err)
		}
		fmt.Println(tui.Preview(previewState(stage, cfg.Seed), *previewW, *previewH, cfg, res))
		return
	}

	lg, err := logger.New(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		log.Fatalf("❌ Failed to open log: %v", err)
	}
	defer lg.Sync()

	if cfgPath != "" {
		lg.Info("config loaded from %s", cfgPath)
	} else {
		lg.Info("no config file found, using defaults")
	}

	// Cancelling the context forces bubbletea to exit
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// First SIGINT/SIGTERM cancels the context, a second one force-exits
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
		select {
		case <-sigCh:
			os.Exit(1)
		case <-time.After(5 * time.Second):
			os.Exit(1)
		}
	}()

	if *plain || !tui.IsInteractive(os.Stdout) {
		err = tui.RunPlain(ctx, os.Stdin, os.Stdout, cfg, res, lg)
	} else {
		err = tui.Run(ctx, cfg, res, lg)
		// In case bubbletea didn't restore properly
		tui.RestoreTerminal(cfg.UI)
	}

	// Context cancellation is our shutdown path, not a failure
	if err != nil && ctx.Err() == nil {
		lg.Error("session failed: %v", err)
		lg.Sync()
		log.Fatalf("❌ %v", err)
	}
	lg.Info("goodbye")
}

// previewState builds a state that satisfies the cycle invariants for stage.
func previewState(stage lemonade.Stage, seed uint64) lemonade.State {
	s := lemonade.New(lemonade.SeededRand(seed))
	s.Stage = stage
	if stage == lemonade.StageDrink || stage == lemonade.StageEmpty {
		s.TapCount = s.RequiredTaps
	}
	return s
}

func printHelp() {
	fmt.Printf("Lemonade v%s - tap your way from lemon tree to empty glass\n\n", version)
	fmt.Println("Usage: lemonade [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Controls:")
	fmt.Println("  click anywhere, Space or Enter   tap")
	fmt.Println("  ?                                toggle help")
	fmt.Println("  q, Esc, Ctrl+C                   quit")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  LEMONADE_LOG_LEVEL           DEBUG, INFO, WARN or ERROR")
	fmt.Println("  LEMONADE_LOG_DIR             Directory for lemonade.log")
	fmt.Println("  LEMONADE_SEED                Non-zero seed for reproducible squeeze counts")
	fmt.Println("  LEMONADE_SHOW_DESCRIPTIONS   Caption each illustration (true/false)")
	fmt.Println("  LEMONADE_MOUSE               Accept mouse clicks as taps (true/false)")
	fmt.Println("  LEMONADE_ALT_SCREEN          Use the alternate screen (true/false)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  lemonade")
	fmt.Println("  lemonade -preview lemon")
	fmt.Println("  yes '' | head -n 6 | lemonade -plain")
}
