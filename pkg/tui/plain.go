package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"Lemonade/pkg/config"
	"Lemonade/pkg/lemonade"
	"Lemonade/pkg/logger"
	"Lemonade/pkg/resources"

	"github.com/mattn/go-isatty"
)

// IsInteractive reports whether f is a terminal the full-screen UI can draw on.
func IsInteractive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// RunPlain drives the cycle from lines of text: every line read from in is a
// tap, and "q" ends the session. Each state is written to out as one line of
// the form "<description>: <instruction> (<taps left>)".
func RunPlain(ctx context.Context, in io.Reader, out io.Writer, cfg *config.Config, res *resources.Bundle, log *logger.Logger) error {
	return runPlain(ctx, in, out, NewModel(cfg, res, lemonade.SeededRand(cfg.Seed), log))
}

func runPlain(ctx context.Context, in io.Reader, out io.Writer, m Model) error {
	log := m.log
	log.Info("plain session started, %d squeezes required", m.state.RequiredTaps)

	if err := writePlain(out, m); err != nil {
		return err
	}

	readCtx, stopReading := context.WithCancel(ctx)
	defer stopReading()
	lines, readErr := readLines(readCtx, in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := <-readErr; err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				log.Info("plain session closed at stage %s", m.state.Stage)
				return nil
			}
			line = l
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "q", "quit", "exit":
			log.Info("plain session closed at stage %s", m.state.Stage)
			return nil
		}
		m = m.tap("line")
		if err := writePlain(out, m); err != nil {
			return err
		}
	}
}

// readLines scans in on its own goroutine so a blocked read never holds up
// cancellation. The error channel receives the scanner error once lines is
// closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

func writePlain(out io.Writer, m Model) error {
	_, err := fmt.Fprintln(out, plainLine(present(m.state), m.res))
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func plainLine(p presentation, res *resources.Bundle) string {
	line := res.Text(p.description) + ": " + res.Text(p.text)
	if p.secondary != "" {
		line += " (" + p.secondary + ")"
	}
	return line
}
