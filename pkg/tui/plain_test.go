package tui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"Lemonade/pkg/config"
	"Lemonade/pkg/lemonade"
	"Lemonade/pkg/resources"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPlainTranscript(t *testing.T) {
	m := newTestModel(t, 3)
	in := strings.NewReader(strings.Repeat("\n", 6) + "q\nignored\n")
	var out bytes.Buffer

	require.NoError(t, runPlain(context.Background(), in, &out, m))

	want := []string{
		"Lemon tree: Tap the lemon tree to select a lemon",
		"Lemon: Keep tapping the lemon to squeeze it (3 taps left)",
		"Lemon: Keep tapping the lemon to squeeze it (2 taps left)",
		"Lemon: Keep tapping the lemon to squeeze it (1 tap left)",
		"Glass of lemonade: Tap the lemonade to drink it",
		"Empty glass: Tap the empty glass to start again",
		"Lemon tree: Tap the lemon tree to select a lemon",
	}
	assert.Equal(t, want, strings.Split(strings.TrimRight(out.String(), "\n"), "\n"))
}

func TestRunPlainEOF(t *testing.T) {
	m := newTestModel(t, 2)
	var out bytes.Buffer
	require.NoError(t, runPlain(context.Background(), strings.NewReader("tap\n"), &out, m))
	assert.Equal(t, 2, strings.Count(out.String(), "\n"))
}

func TestRunPlainCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runPlain(ctx, strings.NewReader("\n\n"), &bytes.Buffer{}, newTestModel(t, 2))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunPlainCancelledWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	m := newTestModel(t, 2)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- runPlain(ctx, pr, &bytes.Buffer{}, m)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("runPlain did not return after the context was cancelled")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRunPlainReadError(t *testing.T) {
	err := runPlain(context.Background(), failingReader{}, &bytes.Buffer{}, newTestModel(t, 2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read input")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRunPlainWriteError(t *testing.T) {
	err := runPlain(context.Background(), strings.NewReader(""), failingWriter{}, newTestModel(t, 2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write output")
}

func TestRunPlainPublic(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Seed = 11
	var out bytes.Buffer
	err := RunPlain(context.Background(), strings.NewReader("\nquit\n"), &out, cfg, resources.MustLoad(), nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "Lemon: "), lines[1])
}

func TestIsInteractiveOnFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsInteractive(f))
}

func TestPreview(t *testing.T) {
	cfg := config.DefaultConfig()
	res := resources.MustLoad()

	frame := Preview(lemonade.State{Stage: lemonade.StageLemon, TapCount: 1, RequiredTaps: 3}, 80, 24, cfg, res)
	assert.Contains(t, frame, "Keep tapping the lemon to squeeze it")
	assert.Contains(t, frame, "2 taps left")
	assert.Len(t, strings.Split(frame, "\n"), 24)

	frame = Preview(lemonade.State{Stage: lemonade.StageEmpty, TapCount: 3, RequiredTaps: 3}, 80, 24, cfg, res)
	assert.Contains(t, frame, "Tap the empty glass to start again")
	assert.NotContains(t, frame, "taps left")
}

func TestLayoutScreenUnknownSize(t *testing.T) {
	lines := strings.Split(layoutScreen("body", "help", 0, 0), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "body", lines[0])
	assert.Equal(t, "help", lines[2])
}

func TestLayoutScreenTinyTerminal(t *testing.T) {
	out := layoutScreen("body", "help", 10, 1)
	assert.NotEmpty(t, out)
}
