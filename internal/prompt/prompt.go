// Package prompt runs the line-based analyzer loop used when input is not a
// terminal.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/pwscore/internal/analyzer"
	"github.com/verte-zerg/pwscore/internal/history"
	"github.com/verte-zerg/pwscore/internal/render"
)

// Prompt is written before every line read.
const Prompt = "Enter a password to analyze (or type 'exit'): "

// ExitWord ends the loop, compared case-insensitively.
const ExitWord = "exit"

// Options configures Run.
type Options struct {
	Analyzer *analyzer.Analyzer
	Recorder *history.Recorder
	// OnRecordError receives history write failures. The loop keeps going
	// either way; a nil handler drops them.
	OnRecordError func(error)
}

// Run prompts for passwords on in and writes results to out until the exit
// word, end of input, or cancellation.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	a := opts.Analyzer
	if a == nil {
		return fmt.Errorf("analyzer is required")
	}
	if _, err := fmt.Fprintln(out, render.Banner(analyzer.MinScore)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	scanner := bufio.NewScanner(in)
	// Passwords have no length cap, so neither do input lines.
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if _, err := fmt.Fprint(out, Prompt); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			// End of input.
			_, _ = fmt.Fprintln(out)
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if IsExit(line) {
			return nil
		}
		if line == "" {
			continue
		}

		res := a.Analyze(line)
		if _, err := fmt.Fprintln(out, render.Result(res)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := opts.Recorder.Record(ctx, line, res); err != nil && opts.OnRecordError != nil {
			opts.OnRecordError(fmt.Errorf("failed to record check: %w", err))
		}
	}
}

// IsExit reports whether a trimmed line asks to stop.
func IsExit(line string) bool {
	return strings.EqualFold(line, ExitWord)
}
