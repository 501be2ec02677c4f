package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/polymorpher/band-oracle-reader/internal/domain/config"
	"github.com/polymorpher/band-oracle-reader/internal/usecase"
)

// NewSink picks the spinner sink for interactive terminals and the no-op sink otherwise.
// Both leave stdout untouched.
func NewSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.NonInteractive || !isTerminal(os.Stderr) {
		return NewNopSink()
	}
	return NewSpinnerSink(os.Stderr)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SpinnerSink renders deployment stages with a spinner
type SpinnerSink struct {
	mu           sync.Mutex
	out          io.Writer
	spinner      *spinner.Spinner
	currentStage string
	stageStart   time.Time
}

// NewSpinnerSink creates a spinner sink writing to out
func NewSpinnerSink(out io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerSink{
		out:     out,
		spinner: s,
	}
}

// OnProgress handles progress events
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.Stage == usecase.StageFailed {
		r.failStage()
		return
	}

	if event.Stage != r.currentStage {
		r.completeStage()
		r.currentStage = event.Stage
		r.stageStart = time.Now()
	}

	if event.Spinner {
		r.spinner.Suffix = " " + stageLabel(event.Stage) + " " + event.Message
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		return
	}

	if r.spinner.Active() {
		r.spinner.Stop()
	}
	if event.Stage == usecase.StageCompleted {
		r.currentStage = ""
	}
}

// Info prints an info message
func (r *SpinnerSink) Info(message string) {
	r.print(color.New(color.FgCyan), message)
}

func (r *SpinnerSink) print(c *color.Color, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Stop spinner temporarily
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	_, _ = c.Fprintln(r.out, message)

	if wasActive {
		r.spinner.Start()
	}
}

// completeStage prints a check line for the stage being left
func (r *SpinnerSink) completeStage() {
	if r.currentStage == "" {
		return
	}
	if r.spinner.Active() {
		r.spinner.Stop()
	}
	elapsed := time.Since(r.stageStart).Round(time.Millisecond)
	_, _ = fmt.Fprintf(r.out, "%s %s %s\n",
		color.GreenString("✓"),
		stageLabel(r.currentStage),
		color.New(color.Faint).Sprintf("(%s)", elapsed))
}

// failStage marks the running stage as failed. The error itself is reported by the caller.
func (r *SpinnerSink) failStage() {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
	if r.currentStage != "" {
		_, _ = fmt.Fprintf(r.out, "%s %s\n", color.RedString("✗"), stageLabel(r.currentStage))
	}
	r.currentStage = ""
}

func stageLabel(stage string) string {
	switch stage {
	case usecase.StageLoading:
		return "Loading"
	case usecase.StageConnecting:
		return "Connecting"
	case usecase.StageBroadcasting:
		return "Broadcasting"
	case usecase.StageWaiting:
		return "Waiting"
	case usecase.StageCompleted:
		return "Completed"
	default:
		return stage
	}
}

var _ usecase.ProgressSink = (*SpinnerSink)(nil)
