package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

// ErrCancelled is returned by ShowProgress when the user presses Ctrl+C.
var ErrCancelled = errors.New("cancelled by user")

// reportEvery throttles progress messages to one per 256 KiB read.
const reportEvery = 256 * 1024

// ProgressReader wraps an io.Reader and reports the running byte count
// through a channel. Sends never block; a full channel drops the update.
type ProgressReader struct {
	reader     io.Reader
	total      int64
	read       int64
	lastReport int64
	ch         chan<- int64
}

// NewProgressReader creates a reader that reports progress. total may be
// -1 when the size is unknown.
func NewProgressReader(r io.Reader, total int64, ch chan<- int64) *ProgressReader {
	return &ProgressReader{reader: r, total: total, ch: ch}
}

func (pr *ProgressReader) Read(p []byte) (int, error) {
	n, err := pr.reader.Read(p)
	pr.read += int64(n)

	if pr.ch == nil || n == 0 {
		return n, err
	}
	complete := err == io.EOF || (pr.total > 0 && pr.read >= pr.total)
	if pr.read-pr.lastReport >= reportEvery || complete {
		select {
		case pr.ch <- pr.read:
			pr.lastReport = pr.read
		default:
		}
	}
	return n, err
}

// BytesRead returns the number of bytes read so far.
func (pr *ProgressReader) BytesRead() int64 { return pr.read }

type progressMsg int64

type tickMsg time.Time

type progressModel struct {
	progress  progress.Model
	total     int64
	current   int64
	label     string
	done      bool
	cancelled bool
	ch        <-chan int64
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(tickCmd(), waitForProgress(m.ch))
}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForProgress blocks on the channel; a closed channel means the
// operation finished.
func waitForProgress(ch <-chan int64) tea.Cmd {
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return progressMsg(-1)
		}
		return progressMsg(n)
	}
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.done = true
			m.cancelled = true
			return m, tea.Quit
		}

	case tickMsg:
		if m.done {
			return m, tea.Quit
		}
		return m, tickCmd()

	case progressMsg:
		if int64(msg) < 0 {
			m.done = true
			return m, tea.Quit
		}
		m.current = int64(msg)
		return m, waitForProgress(m.ch)

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		return m, nil
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	if m.total <= 0 {
		return fmt.Sprintf("%s\n%s\n", m.label, humanize.Bytes(uint64(m.current)))
	}

	percent := float64(m.current) / float64(m.total)
	if percent > 1 {
		percent = 1
	}
	return fmt.Sprintf("%s\n%s\n%s / %s (%.0f%%)\n",
		m.label,
		m.progress.ViewAs(percent),
		humanize.Bytes(uint64(m.current)),
		humanize.Bytes(uint64(m.total)),
		percent*100,
	)
}

// ShowProgress draws a progress bar on stderr until ch is closed. The
// operation runs elsewhere, reading through a ProgressReader that feeds ch.
// Returns ErrCancelled if the user pressed Ctrl+C.
func ShowProgress(label string, total int64, ch <-chan int64) error {
	m := progressModel{
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		total:    total,
		label:    label,
		ch:       ch,
	}

	final, err := tea.NewProgram(m, tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(progressModel); ok && fm.cancelled {
		return ErrCancelled
	}
	return nil
}
