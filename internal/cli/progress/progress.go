package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

// Status represents the state of a task
type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusSuccess
	StatusFailed
)

// Item represents a single step being tracked
type Item struct {
	Name     string
	Info     string // what the step acts on, e.g. an image reference
	Status   Status
	Duration time.Duration
	Error    error
}

// Tracker renders progress for sequential steps. On a terminal the running
// step is a spinner line updated in place; otherwise every start and
// completion is a timestamped line, suitable for CI logs.
type Tracker struct {
	mu           sync.Mutex
	wg           sync.WaitGroup
	items        []Item
	current      int
	startTime    time.Time
	isTTY        bool
	useColor     bool
	caps         terminalCapabilities
	stopChan     chan struct{}
	stopOnce     sync.Once
	spinnerFrame int
	writer       io.Writer
	now          func() time.Time
}

var spinnerFrames = []string{"✦", "✸", "✹", "❋", "✹", "✸"}

// NewTracker creates a tracker writing to stdout with auto-detected terminal
// settings. infos may be shorter than names.
func NewTracker(names []string, infos []string) *Tracker {
	_, noColor := os.LookupEnv("NO_COLOR")
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	caps := detectCapabilities(os.Stdout)

	return NewTrackerWithWriter(names, infos, os.Stdout, isTTY, !noColor && isTTY && caps.supportsANSI, caps)
}

// NewPlainTracker creates a tracker writing timestamped lines to writer, as
// if stdout were not a terminal.
func NewPlainTracker(names []string, infos []string, writer io.Writer) *Tracker {
	return NewTrackerWithWriter(names, infos, writer, false, false, terminalCapabilities{terminalWidth: 80})
}

// NewTrackerWithWriter creates a tracker with an injectable writer and
// explicit terminal settings, bypassing auto-detection.
func NewTrackerWithWriter(names []string, infos []string, writer io.Writer, isTTY bool, useColor bool, caps terminalCapabilities) *Tracker {
	items := make([]Item, len(names))
	for i, name := range names {
		info := ""
		if i < len(infos) {
			info = infos[i]
		}
		items[i] = Item{Name: name, Info: info, Status: StatusPending}
	}

	return &Tracker{
		items:    items,
		current:  -1,
		isTTY:    isTTY,
		useColor: useColor,
		caps:     caps,
		stopChan: make(chan struct{}),
		writer:   writer,
		now:      time.Now,
	}
}

// Start begins tracking and starts the spinner animation if in TTY mode
func (t *Tracker) Start() {
	if t.isTTY {
		t.wg.Add(1)
		go t.animate()
	}
}

// StartItem marks an item as running
func (t *Tracker) StartItem(index int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current = index
	t.items[index].Status = StatusRunning
	t.startTime = t.now()

	if t.isTTY {
		fmt.Fprint(t.writer, t.statusLine())
		return
	}

	fmt.Fprintf(t.writer, "[%s] %s %s...\n", timestamp(t.startTime), t.counter(index), t.displayName(t.items[index]))
}

// CompleteItem marks an item as completed (success or failure) and prints its
// final line. Error details are left to the caller.
func (t *Tracker) CompleteItem(index int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	finished := t.now()
	item := &t.items[index]
	item.Duration = finished.Sub(t.startTime)
	if err != nil {
		item.Status = StatusFailed
		item.Error = err
	} else {
		item.Status = StatusSuccess
	}

	sym := t.colorize("\033[32m", "+")
	suffix := fmt.Sprintf("(%s)", FormatDuration(item.Duration))
	if err != nil {
		sym = t.colorize("\033[31m", "x")
		suffix += " FAILED"
	}
	counter := t.counter(index)

	if t.isTTY {
		fmt.Fprint(t.writer, clearLine(t.caps))
	} else {
		counter = fmt.Sprintf("[%s] %s", timestamp(finished), counter)
	}

	fmt.Fprintf(t.writer, "  %s %s  %s  %s\n", sym, t.colorize("\033[2m", counter), t.displayName(*item), t.colorize("\033[2m", suffix))
}

// Stop ends the progress tracking
func (t *Tracker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopChan)
	})

	// Wait for animate goroutine to finish
	t.wg.Wait()

	if t.isTTY {
		t.mu.Lock()
		if t.useColor {
			fmt.Fprint(t.writer, "\033[0m") // Ensure terminal state is reset
		}
		fmt.Fprint(t.writer, clearLine(t.caps))
		t.mu.Unlock()
	}
}

// Items returns a snapshot of every tracked item.
func (t *Tracker) Items() []Item {
	t.mu.Lock()
	defer t.mu.Unlock()

	items := make([]Item, len(t.items))
	copy(items, t.items)
	return items
}

// Summary returns a summary string of completed tasks
func (t *Tracker) Summary() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var totalDuration time.Duration
	successCount := 0
	failCount := 0

	for _, item := range t.items {
		totalDuration += item.Duration
		switch item.Status {
		case StatusSuccess:
			successCount++
		case StatusFailed:
			failCount++
		}
	}

	var parts []string
	if successCount > 0 {
		parts = append(parts, fmt.Sprintf("%d succeeded", successCount))
	}
	if failCount > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", failCount))
	}
	if len(parts) == 0 {
		parts = append(parts, "nothing ran")
	}

	return fmt.Sprintf("%s in %s", strings.Join(parts, ", "), FormatDuration(totalDuration))
}

func (t *Tracker) animate() {
	defer t.wg.Done()
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-t.stopChan:
			return
		case <-ticker.C:
			t.mu.Lock()
			if t.current >= 0 && t.items[t.current].Status == StatusRunning {
				t.spinnerFrame++
				fmt.Fprint(t.writer, t.statusLine())
			}
			t.mu.Unlock()
		}
	}
}

// statusLine renders the spinner line for the running item. Callers hold mu.
func (t *Tracker) statusLine() string {
	item := t.items[t.current]
	spinner := spinnerFrames[t.spinnerFrame%len(spinnerFrames)]
	elapsed := FormatDuration(t.now().Sub(t.startTime))

	var line string
	if t.useColor {
		line = fmt.Sprintf("  \033[1m%s %s  %s\033[0m  \033[2m%s\033[0m", spinner, t.counter(t.current), t.displayName(item), elapsed)
	} else {
		line = fmt.Sprintf("  %s %s  %s  %s", spinner, t.counter(t.current), t.displayName(item), elapsed)
	}

	// Truncate to terminal width to prevent line wrapping
	return clearLine(t.caps) + truncateToWidth(line, t.caps.terminalWidth)
}

func (t *Tracker) counter(index int) string {
	return fmt.Sprintf("[%d/%d]", index+1, len(t.items))
}

func timestamp(at time.Time) string {
	return at.Format("15:04:05")
}

func (t *Tracker) colorize(code string, text string) string {
	if !t.useColor {
		return text
	}
	return code + text + "\033[0m"
}

// displayName formats the item name with optional info
func (t *Tracker) displayName(item Item) string {
	if item.Info == "" {
		return item.Name
	}
	return fmt.Sprintf("%s %s", item.Name, t.colorize("\033[2m", "("+item.Info+")"))
}

// FormatDuration renders d rounded to whole seconds, e.g. "4s" or "2m 05s".
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := d / time.Minute
	s := (d % time.Minute) / time.Second

	if m > 0 {
		return fmt.Sprintf("%dm %02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
