// Package task provides the poll-based unit of background work driving
// every long-running operation in wowsafe.
//
// A Task owns one background goroutine that reports progress over a
// buffered channel: Started once near the beginning, any number of
// Advanced updates, then exactly one terminal Finished or Failed. The UI
// drains the channel once per frame with Poll, which never blocks; if the
// receive side is contended the frame is skipped and the next one catches
// up. Tasks chain: when one finishes, the UI takes its successor and starts
// it, so sequencing is enforced by the consumer rather than by any
// synchronization between producers.
package task

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

type msgKind int

const (
	kindStarted msgKind = iota
	kindAdvanced
	kindFinished
	kindFailed
)

type progressMsg struct {
	kind      msgKind
	completed int
	total     int
	err       string
}

// Func is the background work a task performs. It reports through r and
// should return promptly once ctx is canceled; the engine checks the
// context between files.
type Func func(ctx context.Context, r *Reporter) error

// Reporter is the producer half of a task's progress channel, handed to the
// background function.
type Reporter struct {
	ch chan<- progressMsg
}

// Start announces the expected unit count. Sent once near the beginning of
// the work.
func (r *Reporter) Start(total int) {
	r.ch <- progressMsg{kind: kindStarted, total: total}
}

// Advance reports units done so far. The total may be revised if the size
// estimate changes mid-job. When the channel is full the update is dropped
// rather than blocking the worker; a later Advance or the terminal message
// carries the state forward.
func (r *Reporter) Advance(completed, total int) {
	select {
	case r.ch <- progressMsg{kind: kindAdvanced, completed: completed, total: total}:
	default:
	}
}

// Task is a unit of background work polled once per UI frame. Not safe for
// use from more than one consumer goroutine; the UI owns it.
type Task struct {
	Name string

	fn     Func
	ch     chan progressMsg
	pollMu sync.Mutex

	ctx    context.Context
	cancel context.CancelFunc

	started   bool
	finished  bool
	errMsg    string
	completed int
	total     int

	next  *Task
	after []tea.Msg
}

// New creates a task that will run fn when started.
func New(name string, fn Func) *Task {
	ctx, cancel := context.WithCancel(context.Background())
	return &Task{
		Name:   name,
		fn:     fn,
		ch:     make(chan progressMsg, 64),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start spawns the background goroutine. Starting twice is a no-op.
func (t *Task) Start() {
	if t.started {
		return
	}
	t.started = true
	go func() {
		r := &Reporter{ch: t.ch}
		if err := t.fn(t.ctx, r); err != nil {
			t.sendTerminal(progressMsg{kind: kindFailed, err: err.Error()})
			return
		}
		t.sendTerminal(progressMsg{kind: kindFinished})
	}()
}

// sendTerminal delivers the final message without ever blocking the worker
// goroutine. If the buffer is full because nobody is polling anymore (the
// popup was closed), stale progress updates are evicted to make room; the
// terminal message must land so a late poll still observes completion.
func (t *Task) sendTerminal(msg progressMsg) {
	for {
		select {
		case t.ch <- msg:
			return
		default:
		}
		select {
		case <-t.ch:
		default:
		}
	}
}

// Cancel signals the background work to stop at its next check point. There
// is no way to interrupt an in-flight file write; the task still ends with
// a Failed message once the work notices.
func (t *Task) Cancel() {
	t.cancel()
}

// Context returns the task's context, for work that composes with other
// context-aware calls.
func (t *Task) Context() context.Context {
	return t.ctx
}

// Poll drains any pending progress messages without blocking. If another
// poll is somehow still holding the channel, this frame's update is skipped
// silently; the next frame retries. Receipt of a failure message implies
// the task is finished even though the sender may still be alive.
func (t *Task) Poll() {
	if !t.pollMu.TryLock() {
		return
	}
	defer t.pollMu.Unlock()

	for {
		select {
		case msg := <-t.ch:
			switch msg.kind {
			case kindStarted:
				t.total = msg.total
			case kindAdvanced:
				t.completed = msg.completed
				t.total = msg.total
			case kindFinished:
				t.finished = true
			case kindFailed:
				t.finished = true
				t.errMsg = msg.err
			}
		default:
			return
		}
	}
}

// Started reports whether the task has been started.
func (t *Task) Started() bool { return t.started }

// Finished reports whether a terminal message has been observed.
func (t *Task) Finished() bool { return t.finished }

// Err returns the failure message, or "" if none has been observed.
func (t *Task) Err() string { return t.errMsg }

// Completed returns the units of work observed done so far.
func (t *Task) Completed() int { return t.completed }

// Total returns the expected unit count, 0 if not yet known.
func (t *Task) Total() int { return t.total }

// Progress returns the completed fraction. The second return is false when
// the total is zero or unknown; "nothing attempted yet" is different from
// 0% of a known-size job.
func (t *Task) Progress() (float64, bool) {
	if t.total == 0 {
		return 0, false
	}
	return float64(t.completed) / float64(t.total), true
}

// Percent maps the progress fraction to 0-100 for display, clamping
// out-of-range values. A task with no progress value renders as 0%.
func (t *Task) Percent() int {
	frac, ok := t.Progress()
	if !ok {
		return 0
	}
	pct := int(frac * 100)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Chain appends follow-up work to the end of this task's chain.
func (t *Task) Chain(next *Task) {
	tail := t
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = next
}

// TakeNext removes and returns the chained follow-up task, if any. The
// chain is empty afterward.
func (t *Task) TakeNext() *Task {
	next := t.next
	t.next = nil
	return next
}

// AddAfter attaches a message to fire when this task itself completes.
func (t *Task) AddAfter(msg tea.Msg) {
	t.after = append(t.after, msg)
}

// AddOnAllComplete attaches a message to fire once the whole chain has
// completed. It walks to the last link so the message fires exactly once,
// after everything, not after each task.
func (t *Task) AddOnAllComplete(msg tea.Msg) {
	tail := t
	for tail.next != nil {
		tail = tail.next
	}
	tail.after = append(tail.after, msg)
}

// TakeAfterMessages returns and clears the completion messages attached to
// this task.
func (t *Task) TakeAfterMessages() []tea.Msg {
	msgs := t.after
	t.after = nil
	return msgs
}

// Describe returns a short status line for logs.
func (t *Task) Describe() string {
	switch {
	case !t.started:
		return fmt.Sprintf("%s: not started", t.Name)
	case t.errMsg != "":
		return fmt.Sprintf("%s: failed: %s", t.Name, t.errMsg)
	case t.finished:
		return fmt.Sprintf("%s: finished (%d/%d)", t.Name, t.completed, t.total)
	default:
		return fmt.Sprintf("%s: running (%d/%d)", t.Name, t.completed, t.total)
	}
}
