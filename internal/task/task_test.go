package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pollUntilFinished polls tk the way the UI does until it observes the
// terminal message or the deadline passes.
func pollUntilFinished(t *testing.T, tk *Task) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		tk.Poll()
		if tk.Finished() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("task did not finish in time")
}

func TestTaskReportsProgress(t *testing.T) {
	tk := New("copy files", func(ctx context.Context, r *Reporter) error {
		r.Start(4)
		for i := 1; i <= 4; i++ {
			r.Advance(i, 4)
		}
		return nil
	})

	assert.False(t, tk.Started())
	tk.Start()
	assert.True(t, tk.Started())

	pollUntilFinished(t, tk)

	assert.Empty(t, tk.Err())
	assert.Equal(t, 4, tk.Total())
	assert.Equal(t, 4, tk.Completed())

	frac, ok := tk.Progress()
	assert.True(t, ok)
	assert.InDelta(t, 1.0, frac, 0.001)
	assert.Equal(t, 100, tk.Percent())
}

func TestTaskWithoutTotalHasNoProgressValue(t *testing.T) {
	tk := New("quick job", func(ctx context.Context, r *Reporter) error {
		return nil
	})
	tk.Start()
	pollUntilFinished(t, tk)

	_, ok := tk.Progress()
	assert.False(t, ok)
	assert.Equal(t, 0, tk.Percent())
}

func TestTaskFailureImpliesFinished(t *testing.T) {
	tk := New("doomed", func(ctx context.Context, r *Reporter) error {
		r.Start(10)
		return errors.New("disk full")
	})
	tk.Start()
	pollUntilFinished(t, tk)

	assert.True(t, tk.Finished())
	assert.Equal(t, "disk full", tk.Err())
}

func TestTaskCancel(t *testing.T) {
	started := make(chan struct{})
	tk := New("long job", func(ctx context.Context, r *Reporter) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	})
	tk.Start()
	<-started
	tk.Cancel()
	pollUntilFinished(t, tk)

	assert.NotEmpty(t, tk.Err())
}

func TestTaskTerminalMessageSurvivesFullBuffer(t *testing.T) {
	// A worker that floods the channel and finishes while nobody polls must
	// still get its terminal message through.
	tk := New("flood", func(ctx context.Context, r *Reporter) error {
		r.Start(1000)
		for i := 1; i <= 1000; i++ {
			r.Advance(i, 1000)
		}
		return nil
	})
	tk.Start()
	pollUntilFinished(t, tk)
	assert.True(t, tk.Finished())
}

func TestChainAppendsAtTail(t *testing.T) {
	a := New("a", func(ctx context.Context, r *Reporter) error { return nil })
	b := New("b", func(ctx context.Context, r *Reporter) error { return nil })
	c := New("c", func(ctx context.Context, r *Reporter) error { return nil })

	a.Chain(b)
	a.Chain(c) // appends after b, not in front of it

	next := a.TakeNext()
	require.Equal(t, b, next)
	assert.Nil(t, a.TakeNext())
	assert.Equal(t, c, next.TakeNext())
}

func TestChainRunsInOrder(t *testing.T) {
	var order []string
	mk := func(name string) *Task {
		return New(name, func(ctx context.Context, r *Reporter) error {
			order = append(order, name)
			return nil
		})
	}
	a, b := mk("first"), mk("second")
	a.Chain(b)

	// Drive the chain the way the UI does: poll to completion, then take
	// and start the successor.
	a.Start()
	pollUntilFinished(t, a)
	next := a.TakeNext()
	require.NotNil(t, next)
	next.Start()
	pollUntilFinished(t, next)

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestAddOnAllCompleteAttachesToTail(t *testing.T) {
	a := New("a", func(ctx context.Context, r *Reporter) error { return nil })
	b := New("b", func(ctx context.Context, r *Reporter) error { return nil })
	a.Chain(b)

	type doneMsg struct{}
	a.AddOnAllComplete(doneMsg{})

	assert.Empty(t, a.TakeAfterMessages())
	msgs := b.TakeAfterMessages()
	require.Len(t, msgs, 1)
	assert.IsType(t, doneMsg{}, msgs[0])
	// Taking clears
	assert.Empty(t, b.TakeAfterMessages())
}

func TestAddAfterAttachesToSelf(t *testing.T) {
	a := New("a", func(ctx context.Context, r *Reporter) error { return nil })
	type doneMsg struct{}
	a.AddAfter(doneMsg{})

	msgs := a.TakeAfterMessages()
	require.Len(t, msgs, 1)
}

func TestDescribe(t *testing.T) {
	tk := New("sync", func(ctx context.Context, r *Reporter) error {
		r.Start(2)
		r.Advance(2, 2)
		return nil
	})
	assert.Contains(t, tk.Describe(), "not started")

	tk.Start()
	pollUntilFinished(t, tk)
	assert.Contains(t, tk.Describe(), "finished")
}
