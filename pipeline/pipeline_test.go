package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunExecutesPhasesInOrder(t *testing.T) {
	var trace []string
	record := func(name string) func(context.Context, *Scratch) error {
		return func(context.Context, *Scratch) error {
			trace = append(trace, name)
			return nil
		}
	}

	steps := []Step{
		{Name: "a", Request: record("a.req"), Response: record("a.resp")},
		{Name: "b", Response: record("b.resp")},
		{Name: "c", Request: record("c.req"), Response: record("c.resp")},
	}
	require.NoError(t, Run(context.Background(), &Scratch{}, steps))
	assert.Equal(t, []string{"a.req", "a.resp", "b.resp", "c.req", "c.resp"}, trace)
}

func TestRunAbortsOnFirstError(t *testing.T) {
	boom := errors.New("boom")
	var afterRan bool

	steps := []Step{
		{Name: "ok", Response: func(context.Context, *Scratch) error { return nil }},
		{Name: "fails", Request: func(context.Context, *Scratch) error { return boom }},
		{Name: "never", Response: func(context.Context, *Scratch) error {
			afterRan = true
			return nil
		}},
	}
	err := Run(context.Background(), &Scratch{}, steps)
	assert.ErrorIs(t, err, boom)
	assert.False(t, afterRan, "no step may run after a prior failure")
}

func TestRunFailedRequestSkipsOwnResponse(t *testing.T) {
	boom := errors.New("precondition")
	var responseRan bool

	steps := []Step{
		{
			Name:    "guarded",
			Request: func(context.Context, *Scratch) error { return boom },
			Response: func(context.Context, *Scratch) error {
				responseRan = true
				return nil
			},
		},
	}
	assert.ErrorIs(t, Run(context.Background(), &Scratch{}, steps), boom)
	assert.False(t, responseRan)
}

func TestScratchIsSharedAcrossSteps(t *testing.T) {
	steps := []Step{
		{Name: "write", Response: func(_ context.Context, sc *Scratch) error {
			sc.CallerID = "U1"
			return nil
		}},
		{Name: "read", Request: func(_ context.Context, sc *Scratch) error {
			if sc.CallerID != "U1" {
				return errors.New("scratch not shared")
			}
			return nil
		}},
	}
	assert.NoError(t, Run(context.Background(), &Scratch{}, steps))
}
