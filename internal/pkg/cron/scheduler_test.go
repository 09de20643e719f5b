package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsJobImmediatelyOnStart(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	ran := make(chan struct{}, 1)
	s.AddJob("snapshot", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
}

func TestScheduler_StopCancelsJobContext(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	ctxCh := make(chan context.Context, 1)
	s.AddJob("snapshot", time.Hour, func(ctx context.Context) error {
		ctxCh <- ctx
		return nil
	})

	s.Start()

	var jobCtx context.Context
	select {
	case jobCtx = <-ctxCh:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}

	s.Stop()
	require.NotNil(t, jobCtx)
	assert.Error(t, jobCtx.Err())
}

func TestScheduler_StopWithoutJobsReturns(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	s.Start()
	s.Stop()
}
