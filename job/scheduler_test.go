package job

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"intmon/utils/logger"

	"github.com/stretchr/testify/assert"
)

func TestJobScheduler_RunsImmediatelyAndRepeats(t *testing.T) {
	logger.InitLogger()

	var runs atomic.Int32
	scheduler := NewJobScheduler()
	scheduler.Add(Job{
		Name:     "test-job",
		Interval: 20 * time.Millisecond,
		Timeout:  time.Second,
		Fn: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)

	assert.Eventually(t, func() bool {
		return runs.Load() >= 3
	}, time.Second, 5*time.Millisecond)

	cancel()
	scheduler.Shutdown()
}

func TestJobScheduler_StopsOnCancel(t *testing.T) {
	logger.InitLogger()

	var runs atomic.Int32
	scheduler := NewJobScheduler()
	scheduler.Add(Job{
		Name:     "cancel-job",
		Interval: 10 * time.Millisecond,
		Timeout:  time.Second,
		Fn: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)

	assert.Eventually(t, func() bool { return runs.Load() >= 1 }, time.Second, time.Millisecond)

	cancel()
	scheduler.Shutdown()

	final := runs.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, final, runs.Load())
}

func TestJobScheduler_FailingJobKeepsRunning(t *testing.T) {
	logger.InitLogger()

	var runs atomic.Int32
	scheduler := NewJobScheduler()
	scheduler.Add(Job{
		Name:     "failing-job",
		Interval: 10 * time.Millisecond,
		Timeout:  time.Second,
		Fn: func(ctx context.Context) error {
			runs.Add(1)
			return errors.New("boom")
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	scheduler.Start(ctx)

	assert.Eventually(t, func() bool {
		return runs.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	scheduler.Shutdown()
}
