package batch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessor_Process(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	t.Run("Sequential", func(t *testing.T) {
		p, err := NewProcessor[int](10)
		require.NoError(t, err)

		var offsets []int
		var processed int
		err = p.Process(context.Background(), items, func(_ context.Context, chunk []int, offset int) error {
			offsets = append(offsets, offset)
			processed += len(chunk)
			assert.Equal(t, offset, chunk[0])
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 25, processed)
		assert.Equal(t, []int{0, 10, 20}, offsets)
	})

	t.Run("ConcurrentWritesByOffset", func(t *testing.T) {
		p, err := NewProcessor[int](4)
		require.NoError(t, err)

		out := make([]int, len(items))
		err = p.ProcessConcurrent(context.Background(), items, func(_ context.Context, chunk []int, offset int) error {
			for i, v := range chunk {
				out[offset+i] = v * 2
			}
			return nil
		}, 3)
		require.NoError(t, err)
		for i, v := range out {
			assert.Equal(t, i*2, v)
		}
	})

	t.Run("ErrorHandling", func(t *testing.T) {
		p, err := NewProcessor[int](10)
		require.NoError(t, err)

		err = p.Process(context.Background(), items, func(_ context.Context, _ []int, offset int) error {
			if offset == 10 {
				return errors.New("fail")
			}
			return nil
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "batch 1 failed")
	})

	t.Run("ConcurrentError", func(t *testing.T) {
		p, err := NewProcessor[int](5)
		require.NoError(t, err)

		sentinel := errors.New("boom")
		err = p.ProcessConcurrent(context.Background(), items, func(_ context.Context, _ []int, offset int) error {
			if offset == 15 {
				return sentinel
			}
			return nil
		}, 4)
		require.ErrorIs(t, err, sentinel)
	})

	t.Run("EmptyItemsIsNoop", func(t *testing.T) {
		p := NewProcessorWithDefaults[int]()
		var calls int
		err := p.Process(context.Background(), nil, func(context.Context, []int, int) error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Zero(t, calls)
	})

	t.Run("NilCallback", func(t *testing.T) {
		p := NewProcessorWithDefaults[int]()
		require.ErrorIs(t, p.Process(context.Background(), items, nil), ErrNilCallback)
		require.ErrorIs(t, p.ProcessConcurrent(context.Background(), items, nil, 2), ErrNilCallback)
	})

	t.Run("CancelledContext", func(t *testing.T) {
		p, err := NewProcessor[int](5)
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err = p.Process(ctx, items, func(context.Context, []int, int) error { return nil })
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("InvalidBatchSize", func(t *testing.T) {
		_, err := NewProcessor[int](0)
		require.ErrorIs(t, err, ErrInvalidBatchSize)
		_, err = NewProcessor[int](MaxBatchSize + 1)
		require.ErrorIs(t, err, ErrInvalidBatchSize)
	})
}

func TestProcessor_ProgressCallback(t *testing.T) {
	items := make([]int, 25)
	p, err := NewProcessor[int](10)
	require.NoError(t, err)

	var (
		mu    sync.Mutex
		snaps []Snapshot
		calls atomic.Int32
	)
	p.WithProgressCallback(func(s Snapshot) {
		calls.Add(1)
		mu.Lock()
		snaps = append(snaps, s)
		mu.Unlock()
	})

	err = p.ProcessConcurrent(context.Background(), items, func(context.Context, []int, int) error { return nil }, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())

	var final Snapshot
	for _, s := range snaps {
		if s.ProcessedBatches == 3 {
			final = s
		}
	}
	assert.Equal(t, 25, final.ProcessedItems)
	assert.InDelta(t, 100.0, final.PercentComplete, 1e-9)
}

func TestProgress(t *testing.T) {
	p := NewProgress(100, 10, 10)
	assert.InDelta(t, 0.0, p.PercentComplete(), 1e-9)
	assert.False(t, p.IsComplete())

	p.AddProcessed(10)
	assert.InDelta(t, 10.0, p.PercentComplete(), 1e-9)

	p.AddProcessed(90)
	assert.True(t, p.IsComplete())

	snap := p.Snapshot()
	assert.Equal(t, 100, snap.ProcessedItems)
	assert.Equal(t, 2, snap.ProcessedBatches)
	assert.Equal(t, 10, snap.BatchSize)

	empty := NewProgress(0, 0, 10)
	assert.InDelta(t, 100.0, empty.PercentComplete(), 1e-9)
	assert.True(t, empty.IsComplete())
}

func TestProcessor_Bounds(t *testing.T) {
	p, err := NewProcessor[int](10)
	require.NoError(t, err)

	assert.Equal(t, [][2]int{{0, 10}, {10, 20}, {20, 25}}, p.Bounds(25))
	assert.Empty(t, p.Bounds(0))
	assert.Equal(t, 10, p.BatchSize())
}
