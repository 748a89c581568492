package lazy_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/0xalexb/hjarta-settings/lazy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string
}

func TestValue_ZeroValueIsEmpty(t *testing.T) {
	t.Parallel()

	var cell lazy.Value[*sample]

	require.Equal(t, lazy.Empty, cell.State())

	_, ok := cell.Peek()
	require.False(t, ok)
}

func TestValue_GetCachesFirstBuild(t *testing.T) {
	t.Parallel()

	var (
		cell  lazy.Value[*sample]
		calls int
	)

	build := func() (*sample, error) {
		calls++

		return &sample{Name: "first"}, nil
	}

	first, err := cell.Get(build)
	require.NoError(t, err)

	second, err := cell.Get(build)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, lazy.Populated, cell.State())
}

func TestValue_ErrorLeavesCellEmpty(t *testing.T) {
	t.Parallel()

	var cell lazy.Value[*sample]

	buildErr := errors.New("build failed")

	value, err := cell.Get(func() (*sample, error) {
		return nil, buildErr
	})
	require.ErrorIs(t, err, buildErr)
	assert.Nil(t, value)
	assert.Equal(t, lazy.Empty, cell.State())

	value, err = cell.Get(func() (*sample, error) {
		return &sample{Name: "retry"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "retry", value.Name)
}

func TestValue_ResetForcesRebuild(t *testing.T) {
	t.Parallel()

	var cell lazy.Value[*sample]

	build := func() (*sample, error) {
		return &sample{Name: "value"}, nil
	}

	first, err := cell.Get(build)
	require.NoError(t, err)

	cell.Reset()
	require.Equal(t, lazy.Empty, cell.State())

	second, err := cell.Get(build)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, first, second)
}

func TestValue_ResetIsIdempotent(t *testing.T) {
	t.Parallel()

	var cell lazy.Value[int]

	require.NotPanics(t, func() {
		cell.Reset()
		cell.Reset()
	})
	require.Equal(t, lazy.Empty, cell.State())
}

func TestValue_ConcurrentGetBuildsOnce(t *testing.T) {
	t.Parallel()

	const callers = 64

	var (
		cell  lazy.Value[*sample]
		calls atomic.Int32
		start = make(chan struct{})
		wg    sync.WaitGroup
	)

	results := make([]*sample, callers)

	for i := range callers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			<-start

			value, err := cell.Get(func() (*sample, error) {
				calls.Add(1)

				return &sample{Name: "shared"}, nil
			})
			if err == nil {
				results[i] = value
			}
		}()
	}

	close(start)
	wg.Wait()

	require.Equal(t, int32(1), calls.Load())

	for _, result := range results {
		assert.Same(t, results[0], result)
	}
}

func TestState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "empty", lazy.Empty.String())
	assert.Equal(t, "populated", lazy.Populated.String())
}
