package dogs

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeSource struct {
	mu       sync.Mutex
	calls    []int64
	notFound map[int64]bool
	failing  map[int64]bool
	failAll  bool
}

func (s *fakeSource) GetByID(ctx context.Context, id int64) (Dog, error) {
	s.mu.Lock()
	s.calls = append(s.calls, id)
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return Dog{}, err
	}
	switch {
	case s.failAll || s.failing[id]:
		return Dog{}, errors.New("connection reset")
	case s.notFound[id]:
		return Dog{}, ErrNotFound
	}
	return Dog{ID: id, Name: "dog"}, nil
}

func seq(n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(i + 1)
	}
	return out
}

func ids(ds []Dog) []int64 {
	out := make([]int64, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.ID)
	}
	return out
}

func TestBatches_CeilNOver20(t *testing.T) {
	for _, n := range []int{0, 1, 19, 20, 21, 40, 41, 100} {
		got := Batches(seq(n), BatchSize)
		assert.Len(t, got, (n+BatchSize-1)/BatchSize, "n=%d", n)

		total := 0
		for _, b := range got {
			assert.LessOrEqual(t, len(b), BatchSize)
			total += len(b)
		}
		assert.Equal(t, n, total)
	}
}

func TestFetchByIDs_ZeroIDsNoCalls(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := &fakeSource{}
	out, err := NewFetcher(src, nil).FetchByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, src.calls)
}

func TestFetchByIDs_KeepsRequestedOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := &fakeSource{}
	in := seq(45)
	out, err := NewFetcher(src, nil).FetchByIDs(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, in, ids(out))
	assert.Len(t, src.calls, 45)
}

func TestFetchByIDs_SingleFailureDropsOnlyThatDog(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := &fakeSource{
		failing:  map[int64]bool{7: true},
		notFound: map[int64]bool{30: true},
	}
	out, err := NewFetcher(src, nil).FetchByIDs(context.Background(), seq(40))
	require.NoError(t, err)
	assert.Len(t, out, 38)
	assert.NotContains(t, ids(out), int64(7))
	assert.NotContains(t, ids(out), int64(30))
}

func TestFetchByIDs_AllNotFoundIsNotAnError(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := &fakeSource{notFound: map[int64]bool{1: true, 2: true}}
	out, err := NewFetcher(src, nil).FetchByIDs(context.Background(), []int64{1, 2})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFetchByIDs_AllFailIsTotalFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := &fakeSource{failAll: true}
	out, err := NewFetcher(src, nil).FetchByIDs(context.Background(), seq(25))
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.Empty(t, out)
}

func TestFetchByIDs_NotFoundPlusFailuresIsTotalFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := &fakeSource{
		notFound: map[int64]bool{1: true, 2: true},
		failing:  map[int64]bool{3: true, 4: true},
	}
	out, err := NewFetcher(src, nil).FetchByIDs(context.Background(), []int64{1, 2, 3, 4})
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.Empty(t, out)
}

func TestFetchByIDs_OneSuccessIsNotTotalFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := &fakeSource{
		notFound: map[int64]bool{1: true},
		failing:  map[int64]bool{2: true},
	}
	out, err := NewFetcher(src, nil).FetchByIDs(context.Background(), []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, ids(out))
}

func TestFetchByIDs_CancelledContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := NewFetcher(&fakeSource{}, nil).FetchByIDs(ctx, seq(3))
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.Empty(t, out)
}
