package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/mmcdole/vitrine/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeRepo struct {
	calls   atomic.Int32
	release chan struct{}
	items   []domain.ArtworkSummary
	err     error
	details map[int]*domain.ArtworkDetail
}

func (f *fakeRepo) FetchCollection(ctx context.Context) ([]domain.ArtworkSummary, error) {
	f.calls.Add(1)
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakeRepo) FetchDetail(ctx context.Context, id int) (*domain.ArtworkDetail, error) {
	if d, ok := f.details[id]; ok {
		return d, nil
	}
	return nil, &domain.FetchError{Kind: domain.KindDetail, ID: id, Err: domain.ErrArtworkNotFound}
}

func TestLoadReturnsCopy(t *testing.T) {
	repo := &fakeRepo{items: []domain.ArtworkSummary{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}}
	svc := NewCollectionService(repo, nil)

	items, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, repo.items, items)

	items[0].Title = "changed"
	again, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "A", again[0].Title)
	assert.EqualValues(t, 2, repo.calls.Load())
}

func TestLoadFailure(t *testing.T) {
	repo := &fakeRepo{err: &domain.FetchError{Kind: domain.KindCollection, Err: domain.ErrServerOffline}}
	svc := NewCollectionService(repo, nil)

	items, err := svc.Load(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsCollectionError(err))
	assert.Nil(t, items)
}

func TestLoadConcurrentCallsShareRequest(t *testing.T) {
	repo := &fakeRepo{
		items:   []domain.ArtworkSummary{{ID: 1}},
		release: make(chan struct{}),
	}
	svc := NewCollectionService(repo, nil)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := svc.Load(context.Background())
			assert.NoError(t, err)
			assert.Len(t, items, 1)
		}()
	}

	require.Eventually(t, func() bool { return repo.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	// give the remaining callers time to join the in-flight request
	time.Sleep(50 * time.Millisecond)
	close(repo.release)
	wg.Wait()

	assert.EqualValues(t, 1, repo.calls.Load())
}

func TestDetail(t *testing.T) {
	repo := &fakeRepo{details: map[int]*domain.ArtworkDetail{
		7: {ArtworkSummary: domain.ArtworkSummary{ID: 7, Title: "Study"}},
	}}
	svc := NewCollectionService(repo, nil)

	d, err := svc.Detail(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Study", d.Title)

	_, err = svc.Detail(context.Background(), 8)
	assert.True(t, errors.Is(err, domain.ErrArtworkNotFound))
	assert.True(t, domain.IsDetailError(err))
}
