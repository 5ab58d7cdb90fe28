package audit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtcal/pkg/requestcontext"
)

type failingStore struct{}

func (failingStore) Append(context.Context, Record) error { return errors.New("insert failed") }

func (failingStore) ListByFile(context.Context, string) ([]Record, error) {
	return nil, errors.New("query failed")
}

func TestPublisherEmit(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("fills identity and timestamp", func(t *testing.T) {
		store := NewMemoryStore()
		p := NewPublisher(store, nil, logger)

		at := time.Date(2025, 10, 20, 9, 30, 0, 0, time.UTC)
		ctx := requestcontext.WithTime(context.Background(), at)

		require.NoError(t, p.Emit(ctx, Record{FilePath: "reports/daily.pdf", PartsExtracted: 3}))

		recs, err := store.ListByFile(context.Background(), "reports/daily.pdf")
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.NotEmpty(t, recs[0].ID)
		assert.Equal(t, at, recs[0].CreatedAt)
		assert.Equal(t, 3, recs[0].PartsExtracted)
	})

	t.Run("preserves caller-provided identity", func(t *testing.T) {
		store := NewMemoryStore()
		p := NewPublisher(store, nil, logger)

		at := time.Date(2025, 10, 19, 8, 0, 0, 0, time.UTC)
		rec := Record{ID: "fixed-id", FilePath: "a.pdf", CreatedAt: at}
		require.NoError(t, p.Emit(context.Background(), rec))

		recs, err := store.ListByFile(context.Background(), "a.pdf")
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "fixed-id", recs[0].ID)
		assert.Equal(t, at, recs[0].CreatedAt)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		p := NewPublisher(failingStore{}, nil, logger)
		err := p.Emit(context.Background(), Record{FilePath: "a.pdf"})
		require.Error(t, err)
	})
}

func TestMemoryStoreListByFile(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, Record{ID: "1", FilePath: "a.pdf"}))
	require.NoError(t, store.Append(ctx, Record{ID: "2", FilePath: "b.pdf"}))
	require.NoError(t, store.Append(ctx, Record{ID: "3", FilePath: "a.pdf"}))

	recs, err := store.ListByFile(ctx, "a.pdf")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "1", recs[0].ID)
	assert.Equal(t, "3", recs[1].ID)

	recs, err = store.ListByFile(ctx, "missing.pdf")
	require.NoError(t, err)
	assert.Empty(t, recs)
}
