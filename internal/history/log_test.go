package history_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agribrain/backend/internal/history"
	"agribrain/backend/internal/model"
	"agribrain/backend/internal/repository"
)

// countingStore wraps a KVStore and records the writes it receives.
type countingStore struct {
	repository.KVStore
	puts    [][]byte
	failPut error
	failGet error
}

func (s *countingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.failGet != nil {
		return nil, s.failGet
	}
	return s.KVStore.Get(ctx, key)
}

func (s *countingStore) Put(ctx context.Context, key string, value []byte) error {
	if s.failPut != nil {
		return s.failPut
	}
	s.puts = append(s.puts, value)
	return s.KVStore.Put(ctx, key, value)
}

func TestLog_RoundTripPreservesOrder(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()

	log, err := history.Open[model.Message](ctx, store, history.KeyChat)
	require.NoError(t, err)
	assert.Equal(t, 0, log.Len())

	messages := []model.Message{
		{Text: "How do I control pests?", Sender: model.SenderUser, Timestamp: 1000},
		{Text: "For pest control...", Sender: model.SenderAssistant, Timestamp: 2000},
		{Text: "Thanks", Sender: model.SenderUser, Timestamp: 3000},
	}
	require.NoError(t, log.Append(ctx, messages[:2]...))
	require.NoError(t, log.Append(ctx, messages[2]))

	reloaded, err := history.Open[model.Message](ctx, store, history.KeyChat)
	require.NoError(t, err)
	assert.Equal(t, messages, reloaded.Entries())

	last, ok := reloaded.Last()
	require.True(t, ok)
	assert.Equal(t, "Thanks", last.Text)
}

func TestLog_RewritesInFullOnEveryAppend(t *testing.T) {
	ctx := context.Background()
	store := &countingStore{KVStore: repository.NewMemoryStore()}

	log, err := history.Open[string](ctx, store, "k")
	require.NoError(t, err)

	require.NoError(t, log.Append(ctx, "a"))
	require.NoError(t, log.Append(ctx, "b", "c"))
	require.NoError(t, log.Append(ctx))

	require.Len(t, store.puts, 2)
	var second []string
	require.NoError(t, json.Unmarshal(store.puts[1], &second))
	assert.Equal(t, []string{"a", "b", "c"}, second)
}

func TestLog_FailedWriteKeepsMemoryUnchanged(t *testing.T) {
	ctx := context.Background()
	store := &countingStore{KVStore: repository.NewMemoryStore()}

	log, err := history.Open[string](ctx, store, "k")
	require.NoError(t, err)
	require.NoError(t, log.Append(ctx, "a"))

	store.failPut = errors.New("read-only filesystem")
	err = log.Append(ctx, "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only filesystem")
	assert.Equal(t, []string{"a"}, log.Entries())
}

func TestLog_EntriesIsACopy(t *testing.T) {
	ctx := context.Background()
	log, err := history.Open[string](ctx, repository.NewMemoryStore(), "k")
	require.NoError(t, err)
	require.NoError(t, log.Append(ctx, "a"))

	entries := log.Entries()
	entries[0] = "changed"
	assert.Equal(t, []string{"a"}, log.Entries())
}

func TestLog_Clear(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	log, err := history.Open[string](ctx, store, "k")
	require.NoError(t, err)
	require.NoError(t, log.Append(ctx, "a"))

	require.NoError(t, log.Clear(ctx))
	assert.Equal(t, 0, log.Len())
	_, ok := log.Last()
	assert.False(t, ok)

	reloaded, err := history.Open[string](ctx, store, "k")
	require.NoError(t, err)
	assert.Empty(t, reloaded.Entries())
}

func TestOpen_Errors(t *testing.T) {
	ctx := context.Background()

	store := &countingStore{KVStore: repository.NewMemoryStore(), failGet: errors.New("connection refused")}
	_, err := history.Open[string](ctx, store, "k")
	assert.ErrorContains(t, err, "connection refused")

	corrupt := repository.NewMemoryStore()
	require.NoError(t, corrupt.Put(ctx, "k", []byte("{not json")))
	_, err = history.Open[string](ctx, corrupt, "k")
	assert.ErrorContains(t, err, "could not decode history")
}
