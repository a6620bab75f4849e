package cache

import (
	"context"
	"errors"
	"path"
	"testing"
	"time"

	"legal-chat-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEntry struct {
	value     string
	expiresAt time.Time
}

type fakeStore struct {
	entries map[string]fakeEntry
	now     time.Time
	failing bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		entries: make(map[string]fakeEntry),
		now:     time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *fakeStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.failing {
		return "", false, errors.New("store unavailable")
	}
	entry, ok := s.entries[key]
	if !ok || s.now.After(entry.expiresAt) {
		return "", false, nil
	}
	return entry.value, true, nil
}

func (s *fakeStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if s.failing {
		return errors.New("store unavailable")
	}
	s.entries[key] = fakeEntry{value: value, expiresAt: s.now.Add(ttl)}
	return nil
}

func (s *fakeStore) Del(ctx context.Context, keys ...string) error {
	if s.failing {
		return errors.New("store unavailable")
	}
	for _, key := range keys {
		delete(s.entries, key)
	}
	return nil
}

func (s *fakeStore) Keys(ctx context.Context, pattern string) ([]string, error) {
	if s.failing {
		return nil, errors.New("store unavailable")
	}
	var matched []string
	for key := range s.entries {
		if ok, _ := path.Match(pattern, key); ok {
			matched = append(matched, key)
		}
	}
	return matched, nil
}

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestCache_RoundTrip(t *testing.T) {
	store := newFakeStore()
	c := New(store, logger.NewNopLogger())

	c.SetJSON(context.Background(), "key-1", payload{Name: "act", Count: 3}, 5*time.Minute)

	var got payload
	found := c.GetJSON(context.Background(), "key-1", &got)
	require.True(t, found)
	assert.Equal(t, payload{Name: "act", Count: 3}, got)
}

func TestCache_MissReturnsFalse(t *testing.T) {
	c := New(newFakeStore(), logger.NewNopLogger())

	var got payload
	assert.False(t, c.GetJSON(context.Background(), "missing", &got))
}

func TestCache_ExpiredEntryIsAMiss(t *testing.T) {
	store := newFakeStore()
	c := New(store, logger.NewNopLogger())

	c.SetJSON(context.Background(), "key-1", payload{Name: "act"}, 5*time.Minute)
	store.now = store.now.Add(6 * time.Minute)

	var got payload
	assert.False(t, c.GetJSON(context.Background(), "key-1", &got))
}

func TestCache_NilStoreIsDisabled(t *testing.T) {
	c := New(nil, logger.NewNopLogger())

	assert.False(t, c.Enabled())
	c.SetJSON(context.Background(), "key-1", payload{Name: "act"}, time.Minute)

	var got payload
	assert.False(t, c.GetJSON(context.Background(), "key-1", &got))
}

func TestCache_StoreFailureIsSwallowed(t *testing.T) {
	store := newFakeStore()
	store.failing = true
	c := New(store, logger.NewNopLogger())

	c.SetJSON(context.Background(), "key-1", payload{Name: "act"}, time.Minute)

	var got payload
	assert.False(t, c.GetJSON(context.Background(), "key-1", &got))
}

func TestCache_ClearPattern(t *testing.T) {
	store := newFakeStore()
	c := New(store, logger.NewNopLogger())

	c.SetJSON(context.Background(), "org_documents:org-1", payload{Name: "a"}, time.Minute)
	c.SetJSON(context.Background(), "org_documents:org-2", payload{Name: "b"}, time.Minute)
	c.SetJSON(context.Background(), "other:org-1", payload{Name: "c"}, time.Minute)

	c.ClearPattern(context.Background(), "org_documents:*")

	var got payload
	assert.False(t, c.GetJSON(context.Background(), "org_documents:org-1", &got))
	assert.False(t, c.GetJSON(context.Background(), "org_documents:org-2", &got))
	assert.True(t, c.GetJSON(context.Background(), "other:org-1", &got))
}
