package kvstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_GetSet(t *testing.T) {
	store := NewMemory()

	_, ok, err := store.Get("missing")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.Set("k", []byte("payload")))

	value, ok, err := store.Get("k")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("payload"), value)

	// Mutating the returned slice must not affect the stored copy.
	value[0] = 'X'
	again, _, _ := store.Get("k")
	assert.Equal(t, []byte("payload"), again)
}

func TestFile_GetSet(t *testing.T) {
	store, err := NewFile(t.TempDir())
	assert.NoError(t, err)

	_, ok, err := store.Get("bookings")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.Set("bookings", []byte(`[{"reference":"TXN-1"}]`)))

	value, ok, err := store.Get("bookings")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"reference":"TXN-1"}]`, string(value))

	// Overwrite replaces the payload wholesale.
	assert.NoError(t, store.Set("bookings", []byte(`[]`)))
	value, _, _ = store.Get("bookings")
	assert.Equal(t, `[]`, string(value))
}
