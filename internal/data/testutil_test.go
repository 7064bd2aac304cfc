package data

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestModels(t *testing.T) (*Store, Models) {
	t.Helper()

	seed, err := DefaultSeed()
	require.NoError(t, err)

	store := NewStore(seed)
	return store, NewModels(store)
}
