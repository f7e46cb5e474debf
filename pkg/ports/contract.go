package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/dialogtree/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStateStoreContract runs a suite of tests to verify that a StateStore implementation
// adheres to the defined interface contract.
func RunStateStoreContract(t *testing.T, store StateStore) {
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, sessionID, domain.NewState("d1"))
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, "d1", loaded.CurrentNodeID)
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, sessionID, domain.NewState("d1")))
		require.NoError(t, store.Save(ctx, sessionID, domain.NewState("d2")))

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, "d2", loaded.CurrentNodeID)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	if lister, ok := store.(SessionLister); ok {
		t.Run("List", func(t *testing.T) {
			id1 := sessionID + "-1"
			id2 := sessionID + "-2"
			require.NoError(t, store.Save(ctx, id1, domain.NewState("d0")))
			require.NoError(t, store.Save(ctx, id2, domain.NewState("d0")))
			defer func() {
				_ = store.Delete(ctx, id1)
				_ = store.Delete(ctx, id2)
			}()

			sessions, err := lister.List(ctx)
			require.NoError(t, err)
			assert.Contains(t, sessions, id1)
			assert.Contains(t, sessions, id2)
		})
	}

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, sessionID, domain.NewState("d0"))
		require.NoError(t, err)

		err = store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})
}
