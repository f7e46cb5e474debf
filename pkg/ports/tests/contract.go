package tests

import (
	"context"
	"testing"

	"github.com/aretw0/dialogtree/pkg/domain"
	"github.com/aretw0/dialogtree/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NodeStoreContractTest is a reusable test suite that verifies if an adapter complies with ports.NodeStore.
// expected must describe exactly the nodes seeded into the store.
func NodeStoreContractTest(t *testing.T, store ports.NodeStore, expected []domain.Node) {
	t.Helper()
	ctx := context.Background()

	t.Run("GetByID_Success", func(t *testing.T) {
		for _, want := range expected {
			got, err := store.GetByID(ctx, want.ID)
			require.NoError(t, err, "unexpected error getting node %s", want.ID)
			assert.Equal(t, want.ID, got.ID)
			assert.Equal(t, want.Text, got.Text)
			require.Len(t, got.Options, len(want.Options), "option count mismatch for %s", want.ID)
			for i := range want.Options {
				assert.Equal(t, want.Options[i].NextNodeID, got.Options[i].NextNodeID, "option %d of %s", i, want.ID)
				assert.Equal(t, want.Options[i].Label, got.Options[i].Label, "label %d of %s", i, want.ID)
			}
		}
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		_, err := store.GetByID(ctx, "non-existent-node")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNodeNotFound)
	})

	lister, ok := store.(ports.NodeLister)
	if !ok {
		return
	}

	t.Run("ListNodes", func(t *testing.T) {
		ids, err := lister.ListNodes(ctx)
		require.NoError(t, err)
		assert.Len(t, ids, len(expected))
		for _, n := range expected {
			assert.Contains(t, ids, n.ID)
		}
	})
}
