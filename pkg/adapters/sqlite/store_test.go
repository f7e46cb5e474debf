package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aretw0/dialogtree/pkg/adapters/memory"
	"github.com/aretw0/dialogtree/pkg/adapters/sqlite"
	"github.com/aretw0/dialogtree/pkg/domain"
	"github.com/aretw0/dialogtree/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *sqlite.NodeStore {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "dialog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestNodeStore_Contract(t *testing.T) {
	store := openStore(t)
	nodes := memory.SampleNodes()
	require.NoError(t, store.Seed(context.Background(), nodes...))

	tests.NodeStoreContractTest(t, store, nodes)
}

func TestNodeStore_InMemory(t *testing.T) {
	store, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, domain.Node{ID: "a", Text: "A"}))

	node, err := store.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "A", node.Text)
	assert.True(t, node.IsDeadEnd())
}

func TestNodeStore_PutReplacesOptions(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, domain.Node{
		ID:   "a",
		Text: "first",
		Options: []domain.Option{
			{NextNodeID: "b"}, {NextNodeID: "c"},
		},
	}))
	require.NoError(t, store.Put(ctx, domain.Node{
		ID:      "a",
		Text:    "second",
		Options: []domain.Option{{NextNodeID: "z", Label: "only"}},
	}))

	node, err := store.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "second", node.Text)
	assert.Equal(t, []domain.Option{{NextNodeID: "z", Label: "only"}}, node.Options)
}

func TestNodeStore_DanglingTargetStored(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, domain.Node{
		ID:      "a",
		Options: []domain.Option{{NextNodeID: "missing"}},
	}))

	node, err := store.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "missing", node.Options[0].NextNodeID)

	_, err = store.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNodeNotFound)
}

func TestNodeStore_PutRejectsEmptyID(t *testing.T) {
	store := openStore(t)
	assert.Error(t, store.Put(context.Background(), domain.Node{Text: "anonymous"}))
}

func TestOpen_ReopensExistingData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dialog.db")
	store, err := sqlite.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Seed(context.Background(), memory.SampleNodes()...))
	require.NoError(t, store.Close())

	reopened, err := sqlite.Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	ids, err := reopened.ListNodes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"d0", "d1", "d2"}, ids)
}
