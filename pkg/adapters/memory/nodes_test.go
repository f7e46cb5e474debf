package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/dialogtree/pkg/adapters/memory"
	"github.com/aretw0/dialogtree/pkg/domain"
	contract "github.com/aretw0/dialogtree/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeStore_Contract(t *testing.T) {
	nodes := memory.SampleNodes()
	store, err := memory.NewFromNodes(nodes...)
	require.NoError(t, err)

	contract.NodeStoreContractTest(t, store, nodes)
}

func TestNodeStore_RejectsBadSeeds(t *testing.T) {
	_, err := memory.NewFromNodes(domain.Node{Text: "anonymous"})
	assert.Error(t, err)

	_, err = memory.NewFromNodes(domain.Node{ID: "a"}, domain.Node{ID: "a"})
	assert.ErrorContains(t, err, "duplicate")
}

func TestNodeStore_ReturnsCopies(t *testing.T) {
	store, err := memory.NewFromNodes(domain.Node{
		ID:      "a",
		Options: []domain.Option{{NextNodeID: "b"}},
	})
	require.NoError(t, err)

	ctx := context.Background()
	got, err := store.GetByID(ctx, "a")
	require.NoError(t, err)
	got.Options[0].NextNodeID = "tampered"

	again, err := store.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "b", again.Options[0].NextNodeID)
}

func TestNodeStore_DanglingTargetsAreAccepted(t *testing.T) {
	store, err := memory.NewFromNodes(domain.Node{
		ID:      "a",
		Options: []domain.Option{{NextNodeID: "missing"}},
	})
	require.NoError(t, err)

	_, err = store.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNodeNotFound)
}

func TestNodeStore_Put(t *testing.T) {
	store := memory.NewNodeStore()
	store.Put(domain.Node{ID: "x", Text: "X"})

	ids, err := store.ListNodes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, ids)
}
