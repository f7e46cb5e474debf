package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/dialogtree/pkg/adapters/file"
	"github.com/aretw0/dialogtree/pkg/domain"
	"github.com/aretw0/dialogtree/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
start: d0
nodes:
  - id: d0
    text: Location 0
    options:
      - next: d1
        label: Go to 'Location 1'
      - next: d0
        label: Where am I?
  - id: d1
    text: Location 1
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNodeStore_Contract(t *testing.T) {
	store, err := file.Load(writeFile(t, "dialog.yaml", sampleYAML))
	require.NoError(t, err)

	tests.NodeStoreContractTest(t, store, []domain.Node{
		{
			ID:   "d0",
			Text: "Location 0",
			Options: []domain.Option{
				{NextNodeID: "d1", Label: "Go to 'Location 1'"},
				{NextNodeID: "d0", Label: "Where am I?"},
			},
		},
		{ID: "d1", Text: "Location 1"},
	})
	assert.Equal(t, "d0", store.StartNodeID())
}

func TestNodeStore_JSON(t *testing.T) {
	content := `{"nodes":[{"id":"a","text":"A","options":[{"next":"b","label":"to b"}]},{"id":"b","text":"B"}]}`
	store, err := file.Load(writeFile(t, "dialog.json", content))
	require.NoError(t, err)

	node, err := store.GetByID(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "b", node.Options[0].NextNodeID)
	assert.Empty(t, store.StartNodeID())
}

func TestNodeStore_NumericIDs(t *testing.T) {
	content := "nodes:\n  - id: 1\n    text: One\n    options:\n      - next: 2\n  - id: 2\n    text: Two\n"
	store, err := file.Parse([]byte(content))
	require.NoError(t, err)

	node, err := store.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "2", node.Options[0].NextNodeID)
}

func TestNodeStore_DanglingTargetIsNotValidated(t *testing.T) {
	content := "nodes:\n  - id: a\n    text: A\n    options:\n      - next: nowhere\n"
	store, err := file.Parse([]byte(content))
	require.NoError(t, err)

	_, err = store.GetByID(context.Background(), "nowhere")
	assert.ErrorIs(t, err, domain.ErrNodeNotFound)
}

func TestNodeStore_ReturnsCopies(t *testing.T) {
	store, err := file.Parse([]byte(sampleYAML))
	require.NoError(t, err)

	node, err := store.GetByID(context.Background(), "d0")
	require.NoError(t, err)
	node.Options[0].NextNodeID = "mutated"

	again, err := store.GetByID(context.Background(), "d0")
	require.NoError(t, err)
	assert.Equal(t, "d1", again.Options[0].NextNodeID)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"malformed":     "nodes: [",
		"missing id":    "nodes:\n  - text: A\n",
		"duplicate id":  "nodes:\n  - id: a\n  - id: a\n",
		"unknown field": "nodes:\n  - id: a\n    colour: red\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := file.Parse([]byte(content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := file.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
