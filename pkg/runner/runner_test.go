package runner_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/dialogtree"
	"github.com/aretw0/dialogtree/pkg/adapters/memory"
	"github.com/aretw0/dialogtree/pkg/domain"
	"github.com/aretw0/dialogtree/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, input string, nodes []domain.Node, start string) (*dialogtree.Controller, *runner.Runner, *bytes.Buffer) {
	t.Helper()
	store, err := memory.NewFromNodes(nodes...)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	handler := runner.NewTextHandler(strings.NewReader(input), out)

	ctrl, err := dialogtree.New(store, handler, dialogtree.WithStartNode(start))
	require.NoError(t, err)

	return ctrl, runner.NewRunner(runner.WithInputHandler(handler)), out
}

func TestRunner_Walkthrough(t *testing.T) {
	ctrl, r, out := newSession(t, "0\n2\n5\nabc\n\nquit\n", memory.SampleNodes(), "d0")

	err := r.Run(context.Background(), ctrl)
	require.NoError(t, err)
	assert.Equal(t, "d1", ctrl.CurrentNodeID())

	output := out.String()
	assert.Equal(t, 1, strings.Count(output, "Location 0\n"), "start node presented once")
	assert.Equal(t, 2, strings.Count(output, "Location 1\n"), "self-loop presents again")
	assert.Contains(t, output, "[System] Option 5 does not exist. Try again.")
	assert.Contains(t, output, "input is not a choice number")
	assert.Contains(t, output, "[System] Bye!")
}

func TestRunner_EOFEndsGracefully(t *testing.T) {
	ctrl, r, _ := newSession(t, "1", memory.SampleNodes(), "d0")

	require.NoError(t, r.Run(context.Background(), ctrl))
	assert.Equal(t, "d2", ctrl.CurrentNodeID())
}

func TestRunner_NodeNotFoundIsFatal(t *testing.T) {
	nodes := []domain.Node{
		{ID: "start", Text: "Hi", Options: []domain.Option{{NextNodeID: "d9", Label: "Into the void"}}},
	}
	ctrl, r, _ := newSession(t, "0\n0\n", nodes, "start")

	err := r.Run(context.Background(), ctrl)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNodeNotFound)
}

func TestRunner_MissingStartNode(t *testing.T) {
	ctrl, r, out := newSession(t, "", memory.SampleNodes(), "nope")

	err := r.Run(context.Background(), ctrl)
	assert.ErrorIs(t, err, domain.ErrNodeNotFound)
	assert.Empty(t, out.String())
}

func TestRunner_ContextCanceled(t *testing.T) {
	ctrl, r, _ := newSession(t, "0\n", memory.SampleNodes(), "d0")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Run(ctx, ctrl)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "d0", ctrl.CurrentNodeID())
}

func TestRunner_CustomExitWords(t *testing.T) {
	store, err := memory.NewFromNodes(memory.SampleNodes()...)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	handler := runner.NewTextHandler(strings.NewReader("bye\n1\n"), out)
	ctrl, err := dialogtree.New(store, handler)
	require.NoError(t, err)

	r := runner.NewRunner(runner.WithInputHandler(handler), runner.WithExitWords("bye"))
	require.NoError(t, r.Run(context.Background(), ctrl))
	assert.Equal(t, "d0", ctrl.CurrentNodeID())
}

func TestRunner_JSONMode(t *testing.T) {
	store, err := memory.NewFromNodes(memory.SampleNodes()...)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	handler := runner.NewJSONHandler(strings.NewReader("{\"choice\": 1}\n\"0\"\n9\n"), out)
	ctrl, err := dialogtree.New(store, handler)
	require.NoError(t, err)

	require.NoError(t, runner.NewRunner(runner.WithInputHandler(handler)).Run(context.Background(), ctrl))
	assert.Equal(t, "d0", ctrl.CurrentNodeID())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], `"id":"d0"`)
	assert.Contains(t, lines[1], `"id":"d2"`)
	assert.Contains(t, lines[2], `"id":"d0"`)
	assert.Contains(t, lines[3], `"type":"system"`)
}
