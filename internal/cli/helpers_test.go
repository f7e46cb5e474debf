package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"syscall"
	"testing"
	"time"

	"github.com/aretw0/dialogtree/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeHooks(t *testing.T) {
	var calls []string
	a := domain.LifecycleHooks{
		OnNodeEnter: func(ctx context.Context, e *domain.NodeEvent) { calls = append(calls, "a:"+e.NodeID) },
	}
	b := domain.LifecycleHooks{
		OnNodeEnter:      func(ctx context.Context, e *domain.NodeEvent) { calls = append(calls, "b:"+e.NodeID) },
		OnChoiceRejected: func(ctx context.Context, e *domain.ChoiceEvent) { calls = append(calls, "b:rejected") },
	}

	merged := mergeHooks(a, b)
	merged.OnNodeEnter(context.Background(), &domain.NodeEvent{NodeID: "d0"})
	merged.OnChoiceRejected(context.Background(), &domain.ChoiceEvent{NodeID: "d0"})
	merged.OnChoiceAccepted(context.Background(), &domain.ChoiceEvent{NodeID: "d0"})

	assert.Equal(t, []string{"a:d0", "b:d0", "b:rejected"}, calls)
}

func TestHandleExecutionError(t *testing.T) {
	assert.NoError(t, handleExecutionError(nil))
	assert.NoError(t, handleExecutionError(context.Canceled))
	assert.NoError(t, handleExecutionError(fmt.Errorf("input error: %w", io.EOF)))

	fatal := errors.New("boom")
	assert.ErrorIs(t, handleExecutionError(fatal), fatal)
}

func TestCreateLogger(t *testing.T) {
	logger, err := createLogger("debug")
	assert.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = createLogger("loud")
	assert.Error(t, err)
}

func TestSignalContext_RecordsSignal(t *testing.T) {
	sc := NewSignalContext(context.Background())
	defer sc.Cancel()
	assert.Nil(t, interruptSignal(sc))

	sc.sigCh <- syscall.SIGTERM

	select {
	case <-sc.Done():
	case <-time.After(2 * time.Second):
		require.FailNow(t, "context was not cancelled by the signal")
	}
	assert.Equal(t, syscall.SIGTERM, sc.Signal())
	assert.Equal(t, syscall.SIGTERM, interruptSignal(sc))
	assert.Nil(t, interruptSignal(context.Background()))
}

func TestLogCompletion(t *testing.T) {
	var buf bytes.Buffer
	logCompletion(&buf, "d1", context.Canceled, false, syscall.SIGINT)
	assert.Contains(t, buf.String(), ">>> Interrupted by interrupt at 'd1' node.")

	buf.Reset()
	logCompletion(&buf, "d1", context.Canceled, false, nil)
	assert.Contains(t, buf.String(), ">>> Interrupted at 'd1' node.")

	buf.Reset()
	logCompletion(&buf, "d2", nil, false, nil)
	assert.Equal(t, ">>> Finished at 'd2' node.\n", buf.String())

	buf.Reset()
	logCompletion(&buf, "d2", nil, true, nil)
	assert.Empty(t, buf.String())
}
