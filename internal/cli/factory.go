package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/dialogtree/internal/config"
	"github.com/aretw0/dialogtree/internal/presentation/tui"
	"github.com/aretw0/dialogtree/pkg/adapters/file"
	"github.com/aretw0/dialogtree/pkg/adapters/loam"
	"github.com/aretw0/dialogtree/pkg/adapters/memory"
	"github.com/aretw0/dialogtree/pkg/adapters/redis"
	"github.com/aretw0/dialogtree/pkg/adapters/sqlite"
	"github.com/aretw0/dialogtree/pkg/ports"
	"github.com/aretw0/dialogtree/pkg/runner"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openNodeStore builds the content store selected by cfg.
// The returned start ID is the one declared by the content itself, if any.
func openNodeStore(cfg config.Config) (store ports.NodeStore, declaredStart string, closer io.Closer, err error) {
	source, err := cfg.ResolveSource()
	if err != nil {
		return nil, "", nil, err
	}

	switch source {
	case config.SourceMemory:
		s, err := memory.NewFromNodes(memory.SampleNodes()...)
		if err != nil {
			return nil, "", nil, err
		}
		return s, "", nopCloser{}, nil

	case config.SourceFile:
		s, err := file.Load(cfg.ContentPath)
		if err != nil {
			return nil, "", nil, err
		}
		return s, s.StartNodeID(), nopCloser{}, nil

	case config.SourceLoam:
		s, err := loam.Open(cfg.ContentPath)
		if err != nil {
			return nil, "", nil, err
		}
		return s, "", nopCloser{}, nil

	case config.SourceSQLite:
		if _, err := os.Stat(cfg.ContentPath); err != nil {
			return nil, "", nil, fmt.Errorf("content path: %w", err)
		}
		s, err := sqlite.Open(cfg.ContentPath)
		if err != nil {
			return nil, "", nil, err
		}
		return s, "", s, nil

	default:
		return nil, "", nil, fmt.Errorf("unknown content source %q", source)
	}
}

// openStateStore builds the checkpoint store, or returns nil when checkpointing is off.
func openStateStore(cfg config.Config) (ports.StateStore, io.Closer, error) {
	if !cfg.Checkpointing() {
		return nil, nopCloser{}, nil
	}
	switch cfg.StateBackend {
	case config.StateMemory:
		return memory.NewStore(), nopCloser{}, nil
	case config.StateFile:
		return file.NewStore(cfg.StateDir), nopCloser{}, nil
	case config.StateRedis:
		s := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, redis.WithTTL(cfg.SessionTTL))
		return s, s, nil
	default:
		return nil, nil, fmt.Errorf("unknown state backend %q", cfg.StateBackend)
	}
}

// createHandler picks the IO strategy: NDJSON for scripted use, text otherwise.
// Markdown rendering and colors are only applied on a terminal.
func createHandler(cfg config.Config, in io.Reader, out io.Writer, interactive bool, logger *slog.Logger) runner.IOHandler {
	if cfg.JSON {
		return runner.NewJSONHandler(in, out)
	}

	var opts []runner.TextHandlerOption
	if interactive {
		opts = append(opts, runner.WithTextHandlerNumberStyle(tui.NumberStyle()))
		if cfg.Markdown {
			opts = append(opts, runner.WithTextHandlerRenderer(tui.NewRenderer()))
		}
	}
	logger.Debug("text handler configured", "interactive", interactive, "markdown", interactive && cfg.Markdown)
	return runner.NewTextHandler(in, out, opts...)
}
