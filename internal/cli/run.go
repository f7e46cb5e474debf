package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/aretw0/dialogtree"
	"github.com/aretw0/dialogtree/internal/config"
	"github.com/aretw0/dialogtree/internal/metrics"
	"github.com/aretw0/dialogtree/internal/presentation/tui"
	"github.com/aretw0/dialogtree/pkg/domain"
	"github.com/aretw0/dialogtree/pkg/runner"
	"github.com/google/uuid"
)

// RunOptions contains everything the run command needs besides configuration.
type RunOptions struct {
	Config config.Config

	// In and Out default to Stdin/Stdout.
	In  io.Reader
	Out io.Writer

	// Logger overrides the logger built from Config.LogLevel.
	Logger *slog.Logger
}

// RunSession assembles the stores, controller and runner from the options and
// drives one dialog until the input ends, the user exits or ctx is cancelled.
func RunSession(ctx context.Context, opts RunOptions) error {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return err
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	logger := opts.Logger
	if logger == nil {
		var err error
		if logger, err = createLogger(cfg.LogLevel); err != nil {
			return err
		}
	}

	nodes, declaredStart, nodesCloser, err := openNodeStore(cfg)
	if err != nil {
		return fmt.Errorf("error opening content: %w", err)
	}
	defer nodesCloser.Close()

	states, statesCloser, err := openStateStore(cfg)
	if err != nil {
		return fmt.Errorf("error opening state store: %w", err)
	}
	defer statesCloser.Close()

	interactive := !cfg.JSON && isTerminal(opts.In, opts.Out)
	quiet := cfg.JSON
	if interactive {
		tui.PrintBanner(opts.Out)
	}

	ctrlOpts := []dialogtree.Option{
		dialogtree.WithStartNode(cfg.ResolveStart(declaredStart)),
		dialogtree.WithLogger(logger),
	}

	hooks := []domain.LifecycleHooks{createDebugHooks(logger)}
	if cfg.MetricsAddr != "" {
		collector := metrics.New()
		hooks = append(hooks, collector.Hooks())

		stop, err := serveMetrics(cfg.MetricsAddr, collector, logger)
		if err != nil {
			return err
		}
		defer stop()
	}
	ctrlOpts = append(ctrlOpts, dialogtree.WithLifecycleHooks(mergeHooks(hooks...)))

	sessionID := cfg.SessionID
	if states != nil {
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		if cfg.Fresh {
			if err := states.Delete(ctx, sessionID); err != nil {
				return fmt.Errorf("failed to reset session: %w", err)
			}
		}
		ctrlOpts = append(ctrlOpts, dialogtree.WithStateStore(states, sessionID))
		logger.Info("Session Active", "session_id", sessionID, "backend", cfg.StateBackend)
		if !quiet {
			printSystemMessage(opts.Out, "Session '%s' active.", sessionID)
		}
	}

	handler := createHandler(cfg, opts.In, opts.Out, interactive, logger)
	if c, ok := handler.(io.Closer); ok {
		defer c.Close()
	}

	ctrl, err := dialogtree.New(nodes, handler, ctrlOpts...)
	if err != nil {
		return fmt.Errorf("error initializing dialog: %w", err)
	}

	r := runner.NewRunner(
		runner.WithInputHandler(handler),
		runner.WithLogger(logger),
	)

	runErr := r.Run(ctx, ctrl)
	if runErr == nil && ctx.Err() != nil {
		runErr = ctx.Err()
	}

	logCompletion(opts.Out, ctrl.CurrentNodeID(), runErr, quiet, interruptSignal(ctx))
	return handleExecutionError(runErr)
}

func logCompletion(w io.Writer, nodeID string, err error, quiet bool, sig os.Signal) {
	if quiet {
		return
	}
	switch {
	case err == nil:
		printSystemMessage(w, "Finished at '%s' node.", nodeID)
	case isInterrupted(err) && sig != nil:
		fmt.Fprintln(w)
		printSystemMessage(w, "Interrupted by %s at '%s' node.", sig, nodeID)
	case isInterrupted(err):
		fmt.Fprintln(w)
		printSystemMessage(w, "Interrupted at '%s' node.", nodeID)
	}
}

// interruptSignal returns the signal recorded by a SignalContext, if ctx is one.
func interruptSignal(ctx context.Context) os.Signal {
	if sc, ok := ctx.(*SignalContext); ok {
		return sc.Signal()
	}
	return nil
}

// serveMetrics starts the metrics endpoint in the background.
// The listener is bound before returning so address errors surface immediately.
func serveMetrics(addr string, c *metrics.Collector, logger *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           metrics.NewHandler(c),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("Serving metrics", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
