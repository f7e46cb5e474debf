package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/aretw0/dialogtree/pkg/domain"
)

const ruleWidth = 32

// TextHandler implements the standard text-based interface.
//
// A node is printed as a framed block: the node text, then one line per option
// in the form "<index>: <label>".
type TextHandler struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer

	// NumberStyle decorates option numbers (e.g. terminal colors). Optional.
	NumberStyle func(string) string

	inputChan chan inputResult
	startOnce sync.Once
	done      chan struct{}
	closeOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithTextHandlerNumberStyle configures how option numbers are decorated.
func WithTextHandlerNumberStyle(style func(string) string) TextHandlerOption {
	return func(h *TextHandler) {
		h.NumberStyle = style
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NewTextPresenter creates an output-only TextHandler. Reading from it yields io.EOF.
func NewTextPresenter(w io.Writer, opts ...TextHandlerOption) *TextHandler {
	return NewTextHandler(strings.NewReader(""), w, opts...)
}

// Present writes the node as a framed block.
func (h *TextHandler) Present(ctx context.Context, node *domain.Node) error {
	var b strings.Builder

	b.WriteString(strings.Repeat("*", ruleWidth) + "\n")

	text := node.Text
	if h.Renderer != nil {
		if rendered, err := h.Renderer(text); err == nil {
			text = rendered
		}
	}
	b.WriteString(strings.TrimSpace(text) + "\n")
	b.WriteString(strings.Repeat("-", ruleWidth) + "\n")

	for i, opt := range node.Options {
		label := opt.Label
		if label == "" {
			label = "-> " + opt.NextNodeID
		}
		num := strconv.Itoa(i)
		if h.NumberStyle != nil {
			num = h.NumberStyle(num)
		}
		fmt.Fprintf(&b, "%s: %s\n", num, label)
	}

	b.WriteString(strings.Repeat("*", ruleWidth) + "\n")

	_, err := io.WriteString(h.Writer, b.String())
	return err
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		// One slot holds a line that arrives after its Input call was cancelled.
		h.inputChan = make(chan inputResult, 1)
		go h.pump()
	})
}

// pump reads lines in the background so Input can honour context cancellation.
// It exits on read errors or once the handler is closed.
func (h *TextHandler) pump() {
	for {
		text, err := h.Reader.ReadString('\n')

		// If we got text (even with EOF), send it
		if text != "" && !h.send(inputResult{text: text}) {
			return
		}

		if err != nil {
			if err != io.EOF {
				h.send(inputResult{err: err})
			}
			close(h.inputChan)
			return
		}
	}
}

func (h *TextHandler) send(res inputResult) bool {
	select {
	case h.inputChan <- res:
		return true
	case <-h.done:
		return false
	}
}

// Close stops the background reader. Later calls to Input return io.EOF.
// A reader blocked inside a read is only released when that read returns.
func (h *TextHandler) Close() error {
	h.closeOnce.Do(func() {
		close(h.done)
	})
	return nil
}

// Input prompts with "> " and returns the next trimmed line.
func (h *TextHandler) Input(ctx context.Context) (string, error) {
	select {
	case <-h.done:
		return "", io.EOF
	default:
	}
	h.initPump()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
		fmt.Fprint(h.Writer, "> ")
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-h.done:
		return "", io.EOF
	case res, ok := <-h.inputChan:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			return "", res.err
		}
		return strings.TrimSpace(res.text), nil
	}
}

// SystemOutput prints a meta-message with a "[System]" prefix.
func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	_, err := fmt.Fprintf(h.Writer, "[System] %s\n", msg)
	return err
}
