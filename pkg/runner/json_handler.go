package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/dialogtree/pkg/domain"
)

// Message types emitted by the JSONHandler.
const (
	MessageNode   = "node"
	MessageSystem = "system"
)

// Message is one NDJSON line written by the JSONHandler.
type Message struct {
	Type    string       `json:"type"`
	Node    *domain.Node `json:"node,omitempty"`
	Message string       `json:"message,omitempty"`
}

// JSONHandler implements the IOHandler interface for structured JSON-Lines communication.
type JSONHandler struct {
	Reader  *bufio.Reader
	Writer  io.Writer
	Encoder *json.Encoder
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

// Present emits the node as a single JSON line.
func (h *JSONHandler) Present(ctx context.Context, node *domain.Node) error {
	return h.Encoder.Encode(Message{Type: MessageNode, Node: node})
}

// Input reads one line. Accepted forms: a bare number (2), a JSON string ("2")
// or an object ({"choice": 2}). Anything else is returned raw.
func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text, err := h.Reader.ReadString('\n')
	if err != nil && (err != io.EOF || text == "") {
		return "", err
	}
	text = strings.TrimSpace(text)

	var str string
	if err := json.Unmarshal([]byte(text), &str); err == nil {
		return strings.TrimSpace(str), nil
	}

	var obj struct {
		Choice *int `json:"choice"`
	}
	if err := json.Unmarshal([]byte(text), &obj); err == nil && obj.Choice != nil {
		return strconv.Itoa(*obj.Choice), nil
	}

	return text, nil
}

// SystemOutput emits a system message line.
func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.Encoder.Encode(Message{Type: MessageSystem, Message: msg})
}
