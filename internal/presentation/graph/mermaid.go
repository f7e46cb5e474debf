package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/dialogtree/pkg/domain"
)

// GraphOverlay contains session data to highlight on the graph.
type GraphOverlay struct {
	CurrentNode string
}

// GenerateMermaid produces a Mermaid flowchart from a list of nodes.
// Edges are labelled "<index>: <label>". The start node is drawn as a circle and
// dead ends as stadiums. Targets missing from nodes are still drawn; nothing is validated.
func GenerateMermaid(nodes []domain.Node, startNodeID string, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range nodes {
		safeID := sanitizeMermaidID(node.ID)

		opener, closer := "[", "]"
		switch {
		case node.ID == startNodeID:
			opener, closer = "((", "))"
		case node.IsDeadEnd():
			opener, closer = "([", "])"
		}

		label := node.ID
		if node.Text != "" {
			label = fmt.Sprintf("%s: %s", node.ID, firstLine(node.Text))
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, escapeLabel(label), closer))

		for i, opt := range node.Options {
			edge := fmt.Sprintf("%d", i)
			if opt.Label != "" {
				edge = fmt.Sprintf("%d: %s", i, opt.Label)
			}
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", safeID, escapeLabel(edge), sanitizeMermaidID(opt.NextNodeID)))
		}
	}

	if overlay != nil && overlay.CurrentNode != "" {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.CurrentNode)))
	}

	return sb.String()
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	// "end" is a Mermaid keyword.
	if strings.EqualFold(s, "end") {
		s += "_"
	}
	return s
}
