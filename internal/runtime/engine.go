package runtime

import (
	"github.com/aretw0/dialogtree/pkg/domain"
)

// SelectOption resolves a choice on node into the identifier of the next node.
//
// The index must satisfy 0 <= index < len(node.Options); otherwise an
// *domain.OptionDoesNotExistError is returned. On success the option's
// NextNodeID is returned verbatim: the engine does not look the next node up.
// SelectOption never mutates node and is safe for concurrent use.
func SelectOption(node *domain.Node, index int) (string, error) {
	if node == nil {
		return "", &domain.OptionDoesNotExistError{Index: index}
	}
	opt, err := node.Option(index)
	if err != nil {
		return "", err
	}
	return opt.NextNodeID, nil
}
