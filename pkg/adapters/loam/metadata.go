package loam

// NodeMetadata is the frontmatter of a dialog node document.
// The document body becomes the node text.
//
//	---
//	id: d0
//	options:
//	  - to: d1
//	    text: Go to 'Location 1'
//	---
//	Location 0
type NodeMetadata struct {
	ID      string           `json:"id" mapstructure:"id"`
	Options []OptionMetadata `json:"options" mapstructure:"options"`
}

// OptionMetadata accepts both the short (to/text) and the long (next/label) keys.
type OptionMetadata struct {
	To    string `json:"to" mapstructure:"to"`
	Next  string `json:"next" mapstructure:"next"`
	Text  string `json:"text" mapstructure:"text"`
	Label string `json:"label" mapstructure:"label"`
}

func (o OptionMetadata) target() string {
	if o.To != "" {
		return o.To
	}
	return o.Next
}

func (o OptionMetadata) label() string {
	if o.Text != "" {
		return o.Text
	}
	return o.Label
}
