package document

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrNotMapping is returned when the parsed document is not a YAML mapping.
var ErrNotMapping = errors.New("document root is not a mapping")

// Document is the parsed tree of a swagger YAML file.
// Editing happens on the yaml.Node level so the rewrite keeps the key order
// of the original file and leaves non-ASCII text intact. Comments and
// hand formatting are not carried through the round trip.
type Document struct {
	root *yaml.Node
}

// Parse reads content into a Document.
func Parse(content []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, err
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}
	return &Document{root: &root}, nil
}

func (d *Document) mapping() *yaml.Node {
	return d.root.Content[0]
}

// valueOf returns the index and node of the value for key in a mapping node.
// Index is -1 when the key is absent.
func valueOf(m *yaml.Node, key string) (int, *yaml.Node) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return i + 1, m.Content[i+1]
		}
	}
	return -1, nil
}

func (d *Document) paths() *yaml.Node {
	_, p := valueOf(d.mapping(), "paths")
	if p == nil || p.Kind != yaml.MappingNode {
		return nil
	}
	return p
}

// HasPaths reports whether the document has a paths mapping.
func (d *Document) HasPaths() bool {
	return d.paths() != nil
}

// PathCount returns the number of entries in the paths mapping.
func (d *Document) PathCount() int {
	p := d.paths()
	if p == nil {
		return 0
	}
	return len(p.Content) / 2
}

// Paths returns the path templates in document order.
func (d *Document) Paths() []string {
	p := d.paths()
	if p == nil {
		return nil
	}

	res := make([]string, 0, len(p.Content)/2)
	for i := 0; i+1 < len(p.Content); i += 2 {
		res = append(res, p.Content[i].Value)
	}
	return res
}

// RemovePath deletes path from the paths mapping.
// Membership is exact string equality, no prefix or template matching.
// Returns false when the path, or the paths mapping itself, is absent.
func (d *Document) RemovePath(path string) bool {
	p := d.paths()
	if p == nil {
		return false
	}

	for i := 0; i+1 < len(p.Content); i += 2 {
		if p.Content[i].Value == path {
			p.Content = append(p.Content[:i], p.Content[i+2:]...)
			return true
		}
	}
	return false
}

// Description returns the current info.description value.
func (d *Document) Description() string {
	_, info := valueOf(d.mapping(), "info")
	if info == nil || info.Kind != yaml.MappingNode {
		return ""
	}
	_, desc := valueOf(info, "description")
	if desc == nil {
		return ""
	}
	return desc.Value
}

// AppendDescription appends note to info.description.
// The info mapping and the description key are created when absent, with an
// empty string as the base. Existing description content is never rewritten.
func (d *Document) AppendDescription(note string) {
	m := d.mapping()

	idx, info := valueOf(m, "info")
	if info == nil {
		info = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		m.Content = append(m.Content, scalarNode("info"), info)
	} else if info.Kind != yaml.MappingNode {
		info = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		m.Content[idx] = info
	}

	idx, desc := valueOf(info, "description")
	if desc == nil {
		desc = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str"}
		info.Content = append(info.Content, scalarNode("description"), desc)
	} else if desc.Kind != yaml.ScalarNode {
		desc = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str"}
		info.Content[idx] = desc
	}

	desc.Value += note
	// let the encoder pick a style that fits the now multiline value
	desc.Style = 0
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// Bytes serializes the document in block style with 2-space indentation.
// Keys come out in the order they were parsed in.
func (d *Document) Bytes() ([]byte, error) {
	var b bytes.Buffer
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)

	if err := enc.Encode(d.root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
