// Package emitter serializes a parsed document as block-style YAML: one
// sequence item per record, fields in alphabetical order, two-space
// indentation, arrays as block sequences aligned with their key and section
// placeholders as {}.
package emitter

import (
	"bytes"
	"io"

	"github.com/arthur-debert/confc/pkg/errors"
	"github.com/arthur-debert/confc/pkg/types"
	"go.yaml.in/yaml/v3"
)

const indent = 2

// Emit renders doc to YAML bytes
func Emit(doc *types.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes doc to w as YAML
func Encode(w io.Writer, doc *types.Document) error {
	root, err := DocumentNode(doc)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(indent)
	enc.CompactSeqIndent()
	if err := enc.Encode(root); err != nil {
		return errors.Wrap(err, errors.ErrEmit, "failed to encode document")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, errors.ErrEmit, "failed to flush document")
	}
	return nil
}

// DocumentNode builds the YAML node tree for doc
func DocumentNode(doc *types.Document) (*yaml.Node, error) {
	root := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, r := range doc.Records() {
		n, err := recordNode(r)
		if err != nil {
			return nil, err
		}
		root.Content = append(root.Content, n)
	}
	return root, nil
}

func recordNode(r *types.Record) (*yaml.Node, error) {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range r.SortedKeys() {
		v, _ := r.Get(k)

		key, err := scalarNode(k)
		if err != nil {
			return nil, err
		}
		val, err := valueNode(v)
		if err != nil {
			return nil, err
		}
		m.Content = append(m.Content, key, val)
	}
	return m, nil
}

func valueNode(v types.Value) (*yaml.Node, error) {
	if v.Kind == types.KindSection {
		return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}, nil
	}
	return scalarNode(v.Interface())
}

// scalarNode lets the encoder pick the style for a Go value, so text that
// would read back as another type gets quoted.
func scalarNode(v interface{}) (*yaml.Node, error) {
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, errors.Wrapf(err, errors.ErrEmit, "failed to encode value %v", v)
	}
	return n, nil
}
