// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Node tree: the intermediate representation produced by the Composer
// and consumed by the Representer/serializer on the way back out.

package libyaml

import "time"

// Kind identifies the category of a [Node].
type Kind uint32

const (
	// DocumentNode is the root of a parsed document.
	DocumentNode Kind = 1 << iota
	// SequenceNode is a YAML sequence (list).
	SequenceNode
	// MappingNode is a YAML mapping (dictionary).
	MappingNode
	// ScalarNode is a YAML scalar value.
	ScalarNode
	// AliasNode refers to an anchor defined elsewhere in the document.
	AliasNode
	// StreamNode wraps a sequence of documents read from a single stream.
	StreamNode
)

// Style describes the formatting a [Node] was parsed with, or should be
// emitted with. It's a bitmask: most combinations only make sense for
// specific Kinds.
type Style uint32

const (
	// TaggedStyle forces the tag to be printed even when it would
	// otherwise be implicit.
	TaggedStyle Style = 1 << iota
	// DoubleQuotedStyle marks a double-quoted scalar.
	DoubleQuotedStyle
	// SingleQuotedStyle marks a single-quoted scalar.
	SingleQuotedStyle
	// LiteralStyle marks a literal block scalar ("|").
	LiteralStyle
	// FoldedStyle marks a folded block scalar (">").
	FoldedStyle
	// FlowStyle marks a sequence or mapping rendered inline ("[]"/"{}").
	FlowStyle
)

// StreamVersionDirective records a %YAML directive captured ahead of a
// document, when stream-node emission is enabled.
type StreamVersionDirective struct {
	Major, Minor int8
}

// StreamTagDirective records a %TAG directive captured ahead of a
// document, when stream-node emission is enabled.
type StreamTagDirective struct {
	Handle, Prefix string
}

// Node represents an element in the YAML document hierarchy.
//
// While documents are typically decoded into higher level types such as
// structs and maps, Node is an intermediate representation that allows
// detailed control over the content being decoded or encoded: tags,
// anchors, comments and source position are all preserved on it.
//
// Re-encoding a Node does not reproduce the original text byte for byte;
// an effort is made to render the data pleasantly instead.
type Node struct {
	Kind  Kind
	Style Style

	Tag   string
	Value string

	Anchor string
	Alias  *Node

	Content []*Node

	HeadComment string
	LineComment string
	FootComment string

	Line   int
	Column int

	// Encoding and directive fields are only populated on StreamNode
	// values, when the Composer was configured with SetStreamNodes.
	Encoding      Encoding
	Version       *StreamVersionDirective
	TagDirectives []StreamTagDirective
}

// IsZero reports whether the node holds no data: no kind, tag, value,
// anchor, alias or children. Used to decide whether an embedded/omitempty
// Node field should be dropped from the output.
func (n *Node) IsZero() bool {
	return n.Kind == 0 && n.Style == 0 && n.Tag == "" && n.Value == "" &&
		n.Anchor == "" && n.Alias == nil && len(n.Content) == 0
}

// ShortTag returns the node's tag in its short "!!foo" form, inferring
// one from Kind and Value when the node carries none.
func (n *Node) ShortTag() string {
	if n.indicatedString() {
		return strTag
	}
	if n.Tag == "" {
		switch n.Kind {
		case MappingNode:
			return mapTag
		case SequenceNode:
			return seqTag
		case ScalarNode:
			tag, _ := resolve("", n.Value)
			return tag
		}
		if n.IsZero() {
			return nullTag
		}
	}
	return shortTag(n.Tag)
}

// LongTag returns the node's tag in its long "tag:yaml.org,2002:foo" form.
func (n *Node) LongTag() string {
	return longTag(n.ShortTag())
}

// indicatedString reports whether the node is a scalar explicitly
// quoted or block-styled as a string, meaning its content should never
// be re-resolved into a bool, int, float, etc.
func (n *Node) indicatedString() bool {
	return n.Kind == ScalarNode &&
		shortTag(n.Tag) == strTag &&
		n.Style&(SingleQuotedStyle|DoubleQuotedStyle|LiteralStyle|FoldedStyle) != 0
}

// Unmarshaler is implemented by types that can unmarshal a YAML
// description of themselves. A *Node is handed to UnmarshalYAML so
// implementations can inspect it directly.
type Unmarshaler interface {
	UnmarshalYAML(value *Node) error
}

var _ IsZeroer = time.Time{}
