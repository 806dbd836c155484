// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Configuration shared by the Loader/Decoder and Dumper/Representer
// pipelines. Options are applied functionally so callers can compose
// version presets with one-off overrides.

package libyaml

import "fmt"

// QuoteStyle selects which quoting character the emitter prefers when a
// scalar could go either way.
type QuoteStyle int

const (
	// QuoteLegacy follows the historical go-yaml behavior: double quotes
	// unless the content is friendlier single-quoted.
	QuoteLegacy QuoteStyle = iota
	// QuoteDouble always prefers double quotes when a scalar must be quoted.
	QuoteDouble
	// QuoteSingle always prefers single quotes when a scalar must be quoted.
	QuoteSingle
)

// Options holds every knob the Loader/Dumper construction functions
// accept, gathered in one place so Option values can be combined freely.
type Options struct {
	Indent                int
	CompactSeqIndent      bool
	KnownFields           bool
	SingleDocument        bool
	StreamNodes           bool
	AllDocuments          bool
	LineWidth             int
	Unicode               bool
	UniqueKeys            bool
	Canonical             bool
	LineBreak             LineBreak
	ExplicitStart         bool
	ExplicitEnd           bool
	FlowSimpleCollections bool
	QuotePreference       QuoteStyle
	NoAliasingRestrictions bool
}

// Option configures an Options value. Functions returning Option report an
// error so malformed combinations (e.g. an indent out of range) surface at
// the call site instead of silently clamping.
type Option func(*Options) error

// ApplyOptions runs every Option against a fresh Options value, seeded with
// the library defaults, and returns the result.
func ApplyOptions(opts ...Option) (*Options, error) {
	o := &Options{
		Indent:    4,
		LineWidth: 80,
		Unicode:   true,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// CombineOptions folds a list of Options into a single Option, applying
// them in order so later options override earlier ones.
func CombineOptions(opts ...Option) Option {
	return func(o *Options) error {
		for _, opt := range opts {
			if opt == nil {
				continue
			}
			if err := opt(o); err != nil {
				return err
			}
		}
		return nil
	}
}

func boolArg(args []bool) bool {
	if len(args) == 0 {
		return true
	}
	return args[len(args)-1]
}

// WithIndent sets the number of spaces used per indentation level when
// dumping. Valid range is 2-9.
func WithIndent(indent int) Option {
	return func(o *Options) error {
		if indent < 2 || indent > 9 {
			return fmt.Errorf("yaml: indent must be between 2 and 9, got %d", indent)
		}
		o.Indent = indent
		return nil
	}
}

// WithCompactSeqIndent renders sequence items at the same indentation as
// their parent mapping key, rather than one level deeper.
func WithCompactSeqIndent(v ...bool) Option {
	return func(o *Options) error {
		o.CompactSeqIndent = boolArg(v)
		return nil
	}
}

// WithKnownFields makes Unmarshal reject YAML mapping keys that don't
// correspond to a field or inline map on the target struct.
func WithKnownFields(v ...bool) Option {
	return func(o *Options) error {
		o.KnownFields = boolArg(v)
		return nil
	}
}

// WithSingleDocument makes a Loader stop after the first YAML document:
// once one document has been read, later Load calls return io.EOF.
func WithSingleDocument(v ...bool) Option {
	return func(o *Options) error {
		o.SingleDocument = boolArg(v)
		return nil
	}
}

// WithStreamNodes makes the Composer emit one *Node of Kind StreamNode
// ahead of each document, carrying captured directives.
func WithStreamNodes(v ...bool) Option {
	return func(o *Options) error {
		o.StreamNodes = boolArg(v)
		return nil
	}
}

// WithAllDocuments decodes every document in the stream, rather than just
// the first one.
func WithAllDocuments(v ...bool) Option {
	return func(o *Options) error {
		o.AllDocuments = boolArg(v)
		return nil
	}
}

// WithLineWidth sets the preferred column at which the emitter tries to
// wrap long scalars and flow collections. A negative value disables
// wrapping; a value from 0 up to twice the indent is replaced by 80.
func WithLineWidth(width int) Option {
	return func(o *Options) error {
		o.LineWidth = width
		return nil
	}
}

// WithUnicode allows the emitter to write non-ASCII characters unescaped.
func WithUnicode(v ...bool) Option {
	return func(o *Options) error {
		o.Unicode = boolArg(v)
		return nil
	}
}

// WithUniqueKeys rejects duplicate mapping keys while decoding.
func WithUniqueKeys(v ...bool) Option {
	return func(o *Options) error {
		o.UniqueKeys = boolArg(v)
		return nil
	}
}

// WithCanonical forces the emitter into libyaml's verbose canonical form:
// every scalar quoted, every collection in flow style.
func WithCanonical(v ...bool) Option {
	return func(o *Options) error {
		o.Canonical = boolArg(v)
		return nil
	}
}

// WithLineBreak selects the line break character used by the emitter.
func WithLineBreak(lb LineBreak) Option {
	return func(o *Options) error {
		o.LineBreak = lb
		return nil
	}
}

// WithExplicitStart makes the emitter always write a leading "---" marker.
func WithExplicitStart(v ...bool) Option {
	return func(o *Options) error {
		o.ExplicitStart = boolArg(v)
		return nil
	}
}

// WithExplicitEnd makes the emitter always write a trailing "..." marker.
func WithExplicitEnd(v ...bool) Option {
	return func(o *Options) error {
		o.ExplicitEnd = boolArg(v)
		return nil
	}
}

// WithFlowSimpleCollections renders sequences/mappings that hold only
// scalars in flow style when they fit within the configured line width.
func WithFlowSimpleCollections(v ...bool) Option {
	return func(o *Options) error {
		o.FlowSimpleCollections = boolArg(v)
		return nil
	}
}

// WithQuotePreference selects which quote character the emitter prefers
// for scalars that must be quoted either way.
func WithQuotePreference(q QuoteStyle) Option {
	return func(o *Options) error {
		o.QuotePreference = q
		return nil
	}
}

// WithNoAliasingRestrictions disables the guard against emitting anchors
// for scalar nodes, matching older go-yaml behavior where any repeated
// node, not just maps/sequences, could be aliased.
func WithNoAliasingRestrictions(v ...bool) Option {
	return func(o *Options) error {
		o.NoAliasingRestrictions = boolArg(v)
		return nil
	}
}

// LegacyOptions reproduces the defaults of the pre-functional-options
// Decoder/Encoder API, for the deprecated wrappers that still expose it.
var LegacyOptions = &Options{
	Indent:     4,
	LineWidth:  80,
	Unicode:    true,
	UniqueKeys: true,
}
