// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Parser and Emitter: the mutable state each pipeline stage threads through
// the Reader/Scanner or Writer. One struct per side, mirroring libyaml's
// yaml_parser_t/yaml_emitter_t, since the reader lives inside the parser
// and the writer lives inside the emitter.

package libyaml

import "io"

// Buffer and stack sizing, matched to libyaml's own defaults. Chosen once
// and never revisited; nothing here is user-configurable.
const (
	input_raw_buffer_size = 16384
	input_buffer_size     = input_raw_buffer_size*3 + 1
	output_buffer_size    = 16384
	output_raw_buffer_size = output_buffer_size*2 + 2
	initial_stack_size = 16
	initial_queue_size = 16
)

// ParserState names a state in the token -> event pushdown automaton.
type ParserState int

const (
	PARSE_STREAM_START_STATE ParserState = iota
	PARSE_IMPLICIT_DOCUMENT_START_STATE
	PARSE_DOCUMENT_START_STATE
	PARSE_DOCUMENT_CONTENT_STATE
	PARSE_DOCUMENT_END_STATE
	PARSE_BLOCK_NODE_STATE
	PARSE_BLOCK_NODE_OR_INDENTLESS_SEQUENCE_STATE
	PARSE_FLOW_NODE_STATE
	PARSE_BLOCK_SEQUENCE_FIRST_ENTRY_STATE
	PARSE_BLOCK_SEQUENCE_ENTRY_STATE
	PARSE_INDENTLESS_SEQUENCE_ENTRY_STATE
	PARSE_BLOCK_MAPPING_FIRST_KEY_STATE
	PARSE_BLOCK_MAPPING_KEY_STATE
	PARSE_BLOCK_MAPPING_VALUE_STATE
	PARSE_FLOW_SEQUENCE_FIRST_ENTRY_STATE
	PARSE_FLOW_SEQUENCE_ENTRY_STATE
	PARSE_FLOW_SEQUENCE_ENTRY_MAPPING_KEY_STATE
	PARSE_FLOW_SEQUENCE_ENTRY_MAPPING_VALUE_STATE
	PARSE_FLOW_SEQUENCE_ENTRY_MAPPING_END_STATE
	PARSE_FLOW_MAPPING_FIRST_KEY_STATE
	PARSE_FLOW_MAPPING_KEY_STATE
	PARSE_FLOW_MAPPING_VALUE_STATE
	PARSE_FLOW_MAPPING_EMPTY_VALUE_STATE
	PARSE_END_STATE
)

// EmitterState names a state in the event -> text state machine.
type EmitterState int

const (
	EMIT_STREAM_START_STATE EmitterState = iota
	EMIT_FIRST_DOCUMENT_START_STATE
	EMIT_DOCUMENT_START_STATE
	EMIT_DOCUMENT_CONTENT_STATE
	EMIT_DOCUMENT_END_STATE
	EMIT_FLOW_SEQUENCE_FIRST_ITEM_STATE
	EMIT_FLOW_SEQUENCE_TRAIL_ITEM_STATE
	EMIT_FLOW_SEQUENCE_ITEM_STATE
	EMIT_FLOW_MAPPING_FIRST_KEY_STATE
	EMIT_FLOW_MAPPING_TRAIL_KEY_STATE
	EMIT_FLOW_MAPPING_KEY_STATE
	EMIT_FLOW_MAPPING_SIMPLE_VALUE_STATE
	EMIT_FLOW_MAPPING_VALUE_STATE
	EMIT_BLOCK_SEQUENCE_FIRST_ITEM_STATE
	EMIT_BLOCK_SEQUENCE_ITEM_STATE
	EMIT_BLOCK_MAPPING_FIRST_KEY_STATE
	EMIT_BLOCK_MAPPING_KEY_STATE
	EMIT_BLOCK_MAPPING_SIMPLE_VALUE_STATE
	EMIT_BLOCK_MAPPING_VALUE_STATE
	EMIT_END_STATE
)

// Comment records a scanned comment, positioned relative to the token
// stream by tokenMark so the parser can later attach it to the nearest
// event as a head, line or foot comment.
type Comment struct {
	scan_mark  Mark
	token_mark Mark
	start_mark Mark
	end_mark   Mark

	head []byte
	line []byte
	foot []byte
}

// simpleKey is a candidate position for a retroactively-inserted KEY
// token: "foo: bar" only reveals that "foo" was a mapping key once the
// colon is scanned, by which point the scalar token has already been
// queued. required marks a key the grammar demands (e.g. after '?').
type simpleKey struct {
	possible     bool
	required     bool
	token_number int
	mark         Mark
}

// Parser holds every piece of state threaded through the Reader -> Scanner
// -> Parser pipeline: byte buffering and encoding detection, the token
// queue and indentation stack, and the event-producing state machine.
type Parser struct {
	ErrorType ErrorType
	Problem   string
	// offset into input/raw_buffer where the problem was found.
	ProblemOffset int
	ProblemValue  int
	ProblemMark   Mark
	Context       string
	ContextMark   Mark

	// Reader state.
	read_handler func(parser *Parser, buffer []byte) (n int, err error)

	input       []byte
	input_pos   int
	input_reader io.Reader
	eof         bool

	buffer     []byte
	buffer_pos int

	unread int

	raw_buffer     []byte
	raw_buffer_pos int

	encoding Encoding
	offset   int
	mark     Mark

	// Scanner state.
	stream_start_produced bool
	stream_end_produced   bool

	flow_level int

	tokens       []Token
	tokens_head  int
	tokens_parsed int
	token_available bool

	indent  int
	indents []int

	simple_key_allowed bool
	simple_keys        []simpleKey
	simple_keys_by_tok map[int]int

	comments      []Comment
	comments_head int

	newlines int

	// Parser state (token -> event state machine).
	state  ParserState
	states []ParserState
	marks  []Mark

	tag_directives []TagDirective

	version_directive *VersionDirective

	head_comment []byte
	line_comment []byte
	foot_comment []byte
	tail_comment []byte
	stem_comment []byte

	hadError bool
}

// anchorData captures an event's anchor while the emitter decides whether
// it's a fresh definition or a reference to one ("alias" is true for
// ALIAS_EVENT, where "anchor" is the aliased name rather than a new one).
type anchorData struct {
	anchor []byte
	alias  bool
}

// tagData holds a resolved tag split into its handle (e.g. "!!") and
// suffix (e.g. "str"), or just a suffix for verbatim "!<...>" tags.
type tagData struct {
	handle []byte
	suffix []byte
}

// scalarData is the result of analyzeScalar: which styles the value may
// legally be emitted in, used by selectScalarStyle.
type scalarData struct {
	value                  []byte
	multiline              bool
	flow_plain_allowed     bool
	block_plain_allowed    bool
	single_quoted_allowed  bool
	block_allowed          bool
	style                  ScalarStyle
}

// Emitter holds every piece of state threaded through the event -> text
// -> Writer pipeline: output buffering, indentation/column tracking, the
// pending-event queue and the style-decision scratch space for whichever
// event is currently being analyzed.
type Emitter struct {
	ErrorType ErrorType
	Problem   string

	// Writer state.
	write_handler func(emitter *Emitter, buffer []byte) error

	output_buffer *[]byte
	output_writer io.Writer

	buffer     []byte
	buffer_pos int

	raw_buffer     []byte
	raw_buffer_pos int

	encoding Encoding

	canonical bool
	// BestIndent is the configured indentation width, 2-9.
	BestIndent int
	best_width int
	unicode    bool
	line_break LineBreak

	// CompactSequenceIndent makes "- " count as part of the indentation of
	// a block sequence item, rather than a further indent beyond it.
	CompactSequenceIndent bool

	state  EmitterState
	states []EmitterState

	events      []Event
	events_head int

	indents []int
	indent  int

	flow_level int

	root_context     bool
	sequence_context bool
	mapping_context  bool
	simple_key_context bool

	line      int
	column    int
	whitespace bool
	indention  bool
	space_above bool
	foot_indent int

	OpenEnded bool

	tag_directives []TagDirective

	anchor_data anchorData
	tag_data    tagData
	scalar_data scalarData

	// HeadComment, LineComment, FootComment and TailComment carry the
	// comments attached to the event currently being emitted.
	HeadComment []byte
	LineComment []byte
	FootComment []byte
	TailComment []byte

	// key_line_comment holds a mapping key's line comment until the value
	// has been written, since it must trail the value instead.
	key_line_comment []byte
}
