// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Resolver stage: infers a YAML 1.1 core-schema tag for an untagged
// scalar, and converts between the short "!!foo" and long
// "tag:yaml.org,2002:foo" tag forms.

package libyaml

import (
	"encoding/base64"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Short aliases for the long-form tag constants, used throughout the
// composer, constructor and representer.
const (
	nullTag      = NULL_TAG
	boolTag      = BOOL_TAG
	strTag       = STR_TAG
	intTag       = INT_TAG
	floatTag     = FLOAT_TAG
	timestampTag = TIMESTAMP_TAG
	seqTag       = SEQ_TAG
	mapTag       = MAP_TAG
	binaryTag    = BINARY_TAG
	mergeTag     = MERGE_TAG
)

const longTagPrefix = "tag:yaml.org,2002:"

var (
	shortTagCache sync.Map // long tag -> short tag
	longTagCache  sync.Map // short tag -> long tag
)

// shortTag converts a long "tag:yaml.org,2002:foo" tag to its short
// "!!foo" form. Tags outside the yaml.org namespace pass through
// unchanged.
func shortTag(tag string) string {
	if strings.HasPrefix(tag, longTagPrefix) {
		if v, ok := shortTagCache.Load(tag); ok {
			return v.(string)
		}
		short := "!!" + tag[len(longTagPrefix):]
		shortTagCache.Store(tag, short)
		return short
	}
	return tag
}

// longTag converts a short "!!foo" tag to its long
// "tag:yaml.org,2002:foo" form. Tags that aren't in short form pass
// through unchanged.
func longTag(tag string) string {
	if strings.HasPrefix(tag, "!!") {
		if v, ok := longTagCache.Load(tag); ok {
			return v.(string)
		}
		long := longTagPrefix + tag[2:]
		longTagCache.Store(tag, long)
		return long
	}
	return tag
}

func resolvableTag(tag string) bool {
	switch tag {
	case "", strTag, boolTag, intTag, floatTag, nullTag, timestampTag:
		return true
	}
	return false
}

type resolveMapItem struct {
	value any
	tag   string
}

var (
	resolveTable = make([]byte, 256)
	resolveMap   = make(map[string]resolveMapItem)
)

var initResolveOnce sync.Once

func initResolve() {
	t := resolveTable
	t['+'] = 'S'
	t['-'] = 'S'
	for _, c := range "0123456789" {
		t[c] = 'D'
	}
	for _, c := range "yYnNtTfFoO~" {
		t[c] = 'M'
	}
	t['.'] = '.'

	resolveList := []struct {
		v   any
		tag string
		l   []string
	}{
		{v: true, tag: boolTag, l: []string{"true", "True", "TRUE", "y", "Y", "yes", "Yes", "YES", "on", "On", "ON"}},
		{v: false, tag: boolTag, l: []string{"false", "False", "FALSE", "n", "N", "no", "No", "NO", "off", "Off", "OFF"}},
		{tag: nullTag, l: []string{"", "~", "null", "Null", "NULL"}},
		{v: math.NaN(), tag: floatTag, l: []string{".nan", ".NaN", ".NAN"}},
		{v: math.Inf(+1), tag: floatTag, l: []string{".inf", ".Inf", ".INF", "+.inf", "+.Inf", "+.INF"}},
		{v: math.Inf(-1), tag: floatTag, l: []string{"-.inf", "-.Inf", "-.INF"}},
		{v: "<<", tag: mergeTag, l: []string{"<<"}},
	}
	for _, item := range resolveList {
		for _, s := range item.l {
			resolveMap[s] = resolveMapItem{value: item.v, tag: item.tag}
		}
	}
}

var yamlStyleFloat = regexp.MustCompile(`^[-+]?(\.\d+|\d+(\.\d*)?)([eE][-+]?\d+)?$`)

// resolve infers the tag and Go value a plain scalar denotes, following
// the YAML 1.1 core schema. tag, when non-empty, pins the result to a
// specific core type instead of inferring one from the content of in.
func resolve(tag string, in string) (rtag string, out any) {
	initResolveOnce.Do(initResolve)

	tag = shortTag(tag)
	if !resolvableTag(tag) {
		return tag, in
	}

	hint := byte('N')
	if in != "" {
		hint = resolveTable[in[0]]
	}
	if hint != 0 && tag != strTag && tag != binaryTag {
		if item, ok := resolveMap[in]; ok {
			return item.tag, item.value
		}

		// Base 60 floats were dropped in YAML 1.2 and are purposefully
		// unsupported here; they're still quoted on the way out for
		// compatibility with other parsers.

		switch hint {
		case 'M':
			// Already checked against resolveMap above.
		case '.':
			if floatv, err := strconv.ParseFloat(in, 64); err == nil {
				return floatTag, floatv
			}
		case 'D', 'S':
			if tag == "" || tag == timestampTag {
				if t, ok := parseTimestamp(in); ok {
					return timestampTag, t
				}
			}
			plain := strings.ReplaceAll(in, "_", "")
			if intv, err := strconv.ParseInt(plain, 0, 64); err == nil {
				if intv == int64(int(intv)) {
					return intTag, int(intv)
				}
				return intTag, intv
			}
			if uintv, err := strconv.ParseUint(plain, 0, 64); err == nil {
				return intTag, uintv
			}
			if yamlStyleFloat.MatchString(plain) {
				if floatv, err := strconv.ParseFloat(plain, 64); err == nil {
					return floatTag, floatv
				}
			}
		}
	}
	return strTag, in
}

// encodeBase64 encodes s as base64, broken into multiple lines as
// appropriate for the resulting length.
func encodeBase64(s string) string {
	const lineLen = 70
	encLen := base64.StdEncoding.EncodedLen(len(s))
	lines := encLen/lineLen + 1
	buf := make([]byte, encLen*2+lines)
	in := buf[0:encLen]
	out := buf[encLen:]
	base64.StdEncoding.Encode(in, []byte(s))
	k := 0
	for i := 0; i < len(in); i += lineLen {
		j := i + lineLen
		if j > len(in) {
			j = len(in)
		}
		k += copy(out[k:], in[i:j])
		if lines > 1 {
			out[k] = '\n'
			k++
		}
	}
	return string(out[:k])
}

// allowedTimestampFormats is a subset of the formats allowed by the
// regular expression at http://yaml.org/type/timestamp.html.
var allowedTimestampFormats = []string{
	"2006-1-2T15:4:5.999999999Z07:00",
	"2006-1-2t15:4:5.999999999Z07:00",
	"2006-1-2 15:4:5.999999999",
	"2006-1-2",
}

func parseTimestamp(s string) (time.Time, bool) {
	i := 0
	for ; i < len(s); i++ {
		if c := s[i]; c < '0' || c > '9' {
			break
		}
	}
	if i != 4 || i == len(s) || s[i] != '-' {
		return time.Time{}, false
	}
	for _, format := range allowedTimestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Resolver assigns a tag to nodes that were parsed without one, and
// normalizes any explicit tag to its short form.
type Resolver struct {
	opts *Options
}

// NewResolver creates a Resolver. opts is currently unused but accepted
// so callers can pass through decode options as the resolver grows
// schema variants.
func NewResolver(opts *Options) *Resolver {
	return &Resolver{opts: opts}
}

// Resolve assigns n.Tag from n.Kind and n.Value when the node carries no
// explicit tag, and normalizes an explicit tag to its short form.
func (r *Resolver) Resolve(n *Node) {
	if n.Tag != "" && n.Tag != "!" {
		n.Tag = shortTag(n.Tag)
		return
	}
	switch n.Kind {
	case MappingNode:
		n.Tag = mapTag
	case SequenceNode:
		n.Tag = seqTag
	case ScalarNode:
		if n.indicatedString() {
			n.Tag = strTag
			return
		}
		n.Tag, _ = resolve("", n.Value)
	}
}
