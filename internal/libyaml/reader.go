//
// Copyright (c) 2011-2019 Canonical Ltd
// Copyright (c) 2006-2010 Kirill Simonov
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do
// so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package libyaml

import (
	"errors"
	"io"
)

// Byte order marks.
const (
	bom_UTF8    = "\xef\xbb\xbf"
	bom_UTF16LE = "\xff\xfe"
	bom_UTF16BE = "\xfe\xff"
)

// formatReaderError builds the *ReaderError reported for a reading failure
// at the given offset, with value carrying the offending byte/rune when
// known (-1 otherwise).
func formatReaderError(problem string, offset int, value int) error {
	return &ReaderError{Offset: offset, Value: value, Err: errors.New(problem)}
}

// setReaderError records a reading failure on the parser and returns it as
// a *ReaderError.
func (parser *Parser) setReaderError(problem string, offset int, value int) error {
	parser.ErrorType = READER_ERROR
	parser.Problem = problem
	parser.ProblemOffset = offset
	parser.ProblemValue = value
	return formatReaderError(problem, offset, value)
}

// determineEncoding inspects the first bytes of the raw buffer for a BOM
// and sets parser.encoding accordingly, defaulting to UTF-8 when none is
// present.
func (parser *Parser) determineEncoding() error {
	for !parser.eof && len(parser.raw_buffer)-parser.raw_buffer_pos < 3 {
		if err := parser.updateRawBuffer(); err != nil {
			return err
		}
	}

	buf := parser.raw_buffer
	pos := parser.raw_buffer_pos
	avail := len(buf) - pos
	switch {
	case avail >= 2 && buf[pos] == bom_UTF16LE[0] && buf[pos+1] == bom_UTF16LE[1]:
		parser.encoding = UTF16LE_ENCODING
		parser.raw_buffer_pos += 2
		parser.offset += 2
	case avail >= 2 && buf[pos] == bom_UTF16BE[0] && buf[pos+1] == bom_UTF16BE[1]:
		parser.encoding = UTF16BE_ENCODING
		parser.raw_buffer_pos += 2
		parser.offset += 2
	case avail >= 3 && buf[pos] == bom_UTF8[0] && buf[pos+1] == bom_UTF8[1] && buf[pos+2] == bom_UTF8[2]:
		parser.encoding = UTF8_ENCODING
		parser.raw_buffer_pos += 3
		parser.offset += 3
	default:
		parser.encoding = UTF8_ENCODING
	}
	return nil
}

// updateRawBuffer refills the raw buffer from the underlying reader.
func (parser *Parser) updateRawBuffer() error {
	if parser.raw_buffer_pos == 0 && len(parser.raw_buffer) == cap(parser.raw_buffer) {
		return nil
	}
	if parser.eof {
		return nil
	}

	if parser.raw_buffer_pos > 0 && parser.raw_buffer_pos < len(parser.raw_buffer) {
		copy(parser.raw_buffer, parser.raw_buffer[parser.raw_buffer_pos:])
	}
	parser.raw_buffer = parser.raw_buffer[:len(parser.raw_buffer)-parser.raw_buffer_pos]
	parser.raw_buffer_pos = 0

	n, err := parser.read_handler(parser, parser.raw_buffer[len(parser.raw_buffer):cap(parser.raw_buffer)])
	switch err {
	case nil:
	case io.EOF:
		parser.eof = true
	default:
		return parser.setReaderError("input error: "+err.Error(), parser.offset, 0)
	}
	parser.raw_buffer = parser.raw_buffer[:len(parser.raw_buffer)+n]
	return nil
}

// updateBuffer ensures the decoded character buffer holds at least length
// runes worth of bytes, decoding further from the raw buffer as needed.
//
// The length is supposed to be significantly less than the buffer size.
func (parser *Parser) updateBuffer(length int) error {
	if parser.read_handler == nil {
		panic("read handler must be set")
	}

	if parser.eof && parser.raw_buffer_pos == len(parser.raw_buffer) {
		// Nothing left to decode; callers tolerate a short buffer at EOF.
	}

	if parser.unread >= length {
		return nil
	}

	if parser.encoding == ANY_ENCODING {
		if err := parser.determineEncoding(); err != nil {
			return err
		}
	}

	buffer_len := len(parser.buffer)
	if parser.buffer_pos > 0 && parser.buffer_pos < buffer_len {
		copy(parser.buffer, parser.buffer[parser.buffer_pos:])
		buffer_len -= parser.buffer_pos
		parser.buffer_pos = 0
	} else if parser.buffer_pos == buffer_len {
		buffer_len = 0
		parser.buffer_pos = 0
	}

	parser.buffer = parser.buffer[:cap(parser.buffer)]

	first := true
	for parser.unread < length {
		if !first || parser.raw_buffer_pos == len(parser.raw_buffer) {
			if err := parser.updateRawBuffer(); err != nil {
				parser.buffer = parser.buffer[:buffer_len]
				return err
			}
		}
		first = false

	inner:
		for parser.raw_buffer_pos != len(parser.raw_buffer) {
			var value rune
			var width int

			raw_unread := len(parser.raw_buffer) - parser.raw_buffer_pos

			switch parser.encoding {
			case UTF8_ENCODING:
				// Decode a UTF-8 character. See RFC 3629.
				//
				//    Char. number range |        UTF-8 octet sequence
				//      (hexadecimal)    |              (binary)
				//   --------------------+------------------------------------
				//   0000 0000-0000 007F | 0xxxxxxx
				//   0000 0080-0000 07FF | 110xxxxx 10xxxxxx
				//   0000 0800-0000 FFFF | 1110xxxx 10xxxxxx 10xxxxxx
				//   0001 0000-0010 FFFF | 11110xxx 10xxxxxx 10xxxxxx 10xxxxxx
				//
				// Characters in the range 0xD800-0xDFFF are prohibited, as
				// they're reserved for UTF-16 surrogate pairs.
				octet := parser.raw_buffer[parser.raw_buffer_pos]
				switch {
				case octet&0x80 == 0x00:
					width = 1
				case octet&0xE0 == 0xC0:
					width = 2
				case octet&0xF0 == 0xE0:
					width = 3
				case octet&0xF8 == 0xF0:
					width = 4
				default:
					return parser.setReaderError("invalid leading UTF-8 octet", parser.offset, int(octet))
				}

				if width > raw_unread {
					if parser.eof {
						return parser.setReaderError("incomplete UTF-8 octet sequence", parser.offset, -1)
					}
					break inner
				}

				switch {
				case octet&0x80 == 0x00:
					value = rune(octet & 0x7F)
				case octet&0xE0 == 0xC0:
					value = rune(octet & 0x1F)
				case octet&0xF0 == 0xE0:
					value = rune(octet & 0x0F)
				case octet&0xF8 == 0xF0:
					value = rune(octet & 0x07)
				default:
					value = 0
				}

				for k := 1; k < width; k++ {
					octet = parser.raw_buffer[parser.raw_buffer_pos+k]
					if (octet & 0xC0) != 0x80 {
						return parser.setReaderError("invalid trailing UTF-8 octet", parser.offset+k, int(octet))
					}
					value = (value << 6) + rune(octet&0x3F)
				}

				switch {
				case width == 1:
				case width == 2 && value >= 0x80:
				case width == 3 && value >= 0x800:
				case width == 4 && value >= 0x10000:
				default:
					return parser.setReaderError("invalid length of a UTF-8 sequence", parser.offset, int(value))
				}

				if value >= 0xD800 && value <= 0xDFFF || value > 0x10FFFF {
					return parser.setReaderError("invalid Unicode character", parser.offset, int(value))
				}

			case UTF16LE_ENCODING, UTF16BE_ENCODING:
				var low, high int
				if parser.encoding == UTF16LE_ENCODING {
					low, high = 0, 1
				} else {
					low, high = 1, 0
				}

				// A surrogate pair describes characters above 0xFFFF: see
				// RFC 2781.
				//
				//  U  = U' + 0x10000   (0x01 00 00 <= U <= 0x10 FF FF)
				//  U' = yyyyyyyyyyxxxxxxxxxx   (0 <= U' <= 0x0F FF FF)
				//  W1 = 110110yyyyyyyyyy
				//  W2 = 110111xxxxxxxxxx

				if raw_unread < 2 {
					if parser.eof {
						return parser.setReaderError("incomplete UTF-16 character", parser.offset, -1)
					}
					break inner
				}

				value = rune(parser.raw_buffer[parser.raw_buffer_pos+low]) +
					(rune(parser.raw_buffer[parser.raw_buffer_pos+high]) << 8)

				if value&0xFC00 == 0xDC00 {
					return parser.setReaderError("unexpected low surrogate area", parser.offset, int(value))
				}

				if value&0xFC00 == 0xD800 {
					width = 4
					if raw_unread < 4 {
						if parser.eof {
							return parser.setReaderError("incomplete UTF-16 surrogate pair", parser.offset, -1)
						}
						break inner
					}

					value2 := rune(parser.raw_buffer[parser.raw_buffer_pos+low+2]) +
						(rune(parser.raw_buffer[parser.raw_buffer_pos+high+2]) << 8)

					if value2&0xFC00 != 0xDC00 {
						return parser.setReaderError("expected low surrogate area", parser.offset, int(value2))
					}

					value = 0x10000 + ((value & 0x3FF) << 10) + (value2 & 0x3FF)
				} else {
					width = 2
				}

			default:
				panic("impossible")
			}

			// Only the following characters are allowed in a YAML stream:
			//      #x9 | #xA | #xD | [#x20-#x7E]               (8 bit)
			//      | #x85 | [#xA0-#xD7FF] | [#xE000-#xFFFD]    (16 bit)
			//      | [#x10000-#x10FFFF]                        (32 bit)
			switch {
			case value == 0x09:
			case value == 0x0A:
			case value == 0x0D:
			case value >= 0x20 && value <= 0x7E:
			case value == 0x85:
			case value >= 0xA0 && value <= 0xD7FF:
			case value >= 0xE000 && value <= 0xFFFD:
			case value >= 0x10000 && value <= 0x10FFFF:
			default:
				return parser.setReaderError("control characters are not allowed", parser.offset, int(value))
			}

			parser.raw_buffer_pos += width
			parser.offset += width

			if value <= 0x7F {
				parser.buffer[buffer_len+0] = byte(value)
				buffer_len += 1
			} else if value <= 0x7FF {
				parser.buffer[buffer_len+0] = byte(0xC0 + (value >> 6))
				parser.buffer[buffer_len+1] = byte(0x80 + (value & 0x3F))
				buffer_len += 2
			} else if value <= 0xFFFF {
				parser.buffer[buffer_len+0] = byte(0xE0 + (value >> 12))
				parser.buffer[buffer_len+1] = byte(0x80 + ((value >> 6) & 0x3F))
				parser.buffer[buffer_len+2] = byte(0x80 + (value & 0x3F))
				buffer_len += 3
			} else {
				parser.buffer[buffer_len+0] = byte(0xF0 + (value >> 18))
				parser.buffer[buffer_len+1] = byte(0x80 + ((value >> 12) & 0x3F))
				parser.buffer[buffer_len+2] = byte(0x80 + ((value >> 6) & 0x3F))
				parser.buffer[buffer_len+3] = byte(0x80 + (value & 0x3F))
				buffer_len += 4
			}

			parser.unread++
		}

		if parser.eof {
			parser.buffer[buffer_len] = 0
			buffer_len++
			parser.unread++
			break
		}
	}
	// At EOF the loop above can break before reaching length; guarantee the
	// requested length is present so callers never index past the buffer.
	for buffer_len < length {
		parser.buffer[buffer_len] = 0
		buffer_len++
	}
	parser.buffer = parser.buffer[:buffer_len]
	return nil
}
