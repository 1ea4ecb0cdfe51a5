// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfdoc

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// kernSpace is the TJ displacement (thousandths of text space) wide enough
// to count as a word gap.
const kernSpace = -250

// maxFormDepth bounds how deeply form XObjects drawn with Do are followed.
const maxFormDepth = 8

// Decoder turns the bytes of a shown string into text.
type Decoder func(raw []byte) string

// Resources resolves the named fonts and form XObjects a content stream
// refers to. Font returns nil for fonts it cannot decode.
type Resources interface {
	Font(name string) Decoder
	Form(name string) (content []byte, res Resources, ok bool)
}

// operand is one value on the content stream operand stack. Only the kinds
// text extraction needs are kept apart; everything else is opaque.
type operand struct {
	str    []byte
	isStr  bool
	num    float64
	isNum  bool
	name   string
	isName bool
	array  []operand
	isArr  bool
}

// ContentText extracts the text shown by a page content stream. Strings are
// decoded with the font selected by Tf when res knows it, and forms drawn
// with Do are read in place. Lines are separated by "\n" and a non-empty
// result ends with a newline.
func ContentText(data []byte, res Resources) string {
	var b textBuilder
	interpret(&b, data, res, 0)
	return normalize(b.String())
}

func interpret(b *textBuilder, data []byte, res Resources, depth int) {
	l := &lexer{data: data}
	var decode Decoder = decodeString
	var stack []operand
	for {
		op, ok := l.next(&stack)
		if !ok {
			break
		}
		switch op {
		case "Tf":
			decode = decodeString
			if res != nil && len(stack) >= 2 && stack[len(stack)-2].isName {
				if d := res.Font(stack[len(stack)-2].name); d != nil {
					decode = d
				}
			}
		case "Tj":
			if s, ok := lastString(stack); ok {
				b.text(decode(s))
			}
		case "TJ":
			if len(stack) > 0 && stack[len(stack)-1].isArr {
				for _, e := range stack[len(stack)-1].array {
					switch {
					case e.isStr:
						b.text(decode(e.str))
					case e.isNum && e.num <= kernSpace:
						b.space()
					}
				}
			}
		case "'", `"`:
			b.newline()
			if s, ok := lastString(stack); ok {
				b.text(decode(s))
			}
		case "T*", "ET":
			b.newline()
		case "Td", "TD":
			if len(stack) >= 2 && stack[len(stack)-1].isNum && stack[len(stack)-1].num != 0 {
				b.newline()
			} else {
				b.space()
			}
		case "Tm":
			if len(stack) >= 6 && stack[len(stack)-1].isNum {
				b.moveTo(stack[len(stack)-1].num)
			}
		case "Do":
			if res == nil || depth >= maxFormDepth || len(stack) == 0 || !stack[len(stack)-1].isName {
				break
			}
			if content, sub, ok := res.Form(stack[len(stack)-1].name); ok {
				b.newline()
				interpret(b, content, sub, depth+1)
				b.newline()
			}
		}
		stack = stack[:0]
	}
}

func lastString(stack []operand) ([]byte, bool) {
	if len(stack) == 0 || !stack[len(stack)-1].isStr {
		return nil, false
	}
	return stack[len(stack)-1].str, true
}

// decodeString turns a PDF string into text: UTF-16BE when it carries a
// byte order mark, UTF-8 when valid, otherwise WinAnsi (Windows-1252).
func decodeString(raw []byte) string {
	if len(raw) >= 2 && raw[0] == 0xFE && raw[1] == 0xFF {
		return decodeUTF16(raw[2:])
	}
	if utf8.Valid(raw) {
		return string(raw)
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(out)
}

// decodeUTF16 decodes big-endian UTF-16 code units.
func decodeUTF16(raw []byte) string {
	u := make([]uint16, 0, len(raw)/2)
	for i := 0; i+1 < len(raw); i += 2 {
		u = append(u, uint16(raw[i])<<8|uint16(raw[i+1]))
	}
	return string(utf16.Decode(u))
}

type textBuilder struct {
	strings.Builder
	y    float64
	hasY bool
}

func (b *textBuilder) text(s string) { b.WriteString(s) }

func (b *textBuilder) last() byte {
	s := b.String()
	if s == "" {
		return '\n'
	}
	return s[len(s)-1]
}

func (b *textBuilder) space() {
	if c := b.last(); c != ' ' && c != '\n' {
		b.WriteByte(' ')
	}
}

func (b *textBuilder) newline() {
	if b.last() != '\n' {
		b.WriteByte('\n')
	}
}

// moveTo handles an absolute text position: a new baseline starts a line,
// the same baseline continues it.
func (b *textBuilder) moveTo(y float64) {
	if b.hasY && y == b.y {
		b.space()
	} else {
		b.newline()
	}
	b.y, b.hasY = y, true
}

// normalize collapses runs of blanks inside lines and drops empty lines.
func normalize(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// lexer tokenizes a content stream. next pushes operands onto the stack and
// returns at each operator.
type lexer struct {
	data []byte
	pos  int
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == 0
}

func isDelim(c byte) bool {
	return strings.IndexByte("()<>[]{}/%", c) >= 0
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		switch {
		case isSpace(c):
			l.pos++
		case c == '%':
			for l.pos < len(l.data) && l.data[l.pos] != '\n' && l.data[l.pos] != '\r' {
				l.pos++
			}
		default:
			return
		}
	}
}

func (l *lexer) next(stack *[]operand) (string, bool) {
	for {
		l.skipSpace()
		if l.pos >= len(l.data) {
			return "", false
		}
		c := l.data[l.pos]
		switch {
		case c == '[':
			l.pos++
			*stack = append(*stack, operand{array: l.array(), isArr: true})
		case c == ']' || c == '{' || c == '}' || c == ')':
			l.pos++
		default:
			if v, ok := l.value(); ok {
				*stack = append(*stack, v)
				continue
			}
			word := l.word()
			if word == "" {
				l.pos++
				continue
			}
			if word == "ID" {
				l.skipInlineImage()
			}
			return word, true
		}
	}
}

// value reads a string, number, name, or dictionary delimiter at the cursor.
func (l *lexer) value() (operand, bool) {
	c := l.data[l.pos]
	switch {
	case c == '(':
		l.pos++
		return operand{str: l.literal(), isStr: true}, true
	case c == '<':
		if l.pos+1 < len(l.data) && l.data[l.pos+1] == '<' {
			l.pos += 2
			return operand{}, true
		}
		l.pos++
		return operand{str: l.hex(), isStr: true}, true
	case c == '>':
		l.pos++
		if l.pos < len(l.data) && l.data[l.pos] == '>' {
			l.pos++
		}
		return operand{}, true
	case c == '/':
		l.pos++
		return operand{name: l.word(), isName: true}, true
	case c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9'):
		return operand{num: parseNumber(l.word()), isNum: true}, true
	}
	return operand{}, false
}

func (l *lexer) array() []operand {
	var out []operand
	for {
		l.skipSpace()
		if l.pos >= len(l.data) {
			return out
		}
		c := l.data[l.pos]
		if c == ']' {
			l.pos++
			return out
		}
		if c == '[' {
			l.pos++
			out = append(out, operand{array: l.array(), isArr: true})
			continue
		}
		if v, ok := l.value(); ok {
			out = append(out, v)
			continue
		}
		if l.word() == "" {
			l.pos++
		}
	}
}

func (l *lexer) word() string {
	start := l.pos
	for l.pos < len(l.data) && !isSpace(l.data[l.pos]) && !isDelim(l.data[l.pos]) {
		l.pos++
	}
	return string(l.data[start:l.pos])
}

func (l *lexer) literal() []byte {
	var out []byte
	depth := 1
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		l.pos++
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return out
			}
		case '\\':
			if l.pos >= len(l.data) {
				return out
			}
			e := l.data[l.pos]
			l.pos++
			switch e {
			case 'n':
				out = append(out, '\n')
			case 'r':
				out = append(out, '\r')
			case 't':
				out = append(out, '\t')
			case 'b':
				out = append(out, '\b')
			case 'f':
				out = append(out, '\f')
			case '\r':
				if l.pos < len(l.data) && l.data[l.pos] == '\n' {
					l.pos++
				}
			case '\n':
			default:
				if e >= '0' && e <= '7' {
					v := int(e - '0')
					for i := 0; i < 2 && l.pos < len(l.data) && l.data[l.pos] >= '0' && l.data[l.pos] <= '7'; i++ {
						v = v*8 + int(l.data[l.pos]-'0')
						l.pos++
					}
					out = append(out, byte(v))
				} else {
					out = append(out, e)
				}
			}
			continue
		}
		out = append(out, c)
	}
	return out
}

func (l *lexer) hex() []byte {
	var digits []byte
	for l.pos < len(l.data) && l.data[l.pos] != '>' {
		if c := l.data[l.pos]; !isSpace(c) {
			digits = append(digits, c)
		}
		l.pos++
	}
	l.pos++ // '>'
	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}
	out := make([]byte, 0, len(digits)/2)
	for i := 0; i < len(digits); i += 2 {
		out = append(out, hexVal(digits[i])<<4|hexVal(digits[i+1]))
	}
	return out
}

func hexVal(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// skipInlineImage moves past binary inline image data up to the EI operator.
func (l *lexer) skipInlineImage() {
	if l.pos < len(l.data) {
		l.pos++ // single whitespace after ID
	}
	for i := l.pos; i+1 < len(l.data); i++ {
		if l.data[i] == 'E' && l.data[i+1] == 'I' &&
			i > 0 && isSpace(l.data[i-1]) &&
			(i+2 == len(l.data) || isSpace(l.data[i+2])) {
			l.pos = i + 2
			return
		}
	}
	l.pos = len(l.data)
}

func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
