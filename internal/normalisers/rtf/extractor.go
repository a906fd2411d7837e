package rtf

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/custodia-labs/rtftitles/internal/core/domain"
	"github.com/custodia-labs/rtftitles/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor converts RTF markup to plain text.
type Extractor struct{}

// New creates a new RTF extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract returns the visible text of an RTF document.
// Paragraph and line breaks become newlines.
func (e *Extractor) Extract(raw string) (string, error) {
	if !utf8.ValidString(raw) {
		return "", fmt.Errorf("%w: input is not valid UTF-8", domain.ErrMalformedDocument)
	}
	p := newParser(raw)
	if err := p.run(); err != nil {
		return "", err
	}
	return p.out.String(), nil
}

// group holds the state that RTF scopes to a {...} group.
type group struct {
	skip   bool // inside a destination whose text is dropped
	ucSkip int  // fallback characters following \uN
}

type parser struct {
	src   string
	pos   int
	cur   group
	stack []group
	out   strings.Builder

	cm *charmap.Charmap

	// pendingSkip counts fallback characters still to drop after \uN.
	pendingSkip int
	// highSurrogate holds the first half of a UTF-16 pair from \uN.
	highSurrogate rune
}

func newParser(src string) *parser {
	return &parser{
		src: src,
		cur: group{ucSkip: 1},
		cm:  charmapFor(defaultCodePage),
	}
}

func (p *parser) run() error {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case '{':
			p.pos++
			p.stack = append(p.stack, p.cur)
			p.pendingSkip = 0
		case '}':
			if len(p.stack) == 0 {
				return fmt.Errorf("%w: unexpected '}' at offset %d", domain.ErrMalformedDocument, p.pos)
			}
			p.pos++
			p.cur = p.stack[len(p.stack)-1]
			p.stack = p.stack[:len(p.stack)-1]
			p.pendingSkip = 0
		case '\\':
			if err := p.control(); err != nil {
				return err
			}
		case '\r', '\n':
			p.pos++
		default:
			r, size := utf8.DecodeRuneInString(p.src[p.pos:])
			p.pos += size
			p.emitRune(r)
		}
	}
	if len(p.stack) > 0 {
		return fmt.Errorf("%w: %d unclosed group(s)", domain.ErrMalformedDocument, len(p.stack))
	}
	return nil
}

// control handles a backslash sequence starting at p.pos.
func (p *parser) control() error {
	p.pos++ // backslash
	if p.pos >= len(p.src) {
		return nil
	}

	c := p.src[p.pos]
	if isLetter(c) {
		return p.controlWord()
	}

	p.pos++
	switch c {
	case '\'':
		return p.hexEscape()
	case '\\', '{', '}':
		p.emitRune(rune(c))
	case '~':
		p.emitRune('\u00a0')
	case '_':
		p.emitRune('\u2011')
	case '-':
		// optional hyphen
	case '*':
		p.cur.skip = true
	case '\n', '\r':
		p.emitText("\n")
	}
	return nil
}

func (p *parser) controlWord() error {
	start := p.pos
	for p.pos < len(p.src) && isLetter(p.src[p.pos]) {
		p.pos++
	}
	word := p.src[start:p.pos]

	var param int
	hasParam := false
	numStart := p.pos
	if p.pos < len(p.src) && p.src[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
		p.pos++
	}
	if digits := p.src[numStart:p.pos]; digits != "" && digits != "-" {
		n, err := strconv.Atoi(digits)
		if err != nil {
			return fmt.Errorf("%w: bad parameter %q for \\%s", domain.ErrMalformedDocument, digits, word)
		}
		param, hasParam = n, true
	} else {
		p.pos = numStart
	}

	// A single space delimits the control word and is not text.
	if p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}

	switch {
	case word == "bin" && hasParam:
		p.skipBytes(param)
	case word == "u" && hasParam:
		p.emitUnicode(param)
	case word == "uc" && hasParam:
		p.cur.ucSkip = param
	case word == "ansicpg" && hasParam:
		p.cm = charmapFor(param)
	case word == "mac":
		p.cm = charmap.Macintosh
	case word == "pc":
		p.cm = charmap.CodePage437
	case word == "pca":
		p.cm = charmap.CodePage850
	case destinations[word]:
		p.cur.skip = true
	default:
		if text, ok := specialWords[word]; ok {
			p.emitText(text)
		}
	}
	return nil
}

func (p *parser) hexEscape() error {
	if p.pos+2 > len(p.src) {
		return fmt.Errorf("%w: truncated hex escape at offset %d", domain.ErrMalformedDocument, p.pos)
	}
	b, err := strconv.ParseUint(p.src[p.pos:p.pos+2], 16, 8)
	if err != nil {
		return fmt.Errorf("%w: bad hex escape %q at offset %d", domain.ErrMalformedDocument, p.src[p.pos:p.pos+2], p.pos)
	}
	p.pos += 2
	p.emitRune(p.cm.DecodeByte(byte(b)))
	return nil
}

func (p *parser) emitUnicode(n int) {
	if n < 0 {
		n += 65536
	}
	r := rune(n)
	p.writeVisible(func() {
		switch {
		case utf16.IsSurrogate(r) && r < 0xDC00:
			p.highSurrogate = r
			return
		case utf16.IsSurrogate(r) && p.highSurrogate != 0:
			r = utf16.DecodeRune(p.highSurrogate, r)
		}
		p.highSurrogate = 0
		p.out.WriteRune(r)
	})
	p.pendingSkip = p.cur.ucSkip
}

// emitRune writes one text character, consuming a pending \uN fallback first.
func (p *parser) emitRune(r rune) {
	if p.pendingSkip > 0 {
		p.pendingSkip--
		return
	}
	p.writeVisible(func() { p.out.WriteRune(r) })
}

func (p *parser) emitText(s string) {
	p.pendingSkip = 0
	p.writeVisible(func() { p.out.WriteString(s) })
}

func (p *parser) writeVisible(write func()) {
	if p.cur.skip {
		return
	}
	write()
}

func (p *parser) skipBytes(n int) {
	if n < 0 {
		return
	}
	p.pos += n
	if p.pos > len(p.src) {
		p.pos = len(p.src)
	}
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
