package psl

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNewline
	tokIdent
	tokNumber
	tokString
	tokDocComment
	tokLBrace
	tokRBrace
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokComma
	tokColon
	tokEquals
	tokQuestion
	tokDot
	tokAt
	tokAtAt
	tokIllegal
)

var tokenNames = map[tokenKind]string{
	tokEOF:        "end of file",
	tokNewline:    "newline",
	tokIdent:      "identifier",
	tokNumber:     "number",
	tokString:     "string",
	tokDocComment: "doc comment",
	tokLBrace:     "'{'",
	tokRBrace:     "'}'",
	tokLParen:     "'('",
	tokRParen:     "')'",
	tokLBracket:   "'['",
	tokRBracket:   "']'",
	tokComma:      "','",
	tokColon:      "':'",
	tokEquals:     "'='",
	tokQuestion:   "'?'",
	tokDot:        "'.'",
	tokAt:         "'@'",
	tokAtAt:       "'@@'",
	tokIllegal:    "invalid character",
}

func (k tokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", int(k))
}

// token is a lexeme of the schema text. For strings, text holds the unescaped
// value while span still covers the surrounding quotes.
type token struct {
	kind tokenKind
	text string
	span Span
}

type lexer struct {
	src   string
	pos   int
	toks  []token
	diags *Diagnostics
}

// lex splits the whole source into tokens. Plain comments are dropped, doc
// comments are kept so the parser can attach them to the next declaration.
func lex(src string, diags *Diagnostics) []token {
	l := &lexer{src: src, diags: diags}
	for l.pos < len(l.src) {
		l.next()
	}
	l.emit(tokEOF, "", len(l.src), len(l.src))
	return l.toks
}

func (l *lexer) emit(kind tokenKind, text string, start, end int) {
	l.toks = append(l.toks, token{kind: kind, text: text, span: Span{Start: start, End: end}})
}

func (l *lexer) next() {
	start := l.pos
	c := l.src[l.pos]

	switch {
	case c == ' ' || c == '\t' || c == '\r':
		l.pos++
	case c == '\n':
		l.pos++
		l.emit(tokNewline, "\n", start, l.pos)
	case c == '/' && strings.HasPrefix(l.src[l.pos:], "//"):
		l.comment()
	case c == '"':
		l.str()
	case isDigit(c) || (c == '-' && l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1])):
		l.number()
	case isIdentStart(c):
		for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
			l.pos++
		}
		l.emit(tokIdent, l.src[start:l.pos], start, l.pos)
	case c == '@':
		if strings.HasPrefix(l.src[l.pos:], "@@") {
			l.pos += 2
			l.emit(tokAtAt, "@@", start, l.pos)
			return
		}
		l.pos++
		l.emit(tokAt, "@", start, l.pos)
	default:
		if kind, ok := punctuation[c]; ok {
			l.pos++
			l.emit(kind, string(c), start, l.pos)
			return
		}
		_, size := utf8.DecodeRuneInString(l.src[l.pos:])
		l.pos += size
		l.emit(tokIllegal, l.src[start:l.pos], start, l.pos)
	}
}

var punctuation = map[byte]tokenKind{
	'{': tokLBrace,
	'}': tokRBrace,
	'(': tokLParen,
	')': tokRParen,
	'[': tokLBracket,
	']': tokRBracket,
	',': tokComma,
	':': tokColon,
	'=': tokEquals,
	'?': tokQuestion,
	'.': tokDot,
}

func (l *lexer) comment() {
	start := l.pos
	end := strings.IndexByte(l.src[l.pos:], '\n')
	if end < 0 {
		l.pos = len(l.src)
	} else {
		l.pos += end
	}
	body := l.src[start:l.pos]
	if strings.HasPrefix(body, "///") {
		l.emit(tokDocComment, strings.TrimSpace(strings.TrimPrefix(body, "///")), start, l.pos)
	}
}

func (l *lexer) str() {
	start := l.pos
	l.pos++ // opening quote

	var sb strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch c {
		case '"':
			l.pos++
			l.emit(tokString, sb.String(), start, l.pos)
			return
		case '\n':
			l.diags.pushError("Unterminated string literal.", Span{Start: start, End: l.pos})
			l.emit(tokString, sb.String(), start, l.pos)
			return
		case '\\':
			if l.pos+1 < len(l.src) {
				sb.WriteByte(unescape(l.src[l.pos+1]))
				l.pos += 2
				continue
			}
			l.pos++
		default:
			sb.WriteByte(c)
			l.pos++
		}
	}
	l.diags.pushError("Unterminated string literal.", Span{Start: start, End: l.pos})
	l.emit(tokString, sb.String(), start, l.pos)
}

func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return c
	}
}

func (l *lexer) number() {
	start := l.pos
	if l.src[l.pos] == '-' {
		l.pos++
	}
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	if l.pos+1 < len(l.src) && l.src[l.pos] == '.' && isDigit(l.src[l.pos+1]) {
		l.pos++
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}
	l.emit(tokNumber, l.src[start:l.pos], start, l.pos)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '-'
}
