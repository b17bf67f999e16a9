package lexer

import (
	"strconv"
	"strings"
	"unicode"
)

type Lexer struct {
	src  []rune
	i    int
	ch   rune
	line int
	col  int
}

func New(src string) *Lexer {
	l := &Lexer{src: []rune(src), line: 1}
	l.read()
	return l
}

func (l *Lexer) read() {
	if l.i >= len(l.src) {
		l.ch = 0
		// keep the column moving so EOF reports one past the last rune
		l.col++
		return
	}
	l.ch = l.src[l.i]
	l.i++
	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

func (l *Lexer) peek() rune {
	if l.i >= len(l.src) {
		return 0
	}
	return l.src[l.i]
}

// accept consumes the current rune if it equals ch.
func (l *Lexer) accept(ch rune) bool {
	if l.ch == ch {
		l.read()
		return true
	}
	return false
}

func (l *Lexer) skipSpaceAndComments() {
	for {
		for unicode.IsSpace(l.ch) {
			l.read()
		}
		if l.ch == '/' && l.peek() == '/' {
			for l.ch != 0 && l.ch != '\n' {
				l.read()
			}
			continue
		}
		if l.ch == '/' && l.peek() == '*' {
			l.read()
			l.read()
			for l.ch != 0 {
				if l.ch == '*' && l.peek() == '/' {
					l.read()
					l.read()
					break
				}
				l.read()
			}
			continue
		}
		break
	}
}

func (l *Lexer) Next() Token {
	l.skipSpaceAndComments()
	tok := Token{Line: l.line, Col: l.col}
	ch := l.ch
	switch {
	case ch == 0 && l.i >= len(l.src):
		tok.Type = EOF
		return tok
	case unicode.IsLetter(ch) || ch == '_':
		l.scanIdent(&tok)
		return tok
	case unicode.IsDigit(ch) || (ch == '.' && unicode.IsDigit(l.peek())):
		l.scanNumber(&tok)
		return tok
	case ch == '\'':
		l.scanChar(&tok)
		return tok
	case ch == '"':
		l.scanString(&tok)
		return tok
	}

	l.read()
	switch ch {
	case '(':
		tok.Type = LPAREN
	case ')':
		tok.Type = RPAREN
	case '{':
		tok.Type = LBRACE
	case '}':
		tok.Type = RBRACE
	case '[':
		tok.Type = LBRACK
	case ']':
		tok.Type = RBRACK
	case ';':
		tok.Type = SEMI
	case ',':
		tok.Type = COMMA
	case '.':
		tok.Type = DOT
	case '?':
		tok.Type = QUESTION
	case '~':
		tok.Type = TILDE
	case ':':
		tok.Type = COLON
		if l.accept('=') {
			tok.Type = COLON_ASSN
		}
	case '=':
		tok.Type = ASSIGN
		if l.accept('=') {
			tok.Type = EQEQ
		}
	case '!':
		tok.Type = BANG
		if l.accept('=') {
			tok.Type = NEQ
		}
	case '+':
		tok.Type = PLUS
		if l.accept('+') {
			tok.Type = INC
		} else if l.accept('=') {
			tok.Type = ADD_ASSN
		}
	case '-':
		tok.Type = MINUS
		if l.accept('-') {
			tok.Type = DEC
		} else if l.accept('=') {
			tok.Type = SUB_ASSN
		}
	case '*':
		tok.Type = STAR
		if l.accept('=') {
			tok.Type = MUL_ASSN
		}
	case '/':
		tok.Type = SLASH
		if l.accept('=') {
			tok.Type = DIV_ASSN
		}
	case '%':
		tok.Type = PERCENT
		if l.accept('=') {
			tok.Type = MOD_ASSN
		}
	case '^':
		tok.Type = CARET
		if l.accept('=') {
			tok.Type = XOR_ASSN
		}
	case '&':
		tok.Type = AMP
		if l.accept('&') {
			tok.Type = ANDAND
		} else if l.accept('=') {
			tok.Type = AND_ASSN
		}
	case '|':
		tok.Type = PIPE
		if l.accept('|') {
			tok.Type = OROR
		} else if l.accept('=') {
			tok.Type = OR_ASSN
		}
	case '<':
		tok.Type = LT
		if l.accept('<') {
			tok.Type = SHL
			if l.accept('=') {
				tok.Type = SHL_ASSN
			}
		} else if l.accept('=') {
			tok.Type = LE
		}
	case '>':
		tok.Type = GT
		if l.accept('>') {
			tok.Type = SHR
			if l.accept('=') {
				tok.Type = SHR_ASSN
			}
		} else if l.accept('=') {
			tok.Type = GE
		}
	default:
		tok.Type, tok.Lex = ILLEGAL, string(ch)
		return tok
	}
	tok.Lex = tok.Type.String()
	return tok
}

func (l *Lexer) scanIdent(tok *Token) {
	var sb strings.Builder
	for unicode.IsLetter(l.ch) || unicode.IsDigit(l.ch) || l.ch == '_' {
		sb.WriteRune(l.ch)
		l.read()
	}
	tok.Lex = sb.String()
	tok.Type = Lookup(tok.Lex)
}

func isHexDigit(ch rune) bool {
	return unicode.IsDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

func (l *Lexer) scanNumber(tok *Token) {
	var sb strings.Builder
	isFloat := false
	if l.ch == '0' && (l.peek() == 'x' || l.peek() == 'X' || l.peek() == 'b' || l.peek() == 'B') {
		sb.WriteRune(l.ch)
		l.read()
		sb.WriteRune(l.ch)
		l.read()
		for isHexDigit(l.ch) {
			sb.WriteRune(l.ch)
			l.read()
		}
	} else {
		for unicode.IsDigit(l.ch) {
			sb.WriteRune(l.ch)
			l.read()
		}
		if l.ch == '.' {
			isFloat = true
			sb.WriteRune(l.ch)
			l.read()
			for unicode.IsDigit(l.ch) {
				sb.WriteRune(l.ch)
				l.read()
			}
		}
		if l.ch == 'e' || l.ch == 'E' {
			isFloat = true
			sb.WriteRune(l.ch)
			l.read()
			if l.ch == '+' || l.ch == '-' {
				sb.WriteRune(l.ch)
				l.read()
			}
			for unicode.IsDigit(l.ch) {
				sb.WriteRune(l.ch)
				l.read()
			}
		}
	}
	tok.Lex = sb.String()

	if isFloat {
		f, err := strconv.ParseFloat(tok.Lex, 64)
		if err != nil {
			tok.Type = ILLEGAL
			return
		}
		tok.Type, tok.Float = FLOAT, f
		return
	}
	// base 0 understands 0x, 0b and a leading-zero octal prefix
	u, err := strconv.ParseUint(tok.Lex, 0, 64)
	if err != nil {
		tok.Type = ILLEGAL
		return
	}
	tok.Type, tok.Int = INT, int64(u)
}

// scanEscape reads one possibly escaped rune of a char or string literal.
func (l *Lexer) scanEscape() (rune, bool) {
	if l.ch != '\\' {
		ch := l.ch
		l.read()
		return ch, true
	}
	l.read()
	var r rune
	switch l.ch {
	case 'n':
		r = '\n'
	case 't':
		r = '\t'
	case 'r':
		r = '\r'
	case '0':
		r = 0
	case '\\', '\'', '"':
		r = l.ch
	default:
		return 0, false
	}
	l.read()
	return r, true
}

func (l *Lexer) scanChar(tok *Token) {
	start := l.offset()
	l.read() // opening quote
	if l.ch == '\'' || l.ch == '\n' || l.atEOF() {
		tok.Type, tok.Lex = ILLEGAL, string(l.src[start:l.offset()])
		return
	}
	r, ok := l.scanEscape()
	if !ok || l.ch != '\'' {
		tok.Type, tok.Lex = ILLEGAL, string(l.src[start:l.offset()])
		return
	}
	l.read() // closing quote
	tok.Type, tok.Lex, tok.Int = CHAR, string(r), int64(r)
}

func (l *Lexer) scanString(tok *Token) {
	start := l.offset()
	l.read() // opening quote
	var sb strings.Builder
	for l.ch != '"' {
		if l.ch == '\n' || l.atEOF() {
			tok.Type, tok.Lex = ILLEGAL, string(l.src[start:l.offset()])
			return
		}
		r, ok := l.scanEscape()
		if !ok {
			tok.Type, tok.Lex = ILLEGAL, string(l.src[start:l.offset()])
			return
		}
		sb.WriteRune(r)
	}
	l.read() // closing quote
	tok.Type, tok.Lex = STRING, sb.String()
}

func (l *Lexer) atEOF() bool { return l.ch == 0 && l.i >= len(l.src) }

// offset is the index of the current rune in src.
func (l *Lexer) offset() int {
	if l.atEOF() {
		return len(l.src)
	}
	return l.i - 1
}
