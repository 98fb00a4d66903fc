package psl

import "fmt"

// Parse parses a Prisma schema. It never fails: problems are recorded in the
// returned Diagnostics and parsing resumes at the next line or declaration,
// so callers always get every declaration that could be recognized.
func Parse(src string) *SchemaAst {
	ast := &SchemaAst{}
	p := &parser{src: src, diags: &ast.Diagnostics}
	p.toks = lex(src, p.diags)
	ast.Tops = p.parseTops()
	return ast
}

type parser struct {
	src   string
	toks  []token
	pos   int
	diags *Diagnostics
	doc   []string
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) peekAt(n int) token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *parser) advance() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) at(kind tokenKind) bool { return p.peek().kind == kind }

func (p *parser) accept(kind tokenKind) (token, bool) {
	if p.at(kind) {
		return p.advance(), true
	}
	return token{}, false
}

func (p *parser) skipNewlines() {
	for p.at(tokNewline) || p.at(tokDocComment) {
		p.advance()
	}
}

// skipLine drops tokens up to the end of the current line. Nested braces are
// skipped as a unit so a broken block does not swallow the following ones.
func (p *parser) skipLine() {
	depth := 0
	for !p.at(tokEOF) {
		switch p.peek().kind {
		case tokNewline:
			if depth == 0 {
				return
			}
		case tokLBrace:
			depth++
		case tokRBrace:
			if depth == 0 {
				return
			}
			depth--
		}
		p.advance()
	}
}

func (p *parser) takeDoc() string {
	doc := ""
	for i, line := range p.doc {
		if i > 0 {
			doc += "\n"
		}
		doc += line
	}
	p.doc = nil
	return doc
}

func (p *parser) unexpected(tok token, context string) {
	what := tok.kind.String()
	if tok.kind == tokIdent || tok.kind == tokIllegal {
		what = fmt.Sprintf("%q", tok.text)
	}
	p.diags.pushError(fmt.Sprintf("Unexpected %s %s.", what, context), tok.span)
}

func (p *parser) parseTops() []Top {
	var tops []Top
	for {
		tok := p.peek()
		switch tok.kind {
		case tokEOF:
			return tops
		case tokNewline:
			p.advance()
			continue
		case tokDocComment:
			p.doc = append(p.doc, tok.text)
			p.advance()
			continue
		case tokIdent:
			if top := p.parseTop(tok); top != nil {
				tops = append(tops, top)
			}
			continue
		}
		p.diags.pushError("This line is invalid. It does not start with any known Prisma schema keyword.", tok.span)
		p.skipLine()
		p.accept(tokRBrace)
		p.doc = nil
	}
}

func (p *parser) parseTop(kw token) Top {
	switch kw.text {
	case "model", "view":
		return p.parseModel(kw)
	case "type":
		return p.parseCompositeType(kw)
	case "enum":
		return p.parseEnum(kw)
	case "datasource", "generator":
		return p.parseConfigBlock(kw)
	}
	p.diags.pushError("This line is invalid. It does not start with any known Prisma schema keyword.", kw.span)
	p.skipLine()
	p.accept(tokRBrace)
	p.doc = nil
	return nil
}

// openBlock reads `<keyword> Name {`. ok is false when the header is broken;
// the parser has then already skipped past it.
func (p *parser) openBlock(kw token) (name string, ok bool) {
	p.advance()
	nameTok, found := p.accept(tokIdent)
	if !found {
		p.diags.pushError(fmt.Sprintf("A %s declaration must have a name.", kw.text), kw.span)
		p.skipLine()
		p.accept(tokRBrace)
		return "", false
	}
	if _, found := p.accept(tokLBrace); !found {
		p.unexpected(p.peek(), fmt.Sprintf("after %s name, expected '{'", kw.text))
		p.skipLine()
		p.accept(tokRBrace)
		return "", false
	}
	return nameTok.text, true
}

// closeBlock consumes the closing brace and returns the block end offset.
func (p *parser) closeBlock(kw token, name string) int {
	if tok, ok := p.accept(tokRBrace); ok {
		return tok.span.End
	}
	p.diags.pushError(fmt.Sprintf("The %s %q is missing its closing brace.", kw.text, name), kw.span)
	return len(p.src)
}

func (p *parser) parseModel(kw token) Top {
	doc := p.takeDoc()
	name, ok := p.openBlock(kw)
	if !ok {
		return nil
	}
	m := &Model{Name: name, Documentation: doc, IsView: kw.text == "view"}
	for {
		tok := p.peek()
		switch tok.kind {
		case tokEOF, tokRBrace:
			m.Span = Span{Start: kw.span.Start, End: p.closeBlock(kw, name)}
			return m
		case tokNewline:
			p.advance()
		case tokDocComment:
			p.doc = append(p.doc, tok.text)
			p.advance()
		case tokAtAt:
			p.advance()
			if attr, ok := p.parseAttribute(tok); ok {
				m.Attributes = append(m.Attributes, attr)
			}
			p.endLine()
		case tokIdent:
			m.Fields = append(m.Fields, p.parseField())
		default:
			p.unexpected(tok, "in "+kw.text+" body")
			p.skipLine()
		}
	}
}

func (p *parser) parseCompositeType(kw token) Top {
	doc := p.takeDoc()
	name, ok := p.openBlock(kw)
	if !ok {
		return nil
	}
	c := &CompositeType{Name: name, Documentation: doc}
	for {
		tok := p.peek()
		switch tok.kind {
		case tokEOF, tokRBrace:
			c.Span = Span{Start: kw.span.Start, End: p.closeBlock(kw, name)}
			return c
		case tokNewline:
			p.advance()
		case tokDocComment:
			p.doc = append(p.doc, tok.text)
			p.advance()
		case tokIdent:
			c.Fields = append(c.Fields, p.parseField())
		default:
			p.unexpected(tok, "in type body")
			p.skipLine()
		}
	}
}

func (p *parser) parseEnum(kw token) Top {
	doc := p.takeDoc()
	name, ok := p.openBlock(kw)
	if !ok {
		return nil
	}
	e := &Enum{Name: name, Documentation: doc}
	for {
		tok := p.peek()
		switch tok.kind {
		case tokEOF, tokRBrace:
			e.Span = Span{Start: kw.span.Start, End: p.closeBlock(kw, name)}
			return e
		case tokNewline, tokDocComment:
			p.advance()
		case tokAtAt:
			p.advance()
			if attr, ok := p.parseAttribute(tok); ok {
				e.Attributes = append(e.Attributes, attr)
			}
			p.endLine()
		case tokIdent:
			p.advance()
			value := EnumValue{Name: tok.text, Span: tok.span}
			value.Attributes = p.parseFieldAttributes()
			if n := len(value.Attributes); n > 0 {
				value.Span.End = value.Attributes[n-1].Span.End
			}
			e.Values = append(e.Values, value)
			p.endLine()
		default:
			p.unexpected(tok, "in enum body")
			p.skipLine()
		}
	}
}

func (p *parser) parseConfigBlock(kw token) Top {
	p.doc = nil
	name, ok := p.openBlock(kw)
	if !ok {
		return nil
	}
	c := &ConfigBlock{Kind: kw.text, Name: name}
	for {
		tok := p.peek()
		switch tok.kind {
		case tokEOF, tokRBrace:
			c.Span = Span{Start: kw.span.Start, End: p.closeBlock(kw, name)}
			return c
		case tokNewline, tokDocComment:
			p.advance()
		case tokIdent:
			p.advance()
			if _, found := p.accept(tokEquals); !found {
				p.unexpected(p.peek(), fmt.Sprintf("after property %q, expected '='", tok.text))
				p.skipLine()
				continue
			}
			value, ok := p.parseExpression()
			if !ok {
				p.skipLine()
				continue
			}
			if _, dup := c.Property(tok.text); dup {
				p.diags.pushWarning(fmt.Sprintf("Property %q is defined more than once; the first value is used.", tok.text), tok.span)
				p.endLine()
				continue
			}
			c.Properties = append(c.Properties, Property{
				Name:  tok.text,
				Value: value,
				Span:  Span{Start: tok.span.Start, End: value.Span.End},
			})
			p.endLine()
		default:
			p.unexpected(tok, "in "+kw.text+" body")
			p.skipLine()
		}
	}
}

// endLine reports trailing garbage after a complete statement.
func (p *parser) endLine() {
	switch p.peek().kind {
	case tokNewline, tokRBrace, tokEOF, tokDocComment:
		return
	}
	p.unexpected(p.peek(), "at end of line")
	p.skipLine()
}

func (p *parser) parseField() Field {
	nameTok := p.advance()
	f := Field{Name: nameTok.text, Documentation: p.takeDoc(), Span: nameTok.span}

	typeTok, ok := p.accept(tokIdent)
	if !ok {
		p.diags.pushError(fmt.Sprintf("This field declaration is invalid. It is either missing a name or a type: %q.", nameTok.text), nameTok.span)
		p.skipLine()
		return f
	}
	f.Type = FieldType{Name: typeTok.text, Span: typeTok.span}
	f.Span.End = typeTok.span.End

	if typeTok.text == "Unsupported" && p.at(tokLParen) {
		p.advance()
		if native, ok := p.accept(tokString); ok {
			f.Type.Native = native.text
		} else {
			p.unexpected(p.peek(), "in Unsupported type, expected a string")
		}
		if closing, ok := p.accept(tokRParen); ok {
			f.Span.End = closing.span.End
		} else {
			p.unexpected(p.peek(), "in Unsupported type, expected ')'")
			p.skipLine()
			return f
		}
	}

	switch {
	case p.at(tokQuestion):
		f.Arity = Optional
		f.Span.End = p.advance().span.End
	case p.at(tokLBracket) && p.peekAt(1).kind == tokRBracket:
		f.Arity = List
		p.advance()
		f.Span.End = p.advance().span.End
		if q, ok := p.accept(tokQuestion); ok {
			p.diags.pushError("Optional lists are not supported.", q.span)
		}
	}

	f.Attributes = p.parseFieldAttributes()
	if n := len(f.Attributes); n > 0 {
		f.Span.End = f.Attributes[n-1].Span.End
	}
	p.endLine()
	return f
}

func (p *parser) parseFieldAttributes() []Attribute {
	var attrs []Attribute
	for p.at(tokAt) {
		at := p.advance()
		if attr, ok := p.parseAttribute(at); ok {
			attrs = append(attrs, attr)
		}
	}
	if p.at(tokAtAt) {
		p.diags.pushError("Block attributes must be written on their own line.", p.peek().span)
		p.skipLine()
	}
	return attrs
}

// parseAttribute reads the attribute path and optional argument list following
// an '@' or '@@' token.
func (p *parser) parseAttribute(at token) (Attribute, bool) {
	first, ok := p.accept(tokIdent)
	if !ok {
		p.unexpected(p.peek(), "after "+at.text+", expected an attribute name")
		p.skipLine()
		return Attribute{}, false
	}
	attr := Attribute{Name: first.text, Span: Span{Start: at.span.Start, End: first.span.End}}
	for p.at(tokDot) && p.peekAt(1).kind == tokIdent {
		p.advance()
		part := p.advance()
		attr.Name += "." + part.text
		attr.Span.End = part.span.End
	}
	if p.at(tokLParen) {
		args, end, ok := p.parseArguments()
		if !ok {
			return Attribute{}, false
		}
		attr.Arguments = args
		attr.Span.End = end
	}
	return attr, true
}

// parseArguments reads `( arg, name: arg, ... )` and returns the end offset of
// the closing parenthesis.
func (p *parser) parseArguments() ([]Argument, int, bool) {
	p.advance() // (
	var args []Argument
	for {
		p.skipNewlines()
		if closing, ok := p.accept(tokRParen); ok {
			return args, closing.span.End, true
		}
		if len(args) > 0 {
			if _, ok := p.accept(tokComma); !ok {
				p.unexpected(p.peek(), "in argument list, expected ',' or ')'")
				p.skipLine()
				return nil, 0, false
			}
			p.skipNewlines()
			// trailing comma
			if closing, ok := p.accept(tokRParen); ok {
				return args, closing.span.End, true
			}
		}

		if p.at(tokIdent) && p.peekAt(1).kind == tokColon {
			name := p.advance()
			p.advance()
			p.skipNewlines()
			value, ok := p.parseExpression()
			if !ok {
				p.skipLine()
				return nil, 0, false
			}
			args = append(args, NamedArgument{
				Name:  name.text,
				Value: value,
				Span:  Span{Start: name.span.Start, End: value.Span.End},
			})
			continue
		}

		value, ok := p.parseExpression()
		if !ok {
			p.skipLine()
			return nil, 0, false
		}
		args = append(args, BareArgument{Value: value, Span: value.Span})
	}
}

func (p *parser) parseExpression() (Expression, bool) {
	tok := p.peek()
	switch tok.kind {
	case tokNumber:
		p.advance()
		return Expression{Kind: NumericValue, Value: tok.text, Span: tok.span}, true
	case tokString:
		p.advance()
		return Expression{Kind: StringValue, Value: tok.text, Span: tok.span}, true
	case tokLBracket:
		return p.parseArray()
	case tokIdent:
		p.advance()
		expr := Expression{Kind: ConstantValue, Value: tok.text, Span: tok.span}
		for p.at(tokDot) && p.peekAt(1).kind == tokIdent {
			p.advance()
			part := p.advance()
			expr.Value += "." + part.text
			expr.Span.End = part.span.End
		}
		if p.at(tokLParen) {
			args, end, ok := p.parseArguments()
			if !ok {
				return Expression{}, false
			}
			expr.Kind = FunctionCall
			expr.Arguments = args
			expr.Span.End = end
		}
		return expr, true
	}
	p.unexpected(tok, "where a value was expected")
	return Expression{}, false
}

func (p *parser) parseArray() (Expression, bool) {
	open := p.advance()
	expr := Expression{Kind: ArrayValue, Span: open.span}
	for {
		p.skipNewlines()
		if closing, ok := p.accept(tokRBracket); ok {
			expr.Span.End = closing.span.End
			return expr, true
		}
		if len(expr.Elements) > 0 {
			if _, ok := p.accept(tokComma); !ok {
				p.unexpected(p.peek(), "in array, expected ',' or ']'")
				return Expression{}, false
			}
			p.skipNewlines()
			if closing, ok := p.accept(tokRBracket); ok {
				expr.Span.End = closing.span.End
				return expr, true
			}
		}
		elem, ok := p.parseExpression()
		if !ok {
			return Expression{}, false
		}
		expr.Elements = append(expr.Elements, elem)
	}
}
