package grammar

import "fmt"

// knownPrimitives maps a bound-symbol type keyword directly to its shape.
// "vec", "repeated" and "sized" take their own parenthesized forms below
// and aren't listed here.
var knownPrimitives = map[string]BoundSymbolKind{
	"name": ShapeName,
	"u8":   ShapeU8,
	"u32":  ShapeU32,
	"i32":  ShapeI32,
	"u64":  ShapeU64,
	"i64":  ShapeI64,
	"f32":  ShapeF32,
	"f64":  ShapeF64,
}

// Parser turns grammar DSL source text into a Grammar model (spec §4.2).
type Parser struct {
	lex *lexer
	tok Token
}

// Parse parses the given grammar DSL source text.
func Parse(src string) (*Grammar, error) {
	p := &Parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var g Grammar
	for p.tok.Kind != TokEOF {
		nt, err := p.parseNonTerminal()
		if err != nil {
			return nil, err
		}
		g.NonTerminals = append(g.NonTerminals, nt)
	}
	return &g, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *Parser) errorf(format string, args ...any) error {
	return &ParseError{Pos: p.tok.Pos, Message: fmt.Sprintf(format, args...)}
}

func (p *Parser) expect(kind TokenKind) (Token, error) {
	if p.tok.Kind != kind {
		return Token{}, p.errorf("expected %s, found %s", kind, p.tok.Kind)
	}
	tok := p.tok
	if err := p.advance(); err != nil {
		return Token{}, err
	}
	return tok, nil
}

func (p *Parser) parseNonTerminal() (*NonTerminal, error) {
	nameTok, err := p.expect(TokIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokLBrace); err != nil {
		return nil, err
	}

	nt := &NonTerminal{Name: nameTok.Text}
	for p.tok.Kind != TokRBrace {
		production, err := p.parseProduction()
		if err != nil {
			return nil, err
		}
		nt.Productions = append(nt.Productions, production)
	}
	if _, err := p.expect(TokRBrace); err != nil {
		return nil, err
	}

	if len(nt.Productions) == 0 {
		return nil, &ParseError{Pos: nameTok.Pos, Message: fmt.Sprintf("non-terminal %q must have at least one production", nt.Name)}
	}
	return nt, nil
}

func (p *Parser) parseProduction() (*Production, error) {
	startPos := p.tok.Pos
	var production Production
	for p.tok.Kind != TokEquals {
		if p.tok.Kind == TokEOF {
			return nil, p.errorf("unexpected end of input inside production")
		}
		sym, err := p.parseSymbol()
		if err != nil {
			return nil, err
		}
		production.Symbols = append(production.Symbols, sym)
	}
	if len(production.Symbols) == 0 {
		return nil, &ParseError{Pos: startPos, Message: "production must have at least one symbol before '='"}
	}

	if _, err := p.expect(TokEquals); err != nil {
		return nil, err
	}
	rhsTok, err := p.expect(TokIdent)
	if err != nil {
		return nil, err
	}
	production.RHS = rhsTok.Text

	if _, err := p.expect(TokComma); err != nil {
		return nil, err
	}
	return &production, nil
}

func (p *Parser) parseSymbol() (Symbol, error) {
	if p.tok.Kind == TokInt {
		return p.parseLiteral()
	}
	if p.tok.Kind == TokIdent {
		nameTok, err := p.expect(TokIdent)
		if err != nil {
			return Symbol{}, err
		}
		if _, err := p.expect(TokColon); err != nil {
			return Symbol{}, err
		}
		bound, err := p.parseBoundSymbolShape(nameTok.Text)
		if err != nil {
			return Symbol{}, err
		}
		return Symbol{Bound: bound}, nil
	}
	return Symbol{}, p.errorf("expected a literal or a bound symbol, found %s", p.tok.Kind)
}

func (p *Parser) parseLiteral() (Symbol, error) {
	intTok, err := p.expect(TokInt)
	if err != nil {
		return Symbol{}, err
	}

	if p.tok.Kind != TokColon {
		if intTok.Value > 0xFF {
			return Symbol{}, &ParseError{Pos: intTok.Pos, Message: fmt.Sprintf("literal %d does not fit in a u8", intTok.Value)}
		}
		return Symbol{Literal: &Literal{Kind: LitU8, U8: byte(intTok.Value)}}, nil
	}

	if _, err := p.expect(TokColon); err != nil {
		return Symbol{}, err
	}
	tyTok, err := p.expect(TokIdent)
	if err != nil {
		return Symbol{}, err
	}

	switch tyTok.Text {
	case "u32":
		if intTok.Value > 0xFFFFFFFF {
			return Symbol{}, &ParseError{Pos: intTok.Pos, Message: "literal does not fit in a u32"}
		}
		return Symbol{Literal: &Literal{Kind: LitU32, U32: uint32(intTok.Value)}}, nil
	case "i32":
		if intTok.Value > 0xFFFFFFFF {
			return Symbol{}, &ParseError{Pos: intTok.Pos, Message: "literal does not fit in an i32"}
		}
		return Symbol{Literal: &Literal{Kind: LitI32, I32: int32(intTok.Value)}}, nil
	case "u64":
		return Symbol{Literal: &Literal{Kind: LitU64, U64: intTok.Value}}, nil
	case "i64":
		return Symbol{Literal: &Literal{Kind: LitI64, I64: int64(intTok.Value)}}, nil
	default:
		return Symbol{}, &ParseError{Pos: tyTok.Pos, Message: fmt.Sprintf("literal type must be one of u32, i32, u64, i64; found %q", tyTok.Text)}
	}
}

// parseBoundSymbolShape parses the shape following "name:", i.e. everything
// after the colon: vec(T), repeated(T), sized(S), name, u32, or a type
// reference.
func (p *Parser) parseBoundSymbolShape(fieldName string) (*BoundSymbol, error) {
	if p.tok.Kind != TokIdent {
		return nil, p.errorf("expected a shape keyword or type name, found %s", p.tok.Kind)
	}
	kw := p.tok.Text

	switch kw {
	case "vec", "repeated":
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(TokLParen); err != nil {
			return nil, err
		}
		elemTok, err := p.expect(TokIdent)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokRParen); err != nil {
			return nil, err
		}
		kind := ShapeVec
		if kw == "repeated" {
			kind = ShapeRepeated
		}
		return &BoundSymbol{Name: fieldName, Kind: kind, Elem: elemTok.Text}, nil

	case "sized":
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(TokLParen); err != nil {
			return nil, err
		}
		// A nested shape has no field name of its own; reuse the outer name
		// for error messages only.
		inner, err := p.parseBoundSymbolShape(fieldName)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokRParen); err != nil {
			return nil, err
		}
		return &BoundSymbol{Name: fieldName, Kind: ShapeSized, Inner: inner}, nil

	default:
		if shape, ok := knownPrimitives[kw]; ok {
			if err := p.advance(); err != nil {
				return nil, err
			}
			return &BoundSymbol{Name: fieldName, Kind: shape}, nil
		}
		// Not a keyword: a reference to another non-terminal.
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &BoundSymbol{Name: fieldName, Kind: ShapeType, Type: kw}, nil
	}
}
