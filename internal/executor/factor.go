package executor

import (
	"strconv"

	"github.com/macosten/swiftbasic-core/internal/token"
	"github.com/macosten/swiftbasic-core/internal/value"
)

// parseFactor is the highest-precedence level: literals, identifiers
// (possibly followed by a chain of Dict/Str subscripts), built-in function
// calls, parenthesized expressions, and dictionary literals.
func (e *Executor) parseFactor() (value.Value, error) {
	t := e.current()
	switch t.Kind {
	case token.INT:
		if _, err := e.advance(); err != nil {
			return nil, err
		}
		n, err := strconv.ParseInt(t.Text, 10, 64)
		if err != nil {
			return nil, e.badFactor("malformed integer literal " + t.Text)
		}
		return value.Int{V: n}, nil

	case token.DOUBLE:
		if _, err := e.advance(); err != nil {
			return nil, err
		}
		f, err := strconv.ParseFloat(t.Text, 64)
		if err != nil {
			return nil, e.badFactor("malformed double literal " + t.Text)
		}
		return value.Float{V: f}, nil

	case token.STRING:
		if _, err := e.advance(); err != nil {
			return nil, err
		}
		return value.Str{V: token.StringValue(t.Text)}, nil

	case token.LPAREN:
		if _, err := e.advance(); err != nil {
			return nil, err
		}
		v, err := e.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := e.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return v, nil

	case token.LBRACKET:
		return e.parseDictLiteral()

	case token.SIN, token.COS, token.TAN, token.SEC, token.CSC, token.COT,
		token.ASIN, token.ACOS, token.ATAN:
		return e.parseUnaryMathBuiltin(t.Kind)

	case token.RAND:
		return e.parseRandBuiltin()

	case token.LEN:
		return e.parseLenBuiltin()

	case token.COUNT:
		return e.parseCountBuiltin()

	case token.IDENT:
		return e.parseIdentifierFactor()

	default:
		return nil, e.badFactor("unexpected token " + t.Kind.String())
	}
}

// parseIdentifierFactor looks up name, then applies any chain of Dict or
// Str subscripts that directly follow it.
func (e *Executor) parseIdentifierFactor() (value.Value, error) {
	nameTok := e.current()
	if _, err := e.advance(); err != nil {
		return nil, err
	}
	v, ok := e.symbols.Get(nameTok.Text)
	if !ok {
		return nil, e.uninitializedSymbol(nameTok.Text)
	}
	for e.current().Kind == token.LBRACKET {
		switch cur := v.(type) {
		case *value.Dict:
			if _, err := e.advance(); err != nil {
				return nil, err
			}
			key, err := e.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := e.expect(token.RBRACKET); err != nil {
				return nil, err
			}
			found, ok := cur.Get(key)
			if !ok {
				return nil, e.uninitializedSymbol(nameTok.Text)
			}
			v = found
		case value.Str:
			if _, err := e.advance(); err != nil {
				return nil, err
			}
			key, err := e.parseExpression()
			if err != nil {
				return nil, err
			}
			idx, ok := key.(value.Int)
			if !ok {
				return nil, e.badSubscript("string index must be an integer")
			}
			if _, err := e.expect(token.RBRACKET); err != nil {
				return nil, err
			}
			g, ok := value.GraphemeAt(cur.V, idx.V)
			if !ok {
				return nil, e.badSubscript("string index out of range")
			}
			v = value.Str{V: g}
		default:
			return nil, e.cannotSubscript(nameTok.Text)
		}
	}
	return v, nil
}

// parseDictLiteral implements "[" (EXPR | EXPR ":" EXPR) ("," ...)? "]"
// with an auto-key counter starting at 0 for unkeyed elements.
func (e *Executor) parseDictLiteral() (value.Value, error) {
	if _, err := e.advance(); err != nil { // consume '['
		return nil, err
	}
	d := value.NewDict()
	if e.current().Kind == token.RBRACKET {
		if _, err := e.advance(); err != nil {
			return nil, err
		}
		return d, nil
	}
	counter := 0
	for {
		first, err := e.parseExpression()
		if err != nil {
			return nil, err
		}
		if e.current().Kind == token.COLON {
			if _, err := e.advance(); err != nil {
				return nil, err
			}
			val, err := e.parseExpression()
			if err != nil {
				return nil, err
			}
			d.Set(first, val)
		} else {
			d.Set(value.AutoKey(counter), first)
			counter++
		}
		if e.current().Kind != token.COMMA {
			break
		}
		if _, err := e.advance(); err != nil {
			return nil, err
		}
	}
	if _, err := e.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return d, nil
}
