/*
File    : lox/internal/parser/declarations.go

declaration() and its three sub-forms (class, fun, var). Each returns nil
and leaves the parser synchronized if its body raised a parseError; the
statement loop in Parse simply skips a nil result.
*/
package parser

import (
	"github.com/golox/lox/internal/ast"
	"github.com/golox/lox/internal/token"
)

func (p *Parser) declaration() ast.Stmt {
	stmt, err := p.declarationE()
	if err != nil {
		p.synchronize()
		return nil
	}
	return stmt
}

func (p *Parser) declarationE() (ast.Stmt, error) {
	switch {
	case p.match(token.CLASS):
		return p.classDeclaration()
	case p.match(token.FUN):
		return p.function("function")
	case p.match(token.VAR):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

// classDeclaration parses `class Name [< Parent] { method* }`. When the
// `< Parent` clause is absent the parser synthesizes a reference to the
// built-in empty `Object` class and records that the superclass was
// implicit so the resolver can tell real subclasses from this bootstrap
// case.
func (p *Parser) classDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.IDENTIFIER, "Expect class name.")
	if err != nil {
		return nil, err
	}

	// Self-inheritance (`class Foo < Foo {}`) is diagnosed by the
	// resolver, not here; the parser only records whether a `< Parent`
	// clause was written at all.
	superclass := &ast.Variable{Name: token.New(token.IDENTIFIER, "Object", name.Line)}
	explicit := false
	if p.match(token.LESS) {
		superName, err := p.consume(token.IDENTIFIER, "Expect superclass name.")
		if err != nil {
			return nil, err
		}
		superclass = &ast.Variable{Name: superName}
		explicit = true
	}

	if _, err := p.consume(token.LEFT_BRACE, "Expect '{' before class body."); err != nil {
		return nil, err
	}

	var methods []*ast.Fun
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		method, err := p.function("method")
		if err != nil {
			return nil, err
		}
		methods = append(methods, method.(*ast.Fun))
	}
	if _, err := p.consume(token.RIGHT_BRACE, "Expect '}' after class body."); err != nil {
		return nil, err
	}

	return &ast.Class{
		Name:                  name,
		Superclass:            superclass,
		HasExplicitSuperclass: explicit,
		Methods:               methods,
	}, nil
}

// function parses a `fun`-less function/method body shared by top-level
// functions and class methods: `name(params) { body }`. kind is only used
// for diagnostic wording ("function" vs "method").
func (p *Parser) function(kind string) (ast.Stmt, error) {
	name, err := p.consume(token.IDENTIFIER, "Expect "+kind+" name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LEFT_PAREN, "Expect '(' after "+kind+" name."); err != nil {
		return nil, err
	}

	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			param, err := p.consume(token.IDENTIFIER, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(token.RIGHT_PAREN, "Expect ')' after parameters."); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LEFT_BRACE, "Expect '{' before "+kind+" body."); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.Fun{Name: name, Params: params, Body: body}, nil
}

// varDeclaration parses `var name [= init];`. A bare `var x;` is
// desugared to an explicit `nil` initializer.
func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var initializer ast.Expr = &ast.Literal{Value: nil}
	if p.match(token.EQUAL) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &ast.Var{Name: name, Initializer: initializer}, nil
}
