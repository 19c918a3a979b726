// Package translate implements the single-pass translator: a recursive
// descent parser that emits stack machine code while it recognizes the
// source program.
package translate

import (
	"fmt"
	"strconv"

	"github.com/you-not-fish/smc/internal/codegen"
	"github.com/you-not-fish/smc/internal/syntax"
	"github.com/you-not-fish/smc/internal/types"
)

// Parser translates one compilation unit. It pulls tokens one at a time,
// declares names in its Resolver and appends code to its Emitter.
//
// The first error stops the translation: it is recorded, passed to the
// error handler, and the parser behaves as if the input ended there.
// Code emitted before or after an error is meaningless.
type Parser struct {
	tokens Tokenizer
	syms   Resolver
	code   Emitter
	labels codegen.Labeler

	tok syntax.Token // one-token lookahead

	errh  func(err error)
	first error
	abort bool

	depth    int
	maxDepth int
}

// NewParser creates a parser over tokens. errh, if non-nil, is called with
// the error that stops the translation.
func NewParser(tokens Tokenizer, syms Resolver, code Emitter, errh func(err error)) *Parser {
	p := &Parser{
		tokens: tokens,
		syms:   syms,
		code:   code,
		errh:   errh,
	}
	p.next()
	return p
}

// Parse translates the whole program and returns the first error, if any.
func (p *Parser) Parse() error {
	p.program()
	return p.first
}

// Labels returns the number of labels allocated so far.
func (p *Parser) Labels() int {
	return p.labels.Count()
}

// MaxDepth returns the deepest nesting of statements and expressions seen.
// Translation uses call stack proportional to it.
func (p *Parser) MaxDepth() int {
	return p.maxDepth
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token. After an error the lookahead stays at EOF.
func (p *Parser) next() {
	if p.abort {
		return
	}
	p.tok = p.tokens.Next()
	if !p.tok.Pos.IsValid() {
		p.tok.Pos = syntax.NewPos("", p.tokens.Line(), 0)
	}
	if p.tok.Kind == syntax.Invalid {
		p.error(&SyntaxError{Pos: p.tok.Pos, Expected: syntax.Invalid, Msg: fmt.Sprintf("invalid token '%s'", p.tok.Lit)})
	}
}

// got consumes the current token and returns true if it is k.
func (p *Parser) got(k syntax.Kind) bool {
	if p.tok.Kind == k {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it is k and reports an error otherwise.
func (p *Parser) want(k syntax.Kind) {
	if !p.got(k) {
		p.expected(k)
	}
}

// expected reports that k was required at the current token.
func (p *Parser) expected(k syntax.Kind) {
	text, _ := p.tokens.OperatorText(k)
	p.error(&SyntaxError{Pos: p.tok.Pos, Expected: k, Text: text})
}

// ----------------------------------------------------------------------------
// Error handling

// error records err if it is the first one and stops the translation.
func (p *Parser) error(err error) {
	if p.abort {
		return
	}
	p.first = err
	p.abort = true
	if p.errh != nil {
		p.errh(err)
	}
	p.tok = syntax.Token{Kind: syntax.EOF, Pos: p.tok.Pos}
}

func (p *Parser) syntaxError(msg string) {
	p.error(&SyntaxError{Pos: p.tok.Pos, Expected: p.tok.Kind, Msg: msg})
}

func (p *Parser) enter() {
	p.depth++
	if p.depth > p.maxDepth {
		p.maxDepth = p.depth
	}
}

func (p *Parser) leave() {
	p.depth--
}

// ----------------------------------------------------------------------------
// Symbols

// declare adds name to the symbol table.
func (p *Parser) declare(pos syntax.Pos, name string, typ types.BasicKind, shape types.Shape) {
	if existing := p.syms.Insert(types.NewSymbol(pos, name, typ, shape)); existing != nil {
		p.error(&DuplicateDeclarationError{Pos: pos, Name: name})
	}
}

// use reports whether the current name token is declared.
func (p *Parser) use() bool {
	if _, ok := p.syms.Lookup(p.tok.Lit); !ok {
		p.error(&UndeclaredIdentifierError{Pos: p.tok.Pos, Name: p.tok.Lit})
		return false
	}
	return true
}

// ----------------------------------------------------------------------------
// Declarations

// program parses: void main { decls stmts }
func (p *Parser) program() {
	p.want(syntax.Void)
	p.want(syntax.Main)
	p.want(syntax.Lbrace)

	for p.tok.Kind.IsType() {
		p.decl()
	}
	p.stmts()

	p.want(syntax.Rbrace)
	p.code.Emit(codegen.OpHalt)

	if p.tok.Kind != syntax.EOF {
		p.syntaxError("end of input expected after the closing bracket of main")
	}
}

// decl parses: type id optdecl { , id optdecl } ;
func (p *Parser) decl() {
	typ := p.typ()
	p.declIdent(typ)
	for p.got(syntax.Comma) {
		p.declIdent(typ)
	}
	p.want(syntax.Semi)
}

// typ parses: int | float | boolean
func (p *Parser) typ() types.BasicKind {
	typ := types.BasicFromToken(p.tok.Kind)
	if typ == types.Invalid {
		p.syntaxError("data type expected")
		return typ
	}
	p.next()
	return typ
}

// declIdent parses one declared name and its optional initializer or
// array size.
func (p *Parser) declIdent(typ types.BasicKind) {
	if p.tok.Kind != syntax.Name {
		p.syntaxError("identifier expected")
		return
	}
	name, pos := p.tok.Lit, p.tok.Pos
	if _, ok := p.syms.Lookup(name); ok {
		p.error(&DuplicateDeclarationError{Pos: pos, Name: name})
		return
	}
	p.next()

	switch p.tok.Kind {
	case syntax.Assign:
		// The name is visible in its own initializer.
		p.declare(pos, name, typ, types.Scalar)
		p.next()
		p.code.Emit(codegen.OpAddressOf, name)
		p.logicExpr()
		p.code.Emit(codegen.OpStore)

	case syntax.Lbrack:
		p.next()
		size := p.arraySize()
		p.declare(pos, name, typ, types.Array(size))
		p.code.Emit(codegen.OpArray, name, typ.String(), strconv.FormatInt(size, 10))
		p.want(syntax.Rbrack)

	default:
		p.declare(pos, name, typ, types.Scalar)
	}
}

// arraySize parses the integer literal between the brackets of an array
// declaration.
func (p *Parser) arraySize() int64 {
	tok := p.tok
	if tok.Kind != syntax.IntLit || tok.Err != nil {
		lit := ""
		if tok.Kind.IsLiteral() || tok.Kind == syntax.Name {
			lit = tok.Lit
		}
		p.error(&InvalidLiteralError{Pos: tok.Pos, Lit: lit})
		return 0
	}
	p.next()
	return tok.Int
}

// ----------------------------------------------------------------------------
// Statements

// startsStmt reports whether the current token can begin a statement.
func (p *Parser) startsStmt() bool {
	switch p.tok.Kind {
	case syntax.Int, syntax.Float, syntax.Boolean, syntax.Name,
		syntax.If, syntax.While, syntax.Do,
		syntax.Print, syntax.Println, syntax.Read, syntax.Lbrace:
		return true
	}
	return false
}

// stmts parses: { stmt }
func (p *Parser) stmts() {
	for p.startsStmt() {
		p.stmt()
	}
}

func (p *Parser) stmt() {
	p.enter()
	defer p.leave()

	switch p.tok.Kind {
	case syntax.Int, syntax.Float, syntax.Boolean:
		p.decl()

	case syntax.Name:
		p.assignment()
		p.want(syntax.Semi)

	case syntax.If:
		p.ifStmt()

	case syntax.While:
		p.whileStmt()

	case syntax.Do:
		p.doStmt()

	case syntax.Print:
		p.printStmt(codegen.OpPrint)

	case syntax.Println:
		p.printStmt(codegen.OpPrintln)

	case syntax.Read:
		p.readStmt()

	case syntax.Lbrace:
		p.next()
		p.stmts()
		p.want(syntax.Rbrace)

	default:
		p.syntaxError("statement expected")
	}
}

// assignment parses: id [ [ arithExpr ] ] = logicExpr
func (p *Parser) assignment() {
	if !p.use() {
		return
	}
	p.code.Emit(codegen.OpAddressOf, p.tok.Lit)
	p.next()
	p.optArrayIndex()
	p.want(syntax.Assign)
	p.logicExpr()
	p.code.Emit(codegen.OpStore)
}

// ifStmt parses: if ( logicExpr ) stmt [ else stmt ]
//
//	<cond>              <cond>
//	gofalse Lelse       gofalse Lelse
//	<then>              <then>
//	Lelse:              goto Lout
//	                    Lelse:
//	                    <else>
//	                    Lout:
func (p *Parser) ifStmt() {
	p.want(syntax.If)
	p.want(syntax.Lparen)
	p.logicExpr()
	p.want(syntax.Rparen)

	elseLabel := p.labels.New()
	p.code.Emit(codegen.OpGoFalse, elseLabel.String())

	p.stmt()

	if p.tok.Kind != syntax.Else {
		p.code.EmitLabel(elseLabel)
		return
	}

	out := p.labels.New()
	p.code.Emit(codegen.OpGoto, out.String())
	p.code.EmitLabel(elseLabel)
	p.next()
	p.stmt()
	p.code.EmitLabel(out)
}

// whileStmt parses: while ( logicExpr ) stmt
//
//	Ltest:
//	<cond>
//	gofalse Lout
//	<body>
//	goto Ltest
//	Lout:
func (p *Parser) whileStmt() {
	p.want(syntax.While)

	test := p.labels.New()
	p.code.EmitLabel(test)

	p.want(syntax.Lparen)
	p.logicExpr()
	p.want(syntax.Rparen)

	out := p.labels.New()
	p.code.Emit(codegen.OpGoFalse, out.String())

	p.stmt()

	p.code.Emit(codegen.OpGoto, test.String())
	p.code.EmitLabel(out)
}

// doStmt parses: do stmt while ( logicExpr ) ;
//
//	Ltest:
//	<body>
//	<cond>
//	gofalse Lout
//	goto Ltest
//	Lout:
func (p *Parser) doStmt() {
	p.want(syntax.Do)

	test := p.labels.New()
	p.code.EmitLabel(test)

	p.stmt()

	p.want(syntax.While)
	p.want(syntax.Lparen)
	p.logicExpr()

	out := p.labels.New()
	p.code.Emit(codegen.OpGoFalse, out.String())

	p.want(syntax.Rparen)

	p.code.Emit(codegen.OpGoto, test.String())
	p.code.EmitLabel(out)

	p.want(syntax.Semi)
}

// printStmt parses: print ( printArgs ) ; and println ( printArgs ) ;
func (p *Parser) printStmt(op codegen.Op) {
	p.next()
	p.want(syntax.Lparen)
	p.printArgs()
	p.code.Emit(op)
	p.want(syntax.Rparen)
	p.want(syntax.Semi)
}

// printArgs parses: ( string | arithExpr ) { , ( string | arithExpr ) }
func (p *Parser) printArgs() {
	for {
		if p.tok.Kind == syntax.StringLit {
			p.code.Emit(codegen.OpLiteral, p.tok.Lit)
			p.next()
		} else {
			p.arithExpr()
			p.code.Emit(codegen.OpOstream)
		}
		if !p.got(syntax.Comma) {
			return
		}
	}
}

// readStmt parses: read ( id [ [ arithExpr ] ] ) ;
func (p *Parser) readStmt() {
	p.want(syntax.Read)
	p.want(syntax.Lparen)

	if p.tok.Kind != syntax.Name {
		p.syntaxError("identifier expected")
		return
	}
	if !p.use() {
		return
	}
	p.code.Emit(codegen.OpAddressOf, p.tok.Lit)
	p.next()
	p.optArrayIndex()
	p.code.Emit(codegen.OpRead)

	p.want(syntax.Rparen)
	p.want(syntax.Semi)
}

// ----------------------------------------------------------------------------
// Expressions
//
// Precedence comes from the shape of the grammar alone, loosest first:
// || then && then ! then relational, + -, * / %, and right-associative **.

// logicExpr parses: logicTerm { || logicTerm }
func (p *Parser) logicExpr() {
	p.enter()
	defer p.leave()

	p.logicTerm()
	for p.got(syntax.OrOr) {
		p.logicTerm()
		p.code.Emit(codegen.OpOr)
	}
}

// logicTerm parses: logicFactor { && logicFactor }
func (p *Parser) logicTerm() {
	p.logicFactor()
	for p.got(syntax.AndAnd) {
		p.logicFactor()
		p.code.Emit(codegen.OpAnd)
	}
}

// logicFactor parses: ! logicExpr | true | false | relExpr
// The operand of ! extends over the whole logical expression that follows.
func (p *Parser) logicFactor() {
	switch p.tok.Kind {
	case syntax.Not:
		p.next()
		p.logicExpr()
		p.code.Emit(codegen.OpNot)

	case syntax.True:
		p.code.Emit(codegen.OpPush, "1")
		p.next()

	case syntax.False:
		p.code.Emit(codegen.OpPush, "0")
		p.next()

	default:
		p.relExpr()
	}
}

// relExpr parses: arithExpr [ relop arithExpr ]
func (p *Parser) relExpr() {
	p.arithExpr()

	if !p.tok.Kind.IsRelational() {
		return
	}
	rel := p.tok
	p.next()
	p.arithExpr()

	text, _ := p.tokens.OperatorText(rel.Kind)
	op, ok := codegen.Lookup(text)
	if !ok {
		p.error(&SyntaxError{Pos: rel.Pos, Expected: rel.Kind})
		return
	}
	p.code.Emit(op)
}

// optArrayIndex parses: [ [ arithExpr ] ]
// The index is added to the base address as is; elements are one address
// unit apart whatever their type.
func (p *Parser) optArrayIndex() {
	if !p.got(syntax.Lbrack) {
		return
	}
	p.arithExpr()
	p.want(syntax.Rbrack)
	p.code.Emit(codegen.OpAdd)
}

// arithExpr parses: arithTerm { ( + | - ) arithTerm }
func (p *Parser) arithExpr() {
	p.enter()
	defer p.leave()

	p.arithTerm()
	for {
		switch {
		case p.got(syntax.Add):
			p.arithTerm()
			p.code.Emit(codegen.OpAdd)
		case p.got(syntax.Sub):
			p.arithTerm()
			p.code.Emit(codegen.OpSub)
		default:
			return
		}
	}
}

// arithTerm parses: arithFactor { ( * | / | % ) arithFactor }
func (p *Parser) arithTerm() {
	p.arithFactor()
	for {
		switch {
		case p.got(syntax.Mul):
			p.arithFactor()
			p.code.Emit(codegen.OpMul)
		case p.got(syntax.Div):
			p.arithFactor()
			p.code.Emit(codegen.OpDiv)
		case p.got(syntax.Rem):
			p.arithFactor()
			p.code.Emit(codegen.OpRem)
		default:
			return
		}
	}
}

// arithFactor parses: baseFactor [ ** arithFactor ]
func (p *Parser) arithFactor() {
	p.baseFactor()
	if p.got(syntax.Pow) {
		p.enter()
		p.arithFactor()
		p.leave()
		p.code.Emit(codegen.OpPow)
	}
}

// baseFactor parses: ( arithExpr ) | id [ [ arithExpr ] ] | int | float
func (p *Parser) baseFactor() {
	switch p.tok.Kind {
	case syntax.Lparen:
		p.next()
		p.arithExpr()
		p.want(syntax.Rparen)

	case syntax.Name:
		if !p.use() {
			return
		}
		p.code.Emit(codegen.OpAddressOf, p.tok.Lit)
		p.next()
		p.optArrayIndex()
		p.code.Emit(codegen.OpLoad)

	case syntax.IntLit:
		if p.tok.Err != nil {
			p.error(&InvalidLiteralError{Pos: p.tok.Pos, Lit: p.tok.Lit})
			return
		}
		p.code.Emit(codegen.OpPush, strconv.FormatInt(p.tok.Int, 10))
		p.next()

	case syntax.FloatLit:
		if p.tok.Err != nil {
			p.error(&InvalidLiteralError{Pos: p.tok.Pos, Lit: p.tok.Lit})
			return
		}
		p.code.Emit(codegen.OpPush, p.tok.Lit)
		p.next()

	default:
		p.syntaxError("invalid arithmetic expression: open parenthesis, number or identifier expected")
	}
}
