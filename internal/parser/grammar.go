package parser

import (
	"jack-analyzer/internal/token"
	"jack-analyzer/internal/tree"
)

// ============================================================
// Program structure
// ============================================================

// class parses: 'class' className '{' classVarDec* subroutineDec* '}'
func (p *parser) class() {
	p.b.Open(tree.Class)
	p.expect(token.Keyword, "class")
	p.expect(token.Identifier)
	p.expect(token.Symbol, "{")
	for p.at(token.Keyword, classVarKinds...) {
		p.classVarDec()
	}
	for p.at(token.Keyword, subroutineKinds...) {
		p.subroutineDec()
	}
	p.expect(token.Symbol, "}")
	p.b.Close(tree.Class)
}

// classVarDec parses: ('static' | 'field') type varName (',' varName)* ';'
func (p *parser) classVarDec() {
	p.b.Open(tree.ClassVarDec)
	p.expect(token.Keyword, classVarKinds...)
	p.varType(primitiveTypes)
	p.varNames()
	p.b.Close(tree.ClassVarDec)
}

// varType parses a primitive type from keywords or a class name.
func (p *parser) varType(keywords []string) {
	if p.at(token.Identifier) {
		p.expect(token.Identifier)
		return
	}
	p.expectAs("type", token.Keyword, keywords...)
}

// varNames parses: varName (',' varName)* ';'
func (p *parser) varNames() {
	p.expect(token.Identifier)
	for p.at(token.Symbol, ",") {
		p.expect(token.Symbol, ",")
		p.expect(token.Identifier)
	}
	p.expect(token.Symbol, ";")
}

// subroutineDec parses:
// ('constructor' | 'function' | 'method') ('void' | type) name '(' parameterList ')' subroutineBody
func (p *parser) subroutineDec() {
	p.b.Open(tree.SubroutineDec)
	p.expect(token.Keyword, subroutineKinds...)
	p.varType(returnTypes)
	p.expect(token.Identifier)
	p.expect(token.Symbol, "(")
	p.parameterList()
	p.expect(token.Symbol, ")")
	p.subroutineBody()
	p.b.Close(tree.SubroutineDec)
}

// parameterList parses: ((type varName) (',' type varName)*)?
// The list ends at the first symbol, normally the closing parenthesis.
func (p *parser) parameterList() {
	p.b.Open(tree.ParameterList)
	if p.err == nil && !p.at(token.Symbol) {
		p.varType(primitiveTypes)
		p.expect(token.Identifier)
		for p.at(token.Symbol, ",") {
			p.expect(token.Symbol, ",")
			p.varType(primitiveTypes)
			p.expect(token.Identifier)
		}
	}
	p.b.Close(tree.ParameterList)
}

// subroutineBody parses: '{' varDec* statements '}'
func (p *parser) subroutineBody() {
	p.b.Open(tree.SubroutineBody)
	p.expect(token.Symbol, "{")
	for p.at(token.Keyword, "var") {
		p.varDec()
	}
	p.statements()
	p.expect(token.Symbol, "}")
	p.b.Close(tree.SubroutineBody)
}

// varDec parses: 'var' type varName (',' varName)* ';'
func (p *parser) varDec() {
	p.b.Open(tree.VarDec)
	p.expect(token.Keyword, "var")
	p.varType(primitiveTypes)
	p.varNames()
	p.b.Close(tree.VarDec)
}

// ============================================================
// Statements
// ============================================================

// statements parses: statement*
// An empty sequence leaves no branch behind. Reports whether any statement
// was parsed.
func (p *parser) statements() bool {
	p.b.Open(tree.Statements)
	for p.statement() {
	}
	return p.b.CloseNonEmpty(tree.Statements)
}

func (p *parser) statement() bool {
	if !p.at(token.Keyword, statementStarters...) {
		return false
	}
	switch p.src.Current().Lexeme {
	case "let":
		p.letStatement()
	case "if":
		p.ifStatement()
	case "while":
		p.whileStatement()
	case "do":
		p.doStatement()
	case "return":
		p.returnStatement()
	}
	return true
}

// letStatement parses: 'let' varName ('[' expression ']')? '=' expression ';'
func (p *parser) letStatement() {
	p.b.Open(tree.LetStatement)
	p.expect(token.Keyword, "let")
	p.expect(token.Identifier)
	if p.at(token.Symbol, "[") {
		p.expect(token.Symbol, "[")
		p.expression(true)
		p.expect(token.Symbol, "]")
	}
	p.expect(token.Symbol, "=")
	p.expression(true)
	p.expect(token.Symbol, ";")
	p.b.Close(tree.LetStatement)
}

// ifStatement parses:
// 'if' '(' expression ')' '{' statements '}' ('else' '{' statements '}')?
func (p *parser) ifStatement() {
	p.b.Open(tree.IfStatement)
	p.expect(token.Keyword, "if")
	p.condition()
	p.block()
	if p.at(token.Keyword, "else") {
		p.expect(token.Keyword, "else")
		p.block()
	}
	p.b.Close(tree.IfStatement)
}

// whileStatement parses: 'while' '(' expression ')' '{' statements '}'
func (p *parser) whileStatement() {
	p.b.Open(tree.WhileStatement)
	p.expect(token.Keyword, "while")
	p.condition()
	p.block()
	p.b.Close(tree.WhileStatement)
}

// doStatement parses: 'do' subroutineCall ';'
func (p *parser) doStatement() {
	p.b.Open(tree.DoStatement)
	p.expect(token.Keyword, "do")
	p.subroutineCall()
	p.expect(token.Symbol, ";")
	p.b.Close(tree.DoStatement)
}

// returnStatement parses: 'return' expression? ';'
func (p *parser) returnStatement() {
	p.b.Open(tree.ReturnStatement)
	p.expect(token.Keyword, "return")
	if !p.at(token.Symbol, ";") {
		p.expression(true)
	}
	p.expect(token.Symbol, ";")
	p.b.Close(tree.ReturnStatement)
}

// condition parses: '(' expression ')'
func (p *parser) condition() {
	p.expect(token.Symbol, "(")
	p.expression(true)
	p.expect(token.Symbol, ")")
}

// block parses: '{' statements '}'
func (p *parser) block() {
	p.expect(token.Symbol, "{")
	p.statements()
	p.expect(token.Symbol, "}")
}

// ============================================================
// Expressions
// ============================================================

// expression parses: term (op term)*
// When no term is present the branch is dropped; that is an error only if
// the expression is mandatory. Reports whether an expression was parsed.
func (p *parser) expression(mandatory bool) bool {
	p.b.Open(tree.Expression)
	if !p.term() {
		p.b.Abandon(tree.Expression)
		if mandatory {
			p.fail("expression", nil)
		}
		return false
	}
	for p.at(token.Symbol, binaryOps...) {
		p.expect(token.Symbol, binaryOps...)
		if !p.term() {
			p.fail("term", nil)
		}
	}
	p.b.Close(tree.Expression)
	return true
}

// term parses one of:
//
//	integerConstant | stringConstant | keywordConstant
//	varName | varName '[' expression ']' | subroutineCall
//	'(' expression ')' | unaryOp term
//
// An identifier is disambiguated by the token after it: '(' or '.' starts a
// subroutine call, '[' an array index, anything else is a variable.
// Reports false, leaving no branch, when the current token cannot start a
// term.
func (p *parser) term() bool {
	if p.err != nil || !p.src.HasMoreTokens() {
		return false
	}
	tok := p.src.Current()

	p.b.Open(tree.Term)
	switch {
	case tok.Is(token.IntConst), tok.Is(token.StringConst), tok.Is(token.Keyword, keywordConstants...):
		p.expect(tok.Category, tok.Lexeme)

	case tok.Is(token.Symbol, "("):
		p.expect(token.Symbol, "(")
		p.expression(true)
		p.expect(token.Symbol, ")")

	case tok.Is(token.Symbol, unaryOps...):
		p.expect(token.Symbol, unaryOps...)
		if !p.term() {
			p.fail("term", nil)
		}

	case tok.Is(token.Identifier):
		next, ok := p.next()
		switch {
		case ok && next.Is(token.Symbol, "(", "."):
			p.subroutineCall()
		case ok && next.Is(token.Symbol, "["):
			p.expect(token.Identifier)
			p.expect(token.Symbol, "[")
			p.expression(true)
			p.expect(token.Symbol, "]")
		default:
			p.expect(token.Identifier)
		}

	default:
		p.b.Abandon(tree.Term)
		return false
	}
	p.b.Close(tree.Term)
	return true
}

// subroutineCall parses: (className | varName '.')? subroutineName '(' expressionList ')'
// Its tokens are appended to the enclosing branch.
func (p *parser) subroutineCall() {
	p.expect(token.Identifier)
	if p.at(token.Symbol, ".") {
		p.expect(token.Symbol, ".")
		p.expect(token.Identifier)
	}
	p.expect(token.Symbol, "(")
	p.expressionList()
	p.expect(token.Symbol, ")")
}

// expressionList parses: (expression (',' expression)*)?
func (p *parser) expressionList() {
	p.b.Open(tree.ExpressionList)
	if p.expression(false) {
		for p.at(token.Symbol, ",") {
			p.expect(token.Symbol, ",")
			p.expression(true)
		}
	}
	p.b.Close(tree.ExpressionList)
}
