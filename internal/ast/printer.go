package ast

import (
	"fmt"
	"strings"
)

const indentUnit = "    "

// printer renders canonical source. Statements are written one per line at
// the current indent; expressions are written inline, fully parenthesised
// where precedence could otherwise change on re-parse.
type printer struct {
	b      strings.Builder
	indent int
}

func (pr *printer) line(format string, args ...any) {
	pr.b.WriteString(strings.Repeat(indentUnit, pr.indent))
	pr.b.WriteString(fmt.Sprintf(format, args...))
	pr.b.WriteString("\n")
}

func (pr *printer) block(b *Block) {
	pr.indent++
	if b == nil || len(b.Statements) == 0 {
		pr.line("pass")
	} else {
		for _, s := range b.Statements {
			pr.stmt(s)
		}
	}
	pr.indent--
}

func (pr *printer) stmt(s Stmt) {
	switch s := s.(type) {
	case *LetStmt:
		kw := "let"
		if s.Const {
			kw = "const"
		}
		if s.Value == nil {
			pr.line("%s %s", kw, s.Name.Name)
		} else {
			pr.line("%s %s = %s", kw, s.Name.Name, pr.expr(s.Value))
		}
	case *ExprStmt:
		if fn, ok := s.Expr.(*FunctionLiteral); ok && !fn.Arrow {
			pr.line("(%s)", pr.expr(s.Expr))
		} else {
			pr.line("%s", pr.expr(s.Expr))
		}
	case *ReturnStmt:
		if s.Value == nil {
			pr.line("return")
		} else {
			pr.line("return %s", pr.expr(s.Value))
		}
	case *IfStmt:
		pr.line("if %s:", pr.expr(s.Condition))
		pr.block(s.Body)
		for _, elif := range s.Elifs {
			pr.line("elif %s:", pr.expr(elif.Condition))
			pr.block(elif.Body)
		}
		if s.Else != nil {
			pr.line("else:")
			pr.block(s.Else)
		}
	case *WhileStmt:
		pr.line("while %s:", pr.expr(s.Condition))
		pr.block(s.Body)
	case *ForStmt:
		names := make([]string, len(s.Targets))
		for i, t := range s.Targets {
			names[i] = t.Name
		}
		pr.line("for %s in %s:", strings.Join(names, ", "), pr.expr(s.Iterable))
		pr.block(s.Body)
	case *FunctionDecl:
		prefix := ""
		if s.Async {
			prefix = "async "
		}
		if s.Keyword == "function" && !s.Async && len(s.Body.Statements) == 0 {
			pr.line("function %s(%s) {}", s.Name.Name, pr.params(s.Params))
			break
		}
		pr.line("%s%s %s(%s):", prefix, s.Keyword, s.Name.Name, pr.params(s.Params))
		pr.block(s.Body)
	case *ClassDecl:
		if s.Superclass != nil {
			pr.line("class %s extends %s:", s.Name.Name, pr.expr(s.Superclass))
		} else {
			pr.line("class %s:", s.Name.Name)
		}
		pr.block(s.Body)
	case *MatchStmt:
		pr.line("match %s:", pr.expr(s.Subject))
		pr.indent++
		for _, arm := range s.Arms {
			pr.line("%s:", arm.Pattern.String())
			pr.block(arm.Body)
		}
		pr.indent--
	case *ImportStmt:
		pr.line("%s", s.String())
	case *ExportDecl:
		// Render the declaration, then prefix its first line.
		inner := &printer{indent: pr.indent}
		inner.stmt(s.Decl)
		text := inner.b.String()
		lead := strings.Repeat(indentUnit, pr.indent)
		pr.b.WriteString(lead + "export " + strings.TrimPrefix(text, lead))
	case *ExportDefault:
		pr.line("export default %s", pr.expr(s.Value))
	case *ExportNamed:
		pr.line("%s", s.String())
	case *BreakStmt:
		pr.line("break")
	case *ContinueStmt:
		pr.line("continue")
	case *PassStmt:
		pr.line("pass")
	case *TryStmt:
		pr.line("try:")
		pr.block(s.Body)
		for _, h := range s.Handlers {
			header := "except"
			if h.Type != nil {
				header += " " + h.Type.Name
			}
			if h.Name != nil {
				header += " as " + h.Name.Name
			}
			pr.line("%s:", header)
			pr.block(h.Body)
		}
		if s.Finally != nil {
			pr.line("finally:")
			pr.block(s.Finally)
		}
	case *WithStmt:
		if s.Name != nil {
			pr.line("with %s as %s:", pr.expr(s.Context), s.Name.Name)
		} else {
			pr.line("with %s:", pr.expr(s.Context))
		}
		pr.block(s.Body)
	default:
		pr.line("<unknown statement %T>", s)
	}
}

func (pr *printer) params(params []*Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = pr.param(p)
	}
	return strings.Join(parts, ", ")
}

func (pr *printer) param(p *Param) string {
	if p.Default == nil {
		return p.Name.Name
	}
	return p.Name.Name + " = " + pr.expr(p.Default)
}

func (pr *printer) exprList(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = pr.expr(e)
	}
	return strings.Join(parts, ", ")
}

// operand wraps composite expressions in parentheses.
func (pr *printer) operand(e Expr) string {
	switch e := e.(type) {
	case *BinaryExpr, *UnaryExpr, *ConditionalExpr, *AssignExpr, *FunctionLiteral:
		return "(" + pr.expr(e) + ")"
	default:
		return pr.expr(e)
	}
}

func (pr *printer) expr(e Expr) string {
	switch e := e.(type) {
	case *NumberLiteral:
		return e.Raw
	case *StringLiteral:
		return Quote(e.Value)
	case *BooleanLiteral:
		if e.Value {
			return "true"
		}
		return "false"
	case *NullLiteral:
		return "null"
	case *Identifier:
		return e.Name
	case *BinaryExpr:
		return pr.operand(e.Left) + " " + e.Op.String() + " " + pr.operand(e.Right)
	case *UnaryExpr:
		return e.Op.String() + pr.operand(e.Operand)
	case *CallExpr:
		return pr.operand(e.Callee) + "(" + pr.exprList(e.Args) + ")"
	case *MemberExpr:
		return pr.operand(e.Object) + "." + e.Property.Name
	case *IndexExpr:
		return pr.operand(e.Object) + "[" + pr.expr(e.Index) + "]"
	case *ArrayLiteral:
		return "[" + pr.exprList(e.Elements) + "]"
	case *ObjectLiteral:
		parts := make([]string, len(e.Properties))
		for i, p := range e.Properties {
			parts[i] = pr.property(p)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *FunctionLiteral:
		return pr.function(e)
	case *AssignExpr:
		return pr.expr(e.Target) + " " + e.Op.String() + " " + pr.expr(e.Value)
	case *ConditionalExpr:
		cond := pr.expr(e.Condition)
		switch e.Condition.(type) {
		case *ConditionalExpr, *AssignExpr, *FunctionLiteral:
			cond = "(" + cond + ")"
		}
		return cond + " ? " + pr.expr(e.Consequent) + " : " + pr.expr(e.Alternate)
	case *TemplateLiteral:
		var b strings.Builder
		b.WriteString("`")
		for i, q := range e.Quasis {
			b.WriteString(escapeTemplate(q))
			if i < len(e.Exprs) {
				b.WriteString("{" + pr.expr(e.Exprs[i]) + "}")
			}
		}
		b.WriteString("`")
		return b.String()
	case *MarkupElement:
		return pr.markup(e)
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("<unknown expression %T>", e)
	}
}

func (pr *printer) property(p *Property) string {
	if p.Shorthand {
		return pr.expr(p.Key)
	}
	return pr.expr(p.Key) + ": " + pr.expr(p.Value)
}

func (pr *printer) function(f *FunctionLiteral) string {
	var head string
	if f.Arrow {
		head = "(" + pr.params(f.Params) + ") =>"
		if f.Body == nil {
			body := pr.expr(f.ExprBody)
			if _, ok := f.ExprBody.(*ObjectLiteral); ok {
				body = "(" + body + ")"
			}
			return head + " " + body
		}
	} else {
		head = "function"
		if f.Name != nil {
			head += " " + f.Name.Name
		}
		head += "(" + pr.params(f.Params) + ")"
	}

	if f.Body == nil || len(f.Body.Statements) == 0 {
		return head + " {}"
	}
	inner := &printer{indent: pr.indent}
	inner.block(f.Body)
	return head + " {\n" + inner.b.String() + strings.Repeat(indentUnit, pr.indent) + "}"
}

func (pr *printer) markup(m *MarkupElement) string {
	var b strings.Builder
	b.WriteString("<" + m.Tag)
	for _, a := range m.Attributes {
		b.WriteString(" " + pr.attribute(a))
	}
	if m.SelfClosing {
		b.WriteString("/>")
		return b.String()
	}
	b.WriteString(">")
	for _, c := range m.Children {
		switch c := c.(type) {
		case *MarkupElement:
			b.WriteString(pr.markup(c))
		case *MarkupText:
			b.WriteString(c.Text)
		case *MarkupExpr:
			b.WriteString("{" + pr.expr(c.Expr) + "}")
		}
	}
	b.WriteString("</" + m.Tag + ">")
	return b.String()
}

func (pr *printer) attribute(a *MarkupAttribute) string {
	switch v := a.Value.(type) {
	case nil:
		return a.Name
	case *StringLiteral:
		return a.Name + "=" + Quote(v.Value)
	default:
		return a.Name + "={" + pr.expr(v) + "}"
	}
}

// Quote renders s as a double-quoted string literal the scanner decodes back to s.
func Quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case 0:
			b.WriteString(`\0`)
		default:
			if r < 0x20 || r == 0x7f {
				b.WriteString(fmt.Sprintf(`\u%04x`, r))
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

func escapeTemplate(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\', '`', '{', '}':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func stmtString(s Stmt) string {
	pr := &printer{}
	pr.stmt(s)
	return strings.TrimSuffix(pr.b.String(), "\n")
}

func exprString(e Expr) string {
	pr := &printer{}
	return pr.expr(e)
}

func (p *Program) String() string {
	pr := &printer{}
	for _, s := range p.Statements {
		pr.stmt(s)
	}
	return pr.b.String()
}

func (b *Block) String() string {
	pr := &printer{indent: -1}
	pr.block(b)
	return strings.TrimSuffix(pr.b.String(), "\n")
}

func (l *LetStmt) String() string       { return stmtString(l) }
func (e *ExprStmt) String() string      { return stmtString(e) }
func (r *ReturnStmt) String() string    { return stmtString(r) }
func (i *IfStmt) String() string        { return stmtString(i) }
func (w *WhileStmt) String() string     { return stmtString(w) }
func (f *ForStmt) String() string       { return stmtString(f) }
func (f *FunctionDecl) String() string  { return stmtString(f) }
func (c *ClassDecl) String() string     { return stmtString(c) }
func (m *MatchStmt) String() string     { return stmtString(m) }
func (e *ExportDecl) String() string    { return stmtString(e) }
func (e *ExportDefault) String() string { return stmtString(e) }
func (b *BreakStmt) String() string     { return "break" }
func (c *ContinueStmt) String() string  { return "continue" }
func (p *PassStmt) String() string      { return "pass" }
func (t *TryStmt) String() string       { return stmtString(t) }
func (w *WithStmt) String() string      { return stmtString(w) }

func (e *ElifClause) String() string {
	return "elif " + exprString(e.Condition) + ":"
}

func (e *ExceptClause) String() string {
	header := "except"
	if e.Type != nil {
		header += " " + e.Type.Name
	}
	if e.Name != nil {
		header += " as " + e.Name.Name
	}
	return header + ":"
}

func (a *MatchArm) String() string {
	return a.Pattern.String() + ":"
}

func (p *Param) String() string {
	pr := &printer{}
	return pr.param(p)
}

func (s *ImportSpec) String() string {
	if s.Alias != nil {
		return s.Name.Name + " as " + s.Alias.Name
	}
	return s.Name.Name
}

func specList(specs []*ImportSpec) string {
	parts := make([]string, len(specs))
	for i, s := range specs {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}

func (i *ImportStmt) String() string {
	source := Quote(i.Source.Value)
	if i.FromFirst {
		return "from " + source + " import " + specList(i.Specs)
	}

	var clauses []string
	if i.Default != nil {
		clauses = append(clauses, i.Default.Name)
	}
	if i.Namespace != nil {
		clauses = append(clauses, "* as "+i.Namespace.Name)
	}
	if i.Specs != nil {
		clauses = append(clauses, "{ "+specList(i.Specs)+" }")
	}
	if len(clauses) == 0 {
		return "import " + source
	}
	return "import " + strings.Join(clauses, ", ") + " from " + source
}

func (e *ExportNamed) String() string {
	text := "export { " + specList(e.Specs) + " }"
	if e.Source != nil {
		text += " from " + Quote(e.Source.Value)
	}
	return text
}

func (n *NumberLiteral) String() string   { return exprString(n) }
func (s *StringLiteral) String() string   { return exprString(s) }
func (b *BooleanLiteral) String() string  { return exprString(b) }
func (n *NullLiteral) String() string     { return "null" }
func (i *Identifier) String() string      { return i.Name }
func (b *BinaryExpr) String() string      { return exprString(b) }
func (u *UnaryExpr) String() string       { return exprString(u) }
func (c *CallExpr) String() string        { return exprString(c) }
func (m *MemberExpr) String() string      { return exprString(m) }
func (i *IndexExpr) String() string       { return exprString(i) }
func (a *ArrayLiteral) String() string    { return exprString(a) }
func (o *ObjectLiteral) String() string   { return exprString(o) }
func (f *FunctionLiteral) String() string { return exprString(f) }
func (a *AssignExpr) String() string      { return exprString(a) }
func (c *ConditionalExpr) String() string { return exprString(c) }
func (t *TemplateLiteral) String() string { return exprString(t) }
func (m *MarkupElement) String() string   { return exprString(m) }

func (p *Property) String() string {
	pr := &printer{}
	return pr.property(p)
}

func (a *MarkupAttribute) String() string {
	pr := &printer{}
	return pr.attribute(a)
}

func (t *MarkupText) String() string { return t.Text }

func (m *MarkupExpr) String() string { return "{" + exprString(m.Expr) + "}" }

func (p *LiteralPattern) String() string    { return exprString(p.Value) }
func (p *IdentifierPattern) String() string { return p.Name }
func (*WildcardPattern) String() string     { return "_" }
