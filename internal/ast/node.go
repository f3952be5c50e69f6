package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

// Stmt is the closed set of statement nodes.
type Stmt interface {
	Node
	isStmt()
}

func (*LetStmt) isStmt()       {}
func (*ExprStmt) isStmt()      {}
func (*ReturnStmt) isStmt()    {}
func (*IfStmt) isStmt()        {}
func (*WhileStmt) isStmt()     {}
func (*ForStmt) isStmt()       {}
func (*FunctionDecl) isStmt()  {}
func (*ClassDecl) isStmt()     {}
func (*MatchStmt) isStmt()     {}
func (*ImportStmt) isStmt()    {}
func (*ExportDecl) isStmt()    {}
func (*ExportDefault) isStmt() {}
func (*ExportNamed) isStmt()   {}
func (*BreakStmt) isStmt()     {}
func (*ContinueStmt) isStmt()  {}
func (*PassStmt) isStmt()      {}
func (*TryStmt) isStmt()       {}
func (*WithStmt) isStmt()      {}

func (p *Program) NodePos() Position    { return p.Pos }
func (p *Program) NodeEndPos() Position { return p.EndPos }
func (*Program) NodeType() NodeType     { return PROGRAM }

func (b *Block) NodePos() Position    { return b.Pos }
func (b *Block) NodeEndPos() Position { return b.EndPos }
func (*Block) NodeType() NodeType     { return BLOCK }

func (l *LetStmt) NodePos() Position    { return l.Pos }
func (l *LetStmt) NodeEndPos() Position { return l.EndPos }
func (*LetStmt) NodeType() NodeType     { return LET_STMT }

func (e *ExprStmt) NodePos() Position    { return e.Pos }
func (e *ExprStmt) NodeEndPos() Position { return e.EndPos }
func (*ExprStmt) NodeType() NodeType     { return EXPR_STMT }

func (r *ReturnStmt) NodePos() Position    { return r.Pos }
func (r *ReturnStmt) NodeEndPos() Position { return r.EndPos }
func (*ReturnStmt) NodeType() NodeType     { return RETURN_STMT }

func (i *IfStmt) NodePos() Position    { return i.Pos }
func (i *IfStmt) NodeEndPos() Position { return i.EndPos }
func (*IfStmt) NodeType() NodeType     { return IF_STMT }

func (e *ElifClause) NodePos() Position    { return e.Pos }
func (e *ElifClause) NodeEndPos() Position { return e.EndPos }
func (*ElifClause) NodeType() NodeType     { return ELIF_CLAUSE }

func (w *WhileStmt) NodePos() Position    { return w.Pos }
func (w *WhileStmt) NodeEndPos() Position { return w.EndPos }
func (*WhileStmt) NodeType() NodeType     { return WHILE_STMT }

func (f *ForStmt) NodePos() Position    { return f.Pos }
func (f *ForStmt) NodeEndPos() Position { return f.EndPos }
func (*ForStmt) NodeType() NodeType     { return FOR_STMT }

func (f *FunctionDecl) NodePos() Position    { return f.Pos }
func (f *FunctionDecl) NodeEndPos() Position { return f.EndPos }
func (*FunctionDecl) NodeType() NodeType     { return FUNCTION_DECL }

func (p *Param) NodePos() Position    { return p.Pos }
func (p *Param) NodeEndPos() Position { return p.EndPos }
func (*Param) NodeType() NodeType     { return PARAM }

func (c *ClassDecl) NodePos() Position    { return c.Pos }
func (c *ClassDecl) NodeEndPos() Position { return c.EndPos }
func (*ClassDecl) NodeType() NodeType     { return CLASS_DECL }

func (m *MatchStmt) NodePos() Position    { return m.Pos }
func (m *MatchStmt) NodeEndPos() Position { return m.EndPos }
func (*MatchStmt) NodeType() NodeType     { return MATCH_STMT }

func (a *MatchArm) NodePos() Position    { return a.Pos }
func (a *MatchArm) NodeEndPos() Position { return a.EndPos }
func (*MatchArm) NodeType() NodeType     { return MATCH_ARM }

func (i *ImportStmt) NodePos() Position    { return i.Pos }
func (i *ImportStmt) NodeEndPos() Position { return i.EndPos }
func (*ImportStmt) NodeType() NodeType     { return IMPORT_STMT }

func (s *ImportSpec) NodePos() Position    { return s.Pos }
func (s *ImportSpec) NodeEndPos() Position { return s.EndPos }
func (*ImportSpec) NodeType() NodeType     { return IMPORT_SPEC }

func (e *ExportDecl) NodePos() Position    { return e.Pos }
func (e *ExportDecl) NodeEndPos() Position { return e.EndPos }
func (*ExportDecl) NodeType() NodeType     { return EXPORT_DECL }

func (e *ExportDefault) NodePos() Position    { return e.Pos }
func (e *ExportDefault) NodeEndPos() Position { return e.EndPos }
func (*ExportDefault) NodeType() NodeType     { return EXPORT_DEFAULT }

func (e *ExportNamed) NodePos() Position    { return e.Pos }
func (e *ExportNamed) NodeEndPos() Position { return e.EndPos }
func (*ExportNamed) NodeType() NodeType     { return EXPORT_NAMED }

func (b *BreakStmt) NodePos() Position    { return b.Pos }
func (b *BreakStmt) NodeEndPos() Position { return b.EndPos }
func (*BreakStmt) NodeType() NodeType     { return BREAK_STMT }

func (c *ContinueStmt) NodePos() Position    { return c.Pos }
func (c *ContinueStmt) NodeEndPos() Position { return c.EndPos }
func (*ContinueStmt) NodeType() NodeType     { return CONTINUE_STMT }

func (p *PassStmt) NodePos() Position    { return p.Pos }
func (p *PassStmt) NodeEndPos() Position { return p.EndPos }
func (*PassStmt) NodeType() NodeType     { return PASS_STMT }

func (t *TryStmt) NodePos() Position    { return t.Pos }
func (t *TryStmt) NodeEndPos() Position { return t.EndPos }
func (*TryStmt) NodeType() NodeType     { return TRY_STMT }

func (e *ExceptClause) NodePos() Position    { return e.Pos }
func (e *ExceptClause) NodeEndPos() Position { return e.EndPos }
func (*ExceptClause) NodeType() NodeType     { return EXCEPT_CLAUSE }

func (w *WithStmt) NodePos() Position    { return w.Pos }
func (w *WithStmt) NodeEndPos() Position { return w.EndPos }
func (*WithStmt) NodeType() NodeType     { return WITH_STMT }

func (n *NumberLiteral) NodePos() Position    { return n.Pos }
func (n *NumberLiteral) NodeEndPos() Position { return n.EndPos }
func (*NumberLiteral) NodeType() NodeType     { return NUMBER_LITERAL }

func (s *StringLiteral) NodePos() Position    { return s.Pos }
func (s *StringLiteral) NodeEndPos() Position { return s.EndPos }
func (*StringLiteral) NodeType() NodeType     { return STRING_LITERAL }

func (b *BooleanLiteral) NodePos() Position    { return b.Pos }
func (b *BooleanLiteral) NodeEndPos() Position { return b.EndPos }
func (*BooleanLiteral) NodeType() NodeType     { return BOOLEAN_LITERAL }

func (n *NullLiteral) NodePos() Position    { return n.Pos }
func (n *NullLiteral) NodeEndPos() Position { return n.EndPos }
func (*NullLiteral) NodeType() NodeType     { return NULL_LITERAL }

func (i *Identifier) NodePos() Position    { return i.Pos }
func (i *Identifier) NodeEndPos() Position { return i.EndPos }
func (*Identifier) NodeType() NodeType     { return IDENTIFIER }

func (b *BinaryExpr) NodePos() Position    { return b.Pos }
func (b *BinaryExpr) NodeEndPos() Position { return b.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }

func (u *UnaryExpr) NodePos() Position    { return u.Pos }
func (u *UnaryExpr) NodeEndPos() Position { return u.EndPos }
func (*UnaryExpr) NodeType() NodeType     { return UNARY_EXPR }

func (c *CallExpr) NodePos() Position    { return c.Pos }
func (c *CallExpr) NodeEndPos() Position { return c.EndPos }
func (*CallExpr) NodeType() NodeType     { return CALL_EXPR }

func (m *MemberExpr) NodePos() Position    { return m.Pos }
func (m *MemberExpr) NodeEndPos() Position { return m.EndPos }
func (*MemberExpr) NodeType() NodeType     { return MEMBER_EXPR }

func (i *IndexExpr) NodePos() Position    { return i.Pos }
func (i *IndexExpr) NodeEndPos() Position { return i.EndPos }
func (*IndexExpr) NodeType() NodeType     { return INDEX_EXPR }

func (a *ArrayLiteral) NodePos() Position    { return a.Pos }
func (a *ArrayLiteral) NodeEndPos() Position { return a.EndPos }
func (*ArrayLiteral) NodeType() NodeType     { return ARRAY_LITERAL }

func (o *ObjectLiteral) NodePos() Position    { return o.Pos }
func (o *ObjectLiteral) NodeEndPos() Position { return o.EndPos }
func (*ObjectLiteral) NodeType() NodeType     { return OBJECT_LITERAL }

func (p *Property) NodePos() Position    { return p.Pos }
func (p *Property) NodeEndPos() Position { return p.EndPos }
func (*Property) NodeType() NodeType     { return PROPERTY }

func (f *FunctionLiteral) NodePos() Position    { return f.Pos }
func (f *FunctionLiteral) NodeEndPos() Position { return f.EndPos }
func (*FunctionLiteral) NodeType() NodeType     { return FUNCTION_LITERAL }

func (a *AssignExpr) NodePos() Position    { return a.Pos }
func (a *AssignExpr) NodeEndPos() Position { return a.EndPos }
func (*AssignExpr) NodeType() NodeType     { return ASSIGN_EXPR }

func (c *ConditionalExpr) NodePos() Position    { return c.Pos }
func (c *ConditionalExpr) NodeEndPos() Position { return c.EndPos }
func (*ConditionalExpr) NodeType() NodeType     { return CONDITIONAL_EXPR }

func (t *TemplateLiteral) NodePos() Position    { return t.Pos }
func (t *TemplateLiteral) NodeEndPos() Position { return t.EndPos }
func (*TemplateLiteral) NodeType() NodeType     { return TEMPLATE_LITERAL }

func (m *MarkupElement) NodePos() Position    { return m.Pos }
func (m *MarkupElement) NodeEndPos() Position { return m.EndPos }
func (*MarkupElement) NodeType() NodeType     { return MARKUP_ELEMENT }

func (a *MarkupAttribute) NodePos() Position    { return a.Pos }
func (a *MarkupAttribute) NodeEndPos() Position { return a.EndPos }
func (*MarkupAttribute) NodeType() NodeType     { return MARKUP_ATTRIBUTE }

func (t *MarkupText) NodePos() Position    { return t.Pos }
func (t *MarkupText) NodeEndPos() Position { return t.EndPos }
func (*MarkupText) NodeType() NodeType     { return MARKUP_TEXT }

func (m *MarkupExpr) NodePos() Position    { return m.Pos }
func (m *MarkupExpr) NodeEndPos() Position { return m.EndPos }
func (*MarkupExpr) NodeType() NodeType     { return MARKUP_EXPR }

func (p *LiteralPattern) NodePos() Position    { return p.Pos }
func (p *LiteralPattern) NodeEndPos() Position { return p.EndPos }
func (*LiteralPattern) NodeType() NodeType     { return LITERAL_PATTERN }

func (p *IdentifierPattern) NodePos() Position    { return p.Pos }
func (p *IdentifierPattern) NodeEndPos() Position { return p.EndPos }
func (*IdentifierPattern) NodeType() NodeType     { return IDENTIFIER_PATTERN }

func (w *WildcardPattern) NodePos() Position    { return w.Pos }
func (w *WildcardPattern) NodeEndPos() Position { return w.EndPos }
func (*WildcardPattern) NodeType() NodeType     { return WILDCARD_PATTERN }
