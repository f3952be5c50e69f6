package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"nac/grammar"
	"nac/internal/ast"
)

func programSymbols(program *ast.Program) []protocol.DocumentSymbol {
	return blockSymbols(program.Statements, false)
}

func blockSymbols(stmts []ast.Stmt, inClass bool) []protocol.DocumentSymbol {
	symbols := []protocol.DocumentSymbol{}
	for _, stmt := range stmts {
		if symbol, ok := stmtSymbol(stmt, inClass); ok {
			symbols = append(symbols, symbol)
		}
	}
	return symbols
}

func stmtSymbol(stmt ast.Stmt, inClass bool) (protocol.DocumentSymbol, bool) {
	switch s := stmt.(type) {
	case *ast.ExportDecl:
		return stmtSymbol(s.Decl, inClass)

	case *ast.FunctionDecl:
		if s.Name == nil {
			break
		}
		kind := protocol.SymbolKindFunction
		if inClass {
			kind = protocol.SymbolKindMethod
		}
		symbol := newSymbol(s, s.Name, kind)
		if s.Async {
			symbol.Detail = ptrString("async")
		}
		return symbol, true

	case *ast.ClassDecl:
		if s.Name == nil {
			break
		}
		symbol := newSymbol(s, s.Name, protocol.SymbolKindClass)
		if s.Superclass != nil {
			symbol.Detail = ptrString("extends " + s.Superclass.String())
		}
		if s.Body != nil {
			symbol.Children = blockSymbols(s.Body.Statements, true)
		}
		return symbol, true

	case *ast.LetStmt:
		if s.Name == nil {
			break
		}
		kind := protocol.SymbolKindVariable
		switch {
		case inClass:
			kind = protocol.SymbolKindField
		case s.Const:
			kind = protocol.SymbolKindConstant
		}
		return newSymbol(s, s.Name, kind), true
	}
	return protocol.DocumentSymbol{}, false
}

func newSymbol(node ast.Node, name *ast.Identifier, kind protocol.SymbolKind) protocol.DocumentSymbol {
	return protocol.DocumentSymbol{
		Name: name.Name,
		Kind: kind,
		Range: protocol.Range{
			Start: toProtocolPosition(node.NodePos().Line, node.NodePos().Column),
			End:   toProtocolPosition(node.NodeEndPos().Line, node.NodeEndPos().Column),
		},
		SelectionRange: protocol.Range{
			Start: toProtocolPosition(name.Pos.Line, name.Pos.Column),
			End:   toProtocolPosition(name.EndPos.Line, name.EndPos.Column),
		},
	}
}

// outlineSymbols is the flat symbol list for documents that do not parse.
// The outline has no name positions, so both ranges cover the opening keyword.
func outlineSymbols(source string) ([]protocol.DocumentSymbol, error) {
	decls, err := grammar.ParseOutline(source)
	if err != nil {
		return nil, err
	}

	symbols := make([]protocol.DocumentSymbol, 0, len(decls))
	for _, d := range decls {
		kind := protocol.SymbolKindFunction
		if d.Kind == "class" {
			kind = protocol.SymbolKindClass
		}
		start := toProtocolPosition(d.Line, d.Column)
		r := protocol.Range{Start: start, End: start}
		if d.Async {
			r.End.Character += uint32(len("async"))
		} else {
			r.End.Character += uint32(len(d.Kind))
		}
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:           d.Name,
			Kind:           kind,
			Range:          r,
			SelectionRange: r,
		})
	}
	return symbols, nil
}
