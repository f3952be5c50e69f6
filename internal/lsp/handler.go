package lsp

import (
	"fmt"
	"sort"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"nac/internal/config"
	"nac/internal/parser"
	"nac/token"
)

var log = commonlog.GetLogger("nac.lsp")

// document is the server's view of one open text document.
type document struct {
	content string
	version protocol.Integer
	result  *parser.ParseResult
}

// NacHandler implements the LSP server handlers for nac documents. Documents
// are synchronized in full on every change.
type NacHandler struct {
	mu        sync.RWMutex
	documents map[protocol.DocumentUri]*document
	config    *config.Config
}

// NewNacHandler creates a handler. A nil config means the defaults.
func NewNacHandler(cfg *config.Config) *NacHandler {
	if cfg == nil {
		cfg = config.Default()
	}
	return &NacHandler{
		documents: make(map[protocol.DocumentUri]*document),
		config:    cfg,
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *NacHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
			DocumentSymbolProvider: ptrBool(true),
			HoverProvider:          ptrBool(true),
		},
	}, nil
}

func (h *NacHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (h *NacHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	return nil
}

func (h *NacHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *NacHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Infof("opened %s", params.TextDocument.URI)

	doc := h.update(params.TextDocument.URI, params.TextDocument.Version, params.TextDocument.Text)
	h.publish(ctx, params.TextDocument.URI, doc)
	return nil
}

// TextDocumentDidChange handles file change notifications from the editor.
// With full sync the last change carries the whole document.
func (h *NacHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Debugf("changed %s (version %d)", params.TextDocument.URI, params.TextDocument.Version)

	var text string
	var found bool
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text, found = c.Text, true
		case protocol.TextDocumentContentChangeEvent:
			if c.Range != nil {
				return fmt.Errorf("incremental change received for %s, only full sync is supported", params.TextDocument.URI)
			}
			text, found = c.Text, true
		}
	}
	if !found {
		return nil
	}

	doc := h.update(params.TextDocument.URI, params.TextDocument.Version, text)
	h.publish(ctx, params.TextDocument.URI, doc)
	return nil
}

// TextDocumentDidClose forgets the document and clears its diagnostics
func (h *NacHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Infof("closed %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.documents, params.TextDocument.URI)
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

// TextDocumentCompletion offers every keyword plus the identifiers already
// used in the document.
func (h *NacHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	keywords := token.Keywords()
	sort.Strings(keywords)

	items := make([]protocol.CompletionItem, 0, len(keywords))
	keywordKind := protocol.CompletionItemKindKeyword
	for _, kw := range keywords {
		items = append(items, protocol.CompletionItem{Label: kw, Kind: &keywordKind})
	}

	if doc, ok := h.document(params.TextDocument.URI); ok {
		variableKind := protocol.CompletionItemKindVariable
		seen := map[string]bool{}
		var names []string
		for _, tok := range doc.result.Tokens {
			if tok.Type == token.IDENTIFIER && !seen[tok.Lexeme] {
				seen[tok.Lexeme] = true
				names = append(names, tok.Lexeme)
			}
		}
		sort.Strings(names)
		for _, name := range names {
			items = append(items, protocol.CompletionItem{Label: name, Kind: &variableKind})
		}
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *NacHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc, ok := h.document(params.TextDocument.URI)
	if !ok {
		return nil, fmt.Errorf("document not open: %s", params.TextDocument.URI)
	}

	tokens, err := collectSemanticTokens(doc.content)
	if err != nil {
		return nil, fmt.Errorf("failed to highlight %s: %w", params.TextDocument.URI, err)
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(tokens),
	}, nil
}

// TextDocumentDocumentSymbol lists declarations. Documents that do not parse
// fall back to the grammar outline.
func (h *NacHandler) TextDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	doc, ok := h.document(params.TextDocument.URI)
	if !ok {
		return nil, fmt.Errorf("document not open: %s", params.TextDocument.URI)
	}

	if doc.result.Program != nil {
		return programSymbols(doc.result.Program), nil
	}
	symbols, err := outlineSymbols(doc.content)
	if err != nil {
		log.Warningf("no outline for %s: %s", params.TextDocument.URI, err)
		return []protocol.DocumentSymbol{}, nil
	}
	return symbols, nil
}

// TextDocumentHover describes the innermost syntax node under the cursor.
func (h *NacHandler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, ok := h.document(params.TextDocument.URI)
	if !ok || doc.result.Program == nil {
		return nil, nil
	}

	node := doc.result.NodeAt(fromProtocolPosition(params.Position))
	if node == nil {
		return nil, nil
	}

	start := toProtocolPosition(node.NodePos().Line, node.NodePos().Column)
	end := toProtocolPosition(node.NodeEndPos().Line, node.NodeEndPos().Column)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: fmt.Sprintf("**%s**\n\n```nac\n%s\n```", node.NodeType(), node.String()),
		},
		Range: &protocol.Range{Start: start, End: end},
	}, nil
}

func (h *NacHandler) document(uri protocol.DocumentUri) (*document, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	doc, ok := h.documents[uri]
	return doc, ok
}

// update reparses the document and stores the result.
func (h *NacHandler) update(uri protocol.DocumentUri, version protocol.Integer, content string) *document {
	doc := &document{content: content, version: version}
	if err := h.config.CheckSize([]byte(content)); err != nil {
		doc.result = &parser.ParseResult{Err: err}
	} else {
		doc.result = parser.ParseDocument(content)
	}
	if doc.result.Err != nil {
		log.Debugf("%s: %s", uri, doc.result.Err)
	}

	h.mu.Lock()
	h.documents[uri] = doc
	h.mu.Unlock()
	return doc
}

func (h *NacHandler) publish(ctx *glsp.Context, uri protocol.DocumentUri, doc *document) {
	sendDiagnosticNotification(ctx, uri, ConvertParseError(doc.result.Err))
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	log.Debugf("publishing %d diagnostic(s) for %s", len(diagnostics), uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func fromProtocolPosition(p protocol.Position) token.Position {
	return token.Position{Line: int(p.Line) + 1, Column: int(p.Character) + 1}
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
