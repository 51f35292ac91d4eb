// Package lsp implements a diagnostics-only language server for CCS and
// CCS-VP sources: it parses and elaborates whatever the client has open and
// republishes the result as LSP diagnostics, with no completion or semantic
// token support.
package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Handler implements the LSP server handlers for CCS/CCS-VP.
type Handler struct {
	mu      sync.RWMutex
	content map[string]string
}

// NewHandler returns an empty Handler.
func NewHandler() *Handler {
	return &Handler{content: make(map[string]string)}
}

// Initialize advertises full-document sync and nothing else: this server
// only ever republishes diagnostics.
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
		},
	}, nil
}

func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error { return nil }

func (h *Handler) Shutdown(ctx *glsp.Context) error { return nil }

func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error { return nil }

// TextDocumentDidOpen re-reads the document and republishes diagnostics.
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	return h.refresh(ctx, params.TextDocument.URI)
}

// TextDocumentDidChange re-reads the document and republishes diagnostics.
// Editors that only keep unsaved changes in memory won't see them reflected
// here, since refresh always reads from disk.
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	return h.refresh(ctx, params.TextDocument.URI)
}

// TextDocumentDidClose forgets the buffer and clears its diagnostics.
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}
	h.mu.Lock()
	delete(h.content, path)
	h.mu.Unlock()
	publish(ctx, params.TextDocument.URI, nil)
	return nil
}

func (h *Handler) refresh(ctx *glsp.Context, uri protocol.DocumentUri) error {
	path, err := uriToPath(uri)
	if err != nil {
		return err
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	h.mu.Lock()
	h.content[path] = string(source)
	h.mu.Unlock()

	diagnostics := Diagnose(path, string(source))
	publish(ctx, uri, diagnostics)
	return nil
}

func publish(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func uriToPath(rawURI protocol.DocumentUri) (string, error) {
	u, err := url.Parse(string(rawURI))
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}
	path := u.Path
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path), nil
}

func ptrBool(b bool) *bool { return &b }

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind { return &k }
