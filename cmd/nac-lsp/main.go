// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"nac/internal/config"
	"nac/internal/lsp"
)

const lsName = "nac" // Name identifier for the language server

var (
	version = "0.1.0"
	handler protocol.Handler
)

func main() {
	configPath := flag.String("config", "", "config file (default: $NAC_CONFIG or ./nac.toml)")
	debug := flag.Bool("debug", false, "log the JSON-RPC traffic")
	tcp := flag.String("tcp", "", "listen on a TCP address instead of stdio")
	websocket := flag.String("websocket", "", "listen for WebSocket connections on an address instead of stdio")
	flag.Parse()

	cfg, err := config.Resolve(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// stdout carries the protocol, so logs go to stderr or the configured file
	var logFile *string
	if cfg.LSP.LogFile != "" {
		logFile = &cfg.LSP.LogFile
	}
	commonlog.Configure(cfg.LSP.LogVerbosity, logFile)
	log := commonlog.GetLogger("nac.lsp")

	nacHandler := lsp.NewNacHandler(cfg)

	handler = protocol.Handler{
		Initialize:                     nacHandler.Initialize,
		Initialized:                    nacHandler.Initialized,
		Shutdown:                       nacHandler.Shutdown,
		SetTrace:                       nacHandler.SetTrace,
		TextDocumentDidOpen:            nacHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           nacHandler.TextDocumentDidClose,
		TextDocumentDidChange:          nacHandler.TextDocumentDidChange,
		TextDocumentCompletion:         nacHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: nacHandler.TextDocumentSemanticTokensFull,
		TextDocumentDocumentSymbol:     nacHandler.TextDocumentDocumentSymbol,
		TextDocumentHover:              nacHandler.TextDocumentHover,
	}

	s := server.NewServer(&handler, lsName, *debug)

	log.Infof("starting %s language server %s", lsName, version)

	switch {
	case *tcp != "":
		err = s.RunTCP(*tcp)
	case *websocket != "":
		err = s.RunWebSocket(*websocket)
	default:
		err = s.RunStdio()
	}
	if err != nil {
		log.Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}
