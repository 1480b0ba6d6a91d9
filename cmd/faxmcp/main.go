// Command faxmcp serves the Fax.Plus tools over the Model Context
// Protocol on stdio, so that MCP clients can send faxes, check fax
// status and list fax history.
//
// Credentials are read from the FAXPLUS_ACCESS_TOKEN and
// FAXPLUS_USER_ID environment variables.
package main

import (
	"fmt"
	"os"

	mcpgolang "github.com/metoro-io/mcp-golang"
	"github.com/metoro-io/mcp-golang/transport/stdio"

	"github.com/openfax/faxtools/pkg/faxplus"
	"github.com/openfax/faxtools/tools"
	"github.com/openfax/faxtools/tools/fax"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "faxmcp:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := faxplus.ConfigFromEnv()
	if err != nil {
		return err
	}
	client, err := faxplus.NewClient(cfg)
	if err != nil {
		return err
	}

	sendTool, statusTool, historyTool, err := fax.New(client)
	if err != nil {
		return err
	}

	server := mcpgolang.NewServer(stdio.NewStdioServerTransport())
	for _, t := range []tools.IMCPTool{sendTool, statusTool, historyTool} {
		if err := t.RegisterMCP(server); err != nil {
			return err
		}
	}

	if err := server.Serve(); err != nil {
		return err
	}

	select {}
}
