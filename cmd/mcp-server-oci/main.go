// Command mcp-server-oci runs the OCI MCP server over stdio or SSE.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/jopsis/mcp-server-oci/cmd/mcp-server-oci/commands"
)

func main() {
	// Optional .env for OCI_CLI_PROFILE / OCI_CONFIG_FILE.
	_ = godotenv.Load()

	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
