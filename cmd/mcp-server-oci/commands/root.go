// Package commands provides the CLI for the OCI MCP server.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jopsis/mcp-server-oci/internal/logging"
	"github.com/jopsis/mcp-server-oci/internal/profile"
	"github.com/jopsis/mcp-server-oci/internal/server"
	"github.com/jopsis/mcp-server-oci/internal/session"
)

var (
	// Version information set at build time
	Version   = "1.0.0"
	BuildTime = "dev"
)

var (
	profileName string
	useSSE      bool
	port        int
	debug       bool
)

var rootCmd = &cobra.Command{
	Use:   "mcp-server-oci",
	Short: "MCP server for Oracle Cloud Infrastructure",
	Long: `mcp-server-oci exposes Oracle Cloud Infrastructure operations
(compute, networking, storage, database, IAM, security, load balancing)
as MCP tools, with runtime profile switching against ~/.oci/config.

By default the server speaks MCP over stdio; pass --sse to serve the
SSE transport instead.`,
	Version: Version,
	RunE:    run,
}

func init() {
	rootCmd.Flags().StringVar(&profileName, "profile", "", "OCI profile to activate at startup (default: $OCI_CLI_PROFILE)")
	rootCmd.Flags().BoolVar(&useSSE, "sse", false, "Serve the SSE transport instead of stdio")
	rootCmd.Flags().IntVar(&port, "port", 45678, "Port for the SSE transport")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.SetVersionTemplate(fmt.Sprintf("mcp-server-oci %s (%s)\n", Version, BuildTime))
}

func run(cmd *cobra.Command, args []string) error {
	level := logging.InfoLevel
	if debug {
		level = logging.DebugLevel
	}
	// stdout carries the stdio transport, so logs stay on stderr.
	logging.Init(logging.Config{Level: level, Output: os.Stderr, Pretty: useSSE})

	sess := session.New(profile.NewRegistry(""), session.NewSDKFactory())

	name := profileName
	if name == "" {
		name = os.Getenv("OCI_CLI_PROFILE")
	}
	if name != "" {
		p, err := sess.SetProfile(name)
		if err != nil {
			return fmt.Errorf("activating profile %q: %w", name, err)
		}
		logging.Info().Str("profile", p.Name).Str("region", p.Region).Msg("profile activated")
	} else {
		logging.Info().Msg("no profile selected; use set_oci_profile")
	}

	srv := server.New(sess, Version)
	if useSSE {
		logging.Info().Int("port", port).Msg("serving SSE")
		return srv.ServeSSE(port)
	}
	logging.Info().Msg("serving stdio")
	return srv.ServeStdio()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
