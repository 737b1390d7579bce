package cmd

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mj1618/wincap/internal/platform"
	"github.com/mj1618/wincap/internal/version"
)

// mcpServer wraps the MCP server with the platform provider.
type mcpServer struct {
	provider *platform.Provider
	mcp      *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

// newMCPServer creates and configures an MCP server with the wincap tools.
func newMCPServer() (*mcpServer, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}

	s := &mcpServer{provider: provider}
	s.mcp = mcpserver.NewMCPServer("wincap", version.Version)
	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// list
	s.mcp.AddTool(
		mcp.NewTool("list",
			mcp.WithDescription("List visible, non-minimized top-level windows with their handle, title, and bounding rectangle"),
			mcp.WithString("title", mcp.Description("Filter windows by title substring")),
			mcp.WithBoolean("ignore-case", mcp.Description("Match the title filter case-insensitively")),
		),
		s.handleList,
	)

	// capture
	s.mcp.AddTool(
		mcp.NewTool("capture",
			mcp.WithDescription("Capture the first window matching a title substring to a timestamped image file and return the result"),
			mcp.WithString("target", mcp.Description("Title substring to match"), mcp.Required()),
			mcp.WithString("output-dir", mcp.Description("Destination directory for the image file"), mcp.Required()),
			mcp.WithString("image-format", mcp.Description("Image format: png, jpg, bmp (default: png)")),
			mcp.WithBoolean("ignore-case", mcp.Description("Match the title substring case-insensitively")),
			mcp.WithNumber("quality", mcp.Description("JPEG quality 1-100 (default: 80)")),
			mcp.WithNumber("scale", mcp.Description("Downscale factor 0.1-1.0 (default: 1.0)")),
		),
		s.handleCapture,
	)
}
