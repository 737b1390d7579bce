package cmd

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/wincap/internal/capture"
	"github.com/mj1618/wincap/internal/platform"
)

func (s *mcpServer) handleList(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	title := stringParam(params, "title", "")
	ignoreCase := boolParam(params, "ignore-case", false)

	windows, err := s.provider.Enumerator.ListWindows()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if title != "" {
		windows = filterWindows(windows, platform.MatchOptions{Target: title, IgnoreCase: ignoreCase})
	}

	b, _ := yaml.Marshal(windows)
	return mcp.NewToolResultText(string(b)), nil
}

func (s *mcpServer) handleCapture(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	opts := capture.Options{
		Target:     stringParam(params, "target", ""),
		OutputDir:  stringParam(params, "output-dir", ""),
		Format:     stringParam(params, "image-format", "png"),
		IgnoreCase: boolParam(params, "ignore-case", false),
		Quality:    intParam(params, "quality", 80),
		Scale:      floatParam(params, "scale", 1.0),
	}
	if opts.Target == "" {
		return mcp.NewToolResultError("target parameter is required"), nil
	}
	if opts.OutputDir == "" {
		return mcp.NewToolResultError("output-dir parameter is required"), nil
	}

	svc := capture.NewService(s.provider)
	result, err := svc.Run(opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	b, _ := yaml.Marshal(result)
	return mcp.NewToolResultText(string(b)), nil
}

// Parameter extraction helpers for MCP tool argument maps

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func intParam(params map[string]interface{}, key string, defaultVal int) int {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		case int64:
			return int(n)
		}
	}
	return defaultVal
}

func floatParam(params map[string]interface{}, key string, defaultVal float64) float64 {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}
	return defaultVal
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}
