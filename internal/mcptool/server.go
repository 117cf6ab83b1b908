// Package mcptool exposes the registry and renderer over MCP so the
// downstream text-generation tool can pull prompts directly instead of
// reading the generated file tree.
package mcptool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/agentic-research/promptgen/internal/generate"
	"github.com/agentic-research/promptgen/internal/prompt"
	"github.com/agentic-research/promptgen/internal/registry"
)

// topicEntry is the list_topics wire shape.
type topicEntry struct {
	TopicIndex  int    `json:"topic_index"`
	TopicName   string `json:"topic_name"`
	SectionName string `json:"section_name"`
	Path        string `json:"path"`
}

// NewServer builds an MCP server over a validated registry.
func NewServer(reg *registry.Registry, template string, version string) *server.MCPServer {
	if template == "" {
		template = prompt.DefaultTemplate
	}

	s := server.NewMCPServer("promptgen", version,
		server.WithToolCapabilities(false),
	)

	listTool := mcp.NewTool("list_topics",
		mcp.WithDescription("List every topic in the registry with its section and resolved output path."),
	)
	s.AddTool(listTool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entries := make([]topicEntry, 0, reg.Len())
		for _, rec := range reg.Records() {
			_, file := generate.ResolvePath(rec)
			entries = append(entries, topicEntry{
				TopicIndex:  rec.TopicIndex,
				TopicName:   rec.TopicName,
				SectionName: rec.SectionName,
				Path:        file,
			})
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	})

	renderTool := mcp.NewTool("render_prompt",
		mcp.WithDescription("Render the full article prompt for one topic."),
		mcp.WithNumber("topic_index",
			mcp.Required(),
			mcp.Description("Global topic index, as listed by list_topics."),
		),
	)
	s.AddTool(renderTool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		idx, err := req.RequireInt("topic_index")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		rec, ok := reg.Find(idx)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("no topic with index %d", idx)), nil
		}
		text, err := prompt.Render(template, rec)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(text), nil
	})

	return s
}

// ServeStdio runs the server on stdin/stdout until the client disconnects.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
