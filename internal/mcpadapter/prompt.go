package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/prompt-gateway/internal/gateway"
)

const ToolName = "prompt"

// PromptInput is the MCP tool input schema (matches HTTP API field names).
type PromptInput struct {
	Prompt string `json:"prompt" jsonschema:"the prompt to send to the model"`
}

type PromptOutput struct {
	Response string `json:"response" jsonschema:"generated text, or the fallback text when generation failed"`
}

// NewPromptHandler returns a tool handler backed by the given gateway.
// Pass the returned function to mcp.AddTool.
func NewPromptHandler(gw *gateway.Gateway) func(context.Context, *mcp.CallToolRequest, PromptInput) (*mcp.CallToolResult, PromptOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input PromptInput) (*mcp.CallToolResult, PromptOutput, error) {
		return nil, PromptOutput{Response: gw.Handle(ctx, input.Prompt)}, nil
	}
}

func NewServer(gw *gateway.Gateway, version string) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "prompt-gateway",
			Version: version,
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolName,
		Description: "Send a prompt to the configured local model and return the generated text",
	}, NewPromptHandler(gw))
	return server
}
