package mcpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/prompt-gateway/internal/gateway"
	"github.com/povarna/generative-ai-agents/prompt-gateway/internal/llm"
	"github.com/povarna/generative-ai-agents/prompt-gateway/internal/llm/mocks"
	"github.com/povarna/generative-ai-agents/prompt-gateway/internal/models"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newTestGateway(t *testing.T, client llm.LLMClient) *gateway.Gateway {
	t.Helper()

	logger := zerolog.Nop()
	gw, err := gateway.New(client, gateway.Options{Model: "llama3.1:latest"}, &logger)
	if err != nil {
		t.Fatalf("Failed to create gateway: %v", err)
	}
	return gw
}

func TestPromptHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mocks.NewMockLLMClient(ctrl)
	mockClient.EXPECT().
		InvokeModel(gomock.Any(), llm.LLMRequest{Model: "llama3.1:latest", Prompt: "Hello How Are You?"}).
		Return(&llm.LLMResponse{Content: "I am fine."}, nil)

	handler := NewPromptHandler(newTestGateway(t, mockClient))

	result, out, err := handler(context.Background(), nil, PromptInput{Prompt: "Hello How Are You?"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result != nil {
		t.Errorf("Expected nil CallToolResult so the SDK fills in structured content")
	}
	if out.Response != "I am fine." {
		t.Errorf("Expected 'I am fine.', got '%s'", out.Response)
	}
}

func TestPromptHandler_BackendFailureIsNotAToolError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mocks.NewMockLLMClient(ctrl)
	mockClient.EXPECT().InvokeModel(gomock.Any(), gomock.Any()).Return(nil, errors.New("model not found"))

	handler := NewPromptHandler(newTestGateway(t, mockClient))

	_, out, err := handler(context.Background(), nil, PromptInput{Prompt: "Hi"})
	if err != nil {
		t.Fatalf("Expected backend failure to be masked, got error: %v", err)
	}
	if out.Response != models.FallbackResponse {
		t.Errorf("Expected fallback text, got '%s'", out.Response)
	}
}

func TestNewServer_CallPromptTool(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mocks.NewMockLLMClient(ctrl)
	mockClient.EXPECT().
		InvokeModel(gomock.Any(), llm.LLMRequest{Model: "llama3.1:latest", Prompt: "Hello How Are You?"}).
		Return(&llm.LLMResponse{Content: "I am fine."}, nil)

	ctx := context.Background()
	server := NewServer(newTestGateway(t, mockClient), "1.0.0")

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("Server connect failed: %v", err)
	}
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("Client connect failed: %v", err)
	}
	defer clientSession.Close()

	result, err := clientSession.CallTool(ctx, &mcp.CallToolParams{
		Name:      ToolName,
		Arguments: map[string]any{"prompt": "Hello How Are You?"},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("Expected successful tool result, got %+v", result)
	}

	raw, err := json.Marshal(result.StructuredContent)
	if err != nil {
		t.Fatalf("Failed to marshal structured content: %v", err)
	}
	var out PromptOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("Failed to decode tool output: %v", err)
	}
	if out.Response != "I am fine." {
		t.Errorf("Expected 'I am fine.', got '%s'", out.Response)
	}
}
