package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/prompt-gateway/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/prompt-gateway/internal/gateway"
	"github.com/povarna/generative-ai-agents/prompt-gateway/internal/models"
	"github.com/rs/zerolog"
)

const Version = "1.0.0"

type Handler struct {
	gateway *gateway.Gateway
	logger  *zerolog.Logger
}

func NewHandler(gateway *gateway.Gateway, logger *zerolog.Logger) *Handler {
	return &Handler{
		gateway: gateway,
		logger:  logger,
	}
}

// POST /prompt
// Body: PromptRequest
// Returns: PromptResponse, with status 200 whether or not the backend succeeded
func (h *Handler) Prompt(req *restful.Request, resp *restful.Response) {
	promptRequest, err := readPromptRequest(req)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("model", h.gateway.Model()).
		Int("prompt_length", len(promptRequest.Prompt)).
		Msg("Process prompt")

	ctx := req.Request.Context()
	response := h.gateway.Handle(ctx, promptRequest.Prompt)

	if err := resp.WriteHeaderAndEntity(http.StatusOK, models.PromptResponse{Response: response}); err != nil {
		h.logger.Error().Err(err).Msg("Failed to write response")
	}
}

// Health handler GET /health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: Version,
	}

	if err := resp.WriteHeaderAndEntity(http.StatusOK, healthResponse); err != nil {
		h.logger.Error().Err(err).Msg("Failed to write response")
	}
}

// readPromptRequest decodes the whole body as one JSON document. Trailing
// data after the object is a parse failure.
func readPromptRequest(req *restful.Request) (models.PromptRequest, error) {
	var promptRequest models.PromptRequest

	body, err := io.ReadAll(req.Request.Body)
	if err != nil {
		return promptRequest, fmt.Errorf("failed to read request body: %w", err)
	}
	if err := json.Unmarshal(body, &promptRequest); err != nil {
		return promptRequest, fmt.Errorf("invalid request body: %w", err)
	}
	return promptRequest, nil
}
