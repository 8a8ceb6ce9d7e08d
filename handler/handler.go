package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"cardtext/internal/domain"
	"cardtext/internal/usecase"
)

const (
	serviceName         = "text-generation-api"
	correlationIDHeader = "X-Correlation-Id"
	generateRoute       = "/generate-text"
	healthRoute         = "/health"
)

type Generator interface {
	Generate(ctx context.Context, in usecase.GenerateInput) (usecase.GenerateOutput, error)
}

type Handler struct {
	gen Generator
}

type generateRequest struct {
	MessageType string          `json:"messageType"`
	Options     *optionsRequest `json:"options,omitempty"`
}

type optionsRequest struct {
	Enhanced *bool `json:"enhanced,omitempty"`
	Count    *int  `json:"count,omitempty"`
}

type generateResponse struct {
	Success     bool   `json:"success"`
	Text        string `json:"text"`
	MessageType string `json:"messageType"`
	Timestamp   string `json:"timestamp"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

func NewHandler(gen Generator) (*Handler, error) {
	if gen == nil {
		return nil, errors.New("handler: generator must not be nil")
	}
	return &Handler{gen: gen}, nil
}

func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	correlationID := headerValue(req.Headers, correlationIDHeader)
	if correlationID == "" {
		correlationID = uuid.NewString()
	}
	log := slog.With("correlationId", correlationID, "method", req.HTTPMethod, "path", req.Path)

	if req.HTTPMethod == http.MethodOptions {
		return respond(http.StatusOK, "", correlationID), nil
	}

	switch {
	case strings.HasSuffix(strings.TrimRight(req.Path, "/"), generateRoute):
		if req.HTTPMethod != http.MethodPost {
			return jsonResponse(http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"}, correlationID), nil
		}
		return h.generate(ctx, log, req, correlationID), nil
	case strings.HasSuffix(strings.TrimRight(req.Path, "/"), healthRoute):
		if req.HTTPMethod != http.MethodGet {
			return jsonResponse(http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"}, correlationID), nil
		}
		return jsonResponse(http.StatusOK, healthResponse{
			Status:    "healthy",
			Service:   serviceName,
			Timestamp: formatTimestamp(time.Now()),
		}, correlationID), nil
	default:
		return jsonResponse(http.StatusNotFound, errorResponse{Error: "Not found"}, correlationID), nil
	}
}

func (h *Handler) generate(ctx context.Context, log *slog.Logger, req events.APIGatewayProxyRequest, correlationID string) (resp events.APIGatewayProxyResponse) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("text generation panicked", "panic", r)
			resp = jsonResponse(http.StatusInternalServerError, errorResponse{
				Error:   "Failed to generate text",
				Code:    string(usecase.ErrorInternal),
				Message: "unexpected failure",
			}, correlationID)
		}
	}()

	raw, err := requestBody(req)
	if err != nil {
		log.Warn("undecodable request body", "err", err)
		return jsonResponse(http.StatusBadRequest, errorResponse{
			Error: "Invalid request body",
			Code:  string(usecase.ErrorInvalidInput),
		}, correlationID)
	}
	var body generateRequest
	if err := json.Unmarshal(raw, &body); err != nil {
		log.Warn("invalid request body", "err", err)
		return jsonResponse(http.StatusBadRequest, errorResponse{
			Error: "Invalid request body",
			Code:  string(usecase.ErrorInvalidInput),
		}, correlationID)
	}

	out, err := h.gen.Generate(ctx, usecase.GenerateInput{
		MessageType: body.MessageType,
		Options:     body.Options.toDomain(),
	})
	if err != nil {
		status, payload := mapError(err)
		if status < http.StatusInternalServerError {
			log.Warn("text generation rejected", "status", status, "err", err)
		} else {
			log.Error("text generation failed", "status", status, "err", err)
		}
		return jsonResponse(status, payload, correlationID)
	}

	return jsonResponse(http.StatusOK, generateResponse{
		Success:     true,
		Text:        out.Text,
		MessageType: out.MessageType,
		Timestamp:   formatTimestamp(out.Timestamp),
	}, correlationID)
}

// requestBody returns the raw JSON body. An absent body decodes as an empty
// object so the missing messageType is reported instead of a syntax error.
func requestBody(req events.APIGatewayProxyRequest) ([]byte, error) {
	body := req.Body
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return nil, fmt.Errorf("handler: decode base64 body: %w", err)
		}
		body = string(decoded)
	}
	if strings.TrimSpace(body) == "" {
		return []byte("{}"), nil
	}
	return []byte(body), nil
}

// toDomain applies the documented defaults to absent fields.
func (o *optionsRequest) toDomain() domain.Options {
	opts := domain.DefaultOptions()
	if o == nil {
		return opts
	}
	if o.Enhanced != nil {
		opts.Enhanced = *o.Enhanced
	}
	if o.Count != nil {
		opts.Count = *o.Count
	}
	return opts
}

func mapError(err error) (int, errorResponse) {
	var ue *usecase.Error
	if errors.As(err, &ue) {
		switch ue.Code {
		case usecase.ErrorInvalidInput:
			return http.StatusBadRequest, errorResponse{Error: ue.Message, Code: string(ue.Code)}
		default:
			msg := ue.Reason
			if ue.Err != nil {
				msg = ue.Err.Error()
			}
			return http.StatusInternalServerError, errorResponse{
				Error:   "Failed to generate text",
				Code:    string(ue.Code),
				Message: msg,
			}
		}
	}
	return http.StatusInternalServerError, errorResponse{
		Error:   "Failed to generate text",
		Code:    string(usecase.ErrorInternal),
		Message: err.Error(),
	}
}

func jsonResponse(status int, payload any, correlationID string) events.APIGatewayProxyResponse {
	buf, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to encode response", "err", err)
		return respond(http.StatusInternalServerError, `{"error":"Failed to generate text"}`, correlationID)
	}
	resp := respond(status, string(buf), correlationID)
	resp.Headers["Content-Type"] = "application/json"
	return resp
}

func respond(status int, body, correlationID string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
			"Access-Control-Allow-Headers": "Content-Type",
			correlationIDHeader:            correlationID,
		},
		Body: body,
	}
}

func headerValue(headers map[string]string, key string) string {
	for k, v := range headers {
		if strings.EqualFold(k, key) {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// formatTimestamp matches JavaScript's Date.toISOString.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
