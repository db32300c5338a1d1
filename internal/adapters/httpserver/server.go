package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxRequestBytes = 1 << 20

// MessageHandler is the inbound side of the core: one reply per
// (user, text) pair.
type MessageHandler interface {
	HandleMessage(ctx context.Context, userID, text string) string
}

// Server exposes the chat pipeline over HTTP. Each request runs on its
// own goroutine; per-user ordering is the handler's concern.
type Server struct {
	handler MessageHandler
	logger  *zap.Logger
}

func New(handler MessageHandler, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{handler: handler, logger: logger}
}

type chatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

type errorBody struct {
	Message string `json:"message"`
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /chat", s.handleChat)
	mux.HandleFunc("GET /{$}", s.handleRoot)
	return mux
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var req chatRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes)).Decode(&req); err != nil {
		s.logger.Warn("reject malformed chat request", zap.String("request_id", requestID), zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid request body"})
		return
	}
	if req.UserID == "" || req.Message == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "user_id and message are required"})
		return
	}

	reply := s.handler.HandleMessage(r.Context(), req.UserID, req.Message)

	// Message text is never logged: it may contain credentials.
	s.logger.Info("chat message handled",
		zap.String("request_id", requestID),
		zap.String("user_id", req.UserID),
	)

	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Finance Chatbot API is running!"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
