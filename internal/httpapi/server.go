// Package httpapi exposes the gateway-facing HTTP surface: inbound chat
// messages, payment webhooks and health probes.
package httpapi

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"finbot/internal/bot"
	"finbot/internal/core"
	"finbot/internal/log"
	"finbot/internal/messaging"
	"finbot/internal/storage"
)

type Server struct {
	http.Server

	bot         *bot.Service
	store       storage.Store
	messenger   messaging.Messenger
	rateLimiter *rateLimiter
	logger      *log.Logger

	shutdownOnce sync.Once
}

// NewServer wires the routes. messenger may be nil; replies then travel only
// in the HTTP response instead of the outbound queue.
func NewServer(addr string, botSvc *bot.Service, store storage.Store, messenger messaging.Messenger, logger *log.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		bot:         botSvc,
		store:       store,
		messenger:   messenger,
		rateLimiter: newRateLimiter(),
		logger:      logger.WithComponent(log.ComponentHTTP),
	}

	mux.HandleFunc("POST /messages", s.withRequestLogging(s.handleInboundMessage))
	mux.HandleFunc("POST /payments/webhook/{userID}", s.withRequestLogging(s.handlePaymentWebhook))
	mux.HandleFunc("GET /payments/status/{userID}", s.withRequestLogging(s.handlePaymentStatus))
	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	return s
}

// Shutdown stops the server and its rate limiter cleanup goroutine.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.rateLimiter.stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

type inboundMessageRequest struct {
	Phone string `json:"phone"`
	Text  string `json:"text"`
}

type inboundMessageResponse struct {
	Reply string `json:"reply"`
}

func (s *Server) handleInboundMessage(w http.ResponseWriter, r *http.Request) {
	var req inboundMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Phone) == "" || strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "phone and text are required")
		return
	}

	reply, err := s.bot.HandleMessage(r.Context(), req.Phone, req.Text)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Message handling failed",
			log.FieldPhone, req.Phone,
			log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to process message")
		return
	}
	if reply == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if s.messenger != nil {
		if err := s.messenger.PublishOutbound(r.Context(), messaging.NewOutboundMessage(req.Phone, reply)); err != nil {
			s.logger.ErrorContext(r.Context(), "Failed to publish reply",
				log.FieldPhone, req.Phone,
				log.FieldError, err)
			writeError(w, http.StatusBadGateway, "failed to deliver reply")
			return
		}
	}

	writeJSON(w, http.StatusOK, inboundMessageResponse{Reply: reply})
}

type paymentWebhookRequest struct {
	Status string `json:"status"`
}

type paymentStatusResponse struct {
	UserID string `json:"user_id"`
	Status string `json:"status"`
}

// handlePaymentWebhook records a payment provider notification. An absent or
// empty status means the payment completed.
func (s *Server) handlePaymentWebhook(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")

	if _, err := s.store.FindUserByID(r.Context(), userID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to look up user")
		return
	}

	var req paymentWebhookRequest
	if r.Body != nil {
		// Tolerate an empty body
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	status := core.PaymentCompleted
	switch strings.ToUpper(strings.TrimSpace(req.Status)) {
	case "", string(core.PaymentCompleted):
	case string(core.PaymentPending):
		status = core.PaymentPending
	default:
		writeError(w, http.StatusBadRequest, "unknown payment status")
		return
	}

	if err := s.store.SetPaymentStatus(r.Context(), userID, status); err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to update payment status",
			log.FieldUserID, userID,
			log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to update payment status")
		return
	}

	s.logger.InfoContext(r.Context(), "Payment status updated",
		log.FieldUserID, userID,
		"status", string(status))
	writeJSON(w, http.StatusOK, paymentStatusResponse{UserID: userID, Status: string(status)})
}

func (s *Server) handlePaymentStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")

	if _, err := s.store.FindUserByID(r.Context(), userID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to look up user")
		return
	}

	status, err := s.store.GetPaymentStatus(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read payment status")
		return
	}
	writeJSON(w, http.StatusOK, paymentStatusResponse{UserID: userID, Status: string(status)})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// withRequestLogging adds a request ID, per-client rate limiting on POSTs and
// start/completion logs.
func (s *Server) withRequestLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		clientIP := r.Header.Get("X-Forwarded-For")
		if clientIP == "" {
			clientIP = r.Header.Get("X-Real-IP")
		}
		if clientIP == "" {
			clientIP = r.RemoteAddr
		}

		requestID := generateRequestID()
		logger := s.logger.With("request_id", requestID)
		ctx := r.Context()
		r = r.WithContext(ctx)

		logger.InfoContext(ctx, "Request started",
			log.FieldMethod, r.Method,
			log.FieldPath, r.URL.Path,
			"client_ip", clientIP)

		if r.Method == http.MethodPost && !s.rateLimiter.allow(clientIP) {
			logger.WarnContext(ctx, "Rate limit exceeded", "client_ip", clientIP)
			w.Header().Set("Retry-After", "60")
			http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
			return
		}

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		logger.InfoContext(ctx, "Request completed",
			log.FieldMethod, r.Method,
			log.FieldPath, r.URL.Path,
			log.FieldStatusCode, rw.statusCode,
			log.FieldDuration, time.Since(start).Milliseconds())
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
