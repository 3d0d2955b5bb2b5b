// Package server exposes project generation over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/codesmith-ai/codesmith/internal/preset"
	"github.com/codesmith-ai/codesmith/internal/scaffold"
)

// requestIDAlphabet keeps request IDs alphanumeric so they stay readable
// in access logs and headers
const requestIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// shutdownTimeout bounds how long in-flight generations may finish on stop
const shutdownTimeout = 10 * time.Second

// Generator runs one project generation (implemented by scaffold.Service)
type Generator interface {
	Generate(ctx context.Context, req scaffold.Request) (*scaffold.Summary, error)
}

// Server serves the codesmith HTTP API
type Server struct {
	generator Generator
}

// New creates a Server
func New(generator Generator) *Server {
	return &Server{
		generator: generator,
	}
}

type generateRequest struct {
	Prompt    string `json:"prompt"`
	Features  string `json:"features"`
	TechStack string `json:"tech_stack"`
	RepoName  string `json:"repo_name"`
	Token     string `json:"token"`
}

type generateResponse struct {
	Message       string   `json:"message"`
	ProjectPath   string   `json:"project_path"`
	Files         []string `json:"files"`
	RepositoryURL string   `json:"repository_url,omitempty"`
	Truncated     bool     `json:"truncated,omitempty"`
}

type examplePayload struct {
	Prompt    string `json:"prompt"`
	Features  string `json:"features"`
	TechStack string `json:"tech_stack"`
}

// Handler returns the routed handler with request-ID logging applied
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /generate", s.handleGenerate)
	mux.HandleFunc("POST /generate/simple", s.handleGenerateSimple)
	mux.HandleFunc("POST /generate/advanced", s.handleGenerateAdvanced)
	mux.HandleFunc("GET /examples", s.handleExamples)

	return s.withRequestID(mux)
}

// Run serves the API on the given port until ctx is cancelled
func (s *Server) Run(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	log.Printf("server listening on %s", srv.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		log.Printf("server stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "codesmith API is running.",
		"version": scaffold.Version,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, errors.New("prompt must not be empty"))
		return
	}

	summary, err := s.generator.Generate(r.Context(), scaffold.Request{
		Prompt:      req.Prompt,
		Features:    req.Features,
		TechStack:   req.TechStack,
		ProjectName: scaffold.DefaultProjectName(time.Now()),
		RepoName:    req.RepoName,
		Token:       req.Token,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, buildResponse("Project generated successfully", summary))
}

func (s *Server) handleGenerateSimple(w http.ResponseWriter, r *http.Request) {
	s.handlePreset(w, r, preset.Simple(), "Simple project generated successfully")
}

func (s *Server) handleGenerateAdvanced(w http.ResponseWriter, r *http.Request) {
	s.handlePreset(w, r, preset.Advanced(), "Advanced project generated successfully")
}

func (s *Server) handlePreset(w http.ResponseWriter, r *http.Request, p preset.Preset, message string) {
	summary, err := s.generator.Generate(r.Context(), scaffold.Request{
		Prompt:      p.Prompt,
		Features:    p.Features,
		TechStack:   p.TechStack,
		ProjectName: scaffold.PresetProjectName(p.Name, time.Now()),
		Strict:      p.Strict,
		Detailed:    p.Detailed,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, buildResponse(message, summary))
}

func (s *Server) handleExamples(w http.ResponseWriter, r *http.Request) {
	examples := preset.Examples()

	payload := make([]examplePayload, 0, len(examples))
	for _, ex := range examples {
		payload = append(payload, examplePayload{
			Prompt:    ex.Prompt,
			Features:  ex.Features,
			TechStack: ex.TechStack,
		})
	}

	writeJSON(w, http.StatusOK, map[string][]examplePayload{
		"examples": payload,
	})
}

// withRequestID tags every request with a short ID for log correlation
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := gonanoid.Generate(requestIDAlphabet, 8)
		if err != nil {
			id = "unknown"
		}
		w.Header().Set("X-Request-Id", id)

		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s (%s)", id, r.Method, r.URL.Path, time.Since(start))
	})
}

func buildResponse(message string, summary *scaffold.Summary) generateResponse {
	resp := generateResponse{
		Message:     message,
		ProjectPath: summary.ProjectPath,
		Files:       summary.Files,
		Truncated:   summary.Truncated,
	}
	if summary.Repository != nil {
		resp.RepositoryURL = summary.Repository.URL
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{
		"detail": err.Error(),
	})
}
