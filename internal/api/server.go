// Package api exposes study-kit generation over HTTP: upload material,
// fetch the resulting session, chat with the tutor, download exports.
package api

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/config"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/extract"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/kit"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/kitgen"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/logging"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/mindmap"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/providers"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/study"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/util"
)

const maxUploadBytes = 32 << 20

type Server struct {
	cfg       config.Config
	log       *logging.Logger
	generator *kitgen.Generator
	tutor     *kitgen.Tutor
	store     *SessionStore
}

func NewServer(cfg config.Config, log *logging.Logger, provider providers.LLMProvider) *Server {
	if log == nil {
		log = logging.Nop()
	}
	return &Server{
		cfg:       cfg,
		log:       log,
		generator: kitgen.NewGenerator(provider, log, cfg.TutorBudget),
		tutor:     kitgen.NewTutor(provider, log, cfg.TutorBudget),
		store:     NewSessionStore(),
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/sessions", s.handleSessions)
	mux.HandleFunc("/sessions/", s.handleSessionsScoped)
	return withCORS(mux)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		sessions := s.store.List()
		summaries := make([]map[string]any, 0, len(sessions))
		for _, sess := range sessions {
			summaries = append(summaries, map[string]any{
				"id":         sess.ID,
				"title":      sess.Title,
				"language":   sess.Language,
				"flashcards": len(sess.Flashcards),
				"quiz":       len(sess.Quiz),
			})
		}
		writeJSON(w, http.StatusOK, map[string]any{"sessions": summaries})
	case http.MethodPost:
		s.handleCreateSession(w, r)
	default:
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
	}
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid multipart form: %w", err))
		return
	}

	in := kitgen.GenerateInput{
		Language:       strings.TrimSpace(r.FormValue("language")),
		NoteStyle:      kit.ParseNoteStyle(r.FormValue("note_style")),
		FlashcardCount: formInt(r, "flashcard_count", s.cfg.FlashcardCount),
		QuizCount:      formInt(r, "quiz_count", s.cfg.QuizCount),
	}
	if in.Language == "" {
		in.Language = s.cfg.Language
	}

	if content := strings.TrimSpace(r.FormValue("content")); content != "" {
		in.Content = util.TruncateRunes(util.SanitizeText(content), s.cfg.ContentBudget)
	} else {
		fh, ok := firstSingleFile(r.MultipartForm.File)
		if !ok {
			writeErr(w, http.StatusBadRequest, fmt.Errorf("no content provided"))
			return
		}
		res, err := s.extractUpload(fh)
		if err != nil {
			writeErr(w, http.StatusBadRequest, err)
			return
		}
		in.Content = res.Text
		in.Image = res.Image
	}

	sess, err := s.generator.GenerateStudyKit(r.Context(), in)
	if err != nil {
		status := http.StatusBadGateway
		if strings.Contains(err.Error(), "empty") {
			status = http.StatusBadRequest
		}
		writeErr(w, status, err)
		return
	}
	sess.ID = uuid.NewString()
	sess.OriginalText = in.Content
	if err := s.store.Put(sess); err != nil {
		writeErr(w, http.StatusConflict, err)
		return
	}
	s.log.Info("session created", "session_id", sess.ID, "title", sess.Title,
		"flashcards", len(sess.Flashcards), "quiz", len(sess.Quiz))
	writeJSON(w, http.StatusCreated, sess)
}

func (s *Server) extractUpload(fh *multipart.FileHeader) (extract.Result, error) {
	f, err := fh.Open()
	if err != nil {
		return extract.Result{}, fmt.Errorf("open upload: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		return extract.Result{}, fmt.Errorf("read upload: %w", err)
	}
	return extract.FromBytes(fh.Filename, data, s.cfg.ContentBudget)
}

func (s *Server) handleSessionsScoped(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(strings.TrimPrefix(r.URL.Path, "/sessions/"), "/"), "/")
	if len(parts) < 1 || parts[0] == "" {
		writeErr(w, http.StatusNotFound, fmt.Errorf("not found"))
		return
	}
	sess, ok := s.store.Get(parts[0])
	if !ok {
		writeErr(w, http.StatusNotFound, fmt.Errorf("session not found"))
		return
	}

	if len(parts) == 1 {
		if r.Method != http.MethodGet {
			writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
			return
		}
		writeJSON(w, http.StatusOK, sess)
		return
	}

	if len(parts) == 2 && parts[1] == "tutor" {
		if r.Method != http.MethodPost {
			writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
			return
		}
		s.handleTutor(w, r, sess)
		return
	}

	if len(parts) == 3 && parts[1] == "export" {
		if r.Method != http.MethodGet {
			writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
			return
		}
		s.handleExport(w, sess, parts[2])
		return
	}

	writeErr(w, http.StatusNotFound, fmt.Errorf("not found"))
}

func (s *Server) handleTutor(w http.ResponseWriter, r *http.Request, sess kit.StudySession) {
	var req struct {
		Question string            `json:"question"`
		History  []kitgen.TutorTurn `json:"history"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid json: %w", err))
		return
	}
	req.Question = strings.TrimSpace(req.Question)
	if req.Question == "" {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("question is required"))
		return
	}
	answer := s.tutor.Ask(r.Context(), req.Question, sess.OriginalText, req.History)
	writeJSON(w, http.StatusOK, map[string]any{"answer": answer})
}

func (s *Server) handleExport(w http.ResponseWriter, sess kit.StudySession, name string) {
	var body, contentType string
	switch name {
	case "flashcards.csv":
		body = study.NewDeck(sess.Flashcards).ExportCSV()
		contentType = "text/csv"
		name = "study-kit-quizlet.csv"
	case "outline.txt":
		body = mindmap.Outline(sess.Mindmap)
		contentType = "text/plain"
		name = "mindmap-numbered.txt"
	case "mindmap.mmd":
		body = mindmap.Mermaid(sess.Mindmap)
		contentType = "text/plain"
		name = "mindmap-mermaid.mmd"
	default:
		writeErr(w, http.StatusNotFound, fmt.Errorf("unknown export"))
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, body)
}

func formInt(r *http.Request, key string, fallback int) int {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func firstSingleFile(m map[string][]*multipart.FileHeader) (*multipart.FileHeader, bool) {
	if m == nil {
		return nil, false
	}
	for _, v := range m {
		if len(v) > 0 {
			return v[0], true
		}
	}
	return nil, false
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, err error) {
	apiErr := toAPIError(code, err)
	writeJSON(w, code, map[string]any{
		"error": map[string]any{
			"code":    apiErr.Code,
			"message": apiErr.Message,
		},
	})
}

type apiError struct {
	Code    string
	Message string
}

func toAPIError(status int, err error) apiError {
	msg := "Request failed."
	code := "SK-API-4000"

	switch {
	case status >= 500:
		if err != nil && providers.LooksOverloaded(err) {
			return apiError{
				Code:    "SK-LLM-5020",
				Message: "The server or proxy timed out. This usually happens with large files. Please try a much smaller snippet of text (approx. 2-3 paragraphs) or a clear screenshot.",
			}
		}
		return apiError{
			Code:    "SK-API-5000",
			Message: "Internal server error. Please retry or check service logs.",
		}
	case status == http.StatusBadRequest:
		code = "SK-API-4001"
		msg = "Invalid request. Check inputs and retry."
	case status == http.StatusNotFound:
		code = "SK-API-4004"
		msg = "Requested resource was not found."
	case status == http.StatusConflict:
		code = "SK-API-4009"
		msg = "Operation conflicts with current state. Retry after checking status."
	case status == http.StatusMethodNotAllowed:
		code = "SK-API-4005"
		msg = "This endpoint does not support the requested method."
	}

	// For 4xx, keep user-safe validation context only.
	if status >= 400 && status < 500 && err != nil {
		low := strings.ToLower(err.Error())
		switch {
		case strings.Contains(low, "question is required"):
			msg = "A tutor question is required."
		case strings.Contains(low, "no content provided"):
			msg = "Provide a file upload or a content field."
		case strings.Contains(low, "too short"):
			msg = "The extracted text is too short to study. Upload more detailed material."
		case strings.Contains(low, "no extractable text"):
			msg = "No readable text was found in the upload."
		case strings.Contains(low, "unsupported file type"):
			msg = "Unsupported file type. Upload text, Markdown, PDF, or an image."
		case strings.Contains(low, "invalid json"):
			msg = "Malformed JSON request body."
		}
	}

	return apiError{Code: code, Message: msg}
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
