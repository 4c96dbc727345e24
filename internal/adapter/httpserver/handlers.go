package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/fairyhunter13/ai-intake-agent/internal/config"
	"github.com/fairyhunter13/ai-intake-agent/internal/domain"
	"github.com/fairyhunter13/ai-intake-agent/internal/export"
	"github.com/fairyhunter13/ai-intake-agent/internal/usecase"
	"github.com/fairyhunter13/ai-intake-agent/pkg/sentiment"
)

// Server bundles handler dependencies.
type Server struct {
	Cfg      config.Config
	Sessions *usecase.SessionManager
}

// NewServer constructs a Server.
func NewServer(cfg config.Config, sessions *usecase.SessionManager) *Server {
	return &Server{Cfg: cfg, Sessions: sessions}
}

var (
	validateOnce sync.Once
	dtoValidator *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		dtoValidator = validator.New()
	})
	return dtoValidator
}

type messageRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

type sessionResponse struct {
	ID       string       `json:"id"`
	Greeting string       `json:"greeting"`
	Phase    domain.Phase `json:"phase"`
}

type replyResponse struct {
	Reply      string       `json:"reply"`
	Phase      domain.Phase `json:"phase"`
	Completion int          `json:"completion"`
}

// CreateSessionHandler starts a new screening session.
func (s *Server) CreateSessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, greeting := s.Sessions.Create(r.Context())
		LoggerFrom(r).Info("session created", slog.String("session_id", id))
		writeJSON(w, http.StatusCreated, sessionResponse{ID: id, Greeting: greeting, Phase: domain.PhaseGreeting})
	}
}

// MessageHandler processes one candidate message.
func (s *Server) MessageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		engine, ok := s.Sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, r, fmt.Errorf("%w: session", domain.ErrNotFound), nil)
			return
		}

		var req messageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid JSON body", domain.ErrInvalidArgument), nil)
			return
		}
		if err := getValidator().Struct(req); err != nil {
			writeError(w, r, fmt.Errorf("%w: message is required and at most 4000 characters", domain.ErrInvalidArgument), err.Error())
			return
		}

		ctx, cancel := s.processContext(r)
		defer cancel()
		reply := engine.ProcessMessage(ctx, req.Message)
		writeJSON(w, http.StatusOK, replyResponse{
			Reply:      reply,
			Phase:      engine.Phase(),
			Completion: engine.Profile().CompletionPercentage(),
		})
	}
}

// SummaryHandler reports session progress.
func (s *Server) SummaryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		engine, ok := s.Sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, r, fmt.Errorf("%w: session", domain.ErrNotFound), nil)
			return
		}
		writeJSON(w, http.StatusOK, engine.Summary())
	}
}

// ProfileHandler returns the candidate profile snapshot.
func (s *Server) ProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		engine, ok := s.Sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, r, fmt.Errorf("%w: session", domain.ErrNotFound), nil)
			return
		}
		writeJSON(w, http.StatusOK, engine.Profile())
	}
}

// ExportHandler returns the full JSON export of a session.
func (s *Server) ExportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		engine, ok := s.Sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, r, fmt.Errorf("%w: session", domain.ErrNotFound), nil)
			return
		}
		out, err := export.Prepare(engine, time.Now()).ToJSON()
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(out)
	}
}

// ExportCSVHandler returns the Q&A or candidate CSV per the kind parameter.
func (s *Server) ExportCSVHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		engine, ok := s.Sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, r, fmt.Errorf("%w: session", domain.ErrNotFound), nil)
			return
		}

		data := export.Prepare(engine, time.Now())
		var (
			out string
			err error
		)
		switch kind := r.URL.Query().Get("kind"); kind {
		case "", "qa":
			out, err = data.QAPairsCSV()
		case "candidate":
			out, err = data.CandidateCSV()
		default:
			writeError(w, r, fmt.Errorf("%w: kind must be qa or candidate", domain.ErrInvalidArgument), nil)
			return
		}
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(out))
	}
}

// InsightHandler returns the sentiment insight for the conversation so far.
func (s *Server) InsightHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		engine, ok := s.Sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, r, fmt.Errorf("%w: session", domain.ErrNotFound), nil)
			return
		}
		history := engine.History()
		entries := make([]sentiment.Entry, len(history))
		for i, m := range history {
			entries[i] = sentiment.Entry{Role: m.Role, Content: m.Content}
		}
		writeJSON(w, http.StatusOK, map[string]string{"insight": sentiment.Insight(entries)})
	}
}

// ResetHandler discards all session state and returns the fresh greeting.
func (s *Server) ResetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		ctx, cancel := s.processContext(r)
		defer cancel()
		greeting, err := s.Sessions.Reset(ctx, id)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: session", domain.ErrNotFound), nil)
			return
		}
		LoggerFrom(r).Info("session reset", slog.String("session_id", id))
		writeJSON(w, http.StatusOK, sessionResponse{ID: id, Greeting: greeting, Phase: domain.PhaseGreeting})
	}
}

// processContext caps one engine call at the configured processing timeout.
func (s *Server) processContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.Cfg.ProcessTimeout)
}
