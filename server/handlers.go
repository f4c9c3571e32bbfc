package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"

	"github_readme_generator/generator"
	"github_readme_generator/githost"
	"github_readme_generator/readme"
)

type sessionResp struct {
	SessionID  string               `json:"session_id"`
	Record     readme.ProjectRecord `json:"record"`
	Markdown   string               `json:"markdown,omitempty"`
	Warnings   []string             `json:"warnings,omitempty"`
	KeyInvalid bool                 `json:"key_invalid,omitempty"`
}

type fetchReq struct {
	RepoURL string `json:"repo_url"`
}

type settingsResp struct {
	HasAPIKey bool   `json:"has_api_key"`
	Model     string `json:"model,omitempty"`
}

type settingsPutReq struct {
	APIKey string `json:"api_key"`
}

func (s *Server) handleSections(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, readme.Sections)
}

func (s *Server) handleSettingsGet(w http.ResponseWriter, _ *http.Request) {
	cfg := s.cfg.Snapshot()
	writeJSON(w, http.StatusOK, settingsResp{HasAPIKey: cfg.APIKey != "", Model: cfg.Model})
}

func (s *Server) handleSettingsPut(w http.ResponseWriter, r *http.Request) {
	var req settingsPutReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.cfg.UpdateAPIKey(req.APIKey); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to persist settings")
		return
	}
	writeJSON(w, http.StatusOK, settingsResp{HasAPIKey: req.APIKey != ""})
}

func (s *Server) handleSessionCreate(w http.ResponseWriter, _ *http.Request) {
	id, sess := s.store.add()
	writeJSON(w, http.StatusCreated, sessionResp{SessionID: id, Record: sess.record})
}

// withSession resolves the session from the URL and runs fn with the
// session locked.
func (s *Server) withSession(w http.ResponseWriter, r *http.Request, fn func(id string, sess *session)) {
	id := chi.URLParam(r, "id")
	sess, ok := s.store.get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	fn(id, sess)
}

func (s *Server) handleSessionGet(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(id string, sess *session) {
		writeJSON(w, http.StatusOK, sessionResp{
			SessionID:  id,
			Record:     sess.record,
			Markdown:   sess.markdown,
			Warnings:   sess.warnings,
			KeyInvalid: sess.keyInvalid,
		})
	})
}

func (s *Server) handleRecordPut(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(id string, sess *session) {
		var rec readme.ProjectRecord
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		sess.record = rec
		writeJSON(w, http.StatusOK, sessionResp{SessionID: id, Record: sess.record})
	})
}

// handleFetch runs the bulk chain: host fetch, host merge, conditional
// draft generation, draft merge, fallback defaults. Draft failures are
// warnings; the host merge stays committed.
func (s *Server) handleFetch(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(id string, sess *session) {
		var req fetchReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), operationTimeout)
		defer cancel()

		info, err := s.host.FetchProject(ctx, req.RepoURL)
		if err != nil {
			writeHostError(w, err)
			return
		}

		sess.warnings = nil
		readme.HostPatch(*info).Apply(&sess.record)

		if sections, err := s.generateSections(ctx, *info); errors.Is(err, generator.ErrMissingAPIKey) {
			sess.warnings = append(sess.warnings,
				"Draft-generation API key not set. AI section generation skipped. Set the key in Settings.")
		} else if err != nil {
			sess.warnings = append(sess.warnings,
				fmt.Sprintf("AI section generation failed: %v. Using basic GitHub prefill.", err))
			if generator.IsAuthFailure(err) {
				sess.keyInvalid = true
			}
		} else if sections != nil {
			readme.DraftPatch(*sections).Apply(&sess.record)
		}
		readme.FallbackPatch(*info).ApplyIfEmpty(&sess.record)

		writeJSON(w, http.StatusOK, sessionResp{
			SessionID:  id,
			Record:     sess.record,
			Warnings:   sess.warnings,
			KeyInvalid: sess.keyInvalid,
		})
	})
}

// generateSections runs the draft step when a key is configured. A missing
// key is reported as a warning-grade error; no network call is made.
func (s *Server) generateSections(ctx context.Context, info readme.SourceRepoInfo) (*readme.DraftSections, error) {
	cfg := s.cfg.Snapshot()
	if cfg.APIKey == "" {
		return nil, generator.ErrMissingAPIKey
	}
	llm, err := s.newLLM(generator.LLMSettings{Model: cfg.Model, APIKey: cfg.APIKey, BaseURL: cfg.BaseURL})
	if err != nil {
		return nil, err
	}
	agent, err := generator.NewAgent(llm)
	if err != nil {
		return nil, err
	}
	return agent.GenerateSections(ctx, info)
}

func (s *Server) handleDescribe(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(id string, sess *session) {
		cfg := s.cfg.Snapshot()
		if cfg.APIKey == "" {
			writeError(w, http.StatusConflict, generator.ErrMissingAPIKey.Error())
			return
		}
		if strings.TrimSpace(sess.record.ProjectName) == "" {
			writeError(w, http.StatusBadRequest, "a project name is required before generating a description")
			return
		}
		llm, err := s.newLLM(generator.LLMSettings{Model: cfg.Model, APIKey: cfg.APIKey, BaseURL: cfg.BaseURL})
		if err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		agent, err := generator.NewAgent(llm)
		if err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), operationTimeout)
		defer cancel()

		desc, err := agent.GenerateDescription(ctx, sess.record.ProjectName, sess.record.Description)
		if err != nil {
			if generator.IsAuthFailure(err) {
				sess.keyInvalid = true
			}
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		sess.record.Description = desc
		writeJSON(w, http.StatusOK, sessionResp{SessionID: id, Record: sess.record, KeyInvalid: sess.keyInvalid})
	})
}

func (s *Server) handleAssemble(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(id string, sess *session) {
		sess.markdown = readme.Assemble(sess.record)
		writeJSON(w, http.StatusOK, sessionResp{SessionID: id, Record: sess.record, Markdown: sess.markdown})
	})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(_ string, sess *session) {
		if sess.markdown == "" {
			writeError(w, http.StatusConflict, "no generated document; assemble first")
			return
		}
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(sess.markdown), &buf); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(buf.Bytes())
	})
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(_ string, sess *session) {
		if sess.markdown == "" {
			writeError(w, http.StatusConflict, "no generated document; assemble first")
			return
		}
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="README.md"`)
		_, _ = w.Write([]byte(sess.markdown))
	})
}

// writeHostError maps source-host failures onto HTTP statuses. None of
// these mutate the record.
func writeHostError(w http.ResponseWriter, err error) {
	var nf *githost.NotFoundError
	var re *githost.RequestError
	switch {
	case errors.Is(err, githost.ErrInvalidURL):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &nf):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &re):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		writeError(w, http.StatusBadGateway, fmt.Sprintf("failed to fetch project details: %v", err))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
