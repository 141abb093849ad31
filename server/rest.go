package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ytgebes/biospace/pkg/domain"
)

// publicationJSON is a search result in API responses
type publicationJSON struct {
	Index int               `json:"index"`
	Title string            `json:"title"`
	Link  string            `json:"link"`
	Extra map[string]string `json:"extra,omitempty"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// apiSearchHandler returns publications whose title contains q
func (s *Server) apiSearchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 0 {
			renderError(w, r, fmt.Errorf("invalid limit %q", limitStr), http.StatusBadRequest)
			return
		}
		limit = l
	}

	pubs := s.dashboard.Find(query, limit)
	results := make([]publicationJSON, 0, len(pubs))
	for _, p := range pubs {
		results = append(results, publicationJSON{Index: p.Index, Title: p.Title, Link: p.Link, Extra: p.Extra})
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
}

// apiSummarizeHandler fetches and summarizes a document by URL
func (s *Server) apiSummarizeHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	url := strings.TrimSpace(req.URL)
	if url == "" {
		renderError(w, r, errors.New("url is required"), http.StatusBadRequest)
		return
	}

	res := s.dashboard.SummarizeURL(r.Context(), url)
	if !res.OK() {
		log.Printf("[WARN] summary of %s failed: %s", url, res.Err)
		renderJSON(w, r, statusFor(res.Kind), map[string]string{"error": res.Err, "kind": string(res.Kind)})
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{"url": url, "summary": res.Markdown})
}

// apiAskHandler answers a question within the caller's session chat
func (s *Server) apiAskHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	msgs, err := s.dashboard.Ask(r.Context(), sessionID(r), req.Question)
	if err != nil {
		if errStatus(err) >= http.StatusInternalServerError {
			log.Printf("[ERROR] failed to answer question: %v", err)
		}
		renderError(w, r, err, errStatus(err))
		return
	}

	answer := ""
	if len(msgs) > 0 {
		answer = msgs[len(msgs)-1].Content
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"answer":   answer,
		"messages": msgs,
	})
}

// apiLanguagesHandler lists supported UI languages
func (s *Server) apiLanguagesHandler(w http.ResponseWriter, r *http.Request) {
	langs := s.dashboard.Languages()
	if langs == nil {
		langs = []domain.Language{}
	}
	renderJSON(w, r, http.StatusOK, langs)
}
