package server

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/ytgebes/biospace/pkg/dashboard"
	"github.com/ytgebes/biospace/pkg/domain"
)

// pageView holds data for rendering the full dashboard page
type pageView struct {
	Version   string
	Query     string
	Language  string
	Strings   map[string]string
	Languages []domain.Language
	Results   resultsView
	Chat      chatView
}

// resultsView is the search results partial
type resultsView struct {
	Query   string
	Rows    []dashboard.Row
	Strings map[string]string
}

// rowView is a single result card
type rowView struct {
	Query   string
	Row     dashboard.Row
	Strings map[string]string
}

// chatView is the chat log partial
type chatView struct {
	Messages []domain.ChatMessage
	Strings  map[string]string
}

// uploadsView is the uploaded documents summaries partial
type uploadsView struct {
	Summaries []dashboard.UploadSummary
	Strings   map[string]string
}

// errStatus picks the HTTP status for an error returned by the dashboard
func errStatus(err error) int {
	if errors.Is(err, dashboard.ErrEmptyQuestion) {
		return http.StatusBadRequest
	}
	kind := domain.KindOf(err)
	if kind == domain.KindNone {
		return http.StatusInternalServerError
	}
	return statusFor(kind)
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// indexHandler displays the main dashboard page
func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	s.renderDashboard(w, r, r.URL.Query().Get("q"))
}

// searchHandler returns results for the query, as a partial for htmx or as the full page
func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query().Get("q")

	if !isHTMX(r) {
		s.renderDashboard(w, r, query)
		return
	}

	sid := sessionID(r)
	view, err := s.dashboard.Search(ctx, sid, query)
	if err != nil {
		s.respondWithError(w, errStatus(err), "Failed to search publications", err)
		return
	}
	lang, err := s.dashboard.Language(ctx, sid)
	if err != nil {
		s.respondWithError(w, errStatus(err), "Failed to load language", err)
		return
	}

	s.renderTemplate(w, "results", resultsView{Query: view.Query, Rows: view.Rows, Strings: lang.Strings})
}

// summarizeHandler fetches and summarizes one result row, returning the updated card
func (s *Server) summarizeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idx, err := strconv.Atoi(r.PathValue("idx"))
	if err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid row index", err)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid form data", err)
		return
	}
	query := r.FormValue("q")

	sid := sessionID(r)
	row, err := s.dashboard.SummarizeRow(ctx, sid, query, idx)
	if err != nil {
		s.respondWithError(w, errStatus(err), "Failed to summarize", err)
		return
	}
	if row.State() == domain.RowFailed {
		log.Printf("[WARN] summary for row %d of %q failed: %s", idx, query, row.Summary.Result.Err)
	}

	lang, err := s.dashboard.Language(ctx, sid)
	if err != nil {
		s.respondWithError(w, errStatus(err), "Failed to load language", err)
		return
	}

	s.renderTemplate(w, "row", rowView{Query: query, Row: row, Strings: lang.Strings})
}

// chatHandler answers a question and returns the whole chat log
func (s *Server) chatHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	sid := sessionID(r)
	msgs, err := s.dashboard.Ask(ctx, sid, r.FormValue("question"))
	if err != nil {
		s.respondWithError(w, errStatus(err), "Failed to answer", err)
		return
	}
	lang, err := s.dashboard.Language(ctx, sid)
	if err != nil {
		s.respondWithError(w, errStatus(err), "Failed to load language", err)
		return
	}

	s.renderTemplate(w, "chat", chatView{Messages: msgs, Strings: lang.Strings})
}

// languageHandler switches the UI language and asks htmx to reload the page
func (s *Server) languageHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	view, err := s.dashboard.SelectLanguage(r.Context(), sessionID(r), r.FormValue("lang"))
	if err != nil {
		s.respondWithError(w, errStatus(err), "Failed to select language", err)
		return
	}
	if view.Err != "" {
		s.respondWithError(w, http.StatusBadGateway, "Translation failed, showing English", errors.New(view.Err))
		return
	}

	if !isHTMX(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	w.Header().Set("HX-Refresh", "true")
	w.WriteHeader(http.StatusOK)
}

// columnsHandler returns dataset column names in the session language
func (s *Server) columnsHandler(w http.ResponseWriter, r *http.Request) {
	cols, err := s.dashboard.TranslateColumns(r.Context(), sessionID(r))
	if err != nil {
		s.respondWithError(w, errStatus(err), "Failed to translate column names", err)
		return
	}
	s.renderTemplate(w, "columns", cols)
}

// uploadHandler summarizes uploaded PDF files
func (s *Server) uploadHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxFormSize); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid upload", err)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Printf("[WARN] failed to remove upload temp files: %v", err)
		}
	}()

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		s.respondWithError(w, http.StatusBadRequest, "Invalid upload", errors.New("no files uploaded"))
		return
	}

	files := make([]dashboard.Upload, 0, len(headers))
	for _, fh := range headers {
		data, err := readUpload(fh)
		if err != nil {
			s.respondWithError(w, http.StatusBadRequest, "Invalid upload", err)
			return
		}
		files = append(files, dashboard.Upload{Name: fh.Filename, Data: data})
	}

	summaries := s.dashboard.SummarizeUpload(ctx, files)
	lang, err := s.dashboard.Language(ctx, sessionID(r))
	if err != nil {
		s.respondWithError(w, errStatus(err), "Failed to load language", err)
		return
	}

	s.renderTemplate(w, "uploads", uploadsView{Summaries: summaries, Strings: lang.Strings})
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", fh.Filename, err)
	}
	return data, nil
}

// renderDashboard renders the full page for query
func (s *Server) renderDashboard(w http.ResponseWriter, r *http.Request, query string) {
	page, err := s.dashboard.Page(r.Context(), sessionID(r), query)
	if err != nil {
		s.respondWithError(w, errStatus(err), "Failed to load page", err)
		return
	}

	strs := page.Language.Strings
	s.renderTemplate(w, "index.html", pageView{
		Version:   s.version,
		Query:     query,
		Language:  page.Language.Language,
		Strings:   strs,
		Languages: s.dashboard.Languages(),
		Results:   resultsView{Query: page.Search.Query, Rows: page.Search.Rows, Strings: strs},
		Chat:      chatView{Messages: page.Messages, Strings: strs},
	})
}
