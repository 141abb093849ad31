package server

import (
	"bytes"
	"html/template"
	"log"
	"net/http"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/ytgebes/biospace/pkg/dashboard"
	"github.com/ytgebes/biospace/pkg/domain"
)

var (
	markdown      = goldmark.New(goldmark.WithExtensions(extension.GFM))
	htmlPolicy    = bluemonday.UGCPolicy()
	englishLabels = domain.DefaultUIStrings()
)

// renderMarkdown converts model output to sanitized HTML
func renderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		log.Printf("[WARN] can't render markdown: %v", err)
		return template.HTML(template.HTMLEscapeString(src)) //nolint:gosec // escaped
	}
	return template.HTML(htmlPolicy.SanitizeBytes(buf.Bytes())) //nolint:gosec // sanitized
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"markdown": renderMarkdown,
		// t looks up a UI string, falling back to english for unknown keys
		"t": func(strs map[string]string, key string) string {
			if v, ok := strs[key]; ok && v != "" {
				return v
			}
			return englishLabels[key]
		},
		"isUser": func(role domain.Role) bool { return role == domain.RoleUser },
		"card": func(query string, row dashboard.Row, strs map[string]string) rowView {
			return rowView{Query: query, Row: row, Strings: strs}
		},
	}
}

// renderTemplate executes a named template, reporting failures inline
func (s *Server) renderTemplate(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("[ERROR] failed to render %s: %v", name, err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("[WARN] failed to write response: %v", err)
	}
}

// respondWithError logs the error and renders it as a visible inline message
func (s *Server) respondWithError(w http.ResponseWriter, code int, msg string, err error) {
	log.Printf("[WARN] %s: %v", msg, err)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	detail := msg
	if err != nil {
		detail = msg + ": " + err.Error()
	}
	if execErr := s.templates.ExecuteTemplate(w, "error", detail); execErr != nil {
		log.Printf("[ERROR] failed to render error: %v", execErr)
	}
}
