package server

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytgebes/biospace/pkg/dashboard"
	"github.com/ytgebes/biospace/pkg/domain"
)

func sampleRows() []dashboard.Row {
	return []dashboard.Row{
		{
			Index:       0,
			Publication: domain.Publication{Index: 0, Title: "Microgravity effects on bone density", Link: "https://example/a", Extra: map[string]string{"Year": "2019"}},
			Summary: domain.RowSummary{Key: "summary_0", State: domain.RowDisplayed,
				Result: domain.SummaryResult{Markdown: "### Key Findings\n- **bone** loss\n\n<script>alert(1)</script>"}},
		},
		{
			Index:       1,
			Publication: domain.Publication{Index: 3, Title: "Bone loss in spaceflight", Link: "https://example/c"},
			Summary: domain.RowSummary{Key: "summary_1", State: domain.RowFailed,
				Result: domain.SummaryFailed(domain.KindFetch, "unexpected status 404 Not Found")},
		},
		{
			Index:       2,
			Publication: domain.Publication{Index: 5, Title: "Bone strength in mice", Link: "https://example/h"},
		},
	}
}

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func htmxRequest(req *http.Request) *http.Request {
	req.Header.Set("HX-Request", "true")
	return req
}

func TestIndexHandler(t *testing.T) {
	dash := newDashboardMock()
	dash.PageFunc = func(_ context.Context, sid, query string) (dashboard.PageView, error) {
		assert.NotEmpty(t, sid)
		assert.Equal(t, "bone", query)
		return dashboard.PageView{
			Search: dashboard.SearchView{Query: query, Rows: sampleRows()},
			Messages: []domain.ChatMessage{
				{Role: domain.RoleUser, Content: "what about bones?"},
				{Role: domain.RoleAssistant, Content: "Bones **weaken**."},
			},
			Language: dashboard.LanguageView{Language: "Español", Strings: map[string]string{"title": "Conocimiento Simplificado"}},
		}, nil
	}
	srv := testServer(t, dash)

	rec := serve(srv, httptest.NewRequest(http.MethodGet, "/?q=bone", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()

	assert.Contains(t, body, "<title>Conocimiento Simplificado</title>")
	assert.Contains(t, body, "Choose language", "missing translations fall back to english")
	assert.Contains(t, body, `<option value="Español" selected>`)
	assert.Contains(t, body, "3 matching publications")

	// displayed summary rendered as sanitized markdown
	assert.Contains(t, body, "<h3>Key Findings</h3>")
	assert.Contains(t, body, "<strong>bone</strong>")
	assert.NotContains(t, body, "alert(1)")
	assert.Contains(t, body, "Year: 2019")

	// failed row shows the upstream error
	assert.Contains(t, body, "Failed to summarize: unexpected status 404 Not Found")
	assert.Contains(t, body, `hx-post="/summarize/2"`)
	assert.Contains(t, body, `name="q" value="bone"`)

	// chat log
	assert.Contains(t, body, `<div class="msg user">what about bones?</div>`)
	assert.Contains(t, body, "<strong>weaken</strong>")
}

func TestIndexHandler_Error(t *testing.T) {
	dash := newDashboardMock()
	dash.PageFunc = func(context.Context, string, string) (dashboard.PageView, error) {
		return dashboard.PageView{}, errors.New("database is closed")
	}
	srv := testServer(t, dash)

	rec := serve(srv, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to load page: database is closed")
}

func TestSearchHandler(t *testing.T) {
	dash := newDashboardMock()
	dash.SearchFunc = func(_ context.Context, _ string, query string) (dashboard.SearchView, error) {
		if query == "zebrafish" {
			return dashboard.SearchView{Query: query, Rows: []dashboard.Row{}}, nil
		}
		return dashboard.SearchView{Query: query, Rows: sampleRows()[2:]}, nil
	}
	dash.PageFunc = func(_ context.Context, _ string, query string) (dashboard.PageView, error) {
		return dashboard.PageView{Search: dashboard.SearchView{Query: query}, Language: dashboard.LanguageView{Strings: domain.DefaultUIStrings()}}, nil
	}
	srv := testServer(t, dash)

	t.Run("htmx partial", func(t *testing.T) {
		rec := serve(srv, htmxRequest(httptest.NewRequest(http.MethodGet, "/search?q=mice", http.NoBody)))
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.NotContains(t, body, "<!DOCTYPE html>")
		assert.Contains(t, body, "1 matching publications")
		assert.Contains(t, body, "Bone strength in mice")
		assert.Contains(t, body, `id="row-2"`)
	})

	t.Run("no results", func(t *testing.T) {
		rec := serve(srv, htmxRequest(httptest.NewRequest(http.MethodGet, "/search?q=zebrafish", http.NoBody)))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "No matching publications found.")
	})

	t.Run("full page without htmx", func(t *testing.T) {
		calls := len(dash.PageCalls())
		rec := serve(srv, httptest.NewRequest(http.MethodGet, "/search?q=mice", http.NoBody))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<!DOCTYPE html>")
		assert.Len(t, dash.PageCalls(), calls+1)
	})

	t.Run("error", func(t *testing.T) {
		dash.SearchFunc = func(context.Context, string, string) (dashboard.SearchView, error) {
			return dashboard.SearchView{}, errors.New("reset query: disk I/O error")
		}
		rec := serve(srv, htmxRequest(httptest.NewRequest(http.MethodGet, "/search?q=mice", http.NoBody)))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Failed to search publications: reset query: disk I/O error")
	})
}

func TestSummarizeHandler(t *testing.T) {
	dash := newDashboardMock()
	dash.SummarizeRowFunc = func(_ context.Context, _ string, query string, idx int) (dashboard.Row, error) {
		if idx > 2 {
			return dashboard.Row{}, domain.Fail(domain.KindNotFound, "no result row 7 for query \"bone\"", nil)
		}
		row := sampleRows()[idx]
		row.Summary = domain.RowSummary{Key: dashboard.SummaryKey(idx), State: domain.RowDisplayed,
			Result: domain.SummaryResult{Markdown: "### Overview Summary\nfor " + query}}
		return row, nil
	}
	srv := testServer(t, dash)

	rec := serve(srv, htmxRequest(formRequest(http.MethodPost, "/summarize/1", url.Values{"q": {"bone"}})))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<article class="row state-displayed" id="row-1">`)
	assert.Contains(t, body, "<h3>Overview Summary</h3>")
	assert.Contains(t, body, "for bone")

	calls := dash.SummarizeRowCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "bone", calls[0].Query)
	assert.Equal(t, 1, calls[0].Idx)

	rec = serve(srv, formRequest(http.MethodPost, "/summarize/abc", url.Values{"q": {"bone"}}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid row index")

	rec = serve(srv, formRequest(http.MethodPost, "/summarize/7", url.Values{"q": {"bone"}}))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no result row 7")
}

func TestSummarizeHandler_FailedRow(t *testing.T) {
	dash := newDashboardMock()
	dash.SummarizeRowFunc = func(context.Context, string, string, int) (dashboard.Row, error) {
		return sampleRows()[1], nil
	}
	srv := testServer(t, dash)

	rec := serve(srv, formRequest(http.MethodPost, "/summarize/1", url.Values{"q": {"bone"}}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "state-failed")
	assert.Contains(t, rec.Body.String(), "unexpected status 404 Not Found")
}

func TestChatHandler(t *testing.T) {
	dash := newDashboardMock()
	dash.AskFunc = func(_ context.Context, _ string, question string) ([]domain.ChatMessage, error) {
		if strings.TrimSpace(question) == "" {
			return nil, dashboard.ErrEmptyQuestion
		}
		return []domain.ChatMessage{
			{Role: domain.RoleUser, Content: question},
			{Role: domain.RoleAssistant, Content: "Sorry, I encountered an error. Please try again. Details: quota exceeded"},
		}, nil
	}
	srv := testServer(t, dash)

	rec := serve(srv, htmxRequest(formRequest(http.MethodPost, "/chat", url.Values{"question": {"<b>bones?</b>"}})))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<div id="chat-log">`)
	assert.Contains(t, body, "&lt;b&gt;bones?&lt;/b&gt;", "user text is escaped")
	assert.Contains(t, body, "Details: quota exceeded")

	rec = serve(srv, formRequest(http.MethodPost, "/chat", url.Values{"question": {"  "}}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "question is empty")
}

func TestLanguageHandler(t *testing.T) {
	dash := newDashboardMock()
	dash.SelectLanguageFunc = func(_ context.Context, _ string, lang string) (dashboard.LanguageView, error) {
		switch lang {
		case "Klingon":
			return dashboard.LanguageView{}, domain.Fail(domain.KindNotFound, `unsupported language "Klingon"`, nil)
		case "Deutsch":
			return dashboard.LanguageView{Language: domain.DefaultLanguage, Strings: domain.DefaultUIStrings(),
				Err: "translation_error: translated object misses key \"title\""}, nil
		}
		return dashboard.LanguageView{Language: lang, Strings: map[string]string{"title": "x"}}, nil
	}
	srv := testServer(t, dash)

	rec := serve(srv, htmxRequest(formRequest(http.MethodPost, "/language", url.Values{"lang": {"Español"}})))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", rec.Header().Get("HX-Refresh"))

	rec = serve(srv, formRequest(http.MethodPost, "/language", url.Values{"lang": {"Español"}}))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	rec = serve(srv, htmxRequest(formRequest(http.MethodPost, "/language", url.Values{"lang": {"Deutsch"}})))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Empty(t, rec.Header().Get("HX-Refresh"))
	assert.Contains(t, rec.Body.String(), "Translation failed, showing English")
	assert.Contains(t, rec.Body.String(), "misses key")

	rec = serve(srv, htmxRequest(formRequest(http.MethodPost, "/language", url.Values{"lang": {"Klingon"}})))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported language")
}

func TestColumnsHandler(t *testing.T) {
	dash := newDashboardMock()
	dash.TranslateColumnsFunc = func(context.Context, string) ([]string, error) {
		return []string{"Título", "Enlace"}, nil
	}
	srv := testServer(t, dash)

	rec := serve(srv, httptest.NewRequest(http.MethodPost, "/columns", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<ul id="columns"><li>Título</li><li>Enlace</li></ul>`)

	dash.TranslateColumnsFunc = func(context.Context, string) ([]string, error) {
		return nil, domain.Fail(domain.KindTranslation, "translated 1 items, expected 2", nil)
	}
	rec = serve(srv, httptest.NewRequest(http.MethodPost, "/columns", http.NoBody))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "translated 1 items, expected 2")
}

func TestUploadHandler(t *testing.T) {
	dash := newDashboardMock()
	dash.SummarizeUploadFunc = func(_ context.Context, files []dashboard.Upload) []dashboard.UploadSummary {
		res := make([]dashboard.UploadSummary, 0, len(files))
		for _, f := range files {
			if strings.HasSuffix(f.Name, ".txt") {
				res = append(res, dashboard.UploadSummary{Name: f.Name, Result: domain.SummaryFailed(domain.KindParse, f.Name+" is not a PDF document")})
				continue
			}
			res = append(res, dashboard.UploadSummary{Name: f.Name, Result: domain.SummaryResult{Markdown: "### Key Findings\n" + string(f.Data)}})
		}
		return res
	}
	srv := testServer(t, dash)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, data := range map[string]string{"study.pdf": "%PDF-1.4 study", "notes.txt": "plain"} {
		fw, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(data))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := serve(srv, req)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<h4>study.pdf</h4>")
	assert.Contains(t, body, "%PDF-1.4 study")
	assert.Contains(t, body, "notes.txt is not a PDF document")

	calls := dash.SummarizeUploadCalls()
	require.Len(t, calls, 1)
	require.Len(t, calls[0].Files, 2)

	// no files
	buf.Reset()
	mw = multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("other", "x"))
	require.NoError(t, mw.Close())
	req = httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec = serve(srv, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no files uploaded")

	// not multipart
	rec = serve(srv, formRequest(http.MethodPost, "/upload", url.Values{"files": {"x"}}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
