// Package dashboard implements the user-facing actions: search, per-row summaries,
// chat, language selection and uploaded PDF summaries, on top of per-session state.
package dashboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/ytgebes/biospace/pkg/content"
	"github.com/ytgebes/biospace/pkg/domain"
	"github.com/ytgebes/biospace/pkg/session"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/assistant.go -pkg mocks -skip-ensure -fmt goimports . Assistant

// ErrEmptyQuestion is returned when a chat question is blank
var ErrEmptyQuestion = errors.New("question is empty")

// errStaleQuery stops a summary run whose query was replaced while it was running
var errStaleQuery = errors.New("query changed")

// Catalog is the searchable publications table
type Catalog interface {
	Search(query string, limit int) []domain.Publication
	Columns() []string
}

// Fetcher retrieves document text by URL
type Fetcher interface {
	Fetch(ctx context.Context, url string) domain.FetchResult
}

// Assistant talks to the language model
type Assistant interface {
	Summarize(ctx context.Context, text string) domain.SummaryResult
	SummarizeFetch(ctx context.Context, fetched domain.FetchResult) domain.SummaryResult
	Ask(ctx context.Context, question string, pubs []domain.Publication) domain.SummaryResult
	TranslateStrings(ctx context.Context, src map[string]string, lang string) (map[string]string, error)
	TranslateList(ctx context.Context, items []string, lang string) ([]string, error)
}

// Sessions keeps per-visitor state
type Sessions interface {
	Get(ctx context.Context, id string) (*session.Session, error)
	AppendMessage(ctx context.Context, id string, msg domain.ChatMessage) error
	Messages(ctx context.Context, id string) ([]domain.ChatMessage, error)
	SetSummary(ctx context.Context, id, query string, rs domain.RowSummary) (bool, error)
	Summary(ctx context.Context, id, key string) (domain.RowSummary, bool, error)
	Summaries(ctx context.Context, id string) (map[string]domain.RowSummary, error)
	ResetQuery(ctx context.Context, id, query string) (bool, error)
	SetLanguage(ctx context.Context, id, lang string) error
	Translation(ctx context.Context, id, lang string) (map[string]string, bool, error)
	PutTranslation(ctx context.Context, id, lang string, strs map[string]string) error
}

// Options tunes the service
type Options struct {
	SearchLimit     int // 0 for unbounded
	ChatContextSize int
	MaxConcurrent   int
}

// Service runs dashboard actions for a session
type Service struct {
	catalog   Catalog
	fetcher   Fetcher
	assistant Assistant
	sessions  Sessions
	opts      Options
	rows      singleflight.Group
}

// Row is one search result with its summary state
type Row struct {
	Index       int // position in the result list
	Publication domain.Publication
	Summary     domain.RowSummary
}

// State returns the row state, idle when never summarized
func (r Row) State() domain.RowState {
	if r.Summary.State == "" {
		return domain.RowIdle
	}
	return r.Summary.State
}

// SearchView is the result of a search for a session
type SearchView struct {
	Query string
	Rows  []Row
}

// LanguageView carries the UI strings of the current language.
// Err is set when the requested translation failed and English was used instead.
type LanguageView struct {
	Language string
	Strings  map[string]string
	Err      string
}

// PageView is everything needed to render the dashboard page
type PageView struct {
	Search   SearchView
	Messages []domain.ChatMessage
	Language LanguageView
}

// Upload is an uploaded document
type Upload struct {
	Name string
	Data []byte
}

// UploadSummary is the summary of one uploaded document
type UploadSummary struct {
	Name   string
	Result domain.SummaryResult
}

// New makes a dashboard service
func New(catalog Catalog, fetcher Fetcher, assistant Assistant, sessions Sessions, opts Options) *Service {
	if opts.ChatContextSize <= 0 {
		opts.ChatContextSize = 5
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 3
	}
	return &Service{catalog: catalog, fetcher: fetcher, assistant: assistant, sessions: sessions, opts: opts}
}

// SummaryKey is the session key of the summary of the publication at dataset row idx
func SummaryKey(idx int) string {
	return fmt.Sprintf("summary_%d", idx)
}

// Search runs the title search. A query different from the previous one drops all summaries.
func (s *Service) Search(ctx context.Context, sid, query string) (SearchView, error) {
	changed, err := s.sessions.ResetQuery(ctx, sid, query)
	if err != nil {
		return SearchView{}, fmt.Errorf("reset query: %w", err)
	}
	if changed {
		lgr.Printf("[DEBUG] session %s query changed to %q, summaries cleared", sid, query)
	}

	summaries, err := s.sessions.Summaries(ctx, sid)
	if err != nil {
		return SearchView{}, fmt.Errorf("load summaries: %w", err)
	}

	pubs := s.catalog.Search(query, s.opts.SearchLimit)
	view := SearchView{Query: query, Rows: make([]Row, 0, len(pubs))}
	for i, p := range pubs {
		view.Rows = append(view.Rows, Row{Index: i, Publication: p, Summary: summaries[SummaryKey(p.Index)]})
	}
	return view, nil
}

// SummarizeRow fetches and summarizes result row idx of query.
// Concurrent requests for the same row of a session share one run.
func (s *Service) SummarizeRow(ctx context.Context, sid, query string, idx int) (Row, error) {
	if _, err := s.sessions.ResetQuery(ctx, sid, query); err != nil {
		return Row{}, fmt.Errorf("reset query: %w", err)
	}

	pubs := s.catalog.Search(query, s.opts.SearchLimit)
	if idx < 0 || idx >= len(pubs) {
		return Row{}, domain.Fail(domain.KindNotFound, fmt.Sprintf("no result row %d for query %q", idx, query), nil)
	}

	key := SummaryKey(pubs[idx].Index)
	v, err, shared := s.rows.Do(sid+"\x00"+query+"\x00"+key, func() (interface{}, error) {
		// state writes must land even if the initiating request goes away
		return s.summarizeRow(context.WithoutCancel(ctx), sid, query, key, pubs[idx])
	})
	if err != nil {
		return Row{}, err
	}
	if shared {
		lgr.Printf("[DEBUG] summary %s for session %s shared with a concurrent request", key, sid)
	}

	rs := v.(domain.RowSummary)
	return Row{Index: idx, Publication: pubs[idx], Summary: rs}, nil
}

func (s *Service) summarizeRow(ctx context.Context, sid, query, key string, pub domain.Publication) (domain.RowSummary, error) {
	rs, err := s.runSummary(ctx, sid, query, key, pub)
	if errors.Is(err, errStaleQuery) {
		lgr.Printf("[DEBUG] session %s moved away from query %q, summary %s dropped", sid, query, key)
		return domain.RowSummary{Key: key, State: domain.RowIdle}, nil
	}
	return rs, err
}

func (s *Service) runSummary(ctx context.Context, sid, query, key string, pub domain.Publication) (domain.RowSummary, error) {
	current, _, err := s.sessions.Summary(ctx, sid, key)
	if err != nil {
		return domain.RowSummary{}, fmt.Errorf("load summary: %w", err)
	}

	// runs are collapsed per row, so an in-flight state here was left by an interrupted run
	state := current.State
	if state.InFlight() {
		state = domain.RowIdle
	}

	rs := domain.RowSummary{Key: key, State: state}
	move := func(next domain.RowState, result domain.SummaryResult) error {
		st, err := rs.State.Next(next)
		if err != nil {
			return err
		}
		rs = domain.RowSummary{Key: key, State: st, Result: result, UpdatedAt: time.Now()}
		stored, err := s.sessions.SetSummary(ctx, sid, query, rs)
		if err != nil {
			return fmt.Errorf("save summary: %w", err)
		}
		if !stored {
			return errStaleQuery
		}
		return nil
	}

	if err := move(domain.RowFetching, domain.SummaryResult{}); err != nil {
		return domain.RowSummary{}, err
	}

	fetched := s.fetcher.Fetch(ctx, pub.Link)
	if !fetched.OK() {
		lgr.Printf("[WARN] can't fetch %q (%s): %s", pub.Title, pub.Link, fetched.Err)
		if err := move(domain.RowFailed, domain.SummaryFailed(fetched.Kind, fetched.Err)); err != nil {
			return domain.RowSummary{}, err
		}
		return rs, nil
	}

	if err := move(domain.RowSummarizing, domain.SummaryResult{}); err != nil {
		return domain.RowSummary{}, err
	}

	result := s.assistant.SummarizeFetch(ctx, fetched)
	final := domain.RowDisplayed
	if !result.OK() {
		final = domain.RowFailed
	}
	if err := move(final, result); err != nil {
		return domain.RowSummary{}, err
	}
	return rs, nil
}

// Ask records the question, answers it from matching publications and records the answer.
// A failed model call is recorded as the assistant's reply. Returns the whole chat log.
func (s *Service) Ask(ctx context.Context, sid, question string) ([]domain.ChatMessage, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuestion
	}

	if err := s.sessions.AppendMessage(ctx, sid, domain.ChatMessage{Role: domain.RoleUser, Content: question}); err != nil {
		return nil, fmt.Errorf("save question: %w", err)
	}

	pubs := s.catalog.Search(question, s.opts.ChatContextSize)
	res := s.assistant.Ask(ctx, question, pubs)
	answer := res.Markdown
	if !res.OK() {
		answer = fmt.Sprintf("Sorry, I encountered an error. Please try again. Details: %s", res.Err)
	}

	if err := s.sessions.AppendMessage(context.WithoutCancel(ctx), sid,
		domain.ChatMessage{Role: domain.RoleAssistant, Content: answer}); err != nil {
		return nil, fmt.Errorf("save answer: %w", err)
	}
	return s.sessions.Messages(ctx, sid)
}

// SelectLanguage switches the session UI language, translating the UI strings once per language.
// When translation fails the session falls back to English and the error is reported in the view.
func (s *Service) SelectLanguage(ctx context.Context, sid, lang string) (LanguageView, error) {
	if _, ok := domain.FindLanguage(lang); !ok {
		return LanguageView{}, domain.Fail(domain.KindNotFound, fmt.Sprintf("unsupported language %q", lang), nil)
	}

	strs, ok, err := s.sessions.Translation(ctx, sid, lang)
	if err != nil {
		return LanguageView{}, fmt.Errorf("load translation: %w", err)
	}

	if !ok {
		translated, terr := s.assistant.TranslateStrings(ctx, domain.DefaultUIStrings(), lang)
		if terr != nil {
			lgr.Printf("[WARN] translation to %s failed: %v", lang, terr)
			if err := s.sessions.SetLanguage(ctx, sid, domain.DefaultLanguage); err != nil {
				return LanguageView{}, fmt.Errorf("set language: %w", err)
			}
			return LanguageView{Language: domain.DefaultLanguage, Strings: domain.DefaultUIStrings(), Err: terr.Error()}, nil
		}
		if err := s.sessions.PutTranslation(ctx, sid, lang, translated); err != nil {
			return LanguageView{}, fmt.Errorf("save translation: %w", err)
		}
		strs = translated
	}

	if err := s.sessions.SetLanguage(ctx, sid, lang); err != nil {
		return LanguageView{}, fmt.Errorf("set language: %w", err)
	}
	return LanguageView{Language: lang, Strings: strs}, nil
}

// Language returns the current UI language and strings of the session
func (s *Service) Language(ctx context.Context, sid string) (LanguageView, error) {
	sess, err := s.sessions.Get(ctx, sid)
	if err != nil {
		return LanguageView{}, fmt.Errorf("load session: %w", err)
	}
	return s.languageView(ctx, sid, sess.Language)
}

func (s *Service) languageView(ctx context.Context, sid, lang string) (LanguageView, error) {
	strs, ok, err := s.sessions.Translation(ctx, sid, lang)
	if err != nil {
		return LanguageView{}, fmt.Errorf("load translation: %w", err)
	}
	if !ok {
		return LanguageView{Language: domain.DefaultLanguage, Strings: domain.DefaultUIStrings()}, nil
	}

	// keys added after the translation was stored show in English
	defaults := domain.DefaultUIStrings()
	for k, v := range defaults {
		if _, found := strs[k]; !found {
			strs[k] = v
		}
	}
	return LanguageView{Language: lang, Strings: strs}, nil
}

// Page collects the search results, chat log and UI strings of the session
func (s *Service) Page(ctx context.Context, sid, query string) (PageView, error) {
	sess, err := s.sessions.Get(ctx, sid)
	if err != nil {
		return PageView{}, fmt.Errorf("load session: %w", err)
	}
	search, err := s.Search(ctx, sid, query)
	if err != nil {
		return PageView{}, err
	}
	lang, err := s.languageView(ctx, sid, sess.Language)
	if err != nil {
		return PageView{}, err
	}
	return PageView{Search: search, Messages: sess.Messages, Language: lang}, nil
}

// TranslateColumns returns dataset column names in the session language
func (s *Service) TranslateColumns(ctx context.Context, sid string) ([]string, error) {
	sess, err := s.sessions.Get(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	cols := s.catalog.Columns()
	if sess.Language == domain.DefaultLanguage {
		return cols, nil
	}
	return s.assistant.TranslateList(ctx, cols, sess.Language)
}

// SummarizeUpload extracts and summarizes uploaded PDFs, a few at a time.
// Results keep the order of files.
func (s *Service) SummarizeUpload(ctx context.Context, files []Upload) []UploadSummary {
	res := make([]UploadSummary, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.MaxConcurrent)
	for i, f := range files {
		g.Go(func() error {
			res[i] = UploadSummary{Name: f.Name, Result: s.summarizeUpload(ctx, f)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		lgr.Printf("[ERROR] upload summary error: %v", err)
	}
	return res
}

func (s *Service) summarizeUpload(ctx context.Context, f Upload) domain.SummaryResult {
	if !bytes.HasPrefix(f.Data, []byte("%PDF-")) {
		return domain.SummaryFailed(domain.KindParse, fmt.Sprintf("%s is not a PDF document", f.Name))
	}
	text, err := content.ExtractPDF(bytes.NewReader(f.Data), int64(len(f.Data)))
	if err != nil {
		return domain.SummaryFailed(domain.KindParse, err.Error())
	}
	return s.assistant.Summarize(ctx, text)
}

// Find searches publications without touching session state, limit <= 0 uses the configured limit
func (s *Service) Find(query string, limit int) []domain.Publication {
	if limit <= 0 {
		limit = s.opts.SearchLimit
	}
	return s.catalog.Search(query, limit)
}

// SummarizeURL fetches and summarizes a single document outside of any session
func (s *Service) SummarizeURL(ctx context.Context, url string) domain.SummaryResult {
	return s.assistant.SummarizeFetch(ctx, s.fetcher.Fetch(ctx, url))
}

// Languages lists supported UI languages
func (s *Service) Languages() []domain.Language {
	res := make([]domain.Language, len(domain.Languages))
	copy(res, domain.Languages)
	return res
}
