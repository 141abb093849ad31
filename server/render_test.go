package server

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytgebes/biospace/pkg/domain"
)

func TestRenderMarkdown(t *testing.T) {
	tests := []struct {
		name        string
		src         string
		contains    []string
		notContains []string
	}{
		{
			name:     "summary sections",
			src:      "### Key Findings\n- bone loss\n- muscle atrophy\n\n### Overview Summary\nAstronauts *lose* bone.",
			contains: []string{"<h3>Key Findings</h3>", "<li>bone loss</li>", "<h3>Overview Summary</h3>", "<em>lose</em>"},
		},
		{
			name:     "gfm table",
			src:      "| a | b |\n|---|---|\n| 1 | 2 |",
			contains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:        "raw html dropped",
			src:         "hello <img src=x onerror=alert(1)>\n\n<script>alert(2)</script>",
			contains:    []string{"hello"},
			notContains: []string{"onerror", "alert(2)", "<script"},
		},
		{
			name:        "javascript links neutralized",
			src:         "[click](javascript:alert(1))",
			contains:    []string{"click"},
			notContains: []string{"javascript:"},
		},
		{
			name:     "links kept",
			src:      "see [PMC](https://www.ncbi.nlm.nih.gov/pmc/)",
			contains: []string{`href="https://www.ncbi.nlm.nih.gov/pmc/"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(renderMarkdown(tt.src))
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestTemplateFuncs(t *testing.T) {
	funcs := templateFuncs()

	tr := funcs["t"].(func(map[string]string, string) string)
	assert.Equal(t, "Tablero", tr(map[string]string{"title": "Tablero"}, "title"))
	assert.Equal(t, "Simplified Knowledge", tr(map[string]string{"title": ""}, "title"))
	assert.Equal(t, "Simplified Knowledge", tr(nil, "title"))
	assert.Empty(t, tr(nil, "no_such_key"))

	isUser := funcs["isUser"].(func(domain.Role) bool)
	assert.True(t, isUser(domain.RoleUser))
	assert.False(t, isUser(domain.RoleAssistant))
}
