package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown_EmptyInput(t *testing.T) {
	assert.Equal(t, "", RenderMarkdown(""))
}

func TestRenderMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "paragraph",
			input:    "We usually reply within one business day.",
			contains: []string{"<p>We usually reply within one business day.</p>"},
		},
		{
			name:     "bold",
			input:    "**Fixed price** projects",
			contains: []string{"<strong>Fixed price</strong>"},
		},
		{
			name:     "link",
			input:    "[our process](/process)",
			contains: []string{`<a href="/process"`, "our process</a>"},
		},
		{
			name:     "bullet list",
			input:    "- discovery\n- build",
			contains: []string{"<ul>", "<li>discovery</li>"},
		},
		{
			name:     "heading keeps anchor id",
			input:    "## Data we collect",
			contains: []string{`<h2 id="data-we-collect">Data we collect</h2>`},
		},
		{
			name:     "table",
			input:    "| a | b |\n|---|---|\n| 1 | 2 |",
			contains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:     "strips script",
			input:    `<script>alert("xss")</script>`,
			excludes: []string{"<script>"},
		},
		{
			name:     "strips event handlers",
			input:    `<a href="/x" onclick="steal()">x</a>`,
			excludes: []string{"onclick"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderMarkdown(tt.input)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, bad := range tt.excludes {
				assert.NotContains(t, got, bad)
			}
		})
	}
}
