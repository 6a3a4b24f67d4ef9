package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBasePath(t *testing.T) {
	tests := []struct {
		raw  string
		want BasePath
	}{
		{"", "/"},
		{"/", "/"},
		{"official-website", "/official-website/"},
		{"/official-website", "/official-website/"},
		{"/official-website/", "/official-website/"},
		{"  /a/b/ ", "/a/b/"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NewBasePath(tt.raw))
		})
	}
}

func TestBasePath_URL(t *testing.T) {
	root := NewBasePath("/")
	sub := NewBasePath("/official-website/")

	assert.Equal(t, "/services", root.URL("/services"))
	assert.Equal(t, "/official-website/services", sub.URL("/services"))
	assert.Equal(t, "/official-website/images/work.jpg", sub.URL("images/work.jpg"))
	assert.Equal(t, "/official-website/", sub.URL("/"))
	assert.Equal(t, "https://example.com/x", sub.URL("https://example.com/x"))
	assert.Equal(t, "mailto:hi@example.com", sub.URL("mailto:hi@example.com"))
	assert.Equal(t, "", sub.URL(""))
}

func TestBasePath_Strip(t *testing.T) {
	sub := NewBasePath("/official-website/")

	assert.Equal(t, "/", sub.Strip("/official-website"))
	assert.Equal(t, "/", sub.Strip("/official-website/"))
	assert.Equal(t, "/faq", sub.Strip("/official-website/faq"))
	assert.Equal(t, "/elsewhere", sub.Strip("/elsewhere"))
	assert.Equal(t, "/faq", NewBasePath("").Strip("/faq"))
}

func TestPortfolioProject_HasCaseLink(t *testing.T) {
	assert.True(t, PortfolioProject{Note: "https://aiwajourney.com/"}.HasCaseLink())
	assert.True(t, PortfolioProject{Note: "http://example.com"}.HasCaseLink())
	assert.False(t, PortfolioProject{Note: "Internal system, not publicly shown"}.HasCaseLink())
	assert.False(t, PortfolioProject{}.HasCaseLink())
}

func TestNormalizeTechStack_DropsDuplicatesKeepsOrder(t *testing.T) {
	got := NormalizeTechStack([]string{"Go", " PHP ", "Go", "", "MySQL", "PHP"})
	assert.Equal(t, []string{"Go", "PHP", "MySQL"}, got)
}

func TestGroupFAQ_PreservesFirstAppearanceOrder(t *testing.T) {
	entries := []FAQEntry{
		{Key: "a1", Category: "Working together"},
		{Key: "b1", Category: "Timeline"},
		{Key: "a2", Category: "Working together"},
	}

	groups := GroupFAQ(entries)

	if assert.Len(t, groups, 2) {
		assert.Equal(t, "Working together", groups[0].Name)
		assert.Equal(t, []string{"a1", "a2"}, []string{groups[0].Entries[0].Key, groups[0].Entries[1].Key})
		assert.Equal(t, "Timeline", groups[1].Name)
		assert.Len(t, groups[1].Entries, 1)
	}
}
