// Package markdown renders thread bodies, comments and replies to HTML that
// is safe to embed in a page.
package markdown

import (
	"bytes"
	"strings"

	"github.com/forumhub/forum-api/shared/logger"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
		// Raw HTML is passed through and left to the sanitizer.
		goldmark.WithRendererOptions(html.WithUnsafe(), html.WithHardWraps()),
	)
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	return &Renderer{md: md, policy: policy}
}

// Render converts markdown to sanitized HTML. On a conversion failure the
// escaped source text is returned instead.
func (r *Renderer) Render(text string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		logger.Log.Warn("markdown conversion failed", "error", err)
		return r.policy.Sanitize(text)
	}
	return strings.TrimSpace(r.policy.Sanitize(buf.String()))
}
