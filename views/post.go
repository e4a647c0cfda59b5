package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/alvarostrategy/site/internal/content"
	"github.com/alvarostrategy/site/markdown"
)

// BlogPost renders a single article with breadcrumbs, the Markdown body, and
// up to two related posts.
func BlogPost(p Page, post content.Post, related []content.Post) templ.Component {
	body := page(p, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="container">`)

		buf.WriteString(`<nav class="breadcrumbs">`)
		buf.WriteString(`<a href="/blog/">Blog</a> / `)
		buf.WriteString(`<a href="/blog/categoria/` + esc(content.DeriveSlug(post.Category)) + `/">` + esc(post.Category) + `</a> / `)
		buf.WriteString(`<span>` + esc(post.Title) + `</span>`)
		buf.WriteString(`</nav>`)

		buf.WriteString(`<article class="post">`)
		buf.WriteString(`<header>`)
		buf.WriteString(`<h1>` + esc(post.Title) + `</h1>`)
		buf.WriteString(`<p class="post-meta">`)
		buf.WriteString(`<time datetime="` + esc(post.Date) + `">` + esc(formatDate(post.Date)) + `</time>`)
		if post.Author != "" {
			buf.WriteString(` · ` + esc(post.Author))
		}
		buf.WriteString(`</p>`)
		if post.Image != "" {
			buf.WriteString(`<img src="/img/` + esc(post.Image) + `?w=800" alt="` + esc(post.ImageAlt) + `"/>`)
		}
		buf.WriteString(`</header>`)

		buf.WriteString(`<div class="post-body">`)
		markdown.Render(buf, post.Content)
		buf.WriteString(`</div>`)

		if len(post.Tags) > 0 {
			writeTagCloud(buf, post.Tags)
		}
		buf.WriteString(`</article>`)

		if len(related) > 0 {
			buf.WriteString(`<aside class="related"><h2>Artículos relacionados</h2><div class="cards">`)
			for _, r := range related {
				writePostCard(buf, r)
			}
			buf.WriteString(`</div></aside>`)
		}

		buf.WriteString(`</div>`)
	})
	return body
}
