package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/alvarostrategy/site/internal/content"
)

// writePostCard renders one post as a listing card. Shared by the blog
// index, category/tag listings, related posts, and the home page.
func writePostCard(buf *bytes.Buffer, p content.Post) {
	buf.WriteString(`<article class="card post-card">`)
	if p.Image != "" {
		buf.WriteString(`<a href="/blog/` + esc(p.Slug) + `/"><img src="/img/` + esc(p.Image) + `?w=480" alt="` + esc(p.ImageAlt) + `" loading="lazy"/></a>`)
	}
	buf.WriteString(`<p class="post-meta">`)
	buf.WriteString(`<a class="category" href="/blog/categoria/` + esc(content.DeriveSlug(p.Category)) + `/">` + esc(p.Category) + `</a>`)
	buf.WriteString(` · <time datetime="` + esc(p.Date) + `">` + esc(formatDate(p.Date)) + `</time>`)
	buf.WriteString(`</p>`)
	buf.WriteString(`<h3><a href="/blog/` + esc(p.Slug) + `/">` + esc(p.Title) + `</a></h3>`)
	buf.WriteString(`<p>` + esc(p.Excerpt) + `</p>`)
	buf.WriteString(`</article>`)
}

func writePostList(buf *bytes.Buffer, posts []content.Post, emptyMessage string) {
	if len(posts) == 0 {
		buf.WriteString(`<p class="empty-state">` + esc(emptyMessage) + `</p>`)
		return
	}
	buf.WriteString(`<div class="cards">`)
	for _, p := range posts {
		writePostCard(buf, p)
	}
	buf.WriteString(`</div>`)
}

func writeTagCloud(buf *bytes.Buffer, tags []string) {
	if len(tags) == 0 {
		return
	}
	buf.WriteString(`<ul class="tag-cloud">`)
	for _, t := range tags {
		buf.WriteString(`<li><a href="/blog/tag/` + esc(content.DeriveSlug(t)) + `/">` + esc(t) + `</a></li>`)
	}
	buf.WriteString(`</ul>`)
}

// Blog renders the blog index with all posts, categories, and tags.
func Blog(p Page, posts []content.Post, categories, tags []string) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="container"><h1>Blog</h1>`)
		if len(categories) > 0 {
			buf.WriteString(`<ul class="category-list">`)
			for _, c := range categories {
				buf.WriteString(`<li><a href="/blog/categoria/` + esc(content.DeriveSlug(c)) + `/">` + esc(c) + `</a></li>`)
			}
			buf.WriteString(`</ul>`)
		}
		writePostList(buf, posts, "Todavía no hay artículos publicados.")
		writeTagCloud(buf, tags)
		buf.WriteString(`</div>`)
	})
}

// BlogCategory renders the listing of one category. The heading comes from
// the first matching post's display label; with no matches it falls back to
// the formatted slug.
func BlogCategory(p Page, slug string, posts []content.Post) templ.Component {
	heading := content.FormatSlugForDisplay(slug)
	if len(posts) > 0 {
		heading = posts[0].Category
	}
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="container">`)
		buf.WriteString(`<nav class="breadcrumbs"><a href="/blog/">Blog</a> / <span>` + esc(heading) + `</span></nav>`)
		buf.WriteString(`<h1>` + esc(heading) + `</h1>`)
		writePostList(buf, posts, "Todavía no hay artículos en esta categoría.")
		buf.WriteString(`</div>`)
	})
}

// BlogTag renders the listing of one tag.
func BlogTag(p Page, slug string, posts []content.Post) templ.Component {
	heading := content.FormatSlugForDisplay(slug)
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="container">`)
		buf.WriteString(`<nav class="breadcrumbs"><a href="/blog/">Blog</a> / <span>` + esc(heading) + `</span></nav>`)
		buf.WriteString(`<h1>Artículos etiquetados con &laquo;` + esc(heading) + `&raquo;</h1>`)
		writePostList(buf, posts, "Todavía no hay artículos con esta etiqueta.")
		buf.WriteString(`</div>`)
	})
}
