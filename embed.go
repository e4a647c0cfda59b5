package site

import "embed"

// EmbeddedAssets contains static assets shipped with the site:
// site.js, site.css
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
