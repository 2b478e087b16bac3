// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import (
	"html/template"
	"net/http"

	"github.com/tomtom215/steamlens/internal/logging"
)

// Router sets up HTTP routes using Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	indexTemplate *template.Template
}

// NewRouter creates a new router with all routes configured
func NewRouter(handler *Handler) *Router {
	chiCfg := DefaultChiMiddlewareConfig()
	if handler.config != nil {
		chiCfg = ChiMiddlewareConfigFromConfig(handler.config.Security)
	}

	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(chiCfg),
		indexTemplate: template.Must(template.New("index").Parse(indexHTML)),
	}
}

// indexPage feeds the landing page template.
type indexPage struct {
	Version string
	Routes  []indexRoute
}

type indexRoute struct {
	Path        string
	Example     string
	Description string
}

var indexRoutes = []indexRoute{
	{"/api/v1/genres/{genre}/top-year", "/api/v1/genres/Action/top-year", "Release year with the most hours played for a genre"},
	{"/api/v1/genres/{genre}/top-user", "/api/v1/genres/Action/top-user", "User with the most hours played for a genre, hours per year"},
	{"/api/v1/years/{year}/recommended", "/api/v1/years/2015/recommended", "Top 3 recommended games for a posting year"},
	{"/api/v1/years/{year}/not-recommended", "/api/v1/years/2015/not-recommended", "Top 3 not-recommended games for a posting year"},
	{"/api/v1/years/{year}/sentiment", "/api/v1/years/2015/sentiment", "Review sentiment counts for a release year"},
	{"/api/v1/genres", "/api/v1/genres", "Known genres"},
	{"/api/v1/stats", "/api/v1/stats", "Dataset, cache and latency statistics"},
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Steamlens</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; background: #1b2838; color: #c7d5e0; }
a { color: #66c0f4; }
code { background: #2a475e; padding: 0 .25rem; }
td { padding: .25rem .5rem; vertical-align: top; }
</style>
</head>
<body>
<h1>Steamlens</h1>
<p>Steam game review and playtime queries. Version {{.Version}}.</p>
<table>
{{range .Routes}}<tr><td><a href="{{.Example}}"><code>{{.Path}}</code></a></td><td>{{.Description}}</td></tr>
{{end}}</table>
<p>Interactive documentation: <a href="/docs/index.html">/docs/</a></p>
</body>
</html>
`

// Index renders the HTML landing page.
func (router *Router) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")

	err := router.indexTemplate.Execute(w, indexPage{Version: Version, Routes: indexRoutes})
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to execute index template")
	}
}
