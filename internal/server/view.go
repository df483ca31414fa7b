package server

import (
	"html/template"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/yanderlabs/mindweave/pkg/errors"
	"github.com/yanderlabs/mindweave/pkg/outline"
)

var viewTemplate = template.Must(template.New("view").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}} — Mindweave</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem auto; max-width: 72rem; color: #1f2430; }
  nav { margin-bottom: 1rem; }
  a { color: #3a6df0; text-decoration: none; }
  .frame { border: 1px solid #e4e7ee; border-radius: 6px; overflow: hidden; }
  .frame img { display: block; width: 100%; height: auto; }
  .downloads { margin-top: 0.75rem; color: #6a7284; }
</style>
</head>
<body>
<nav><a href="/">&larr; all outlines</a></nav>
<h1>{{.Title}}</h1>
<div class="frame"><img src="/mindmaps/{{.Name}}.svg" alt="{{.Title}}"></div>
<p class="downloads">
  Download:
  <a href="/mindmaps/{{.Name}}.svg">svg</a> ·
  <a href="/mindmaps/{{.Name}}.png">png</a> ·
  <a href="/mindmaps/{{.Name}}.svg?view=graph">graph view</a>
</p>
</body>
</html>
`))

// handleView serves the HTML page for one outline with its rendered mindmap
// embedded. The image itself is fetched from the artifact route, so it goes
// through the same cache as direct requests.
func (s *Server) handleView(w http.ResponseWriter, req *http.Request) {
	name := chi.URLParam(req, "name")
	if err := errors.ValidateOutlineName(name); err != nil {
		writeError(w, err)
		return
	}

	st, err := outline.Load(filepath.Join(s.dir, name+".json"))
	if err != nil {
		if errors.Is(err, errors.ErrCodeMalformedStructure) {
			writeError(w, err)
		} else {
			writeError(w, errors.New(errors.ErrCodeOutlineNotFound, "no outline named %q", name))
		}
		return
	}

	var buf strings.Builder
	if err := viewTemplate.Execute(&buf, map[string]string{
		"Name":  name,
		"Title": st.Title,
	}); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(buf.String()))
}
