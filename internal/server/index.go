package server

import (
	"html/template"
	"net/http"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yanderlabs/mindweave/pkg/cache"
	"github.com/yanderlabs/mindweave/pkg/observability"
	"github.com/yanderlabs/mindweave/pkg/outline"
)

// indexEntry is one outline row on the gallery page.
type indexEntry struct {
	Name     string
	Title    string
	Branches int
	Leaves   int
	Valid    bool
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Mindweave</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 3rem auto; max-width: 48rem; color: #1f2430; }
  h1 { font-weight: 600; }
  table { border-collapse: collapse; width: 100%; }
  td, th { text-align: left; padding: 0.5rem 1rem 0.5rem 0; border-bottom: 1px solid #e4e7ee; }
  .invalid { color: #9aa1b1; }
  .count { color: #6a7284; }
  a { color: #3a6df0; text-decoration: none; }
</style>
</head>
<body>
<h1>Mindweave</h1>
{{if .Entries}}
<table>
<tr><th>Outline</th><th>Title</th><th></th><th></th></tr>
{{range .Entries}}
{{if .Valid}}
<tr>
  <td><a href="/outlines/{{.Name}}">{{.Name}}</a></td>
  <td>{{.Title}} <span class="count">({{.Branches}} branches, {{.Leaves}} topics)</span></td>
  <td><a href="/mindmaps/{{.Name}}.svg">svg</a></td>
  <td><a href="/mindmaps/{{.Name}}.png">png</a></td>
</tr>
{{else}}
<tr class="invalid"><td>{{.Name}}</td><td colspan="3">invalid outline</td></tr>
{{end}}
{{end}}
</table>
{{else}}
<p>No outlines found in this directory.</p>
{{end}}
</body>
</html>
`))

// handleIndex serves the HTML gallery of outlines. The listing is cached
// briefly so a directory of many outlines is not re-scanned on every hit.
func (s *Server) handleIndex(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	key := cache.IndexKey(s.dir)

	if page, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		observability.Cache().OnCacheHit(ctx, key)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
		return
	}
	observability.Cache().OnCacheMiss(ctx, key)

	entries, err := s.scanOutlines()
	if err != nil {
		writeError(w, err)
		return
	}

	var buf strings.Builder
	if err := indexTemplate.Execute(&buf, map[string]any{"Entries": entries}); err != nil {
		writeError(w, err)
		return
	}
	page := []byte(buf.String())

	if err := s.cache.Set(ctx, key, page, cache.TTLIndex); err == nil {
		observability.Cache().OnCacheSet(ctx, key, len(page))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// scanOutlines lists the outline files in the served directory. Files that
// fail to parse are kept in the listing so broken outlines are visible.
func (s *Server) scanOutlines() ([]indexEntry, error) {
	paths, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	entries := make([]indexEntry, 0, len(paths))
	for _, path := range paths {
		entry := indexEntry{Name: strings.TrimSuffix(filepath.Base(path), ".json")}
		if st, err := outline.Load(path); err == nil {
			entry.Title = st.Title
			entry.Branches = len(st.Branches)
			entry.Leaves = st.LeafCount()
			entry.Valid = true
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
