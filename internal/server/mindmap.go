package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/yanderlabs/mindweave/pkg/cache"
	"github.com/yanderlabs/mindweave/pkg/errors"
	"github.com/yanderlabs/mindweave/pkg/observability"
	"github.com/yanderlabs/mindweave/pkg/outline"
	"github.com/yanderlabs/mindweave/pkg/pipeline"
)

// contentTypes maps the servable formats to their MIME types.
var contentTypes = map[string]string{
	pipeline.FormatSVG: "image/svg+xml",
	pipeline.FormatPNG: "image/png",
}

// handleMindmap renders the named outline in the given format. The artifact
// is cached under a key derived from the outline file's content hash, so a
// changed file misses the cache and a stale entry is never served.
func (s *Server) handleMindmap(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		name := chi.URLParam(req, "name")
		if err := errors.ValidateOutlineName(name); err != nil {
			writeError(w, err)
			return
		}

		view := req.URL.Query().Get("view")
		if view == "" {
			view = pipeline.ViewRadial
		}
		if err := pipeline.ValidateView(view); err != nil {
			writeError(w, err)
			return
		}

		raw, err := os.ReadFile(filepath.Join(s.dir, name+".json"))
		if os.IsNotExist(err) {
			writeError(w, errors.New(errors.ErrCodeOutlineNotFound, "no outline named %q", name))
			return
		}
		if err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeIOFailure, err, "read outline %q", name))
			return
		}

		key := cache.ArtifactKey(cache.Hash(raw), cache.ArtifactKeyOpts{
			Theme:  s.theme,
			View:   view,
			Format: format,
			Width:  int(pipeline.DefaultWidth),
			Height: int(pipeline.DefaultHeight),
			Scale:  pipeline.DefaultScale,
		})
		etag := `"` + cache.Hash([]byte(key))[:32] + `"`
		if req.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		if data, ok, err := s.cache.Get(ctx, key); err == nil && ok {
			observability.Cache().OnCacheHit(ctx, key)
			w.Header().Set("Content-Type", contentTypes[format])
			w.Header().Set("ETag", etag)
			w.Header().Set("X-Cache", "HIT")
			w.Write(data)
			return
		}
		observability.Cache().OnCacheMiss(ctx, key)

		structure, err := outline.Read(bytes.NewReader(raw))
		if err != nil {
			writeError(w, err)
			return
		}

		result, err := s.runner.Execute(ctx, structure, pipeline.Options{
			Theme:   s.theme,
			View:    view,
			Formats: []string{format},
			Logger:  s.logger,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		data := result.Artifacts[format]
		if err := s.cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, key, len(data))
		}

		w.Header().Set("Content-Type", contentTypes[format])
		w.Header().Set("ETag", etag)
		w.Header().Set("X-Cache", "MISS")
		w.Write(data)
	}
}

// writeError maps a pipeline error to an HTTP status and a JSON body.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidView:
		status = http.StatusBadRequest
	case errors.ErrCodeOutlineNotFound, errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeMalformedStructure:
		status = http.StatusUnprocessableEntity
	case errors.ErrCodeRenderBackend:
		status = http.StatusServiceUnavailable
	case errors.ErrCodeRenderTimeout:
		status = http.StatusGatewayTimeout
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{
			"code":    string(errors.GetCode(err)),
			"message": errors.UserMessage(err),
		},
	})
}
