package cache

// ArtifactKeyOpts identifies one rendered artifact variant. Two requests
// with the same outline content and the same options share one cache entry.
type ArtifactKeyOpts struct {
	Theme  string
	View   string
	Format string
	Width  int
	Height int
	Scale  float64
}

// ArtifactKey builds the cache key for a rendered artifact. The outline hash
// is the SHA-256 of the outline file bytes, so editing an outline naturally
// invalidates every artifact derived from it.
func ArtifactKey(outlineHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", outlineHash, opts.Theme, opts.View, opts.Format,
		opts.Width, opts.Height, opts.Scale)
}

// IndexKey builds the cache key for the server's outline directory listing.
func IndexKey(dir string) string {
	return hashKey("index", dir)
}
