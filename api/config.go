package api

// Config is the API server configuration.
type Config struct {
	// ListenAddr is the address to listen on (e.g. ":8080")
	ListenAddr string

	// DefaultTopK is the search result limit applied when a request omits
	// top_k. Zero falls back to search.DefaultTopK.
	DefaultTopK int
}
