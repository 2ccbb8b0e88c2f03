package web

// Config represents the web server configuration
type Config struct {
	Server   ServerConfig
	Matching MatchingConfig
	Features FeatureConfig
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host       string
	Port       int
	CORSOrigin string
}

// MatchingConfig contains matching pipeline settings
type MatchingConfig struct {
	Mode       string // "lexical" or "semantic"
	TopK       int
	Dimensions int // embedding size for semantic mode
}

// FeatureConfig contains feature toggles
type FeatureConfig struct {
	ExportEnabled  bool
	SuggestEnabled bool
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:       "0.0.0.0",
			Port:       8080,
			CORSOrigin: "*",
		},
		Matching: MatchingConfig{
			Mode:       "lexical",
			TopK:       3,
			Dimensions: 64,
		},
		Features: FeatureConfig{
			ExportEnabled:  true,
			SuggestEnabled: true,
		},
	}
}
