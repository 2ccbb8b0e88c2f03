package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kent-titlemap/internal/config"
	"github.com/kent-titlemap/internal/embeddings"
	"github.com/kent-titlemap/internal/matcher"
	"github.com/kent-titlemap/internal/reference"
	"github.com/kent-titlemap/internal/web"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config.LoadEnv()

	webConfig := &web.Config{
		Server: web.ServerConfig{
			Host:       config.GetEnv("WEB_HOST", "0.0.0.0"),
			Port:       config.GetEnvInt("WEB_PORT", 8080),
			CORSOrigin: config.GetEnv("CORS_ORIGIN", "*"),
		},
		Matching: web.MatchingConfig{
			Mode:       strings.ToLower(config.GetEnv("TITLEMAP_MODE", "lexical")),
			TopK:       config.GetEnvInt("MATCH_TOP_K", matcher.DefaultTopK),
			Dimensions: config.GetEnvInt("EMBED_DIMENSIONS", 64),
		},
		Features: web.FeatureConfig{
			ExportEnabled:  config.GetEnvBool("ENABLE_EXPORT", true),
			SuggestEnabled: config.GetEnvBool("ENABLE_SUGGEST", true),
		},
	}

	source := config.GetEnv("TITLEMAP_DATA", "data.csv")
	table, err := reference.Load(source)
	if err != nil {
		log.Fatal().Err(err).Str("source", source).Msg("failed to load reference data")
	}

	var ranker matcher.Ranker
	switch webConfig.Matching.Mode {
	case "semantic":
		ranker = matcher.NewSemanticRanker(embeddings.NewSimpleEmbedder(webConfig.Matching.Dimensions))
	case "lexical":
		ranker = matcher.NewLexicalRanker()
	default:
		log.Fatal().Str("mode", webConfig.Matching.Mode).Msg("unknown matching mode, use lexical or semantic")
	}

	engine := matcher.NewEngine(table, ranker, webConfig.Matching.TopK)

	log.Info().
		Str("mode", webConfig.Matching.Mode).
		Int("rows", table.Len()).
		Int("grades", len(table.Grades())).
		Int("countries", len(table.Countries())).
		Msg("matching engine ready")

	server := web.NewServer(webConfig, engine)
	if err := server.Start(); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
