package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kent-titlemap/internal/config"
	"github.com/kent-titlemap/internal/embeddings"
	"github.com/kent-titlemap/internal/matcher"
	"github.com/kent-titlemap/internal/reference"
	"github.com/kent-titlemap/internal/symspell"
)

var (
	dataSource string
	mode       string
	topK       int
	dimensions int
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	config.LoadEnv()

	rootCmd := &cobra.Command{
		Use:   "titlemap",
		Short: "Kent indicative title mapping",
		Long:  `Maps free-text client job titles to standardized position titles, grades, countries and job codes`,
	}

	rootCmd.PersistentFlags().StringVar(&dataSource, "data", config.GetEnv("TITLEMAP_DATA", "data.csv"), "reference dataset: CSV file, Excel workbook or CSV URL")
	rootCmd.PersistentFlags().StringVar(&mode, "mode", config.GetEnv("TITLEMAP_MODE", "lexical"), "matching mode: lexical or semantic")
	rootCmd.PersistentFlags().IntVar(&topK, "top", config.GetEnvInt("MATCH_TOP_K", matcher.DefaultTopK), "number of candidates to return")
	rootCmd.PersistentFlags().IntVar(&dimensions, "dimensions", config.GetEnvInt("EMBED_DIMENSIONS", 64), "embedding size for semantic mode")

	rootCmd.AddCommand(createMatchCmd())
	rootCmd.AddCommand(createValidateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadEngine() (*matcher.Engine, error) {
	table, err := reference.Load(dataSource)
	if err != nil {
		return nil, err
	}

	var ranker matcher.Ranker
	switch strings.ToLower(mode) {
	case "semantic":
		ranker = matcher.NewSemanticRanker(embeddings.NewSimpleEmbedder(dimensions))
	case "lexical":
		ranker = matcher.NewLexicalRanker()
	default:
		return nil, fmt.Errorf("unknown matching mode %q, use lexical or semantic", mode)
	}

	return matcher.NewEngine(table, ranker, topK), nil
}

// createMatchCmd creates the match subcommand
func createMatchCmd() *cobra.Command {
	var grade, country, csvOut string

	cmd := &cobra.Command{
		Use:   "match [client role]",
		Short: "Map a client job title to standardized positions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := loadEngine()
			if err != nil {
				return err
			}

			result, err := engine.Match(matcher.Query{
				Title:   args[0],
				Grade:   grade,
				Country: country,
			})
			if err != nil {
				return err
			}

			if result.Exact {
				fmt.Println("Exact match found!")
			} else {
				fmt.Printf("No exact match - showing the %d closest titles:\n", len(result.Matches))
			}

			for _, m := range result.Matches {
				fmt.Printf("  %-6s %-40s %-5s %-22s %-10s\n",
					m.ProbabilityLabel(), m.Row.PositionTitle, m.Row.Grade, m.Row.Country, m.Row.JobCode)
			}

			if csvOut != "" {
				if err := writeResultCSV(csvOut, result); err != nil {
					return err
				}
				fmt.Printf("Results written to %s\n", csvOut)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&grade, "grade", "", "filter by grade")
	cmd.Flags().StringVar(&country, "country", "", "filter by country")
	cmd.Flags().StringVar(&csvOut, "csv", "", "write results to a CSV file")
	return cmd
}

// createValidateCmd creates the validate subcommand
func createValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the reference dataset and report its shape",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := reference.Load(dataSource)
			if err != nil {
				return err
			}

			corrector := symspell.NewCorrector(table.Titles(), nil)
			stats := corrector.Stats()

			fmt.Printf("Dataset OK: %s\n", dataSource)
			fmt.Printf("  Rows:       %d\n", table.Len())
			fmt.Printf("  Grades:     %s\n", strings.Join(table.Grades(), ", "))
			fmt.Printf("  Countries:  %s\n", strings.Join(table.Countries(), ", "))
			fmt.Printf("  Vocabulary: %d terms, %d deletes\n", stats.TermCount, stats.DeleteCount)
			return nil
		},
	}
}

func writeResultCSV(filename string, result *matcher.Result) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write([]string{"Client Job Title", "Position Title", "Grade", "Country", "Job Code", "Probability"})
	for _, m := range result.Matches {
		writer.Write([]string{
			m.Row.ClientJobTitle,
			m.Row.PositionTitle,
			m.Row.Grade,
			m.Row.Country,
			m.Row.JobCode,
			m.ProbabilityLabel(),
		})
	}
	return nil
}
