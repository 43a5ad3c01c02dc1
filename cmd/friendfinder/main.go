// Copyright 2025 The Basenko Friend Finder Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/ai"
	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/ai/openai"
	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/core"
	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/corpus"
	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/profiles"
	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/server"
	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/storage/badger"
	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/textnorm"
)

func corpusFlags(extra ...cli.Flag) []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     "corpus",
			Aliases:  []string{"c"},
			Usage:    "Path to the CSV corpus of profile descriptions",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "column",
			Usage: "Name of the description column (auto-detected when empty)",
		},
		&cli.IntFlag{
			Name:  "clusters",
			Usage: "Number of k-means clusters",
			Value: profiles.DefaultClusterCount,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "Clustering seed",
			Value: profiles.DefaultSeed,
		},
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to the BadgerDB processed-corpus cache (disabled when empty)",
		},
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: ai.DefaultConfig().Host,
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: ai.DefaultConfig().Model,
		},
		&cli.IntFlag{
			Name:  "pool-size",
			Usage: "Number of concurrent embedding workers during the build",
			Value: 4,
		},
	}
	return append(flags, extra...)
}

func main() {
	app := &cli.App{
		Name:  "friendfinder",
		Usage: "Profile matching engine for finding like-minded people",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "serve",
				Usage:     "Build the corpus and serve the JSON API",
				ArgsUsage: " ",
				Action:    serveCommand,
				Flags: corpusFlags(
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address",
						Value: ":8080",
					},
				),
			},
			{
				Name:      "search",
				Usage:     "Find profiles similar to the query text",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
				Flags: corpusFlags(
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Maximum number of matches to print",
						Value:   profiles.DefaultTopK,
					},
				),
			},
			{
				Name:      "predict",
				Usage:     "Predict the interest cluster of the query text",
				ArgsUsage: "TEXT",
				Action:    predictCommand,
				Flags:     corpusFlags(),
			},
			{
				Name:      "stats",
				Usage:     "Print dataset statistics of the built corpus",
				ArgsUsage: " ",
				Action:    statsCommand,
				Flags:     corpusFlags(),
			},
			{
				Name:      "export",
				Usage:     "Write the processed corpus to a CSV file",
				ArgsUsage: " ",
				Action:    exportCommand,
				Flags: corpusFlags(
					&cli.StringFlag{
						Name:     "out",
						Aliases:  []string{"o"},
						Usage:    "Output CSV path",
						Required: true,
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// newStore wires the normalizer, embedder, and optional cache into an
// unbuilt store. The returned cleanup closes the cache resources.
func newStore(c *cli.Context) (*profiles.Store, func(), error) {
	normalizer, err := textnorm.New()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create normalizer: %w", err)
	}

	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("embedding-host")),
		ai.WithModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	opts := []profiles.Option{
		profiles.WithCorpusFile(c.String("corpus"), c.String("column")),
		profiles.WithClusterCount(c.Int("clusters")),
		profiles.WithSeed(c.Int64("seed")),
		profiles.WithPoolSize(c.Int("pool-size")),
	}

	cleanup := func() {}
	if dbPath := c.String("db"); dbPath != "" {
		backend, err := badger.OpenBackend(dbPath, false)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		repo, err := badger.NewProfileRepository(backend)
		if err != nil {
			backend.Close()
			return nil, nil, fmt.Errorf("failed to create repository: %w", err)
		}
		opts = append(opts, profiles.WithRepository(repo))
		cleanup = func() {
			repo.Close()
			backend.Close()
		}
	}

	store, err := profiles.New(normalizer, embedder, opts...)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return store, cleanup, nil
}

// builtStore runs the one-time build before returning the store.
func builtStore(c *cli.Context) (*profiles.Store, func(), error) {
	store, cleanup, err := newStore(c)
	if err != nil {
		return nil, nil, err
	}
	if err := store.Build(context.Background()); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("corpus build failed: %w", err)
	}
	return store, cleanup, nil
}

func serveCommand(c *cli.Context) error {
	store, cleanup, err := newStore(c)
	if err != nil {
		return err
	}
	defer cleanup()

	// Serve immediately; data endpoints answer 503 until the build lands.
	go func() {
		if err := store.Build(context.Background()); err != nil {
			slog.Error("corpus build failed", "error", err)
			os.Exit(1)
		}
	}()

	return server.New(store).Start(c.String("addr"))
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query text is required")
	}

	store, cleanup, err := builtStore(c)
	if err != nil {
		return err
	}
	defer cleanup()

	matches, err := store.FindSimilar(context.Background(), query, c.Int("top-k"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if len(matches) == 0 {
		fmt.Println("No matches: the query has no usable content.")
		return nil
	}

	for i, m := range matches {
		fmt.Printf("%2d. [%.4f] #%d (cluster %d) %s\n",
			i+1, m.Similarity, m.ProfileID, m.Cluster, m.Description)
	}
	return nil
}

func predictCommand(c *cli.Context) error {
	text := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if text == "" {
		return fmt.Errorf("query text is required")
	}

	store, cleanup, err := builtStore(c)
	if err != nil {
		return err
	}
	defer cleanup()

	prediction, err := store.PredictCluster(context.Background(), text)
	if errors.Is(err, core.ErrEmptyQuery) {
		fmt.Println("No prediction: the query has no usable content.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("prediction failed: %w", err)
	}

	fmt.Printf("Cluster:    %d (%d members)\n", prediction.Cluster, prediction.ClusterSize)
	fmt.Printf("Confidence: %.4f\n", prediction.Confidence)
	fmt.Printf("Normalized: %s\n", prediction.NormalizedText)
	fmt.Print("Top tokens:")
	for _, tc := range prediction.TopTokens {
		fmt.Printf(" %s(%d)", tc.Token, tc.Count)
	}
	fmt.Println()
	return nil
}

func statsCommand(c *cli.Context) error {
	store, cleanup, err := builtStore(c)
	if err != nil {
		return err
	}
	defer cleanup()

	stats, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Printf("Profiles:        %d\n", stats.TotalProfiles)
	fmt.Printf("Clusters:        %d\n", stats.ClusterCount)
	fmt.Printf("Embedding dim:   %d\n", stats.EmbeddingDim)
	fmt.Printf("Mean similarity: %.4f\n", stats.MeanPairwiseSimilarity)
	for label := 0; label < stats.ClusterCount; label++ {
		fmt.Printf("  cluster %d: %d members\n", label, stats.ClusterSizes[label])
	}
	return nil
}

func exportCommand(c *cli.Context) error {
	store, cleanup, err := builtStore(c)
	if err != nil {
		return err
	}
	defer cleanup()

	built, err := store.Profiles()
	if err != nil {
		return err
	}
	if err := corpus.Export(c.String("out"), built); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Exported %d profiles to %s\n", len(built), c.String("out"))
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
