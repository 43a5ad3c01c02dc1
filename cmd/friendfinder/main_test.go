package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSetupLogger(t *testing.T) {
	t.Run("valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "Info"} {
			app := &cli.App{
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "log-level", Value: "info"},
				},
				Before: setupLogger,
				Action: func(c *cli.Context) error { return nil },
			}
			err := app.Run([]string{"friendfinder", "--log-level", level})
			assert.NoError(t, err, "level %q", level)
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		app := &cli.App{
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "log-level", Value: "info"},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error { return nil },
		}
		err := app.Run([]string{"friendfinder", "--log-level", "verbose"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestCorpusFlagIsRequired(t *testing.T) {
	ran := false
	app := &cli.App{
		Commands: []*cli.Command{
			{
				Name:  "stats",
				Flags: corpusFlags(),
				Action: func(c *cli.Context) error {
					ran = true
					return nil
				},
			},
		},
	}

	err := app.Run([]string{"friendfinder", "stats"})
	require.Error(t, err)
	assert.False(t, ran)
}

func TestCorpusFlagDefaults(t *testing.T) {
	var clusters int
	var seed int64
	var host string

	app := &cli.App{
		Commands: []*cli.Command{
			{
				Name:  "stats",
				Flags: corpusFlags(),
				Action: func(c *cli.Context) error {
					clusters = c.Int("clusters")
					seed = c.Int64("seed")
					host = c.String("embedding-host")
					return nil
				},
			},
		},
	}

	require.NoError(t, app.Run([]string{"friendfinder", "stats", "--corpus", "profiles.csv"}))
	assert.Equal(t, 6, clusters)
	assert.Equal(t, int64(42), seed)
	assert.Equal(t, "http://localhost:11434/v1", host)
}
