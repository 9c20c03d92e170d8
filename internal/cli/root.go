// Package cli wires the analysis pipelines into a command-line interface.
package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/moodlens/moodlens/internal/config"
	"github.com/moodlens/moodlens/internal/emotion"
	"github.com/moodlens/moodlens/internal/facedet"
	"github.com/moodlens/moodlens/internal/identity"
	"github.com/moodlens/moodlens/internal/pipeline"
)

var (
	cfgPath  string
	logLevel string
	cfg      *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "moodlens",
	Short:         "Video face recognition and emotion analysis",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log level")
}

// Execute runs the command tree under an interrupt-aware context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

// buildAnalyzers loads the three model handles for one pipeline invocation.
// Missing or corrupt model files abort the request before any frame is
// processed.
func buildAnalyzers() (*pipeline.Pipeline, func(), error) {
	localizer, err := facedet.NewLocalizer(cfg.Models.CascadePath, cfg.Analysis.MinFaceSize)
	if err != nil {
		return nil, nil, err
	}

	knn, err := identity.LoadModel(cfg.Models.KNNPath)
	if err != nil {
		localizer.Close()
		return nil, nil, err
	}

	idc := identity.NewClassifier(
		identity.NewEmbedder(cfg.Services.Embedding.URL, cfg.Services.Embedding.APIKey), knn)
	emc := emotion.NewClassifier(
		emotion.NewScorer(cfg.Services.Emotion.URL, cfg.Services.Emotion.APIKey),
		cfg.Analysis.EmotionInputSize)

	p := pipeline.New(localizer, idc, emc)
	cleanup := func() { localizer.Close() }
	return p, cleanup, nil
}
