package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moodlens/moodlens/internal/pipeline"
	"github.com/moodlens/moodlens/internal/report"
	"github.com/moodlens/moodlens/internal/speech"
)

var speakerCmd = &cobra.Command{
	Use:   "speaker <video>",
	Short: "Combined speaker, emotion and transcript analysis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoPath := args[0]

		p, cleanup, err := buildAnalyzers()
		if err != nil {
			return err
		}
		defer cleanup()

		src, err := pipeline.OpenFile(videoPath)
		if err != nil {
			return err
		}

		// every frame is considered, capped at the configured maximum
		maxFrames := cfg.Analysis.MaxFrames
		if total := src.FrameCount(); total > 0 && total < maxFrames {
			maxFrames = total
		}

		opts := pipeline.Options{
			Sampler:           pipeline.NewStrideSampler(1),
			Accumulator:       pipeline.NewCountAccumulator(),
			MaxProcessed:      maxFrames,
			TrackFirstEmotion: true,
		}

		rep, err := p.Run(cmd.Context(), src, videoPath, opts)
		if err != nil {
			return err
		}

		// transcript stage runs strictly after the frame loop
		transcriber := speech.NewTranscriber(cfg.Services.ASR.URL, cfg.Services.ASR.APIKey)
		tr := speech.NewPipeline(transcriber, cfg.Audio.Locale, cfg.Audio.SampleRate).Run(cmd.Context(), videoPath)
		rep.Transcript = tr.Text
		rep.SpeechMinutes = tr.Minutes

		if _, err := report.Persist(cfg.Paths.Outputs, rep); err != nil {
			return err
		}
		fmt.Println(rep.RenderCombined())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(speakerCmd)
}
