package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/moodlens/moodlens/internal/pipeline"
	"github.com/moodlens/moodlens/internal/report"
)

var (
	analyzeOut  string
	analyzeLog  string
	analyzeShow bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <video>",
	Short: "Analyze a video file offline with stride sampling",
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
		width, height := src.Size()

		sink, err := pipeline.NewVideoSink(analyzeOut, src.FPS(), width, height)
		if err != nil {
			src.Close()
			return err
		}

		frameLog, err := pipeline.NewFrameLog(analyzeLog)
		if err != nil {
			src.Close()
			sink.Close()
			return err
		}
		defer frameLog.Close()

		opts := pipeline.Options{
			Sampler:     pipeline.NewStrideSampler(cfg.Analysis.Stride),
			Accumulator: pipeline.NewDurationAccumulator(),
			Annotator:   pipeline.BoxAnnotator{},
			Sink:        sink,
			Log:         frameLog,
		}
		if analyzeShow {
			opts.Display = pipeline.NewWindowDisplay("MoodLens - Video Analizi")
		}

		rep, err := p.Run(cmd.Context(), src, videoPath, opts)
		if err != nil {
			return err
		}

		path, err := report.Persist(cfg.Paths.Outputs, rep)
		if err != nil {
			return err
		}
		logrus.Infof("output video: %s, log: %s, report: %s", analyzeOut, analyzeLog, path)
		fmt.Print(rep.Summary())
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeOut, "out", "analyzed_output.mp4", "annotated output video path")
	analyzeCmd.Flags().StringVar(&analyzeLog, "log", "loglar.txt", "frame log path")
	analyzeCmd.Flags().BoolVar(&analyzeShow, "show", false, "display processed frames in a window")
	rootCmd.AddCommand(analyzeCmd)
}
