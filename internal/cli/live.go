package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moodlens/moodlens/internal/pipeline"
)

var liveDevice int

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Analyze a live camera stream (press 'q' to stop)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, cleanup, err := buildAnalyzers()
		if err != nil {
			return err
		}
		defer cleanup()

		src, err := pipeline.OpenCamera(liveDevice)
		if err != nil {
			return err
		}

		opts := pipeline.Options{
			Sampler:     pipeline.NewRateSampler(cfg.Analysis.LiveFPSLimit),
			Accumulator: pipeline.NewDurationAccumulator(),
			Annotator:   pipeline.BoxAnnotator{},
			Display:     pipeline.NewWindowDisplay("Kamera - Canlı Analiz (Çıkmak için 'q' bas)"),
		}

		rep, err := p.Run(cmd.Context(), src, fmt.Sprintf("camera:%d", liveDevice), opts)
		if err != nil {
			return err
		}
		fmt.Print(rep.Summary())
		return nil
	},
}

func init() {
	liveCmd.Flags().IntVar(&liveDevice, "device", 0, "camera device index")
	rootCmd.AddCommand(liveCmd)
}
