package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/moodlens/moodlens/internal/fetch"
)

var fetchOut string

var fetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Download a video from a URL for analysis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := fetch.Download(cmd.Context(), args[0], fetchOut)
		if err != nil {
			return err
		}
		logrus.Infof("video saved to %s", path)
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVar(&fetchOut, "out", "video.mp4", "output file path")
	rootCmd.AddCommand(fetchCmd)
}
