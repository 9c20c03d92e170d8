// Package fetch downloads a video from a URL to a local file via yt-dlp.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// Download fetches the video at url into outputPath as an mp4 and returns
// the path.
func Download(ctx context.Context, url string, outputPath string) (string, error) {
	cmd := exec.CommandContext(ctx, "yt-dlp",
		"-f", "bestvideo[ext=mp4]+bestaudio[ext=m4a]/mp4",
		"--merge-output-format", "mp4",
		"--retries", "10",
		"--no-warnings",
		"-o", outputPath,
		url,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logrus.Infof("downloading %s -> %s", url, outputPath)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("yt-dlp failed: %w: %s", err, stderr.String())
	}
	return outputPath, nil
}
