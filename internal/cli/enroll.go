package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/moodlens/moodlens/internal/identity"
)

// Enrollment images larger than this are downscaled before upload.
const enrollMaxDim = 640

var enrollCmd = &cobra.Command{
	Use:   "enroll <dir>",
	Short: "Build the identity model from a directory of labelled face images",
	Long: `Builds the nearest-neighbour identity model from a directory laid out as
<dir>/<person>/<image>.jpg, embedding every image through the embedding
service and writing the model to the configured path.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := args[0]
		embedder := identity.NewEmbedder(cfg.Services.Embedding.URL, cfg.Services.Embedding.APIKey)
		model := &identity.Model{Version: 1}

		people, err := os.ReadDir(root)
		if err != nil {
			return fmt.Errorf("failed to read enrollment dir: %w", err)
		}

		for _, person := range people {
			if !person.IsDir() {
				continue
			}
			label := person.Name()
			images, err := os.ReadDir(filepath.Join(root, label))
			if err != nil {
				return err
			}
			added := 0
			for _, entry := range images {
				name := entry.Name()
				ext := strings.ToLower(filepath.Ext(name))
				if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
					continue
				}
				path := filepath.Join(root, label, name)

				img, err := imaging.Open(path, imaging.AutoOrientation(true))
				if err != nil {
					logrus.Warnf("skipping %s: %v", path, err)
					continue
				}
				img = imaging.Fit(img, enrollMaxDim, enrollMaxDim, imaging.Lanczos)

				var buf bytes.Buffer
				if err := imaging.Encode(&buf, img, imaging.JPEG); err != nil {
					logrus.Warnf("skipping %s: %v", path, err)
					continue
				}

				embedding, err := embedder.Embed(cmd.Context(), buf.Bytes(), name)
				if err != nil {
					logrus.Warnf("skipping %s: %v", path, err)
					continue
				}
				model.Add(label, embedding)
				added++
			}
			logrus.Infof("enrolled %s: %d image(s)", label, added)
		}

		if err := model.Save(cfg.Models.KNNPath); err != nil {
			return err
		}
		logrus.Infof("wrote identity model with %d samples to %s", len(model.Labels), cfg.Models.KNNPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(enrollCmd)
}
