package pipeline

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/moodlens/moodlens/internal/emotion"
	"github.com/moodlens/moodlens/internal/identity"
	"github.com/moodlens/moodlens/internal/report"
)

// Pipeline runs the frame analysis loop over one video source. All model
// handles are injected per invocation; the pipeline is stateless between
// runs.
type Pipeline struct {
	localizer Localizer
	identity  IdentityClassifier
	emotion   EmotionClassifier
	log       *logrus.Entry
}

// New builds a pipeline over injected capability adapters.
func New(localizer Localizer, id IdentityClassifier, emo EmotionClassifier) *Pipeline {
	return &Pipeline{
		localizer: localizer,
		identity:  id,
		emotion:   emo,
		log:       logrus.WithField("component", "pipeline"),
	}
}

// Run consumes the source until end of stream, cancellation or the
// processed-frame cap, and returns the accumulated report. The source,
// sink and display are released on every exit path. Per-face classifier
// failures are contained; they never abort the frame or the run.
func (p *Pipeline) Run(ctx context.Context, src Source, sourceName string, opts Options) (*report.Report, error) {
	defer src.Close()
	if opts.Sink != nil {
		defer opts.Sink.Close()
	}
	if opts.Display != nil {
		defer opts.Display.Close()
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	fps := src.FPS()
	slot := opts.Sampler.Slot(fps)
	rep := report.New(sourceName)
	rep.FPS = fps
	if opts.TrackFirstEmotion {
		rep.FirstEmotion = map[string]string{}
	}

	processed := 0
	var f Frame
	for {
		if ctx.Err() != nil {
			p.log.Info("analysis cancelled")
			break
		}
		if opts.Display != nil && opts.Display.Cancelled() {
			p.log.Info("analysis stopped by user")
			break
		}
		if !src.Read(&f) {
			p.log.Debug("end of stream")
			break
		}
		rep.TotalFrames = f.Index

		if !opts.Sampler.Admit(f.Index, now()) {
			// pass-through frames are written unmodified and contribute
			// no aggregation updates
			if err := p.emit(&f, opts); err != nil {
				return rep, err
			}
			continue
		}

		p.processFrame(ctx, &f, slot, opts, rep)
		if err := p.emit(&f, opts); err != nil {
			return rep, err
		}
		if opts.Display != nil {
			opts.Display.Show(&f)
		}

		processed++
		if opts.MaxProcessed > 0 && processed >= opts.MaxProcessed {
			p.log.Infof("reached frame cap of %d processed frames", opts.MaxProcessed)
			break
		}
	}

	rep.PresenceTime, rep.EmotionTime = opts.Accumulator.Totals(fps)
	rep.AppearanceCounts = opts.Accumulator.Counts()
	p.log.WithFields(logrus.Fields{
		"frames":    rep.TotalFrames,
		"processed": processed,
		"faces":     len(rep.Details),
	}).Info("analysis finished")
	return rep, nil
}

// processFrame runs the per-face sequence: identity, emotion, aggregation,
// annotation, logging. Face order from the detector is preserved.
func (p *Pipeline) processFrame(ctx context.Context, f *Frame, slot float64, opts Options, rep *report.Report) {
	for _, box := range p.localizer.Detect(f.Mat) {
		name := identity.Unknown
		if n, err := p.identity.Classify(ctx, f.Mat, box); err != nil {
			p.log.WithField("frame", f.Index).Warnf("face recognition failed: %v", err)
		} else {
			name = n
		}

		emotionText := emotion.NotDetected
		res, emoErr := p.emotion.Classify(ctx, f.Mat, box)
		if emoErr != nil {
			p.log.WithField("frame", f.Index).Warnf("emotion analysis failed: %v", emoErr)
		} else {
			emotionText = res.Text()
		}

		// Presence counts whenever a face was localized; emotion only when
		// classification succeeded.
		opts.Accumulator.RecordPresence(name, slot)
		if emoErr == nil {
			opts.Accumulator.RecordEmotion(res.Label, slot)
		}

		if opts.TrackFirstEmotion {
			if _, seen := rep.FirstEmotion[name]; !seen {
				label := identity.Unknown
				if emoErr == nil {
					label = res.Label
				}
				rep.FirstEmotion[name] = label
			}
		}

		if opts.Annotator != nil {
			opts.Annotator.Annotate(&f.Mat, box, name, emotionText)
		}

		entry := report.Entry{Frame: f.Index, Identity: name, Emotion: emotionText}
		rep.Details = append(rep.Details, entry)
		if opts.Log != nil {
			if err := opts.Log.Append(entry); err != nil {
				p.log.Warnf("frame log write failed: %v", err)
			}
		}
	}
}

func (p *Pipeline) emit(f *Frame, opts Options) error {
	if opts.Sink == nil {
		return nil
	}
	return opts.Sink.Write(f)
}
