package config

// Service describes one external model service endpoint
type Service struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api_key"`
}

// Services holds the endpoints of the external capabilities
type Services struct {
	Embedding Service `mapstructure:"embedding"`
	Emotion   Service `mapstructure:"emotion"`
	ASR       Service `mapstructure:"asr"`
}

// Models holds paths to locally loaded model artifacts
type Models struct {
	CascadePath string `mapstructure:"cascade_path"`
	KNNPath     string `mapstructure:"knn_path"`
}

// Analysis holds frame-loop tuning
type Analysis struct {
	Stride           int     `mapstructure:"stride"`
	LiveFPSLimit     float64 `mapstructure:"live_fps_limit"`
	MaxFrames        int     `mapstructure:"max_frames"`
	MinFaceSize      int     `mapstructure:"min_face_size"`
	EmotionInputSize int     `mapstructure:"emotion_input_size"`
}

// Audio holds transcript pipeline settings
type Audio struct {
	SampleRate int    `mapstructure:"sample_rate"`
	Locale     string `mapstructure:"locale"`
}

// Paths holds output locations
type Paths struct {
	Outputs string `mapstructure:"outputs"`
}

// Config holds the full application configuration
type Config struct {
	LogLevel string   `mapstructure:"log_level"`
	Services Services `mapstructure:"services"`
	Models   Models   `mapstructure:"models"`
	Analysis Analysis `mapstructure:"analysis"`
	Audio    Audio    `mapstructure:"audio"`
	Paths    Paths    `mapstructure:"paths"`
}
