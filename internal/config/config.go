package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Load reads configuration from an optional file and MOODLENS_* environment
// variables, applying defaults for everything left unset.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Default values
	v.SetDefault("log_level", "info")
	v.SetDefault("models.cascade_path", "models/haarcascade_frontalface_default.xml")
	v.SetDefault("models.knn_path", "models/face_knn_model.json")
	v.SetDefault("analysis.stride", 5)
	v.SetDefault("analysis.live_fps_limit", 5.0)
	v.SetDefault("analysis.max_frames", 1000)
	v.SetDefault("analysis.min_face_size", 0)
	v.SetDefault("analysis.emotion_input_size", 48)
	v.SetDefault("audio.sample_rate", 16000)
	v.SetDefault("audio.locale", "tr-TR")
	v.SetDefault("paths.outputs", "outputs")

	// Service keys default to empty so env overrides reach Unmarshal; viper
	// only maps MOODLENS_* variables onto keys it already knows about.
	for _, svc := range []string{"embedding", "emotion", "asr"} {
		v.SetDefault("services."+svc+".url", "")
		v.SetDefault("services."+svc+".api_key", "")
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("moodlens")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.moodlens")
	}

	v.SetEnvPrefix("MOODLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || path != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		logrus.Debug("no config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Resolve service URLs with auto-detection
	cfg.Services.Embedding.URL = resolveServiceURL(cfg.Services.Embedding.URL, "moodlens-embedding", "5100")
	cfg.Services.Emotion.URL = resolveServiceURL(cfg.Services.Emotion.URL, "moodlens-emotion", "5200")
	cfg.Services.ASR.URL = resolveServiceURL(cfg.Services.ASR.URL, "moodlens-asr", "5300")

	if cfg.Analysis.Stride < 1 {
		return nil, fmt.Errorf("analysis.stride must be >= 1, got %d", cfg.Analysis.Stride)
	}
	if cfg.Analysis.LiveFPSLimit <= 0 {
		return nil, fmt.Errorf("analysis.live_fps_limit must be positive, got %g", cfg.Analysis.LiveFPSLimit)
	}

	return &cfg, nil
}

// resolveServiceURL resolves a service URL with proper DNS lookup.
// Handles IP addresses, hostnames, container names, and localhost so the
// same configuration works standalone and inside Docker Compose.
func resolveServiceURL(configured string, defaultContainerName string, defaultPort string) string {
	const defaultScheme = "http"
	fallback := fmt.Sprintf("%s://%s:%s", defaultScheme, defaultContainerName, defaultPort)

	if configured == "" {
		logrus.Debugf("no URL configured for %s, using default: %s", defaultContainerName, fallback)
		return fallback
	}

	parsed, err := url.Parse(configured)
	if err != nil {
		logrus.Warnf("failed to parse service URL %q: %v, using fallback", configured, err)
		return fallback
	}

	hostname := parsed.Hostname()
	port := parsed.Port()
	scheme := parsed.Scheme
	if scheme == "" {
		scheme = defaultScheme
	}
	if port == "" {
		port = defaultPort
	}

	// localhost and raw IPs pass through untouched
	if hostname == "localhost" || net.ParseIP(hostname) != nil {
		return fmt.Sprintf("%s://%s:%s", scheme, hostname, port)
	}

	addrs, err := net.LookupIP(hostname)
	if err != nil || len(addrs) == 0 {
		logrus.Warnf("DNS lookup failed for %q, using hostname as-is", hostname)
		return fmt.Sprintf("%s://%s:%s", scheme, hostname, port)
	}

	resolved := fmt.Sprintf("%s://%s:%s", scheme, addrs[0].String(), port)
	logrus.Debugf("resolved %q to %s", hostname, resolved)
	return resolved
}
