package video

import (
	"time"

	"github.com/fhuszti/videos-cdn-go/internal/config"
)

// Strategy describes where uploads go and how they are played back.
type Strategy struct {
	// RootPath prefixes every object key.
	RootPath string
	// CDNEnabled turns on CDN playback sources for new and saved videos.
	CDNEnabled bool
	CDNHost    string
	// StrictPreflight checks every file name before any side effect.
	StrictPreflight bool
	TTL             time.Duration
}

// StrategyFromSettings picks the upload strategy from the loaded configuration.
func StrategyFromSettings(cfg *config.Settings) Strategy {
	return Strategy{
		RootPath:        cfg.UploadRootPath,
		CDNEnabled:      cfg.CDNEnabled,
		CDNHost:         cfg.CDNHost,
		StrictPreflight: cfg.StrictFilenamePreflight,
		TTL:             cfg.UploadURLTTL,
	}
}

func (s Strategy) ttl() time.Duration {
	if s.TTL <= 0 {
		return config.KeyExpiration
	}
	return s.TTL
}
