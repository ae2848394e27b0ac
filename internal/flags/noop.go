package flags

import (
	"context"

	"github.com/fhuszti/videos-cdn-go/internal/port"
)

// StaticFlags serves the deployment defaults when Redis is not configured.
type StaticFlags struct {
	defaults map[string]bool
}

// compile-time check: *StaticFlags must satisfy port.FeatureFlags
var _ port.FeatureFlags = (*StaticFlags)(nil)

func NewStatic(defaults map[string]bool) *StaticFlags {
	return &StaticFlags{defaults: defaults}
}

func (s *StaticFlags) Enabled(ctx context.Context, flag, courseKey string) (bool, error) {
	return s.defaults[flag], nil
}
