package flags

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/fhuszti/videos-cdn-go/internal/port"
	"github.com/redis/go-redis/v9"
)

// RedisFlags resolves feature flags from per-course overrides stored in Redis,
// falling back to the deployment defaults.
type RedisFlags struct {
	client   *redis.Client
	defaults map[string]bool
}

// compile-time check: *RedisFlags must satisfy port.FeatureFlags
var _ port.FeatureFlags = (*RedisFlags)(nil)

func NewRedisFlags(addr, password string, defaults map[string]bool) *RedisFlags {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &RedisFlags{client: rdb, defaults: defaults}
}

func (f *RedisFlags) Enabled(ctx context.Context, flag, courseKey string) (bool, error) {
	val, err := f.client.Get(ctx, overrideKey(flag, courseKey)).Result()
	if errors.Is(err, redis.Nil) {
		return f.defaults[flag], nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get failed: %w", err)
	}

	switch val {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		log.Printf("ignoring malformed override %q for flag %q on course %q", val, flag, courseKey)
		return f.defaults[flag], nil
	}
}

// SetCourseOverride forces a flag on or off for one course.
func (f *RedisFlags) SetCourseOverride(ctx context.Context, flag, courseKey string, on bool) error {
	log.Printf("setting override of flag %q for course %q to %v...", flag, courseKey, on)

	val := "0"
	if on {
		val = "1"
	}
	if err := f.client.Set(ctx, overrideKey(flag, courseKey), val, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// ClearCourseOverride makes the course follow the deployment default again.
func (f *RedisFlags) ClearCourseOverride(ctx context.Context, flag, courseKey string) error {
	if err := f.client.Del(ctx, overrideKey(flag, courseKey)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func overrideKey(flag, courseKey string) string {
	return "feature:" + flag + ":course:" + courseKey
}
