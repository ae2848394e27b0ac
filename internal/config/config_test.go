package config

import (
	"os"
	"reflect"
	"testing"
	"time"
)

func isolate(t *testing.T) {
	t.Helper()
	// Switch to a temp directory to avoid loading a real .env
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("could not chdir to temp dir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origDir); err != nil {
			t.Fatalf("could not chdir back to original dir: %v", err)
		}
	})
}

func baseEnv() map[string]string {
	return map[string]string{
		"MARIADB_DSN":               "user:pass@tcp(localhost:3306)/db",
		"MARIADB_MAX_OPEN_CONN":     "10",
		"MARIADB_MAX_IDLE_CONNS":    "5",
		"MARIADB_CONN_MAX_LIFETIME": "30",
		"SERVER_PORT":               "8080",
		"VIDEO_UPLOAD_BUCKET":       "video-pipeline",
	}
}

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for k, v := range env {
		t.Setenv(k, v)
	}
}

func TestLoad_Success(t *testing.T) {
	isolate(t)
	reqs := baseEnv()
	reqs["CORS_ALLOWED_ORIGINS"] = "https://studio.example.com, https://lms.example.com"
	reqs["VIDEO_UPLOAD_ROOT_PATH"] = "uploads"
	setEnv(t, reqs)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.MariaDBDSN != reqs["MARIADB_DSN"] {
		t.Errorf("MariaDBDSN: expected %q, got %q", reqs["MARIADB_DSN"], cfg.MariaDBDSN)
	}
	if cfg.MaxOpenConns != 10 {
		t.Errorf("MaxOpenConns: expected %d, got %d", 10, cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns != 5 {
		t.Errorf("MaxIdleConns: expected %d, got %d", 5, cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime != 30*time.Second {
		t.Errorf("ConnMaxLifetime: expected %v, got %v", 30*time.Second, cfg.ConnMaxLifetime)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort: expected %d, got %d", 8080, cfg.ServerPort)
	}
	if cfg.CDNEnabled {
		t.Error("CDNEnabled: expected false by default")
	}
	if cfg.UploadBucket != "video-pipeline" || cfg.UploadRootPath != "uploads" {
		t.Errorf("upload settings: got bucket=%q root=%q", cfg.UploadBucket, cfg.UploadRootPath)
	}
	if cfg.UploadURLTTL != 86400*time.Second {
		t.Errorf("UploadURLTTL: expected 24h, got %v", cfg.UploadURLTTL)
	}
	if !cfg.StrictFilenamePreflight {
		t.Error("StrictFilenamePreflight: expected true by default")
	}
	if cfg.CDNEndpoint != "storage.googleapis.com" || cfg.CDNRegion != "auto" || !cfg.CDNUseSSL {
		t.Errorf("CDN defaults: got endpoint=%q region=%q ssl=%v", cfg.CDNEndpoint, cfg.CDNRegion, cfg.CDNUseSSL)
	}
	wantOrigins := []string{"https://studio.example.com", "https://lms.example.com"}
	if !reflect.DeepEqual(cfg.CORSAllowedOrigins, wantOrigins) {
		t.Errorf("CORSAllowedOrigins: expected %v, got %v", wantOrigins, cfg.CORSAllowedOrigins)
	}
}

func TestLoad_CDNEnabled(t *testing.T) {
	isolate(t)
	env := baseEnv()
	delete(env, "VIDEO_UPLOAD_BUCKET")
	env["ENABLE_CDN"] = "true"
	env["CDN_HOST"] = "https://cdn.example.com/"
	env["CDN_BUCKET"] = "videos"
	env["CDN_CREDENTIALS"] = `{"access_key":"a","secret_key":"b"}`
	env["STRICT_FILENAME_PREFLIGHT"] = "false"
	setEnv(t, env)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !cfg.CDNEnabled {
		t.Error("CDNEnabled: expected true")
	}
	if cfg.CDNHost != "https://cdn.example.com" {
		t.Errorf("CDNHost: expected trailing slash trimmed, got %q", cfg.CDNHost)
	}
	if cfg.StrictFilenamePreflight {
		t.Error("StrictFilenamePreflight: expected false")
	}
}

func TestLoad_MissingRequiredVars(t *testing.T) {
	cases := []struct {
		missingKey string
		wantErr    string
	}{
		{"MARIADB_DSN", "MARIADB_DSN is required"},
		{"MARIADB_MAX_OPEN_CONN", "MARIADB_MAX_OPEN_CONN is required"},
		{"MARIADB_MAX_IDLE_CONNS", "MARIADB_MAX_IDLE_CONNS is required"},
		{"MARIADB_CONN_MAX_LIFETIME", "MARIADB_CONN_MAX_LIFETIME is required"},
		{"SERVER_PORT", "SERVER_PORT is required"},
		{"VIDEO_UPLOAD_BUCKET", "VIDEO_UPLOAD_BUCKET is required when ENABLE_CDN is not set"},
	}

	for _, tc := range cases {
		t.Run(tc.missingKey, func(t *testing.T) {
			isolate(t)
			env := baseEnv()
			delete(env, tc.missingKey)
			setEnv(t, env)
			os.Unsetenv(tc.missingKey)

			_, err := Load()
			if err == nil {
				t.Fatalf("expected error for missing %s, got nil", tc.missingKey)
			}
			if err.Error() != tc.wantErr {
				t.Errorf("expected error %q, got %q", tc.wantErr, err.Error())
			}
		})
	}
}

func TestLoad_CDNMissingSettings(t *testing.T) {
	cases := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "no host",
			env:     map[string]string{"CDN_BUCKET": "videos", "CDN_CREDENTIALS": "{}"},
			wantErr: "CDN_HOST is required when ENABLE_CDN is set",
		},
		{
			name:    "no bucket",
			env:     map[string]string{"CDN_HOST": "https://cdn", "CDN_CREDENTIALS": "{}"},
			wantErr: "CDN_BUCKET is required when ENABLE_CDN is set",
		},
		{
			name:    "no credentials",
			env:     map[string]string{"CDN_HOST": "https://cdn", "CDN_BUCKET": "videos"},
			wantErr: "CDN_CREDENTIALS or CDN_CREDENTIALS_SECRET is required when ENABLE_CDN is set",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			isolate(t)
			env := baseEnv()
			env["ENABLE_CDN"] = "true"
			for k, v := range tc.env {
				env[k] = v
			}
			setEnv(t, env)

			_, err := Load()
			if err == nil || err.Error() != tc.wantErr {
				t.Fatalf("expected error %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestLoadWorker_SkipsDatabaseKeys(t *testing.T) {
	isolate(t)
	for _, key := range serverKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	setEnv(t, map[string]string{
		"REDIS_ADDR":          "localhost:6379",
		"VIDEO_UPLOAD_BUCKET": "video-pipeline",
	})

	cfg, err := LoadWorker()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.RedisAddr != "localhost:6379" || cfg.UploadBucket != "video-pipeline" {
		t.Errorf("unexpected settings %+v", cfg)
	}
	if cfg.MariaDBDSN != "" {
		t.Errorf("MariaDBDSN: expected empty, got %q", cfg.MariaDBDSN)
	}

	if _, err := Load(); err == nil || err.Error() != "MARIADB_DSN is required" {
		t.Errorf("Load must still require the database keys, got %v", err)
	}
}

func TestLoadWorker_RequiresRedis(t *testing.T) {
	isolate(t)
	t.Setenv("REDIS_ADDR", "")
	os.Unsetenv("REDIS_ADDR")
	setEnv(t, map[string]string{"VIDEO_UPLOAD_BUCKET": "video-pipeline"})

	_, err := LoadWorker()
	if err == nil || err.Error() != "REDIS_ADDR is required to run the worker" {
		t.Fatalf("expected missing REDIS_ADDR error, got %v", err)
	}
}
