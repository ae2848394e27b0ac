package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// KeyExpiration is the lifetime of a signed upload URL.
const KeyExpiration = 86400 * time.Second

type Settings struct {
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ServerPort      int

	RedisAddr     string
	RedisPassword string

	JWTPublicKey       string
	CORSAllowedOrigins []string

	// ENABLE_CDN selects the CDN upload strategy; otherwise the host's
	// default pipeline bucket is used.
	CDNEnabled           bool
	CDNHost              string
	CDNBucket            string
	CDNEndpoint          string
	CDNRegion            string
	CDNUseSSL            bool
	CDNCredentials       string
	CDNCredentialsSecret string

	UploadRootPath  string
	UploadBucket    string
	UploadRegion    string
	UploadEndpoint  string
	UploadAccessKey string
	UploadSecretKey string

	TranscriptFlagDefault   bool
	StrictFilenamePreflight bool
	UploadURLTTL            time.Duration
}

// serverKeys are required by the commands that open the database.
var serverKeys = []string{
	"MARIADB_DSN",
	"MARIADB_MAX_OPEN_CONN",
	"MARIADB_MAX_IDLE_CONNS",
	"MARIADB_CONN_MAX_LIFETIME",
	"SERVER_PORT",
}

// Load reads the settings of the API and migrate commands.
func Load() (*Settings, error) {
	return load(true)
}

// LoadWorker reads the settings of the purge worker. It never opens the
// database, so the MariaDB keys are optional, but Redis is mandatory.
func LoadWorker() (*Settings, error) {
	s, err := load(false)
	if err != nil {
		return nil, err
	}
	if s.RedisAddr == "" {
		return nil, fmt.Errorf("REDIS_ADDR is required to run the worker")
	}
	return s, nil
}

func load(withServer bool) (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetConfigFile(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	v.SetDefault("CDN_ENDPOINT", "storage.googleapis.com")
	v.SetDefault("CDN_REGION", "auto")
	v.SetDefault("CDN_USE_SSL", true)
	v.SetDefault("VIDEO_UPLOAD_REGION", "us-east-1")
	v.SetDefault("STRICT_FILENAME_PREFLIGHT", true)

	if withServer {
		for _, key := range serverKeys {
			if !v.IsSet(key) {
				return nil, fmt.Errorf("%s is required", key)
			}
		}
	}

	s := &Settings{
		MariaDBDSN:      v.GetString("MARIADB_DSN"),
		MaxOpenConns:    v.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    v.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(v.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:      v.GetInt("SERVER_PORT"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),

		JWTPublicKey:       v.GetString("JWT_PUBLIC_KEY"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),

		CDNEnabled:           v.GetBool("ENABLE_CDN"),
		CDNHost:              strings.TrimRight(v.GetString("CDN_HOST"), "/"),
		CDNBucket:            v.GetString("CDN_BUCKET"),
		CDNEndpoint:          v.GetString("CDN_ENDPOINT"),
		CDNRegion:            v.GetString("CDN_REGION"),
		CDNUseSSL:            v.GetBool("CDN_USE_SSL"),
		CDNCredentials:       v.GetString("CDN_CREDENTIALS"),
		CDNCredentialsSecret: v.GetString("CDN_CREDENTIALS_SECRET"),

		UploadRootPath:  v.GetString("VIDEO_UPLOAD_ROOT_PATH"),
		UploadBucket:    v.GetString("VIDEO_UPLOAD_BUCKET"),
		UploadRegion:    v.GetString("VIDEO_UPLOAD_REGION"),
		UploadEndpoint:  v.GetString("VIDEO_UPLOAD_ENDPOINT"),
		UploadAccessKey: v.GetString("VIDEO_UPLOAD_ACCESS_KEY"),
		UploadSecretKey: v.GetString("VIDEO_UPLOAD_SECRET_KEY"),

		TranscriptFlagDefault:   v.GetBool("FEATURE_VIDEO_TRANSCRIPT_ENABLED"),
		StrictFilenamePreflight: v.GetBool("STRICT_FILENAME_PREFLIGHT"),
		UploadURLTTL:            KeyExpiration,
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) validate() error {
	if s.CDNEnabled {
		if s.CDNHost == "" {
			return fmt.Errorf("CDN_HOST is required when ENABLE_CDN is set")
		}
		if s.CDNBucket == "" {
			return fmt.Errorf("CDN_BUCKET is required when ENABLE_CDN is set")
		}
		if s.CDNCredentials == "" && s.CDNCredentialsSecret == "" {
			return fmt.Errorf("CDN_CREDENTIALS or CDN_CREDENTIALS_SECRET is required when ENABLE_CDN is set")
		}
		return nil
	}
	if s.UploadBucket == "" {
		return fmt.Errorf("VIDEO_UPLOAD_BUCKET is required when ENABLE_CDN is not set")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
