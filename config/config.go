// Package config loads application settings from .env and defaults into an
// explicit Config value that is handed to the components that need it.
// Nothing in the codebase reads the environment directly.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	defaultAppEnv       = "local"
	defaultAppPort      = "9000"
	defaultMongoURI     = "mongodb://localhost:27017"
	defaultMongoDB      = "rabbit"
	defaultJWTSecret    = "change-me-in-production"
	defaultRedisAddr    = "localhost:6379"
	defaultCORSOrigin   = "*"
	defaultUploadFolder = "rabbit_products"
	defaultMaxBodyBytes = 4 << 20 // 4 MB
)

// Config is the root configuration object, built once by Load and passed
// explicitly to the server, auth, cache and storage layers.
type Config struct {
	AppEnv     string
	AppPort    string
	JWTSecret  string
	CORSOrigin string

	MaxBodyBytes int64

	Mongo   MongoConfig
	Redis   RedisConfig
	Storage StorageConfig
}

type MongoConfig struct {
	URI      string
	Database string
}

type RedisConfig struct {
	Addr     string
	Password string
}

// StorageConfig selects and configures the upload target.
// Disk is one of "local", "s3", "imagehost".
type StorageConfig struct {
	Disk         string
	UploadFolder string

	LocalRoot string
	LocalURL  string

	S3 S3Config

	ImageHost ImageHostConfig
}

type S3Config struct {
	Bucket   string
	Region   string
	Key      string
	Secret   string
	Endpoint string // leave empty for real AWS
	URL      string
}

// ImageHostConfig points at a Cloudinary-style HTTP upload endpoint.
type ImageHostConfig struct {
	UploadURL string
	APIKey    string
	APISecret string
}

// Production reports whether the app runs with production settings.
func (c *Config) Production() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}

// Load builds a Config from defaults overlaid with .env (if present).
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path, used by tests.
func LoadFile(envPath string) (*Config, error) {
	values := map[string]string{}

	if err := mergeDotEnv(envPath, values); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	get := func(key, fallback string) string {
		if v := strings.TrimSpace(values[key]); v != "" {
			return v
		}
		return fallback
	}

	maxBody := int64(defaultMaxBodyBytes)
	if raw := get("MAX_BODY_BYTES", ""); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("config: invalid MAX_BODY_BYTES %q", raw)
		}
		maxBody = n
	}

	cfg := &Config{
		AppEnv:       get("APP_ENV", defaultAppEnv),
		AppPort:      get("APP_PORT", defaultAppPort),
		JWTSecret:    get("JWT_SECRET", defaultJWTSecret),
		CORSOrigin:   get("FRONTEND_URL", defaultCORSOrigin),
		MaxBodyBytes: maxBody,
		Mongo: MongoConfig{
			URI:      get("MONGO_URI", defaultMongoURI),
			Database: get("MONGO_DB", defaultMongoDB),
		},
		Redis: RedisConfig{
			Addr:     get("REDIS_ADDR", defaultRedisAddr),
			Password: get("REDIS_PASSWORD", ""),
		},
		Storage: StorageConfig{
			Disk:         get("STORAGE_DISK", "local"),
			UploadFolder: get("UPLOAD_FOLDER", defaultUploadFolder),
			LocalRoot:    get("STORAGE_LOCAL_ROOT", "storage"),
			LocalURL:     get("STORAGE_URL", "http://localhost:9000/storage"),
			S3: S3Config{
				Bucket:   get("S3_BUCKET", ""),
				Region:   get("S3_REGION", "us-east-1"),
				Key:      get("S3_KEY", ""),
				Secret:   get("S3_SECRET", ""),
				Endpoint: get("S3_ENDPOINT", ""),
				URL:      get("S3_URL", ""),
			},
			ImageHost: ImageHostConfig{
				UploadURL: get("IMAGE_HOST_UPLOAD_URL", ""),
				APIKey:    get("IMAGE_HOST_API_KEY", ""),
				APISecret: get("IMAGE_HOST_API_SECRET", ""),
			},
		},
	}

	switch cfg.Storage.Disk {
	case "local", "s3", "imagehost":
	default:
		return nil, fmt.Errorf("config: unsupported STORAGE_DISK %q (supported: local, s3, imagehost)", cfg.Storage.Disk)
	}

	return cfg, nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	return nil
}
