// Package config loads rentaldeploy settings.
//
// Values are layered, later sources winning:
//
//	built-in defaults → config/app.json → .env → process environment
//
// The merged key/value set is decoded into a typed Settings struct with
// go-envconfig, so every consumer receives plain Go values instead of
// looking keys up by name.
package config

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	defaultConfigPath = "config/app.json"
	defaultEnvPath    = ".env"
)

// Settings is the fully decoded configuration.
type Settings struct {
	App      App
	Database Database
	Admin    Admin
	Lock     Lock
	Redis    Redis
	Storage  Storage
	Metrics  Metrics
	Log      Log
	Server   Server
}

type App struct {
	Env string `env:"APP_ENV, default=local"`
}

// Production reports whether APP_ENV names a production environment.
func (a App) Production() bool {
	switch strings.ToLower(a.Env) {
	case "production", "prod":
		return true
	}
	return false
}

type Database struct {
	Driver string `env:"DB_DRIVER, default=sqlite"`
	DSN    string `env:"DATABASE_DSN"`
}

// Admin holds the bootstrap administrator identity. An empty password makes
// the bootstrap step generate one.
type Admin struct {
	Email    string `env:"ADMIN_EMAIL, default=admin@rentalapp.com"`
	Password string `env:"ADMIN_PASSWORD"`
	FullName string `env:"ADMIN_FULL_NAME, default=Chief Administrator"`
	Phone    string `env:"ADMIN_PHONE, default=+7 (999) 000-00-00"`
}

type Lock struct {
	Driver string        `env:"LOCK_DRIVER, default=none"` // none | redis
	Key    string        `env:"LOCK_KEY, default=rentaldeploy:deploy"`
	TTL    time.Duration `env:"LOCK_TTL, default=10m"`
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type Storage struct {
	Disk      string `env:"STORAGE_DISK, default=local"`
	LocalRoot string `env:"STORAGE_LOCAL_ROOT, default=storage"`
	URL       string `env:"STORAGE_URL, default=http://localhost:8080/storage"`

	S3Bucket   string `env:"S3_BUCKET"`
	S3Region   string `env:"S3_REGION, default=us-east-1"`
	S3Key      string `env:"S3_KEY"`
	S3Secret   string `env:"S3_SECRET"`
	S3Endpoint string `env:"S3_ENDPOINT"`
	S3URL      string `env:"S3_URL"`
}

type Metrics struct {
	PushgatewayURL string `env:"METRICS_PUSHGATEWAY_URL"`
	Job            string `env:"METRICS_JOB, default=rentaldeploy"`
}

type Log struct {
	Level           string `env:"LOG_LEVEL, default=info"`
	MongoURI        string `env:"LOG_MONGO_URI"`
	MongoDatabase   string `env:"LOG_MONGO_DB, default=rentaldeploy"`
	MongoCollection string `env:"LOG_MONGO_COLLECTION, default=deploy_logs"`
}

type Server struct {
	Addr            string        `env:"SERVER_ADDR, default=:8090"`
	GRPCAddr        string        `env:"GRPC_ADDR"`
	RefreshInterval time.Duration `env:"STATUS_REFRESH_INTERVAL, default=30s"`
}

var (
	loadOnce sync.Once
	loaded   *Settings
	loadErr  error
)

// Load reads the default config files once and returns the shared Settings.
func Load() (*Settings, error) {
	loadOnce.Do(func() {
		loaded, loadErr = LoadFrom(context.Background(), defaultConfigPath, defaultEnvPath)
	})
	return loaded, loadErr
}

// LoadFrom builds Settings from the given files (missing files are ignored)
// overlaid with the process environment. It does not touch the cached value
// returned by Load.
func LoadFrom(ctx context.Context, configPath, envPath string) (*Settings, error) {
	files := map[string]string{}

	if err := mergeJSONConfig(configPath, files); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err := mergeDotEnv(envPath, files); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return decode(ctx, envconfig.MultiLookuper(
		envconfig.OsLookuper(),
		envconfig.MapLookuper(files),
	))
}

// FromMap decodes Settings from an explicit key/value set only.
func FromMap(ctx context.Context, values map[string]string) (*Settings, error) {
	return decode(ctx, envconfig.MapLookuper(values))
}

func decode(ctx context.Context, l envconfig.Lookuper) (*Settings, error) {
	var s Settings
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &s,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	s.Database.Driver = strings.ToLower(strings.TrimSpace(s.Database.Driver))
	s.Lock.Driver = strings.ToLower(strings.TrimSpace(s.Lock.Driver))
	return &s, nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		switch v := val.(type) {
		case string:
			out[k] = strings.TrimSpace(v)
		case float64, bool:
			out[k] = fmt.Sprint(v)
		}
	}

	return nil
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
		line = strings.TrimPrefix(line, "export ")

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
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}
