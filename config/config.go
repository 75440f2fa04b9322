package config

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sethvargo/go-envconfig"
)

const (
	EnvPrefix          = "METRODMS_"
	placeholderSession = "CHANGE_ME_IN_PRODUCTION"
)

type Config struct {
	AppName              string `json:"app_name"               env:"APP_NAME, overwrite"`
	ListenIP             string `json:"listen_ip"              env:"LISTEN_IP, overwrite"`
	ListenPort           int    `json:"listen_port"            env:"LISTEN_PORT, overwrite"`
	SessionKey           string `json:"session_key"            env:"SESSION_KEY, overwrite"`
	SecureCookies        bool   `json:"secure_cookies"         env:"SECURE_COOKIES, overwrite"`
	DatabasePath         string `json:"database_path"          env:"DATABASE_PATH, overwrite"`
	LogLevel             string `json:"log_level"              env:"LOG_LEVEL, overwrite"`
	LogPretty            bool   `json:"log_pretty"             env:"LOG_PRETTY, overwrite"`
	CaptchaAfterFailures int    `json:"captcha_after_failures" env:"CAPTCHA_AFTER_FAILURES, overwrite"`

	// GeneratedSessionKey is set when SessionKey was missing and a random
	// one was created. Sessions then die with the process.
	GeneratedSessionKey bool `json:"-"`
}

func Defaults() Config {
	return Config{
		AppName:              "Metro Rail DMS",
		ListenIP:             "127.0.0.1",
		ListenPort:           8080,
		DatabasePath:         ":memory:",
		LogLevel:             "info",
		CaptchaAfterFailures: 3,
	}
}

// Load reads the JSON file at path over the defaults, then applies
// METRODMS_* environment overrides.
func Load(path string) (Config, error) {
	return LoadWith(path, envconfig.OsLookuper())
}

func LoadWith(path string, lookuper envconfig.Lookuper) (Config, error) {
	cfg := Defaults()

	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.PrefixLookuper(EnvPrefix, lookuper),
	}); err != nil {
		return Config{}, fmt.Errorf("config: environment: %w", err)
	}

	if cfg.ListenPort <= 0 || cfg.ListenPort > 65535 {
		return Config{}, fmt.Errorf("config: listen_port %d out of range", cfg.ListenPort)
	}
	if cfg.CaptchaAfterFailures < 0 {
		cfg.CaptchaAfterFailures = 0
	}

	if cfg.SessionKey == "" || cfg.SessionKey == placeholderSession {
		randomKey := make([]byte, 32)
		if _, err := rand.Read(randomKey); err != nil {
			return Config{}, err
		}
		cfg.SessionKey = hex.EncodeToString(randomKey)
		cfg.GeneratedSessionKey = true
	}

	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ListenIP, c.ListenPort)
}
