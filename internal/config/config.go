package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはクライアント全体の設定
type Config struct {
	APIBaseURL  string        // バックエンドAPIのベースURL
	HTTPTimeout time.Duration // APIリクエストのタイムアウト
	TokenPath   string        // 認証トークンの保存先ファイル

	LogLevel string // debug/info/warn/error
}

// DevServerConfigはスタブAPIサーバーの設定
type DevServerConfig struct {
	Addr      string // リッスンアドレス（:4001）
	SqliteDSN string // sqliteのDSN（file:dev.db など）
	JWTSecret string // JWT署名シークレット
}

// Loadは環境変数からクライアント設定を読む
func Load() (Config, error) {
	timeout, err := durationOr("API_TIMEOUT_SECONDS", 10*time.Second)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIBaseURL:  os.Getenv("API_BASE_URL"),
		HTTPTimeout: timeout,
		TokenPath:   os.Getenv("TOKEN_PATH"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
	}

	//必須チェック
	if cfg.APIBaseURL == "" {
		return Config{}, fmt.Errorf("API_BASE_URL is required")
	}
	if cfg.TokenPath == "" {
		return Config{}, fmt.Errorf("TOKEN_PATH is required")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// LoadDevServerは環境変数からスタブサーバー設定を読む
func LoadDevServer() (DevServerConfig, error) {
	cfg := DevServerConfig{
		Addr:      os.Getenv("DEVSERVER_ADDR"),
		SqliteDSN: os.Getenv("DEVSERVER_SQLITE_DSN"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}

	if cfg.Addr == "" {
		cfg.Addr = ":4001"
	}
	if cfg.SqliteDSN == "" {
		cfg.SqliteDSN = "file:devserver.db"
	}
	if cfg.JWTSecret == "" {
		return DevServerConfig{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func durationOr(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	sec, err := strconv.Atoi(v)
	if err != nil || sec <= 0 {
		return 0, fmt.Errorf("%s must be a positive number of seconds", key)
	}
	return time.Duration(sec) * time.Second, nil
}
