package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath は CONFIG_PATH が未指定の場合に読み込む設定ファイルです。
const DefaultPath = "assets/local.yaml"

// ストレージドライバ名です。
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverS3       = "s3"
)

const (
	defaultLanguage      = "en"
	defaultPageSize      = 20
	defaultPageWindow    = 5
	defaultMockEmployees = 100
	defaultStorageKey    = "employeeAppState"
	defaultFileDir       = "data"
	defaultSQLitePath    = "data/roster.db"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	App      AppConfig      `yaml:"app"`
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
}

// AppConfig は一覧表示と初期データに関する設定です。
type AppConfig struct {
	Language      string  `yaml:"language"`
	PageSize      int     `yaml:"page_size"`
	PageWindow    int     `yaml:"page_window"`
	MockEmployees int     `yaml:"mock_employees"`
	MockSeed      *uint64 `yaml:"mock_seed"`
}

// StorageConfig は状態の保存先に関する設定です。
type StorageConfig struct {
	Driver string       `yaml:"driver"`
	Key    string       `yaml:"key"`
	File   FileConfig   `yaml:"file"`
	SQLite SQLiteConfig `yaml:"sqlite"`
	S3     S3Config     `yaml:"s3"`
}

// FileConfig は file ドライバの設定です。
type FileConfig struct {
	Dir string `yaml:"dir"`
}

// SQLiteConfig は sqlite ドライバの設定です。
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// S3Config は s3 ドライバの設定です。
type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	Prefix    string `yaml:"prefix"`
	PathStyle bool   `yaml:"path_style"`
}

// DatabaseConfig は PostgreSQL 接続に関する設定です。
type DatabaseConfig struct {
	Host               string        `yaml:"host"`
	Port               int           `yaml:"port"`
	User               string        `yaml:"user"`
	Password           string        `yaml:"password"`
	Name               string        `yaml:"name"`
	SSLMode            string        `yaml:"ssl_mode"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time"`
}

// EffectivePath は flagValue、CONFIG_PATH、DefaultPath の順に設定ファイルのパスを決定します。
func EffectivePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return DefaultPath
}

// Load は指定されたパスから設定ファイルを読み込みます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}
	return Parse(b)
}

// Parse は YAML を解釈し、既定値の補完と検証を行います。
func Parse(b []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if err := c.App.validateAndNormalize(); err != nil {
		return err
	}
	if err := c.Storage.validateAndNormalize(); err != nil {
		return err
	}

	if c.Storage.Driver == DriverPostgres {
		if err := c.Database.validateAndNormalize(); err != nil {
			return err
		}
	}

	return nil
}

func (a *AppConfig) validateAndNormalize() error {
	a.Language = strings.TrimSpace(a.Language)
	if a.Language == "" {
		a.Language = defaultLanguage
	}

	switch {
	case a.PageSize < 0:
		return fmt.Errorf("config: app.page_size must be positive")
	case a.PageSize == 0:
		a.PageSize = defaultPageSize
	}

	switch {
	case a.PageWindow < 0:
		return fmt.Errorf("config: app.page_window must be positive")
	case a.PageWindow == 0:
		a.PageWindow = defaultPageWindow
	case a.PageWindow%2 == 0:
		a.PageWindow++
	}

	switch {
	case a.MockEmployees < 0:
		return fmt.Errorf("config: app.mock_employees must not be negative")
	case a.MockEmployees == 0:
		a.MockEmployees = defaultMockEmployees
	}

	return nil
}

func (s *StorageConfig) validateAndNormalize() error {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))
	if s.Driver == "" {
		s.Driver = DriverFile
	}
	if s.Key == "" {
		s.Key = defaultStorageKey
	}

	switch s.Driver {
	case DriverMemory, DriverPostgres:
	case DriverFile:
		if s.File.Dir == "" {
			s.File.Dir = defaultFileDir
		}
	case DriverSQLite:
		if s.SQLite.Path == "" {
			s.SQLite.Path = defaultSQLitePath
		}
	case DriverS3:
		if s.S3.Bucket == "" {
			return fmt.Errorf("config: storage.s3.bucket must be set")
		}
	default:
		return fmt.Errorf("config: storage.driver %q is not supported", s.Driver)
	}

	return nil
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// DSN は pgx 用の接続文字列を返します。認証情報はエスケープされます。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + strconv.Itoa(d.Port),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}
