package config

import (
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host        string
	Port        int
	Environment string
	BaseURL     string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret          string
	AccessTokenTTL  int // minutes
	RefreshTokenTTL int // minutes
}

// MailConfig holds SMTP relay settings. Defaults keep local development
// working without a .env file; real credentials come from the environment.
type MailConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromName    string
	FromAddress string
}

// CalendarConfig is stamped into generated calendar invites.
type CalendarConfig struct {
	Domain string
	Name   string
	URL    string
}

type GoogleAPIConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

type S3Config struct {
	Region string
	Bucket string
}

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Mail      MailConfig
	Calendar  CalendarConfig
	GoogleAPI GoogleAPIConfig
	S3        S3Config
}

var (
	instance *Config
	once     sync.Once
)

// Load reads configuration from the environment (and an optional config.yaml),
// applying hardcoded fallback defaults for everything.
func Load() (*Config, error) {
	var loadErr error
	once.Do(func() {
		v := viper.New()

		v.SetDefault("server.host", "0.0.0.0")
		v.SetDefault("server.port", 7070)
		v.SetDefault("server.environment", "development")
		v.SetDefault("server.base_url", "http://localhost:7070")

		v.SetDefault("database.host", "localhost")
		v.SetDefault("database.port", 5432)
		v.SetDefault("database.user", "postgres")
		v.SetDefault("database.password", "postgres")
		v.SetDefault("database.dbname", "campus_pulse")

		v.SetDefault("redis.addr", "localhost:6379")
		v.SetDefault("redis.password", "")
		v.SetDefault("redis.db", 0)

		v.SetDefault("jwt.secret", "campus-pulse-dev-secret")
		v.SetDefault("jwt.access_token_ttl", 60)
		v.SetDefault("jwt.refresh_token_ttl", 10080)

		v.SetDefault("mail.host", "smtp.gmail.com")
		v.SetDefault("mail.port", 587)
		v.SetDefault("mail.username", "")
		v.SetDefault("mail.password", "")
		v.SetDefault("mail.from_name", "Campus Pulse")
		v.SetDefault("mail.from_address", "noreply@campuspulse.app")

		v.SetDefault("calendar.domain", "campuspulse.app")
		v.SetDefault("calendar.name", "Campus Pulse Events")
		v.SetDefault("calendar.url", "https://campuspulse.app/events")

		v.SetDefault("google.client_id", "")
		v.SetDefault("google.client_secret", "")
		v.SetDefault("google.redirect_uri", "")

		v.SetDefault("s3.region", "us-east-1")
		v.SetDefault("s3.bucket", "campus-pulse-posters")

		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		// Config file is optional; env vars and defaults cover everything.
		_ = v.ReadInConfig()

		cfg := &Config{
			Server: ServerConfig{
				Host:        v.GetString("server.host"),
				Port:        v.GetInt("server.port"),
				Environment: v.GetString("server.environment"),
				BaseURL:     v.GetString("server.base_url"),
			},
			Database: DatabaseConfig{
				Host:     v.GetString("database.host"),
				Port:     v.GetInt("database.port"),
				User:     v.GetString("database.user"),
				Password: v.GetString("database.password"),
				DBName:   v.GetString("database.dbname"),
			},
			Redis: RedisConfig{
				Addr:     v.GetString("redis.addr"),
				Password: v.GetString("redis.password"),
				DB:       v.GetInt("redis.db"),
			},
			JWT: JWTConfig{
				Secret:          v.GetString("jwt.secret"),
				AccessTokenTTL:  v.GetInt("jwt.access_token_ttl"),
				RefreshTokenTTL: v.GetInt("jwt.refresh_token_ttl"),
			},
			Mail: MailConfig{
				Host:        v.GetString("mail.host"),
				Port:        v.GetInt("mail.port"),
				Username:    v.GetString("mail.username"),
				Password:    v.GetString("mail.password"),
				FromName:    v.GetString("mail.from_name"),
				FromAddress: v.GetString("mail.from_address"),
			},
			Calendar: CalendarConfig{
				Domain: v.GetString("calendar.domain"),
				Name:   v.GetString("calendar.name"),
				URL:    v.GetString("calendar.url"),
			},
			GoogleAPI: GoogleAPIConfig{
				ClientID:     v.GetString("google.client_id"),
				ClientSecret: v.GetString("google.client_secret"),
				RedirectURI:  v.GetString("google.redirect_uri"),
			},
			S3: S3Config{
				Region: v.GetString("s3.region"),
				Bucket: v.GetString("s3.bucket"),
			},
		}

		instance = cfg
	})

	return instance, loadErr
}

// Get returns the loaded config; panics if Load was never called.
func Get() *Config {
	if instance == nil {
		panic("config: Get called before Load")
	}
	return instance
}

// GetSafe returns the loaded config and whether it has been initialized.
func GetSafe() (*Config, bool) {
	return instance, instance != nil
}
