package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs to talk to its backing services.
// Values come from the environment, optionally seeded from a .env file.
type Config struct {
	HTTPAddr string

	MySQLDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AccessSecret  string
	RefreshSecret string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	KafkaBrokers []string
	KafkaTopic   string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	PublicBaseURL  string
}

func Load() *Config {
	// missing .env is fine, plain env vars still apply
	_ = godotenv.Load()

	return &Config{
		HTTPAddr: getenv("HTTP_ADDR", ":8080"),

		MySQLDSN: getenv("MYSQL_DSN", "user:password@tcp(127.0.0.1:3306)/hive?charset=utf8mb4&parseTime=True"),

		RedisAddr:     getenv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),

		AccessSecret:  getenv("JWT_ACCESS_SECRET", "secret-key"),
		RefreshSecret: getenv("JWT_REFRESH_SECRET", "refresh-key"),

		SMTPHost:     getenv("SMTP_HOST", "smtp.example.com"),
		SMTPPort:     getint("SMTP_PORT", 587),
		SMTPUsername: getenv("SMTP_USERNAME", ""),
		SMTPPassword: getenv("SMTP_PASSWORD", ""),
		SMTPFrom:     getenv("SMTP_FROM", "NoReply <no-reply@example.com>"),

		// 不配 broker 时通知事件走日志 sender
		KafkaBrokers: splitList(getenv("KAFKA_BROKERS", "")),
		KafkaTopic:   getenv("KAFKA_TOPIC", "hive.notifications"),

		MinioEndpoint:  getenv("MINIO_ENDPOINT", "127.0.0.1:9000"),
		MinioAccessKey: getenv("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey: getenv("MINIO_SECRET_KEY", "minioadmin"),
		MinioUseSSL:    getbool("MINIO_USE_SSL", false),
		PublicBaseURL:  getenv("PUBLIC_BASE_URL", "http://127.0.0.1:9000"),
	}
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	return strings.Split(v, ",")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
