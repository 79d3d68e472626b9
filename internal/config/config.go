package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the process configuration shared by the api, worker and consumer binaries.
type Config struct {
	Port        string
	MetricsPort string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	RedisAddr string

	KafkaBroker   string
	ConsumerGroup string

	JWTSecret string

	// Location used to decide what "today" is for leave and attendance rules.
	Location *time.Location

	ReminderSchedule   string
	OutboxPollInterval time.Duration

	AttendanceRateLimit float64
	AttendanceRateBurst int

	ConnectRetries int
}

// FromEnv reads the environment (after godotenv.Load in main) and applies defaults.
func FromEnv() (Config, error) {
	loc, err := time.LoadLocation(getEnv("APP_TIMEZONE", "UTC"))
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:                getEnv("PORT", "3000"),
		MetricsPort:         getEnv("METRICS_PORT", "9100"),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              getEnv("DB_NAME", "go_leave"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBSSLMode:           getEnv("DB_SSLMODE", "disable"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker:         os.Getenv("KAFKA_BROKER"),
		ConsumerGroup:       getEnv("KAFKA_CONSUMER_GROUP", "go-leave-notifications"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		Location:            loc,
		ReminderSchedule:    getEnv("REMINDER_CRON", "0 9 * * 1-5"),
		OutboxPollInterval:  getDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),
		AttendanceRateLimit: getFloat("ATTENDANCE_RATE_LIMIT", 1),
		AttendanceRateBurst: getInt("ATTENDANCE_RATE_BURST", 5),
		ConnectRetries:      getInt("CONNECT_RETRIES", 5),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}
