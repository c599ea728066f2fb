package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const (
	defaultHTTPPort           = "8080"
	defaultDBHost             = "localhost"
	defaultDBPort             = "5432"
	defaultDBUser             = "postgres"
	defaultDBName             = "pedidofacil"
	defaultDBSslMode          = "disable"
	defaultSummaryJobSchedule = "0 */5 * * * *"
	defaultLogLevel           = "info"

	maintenanceDBName = "postgres"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// SeedOnStartup inserts the sample orders when the store is empty.
	SeedOnStartup bool
	// SummaryJobSchedule is a cron expression with seconds; empty disables the job.
	SummaryJobSchedule string
	LogLevel           string
}

// LoadConfig reads envFile into the environment, then builds the config from it.
// A missing file is not an error and variables already set in the environment win.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	seed, err := parseBool("SEED_ON_STARTUP", true)
	if err != nil {
		return Config{}, err
	}

	schedule, ok := os.LookupEnv("SUMMARY_JOB_SCHEDULE")
	if !ok {
		schedule = defaultSummaryJobSchedule
	}

	cfg := Config{
		HTTPPort:           envOrDefault("HTTP_PORT", defaultHTTPPort),
		DBHost:             envOrDefault("DB_HOST", defaultDBHost),
		DBPort:             envOrDefault("DB_PORT", defaultDBPort),
		DBUser:             envOrDefault("DB_USER", defaultDBUser),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             envOrDefault("DB_NAME", defaultDBName),
		DBSslMode:          envOrDefault("DB_SSLMODE", defaultDBSslMode),
		SeedOnStartup:      seed,
		SummaryJobSchedule: strings.TrimSpace(schedule),
		LogLevel:           strings.ToLower(envOrDefault("LOG_LEVEL", defaultLogLevel)),
	}

	if _, err = cfg.SlogLevel(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN is the libpq key/value connection string for the order database.
func (c Config) DSN() string {
	return c.dsn(c.DBName)
}

// MaintenanceDSN connects to the server's default database, used to create DBName.
func (c Config) MaintenanceDSN() string {
	return c.dsn(maintenanceDBName)
}

func (c Config) dsn(dbName string) string {
	pairs := []string{
		"host=" + dsnValue(c.DBHost),
		"port=" + dsnValue(c.DBPort),
		"user=" + dsnValue(c.DBUser),
		"password=" + dsnValue(c.DBPassword),
		"dbname=" + dsnValue(dbName),
		"sslmode=" + dsnValue(c.DBSslMode),
	}
	return strings.Join(pairs, " ")
}

// SlogLevel maps LogLevel to the structured logger level.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}

// EchoLogLevel maps LogLevel to the echo logger level.
func (c Config) EchoLogLevel() log.Lvl {
	switch c.LogLevel {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}

func envOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func parseBool(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}

// dsnValue quotes v for a libpq key/value string when it is empty or holds spaces or quotes.
func dsnValue(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(v)
	return "'" + escaped + "'"
}
