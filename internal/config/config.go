package config

import (
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Env           string
	DBDialect     string
	DBDSN         string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheCodec    string
	HTTPPort      string
	SweepSchedule string
}

// LoadConfig reads the process environment. A .env file in the working
// directory is folded in by the godotenv autoload import.
func LoadConfig() *Config {
	return &Config{
		Env:           getenv("STRATA_ENV", "dev"),
		DBDialect:     getenv("STRATA_DB_DIALECT", "sqlite"),
		DBDSN:         getenv("STRATA_DB_DSN", "strata.db"),
		RedisAddr:     getenv("STRATA_REDIS_ADDR", ""),
		RedisPassword: getenv("STRATA_REDIS_PASSWORD", ""),
		RedisDB:       getenvInt("STRATA_REDIS_DB", 0),
		CacheCodec:    getenv("STRATA_CACHE_CODEC", "gzip"),
		HTTPPort:      getenv("STRATA_HTTP_PORT", "8080"),
		SweepSchedule: getenv("STRATA_SWEEP_SCHEDULE", "@every 10m"),
	}
}

// GetDb opens the configured database. Error translation is enabled so
// constraint violations surface as gorm.ErrDuplicatedKey regardless of the
// driver.
func GetDb(cnf *Config) *gorm.DB {
	var dialector gorm.Dialector
	switch cnf.DBDialect {
	case "postgres":
		dialector = postgres.Open(cnf.DBDSN)
	case "sqlite":
		dialector = sqlite.Open(cnf.DBDSN)
	default:
		logrus.Fatalf("unknown db dialect: %s", cnf.DBDialect)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("error connecting to the database: %v", err)
	}

	return db
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		logrus.Warnf("ignoring non-numeric %s=%q", key, v)
		return fallback
	}

	return n
}
