package initializers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	defaultPort      = "8080"
	defaultDBDriver  = "mysql"
	defaultPIDFile   = "server.pid"
	defaultLogFile   = "server.log"
	defaultLogLevel  = "info"
	defaultLogFormat = "json"
)

// Config holds everything the server and the CLI read from the environment.
type Config struct {
	Port           string
	GinMode        string
	DBDriver       string
	DBDSN          string
	JWTSecret      string
	AllowedOrigins []string
	PIDFile        string
	LogFile        string
	LogLevel       string
	LogFormat      string
	AutoMigrate    bool
}

// LoadEnv reads .env (when present) and builds a Config from the process
// environment. Variables already set in the environment win over .env.
func LoadEnv() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("unable to load .env file")
	}

	return &Config{
		Port:           getEnv("PORT", defaultPort),
		GinMode:        os.Getenv("GIN_MODE"),
		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", defaultDBDriver)),
		DBDSN:          os.Getenv("DB_DSN"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		PIDFile:        getEnv("PID_FILE", besideExecutable(defaultPIDFile)),
		LogFile:        getEnv("LOG_FILE", besideExecutable(defaultLogFile)),
		LogLevel:       getEnv("LOG_LEVEL", defaultLogLevel),
		LogFormat:      getEnv("LOG_FORMAT", defaultLogFormat),
		AutoMigrate:    os.Getenv("AUTO_MIGRATE") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// besideExecutable places runtime files next to the binary, falling back to
// the working directory when the executable path cannot be resolved.
func besideExecutable(name string) string {
	exe, err := os.Executable()
	if err != nil {
		return name
	}
	return filepath.Join(filepath.Dir(exe), name)
}
