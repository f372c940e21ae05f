package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // For cache TTL

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort    string        // Application port
	DBDriver   string        // Storage driver: sqlite or mysql
	DBPath     string        // SQLite storage file
	DBUser     string        // Database user (mysql)
	DBPassword string        // Database password (mysql)
	DBHost     string        // Database host (mysql)
	DBPort     string        // Database port (mysql)
	DBName     string        // Database name (mysql)
	RedisAddr  string        // Redis server address, empty disables caching
	RedisPass  string        // Redis password
	RedisDB    int           // Redis database number
	CacheTTL   time.Duration // Profile cache lifetime
	LogLevel   string        // Logrus level name
	IsProd     bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	ttl, err := strconv.Atoi(getEnv("CACHE_TTL_SECONDS", "300"))
	if err != nil || ttl < 0 {
		ttl = 300
	}
	return &Config{
		AppPort:    getEnv("APP_PORT", "5001"),       // Application port
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),    // Storage driver
		DBPath:     getEnv("DB_PATH", "emerge.db"),   // Storage file
		DBUser:     os.Getenv("DB_USER"),             // Database user
		DBPassword: os.Getenv("DB_PASSWORD"),         // Database password
		DBHost:     os.Getenv("DB_HOST"),             // Database host
		DBPort:     os.Getenv("DB_PORT"),             // Database port
		DBName:     os.Getenv("DB_NAME"),             // Database name
		RedisAddr:  os.Getenv("REDIS_ADDR"),          // Redis server address
		RedisPass:  os.Getenv("REDIS_PASS"),          // Redis password
		RedisDB:    redisDB,                          // Redis database number
		CacheTTL:   time.Duration(ttl) * time.Second, // Profile cache lifetime
		LogLevel:   getEnv("LOG_LEVEL", "info"),      // Log level
		IsProd:     os.Getenv("IS_PROD") == "true",   // Is production environment
	}
}

// MySQLDSN builds the Data Source Name used when DBDriver is mysql
func (c *Config) MySQLDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

// getEnv returns the variable's value or fallback when it is unset or empty
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
