package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type RESTconfig struct {
	PORT string
}

type BackendConfig struct {
	// Базовый URL удаленного REST backend, например "http://housing-backend:5000"
	URL string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type ObjectStorageConfig struct {
	Bucket    string
	Region    string
	Endpoint  string // для совместимых хранилищ (minio и т.п.); пусто = AWS
	PublicURL string // базовый публичный URL; пусто = стандартный S3 URL
}

type AuthConfig struct {
	// Ключ подписи для локальной проверки claims входящих токенов.
	SigningKey string
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

type MapConfig struct {
	// URL-шаблон тайлового слоя, подключаемого при старте.
	TileLayerURL string
	// Отступ при подгонке вьюпорта под рамку маркеров.
	FitBoundsPadding float64
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName       string
	Rest          RESTconfig
	Backend       BackendConfig
	Redis         RedisConfig
	ObjectStorage ObjectStorageConfig
	Auth          AuthConfig
	Map           MapConfig
	FluentBit     FluentBitConfig
	StdoutLogger  StdoutLogConfig
}

// LoadConfig загружает конфигурацию из переменных окружения.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		// .env опционален: в контейнере переменные приходят из окружения
		log.Printf("Info: Could not load .env file (path: %v): %v.\n", envPath, err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "housing-dashboard-service")

	cfg.Rest.PORT = getEnvAsString("PORT", "8084")

	cfg.Backend.URL = os.Getenv("BACKEND_URL")
	if cfg.Backend.URL == "" {
		return nil, fmt.Errorf("BACKEND_URL environment variable is required")
	}

	cfg.Redis.Addr = getEnvAsString("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	cfg.Redis.DB = getEnvAsInt("REDIS_DB", 0)

	cfg.ObjectStorage.Bucket = os.Getenv("S3_BUCKET")
	if cfg.ObjectStorage.Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET environment variable is required")
	}
	cfg.ObjectStorage.Region = getEnvAsString("S3_REGION", "us-east-1")
	cfg.ObjectStorage.Endpoint = os.Getenv("S3_ENDPOINT")
	cfg.ObjectStorage.PublicURL = os.Getenv("S3_PUBLIC_URL")

	cfg.Auth.SigningKey = os.Getenv("JWT_SIGNING_KEY")
	if cfg.Auth.SigningKey == "" {
		return nil, fmt.Errorf("JWT_SIGNING_KEY environment variable is required")
	}

	cfg.Map.TileLayerURL = getEnvAsString("MAP_TILE_LAYER_URL", "https://tile.openstreetmap.org/{z}/{x}/{y}.png")
	cfg.Map.FitBoundsPadding = 0.1

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}

		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool читает переменную окружения как bool или возвращает значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}
