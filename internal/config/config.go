package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // минуты
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		Enabled      bool   `yaml:"enabled"`
	} `yaml:"email"`

	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

var AppConfig *Config

func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")
	serverEnv := os.Getenv("SERVER_ENV")
	portStr := os.Getenv("SERVER_PORT")
	jwtSecret := os.Getenv("JWT_SECRET")

	if dbURL == "" {
		log.Println("Загрузка из config.yaml (режим НЕ-тест)")

		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		if cfg.JWT.TTL == 0 {
			cfg.JWT.TTL = 60
		}

		AppConfig = &cfg
		return
	}

	log.Println("Загрузка конфигурации из переменных окружения (режим теста)")

	cfg.Database.DSN = dbURL
	cfg.Server.Env = serverEnv
	cfg.Server.Port, _ = strconv.Atoi(portStr)
	cfg.JWT.Secret = jwtSecret
	cfg.JWT.TTL = 60

	cfg.Email.SMTPHost = "smtp.test.com"
	cfg.Email.SMTPPort = 587
	cfg.Email.FromEmail = "noreply@fithub.com"
	cfg.Email.FromName = "FitHub"
	cfg.Email.Enabled = false

	AppConfig = &cfg
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

// SetForTesting подменяет глобальный конфиг (только для тестов)
func SetForTesting(cfg *Config) {
	AppConfig = cfg
}
