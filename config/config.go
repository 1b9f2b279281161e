package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	StoreBackend string
	StateFile    string
	BackupDir    string
	MongoURL     string
	MongoDB      string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:         os.Getenv("PORT"),
		StoreBackend: os.Getenv("STORE_BACKEND"),
		StateFile:    os.Getenv("STATE_FILE"),
		BackupDir:    os.Getenv("BACKUP_DIR"),
		MongoURL:     os.Getenv("MONGO_URL"),
		MongoDB:      os.Getenv("MONGO_DB"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.StoreBackend == "" {
		cfg.StoreBackend = "file"
	}
	if cfg.StateFile == "" {
		cfg.StateFile = "migrantHealthData.json"
	}
	if cfg.BackupDir == "" {
		cfg.BackupDir = "backups"
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "migranthealth"
	}
	return cfg
}
