package database

import (
	"os"
)

// Config carries everything read from the environment at startup.
type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret string

	// Azure Blob Storage; media uploads are disabled when the
	// connection string is empty.
	BlobConnString string
	BlobContainer  string
}

func LoadConfig() Config {
	cfg := Config{
		Port:           os.Getenv("PORT"),
		MongoURI:       os.Getenv("MONGO_URI"),
		DBName:         os.Getenv("DB_NAME"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		BlobConnString: os.Getenv("BLOB_CONNECTION_STRING"),
		BlobContainer:  os.Getenv("BLOB_CONTAINER_NAME"),
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.DBName == "" {
		cfg.DBName = "socialspace"
	}
	return cfg
}
