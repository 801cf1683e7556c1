package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultIntervalMinutes = 5

type Config struct {
	MongoURI      string
	MongoDatabase string

	RabbitURI      string
	RabbitExchange string

	// SystemAssignerID is the identity automated assignments are
	// attributed to. The batch run refuses to start without it.
	SystemAssignerID string

	AssignmentIntervalMinutes int
	Port                      string
}

// Load reads configuration from the environment, with .env support.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}

	cfg := &Config{
		MongoURI:                  os.Getenv("MONGO_URI"),
		MongoDatabase:             getenvDefault("MONGO_DATABASE", "quiz_assignment"),
		RabbitURI:                 os.Getenv("RABBITMQ_URI"),
		RabbitExchange:            os.Getenv("RABBITMQ_EXCHANGE"),
		SystemAssignerID:          os.Getenv("SYSTEM_ASSIGNER_ID"),
		AssignmentIntervalMinutes: defaultIntervalMinutes,
		Port:                      getenvDefault("PORT", "6660"),
	}

	if v := os.Getenv("ASSIGNMENT_INTERVAL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.AssignmentIntervalMinutes = n
		} else {
			log.Printf("Invalid ASSIGNMENT_INTERVAL_MINUTES %q, using %d", v, defaultIntervalMinutes)
		}
	}
	return cfg
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
