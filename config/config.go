package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	MongoURI string
	MongoDB  string
	DataDir  string

	JWTSecret     string
	AdminPassword string

	Mpesa MpesaConfig
}

// MpesaConfig covers the Daraja sandbox credentials. With Simulate set the
// gateway never leaves the process and none of the credentials are read.
type MpesaConfig struct {
	Simulate       bool
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	ShortCode      string
	Passkey        string
	CallbackURL    string
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return Config{
		Port:     getEnv("PORT", "8000"),
		MongoURI: getEnv("MONGO_URI", ""),
		MongoDB:  getEnv("MONGO_DB", "ufa"),
		DataDir:  getEnv("DATA_DIR", "./data"),

		JWTSecret:     getEnv("JWT_SECRET", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", "ufa-admin"),

		Mpesa: MpesaConfig{
			Simulate:       getEnv("MPESA_SIMULATE", "true") != "false",
			BaseURL:        getEnv("MPESA_BASE_URL", "https://sandbox.safaricom.co.ke"),
			ConsumerKey:    getEnv("MPESA_CONSUMER_KEY", ""),
			ConsumerSecret: getEnv("MPESA_CONSUMER_SECRET", ""),
			ShortCode:      getEnv("MPESA_SHORTCODE", "174379"),
			Passkey:        getEnv("MPESA_PASSKEY", ""),
			CallbackURL:    getEnv("MPESA_CALLBACK_URL", ""),
		},
	}
}
