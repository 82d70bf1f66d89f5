package config

import (
	"flag"
	"os"
)

type Config struct {
	RunAddress       string
	MongoURI         string
	MongoDatabase    string
	OrdersCollection string
}

func New() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "server address and port")
	flag.StringVar(&cfg.MongoURI, "m", "mongodb://localhost:27017", "mongo connection URI")
	flag.StringVar(&cfg.MongoDatabase, "db", "labportal", "mongo database name")
	flag.StringVar(&cfg.OrdersCollection, "c", "orders", "orders collection name")
	flag.Parse()

	cfg.RunAddress = getEnv("RUN_ADDRESS", cfg.RunAddress)
	cfg.MongoURI = getEnv("MONGO_URI", cfg.MongoURI)
	cfg.MongoDatabase = getEnv("MONGO_DATABASE", cfg.MongoDatabase)
	cfg.OrdersCollection = getEnv("MONGO_COLLECTION", cfg.OrdersCollection)

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
