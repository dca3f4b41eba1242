package main

import (
	"context"
	"fmt"
	"log"

	"github.com/rdewanto/storefront-service/config"
	"github.com/rdewanto/storefront-service/internal/app"
	"github.com/rdewanto/storefront-service/internal/infrastructure/database/mongodb"
	"github.com/rdewanto/storefront-service/internal/infrastructure/message-queue/kafka"
)

func main() {
	config := config.CreateNewConfig()
	db, err := mongodb.ConnectToMongoDB(fmt.Sprintf("mongodb://%s:%s", config.MongoDBConfig.DBHost, config.MongoDBConfig.DBPort), config.MongoDBConfig.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	defer db.Client().Disconnect(context.Background())

	kafkaProducer := kafka.CreateKafkaProducer(config)
	kafkaReader := kafka.CreateKafkaReader(config)

	server := app.App{
		DB:            db,
		Config:        config,
		KafkaReader:   kafkaReader,
		KafkaProducer: kafkaProducer,
	}

	server.Start()
}
