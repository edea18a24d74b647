package main

import (
	"context"
	"fmt"
	"log"

	"github.com/palrajin0126/admin-panel/config"
	"github.com/palrajin0126/admin-panel/internal/app"
	"github.com/palrajin0126/admin-panel/internal/infrastructure/database/mongodb"
	"github.com/palrajin0126/admin-panel/internal/infrastructure/database/postgres"
	"github.com/palrajin0126/admin-panel/internal/infrastructure/message-queue/kafka"
)

func main() {
	config := config.CreateNewConfig()

	db, err := postgres.GetDBInstance(config.PostgreSQLConfig.DBUsername, config.PostgreSQLConfig.DBPassword, config.PostgreSQLConfig.DBHost, config.PostgreSQLConfig.DBPort, config.PostgreSQLConfig.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	mongoDB, err := mongodb.ConnectToMongoDB(fmt.Sprintf("mongodb://%s:%s", config.MongoDBConfig.DBHost, config.MongoDBConfig.DBPort), config.MongoDBConfig.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoDB.Client().Disconnect(context.Background())

	kafkaProducer := kafka.CreateKafkaProducer(config)
	defer kafkaProducer.Close()

	server := app.App{
		DB:        db,
		Mongo:     mongoDB,
		Publisher: kafka.CreateProducer(kafkaProducer),
		Config:    config,
	}

	server.Start()
}
