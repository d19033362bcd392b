package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"fornsaga-backend/internal/config"
	"fornsaga-backend/internal/db"
	"fornsaga-backend/internal/model"
	"fornsaga-backend/internal/seed"
	logger "fornsaga-backend/pkg/logging"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <dataset>...\ndatasets: %s\n", os.Args[0], strings.Join(seed.Names(), ", "))
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, relying on the environment")
	}

	cfg, err := config.LoadConfig("config.xml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.Init("logs", false); err != nil {
		log.Fatalf("failed to initialise logging: %v", err)
	}
	defer logger.Close()

	db.InitDBFromConfig(cfg)
	if err := db.GetDB().AutoMigrate(
		&model.User{},
		&model.HistoricalPeriod{},
		&model.Civilization{},
		&model.Person{},
		&model.Deity{},
		&model.Battle{},
		&model.CulturalTopic{},
		&model.TimelineEvent{},
		&model.Quiz{},
		&model.Question{},
		&model.QuizAttempt{},
		&model.QuestionResponse{},
		&model.Achievement{},
		&model.UserAchievement{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	if err := seed.Run(os.Args[1:]); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	logger.Info("seeding finished")
}
