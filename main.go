package main

import (
	"context"
	"log"

	"migranthealth/config"
	"migranthealth/jobs"
	"migranthealth/repository"
	"migranthealth/routes"
	"migranthealth/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var isTest = false

func main() {
	run()
}

func run() {
	cfg := config.LoadConfig()

	var repo repository.StateRepository
	switch cfg.StoreBackend {
	case "mongo":
		client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURL))
		if err != nil {
			log.Fatalln("Error connecting to mongo:", err)
		}
		repo = repository.NewMongoStateRepo(client, cfg.MongoDB)
	default:
		repo = repository.NewFileStateRepo(cfg.StateFile)
	}

	appStore := store.New(repo)

	if !isTest {
		jobs.StartDailyScheduler(appStore, cfg.BackupDir)
	}

	r := setupRouter(appStore)
	if isTest {
		return
	}
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalln("Error starting the server:", err)
	}
}

func setupRouter(appStore *store.Store) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	routes.Routes(r, appStore)
	return r
}
