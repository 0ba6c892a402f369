package main

import (
	"log"
	"os"

	"github.com/jomariabejo/orpha/config"
	"github.com/jomariabejo/orpha/routes"
	"github.com/jomariabejo/orpha/utils"
)

func main() {
	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("database setup failed: %v", err)
	}

	utils.InitS3()
	utils.InitSES()

	r := routes.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
