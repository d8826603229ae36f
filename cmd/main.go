package main

import (
	"log"
	"os"

	"github.com/itsUtkarshOjha/fitlogger/config"
	"github.com/itsUtkarshOjha/fitlogger/routes"
)

func main() {
	config.LoadEnv()
	config.InitDB()
	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Printf("Server running on port %s.", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
