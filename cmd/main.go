package main

import (
    "os"

    "github.com/leonardo-a/daily-diet-api/config"
    "github.com/leonardo-a/daily-diet-api/routes"
)

func main() {
    db := config.InitDB()
    r := routes.SetupRouter(db)

    port := os.Getenv("PORT")
    if port == "" {
        port = "8080"
    }
    r.Run(":" + port)
}
