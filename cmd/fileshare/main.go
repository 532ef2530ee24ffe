package main

import (
	"fileshare/cmd/handlers"
	"fileshare/internal/logger"
)

func main() {
	logger.Init() // Initialize the logger
	handlers.Execute()
}
