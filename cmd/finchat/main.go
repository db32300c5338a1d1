package main

import (
	"os"

	"github.com/davinder1436/fingenie-chat/cmd"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
