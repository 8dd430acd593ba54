package main

import (
	_ "github.com/joho/godotenv/autoload"

	"portfolio/internal/cli"
)

func main() {
	cli.Execute()
}
