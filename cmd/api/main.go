package main

import (
	"os"

	"github.com/moviekeeper/movie-collection-service/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		os.Exit(1)
	}
}
