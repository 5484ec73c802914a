package main

import (
	"context"
	"log"

	"github.com/cantinota/noleggio-api/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("noleggio API failed: %v", err)
	}
}
