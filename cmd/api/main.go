package main

import (
	"context"
	"log"

	"github.com/chronolux/watchstore/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("order API terminated: %v", err)
	}
}
