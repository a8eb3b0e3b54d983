package main

import (
	"context"
	"flag"
	"log"

	"schoolportal/internal/portal"
)

func main() {
	origin := flag.String("origin", "http://localhost:3000", "portal server origin")
	flag.Parse()

	log.Println("Starting seed script...")

	client := portal.NewClient(*origin)
	res, err := client.Seed(context.Background())
	if err != nil {
		log.Fatalf("Failed to seed sample data: %v", err)
	}

	log.Printf("Server response: %s", res.Message)
}
