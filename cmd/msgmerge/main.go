package main

import (
	"log"
	"os"

	"msgmerge/internal/adapters/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}
