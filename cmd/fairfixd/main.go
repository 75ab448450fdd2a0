package main

import (
	"log"

	"github.com/fairfix/quote-engine/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
