package main

import (
	"log"

	"github.com/shashiranjanraj/ridewithme/internal/server"
)

func main() {
	if err := server.Run(); err != nil {
		log.Fatal(err)
	}
}
