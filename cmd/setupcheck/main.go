package main

import (
	"log"

	"github.com/autocommit-tools/setupcheck/cmd/setupcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
