package main

import (
	"log"
	"os"
	sys "os"
)

func run() error {
	os.Exit(3)
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
	defer func() {
		os.Exit(1) // want "direct call to os.Exit in main function of main package is forbidden"
	}()
	sys.Exit(2) // want "direct call to os.Exit in main function of main package is forbidden"
	os.Exit(0)  // want "direct call to os.Exit in main function of main package is forbidden"
}
