package main

import (
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Fatalf("%s", err)
	}
	log.Debug("finish main.go")
}
