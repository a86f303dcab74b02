package main

import (
	"flag"
	"net/http"

	"badlands/internal/logger"
	"badlands/internal/server"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	level := flag.String("log", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	log := logger.New(*level)

	srv := &http.Server{Addr: *addr, Handler: server.New(log).Handler()}
	log.Infof("generation server listening on %s", *addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
