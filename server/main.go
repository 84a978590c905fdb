package main

import (
	"flag"
	"log"
	"net/http"
)

func main() {
	// Parse flags.
	addr := flag.String("addr", ":8080", "Server's network address")
	flag.Parse()

	s := newServer()

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleConn)

	// Handle incoming messages.
	go s.handleMsg()

	// Start the server.
	log.Printf("Starting server on %s", *addr)
	err := http.ListenAndServe(*addr, mux)
	if err != nil {
		log.Fatal("Error starting server, exiting.", err)
	}
}
