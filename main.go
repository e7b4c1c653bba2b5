package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/video-scout/backend/internal/api"
	"github.com/video-scout/backend/internal/config"
	"github.com/video-scout/backend/internal/speech"
	"github.com/video-scout/backend/internal/transcript"
	"github.com/video-scout/backend/internal/youtube"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// One shared client for all upstream calls, with a bounded timeout so a
	// stalled platform endpoint cannot hang a handler.
	upstream := &http.Client{Timeout: cfg.UpstreamTimeout}

	resolver, err := transcript.NewFromConfig(cfg, upstream)
	if err != nil {
		log.Fatalf("Failed to build transcript resolver: %v", err)
	}
	log.Printf("Transcript strategies: %s", strings.Join(cfg.Strategies, " -> "))

	var ytClient *youtube.Client
	if cfg.YouTubeAPIKey != "" {
		ytClient = youtube.NewClient(cfg.YouTubeAPIKey, upstream)
		log.Printf("Video search enabled")
	} else {
		log.Printf("YOUTUBE_API_KEY not set, video search disabled")
	}

	var speechService *speech.Service
	if cfg.OpenAIAPIKey != "" {
		speechService = speech.NewService(cfg.OpenAIAPIKey)
		log.Printf("Speech synthesis enabled")
	} else {
		log.Printf("OPENAI_API_KEY not set, speech synthesis disabled")
	}

	router := api.NewRouter(cfg, resolver, ytClient, speechService)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("Starting server on %s", addr)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down...")
		os.Exit(0)
	}()

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
