package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
)

func main() {
	log.Println("Loading configuration...")
	if err := loadConfig("config.json"); err != nil {
		log.Fatalf("Error loading config file: %v", err)
	}

	log.Println("Initializing Google Text-to-Speech API...")
	if err := initTTS(); err != nil {
		log.Fatalf("Error initializing Text-to-Speech API: %v", err)
	}

	// Load guild settings from file
	if err := loadSettings(); err != nil {
		log.Fatalf("Error loading settings: %v", err)
	}

	log.Println("Creating Discord session...")
	dg, err := discordgo.New("Bot " + config.BotToken)
	if err != nil {
		log.Fatalf("Error creating Discord session: %v", err)
	}

	dg.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	log.Println("Adding event handlers...")
	dg.AddHandler(onMessageCreate)
	dg.AddHandler(onInteractionCreate)

	log.Println("Connecting to Discord...")
	if err := dg.Open(); err != nil {
		log.Fatalf("Error opening WebSocket connection: %v", err)
	}
	defer dg.Close()

	log.Println("Registering commands...")
	registerCommands(dg)

	fmt.Println("Bot is now running. Press Ctrl+C to exit.")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	fmt.Println("Shutting down...")
}
