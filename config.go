package main

import (
	"encoding/json"
	"os"
)

// Config structure to hold configuration data
type Config struct {
	BotToken        string `json:"discordToken"`
	GuildID         string `json:"guildId"`
	CredentialsPath string `json:"credentialsPath"`
	LanguageCode    string `json:"languageCode"`
	VoiceName       string `json:"voiceName"`
	WebhookName     string `json:"webhookName"`
}

// Global config variable
var config Config

// Helper to load config from a file
func loadConfig(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&config); err != nil {
		return err
	}
	if config.LanguageCode == "" {
		config.LanguageCode = "en-US"
	}
	return nil
}
