package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	originalConfig := config
	defer func() { config = originalConfig }()

	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"discordToken": "token123",
		"guildId": "42",
		"credentialsPath": "creds.json",
		"languageCode": "en-GB",
		"voiceName": "en-GB-Standard-A",
		"webhookName": "Reader"
	}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if err := loadConfig(path); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if config.BotToken != "token123" {
		t.Errorf("BotToken = %q, want token123", config.BotToken)
	}
	if config.GuildID != "42" {
		t.Errorf("GuildID = %q, want 42", config.GuildID)
	}
	if config.LanguageCode != "en-GB" {
		t.Errorf("LanguageCode = %q, want en-GB", config.LanguageCode)
	}
	if config.WebhookName != "Reader" {
		t.Errorf("WebhookName = %q, want Reader", config.WebhookName)
	}
}

func TestLoadConfigDefaultLanguage(t *testing.T) {
	originalConfig := config
	defer func() { config = originalConfig }()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"discordToken": "t"}`), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if err := loadConfig(path); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if config.LanguageCode != "en-US" {
		t.Errorf("LanguageCode = %q, want default en-US", config.LanguageCode)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if err := loadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("loadConfig on missing file should fail")
	}
}
