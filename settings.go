package main

import (
	"encoding/json"
	"os"
)

// --- Guild Settings Section ---

// Per-guild settings, keyed by guild ID. Known keys: "channel" (TTS channel
// ID), "voice" (TTS voice name), "xsaid" (speak the author's name first).
var settings map[string]any

// var, not const, so tests can point the store at a temp file
var settingsFile = "settings.json"

// Load settings from file
func loadSettings() error {
	b, err := os.ReadFile(settingsFile)
	if err != nil {
		if os.IsNotExist(err) {
			settings = map[string]any{}
			return nil
		}
		return err
	}
	return json.Unmarshal(b, &settings)
}

// Save settings to file
func saveSettings() error {
	b, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(settingsFile, b, 0644)
}

// guildSetting reads one setting for a guild, falling back to def when the
// guild or the key is absent.
func guildSetting(guildID, key string, def any) any {
	return getValueOr(settings, def, guildID, key)
}

// setGuildSetting writes one setting for a guild, creating the guild's
// settings object on first use.
func setGuildSetting(guildID, key string, value any) {
	guild, ok := settings[guildID].(map[string]any)
	if !ok {
		guild = map[string]any{}
		settings[guildID] = guild
	}
	guild[key] = value
}
