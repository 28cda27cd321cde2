package main

import (
	"path/filepath"
	"testing"
)

func useTempSettings(t *testing.T) {
	t.Helper()
	originalSettings := settings
	originalFile := settingsFile

	settingsFile = filepath.Join(t.TempDir(), "settings.json")
	t.Cleanup(func() {
		settings = originalSettings
		settingsFile = originalFile
	})
}

func TestLoadSettingsMissingFile(t *testing.T) {
	useTempSettings(t)

	if err := loadSettings(); err != nil {
		t.Fatalf("loadSettings on missing file: %v", err)
	}
	if settings == nil || len(settings) != 0 {
		t.Errorf("settings = %v, want empty store", settings)
	}
}

func TestGuildSettingDefaults(t *testing.T) {
	useTempSettings(t)
	settings = map[string]any{}

	if v := guildSetting("g1", "channel", ""); v != "" {
		t.Errorf("unset guild setting = %v, want default", v)
	}

	setGuildSetting("g1", "channel", "12345")
	setGuildSetting("g1", "xsaid", false)

	if v := guildSetting("g1", "channel", ""); v != "12345" {
		t.Errorf("channel = %v, want 12345", v)
	}
	if v := guildSetting("g1", "xsaid", true); v != false {
		t.Errorf("xsaid = %v, want false", v)
	}
	if v := guildSetting("g2", "channel", "fallback"); v != "fallback" {
		t.Errorf("other guild = %v, want fallback", v)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	useTempSettings(t)
	settings = map[string]any{}

	setGuildSetting("g1", "channel", "12345")
	setGuildSetting("g1", "voice", "en-US-Standard-C")
	setGuildSetting("g1", "xsaid", true)
	if err := saveSettings(); err != nil {
		t.Fatalf("saveSettings: %v", err)
	}

	settings = nil
	if err := loadSettings(); err != nil {
		t.Fatalf("loadSettings: %v", err)
	}

	if v := guildSetting("g1", "channel", ""); v != "12345" {
		t.Errorf("channel after reload = %v, want 12345", v)
	}
	if v := guildSetting("g1", "voice", ""); v != "en-US-Standard-C" {
		t.Errorf("voice after reload = %v, want en-US-Standard-C", v)
	}
	if v := guildSetting("g1", "xsaid", false); v != true {
		t.Errorf("xsaid after reload = %v, want true", v)
	}
}
