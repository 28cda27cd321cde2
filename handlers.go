package main

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Discord caps messages at 2000 characters; anything longer is a paste the
// voice should not read in full anyway.
const maxSpeechLength = 2000

// buildSpeech turns a message into the text the TTS voice should say.
// Returns "" when there is nothing worth saying.
func buildSpeech(m *discordgo.MessageCreate) string {
	text := emojiToWord(m.Content)
	text = removeChars(text, "*", "_", "`", "~", "|")
	text = strings.TrimSpace(text)

	format := extsToFormat(m.Attachments)
	switch {
	case text != "" && format != "":
		text = text + " and sent " + format
	case format != "":
		text = "sent " + format
	}
	if text == "" {
		return ""
	}

	if xsaid, ok := guildSetting(m.GuildID, "xsaid", true).(bool); !ok || xsaid {
		text = m.Author.Username + " said " + text
	}
	if len(text) > maxSpeechLength {
		text = text[:maxSpeechLength]
	}
	return text
}

// Handle message creation events (TTS pipeline)
func onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore messages from bots (webhook playback included) and from ourselves
	if m.Author == nil || m.Author.Bot || m.Author.ID == s.State.User.ID {
		return
	}

	// Only read out the guild's configured TTS channel
	channelID, _ := guildSetting(m.GuildID, "channel", "").(string)
	if channelID == "" || channelID != m.ChannelID {
		return
	}

	speech := buildSpeech(m)
	if speech == "" {
		return
	}

	voice, _ := guildSetting(m.GuildID, "voice", config.VoiceName).(string)
	audio, err := synthesizeSpeech(speech, voice)
	if err != nil {
		log.Printf("Error synthesizing speech: %v", err)
		return
	}

	webhook, err := ensureWebhook(sessionChannel{s, m.ChannelID}, config.WebhookName)
	if err != nil {
		log.Printf("Error ensuring webhook: %v", err)
		return
	}

	_, err = s.WebhookExecute(webhook.ID, webhook.Token, true, &discordgo.WebhookParams{
		Username:  m.Author.Username,
		AvatarURL: m.Author.AvatarURL(""),
		Files: []*discordgo.File{{
			Name:        "tts.mp3",
			ContentType: "audio/mpeg",
			Reader:      bytes.NewReader(audio),
		}},
	})
	if err != nil {
		log.Printf("Error executing webhook: %v", err)
	}
}

// Handle interactions for slash commands
func onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	// --- Setup command ---
	if i.Type == discordgo.InteractionApplicationCommand && i.ApplicationCommandData().Name == "setup" {
		if i.Member == nil || i.Member.Permissions&discordgo.PermissionManageServer == 0 {
			s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseChannelMessageWithSource,
				Data: &discordgo.InteractionResponseData{
					Content: "You do not have permission to use this command.",
					Flags:   discordgo.MessageFlagsEphemeral,
				},
			})
			return
		}
		channelID := parseID(strings.TrimSpace(i.ApplicationCommandData().Options[0].StringValue()))
		setGuildSetting(i.GuildID, "channel", channelID)
		if err := saveSettings(); err != nil {
			log.Printf("Error saving settings: %v", err)
		}
		s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("Messages in <#%s> will now be read out.", channelID),
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		return
	}

	// --- Voice command ---
	if i.Type == discordgo.InteractionApplicationCommand && i.ApplicationCommandData().Name == "voice" {
		name := strings.TrimSpace(i.ApplicationCommandData().Options[0].StringValue())
		valid := false
		for _, v := range listVoices() {
			if v == name {
				valid = true
				break
			}
		}
		if !valid {
			s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseChannelMessageWithSource,
				Data: &discordgo.InteractionResponseData{
					Content: fmt.Sprintf("Unknown voice '%s' for language %s.", name, config.LanguageCode),
					Flags:   discordgo.MessageFlagsEphemeral,
				},
			})
			return
		}
		setGuildSetting(i.GuildID, "voice", name)
		if err := saveSettings(); err != nil {
			log.Printf("Error saving settings: %v", err)
		}
		s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("Voice set to %s.", name),
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		return
	}

	// --- Settings command ---
	if i.Type == discordgo.InteractionApplicationCommand && i.ApplicationCommandData().Name == "settings" {
		guildRaw, _ := getValue(settings, i.GuildID)
		guild, _ := guildRaw.(map[string]any)
		if len(guild) == 0 {
			s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseChannelMessageWithSource,
				Data: &discordgo.InteractionResponseData{
					Content: "No settings configured yet. Run /setup first.",
					Flags:   discordgo.MessageFlagsEphemeral,
				},
			})
			return
		}

		embed := &discordgo.MessageEmbed{
			Title:       "TTS Settings",
			Description: "Current settings for this server.",
		}
		for _, entry := range sortDict(guild) {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:   entry.Key,
				Value:  fmt.Sprint(entry.Value),
				Inline: true,
			})
		}
		s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds: []*discordgo.MessageEmbed{embed},
				Flags:  discordgo.MessageFlagsEphemeral,
			},
		})
		return
	}

	// Ignore all other slash commands and interactions
}

// Register guild-specific slash commands
func registerCommands(s *discordgo.Session) {
	if s == nil || s.State == nil || s.State.User == nil {
		log.Fatalf("Cannot register commands: Discord session state is not initialized.")
	}

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "setup",
			Description: "Choose the channel this bot reads out.",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "channel", Description: "Channel (# or ID)", Required: true},
			},
		},
		{
			Name:        "voice",
			Description: "Choose the voice used for this server.",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "Voice Name", Required: true},
			},
		},
		{
			Name:        "settings",
			Description: "Show the TTS settings for this server.",
		},
	}

	for _, cmd := range commands {
		if _, err := s.ApplicationCommandCreate(s.State.User.ID, config.GuildID, cmd); err != nil {
			log.Printf("Error registering command '%s': %v", cmd.Name, err)
			continue
		}
		log.Printf("Registered command '%s' successfully.", cmd.Name)
	}
}
