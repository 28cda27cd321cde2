package main

import (
	"github.com/bwmarrin/discordgo"
)

// Name used when a channel needs a webhook created for it
const defaultWebhookName = "TTS-Webhook"

// webhookChannel is the slice of channel behavior ensureWebhook needs.
type webhookChannel interface {
	Webhooks() ([]*discordgo.Webhook, error)
	CreateWebhook(name string) (*discordgo.Webhook, error)
}

// sessionChannel adapts a Discord session plus channel ID to webhookChannel.
type sessionChannel struct {
	session   *discordgo.Session
	channelID string
}

func (c sessionChannel) Webhooks() ([]*discordgo.Webhook, error) {
	return c.session.ChannelWebhooks(c.channelID)
}

func (c sessionChannel) CreateWebhook(name string) (*discordgo.Webhook, error) {
	return c.session.WebhookCreate(c.channelID, name, "")
}

// ensureWebhook returns a webhook for the channel, creating one under the
// given name (or defaultWebhookName when empty) only if the channel has none.
// An existing webhook is returned as-is, whatever it is named. Concurrent
// callers on a webhook-less channel may both create one; Discord arbitrates.
func ensureWebhook(ch webhookChannel, name string) (*discordgo.Webhook, error) {
	if name == "" {
		name = defaultWebhookName
	}

	webhooks, err := ch.Webhooks()
	if err != nil {
		return nil, err
	}
	if len(webhooks) == 0 {
		return ch.CreateWebhook(name)
	}
	return webhooks[0], nil
}
