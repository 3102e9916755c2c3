package discord

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/i18n"
	"github.com/osse101/NeuroFarm_Go/internal/sse"
)

// NotificationSender posts embeds to the announcement channel
type NotificationSender interface {
	SendNotification(embed *discordgo.MessageEmbed) error
}

// SSENotifier turns API events into channel announcements
type SSENotifier struct {
	sender NotificationSender
	lang   string
}

// NewSSENotifier creates a notifier that announces in lang
func NewSSENotifier(sender NotificationSender, lang string) *SSENotifier {
	if !i18n.IsSupported(lang) {
		lang = domain.DefaultLanguage
	}
	return &SSENotifier{sender: sender, lang: lang}
}

// EventTypes lists the event types the notifier consumes
func (n *SSENotifier) EventTypes() []string {
	return []string{sse.EventTypeLevelUp}
}

// RegisterHandlers registers the notifier's handlers with the client
func (n *SSENotifier) RegisterHandlers(client *SSEClient) {
	client.OnEvent(sse.EventTypeLevelUp, n.handleLevelUp)
}

func (n *SSENotifier) handleLevelUp(event SSEEvent) error {
	var payload sse.LevelUpPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return fmt.Errorf("failed to decode level up payload: %w", err)
	}
	if payload.NewLevel <= payload.OldLevel {
		return nil
	}

	msg := i18n.Format(n.lang, i18n.KeyLevelUp, map[string]any{
		"user":  mentionFromAccountKey(payload.AccountKey),
		"level": payload.NewLevel,
	})
	embed := createEmbed("⭐ Level up", msg, ColorGold)
	if event.Timestamp > 0 {
		embed.Timestamp = time.Unix(event.Timestamp, 0).UTC().Format(time.RFC3339)
	}
	return n.sender.SendNotification(embed)
}
