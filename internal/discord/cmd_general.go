package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/NeuroFarm_Go/internal/i18n"
)

// HelloCommand greets the player and registers them
func HelloCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdHello,
		Description: "Say hello to NeuroFarm",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		cc, ok := beginCommand(s, i, client)
		if !ok {
			return
		}
		defer cc.cancel()

		msg := i18n.Format(cc.lang, i18n.KeyHello, map[string]any{"user": cc.user.Mention()})
		sendEmbed(s, i, createEmbed("👋 NeuroFarm", msg, ColorInfo))
	}

	return cmd, handler
}

// HelpCommand lists the available commands
func HelpCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdHelp,
		Description: "List the NeuroFarm commands",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		cc, ok := beginCommand(s, i, client)
		if !ok {
			return
		}
		defer cc.cancel()

		sendEmbed(s, i, createEmbed("📖 Help", i18n.Text(cc.lang, i18n.KeyHelpText), ColorInfo))
	}

	return cmd, handler
}

// ProfileCommand shows coins, experience and level
func ProfileCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdProfile,
		Description: "Show your coins, experience and level",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		cc, ok := beginCommand(s, i, client)
		if !ok {
			return
		}
		defer cc.cancel()

		p := cc.player
		progress := i18n.Text(cc.lang, i18n.KeyProfileMaxLevel)
		if !p.AtMax {
			progress = i18n.Format(cc.lang, i18n.KeyProfileNextLevel, map[string]any{"xp": p.ToNext})
		}

		embed := createEmbed(
			i18n.Format(cc.lang, i18n.KeyProfileTitle, map[string]any{"user": cc.user.Username}),
			progress,
			ColorGold,
		)
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "💰 " + i18n.Text(cc.lang, i18n.KeyProfileCoins), Value: fmt.Sprint(p.Coins), Inline: true},
			{Name: "⭐ " + i18n.Text(cc.lang, i18n.KeyProfileLevel), Value: fmt.Sprint(p.Level), Inline: true},
			{Name: "✨ " + i18n.Text(cc.lang, i18n.KeyProfileXP), Value: fmt.Sprint(p.Experience), Inline: true},
		}
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// ChangeLanguageCommand sets the player's display language
func ChangeLanguageCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(i18n.Supported()))
	for _, code := range i18n.Supported() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  i18n.DisplayName(code),
			Value: code,
		})
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        CmdChangeLanguage,
		Description: "Change the language NeuroFarm talks to you in",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptLanguage,
				Description: "Language",
				Required:    true,
				Choices:     choices,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		cc, ok := beginCommand(s, i, client)
		if !ok {
			return
		}
		defer cc.cancel()

		opt := findOption(i, OptLanguage)
		if opt == nil || !i18n.IsSupported(opt.StringValue()) {
			respondError(s, i, i18n.Text(cc.lang, i18n.KeyErrInvalidInput))
			return
		}

		p, err := client.SetLanguage(cc.ctx, cc.accountKey, opt.StringValue())
		if err != nil {
			cc.fail(s, i, err, "")
			return
		}

		msg := i18n.Format(p.Language, i18n.KeyLanguageChanged, map[string]any{"language": i18n.DisplayName(p.Language)})
		sendEmbed(s, i, createEmbed("🌐", msg, ColorSuccess))
	}

	return cmd, handler
}

// SyncCommand re-registers the slash commands with Discord. Restricted to
// administrators.
func SyncCommand(b *Bot) CommandFactory {
	return func() (*discordgo.ApplicationCommand, CommandHandler) {
		perms := int64(discordgo.PermissionAdministrator)
		cmd := &discordgo.ApplicationCommand{
			Name:                     CmdSync,
			Description:              "Re-register the bot's slash commands (admin)",
			DefaultMemberPermissions: &perms,
		}

		handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
			if !deferResponse(s, i) {
				return
			}
			lang := i18n.Match(string(i.Locale))

			if i.Member == nil || i.Member.Permissions&int64(discordgo.PermissionAdministrator) == 0 {
				respondError(s, i, i18n.Text(lang, i18n.KeySyncDenied))
				return
			}

			count, err := b.RegisterCommands(b.Registry, true)
			if err != nil {
				slog.Error("Failed to sync commands", "error", err)
				respondError(s, i, i18n.Text(lang, i18n.KeyErrInternal))
				return
			}

			msg := i18n.Format(lang, i18n.KeySyncDone, map[string]any{"count": count})
			embed := createEmbed("🔄 Sync", msg, ColorSuccess)
			embed.Footer.Text = FooterNeuroFarmAdmin
			sendEmbed(s, i, embed)
		}

		return cmd, handler
	}
}
