package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/NeuroFarm_Go/internal/i18n"
)

// ExploreCommand spends coins to explore a region
func ExploreCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdExplore,
		Description: "Explore a region for experience",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         OptRegion,
				Description:  "Region to explore",
				Required:     true,
				Autocomplete: true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		cc, ok := beginCommand(s, i, client)
		if !ok {
			return
		}
		defer cc.cancel()

		opt := findOption(i, OptRegion)
		if opt == nil {
			respondError(s, i, i18n.Text(cc.lang, i18n.KeyErrInvalidInput))
			return
		}
		name := strings.TrimSpace(opt.StringValue())

		res, err := client.Explore(cc.ctx, cc.accountKey, name)
		if err != nil {
			cc.fail(s, i, err, name)
			return
		}

		msg := joinLines(
			i18n.Format(cc.lang, i18n.KeyExploreResult, map[string]any{
				"region": res.Glyph + " " + res.Region,
				"xp":     res.ExperienceGain,
			}),
			levelUpLine(cc.lang, cc.user.Mention(), res.Level),
		)
		sendEmbed(s, i, createEmbed("🧭", msg, ColorSuccess))
	}

	return cmd, handler
}

// FishCommand goes fishing
func FishCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdFish,
		Description: "Go fishing",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		cc, ok := beginCommand(s, i, client)
		if !ok {
			return
		}
		defer cc.cancel()

		res, err := client.Fish(cc.ctx, cc.accountKey)
		if err != nil {
			cc.fail(s, i, err, "")
			return
		}

		msg := joinLines(
			i18n.Format(cc.lang, i18n.KeyFishingResult, map[string]any{"catch": res.Catch, "xp": res.ExperienceGain}),
			levelUpLine(cc.lang, cc.user.Mention(), res.Level),
		)
		sendEmbed(s, i, createEmbed("🎣", msg, ColorSuccess))
	}

	return cmd, handler
}

// OpenChestCommand opens a treasure chest
func OpenChestCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdOpenChest,
		Description: "Open a treasure chest",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		cc, ok := beginCommand(s, i, client)
		if !ok {
			return
		}
		defer cc.cancel()

		res, err := client.OpenChest(cc.ctx, cc.accountKey)
		if err != nil {
			cc.fail(s, i, err, "")
			return
		}

		msg := joinLines(
			i18n.Format(cc.lang, i18n.KeyChestOpened, map[string]any{"coins": res.Coins, "xp": res.ExperienceGain}),
			levelUpLine(cc.lang, cc.user.Mention(), res.Level),
		)
		sendEmbed(s, i, createEmbed("🎁", msg, ColorGold))
	}

	return cmd, handler
}
