package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/i18n"
)

// PlantCommand plants a crop on the player's farm
func PlantCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdPlant,
		Description: "Plant a crop on your farm",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         OptCrop,
				Description:  "Crop to plant",
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

		opt := findOption(i, OptCrop)
		if opt == nil {
			respondError(s, i, i18n.Text(cc.lang, i18n.KeyErrInvalidInput))
			return
		}
		name := strings.TrimSpace(opt.StringValue())

		farmID, err := cc.farmID(client)
		if err != nil {
			cc.fail(s, i, err, "")
			return
		}

		crop, err := client.Plant(cc.ctx, farmID, name)
		if err != nil {
			cc.fail(s, i, err, name)
			return
		}

		msg := joinLines(
			i18n.Format(cc.lang, i18n.KeyPlantSuccess, map[string]any{"crop": crop.Glyph + " " + crop.Crop}),
			i18n.Format(cc.lang, i18n.KeyHarvestTime, map[string]any{"time": formatDuration(secondsDuration(crop.RemainingSeconds))}),
		)
		sendEmbed(s, i, createEmbed("🌱", msg, ColorSuccess))
	}

	return cmd, handler
}

// CropsCommand lists what is growing on the player's farm
func CropsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdCrops,
		Description: "See what is growing on your farm",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		cc, ok := beginCommand(s, i, client)
		if !ok {
			return
		}
		defer cc.cancel()

		farmID, err := cc.farmID(client)
		if err != nil {
			cc.fail(s, i, err, "")
			return
		}

		crops, err := client.ListCrops(cc.ctx, farmID)
		if err != nil {
			cc.fail(s, i, err, "")
			return
		}

		title := "🌾 " + i18n.Text(cc.lang, i18n.KeyCropsTitle)
		if len(crops) == 0 {
			sendEmbed(s, i, createEmbed(title, i18n.Text(cc.lang, i18n.KeyCropsEmpty), ColorInfo))
			return
		}

		var sb strings.Builder
		for _, c := range crops {
			status := i18n.Format(cc.lang, i18n.KeyCropGrowing, map[string]any{"time": formatDuration(secondsDuration(c.RemainingSeconds))})
			if c.State == domain.CropStateHarvestable {
				status = "✅ " + i18n.Text(cc.lang, i18n.KeyCropReady)
			}
			fmt.Fprintf(&sb, "`#%d` %s %s: %s\n", c.ID, c.Glyph, c.Crop, status)
		}
		sendEmbed(s, i, createEmbed(title, sb.String(), ColorInfo))
	}

	return cmd, handler
}

// HarvestCommand harvests one crop by id, or every ready crop when no id
// is given
func HarvestCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdHarvest,
		Description: "Harvest your ready crops",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptCropID,
				Description: "Crop to harvest (default: every ready crop)",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		cc, ok := beginCommand(s, i, client)
		if !ok {
			return
		}
		defer cc.cancel()

		farmID, err := cc.farmID(client)
		if err != nil {
			cc.fail(s, i, err, "")
			return
		}

		if opt := findOption(i, OptCropID); opt != nil {
			res, err := client.Harvest(cc.ctx, farmID, opt.IntValue())
			if err != nil {
				cc.fail(s, i, err, "")
				return
			}
			msg := i18n.Format(cc.lang, i18n.KeyHarvestSuccess, map[string]any{
				"crop":  res.Crop.Glyph + " " + res.Crop.Crop,
				"coins": res.CoinsGained,
			})
			sendEmbed(s, i, createEmbed("🧺", msg, ColorSuccess))
			return
		}

		crops, err := client.ListCrops(cc.ctx, farmID)
		if err != nil {
			cc.fail(s, i, err, "")
			return
		}

		var count int
		var coins int64
		for _, c := range crops {
			if c.State != domain.CropStateHarvestable {
				continue
			}
			res, err := client.Harvest(cc.ctx, farmID, c.ID)
			if err != nil {
				// A crop harvested concurrently elsewhere is not a failure
				if apiErr, ok := AsAPIError(err); ok && apiErr.Code == domain.CodeAlreadyHarvested {
					continue
				}
				cc.fail(s, i, err, "")
				return
			}
			count++
			coins += res.CoinsGained
		}

		if count == 0 {
			sendEmbed(s, i, createEmbed("🧺", i18n.Text(cc.lang, i18n.KeyHarvestNone), ColorWarning))
			return
		}
		msg := i18n.Format(cc.lang, i18n.KeyHarvestAll, map[string]any{"count": count, "coins": coins})
		sendEmbed(s, i, createEmbed("🧺", msg, ColorSuccess))
	}

	return cmd, handler
}
