package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/NeuroFarm_Go/internal/i18n"
)

// MarketCommand shows what crops and animal products sell for
func MarketCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdMarket,
		Description: "See current sell prices",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		cc, ok := beginCommand(s, i, client)
		if !ok {
			return
		}
		defer cc.cancel()

		crops, err := client.CatalogCrops(cc.ctx)
		if err != nil {
			cc.fail(s, i, err, "")
			return
		}
		animals, err := client.CatalogAnimals(cc.ctx)
		if err != nil {
			cc.fail(s, i, err, "")
			return
		}

		var cropLines, productLines strings.Builder
		for _, c := range crops {
			fmt.Fprintf(&cropLines, "%s %s: %d 💰\n", c.Glyph, c.Name, c.SellPrice)
		}
		for _, a := range animals {
			fmt.Fprintf(&productLines, "%s %s: %d 💰\n", a.Glyph, a.ProductName, a.ProductSellPrice)
		}

		embed := createEmbed("🏪", i18n.Text(cc.lang, i18n.KeyMarketWelcome), ColorGold)
		embed.Fields = nonEmptyFields(
			&discordgo.MessageEmbedField{Name: "🌾", Value: cropLines.String(), Inline: true},
			&discordgo.MessageEmbedField{Name: "🥚", Value: productLines.String(), Inline: true},
		)
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// ShopCommand shows what seeds and animals cost
func ShopCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdShop,
		Description: "See seed and animal prices",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		cc, ok := beginCommand(s, i, client)
		if !ok {
			return
		}
		defer cc.cancel()

		crops, err := client.CatalogCrops(cc.ctx)
		if err != nil {
			cc.fail(s, i, err, "")
			return
		}
		animals, err := client.CatalogAnimals(cc.ctx)
		if err != nil {
			cc.fail(s, i, err, "")
			return
		}

		var seedLines, animalLines strings.Builder
		for _, c := range crops {
			fmt.Fprintf(&seedLines, "%s %s: %d 💰 (%s)\n", c.Glyph, c.Name, c.PlantingCost, formatDuration(secondsDuration(c.GrowthSeconds)))
		}
		for _, a := range animals {
			fmt.Fprintf(&animalLines, "%s %s: %d 💰\n", a.Glyph, a.Name, a.PurchaseCost)
		}

		embed := createEmbed("🛒", i18n.Text(cc.lang, i18n.KeyShopWelcome), ColorGold)
		embed.Fields = nonEmptyFields(
			&discordgo.MessageEmbedField{Name: "🌱", Value: seedLines.String(), Inline: true},
			&discordgo.MessageEmbedField{Name: "🐾", Value: animalLines.String(), Inline: true},
		)
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// nonEmptyFields drops fields Discord would reject for an empty value
func nonEmptyFields(fields ...*discordgo.MessageEmbedField) []*discordgo.MessageEmbedField {
	out := make([]*discordgo.MessageEmbedField, 0, len(fields))
	for _, f := range fields {
		if strings.TrimSpace(f.Value) != "" {
			out = append(out, f)
		}
	}
	return out
}
