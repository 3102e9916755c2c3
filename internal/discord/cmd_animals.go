package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/i18n"
)

// BreedCommand buys an animal for the player's farm
func BreedCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdBreed,
		Description: "Buy an animal for your farm",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         OptAnimal,
				Description:  "Animal to buy",
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

		opt := findOption(i, OptAnimal)
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

		animal, err := client.PurchaseAnimal(cc.ctx, farmID, name)
		if err != nil {
			cc.fail(s, i, err, name)
			return
		}

		msg := i18n.Format(cc.lang, i18n.KeyBreedSuccess, map[string]any{"animal": animal.Glyph + " " + animal.Animal})
		sendEmbed(s, i, createEmbed("🐣", msg, ColorSuccess))
	}

	return cmd, handler
}

// AnimalsCommand lists the player's animals
func AnimalsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdAnimals,
		Description: "See your animals",
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

		animals, err := client.ListAnimals(cc.ctx, farmID)
		if err != nil {
			cc.fail(s, i, err, "")
			return
		}

		title := "🐾 " + i18n.Text(cc.lang, i18n.KeyAnimalsTitle)
		if len(animals) == 0 {
			sendEmbed(s, i, createEmbed(title, i18n.Text(cc.lang, i18n.KeyAnimalsEmpty), ColorInfo))
			return
		}

		var sb strings.Builder
		for _, a := range animals {
			status := i18n.Format(cc.lang, i18n.KeyAnimalWaiting, map[string]any{
				"product": a.Product,
				"time":    formatDuration(secondsDuration(a.RemainingSeconds)),
			})
			if a.Ready {
				status = "✅ " + i18n.Format(cc.lang, i18n.KeyAnimalReady, map[string]any{"product": a.Product})
			}
			fmt.Fprintf(&sb, "`#%d` %s %s: %s\n", a.ID, a.Glyph, a.Animal, status)
		}
		sendEmbed(s, i, createEmbed(title, sb.String(), ColorInfo))
	}

	return cmd, handler
}

// CollectCommand collects from one animal by id, or from every ready animal
// when no id is given
func CollectCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdCollect,
		Description: "Collect products from your animals",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptAnimalID,
				Description: "Animal to collect from (default: every ready animal)",
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

		if opt := findOption(i, OptAnimalID); opt != nil {
			res, err := client.Collect(cc.ctx, farmID, opt.IntValue())
			if err != nil {
				cc.fail(s, i, err, "")
				return
			}
			msg := i18n.Format(cc.lang, i18n.KeyCollectSuccess, map[string]any{
				"product": res.Animal.Product,
				"animal":  res.Animal.Glyph + " " + res.Animal.Animal,
				"coins":   res.CoinsGained,
			})
			sendEmbed(s, i, createEmbed("🥚", msg, ColorSuccess))
			return
		}

		animals, err := client.ListAnimals(cc.ctx, farmID)
		if err != nil {
			cc.fail(s, i, err, "")
			return
		}

		var count int
		var coins int64
		for _, a := range animals {
			if !a.Ready {
				continue
			}
			res, err := client.Collect(cc.ctx, farmID, a.ID)
			if err != nil {
				if apiErr, ok := AsAPIError(err); ok && apiErr.Code == domain.CodeNotReady {
					continue
				}
				cc.fail(s, i, err, "")
				return
			}
			count++
			coins += res.CoinsGained
		}

		if count == 0 {
			sendEmbed(s, i, createEmbed("🥚", i18n.Text(cc.lang, i18n.KeyCollectNone), ColorWarning))
			return
		}
		msg := i18n.Format(cc.lang, i18n.KeyCollectAll, map[string]any{"count": count, "coins": coins})
		sendEmbed(s, i, createEmbed("🥚", msg, ColorSuccess))
	}

	return cmd, handler
}
