package discord

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Catalog names change rarely; a short cache keeps autocomplete off the API
// on every keystroke.
const autocompleteCacheTTL = time.Minute

var autocompleteCache = expirable.NewLRU[string, []string](8, nil, autocompleteCacheTTL)

// HandleAutocomplete routes autocomplete interactions to the catalog they
// complete from
func HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	data := i.ApplicationCommandData()

	var names []string
	var err error
	switch data.Name {
	case CmdPlant:
		names, err = catalogNames(CmdPlant, func(ctx context.Context) ([]string, error) {
			crops, err := client.CatalogCrops(ctx)
			out := make([]string, 0, len(crops))
			for _, c := range crops {
				out = append(out, c.Name)
			}
			return out, err
		})
	case CmdBreed:
		names, err = catalogNames(CmdBreed, func(ctx context.Context) ([]string, error) {
			animals, err := client.CatalogAnimals(ctx)
			out := make([]string, 0, len(animals))
			for _, a := range animals {
				out = append(out, a.Name)
			}
			return out, err
		})
	case CmdExplore:
		names, err = catalogNames(CmdExplore, func(ctx context.Context) ([]string, error) {
			regions, err := client.CatalogRegions(ctx)
			out := make([]string, 0, len(regions))
			for _, r := range regions {
				out = append(out, r.Name)
			}
			return out, err
		})
	default:
		slog.Warn(LogMsgUnhandledAutocomple, "command", data.Name)
		return
	}
	if err != nil {
		slog.Error(LogMsgAutocompleteFailed, "command", data.Name, "error", err)
	}

	respondChoices(s, i, filterChoices(names, focusedValue(data)))
}

func catalogNames(key string, fetch func(ctx context.Context) ([]string, error)) ([]string, error) {
	if names, ok := autocompleteCache.Get(key); ok {
		return names, nil
	}

	// Discord drops autocomplete responses after three seconds
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	names, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	autocompleteCache.Add(key, names)
	return names, nil
}

func focusedValue(data discordgo.ApplicationCommandInteractionData) string {
	for _, opt := range data.Options {
		if opt.Focused {
			return strings.ToLower(strings.TrimSpace(opt.StringValue()))
		}
	}
	return ""
}

// filterChoices keeps names containing query, prefix matches first
func filterChoices(names []string, query string) []*discordgo.ApplicationCommandOptionChoice {
	var prefix, contains []string
	for _, n := range names {
		lower := strings.ToLower(n)
		switch {
		case query == "" || strings.HasPrefix(lower, query):
			prefix = append(prefix, n)
		case strings.Contains(lower, query):
			contains = append(contains, n)
		}
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, MaxAutocompleteChoices)
	for _, n := range append(prefix, contains...) {
		if len(choices) >= MaxAutocompleteChoices {
			break
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: n, Value: n})
	}
	return choices
}

func respondChoices(s *discordgo.Session, i *discordgo.InteractionCreate, choices []*discordgo.ApplicationCommandOptionChoice) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	}); err != nil {
		slog.Error("Failed to respond to autocomplete", "error", err)
	}
}
