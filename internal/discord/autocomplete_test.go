package discord

import (
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NeuroFarm_Go/internal/handler"
)

func newAutocompleteInteraction(command, option, value string) *discordgo.InteractionCreate {
	i := newCommandInteraction(command, &discordgo.ApplicationCommandInteractionDataOption{
		Name:    option,
		Type:    discordgo.ApplicationCommandOptionString,
		Value:   value,
		Focused: true,
	})
	i.Type = discordgo.InteractionApplicationCommandAutocomplete
	return i
}

func choiceNames(resp discordgo.InteractionResponse) []string {
	if resp.Data == nil {
		return nil
	}
	names := make([]string, 0, len(resp.Data.Choices))
	for _, c := range resp.Data.Choices {
		names = append(names, c.Name)
	}
	return names
}

func TestHandleAutocomplete_Crops(t *testing.T) {
	autocompleteCache.Purge()
	tc := SetupTestContext(t)

	var calls atomic.Int32
	tc.Router.Get("/api/v1/catalog/crops", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		WriteJSON(w, http.StatusOK, []handler.CropTypeResponse{
			{Name: "Wheat"}, {Name: "Corn"}, {Name: "Buckwheat"}, {Name: "Potato"},
		})
	})

	HandleAutocomplete(tc.Session, newAutocompleteInteraction(CmdPlant, OptCrop, "whe"), tc.APIClient)

	resp := tc.LastResponse(t)
	assert.Equal(t, discordgo.InteractionApplicationCommandAutocompleteResult, resp.Type)
	// Prefix matches come before substring matches
	assert.Equal(t, []string{"Wheat", "Buckwheat"}, choiceNames(resp))

	// Served from cache
	HandleAutocomplete(tc.Session, newAutocompleteInteraction(CmdPlant, OptCrop, ""), tc.APIClient)
	assert.Equal(t, []string{"Buckwheat", "Corn", "Potato", "Wheat"}, choiceNames(tc.LastResponse(t)))
	assert.Equal(t, int32(1), calls.Load())
}

func TestHandleAutocomplete_AnimalsAndRegions(t *testing.T) {
	autocompleteCache.Purge()
	tc := SetupTestContext(t)

	tc.Router.Get("/api/v1/catalog/animals", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, []handler.AnimalTypeResponse{{Name: "Chicken"}, {Name: "Cow"}})
	})
	tc.Router.Get("/api/v1/catalog/regions", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, []handler.RegionResponse{{Name: "Forest"}, {Name: "Mountain"}})
	})

	HandleAutocomplete(tc.Session, newAutocompleteInteraction(CmdBreed, OptAnimal, "c"), tc.APIClient)
	assert.Equal(t, []string{"Chicken", "Cow"}, choiceNames(tc.LastResponse(t)))

	HandleAutocomplete(tc.Session, newAutocompleteInteraction(CmdExplore, OptRegion, "MOUN"), tc.APIClient)
	assert.Equal(t, []string{"Mountain"}, choiceNames(tc.LastResponse(t)))
}

func TestHandleAutocomplete_APIErrorRespondsEmpty(t *testing.T) {
	autocompleteCache.Purge()
	tc := SetupTestContext(t)
	tc.APIClient.MaxRetries = 0

	tc.Router.Get("/api/v1/catalog/crops", func(w http.ResponseWriter, r *http.Request) {
		WriteAPIError(w, http.StatusServiceUnavailable, "storage_unavailable", "down")
	})

	HandleAutocomplete(tc.Session, newAutocompleteInteraction(CmdPlant, OptCrop, "w"), tc.APIClient)

	assert.Empty(t, choiceNames(tc.LastResponse(t)))
	_, cached := autocompleteCache.Get(CmdPlant)
	assert.False(t, cached)
}

func TestFilterChoices_CapsAtDiscordLimit(t *testing.T) {
	names := make([]string, 40)
	for i := range names {
		names[i] = "Crop"
	}
	choices := filterChoices(names, "")
	require.Len(t, choices, MaxAutocompleteChoices)
}
