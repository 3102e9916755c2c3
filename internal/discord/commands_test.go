package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allFactories() []CommandFactory {
	return []CommandFactory{
		HelloCommand, HelpCommand, ProfileCommand,
		PlantCommand, CropsCommand, HarvestCommand,
		BreedCommand, AnimalsCommand, CollectCommand,
		ExploreCommand, FishCommand, OpenChestCommand,
		MarketCommand, ShopCommand, ChangeLanguageCommand,
		SyncCommand(&Bot{}),
	}
}

func TestRegisterAll_RegistersEveryCommand(t *testing.T) {
	r := NewCommandRegistry()
	r.RegisterAll(allFactories()...)

	for _, name := range []string{
		CmdHello, CmdHelp, CmdProfile, CmdPlant, CmdCrops, CmdHarvest,
		CmdBreed, CmdAnimals, CmdCollect, CmdExplore, CmdMarket, CmdShop,
		CmdFish, CmdOpenChest, CmdChangeLanguage, CmdSync,
	} {
		assert.Contains(t, r.Commands, name)
		assert.Contains(t, r.Handlers, name)
	}
	assert.Len(t, r.Commands, 16)
}

func TestCommandDefinitions(t *testing.T) {
	for _, f := range allFactories() {
		cmd, handler := f()
		require.NotNil(t, handler, cmd.Name)
		assert.NotEmpty(t, cmd.Description, cmd.Name)
		assert.LessOrEqual(t, len(cmd.Description), 100, cmd.Name)
		for _, opt := range cmd.Options {
			assert.NotEmpty(t, opt.Description, "%s.%s", cmd.Name, opt.Name)
		}
	}
}

func TestSyncCommandRequiresAdministrator(t *testing.T) {
	cmd, _ := SyncCommand(&Bot{})()
	require.NotNil(t, cmd.DefaultMemberPermissions)
	assert.Equal(t, int64(discordgo.PermissionAdministrator), *cmd.DefaultMemberPermissions)
}

func TestCommandsEqual(t *testing.T) {
	perm := int64(8)
	base := func() *discordgo.ApplicationCommand {
		return &discordgo.ApplicationCommand{
			Name:        "plant",
			Description: "Plant a crop",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "crop", Description: "Crop", Required: true, Autocomplete: true},
			},
		}
	}

	tests := []struct {
		name   string
		modify func(c *discordgo.ApplicationCommand)
		equal  bool
	}{
		{"identical", func(c *discordgo.ApplicationCommand) {}, true},
		{"description changed", func(c *discordgo.ApplicationCommand) { c.Description = "other" }, false},
		{"option required changed", func(c *discordgo.ApplicationCommand) { c.Options[0].Required = false }, false},
		{"autocomplete changed", func(c *discordgo.ApplicationCommand) { c.Options[0].Autocomplete = false }, false},
		{"option added", func(c *discordgo.ApplicationCommand) {
			c.Options = append(c.Options, &discordgo.ApplicationCommandOption{Name: "extra"})
		}, false},
		{"permissions added", func(c *discordgo.ApplicationCommand) { c.DefaultMemberPermissions = &perm }, false},
		{"choices changed", func(c *discordgo.ApplicationCommand) {
			c.Options[0].Choices = []*discordgo.ApplicationCommandOptionChoice{{Name: "Wheat", Value: "Wheat"}}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desired := base()
			tt.modify(desired)
			assert.Equal(t, tt.equal, commandsEqual([]*discordgo.ApplicationCommand{base()}, []*discordgo.ApplicationCommand{desired}))
		})
	}

	t.Run("different counts", func(t *testing.T) {
		assert.False(t, commandsEqual(nil, []*discordgo.ApplicationCommand{base()}))
	})
	t.Run("renamed command", func(t *testing.T) {
		other := base()
		other.Name = "sow"
		assert.False(t, commandsEqual([]*discordgo.ApplicationCommand{base()}, []*discordgo.ApplicationCommand{other}))
	})
}

func TestGetInteractionUser(t *testing.T) {
	guild := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Member: &discordgo.Member{User: &discordgo.User{ID: "1"}},
	}}
	assert.Equal(t, "1", getInteractionUser(guild).ID)

	dm := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		User: &discordgo.User{ID: "2"},
	}}
	assert.Equal(t, "2", getInteractionUser(dm).ID)
}
