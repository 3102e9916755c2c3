package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/NeuroFarm_Go/internal/i18n"
	"github.com/osse101/NeuroFarm_Go/internal/metrics"
)

// CommandHandler handles a slash command
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient)

// CommandFactory builds a command definition and its handler
type CommandFactory func() (*discordgo.ApplicationCommand, CommandHandler)

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// RegisterAll registers every factory's command
func (r *CommandRegistry) RegisterAll(factories ...CommandFactory) {
	for _, f := range factories {
		r.Register(f())
	}
}

// Handle processes an interaction
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	if h, ok := r.Handlers[i.ApplicationCommandData().Name]; ok {
		h(s, i, client)
	}
}

// RegisterCommands registers or updates commands with Discord. It only
// overwrites when the registered set differs, to stay clear of rate limits.
// It returns the number of commands Discord now holds.
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) (int, error) {
	slog.Info("Checking Discord commands...")

	existingCmds, err := b.Session.ApplicationCommands(b.AppID, "")
	if err != nil {
		return 0, fmt.Errorf("failed to fetch existing commands: %w", err)
	}

	desiredCmds := make([]*discordgo.ApplicationCommand, 0, len(registry.Commands))
	for _, cmd := range registry.Commands {
		desiredCmds = append(desiredCmds, cmd)
	}

	if !forceUpdate && commandsEqual(existingCmds, desiredCmds) {
		slog.Info("Commands unchanged, skipping registration", "count", len(existingCmds))
		return len(existingCmds), nil
	}

	slog.Info("Updating commands", "existing", len(existingCmds), "desired", len(desiredCmds), "force", forceUpdate)
	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desiredCmds); err != nil {
		return 0, fmt.Errorf("failed to update commands: %w", err)
	}

	slog.Info("Commands updated successfully", "count", len(desiredCmds))
	return len(desiredCmds), nil
}

// commandsEqual checks if two command sets are equivalent
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand)
	for _, cmd := range existing {
		existingMap[cmd.Name] = cmd
	}

	for _, d := range desired {
		e, ok := existingMap[d.Name]
		if !ok || !commandEqual(e, d) {
			return false
		}
	}
	return true
}

// commandEqual checks if two commands are equivalent
func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}

	if (a.DefaultMemberPermissions == nil) != (b.DefaultMemberPermissions == nil) {
		return false
	}
	if a.DefaultMemberPermissions != nil && *a.DefaultMemberPermissions != *b.DefaultMemberPermissions {
		return false
	}

	if len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Options {
		if !optionEqual(a.Options[i], b.Options[i]) {
			return false
		}
	}
	return true
}

// optionEqual checks if two command options are equivalent
func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description ||
		a.Required != b.Required || a.Autocomplete != b.Autocomplete {
		return false
	}

	if len(a.Choices) != len(b.Choices) {
		return false
	}
	for i := range a.Choices {
		if a.Choices[i].Name != b.Choices[i].Name || a.Choices[i].Value != b.Choices[i].Value {
			return false
		}
	}
	return true
}

// commandContext carries what every farm command needs once the
// interaction is deferred and the player is known
type commandContext struct {
	ctx        context.Context
	cancel     context.CancelFunc
	user       *discordgo.User
	accountKey string
	lang       string
	player     *PlayerInfo
}

// PlayerInfo is the subset of the player the commands display
type PlayerInfo struct {
	Coins      int64
	Experience int64
	Level      int
	ToNext     int64
	AtMax      bool
}

// beginCommand defers the interaction and registers the caller. The player's
// stored language wins over the Discord client locale. Returns false when a
// response has already been sent.
func beginCommand(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) (*commandContext, bool) {
	if !deferResponse(s, i) {
		return nil, false
	}

	user := getInteractionUser(i)
	locale := i18n.Match(string(i.Locale))
	if user == nil {
		respondError(s, i, i18n.Text(locale, i18n.KeyErrInvalidInput))
		return nil, false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*APIRequestTimeout)
	cc := &commandContext{
		ctx:        ctx,
		cancel:     cancel,
		user:       user,
		accountKey: AccountKey(user.ID),
		lang:       locale,
	}

	p, err := client.EnsurePlayer(ctx, cc.accountKey, locale)
	if err != nil {
		cancel()
		slog.Error("Failed to register player", "account_key", cc.accountKey, "error", err)
		respondError(s, i, friendlyError(locale, err, ""))
		return nil, false
	}
	cc.lang = p.Language
	cc.player = &PlayerInfo{
		Coins:      p.Coins,
		Experience: p.Experience,
		Level:      p.Level,
		ToNext:     p.ExperienceToNextLevel,
		AtMax:      p.AtMaxLevel,
	}
	return cc, true
}

// farmID returns the caller's farm, creating it on first use
func (cc *commandContext) farmID(client *APIClient) (int64, error) {
	f, err := client.EnsureFarm(cc.ctx, cc.accountKey)
	if err != nil {
		return 0, err
	}
	return f.ID, nil
}

// fail reports err to the user in their language
func (cc *commandContext) fail(s *discordgo.Session, i *discordgo.InteractionCreate, err error, name string) {
	slog.Error(LogMsgCommandFailed, "command", i.ApplicationCommandData().Name, "account_key", cc.accountKey, "error", err)
	respondError(s, i, friendlyError(cc.lang, err, name))
}

// deferResponse acknowledges an interaction with a deferred message.
// Required before any work that might take longer than 3 seconds.
// Returns false if deferral failed.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error(LogMsgDeferFailed, "error", err)
		return false
	}
	return true
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// getOptions extracts command options from an interaction
func getOptions(i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandInteractionDataOption {
	return i.ApplicationCommandData().Options
}

// findOption returns the named option, or nil when it was not supplied
func findOption(i *discordgo.InteractionCreate, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range getOptions(i) {
		if opt.Name == name {
			return opt
		}
	}
	return nil
}

// respondError edits the deferred response with an error message
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	RecordCommand(i.ApplicationCommandData().Name, metrics.StatusError)
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error(LogMsgEditFailed, "error", err)
	}
}

// sendEmbed edits the deferred response with embed
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	RecordCommand(i.ApplicationCommandData().Name, metrics.StatusOK)
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error(LogMsgEditFailed, "error", err)
	}
}

// createEmbed builds an embed with the standard footer
func createEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterNeuroFarm,
		},
	}
}
