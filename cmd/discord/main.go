package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/osse101/NeuroFarm_Go/internal/config"
	"github.com/osse101/NeuroFarm_Go/internal/discord"
	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/logger"
)

// Default values for optional configuration
const (
	DefaultHealthPort = "8082"
	DefaultAPIURL     = "http://localhost:8080"
	ServiceName       = "neurofarm-discord"
)

func main() {
	_ = godotenv.Load()

	setupLogger()

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	bot, err := discord.New(cfg)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Level-up announcements need a channel to post in
	var events *discord.SSEClient
	if cfg.NotificationChannelID != "" {
		notifier := discord.NewSSENotifier(bot, getEnv("DISCORD_ANNOUNCE_LANGUAGE", domain.DefaultLanguage))
		events = discord.NewSSEClient(cfg.APIURL, cfg.APIKey, notifier.EventTypes())
		notifier.RegisterHandlers(events)
		events.Start(ctx)
		defer events.Stop()
	}

	httpServer := discord.NewHTTPServer(cfg.HealthPort, bot, events)
	httpServer.Start()
	defer httpServer.Stop()

	bot.Registry.RegisterAll(getCommandFactories(bot)...)

	if cfg.ForceCommandUpdate {
		slog.Info("Force command update enabled via environment variable")
	}
	if _, err := bot.RegisterCommands(bot.Registry, cfg.ForceCommandUpdate); err != nil {
		// Commands registered by an earlier run still work
		slog.Error("Failed to register commands", "error", err)
	}

	if err := bot.Run(); err != nil {
		slog.Error("Bot failed", "error", err)
		cancel()
		os.Exit(1)
	}
	// Unblock the event stream before its deferred Stop waits on it
	cancel()
}

func setupLogger() {
	cfg := logger.NewConfig(
		getEnv("LOG_LEVEL", "info"),
		getEnv("LOG_FORMAT", "text"),
		ServiceName,
		getEnv("APP_VERSION", "dev"),
		getEnv("ENVIRONMENT", "dev"),
		false,
	)
	logger.InitLoggerWithWriter(cfg, os.Stdout)
}

// loadConfig loads the bot configuration from the environment
func loadConfig() (discord.Config, error) {
	if err := config.ValidateDiscordEnv(); err != nil {
		// Token and app id are the only hard requirements
		slog.Warn("Environment validation failed", "error", err)
	}

	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return discord.Config{}, errors.New("DISCORD_TOKEN is required")
	}

	appID := os.Getenv("DISCORD_APP_ID")
	if appID == "" {
		return discord.Config{}, errors.New("DISCORD_APP_ID is required")
	}

	apiURL := getEnv("API_URL", DefaultAPIURL)
	slog.Info("Configured API URL", "url", apiURL)

	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		slog.Warn("API_KEY not set, discord bot requests will be rejected")
	}

	notificationChannelID := os.Getenv("DISCORD_NOTIFICATION_CHANNEL_ID")
	if notificationChannelID != "" {
		slog.Info("Level-up announcements enabled", "channel_id", notificationChannelID)
	}

	return discord.Config{
		Token:                 token,
		AppID:                 appID,
		APIURL:                apiURL,
		APIKey:                apiKey,
		NotificationChannelID: notificationChannelID,
		HealthPort:            getEnv("DISCORD_HEALTH_PORT", DefaultHealthPort),
		ForceCommandUpdate:    os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true",
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getCommandFactories returns every slash command the bot serves
func getCommandFactories(bot *discord.Bot) []discord.CommandFactory {
	return []discord.CommandFactory{
		// Core
		discord.HelloCommand,
		discord.HelpCommand,
		discord.ProfileCommand,
		discord.ChangeLanguageCommand,

		// Farm
		discord.PlantCommand,
		discord.CropsCommand,
		discord.HarvestCommand,
		discord.BreedCommand,
		discord.AnimalsCommand,
		discord.CollectCommand,

		// Activities
		discord.ExploreCommand,
		discord.FishCommand,
		discord.OpenChestCommand,

		// Economy
		discord.MarketCommand,
		discord.ShopCommand,

		// Admin
		discord.SyncCommand(bot),
	}
}
