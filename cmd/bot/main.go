package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"misterMoAPI/internal/bot"
	"misterMoAPI/internal/config"
)

func main() {
	cfg, err := config.LoadBot()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("Failed to connect to Telegram: %v", err)
	}
	log.Printf("Bot authorized as @%s", api.Self.UserName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		log.Println("Shutting down bot...")
		api.StopReceivingUpdates()
	}()

	log.Println("Starting to process updates...")
	bot.New(api, cfg.WebAppURL, cfg.PublicURL).Run(ctx, updates)
	log.Println("Bot stopped")
}
