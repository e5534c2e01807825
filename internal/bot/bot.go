// Package bot is the Telegram launcher bot. It answers a few commands with
// a button that opens the web app.
package bot

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the part of *tgbotapi.BotAPI the bot uses.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Bot struct {
	sender    Sender
	webAppURL string
	// publicURL is the API host serving /privacy and /terms.
	publicURL string
}

func New(sender Sender, webAppURL, publicURL string) *Bot {
	return &Bot{sender: sender, webAppURL: webAppURL, publicURL: publicURL}
}

func (b *Bot) helpText() string {
	base := strings.TrimRight(b.publicURL, "/")
	return fmt.Sprintf(`📱 <b>Bot commands:</b>

/start - launch the app
/help - show this help
/app - open the app

🔗 Use the web app for the full experience!

<a href="%s/privacy">Privacy Policy</a> · <a href="%s/terms">Terms of Service</a>`,
		html.EscapeString(base), html.EscapeString(base))
}

func welcomeText(firstName string) string {
	if firstName == "" {
		firstName = "friend"
	}
	return fmt.Sprintf(`🎯 <b>Welcome to MisterMo, %s!</b>

The Morachkovsky system is your personal approach to health and nutrition based on genetic data.

🔹 Personal nutrition programmes
🔹 Food and calorie scanner
🔹 Breathing practices
🔹 Workouts and exercises
🔹 Progress tracking

Tap the button below to start:`, html.EscapeString(firstName))
}

func (b *Bot) openButton(label string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonURL(label, b.webAppURL)),
	)
}

// Reply builds the answer to msg. ok is false for messages the bot ignores.
func (b *Bot) Reply(msg *tgbotapi.Message) (reply tgbotapi.MessageConfig, ok bool) {
	if msg == nil || msg.Chat == nil || !msg.IsCommand() {
		return reply, false
	}

	var text, label string
	switch msg.Command() {
	case "start":
		firstName := ""
		if msg.From != nil {
			firstName = msg.From.FirstName
		}
		text, label = welcomeText(firstName), "🏃 Open MisterMo App"
	case "help":
		text, label = b.helpText(), "🏃 Open App"
	case "app":
		text, label = "Tap to open the MisterMo app:", "🏃 Open MisterMo App"
	default:
		return reply, false
	}

	reply = tgbotapi.NewMessage(msg.Chat.ID, text)
	reply.ParseMode = tgbotapi.ModeHTML
	reply.ReplyMarkup = b.openButton(label)
	return reply, true
}

// Handle answers a single update.
func (b *Bot) Handle(update tgbotapi.Update) error {
	reply, ok := b.Reply(update.Message)
	if !ok {
		return nil
	}
	if _, err := b.sender.Send(reply); err != nil {
		return fmt.Errorf("failed to send reply to chat %d: %w", reply.ChatID, err)
	}
	return nil
}

// Run handles updates until ctx is done or the channel closes.
func (b *Bot) Run(ctx context.Context, updates <-chan tgbotapi.Update) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, open := <-updates:
			if !open {
				return
			}
			if err := b.Handle(update); err != nil {
				log.Printf("Bot: %v", err)
			}
		}
	}
}
