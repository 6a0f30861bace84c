package bot

import (
	"fmt"
	"strconv"
	"time"

	"github.com/lidetdev/lotto-backend/utils/logger"
	"gopkg.in/telebot.v3"
	"gorm.io/gorm"
)

// Bot wraps the Telegram transport. It hands out chat IDs for registration
// and delivers OTP codes and round results.
type Bot struct {
	B  *telebot.Bot
	DB *gorm.DB
}

func New(token string, db *gorm.DB) (*Bot, error) {
	pref := telebot.Settings{
		Token:  token,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := telebot.NewBot(pref)
	if err != nil {
		return nil, err
	}

	bot := &Bot{B: b, DB: db}
	bot.registerHandlers()
	return bot, nil
}

func (b *Bot) registerHandlers() {
	b.B.Handle("/start", func(c telebot.Context) error {
		welcome := fmt.Sprintf(
			"🎮 እንኳን ወደ ROYAL LOTTO በደህና መጡ!\n\n"+
				"በዌብሳይታችን ላይ ለመመዝገብ የእርስዎን Chat ID ማወቅ ይኖርብዎታል።\n"+
				"የእርስዎ Chat ID: `%d`\n\n"+
				"ይህንን ቁጥር በመያዝ ወደ ዌብሳይቱ ተመልሰው ምዝገባዎን ያጠናቅቁ።",
			c.Chat().ID)
		return c.Send(welcome, telebot.ModeMarkdown)
	})

	b.B.Handle("/id", func(c telebot.Context) error {
		return c.Send(fmt.Sprintf("የእርስዎ Chat ID: `%d`", c.Chat().ID), telebot.ModeMarkdown)
	})
}

// Start begins long polling. Blocks; run in a goroutine.
func (b *Bot) Start() {
	logger.Info("telegram bot started")
	b.B.Start()
}

func (b *Bot) Stop() {
	b.B.Stop()
}

func (b *Bot) send(chatID, text string) error {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return fmt.Errorf("bad chat id %q: %w", chatID, err)
	}
	_, err = b.B.Send(telebot.ChatID(id), text)
	return err
}

// SendOTP delivers a registration code.
func (b *Bot) SendOTP(chatID, code string) error {
	return b.send(chatID, fmt.Sprintf("🎮 ወደ ROYAL LOTTO ዌብሳይት ለመግባት የመለያ ማረጋገጫ ኮድዎ: %s", code))
}

// SendRoundResult tells a participant a round is over.
func (b *Bot) SendRoundResult(chatID, roomName string, prize float64) error {
	return b.send(chatID, fmt.Sprintf("🏆 የ%s ዙር ተጠናቋል! ሽልማት: %.2f ETB (Round finished, prize %.2f ETB)", roomName, prize, prize))
}
