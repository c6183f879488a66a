package bot

import (
	"RepairDesk/entity"
	"RepairDesk/internal/lib/sl"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tgbotapi "github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers"
)

const recentLimit = 10

// Records gives the admin commands read access to created records.
type Records interface {
	ListBookings(ctx context.Context, limit int64) ([]entity.Booking, error)
	ListSaleQuotes(ctx context.Context, limit int64) ([]entity.SaleQuote, error)
}

// TgBot is the admin bot: it forwards notifications and error logs to the
// admin chat and answers a few read-only commands there.
type TgBot struct {
	log         *slog.Logger
	api         *tgbotapi.Bot
	botUsername string
	adminId     int64
	records     Records
}

func NewTgBot(botName, apiKey string, adminId int64, log *slog.Logger) (*TgBot, error) {
	tgBot := &TgBot{
		log:         log.With(sl.Module("tgbot")),
		adminId:     adminId,
		botUsername: botName,
	}

	api, err := tgbotapi.NewBot(apiKey, nil)
	if err != nil {
		return nil, fmt.Errorf("creating api instance: %v", err)
	}
	tgBot.api = api

	return tgBot, nil
}

func (t *TgBot) SetRecords(records Records) {
	t.records = records
}

func (t *TgBot) Start() error {
	dispatcher := ext.NewDispatcher(&ext.DispatcherOpts{
		Error: func(b *tgbotapi.Bot, ctx *ext.Context, err error) ext.DispatcherAction {
			t.log.Error("handling update", sl.Err(err))
			return ext.DispatcherActionNoop
		},
		MaxRoutines: ext.DefaultMaxRoutines,
	})
	updater := ext.NewUpdater(dispatcher, nil)

	dispatcher.AddHandler(handlers.NewCommand("bookings", t.handleBookings))
	dispatcher.AddHandler(handlers.NewCommand("quotes", t.handleQuotes))

	err := updater.StartPolling(t.api, &ext.PollingOpts{
		DropPendingUpdates: true,
		GetUpdatesOpts: &tgbotapi.GetUpdatesOpts{
			Timeout: 9,
			RequestOpts: &tgbotapi.RequestOpts{
				Timeout: time.Second * 10,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to start polling: %w", err)
	}
	t.log.Info("admin bot started", slog.String("username", t.botUsername))

	updater.Idle()
	return nil
}

// SendMessage posts to the admin chat.
func (t *TgBot) SendMessage(msg string) {
	t.plainResponse(t.adminId, msg)
}

func (t *TgBot) handleBookings(_ *tgbotapi.Bot, ctx *ext.Context) error {
	chatId := ctx.EffectiveChat.Id
	if chatId != t.adminId || t.records == nil {
		return nil
	}
	bookings, err := t.records.ListBookings(context.Background(), recentLimit)
	if err != nil {
		return fmt.Errorf("list bookings: %w", err)
	}
	t.plainResponse(chatId, formatBookings(bookings))
	return nil
}

func (t *TgBot) handleQuotes(_ *tgbotapi.Bot, ctx *ext.Context) error {
	chatId := ctx.EffectiveChat.Id
	if chatId != t.adminId || t.records == nil {
		return nil
	}
	quotes, err := t.records.ListSaleQuotes(context.Background(), recentLimit)
	if err != nil {
		return fmt.Errorf("list sale quotes: %w", err)
	}
	t.plainResponse(chatId, formatQuotes(quotes))
	return nil
}

func (t *TgBot) plainResponse(chatId int64, text string) {
	sanitized := sanitize(text)
	if sanitized == "" {
		t.log.With(slog.Int64("id", chatId)).Debug("empty message")
		return
	}

	_, err := t.api.SendMessage(chatId, sanitized, &tgbotapi.SendMessageOpts{
		ParseMode: "MarkdownV2",
	})
	if err == nil {
		return
	}
	t.log.With(slog.Int64("id", chatId)).Warn("sending message", sl.Err(err))

	// retry unformatted
	_, err = t.api.SendMessage(chatId, text, &tgbotapi.SendMessageOpts{})
	if err != nil {
		t.log.With(slog.Int64("id", chatId)).Error("sending safe message", sl.Err(err))
	}
}

func formatBookings(bookings []entity.Booking) string {
	if len(bookings) == 0 {
		return "No bookings yet"
	}
	var sb strings.Builder
	for _, b := range bookings {
		fmt.Fprintf(&sb, "%s [%s] %s %s at %s\n%s %s: %s\n%s, %s\n\n",
			b.TrackingID, b.Status, b.Request.ServiceID, b.Request.Date, b.Request.TimeSlotID,
			b.Request.DeviceBrand, b.Request.DeviceModel, b.Request.Issue,
			b.Request.Contact.Name, b.Request.Contact.Phone,
		)
	}
	return strings.TrimSpace(sb.String())
}

func formatQuotes(quotes []entity.SaleQuote) string {
	if len(quotes) == 0 {
		return "No sale quotes yet"
	}
	var sb strings.Builder
	for _, q := range quotes {
		fmt.Fprintf(&sb, "%s %s %s (%s, %s) $%.0f-$%.0f\n%s, %s\n\n",
			q.TrackingID, q.Request.DeviceBrand, q.Request.DeviceModel,
			q.Request.DeviceType, q.Request.Condition,
			q.Request.Estimate.Low, q.Request.Estimate.High,
			q.Request.Contact.Name, q.Request.Contact.Phone,
		)
	}
	return strings.TrimSpace(sb.String())
}

// sanitize escapes MarkdownV2 reserved characters.
func sanitize(input string) string {
	const reserved = "\\`_*{}#+-.!|()[]~>="
	var sb strings.Builder
	for _, char := range input {
		if strings.ContainsRune(reserved, char) {
			sb.WriteRune('\\')
		}
		sb.WriteRune(char)
	}
	return sb.String()
}
