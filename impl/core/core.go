package core

import (
	"RepairDesk/entity"
	"RepairDesk/internal/lib/sl"
	"RepairDesk/internal/service/catalog"
	"RepairDesk/workflow"
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidRequest = errors.New("invalid request")

type Repository interface {
	CheckApiKey(key string) (string, error)
	GenerateApiKey(username string) (string, error)

	SaveBooking(ctx context.Context, booking *entity.Booking) error
	GetBookings(ctx context.Context, limit int64) ([]entity.Booking, error)
	SetBookingStatus(ctx context.Context, trackingID string, status entity.BookingStatus) error

	SaveSaleQuote(ctx context.Context, quote *entity.SaleQuote) error
	GetSaleQuotes(ctx context.Context, limit int64) ([]entity.SaleQuote, error)

	GetServices(ctx context.Context) ([]entity.RepairService, error)
	UpsertService(ctx context.Context, service *entity.RepairService) error
	GetTimeSlots(ctx context.Context) ([]entity.TimeSlot, error)
	UpsertTimeSlot(ctx context.Context, slot *entity.TimeSlot) error
}

// Broadcaster pushes created records to the staff live feed.
type Broadcaster interface {
	BroadcastBookingCreated(booking entity.Booking)
	BroadcastSaleQuoteCreated(quote entity.SaleQuote)
}

// Notifier delivers a message to the admin chat.
type Notifier interface {
	SendMessage(msg string)
}

type WorkflowEngine interface {
	Workflows() []workflow.WorkflowID
	StartWorkflow(workflowID workflow.WorkflowID, profile *entity.Profile) (*workflow.Session, error)
	GetSession(id string) (*workflow.Session, error)
	EndSession(id string)
}

type CatalogService interface {
	ListServices(ctx context.Context) catalog.Listing[entity.RepairService]
	ListTimeSlots(ctx context.Context) catalog.Listing[entity.TimeSlot]
}

type Core struct {
	repo        Repository
	broadcaster Broadcaster
	notifier    Notifier
	engine      WorkflowEngine
	catalog     CatalogService
	validate    *validator.Validate
	authKey     string
	log         *slog.Logger
}

// New returns a core backed by an in-memory repository until SetRepository is called.
func New(log *slog.Logger) *Core {
	return &Core{
		repo:     NewMemoryRepository(),
		validate: validator.New(),
		log:      log.With(sl.Module("core")),
	}
}

func (c *Core) SetRepository(repo Repository) {
	c.repo = repo
}

func (c *Core) SetAuthKey(key string) {
	c.authKey = key
}

func (c *Core) SetBroadcaster(b Broadcaster) {
	c.broadcaster = b
}

func (c *Core) SetNotifier(n Notifier) {
	c.notifier = n
}

func (c *Core) SetWorkflowEngine(engine WorkflowEngine) {
	c.engine = engine
}

func (c *Core) SetCatalog(catalog CatalogService) {
	c.catalog = catalog
}

func (c *Core) notify(msg string) {
	if c.notifier == nil {
		return
	}
	go c.notifier.SendMessage(msg)
}
