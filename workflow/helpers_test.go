package workflow

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"RepairDesk/entity"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeCreator records calls and can hold them until released.
type fakeCreator struct {
	calls    atomic.Int32
	release  chan struct{}
	entered  chan struct{}
	err      error
	receipt  *entity.Receipt
	mu       sync.Mutex
	received []*FormState
	ctxErr   error
}

func newFakeCreator(trackingID string) *fakeCreator {
	return &fakeCreator{receipt: &entity.Receipt{TrackingID: trackingID}}
}

func (f *fakeCreator) blocking() *fakeCreator {
	f.release = make(chan struct{})
	f.entered = make(chan struct{}, 16)
	return f
}

func (f *fakeCreator) Create(ctx context.Context, form *FormState) (*entity.Receipt, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.received = append(f.received, form)
	f.mu.Unlock()
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	f.ctxErr = ctx.Err()
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.receipt, nil
}

type pickFields struct {
	Pick string `validate:"required"`
}

// testDefinition is a three step workflow: pick, contact, confirmation.
func testDefinition(creator Creator) *Definition {
	return &Definition{
		ID:    "test",
		Steps: 3,
		StepFields: map[int][]string{
			1: {"pick"},
			2: {KeyName, KeyEmail, KeyPhone},
		},
		Gate: NewGate(map[int]Rule{
			1: StructRule(func(form *FormState) any {
				return pickFields{Pick: form.GetString("pick")}
			}),
			2: ContactRule(),
		}),
		Estimator: EstimatorFunc(func(form *FormState) entity.PriceEstimate {
			if form.GetString("pick") == "" {
				return entity.PriceEstimate{}
			}
			return entity.PriceEstimate{Low: 10, High: 20}
		}),
		Creator:    creator,
		EchoFields: []string{"pick", KeyName},
	}
}

func fillContact(form *FormState) {
	form.MergeData(map[string]any{
		KeyName:  "Jane Doe",
		KeyEmail: "jane@example.com",
		KeyPhone: "5551234567",
	})
}

type mapStorage struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func newMapStorage() *mapStorage {
	return &mapStorage{sessions: make(map[string]*Session)}
}

func (m *mapStorage) Save(session *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = session
}

func (m *mapStorage) Load(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *mapStorage) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}
