package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RepairDesk/entity"
	"RepairDesk/internal/service/catalog"
	"RepairDesk/internal/service/session"
	"RepairDesk/workflow"
	"RepairDesk/workflows/selldevice"
)

type flakyAPI struct {
	failures atomic.Int32
	calls    atomic.Int32
}

func (f *flakyAPI) CreateSaleQuote(_ context.Context, req entity.SaleQuoteRequest) (*entity.Receipt, error) {
	f.calls.Add(1)
	if f.failures.Add(-1) >= 0 {
		return nil, errors.New("upstream 503")
	}
	return &entity.Receipt{TrackingID: "SQ-TEST", CreatedAt: time.Now()}, nil
}

type testCore struct {
	*workflow.Engine
}

func (testCore) CatalogServices(context.Context) (catalog.Listing[entity.RepairService], error) {
	return catalog.Listing[entity.RepairService]{Items: catalog.DefaultServices(), Source: catalog.SourceFallback, Degraded: true}, nil
}

func (testCore) CatalogTimeSlots(context.Context) (catalog.Listing[entity.TimeSlot], error) {
	return catalog.Listing[entity.TimeSlot]{Items: []entity.TimeSlot{}, Source: catalog.SourceRemote}, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type viewBody struct {
	ID         string                     `json:"id"`
	Step       workflow.StepState         `json:"step"`
	Fields     map[string]any             `json:"fields"`
	Estimate   entity.PriceEstimate       `json:"estimate"`
	CanAdvance bool                       `json:"can_advance"`
	Submission string                     `json:"submission"`
	Result     *workflow.SubmissionResult `json:"result"`
}

func newRouter(t *testing.T, api selldevice.API) http.Handler {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := workflow.NewEngine(session.NewSessionManager(time.Minute, time.Minute, log), log)
	def, err := selldevice.NewDefinition(api, 0)
	require.NoError(t, err)
	require.NoError(t, engine.RegisterWorkflow(def))
	core := testCore{engine}

	r := chi.NewRouter()
	r.Get("/workflow", List(log, core))
	r.Get("/workflow/catalog/services", Services(log, core))
	r.Get("/workflow/catalog/slots", TimeSlots(log, core))
	r.Post("/workflow/{type}", Start(log, core))
	r.Route("/workflow/session/{id}", func(s chi.Router) {
		s.Get("/", Get(log, core))
		s.Delete("/", End(log, core))
		s.Patch("/fields", SetFields(log, core))
		s.Post("/next", Next(log, core))
		s.Post("/back", Back(log, core))
		s.Post("/submit", Submit(log, core))
	})
	return r
}

func call(t *testing.T, h http.Handler, method, path string, body any) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func decodeView(t *testing.T, env envelope) viewBody {
	t.Helper()
	var v viewBody
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func TestSellDeviceOverHTTP(t *testing.T) {
	api := &flakyAPI{}
	api.failures.Store(1)
	h := newRouter(t, api)

	code, env := call(t, h, http.MethodPost, "/workflow/sell_device", StartRequest{
		Profile: &entity.Profile{Name: "Sam Lee", Email: "sam@example.com", Phone: "0123456789"},
	})
	require.Equal(t, http.StatusCreated, code)
	view := decodeView(t, env)
	assert.Equal(t, 1, view.Step.Index)
	assert.Equal(t, "Sam Lee", view.Fields["name"])
	base := "/workflow/session/" + view.ID

	code, env = call(t, h, http.MethodPost, base+"/next", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.False(t, env.Success)
	assert.Equal(t, 1, decodeView(t, env).Step.Index)

	code, env = call(t, h, http.MethodPatch, base+"/fields", FieldsRequest{Fields: map[string]any{"coupon": "FREE"}})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)

	code, _ = call(t, h, http.MethodPatch, base+"/fields", FieldsRequest{Fields: map[string]any{
		"device_type": "phone", "device_brand": "Google", "device_model": "Pixel 8",
	}})
	require.Equal(t, http.StatusOK, code)
	code, _ = call(t, h, http.MethodPost, base+"/next", nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = call(t, h, http.MethodPatch, base+"/fields", FieldsRequest{Fields: map[string]any{"condition": "good"}})
	require.Equal(t, http.StatusOK, code)
	code, env = call(t, h, http.MethodPost, base+"/next", nil)
	require.Equal(t, http.StatusOK, code)
	view = decodeView(t, env)
	assert.Equal(t, 3, view.Step.Index)
	assert.Equal(t, entity.PriceEstimate{Low: 160, High: 210}, view.Estimate)

	code, env = call(t, h, http.MethodPost, base+"/submit", nil)
	assert.Equal(t, http.StatusBadGateway, code)
	view = decodeView(t, env)
	assert.Equal(t, 3, view.Step.Index)
	assert.Equal(t, workflow.SubmissionIdle, view.Submission)
	assert.Equal(t, "Pixel 8", view.Fields["device_model"])

	code, env = call(t, h, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusOK, code)
	view = decodeView(t, env)
	assert.Equal(t, workflow.StepState{Index: 4, Terminal: true}, view.Step)
	require.NotNil(t, view.Result)
	assert.Equal(t, "SQ-TEST", view.Result.TrackingID)

	code, env = call(t, h, http.MethodPost, base+"/submit", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, workflow.SubmissionSettled, decodeView(t, env).Submission)
	assert.Equal(t, int32(2), api.calls.Load())

	code, env = call(t, h, http.MethodPost, base+"/back", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, decodeView(t, env).Step.Terminal)

	code, _ = call(t, h, http.MethodDelete, base+"/", nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = call(t, h, http.MethodGet, base+"/", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestSubmitIncompleteForm(t *testing.T) {
	api := &flakyAPI{}
	h := newRouter(t, api)

	_, env := call(t, h, http.MethodPost, "/workflow/sell_device", nil)
	base := "/workflow/session/" + decodeView(t, env).ID

	code, env := call(t, h, http.MethodPost, base+"/submit", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.False(t, env.Success)
	assert.Zero(t, api.calls.Load())
}

func TestStartUnknownWorkflow(t *testing.T) {
	h := newRouter(t, &flakyAPI{})
	code, env := call(t, h, http.MethodPost, "/workflow/trade_in", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
}

func TestListAndCatalog(t *testing.T) {
	h := newRouter(t, &flakyAPI{})

	code, env := call(t, h, http.MethodGet, "/workflow", nil)
	require.Equal(t, http.StatusOK, code)
	var ids []string
	require.NoError(t, json.Unmarshal(env.Data, &ids))
	assert.Equal(t, []string{"sell_device"}, ids)

	code, env = call(t, h, http.MethodGet, "/workflow/catalog/services", nil)
	require.Equal(t, http.StatusOK, code)
	var listing catalog.Listing[entity.RepairService]
	require.NoError(t, json.Unmarshal(env.Data, &listing))
	assert.True(t, listing.Degraded)
	assert.Equal(t, catalog.SourceFallback, listing.Source)
	assert.Len(t, listing.Items, 6)
}
