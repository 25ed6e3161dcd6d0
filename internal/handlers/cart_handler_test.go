package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/spa-booking/internal/audit"
	"github.com/BruksfildServices01/spa-booking/internal/cart"
	"github.com/BruksfildServices01/spa-booking/internal/identity"
	"github.com/BruksfildServices01/spa-booking/internal/middleware"
	"github.com/BruksfildServices01/spa-booking/internal/models"
)

type memStorage struct {
	data map[string]string
}

func newMemStorage() *memStorage {
	return &memStorage{data: make(map[string]string)}
}

func (m *memStorage) Get(_ context.Context, key string) (string, error) {
	v, ok := m.data[key]
	if !ok {
		return "", cart.ErrNotFound
	}
	return v, nil
}

func (m *memStorage) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memStorage) Remove(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func testDispatcher() *audit.Dispatcher {
	// Logger nil: o worker descarta os eventos, mas o Dispatch funciona.
	return audit.NewDispatcher(nil)
}

func seedCart(t *testing.T, storage *memStorage, id identity.Identity, items []models.CartItem) {
	t.Helper()
	raw, err := json.Marshal(items)
	if err != nil {
		t.Fatal(err)
	}
	storage.data[cart.KeyFor(id)] = string(raw)
}

func performJSON(
	t *testing.T,
	handler gin.HandlerFunc,
	id identity.Identity,
	method string,
	body any,
) *httptest.ResponseRecorder {

	t.Helper()
	gin.SetMode(gin.TestMode)

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.ContextIdentity, id)

	handler(c)
	return w
}

// Trocar de unidade sempre resulta em carrinho vazio: nenhum item
// vaza de uma localização para outra.
func TestSetLocationClearsCart(t *testing.T) {
	storage := newMemStorage()
	guest := identity.Guest("g-1")

	seedCart(t, storage, guest, []models.CartItem{
		{ServiceID: "1", VendorLocationUUID: "loc-1"},
	})

	h := NewCartHandler(storage, testDispatcher())

	w := performJSON(t, h.SetLocation, guest, http.MethodPost, SetLocationRequest{
		LocationID: "loc-2",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		CartCleared bool              `json:"cart_cleared"`
		Items       []models.CartItem `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}

	if !resp.CartCleared || len(resp.Items) != 0 {
		t.Errorf("cart must be empty after location switch: %+v", resp)
	}
	if _, ok := storage.data[cart.KeyFor(guest)]; ok {
		t.Error("persisted cart must be removed too")
	}
}

func TestSetLocationSameLocationKeepsCart(t *testing.T) {
	storage := newMemStorage()
	guest := identity.Guest("g-1")

	seedCart(t, storage, guest, []models.CartItem{
		{ServiceID: "1", VendorLocationUUID: "loc-1"},
	})

	h := NewCartHandler(storage, testDispatcher())

	w := performJSON(t, h.SetLocation, guest, http.MethodPost, SetLocationRequest{
		LocationID: "loc-1",
	})

	var resp struct {
		CartCleared bool              `json:"cart_cleared"`
		Items       []models.CartItem `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}

	if resp.CartCleared || len(resp.Items) != 1 {
		t.Errorf("same location must keep the cart: %+v", resp)
	}
}

func TestAddItemFromAnotherLocationClearsFirst(t *testing.T) {
	storage := newMemStorage()
	guest := identity.Guest("g-1")

	seedCart(t, storage, guest, []models.CartItem{
		{ServiceID: "1", VendorLocationUUID: "loc-1"},
	})

	h := NewCartHandler(storage, testDispatcher())

	w := performJSON(t, h.AddItem, guest, http.MethodPost, AddItemRequest{
		ServiceID:          "9",
		Name:               "Massagem",
		DurationMin:        30,
		Price:              500,
		VendorLocationUUID: "loc-2",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Items []models.CartItem `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}

	if len(resp.Items) != 1 || resp.Items[0].ServiceID != "9" {
		t.Errorf("expected only the new item: %+v", resp.Items)
	}
}
