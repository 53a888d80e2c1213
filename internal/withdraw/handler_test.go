package withdraw

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/cyssxt/yunchaoplus-wallet/internal/logging"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	h := NewHandler(NewService(NewMemoryRepository(false)), logging.Discard())

	app := fiber.New()
	app.Post("/wallets/:walletId/withdraws", h.Create)
	app.Get("/wallets/:walletId/withdraws/:id", h.Get)
	app.Get("/wallets/:walletId/withdraws", h.List)
	app.Put("/wallets/:walletId/withdraws/:id", h.Update)
	return app
}

type envelope struct {
	Code    json.RawMessage `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return resp.StatusCode, env
}

func TestHandlerCreateAndUpdate(t *testing.T) {
	app := setupTestApp(t)

	status, env := doJSON(t, app, fiber.MethodPost, "/wallets/w1/withdraws",
		`{"settle":"ch1","amount":500,"description":"cash out"}`)
	if status != fiber.StatusOK {
		t.Fatalf("create status = %d", status)
	}
	if string(env.Code) != "0" || env.Message != "success" {
		t.Fatalf("create envelope = %s / %s", env.Code, env.Message)
	}

	var created Withdraw
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode withdraw: %v", err)
	}
	if created.Status != StatusCreated {
		t.Fatalf("status = %q, want created", created.Status)
	}

	status, env = doJSON(t, app, fiber.MethodPut, "/wallets/w1/withdraws/"+created.ID,
		`{"status":"pending"}`)
	if status != fiber.StatusOK {
		t.Fatalf("update status = %d", status)
	}
	var updated Withdraw
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatalf("decode withdraw: %v", err)
	}
	if updated.Status != StatusPending {
		t.Fatalf("status = %q, want pending", updated.Status)
	}

	status, env = doJSON(t, app, fiber.MethodPut, "/wallets/w1/withdraws/"+created.ID,
		`{"status":"succeeded"}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("succeeded target: status = %d, want 400", status)
	}
	if string(env.Code) != `"invalid_withdraw_update_status"` || env.Message != "failed" {
		t.Fatalf("failure envelope = %s / %s", env.Code, env.Message)
	}
}

func TestHandlerNotFound(t *testing.T) {
	app := setupTestApp(t)

	status, env := doJSON(t, app, fiber.MethodGet, "/wallets/w1/withdraws/missing", "")
	if status != fiber.StatusNotFound {
		t.Fatalf("get missing: status = %d, want 404", status)
	}
	if string(env.Code) != `"withdraw_not_found"` {
		t.Fatalf("code = %s", env.Code)
	}

	status, env = doJSON(t, app, fiber.MethodPut, "/wallets/w1/withdraws/missing",
		`{"status":"pending"}`)
	if status != fiber.StatusNotFound {
		t.Fatalf("update missing: status = %d, want 404", status)
	}
	if string(env.Code) != `"withdraw_not_found"` {
		t.Fatalf("code = %s", env.Code)
	}
}

func TestHandlerListPagingValidation(t *testing.T) {
	app := setupTestApp(t)

	status, env := doJSON(t, app, fiber.MethodGet, "/wallets/w1/withdraws?page=0&count=5", "")
	if status != fiber.StatusBadRequest {
		t.Fatalf("invalid paging: status = %d, want 400", status)
	}
	if string(env.Code) != `"invalid_paging_query"` {
		t.Fatalf("code = %s", env.Code)
	}

	status, env = doJSON(t, app, fiber.MethodGet, "/wallets/w1/withdraws", "")
	if status != fiber.StatusOK {
		t.Fatalf("default paging: status = %d", status)
	}
	if string(env.Data) != "[]" {
		t.Fatalf("empty list should render [], got %s", env.Data)
	}
}
