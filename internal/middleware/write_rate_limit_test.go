package middleware

import (
	"net/http/httptest"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func setupRateLimitedApp(t *testing.T, maxPerMin int) (*fiber.App, func()) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	app := fiber.New()
	app.Post("/wallets/:walletId/withdraws", WriteRateLimit(cache, maxPerMin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	cleanup := func() {
		cache.Close()
		mr.Close()
	}
	return app, cleanup
}

func TestWriteRateLimitBlocksAfterMax(t *testing.T) {
	app, cleanup := setupRateLimitedApp(t, 2)
	defer cleanup()

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/wallets/w1/withdraws", nil))
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("request %d: status = %d", i+1, resp.StatusCode)
		}
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/wallets/w1/withdraws", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", resp.StatusCode)
	}
}

func TestWriteRateLimitIsPerWallet(t *testing.T) {
	app, cleanup := setupRateLimitedApp(t, 1)
	defer cleanup()

	if resp, _ := app.Test(httptest.NewRequest(fiber.MethodPost, "/wallets/w1/withdraws", nil)); resp.StatusCode != fiber.StatusOK {
		t.Fatalf("w1 first request: status = %d", resp.StatusCode)
	}
	if resp, _ := app.Test(httptest.NewRequest(fiber.MethodPost, "/wallets/w2/withdraws", nil)); resp.StatusCode != fiber.StatusOK {
		t.Fatalf("w2 should have its own budget, status = %d", resp.StatusCode)
	}
}

func TestWriteRateLimitWithoutRedisIsNoop(t *testing.T) {
	app := fiber.New()
	app.Post("/wallets/:walletId/withdraws", WriteRateLimit(nil, 1), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/wallets/w1/withdraws", nil))
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("request %d without redis: status = %d", i+1, resp.StatusCode)
		}
	}
}
