package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func setupCooldownApp(t *testing.T, cache *redis.Client) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Post("/accounts/:id/beg", Cooldown(cache, "beg", time.Hour), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func TestCooldownBlocksSecondInvocation(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer cache.Close()

	app := setupCooldownApp(t, cache)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/accounts/alice/beg", nil))
	if err != nil {
		t.Fatalf("first request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected first invocation to pass, got %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest(fiber.MethodPost, "/accounts/alice/beg", nil))
	if err != nil {
		t.Fatalf("second request: %v", err)
	}
	if resp.StatusCode != fiber.StatusTooManyRequests {
		t.Fatalf("expected %d on cooldown, got %d", fiber.StatusTooManyRequests, resp.StatusCode)
	}
	if resp.Header.Get(fiber.HeaderRetryAfter) == "" {
		t.Fatalf("expected Retry-After header on cooldown response")
	}

	// Another account has its own bucket.
	resp, err = app.Test(httptest.NewRequest(fiber.MethodPost, "/accounts/bob/beg", nil))
	if err != nil {
		t.Fatalf("bob request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected bob to pass, got %d", resp.StatusCode)
	}
}

func TestCooldownExpires(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer cache.Close()

	app := setupCooldownApp(t, cache)

	if _, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/accounts/alice/beg", nil)); err != nil {
		t.Fatalf("first request: %v", err)
	}

	mr.FastForward(2 * time.Hour)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/accounts/alice/beg", nil))
	if err != nil {
		t.Fatalf("post-expiry request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected invocation after expiry to pass, got %d", resp.StatusCode)
	}
}

func TestCooldownWithoutCacheIsNoOp(t *testing.T) {
	app := setupCooldownApp(t, nil)

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/accounts/alice/beg", nil))
		if err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("expected pass without cache, got %d", resp.StatusCode)
		}
	}
}
