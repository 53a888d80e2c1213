package request

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/cyssxt/yunchaoplus-wallet/internal/record"
)

func parse(t *testing.T, target string) (record.PageQuery, error) {
	t.Helper()
	var q record.PageQuery
	var parseErr error

	app := fiber.New()
	app.Get("/records", func(c *fiber.Ctx) error {
		q, parseErr = ParsePageQuery(c)
		return c.SendStatus(fiber.StatusOK)
	})

	if _, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil)); err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return q, parseErr
}

func TestParsePageQueryDefaults(t *testing.T) {
	q, err := parse(t, "/records")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if q.Page != 1 || q.Count != 5 {
		t.Fatalf("defaults = page %d count %d, want 1/5", q.Page, q.Count)
	}
	if q.Begin != nil || q.End != nil {
		t.Fatal("time window should be absent by default")
	}
}

func TestParsePageQueryFull(t *testing.T) {
	q, err := parse(t, "/records?page=3&count=20&begin_time=1000&end_time=2000")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if q.Page != 3 || q.Count != 20 {
		t.Fatalf("page %d count %d, want 3/20", q.Page, q.Count)
	}
	if q.Begin == nil || q.Begin.Unix() != 1000 {
		t.Fatalf("begin = %v", q.Begin)
	}
	if q.End == nil || q.End.Unix() != 2000 {
		t.Fatalf("end = %v", q.End)
	}
}

func TestParsePageQueryMalformed(t *testing.T) {
	for _, target := range []string{
		"/records?page=abc",
		"/records?count=abc",
		"/records?begin_time=yesterday",
		"/records?end_time=2.5",
	} {
		if _, err := parse(t, target); !errors.Is(err, record.ErrInvalidInput) {
			t.Errorf("%s: err = %v, want ErrInvalidInput", target, err)
		}
	}
}
