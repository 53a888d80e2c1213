// Package response implements the service's JSON envelope: every success
// is wrapped as {code: 0, message: "success", data: ...} and every failure
// as {code: "<tag>", message: "failed"}.
package response

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cyssxt/yunchaoplus-wallet/internal/record"
)

type successBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type failureBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OK writes the success envelope around data.
func OK(c *fiber.Ctx, data any) error {
	return c.JSON(successBody{Code: 0, Message: "success", Data: data})
}

// Fail writes the failure envelope with the given error tag, deriving the
// HTTP status from the core error kind: 400 for validation, 404 for
// not-found, 500 for storage-class failures.
func Fail(c *fiber.Ctx, err error, tag string) error {
	return c.Status(statusOf(err)).JSON(failureBody{Code: tag, Message: "failed"})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, record.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, record.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
