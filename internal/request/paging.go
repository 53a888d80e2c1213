// Package request parses shared query parameters from Fiber requests.
package request

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cyssxt/yunchaoplus-wallet/internal/record"
)

const (
	defaultPage  = 1
	defaultCount = 5
)

// ParsePageQuery extracts page, count and the optional begin_time/end_time
// window (integer epoch seconds) from the request query string. Absent
// page/count fall back to their defaults; malformed values are reported as
// invalid input without touching the store.
func ParsePageQuery(c *fiber.Ctx) (record.PageQuery, error) {
	q := record.PageQuery{Page: defaultPage, Count: defaultCount}

	var err error
	if v := c.Query("page"); v != "" {
		if q.Page, err = strconv.ParseInt(v, 10, 64); err != nil {
			return record.PageQuery{}, fmt.Errorf("%w: page must be an integer", record.ErrInvalidInput)
		}
	}
	if v := c.Query("count"); v != "" {
		if q.Count, err = strconv.ParseInt(v, 10, 64); err != nil {
			return record.PageQuery{}, fmt.Errorf("%w: count must be an integer", record.ErrInvalidInput)
		}
	}
	if q.Begin, err = parseEpoch(c.Query("begin_time"), "begin_time"); err != nil {
		return record.PageQuery{}, err
	}
	if q.End, err = parseEpoch(c.Query("end_time"), "end_time"); err != nil {
		return record.PageQuery{}, err
	}
	return q, nil
}

func parseEpoch(v, name string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	sec, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be epoch seconds", record.ErrInvalidInput, name)
	}
	t := time.Unix(sec, 0).UTC()
	return &t, nil
}
