package withdraw

import (
	"errors"
	"testing"

	"github.com/cyssxt/yunchaoplus-wallet/internal/record"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"created", "pending", "succeeded", "failed", "canceled"} {
		if _, err := ParseStatus(s); err != nil {
			t.Errorf("ParseStatus(%q): %v", s, err)
		}
	}

	for _, s := range []string{"", "done", "CANCELED", "cancelled"} {
		if _, err := ParseStatus(s); !errors.Is(err, record.ErrInvalidInput) {
			t.Errorf("ParseStatus(%q): err = %v, want ErrInvalidInput", s, err)
		}
	}
}

func TestTerminal(t *testing.T) {
	cases := map[Status]bool{
		StatusCreated:   false,
		StatusPending:   false,
		StatusSucceeded: true,
		StatusFailed:    true,
		StatusCanceled:  true,
	}
	for s, want := range cases {
		if got := s.Terminal(); got != want {
			t.Errorf("%s.Terminal() = %v, want %v", s, got, want)
		}
	}
}

func TestUpdatable(t *testing.T) {
	cases := map[Status]bool{
		StatusCreated:   false,
		StatusPending:   true,
		StatusSucceeded: false,
		StatusFailed:    false,
		StatusCanceled:  true,
	}
	for s, want := range cases {
		if got := s.Updatable(); got != want {
			t.Errorf("%s.Updatable() = %v, want %v", s, got, want)
		}
	}
}

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusCreated, StatusPending},
		{StatusCreated, StatusCanceled},
		{StatusPending, StatusSucceeded},
		{StatusPending, StatusFailed},
		{StatusPending, StatusCanceled},
	}
	for _, tr := range allowed {
		if !CanTransition(tr.from, tr.to) {
			t.Errorf("CanTransition(%s, %s) = false, want true", tr.from, tr.to)
		}
	}

	denied := []struct{ from, to Status }{
		{StatusCreated, StatusSucceeded},
		{StatusCreated, StatusFailed},
		{StatusCreated, StatusCreated},
		{StatusPending, StatusPending},
		{StatusPending, StatusCreated},
		{StatusSucceeded, StatusCanceled},
		{StatusFailed, StatusPending},
		{StatusCanceled, StatusPending},
	}
	for _, tr := range denied {
		if CanTransition(tr.from, tr.to) {
			t.Errorf("CanTransition(%s, %s) = true, want false", tr.from, tr.to)
		}
	}
}
