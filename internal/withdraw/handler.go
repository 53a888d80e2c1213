package withdraw

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/cyssxt/yunchaoplus-wallet/internal/record"
	"github.com/cyssxt/yunchaoplus-wallet/internal/request"
	"github.com/cyssxt/yunchaoplus-wallet/internal/response"
)

// Handler exposes withdraw HTTP endpoints.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler builds a withdraw HTTP handler.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type createRequest struct {
	Settle      string       `json:"settle"`
	Amount      int64        `json:"amount"`
	Description *string      `json:"description"`
	Extra       record.Extra `json:"extra"`
}

type updateRequest struct {
	Status string `json:"status"`
}

// Create opens a withdrawal request for the wallet from the path.
func (h *Handler) Create(c *fiber.Ctx) error {
	walletID := c.Params("walletId")

	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, record.ErrInvalidInput, "invalid_withdraw_create")
	}

	w, err := h.service.Create(c.UserContext(), CreateInput{
		WalletID:    walletID,
		Settle:      req.Settle,
		Amount:      req.Amount,
		Description: req.Description,
		Extra:       req.Extra,
	})
	if err != nil {
		if errors.Is(err, record.ErrInvalidInput) {
			return response.Fail(c, err, "invalid_withdraw_create")
		}
		h.logger.Error("create withdraw", "wallet_id", walletID, "error", err)
		return response.Fail(c, err, "withdraw_create_fail")
	}
	return response.OK(c, w)
}

// Get fetches one withdrawal scoped to the wallet.
func (h *Handler) Get(c *fiber.Ctx) error {
	walletID, id := c.Params("walletId"), c.Params("id")

	w, err := h.service.Get(c.UserContext(), walletID, id)
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return response.Fail(c, err, "withdraw_not_found")
		}
		h.logger.Error("get withdraw", "wallet_id", walletID, "id", id, "error", err)
		return response.Fail(c, err, "withdraw_get_fail")
	}
	return response.OK(c, w)
}

// List returns one page of the wallet's withdrawals.
func (h *Handler) List(c *fiber.Ctx) error {
	walletID := c.Params("walletId")

	q, err := request.ParsePageQuery(c)
	if err != nil {
		return response.Fail(c, err, "invalid_paging_query")
	}

	ws, err := h.service.List(c.UserContext(), walletID, q)
	if err != nil {
		if errors.Is(err, record.ErrInvalidInput) {
			return response.Fail(c, err, "invalid_paging_query")
		}
		h.logger.Error("list withdraws", "wallet_id", walletID, "error", err)
		return response.Fail(c, err, "withdraw_list_fail")
	}
	return response.OK(c, ws)
}

// Update moves a withdrawal to the requested status.
func (h *Handler) Update(c *fiber.Ctx) error {
	walletID, id := c.Params("walletId"), c.Params("id")

	var req updateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, record.ErrInvalidInput, "invalid_withdraw_update_status")
	}

	w, err := h.service.SetStatus(c.UserContext(), walletID, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, record.ErrInvalidInput):
			return response.Fail(c, err, "invalid_withdraw_update_status")
		case errors.Is(err, record.ErrNotFound):
			return response.Fail(c, err, "withdraw_not_found")
		}
		h.logger.Error("update withdraw status", "wallet_id", walletID, "id", id, "status", req.Status, "error", err)
		return response.Fail(c, err, "update_withdraw_failed")
	}
	return response.OK(c, w)
}
