package recharge

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/cyssxt/yunchaoplus-wallet/internal/record"
	"github.com/cyssxt/yunchaoplus-wallet/internal/request"
	"github.com/cyssxt/yunchaoplus-wallet/internal/response"
)

// Handler exposes recharge HTTP endpoints.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler builds a recharge HTTP handler.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type createRequest struct {
	RechargeAmount int64        `json:"recharge_amount"`
	Settle         string       `json:"settle"`
	Description    *string      `json:"description"`
	Extra          record.Extra `json:"extra"`
}

// Create records a deposit into the wallet from the path.
func (h *Handler) Create(c *fiber.Ctx) error {
	walletID := c.Params("walletId")

	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, record.ErrInvalidInput, "invalid_recharge_create")
	}

	rec, err := h.service.Create(c.UserContext(), CreateInput{
		WalletID:       walletID,
		RechargeAmount: req.RechargeAmount,
		Settle:         req.Settle,
		Description:    req.Description,
		Extra:          req.Extra,
	})
	if err != nil {
		if errors.Is(err, record.ErrInvalidInput) {
			return response.Fail(c, err, "invalid_recharge_create")
		}
		h.logger.Error("create recharge", "wallet_id", walletID, "error", err)
		return response.Fail(c, err, "recharge_create_fail")
	}
	return response.OK(c, rec)
}

// Get fetches one recharge scoped to the wallet.
func (h *Handler) Get(c *fiber.Ctx) error {
	walletID, id := c.Params("walletId"), c.Params("id")

	rec, err := h.service.Get(c.UserContext(), walletID, id)
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return response.Fail(c, err, "recharge_not_found")
		}
		h.logger.Error("get recharge", "wallet_id", walletID, "id", id, "error", err)
		return response.Fail(c, err, "recharge_get_fail")
	}
	return response.OK(c, rec)
}

// List returns one page of the wallet's recharges.
func (h *Handler) List(c *fiber.Ctx) error {
	walletID := c.Params("walletId")

	q, err := request.ParsePageQuery(c)
	if err != nil {
		return response.Fail(c, err, "invalid_paging_query")
	}

	recs, err := h.service.List(c.UserContext(), walletID, q)
	if err != nil {
		if errors.Is(err, record.ErrInvalidInput) {
			return response.Fail(c, err, "invalid_paging_query")
		}
		h.logger.Error("list recharges", "wallet_id", walletID, "error", err)
		return response.Fail(c, err, "recharge_list_fail")
	}
	return response.OK(c, recs)
}
