package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyssxt/yunchaoplus-wallet/internal/recharge"
)

// RegisterRechargeRoutes wires the wallet-scoped recharge endpoints.
func RegisterRechargeRoutes(r fiber.Router, h *recharge.Handler, writeLimiter fiber.Handler) {
	r.Post("/wallets/:walletId/recharges", writeLimiter, h.Create)
	r.Get("/wallets/:walletId/recharges/:id", h.Get)
	r.Get("/wallets/:walletId/recharges", h.List)
}
