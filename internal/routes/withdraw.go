package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyssxt/yunchaoplus-wallet/internal/withdraw"
)

// RegisterWithdrawRoutes wires the wallet-scoped withdraw endpoints.
func RegisterWithdrawRoutes(r fiber.Router, h *withdraw.Handler, writeLimiter fiber.Handler) {
	r.Post("/wallets/:walletId/withdraws", writeLimiter, h.Create)
	r.Get("/wallets/:walletId/withdraws/:id", h.Get)
	r.Get("/wallets/:walletId/withdraws", h.List)
	r.Put("/wallets/:walletId/withdraws/:id", writeLimiter, h.Update)
}
