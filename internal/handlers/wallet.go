package handlers

import (
	"context"

	"walletdesk/internal/middleware"
	"walletdesk/internal/models"
	"walletdesk/internal/services/auth"
	"walletdesk/internal/services/ledger"
	"walletdesk/internal/services/wallet"
	"walletdesk/internal/utils"
	"walletdesk/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type WalletHandler struct {
	walletService wallet.Service
	ledgerService ledger.Service
}

func NewWalletHandler(walletService wallet.Service, ledgerService ledger.Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		ledgerService: ledgerService,
	}
}

type createWalletRequest struct {
	CustomerID uint   `json:"customer_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Currency   string `json:"currency" validate:"required,currency"`
}

type walletStatusRequest struct {
	ActiveForShopping bool `json:"active_for_shopping"`
	ActiveForWithdraw bool `json:"active_for_withdraw"`
}

type balanceRequest struct {
	Amount string `json:"amount" validate:"required,money"`
}

// Create opens a wallet. Customers open wallets for themselves; staff for
// anyone. The balance always starts at zero.
func (h *WalletHandler) Create(c *fiber.Ctx) error {
	var req createWalletRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}
	if err := validation.ValidateStruct(req); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	if err := auth.CanCreateWalletFor(middleware.CallerIdentity(c), req.CustomerID); err != nil {
		return utils.DomainError(c, err)
	}

	created, err := h.walletService.Create(c.Context(), req.CustomerID, req.Name, models.Currency(req.Currency))
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Created(c, created)
}

// Get returns one wallet. Customers see only their own.
func (h *WalletHandler) Get(c *fiber.Ctx) error {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid wallet id")
	}

	found, err := h.walletService.GetByID(c.Context(), id)
	if err != nil {
		return utils.DomainError(c, err)
	}
	if err := auth.CanViewCustomerScope(middleware.CallerIdentity(c), found.CustomerID); err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, found)
}

// ListByCustomer returns a customer's wallets, optionally filtered by
// ?currency=. Customers may list only their own.
func (h *WalletHandler) ListByCustomer(c *fiber.Ctx) error {
	customerID, err := utils.ParseUintParam(c, "customerId")
	if err != nil {
		return utils.BadRequest(c, "invalid customer id")
	}
	if err := auth.CanViewCustomerScope(middleware.CallerIdentity(c), customerID); err != nil {
		return utils.DomainError(c, err)
	}

	if cur := c.Query("currency"); cur != "" {
		currency := models.Currency(cur)
		if !currency.Valid() {
			return utils.BadRequest(c, "unsupported currency")
		}
		wallets, err := h.walletService.ListByCustomerAndCurrency(c.Context(), customerID, currency)
		if err != nil {
			return utils.DomainError(c, err)
		}
		return utils.Success(c, fiber.Map{"wallets": wallets})
	}

	wallets, err := h.walletService.ListByCustomer(c.Context(), customerID)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"wallets": wallets})
}

// List runs the back-office wallet queries: all wallets, or filtered by
// ?currency=, ?active_for_shopping= or ?active_for_withdraw=. Staff only.
func (h *WalletHandler) List(c *fiber.Ctx) error {
	if err := auth.CanViewAll(middleware.CallerIdentity(c)); err != nil {
		return utils.DomainError(c, err)
	}

	if cur := c.Query("currency"); cur != "" {
		currency := models.Currency(cur)
		if !currency.Valid() {
			return utils.BadRequest(c, "unsupported currency")
		}
		wallets, err := h.walletService.ListByCurrency(c.Context(), currency)
		if err != nil {
			return utils.DomainError(c, err)
		}
		return utils.Success(c, fiber.Map{"wallets": wallets})
	}

	if v := c.Query("active_for_shopping"); v != "" {
		wallets, err := h.walletService.ListByActiveForShopping(c.Context(), v == "true")
		if err != nil {
			return utils.DomainError(c, err)
		}
		return utils.Success(c, fiber.Map{"wallets": wallets})
	}

	if v := c.Query("active_for_withdraw"); v != "" {
		wallets, err := h.walletService.ListByActiveForWithdraw(c.Context(), v == "true")
		if err != nil {
			return utils.DomainError(c, err)
		}
		return utils.Success(c, fiber.Map{"wallets": wallets})
	}

	wallets, err := h.walletService.ListAll(c.Context())
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"wallets": wallets})
}

// UpdateStatus flips the activity flags. Staff only.
func (h *WalletHandler) UpdateStatus(c *fiber.Ctx) error {
	if err := auth.CanAdministerWallet(middleware.CallerIdentity(c)); err != nil {
		return utils.DomainError(c, err)
	}

	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid wallet id")
	}

	var req walletStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	updated, err := h.walletService.UpdateStatus(c.Context(), id, req.ActiveForShopping, req.ActiveForWithdraw)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, updated)
}

// Delete removes a wallet. Staff only.
func (h *WalletHandler) Delete(c *fiber.Ctx) error {
	if err := auth.CanAdministerWallet(middleware.CallerIdentity(c)); err != nil {
		return utils.DomainError(c, err)
	}

	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid wallet id")
	}

	if err := h.walletService.Delete(c.Context(), id); err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"message": "wallet deleted"})
}

// SetBalance overwrites a wallet balance. Staff only; administrative
// override, so zero is a legal target where credit and debit reject it.
func (h *WalletHandler) SetBalance(c *fiber.Ctx) error {
	if err := auth.CanMutateBalance(middleware.CallerIdentity(c)); err != nil {
		return utils.DomainError(c, err)
	}

	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid wallet id")
	}

	var req balanceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return utils.BadRequest(c, "invalid amount")
	}

	updated, err := h.ledgerService.SetBalance(c.Context(), id, amount)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, updated)
}

// Credit adds to a wallet balance. Staff only.
func (h *WalletHandler) Credit(c *fiber.Ctx) error {
	return h.mutateBalance(c, h.ledgerService.Credit)
}

// Debit subtracts from a wallet balance. Staff only.
func (h *WalletHandler) Debit(c *fiber.Ctx) error {
	return h.mutateBalance(c, h.ledgerService.Debit)
}

func (h *WalletHandler) mutateBalance(
	c *fiber.Ctx,
	op func(ctx context.Context, walletID uint, amount decimal.Decimal) (*models.Wallet, error),
) error {
	if err := auth.CanMutateBalance(middleware.CallerIdentity(c)); err != nil {
		return utils.DomainError(c, err)
	}

	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid wallet id")
	}

	var req balanceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}
	if err := validation.ValidateStruct(req); err != nil {
		return utils.BadRequest(c, err.Error())
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return utils.BadRequest(c, "invalid amount")
	}

	updated, err := op(c.Context(), id, amount)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, updated)
}
