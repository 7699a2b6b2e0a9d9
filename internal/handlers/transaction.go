package handlers

import (
	"walletdesk/internal/middleware"
	"walletdesk/internal/models"
	"walletdesk/internal/services/auth"
	"walletdesk/internal/services/transaction"
	"walletdesk/internal/services/wallet"
	"walletdesk/internal/utils"
	"walletdesk/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type TransactionHandler struct {
	transactionService transaction.Service
	walletService      wallet.Service
}

func NewTransactionHandler(transactionService transaction.Service, walletService wallet.Service) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		walletService:      walletService,
	}
}

type createTransactionRequest struct {
	WalletID          uint   `json:"wallet_id" validate:"required"`
	Amount            string `json:"amount" validate:"required,money"`
	OppositePartyType string `json:"opposite_party_type" validate:"required,opposite_party_type"`
	OppositeParty     string `json:"opposite_party" validate:"required"`
}

// CreateDeposit records a PENDING deposit request. Any authenticated caller;
// customers may only target their own wallets.
func (h *TransactionHandler) CreateDeposit(c *fiber.Ctx) error {
	return h.create(c, models.TransactionTypeDeposit)
}

// CreateWithdraw records a PENDING withdrawal request with an advisory
// balance check.
func (h *TransactionHandler) CreateWithdraw(c *fiber.Ctx) error {
	return h.create(c, models.TransactionTypeWithdraw)
}

func (h *TransactionHandler) create(c *fiber.Ctx, txType models.TransactionType) error {
	identity := middleware.CallerIdentity(c)
	if err := auth.CanCreateTransaction(identity); err != nil {
		return utils.DomainError(c, err)
	}

	var req createTransactionRequest
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

	// Customers may only move money on their own wallets.
	if identity.IsCustomer() {
		w, err := h.walletService.GetByID(c.Context(), req.WalletID)
		if err != nil {
			return utils.DomainError(c, err)
		}
		if err := auth.CanViewCustomerScope(identity, w.CustomerID); err != nil {
			return utils.DomainError(c, err)
		}
	}

	var created *models.Transaction
	switch txType {
	case models.TransactionTypeDeposit:
		created, err = h.transactionService.CreateDeposit(c.Context(),
			req.WalletID, amount, models.OppositePartyType(req.OppositePartyType), req.OppositeParty)
	default:
		created, err = h.transactionService.CreateWithdraw(c.Context(),
			req.WalletID, amount, models.OppositePartyType(req.OppositePartyType), req.OppositeParty)
	}
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Created(c, created)
}

// Approve flips a PENDING transaction to APPROVED and moves the balance.
// Staff only.
func (h *TransactionHandler) Approve(c *fiber.Ctx) error {
	if err := auth.CanReviewTransactions(middleware.CallerIdentity(c)); err != nil {
		return utils.DomainError(c, err)
	}

	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid transaction id")
	}

	approved, err := h.transactionService.Approve(c.Context(), id)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, approved)
}

// Deny flips a PENDING transaction to DENIED. Staff only; no balance effect.
func (h *TransactionHandler) Deny(c *fiber.Ctx) error {
	if err := auth.CanReviewTransactions(middleware.CallerIdentity(c)); err != nil {
		return utils.DomainError(c, err)
	}

	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid transaction id")
	}

	denied, err := h.transactionService.Deny(c.Context(), id)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, denied)
}

// Get returns one transaction. Customers see only transactions on their own
// wallets.
func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid transaction id")
	}

	found, err := h.transactionService.GetByID(c.Context(), id)
	if err != nil {
		return utils.DomainError(c, err)
	}

	w, err := h.walletService.GetByID(c.Context(), found.WalletID)
	if err != nil {
		return utils.DomainError(c, err)
	}
	if err := auth.CanViewCustomerScope(middleware.CallerIdentity(c), w.CustomerID); err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, found)
}

// ListByWallet returns a wallet's transactions, optionally filtered by
// ?status= or ?type=. Customers may list only their own wallets.
func (h *TransactionHandler) ListByWallet(c *fiber.Ctx) error {
	walletID, err := utils.ParseUintParam(c, "walletId")
	if err != nil {
		return utils.BadRequest(c, "invalid wallet id")
	}

	w, err := h.walletService.GetByID(c.Context(), walletID)
	if err != nil {
		return utils.DomainError(c, err)
	}
	if err := auth.CanViewCustomerScope(middleware.CallerIdentity(c), w.CustomerID); err != nil {
		return utils.DomainError(c, err)
	}

	if status := c.Query("status"); status != "" {
		txns, err := h.transactionService.ListByWalletAndStatus(c.Context(), walletID, models.TransactionStatus(status))
		if err != nil {
			return utils.DomainError(c, err)
		}
		return utils.Success(c, fiber.Map{"transactions": txns})
	}

	if txType := c.Query("type"); txType != "" {
		t := models.TransactionType(txType)
		if !t.Valid() {
			return utils.BadRequest(c, "invalid transaction type")
		}
		txns, err := h.transactionService.ListByWalletAndType(c.Context(), walletID, t)
		if err != nil {
			return utils.DomainError(c, err)
		}
		return utils.Success(c, fiber.Map{"transactions": txns})
	}

	txns, err := h.transactionService.ListByWallet(c.Context(), walletID)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"transactions": txns})
}

// ListByCustomer returns every transaction across a customer's wallets.
// Customers may list only their own.
func (h *TransactionHandler) ListByCustomer(c *fiber.Ctx) error {
	customerID, err := utils.ParseUintParam(c, "customerId")
	if err != nil {
		return utils.BadRequest(c, "invalid customer id")
	}
	if err := auth.CanViewCustomerScope(middleware.CallerIdentity(c), customerID); err != nil {
		return utils.DomainError(c, err)
	}

	txns, err := h.transactionService.ListByCustomer(c.Context(), customerID)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"transactions": txns})
}

// List runs the back-office transaction queries: all transactions, or
// filtered by ?status= or ?type=. Staff only.
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	if err := auth.CanViewAll(middleware.CallerIdentity(c)); err != nil {
		return utils.DomainError(c, err)
	}

	if status := c.Query("status"); status != "" {
		txns, err := h.transactionService.ListByStatus(c.Context(), models.TransactionStatus(status))
		if err != nil {
			return utils.DomainError(c, err)
		}
		return utils.Success(c, fiber.Map{"transactions": txns})
	}

	if txType := c.Query("type"); txType != "" {
		t := models.TransactionType(txType)
		if !t.Valid() {
			return utils.BadRequest(c, "invalid transaction type")
		}
		txns, err := h.transactionService.ListByType(c.Context(), t)
		if err != nil {
			return utils.DomainError(c, err)
		}
		return utils.Success(c, fiber.Map{"transactions": txns})
	}

	txns, err := h.transactionService.ListAll(c.Context())
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"transactions": txns})
}

// ListPending is the review queue: every PENDING transaction. Staff only.
func (h *TransactionHandler) ListPending(c *fiber.Ctx) error {
	if err := auth.CanViewAll(middleware.CallerIdentity(c)); err != nil {
		return utils.DomainError(c, err)
	}

	txns, err := h.transactionService.ListPending(c.Context())
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"transactions": txns})
}
