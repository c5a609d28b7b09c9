package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/expensekeeper/internal/models"
	"github.com/iudanet/expensekeeper/internal/server/events"
	"github.com/iudanet/expensekeeper/internal/server/storage"
	"github.com/iudanet/expensekeeper/internal/validation"
	"github.com/iudanet/expensekeeper/pkg/api"
)

// TransactionHandler обрабатывает CRUD запросы транзакций
// Все методы требуют аутентифицированного пользователя в контексте
type TransactionHandler struct {
	responder
	storage   storage.TransactionStorage
	publisher events.Publisher
}

// NewTransactionHandler creates a new transaction handler
// publisher may be nil, then events are not sent
func NewTransactionHandler(logger *slog.Logger, s storage.TransactionStorage, publisher events.Publisher) *TransactionHandler {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &TransactionHandler{
		responder: responder{logger: logger},
		storage:   s,
		publisher: publisher,
	}
}

// Create обрабатывает POST /transactions
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req api.CreateTransactionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode transaction", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	txType := models.TransactionType(req.Type)
	if err := validation.ValidateTransactionType(txType); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx := &models.Transaction{
		Type:        txType,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
		UserID:      userID,
	}

	id, err := h.storage.CreateTransaction(ctx, tx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create transaction",
			slog.Int64("user_id", userID), slog.Any("error", err))
		h.sendError(w, msgInternalError, http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "transaction created",
		slog.Int64("user_id", userID), slog.Int64("transaction_id", id))
	h.publish(ctx, events.ActionCreated, userID, id)

	h.sendJSON(w, api.CreateTransactionResponse{
		Message: "Transaction added successfully!",
		ID:      id,
	}, http.StatusCreated)
}

// List обрабатывает GET /transactions
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	txs, err := h.storage.ListTransactions(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list transactions",
			slog.Int64("user_id", userID), slog.Any("error", err))
		h.sendError(w, msgInternalError, http.StatusInternalServerError)
		return
	}

	resp := api.TransactionListResponse{
		Transactions: make([]api.Transaction, 0, len(txs)),
	}
	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, toAPITransaction(tx))
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// Get обрабатывает GET /transactions/{id}
// Чужая транзакция неотличима от несуществующей
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	id, err := validation.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.storage.GetTransaction(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrTransactionNotFound) {
			h.sendError(w, "Transaction not found!", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get transaction",
			slog.Int64("transaction_id", id), slog.Any("error", err))
		h.sendError(w, msgInternalError, http.StatusInternalServerError)
		return
	}

	if tx.UserID != userID {
		h.logger.WarnContext(ctx, "transaction belongs to another user",
			slog.Int64("user_id", userID), slog.Int64("transaction_id", id))
		h.sendError(w, "Transaction not found!", http.StatusNotFound)
		return
	}

	h.sendJSON(w, toAPITransaction(tx), http.StatusOK)
}

// Update обрабатывает PUT /transactions/{id}
// Обновляются только переданные поля
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	id, err := validation.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req api.UpdateTransactionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode transaction update", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	update := toModelUpdate(req)
	if err := validation.ValidateUpdate(update); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.storage.UpdateTransaction(ctx, userID, id, update); err != nil {
		if errors.Is(err, storage.ErrNotFoundOrForbidden) {
			h.sendError(w, "Transaction not found or no changes", http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update transaction",
			slog.Int64("transaction_id", id), slog.Any("error", err))
		h.sendError(w, msgInternalError, http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "transaction updated",
		slog.Int64("user_id", userID), slog.Int64("transaction_id", id))
	h.publish(ctx, events.ActionUpdated, userID, id)

	h.sendMessage(w, "Transaction updated successfully!", http.StatusOK)
}

// Delete обрабатывает DELETE /transactions/{id}
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	id, err := validation.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.storage.DeleteTransaction(ctx, userID, id); err != nil {
		if errors.Is(err, storage.ErrNotFoundOrForbidden) {
			h.sendError(w, "Transaction not found", http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete transaction",
			slog.Int64("transaction_id", id), slog.Any("error", err))
		h.sendError(w, msgInternalError, http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "transaction deleted",
		slog.Int64("user_id", userID), slog.Int64("transaction_id", id))
	h.publish(ctx, events.ActionDeleted, userID, id)

	h.sendMessage(w, "Transaction deleted successfully!", http.StatusOK)
}

// publish отправляет событие; ошибка доставки только логируется
func (h *TransactionHandler) publish(ctx context.Context, action events.Action, userID, txID int64) {
	if err := h.publisher.Publish(ctx, events.NewEvent(action, userID, txID)); err != nil {
		h.logger.WarnContext(ctx, "failed to publish transaction event",
			slog.String("action", string(action)),
			slog.Int64("transaction_id", txID),
			slog.Any("error", err))
	}
}

func toAPITransaction(tx *models.Transaction) api.Transaction {
	return api.Transaction{
		ID:          tx.ID,
		Type:        string(tx.Type),
		CategoryID:  tx.CategoryID,
		Amount:      tx.Amount,
		Date:        tx.Date,
		Description: tx.Description,
		UserID:      tx.UserID,
	}
}

func toModelUpdate(req api.UpdateTransactionRequest) models.TransactionUpdate {
	update := models.TransactionUpdate{
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
	}
	if req.Type != nil {
		t := models.TransactionType(*req.Type)
		update.Type = &t
	}
	return update
}
