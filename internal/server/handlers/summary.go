package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/expensekeeper/internal/server/storage"
	"github.com/iudanet/expensekeeper/pkg/api"
)

// SummaryHandler отдает итоги по доходам и расходам пользователя
type SummaryHandler struct {
	responder
	storage storage.TransactionStorage
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(logger *slog.Logger, s storage.TransactionStorage) *SummaryHandler {
	return &SummaryHandler{
		responder: responder{logger: logger},
		storage:   s,
	}
}

// Summary обрабатывает GET /summary
func (h *SummaryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	summary, err := h.storage.Summarize(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to summarize transactions",
			slog.Int64("user_id", userID), slog.Any("error", err))
		h.sendError(w, msgInternalError, http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, api.SummaryResponse{
		TotalIncome:  summary.TotalIncome,
		TotalExpense: summary.TotalExpense,
		Balance:      summary.Balance,
	}, http.StatusOK)
}
