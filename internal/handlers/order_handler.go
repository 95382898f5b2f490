package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bloomshine/storefront/internal/models"
	"github.com/bloomshine/storefront/internal/service"
)

// OrderHandler handles order submissions
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// PlaceOrder handles POST /orders
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	orderID, err := h.orderService.PlaceOrder(r.Context(), req)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			h.log.Warn("order rejected", "fields", verr.Fields)
			WriteError(w, http.StatusBadRequest, verr.Error(), h.log)
			return
		}

		// Mail relay and unexpected failures all surface as a generic
		// server error; details stay in the logs.
		h.log.Error("failed to process order", "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to process order", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, models.OrderResponse{Success: true, OrderID: orderID}, h.log)
	h.log.Info("order accepted", "order_id", orderID)
}
