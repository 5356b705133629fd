package handler

import (
	"net/http"

	"github.com/DanielPopoola/cxtrauma-orders/internal/core/domain"
)

type CartResponse struct {
	ID           string        `json:"id"`
	Items        []domain.Exam `json:"items"`
	Total        int64         `json:"total" example:"37000"`
	TotalDisplay string        `json:"total_display" example:"$37.000"`
	Count        int           `json:"count" example:"2"`
}

type AddItemRequest struct {
	ExamID string `json:"exam_id" validate:"required" example:"rx-rodilla"`
}

type CheckoutResponse struct {
	Order        *domain.ExamOrder `json:"order"`
	TotalDisplay string            `json:"total_display" example:"$37.000"`
}

func newCartResponse(id string, snap domain.CartSnapshot) CartResponse {
	items := snap.Items
	if items == nil {
		items = []domain.Exam{}
	}
	return CartResponse{
		ID:           id,
		Items:        items,
		Total:        snap.Total,
		TotalDisplay: snap.TotalDisplay(),
		Count:        snap.Count,
	}
}

// HandleCreateCart starts a cart session
// @Summary      Create cart
// @Tags         carts
// @Produce      json
// @Success      201  {object}  APIResponse
// @Router       /carts [post]
func (h *OrderHandler) HandleCreateCart(w http.ResponseWriter, r *http.Request) {
	id, snap, err := h.carts.NewSession(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, newCartResponse(id, snap))
}

// HandleGetCart returns the current cart
// @Summary      Get cart
// @Tags         carts
// @Produce      json
// @Param        id   path      string  true  "Cart session ID"
// @Success      200  {object}  APIResponse
// @Failure      404  {object}  APIResponse
// @Router       /carts/{id} [get]
func (h *OrderHandler) HandleGetCart(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	snap, err := h.carts.Snapshot(r.Context(), id)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newCartResponse(id, snap))
}

// HandleAddItem adds a catalog exam to the cart
// @Summary      Add exam
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        id       path      string          true  "Cart session ID"
// @Param        request  body      AddItemRequest  true  "Exam to add"
// @Success      200      {object}  APIResponse
// @Failure      400      {object}  APIResponse  "Unknown exam"
// @Failure      404      {object}  APIResponse
// @Router       /carts/{id}/items [post]
func (h *OrderHandler) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}

	id := r.PathValue("id")
	snap, err := h.carts.AddExam(r.Context(), id, req.ExamID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newCartResponse(id, snap))
}

// HandleRemoveItem removes one exam from the cart
// @Summary      Remove exam
// @Tags         carts
// @Produce      json
// @Param        id      path      string  true  "Cart session ID"
// @Param        examID  path      string  true  "Exam ID"
// @Success      200     {object}  APIResponse
// @Failure      404     {object}  APIResponse
// @Router       /carts/{id}/items/{examID} [delete]
func (h *OrderHandler) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	snap, err := h.carts.RemoveExam(r.Context(), id, r.PathValue("examID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newCartResponse(id, snap))
}

// HandleClearCart empties the cart
// @Summary      Clear cart
// @Tags         carts
// @Produce      json
// @Param        id   path      string  true  "Cart session ID"
// @Success      200  {object}  APIResponse
// @Failure      404  {object}  APIResponse
// @Router       /carts/{id}/items [delete]
func (h *OrderHandler) HandleClearCart(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	snap, err := h.carts.Clear(r.Context(), id)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newCartResponse(id, snap))
}

// HandleCheckout turns the cart into a pending exam order
// @Summary      Checkout cart
// @Tags         carts
// @Produce      json
// @Param        id   path      string  true  "Cart session ID"
// @Success      201  {object}  APIResponse
// @Failure      404  {object}  APIResponse
// @Failure      409  {object}  APIResponse  "Cart is empty"
// @Router       /carts/{id}/checkout [post]
func (h *OrderHandler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	order, err := h.carts.Checkout(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, CheckoutResponse{
		Order:        order,
		TotalDisplay: domain.FormatPrice(order.Total),
	})
}
