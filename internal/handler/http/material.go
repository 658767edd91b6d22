package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fieldworks/attendance-bot-go/internal/domain/material"
	"github.com/fieldworks/attendance-bot-go/internal/handler/http/response"
)

type MaterialHandler interface {
	RecordUsage(w http.ResponseWriter, r *http.Request)
	RecordOrder(w http.ResponseWriter, r *http.Request)
	ListPendingOrders(w http.ResponseWriter, r *http.Request)
	CompleteOrders(w http.ResponseWriter, r *http.Request)
}

type MaterialHandlerImpl struct {
	materialService material.MaterialService
}

func NewMaterialHandler(materialService material.MaterialService) MaterialHandler {
	return &MaterialHandlerImpl{
		materialService: materialService,
	}
}

// RecordUsage implements MaterialHandler.
func (m *MaterialHandlerImpl) RecordUsage(w http.ResponseWriter, r *http.Request) {
	var usageReq material.RecordUsageRequest

	if err := json.NewDecoder(r.Body).Decode(&usageReq); err != nil {
		slog.Error("RecordUsage decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := m.materialService.RecordUsage(r.Context(), usageReq); err != nil {
		slog.Error("RecordUsage service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "자재 사용량이 저장되었습니다", nil)
}

// RecordOrder implements MaterialHandler.
func (m *MaterialHandlerImpl) RecordOrder(w http.ResponseWriter, r *http.Request) {
	var orderReq material.RecordOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&orderReq); err != nil {
		slog.Error("RecordOrder decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := m.materialService.RecordOrder(r.Context(), orderReq); err != nil {
		slog.Error("RecordOrder service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "발주 내용이 저장되었습니다", nil)
}

// ListPendingOrders implements MaterialHandler.
func (m *MaterialHandlerImpl) ListPendingOrders(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")

	orders, err := m.materialService.PendingOrders(r.Context(), period)
	if err != nil {
		slog.Error("ListPendingOrders service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, orders)
}

// CompleteOrders implements MaterialHandler.
func (m *MaterialHandlerImpl) CompleteOrders(w http.ResponseWriter, r *http.Request) {
	var completeReq material.CompleteOrdersRequest

	if err := json.NewDecoder(r.Body).Decode(&completeReq); err != nil {
		slog.Error("CompleteOrders decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	count, err := m.materialService.CompleteOrders(r.Context(), completeReq)
	if err != nil {
		slog.Error("CompleteOrders service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "발주 완료 처리되었습니다", map[string]int{"completed": count})
}
