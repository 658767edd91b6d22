package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fieldworks/attendance-bot-go/internal/domain/ledger"
	"github.com/fieldworks/attendance-bot-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	ledgerService ledger.LedgerService
}

func NewAttendanceHandler(ledgerService ledger.LedgerService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		ledgerService: ledgerService,
	}
}

// CheckIn implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var checkInReq ledger.CheckInRequest

	if err := json.NewDecoder(r.Body).Decode(&checkInReq); err != nil {
		slog.Error("CheckIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	checkInResp, err := a.ledgerService.CheckIn(r.Context(), checkInReq)
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Check-in recorded",
		"worker", checkInResp.WorkerName,
		"total_work_days", checkInResp.TotalWorkDays,
		"level", checkInResp.Level,
	)
	response.Created(w, "출근이 기록되었습니다", checkInResp)
}

// CheckOut implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var checkOutReq ledger.CheckOutRequest

	if err := json.NewDecoder(r.Body).Decode(&checkOutReq); err != nil {
		slog.Error("CheckOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	checkOutResp, err := a.ledgerService.CheckOut(r.Context(), checkOutReq)
	if err != nil {
		slog.Error("CheckOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Check-out recorded",
		"worker", checkOutResp.WorkerName,
		"total_work_days", checkOutResp.TotalWorkDays,
		"leveled_up", checkOutResp.LeveledUp,
		"stage_crossed", checkOutResp.StageCrossed,
	)
	response.Created(w, "퇴근이 기록되었습니다", checkOutResp)
}
