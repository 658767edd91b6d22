package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/fieldworks/attendance-bot-go/internal/domain/payroll"
	"github.com/fieldworks/attendance-bot-go/internal/handler/http/response"
	"github.com/fieldworks/attendance-bot-go/internal/pkg/payslip"
	"github.com/fieldworks/attendance-bot-go/internal/pkg/validator"
)

type PayrollHandler interface {
	RunSettlement(w http.ResponseWriter, r *http.Request)
	GetWorkerPayroll(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
	loc            *time.Location
}

// settlementSummary carries the batch preview totals shown to the operator.
type settlementSummary struct {
	Workers       int             `json:"workers"`
	TotalWorkDays int             `json:"total_work_days"`
	TotalPay      decimal.Decimal `json:"total_pay"`
	Failures      int             `json:"failures"`
}

type settlementResponse struct {
	payroll.BatchResult
	Summary    settlementSummary `json:"summary"`
	DigestText string            `json:"digest_text"`
}

// workerPayrollResponse pairs the structured payroll with its rendered
// pay-slip text so chat-facing callers can forward it verbatim.
type workerPayrollResponse struct {
	payroll.MonthlyPayroll
	PayslipText string `json:"payslip_text"`
}

func summarize(batch payroll.BatchResult) settlementSummary {
	summary := settlementSummary{
		Workers:  len(batch.Payrolls),
		Failures: len(batch.Failures),
		TotalPay: decimal.Zero,
	}
	for _, p := range batch.Payrolls {
		summary.TotalWorkDays += p.WorkDays
		summary.TotalPay = summary.TotalPay.Add(p.TotalPay)
	}
	return summary
}

func NewPayrollHandler(payrollService payroll.PayrollService, loc *time.Location) PayrollHandler {
	return &PayrollHandlerImpl{
		payrollService: payrollService,
		loc:            loc,
	}
}

// RunSettlement implements PayrollHandler.
func (p *PayrollHandlerImpl) RunSettlement(w http.ResponseWriter, r *http.Request) {
	var settlementReq payroll.SettlementRequest

	// An empty body is fine, it means "settle the current month".
	if err := json.NewDecoder(r.Body).Decode(&settlementReq); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("RunSettlement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := settlementReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	year, month := p.resolvePeriod(settlementReq.Period)
	batch, err := p.payrollService.PayrollForAllWorkers(r.Context(), year, month)
	if err != nil {
		slog.Error("RunSettlement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Settlement batch completed",
		"batch_id", batch.BatchID,
		"year", year,
		"month", month,
		"workers", len(batch.Payrolls),
		"failures", len(batch.Failures),
	)
	response.Success(w, settlementResponse{
		BatchResult: batch,
		Summary:     summarize(batch),
		DigestText:  payslip.RenderDigest(batch),
	})
}

// GetWorkerPayroll implements PayrollHandler.
func (p *PayrollHandlerImpl) GetWorkerPayroll(w http.ResponseWriter, r *http.Request) {
	identityKey := chi.URLParam(r, "identityKey")

	period := r.URL.Query().Get("period")
	if period != "" {
		if _, _, err := validator.ParsePeriod(period); err != nil {
			response.BadRequest(w, err.Error(), nil)
			return
		}
	}

	year, month := p.resolvePeriod(period)
	result, err := p.payrollService.MonthlyPayrollByIdentity(r.Context(), identityKey, year, month)
	if err != nil {
		slog.Error("GetWorkerPayroll service error", "error", err, "identity_key", identityKey)
		response.HandleError(w, err)
		return
	}

	response.Success(w, workerPayrollResponse{
		MonthlyPayroll: result,
		PayslipText:    payslip.Render(result),
	})
}

// resolvePeriod falls back to the current local month. period has already
// been validated when non-empty.
func (p *PayrollHandlerImpl) resolvePeriod(period string) (year, month int) {
	if period != "" {
		year, month, _ = validator.ParsePeriod(period)
		return year, month
	}
	now := time.Now().In(p.loc)
	return now.Year(), int(now.Month())
}
