package payslip

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fieldworks/attendance-bot-go/internal/domain/payroll"
)

func TestWonGroupsDigits(t *testing.T) {
	assert.Equal(t, "1,234,500원", Won(decimal.NewFromInt(1234500)))
	assert.Equal(t, "0원", Won(decimal.Zero))
	assert.Equal(t, "130,000원", Won(decimal.NewFromInt(130000)))
}

func TestRender(t *testing.T) {
	slip := Render(payroll.MonthlyPayroll{
		WorkerName:     "김철수",
		Year:           2026,
		Month:          8,
		WorkDays:       6,
		BasePay:        decimal.NewFromInt(780000),
		Commission:     decimal.NewFromInt(50000),
		Transportation: decimal.NewFromInt(60000),
		TotalPay:       decimal.NewFromInt(890000),
	})

	assert.Contains(t, slip, "2026년 8월 정산서")
	assert.Contains(t, slip, "김철수")
	assert.Contains(t, slip, "근무일수: 6일")
	assert.Contains(t, slip, "기본급: 780,000원")
	assert.Contains(t, slip, "총 지급액: 890,000원")
}

func TestRenderListsIncentiveLines(t *testing.T) {
	slip := Render(payroll.MonthlyPayroll{
		WorkerName:     "김철수",
		Year:           2026,
		Month:          8,
		WorkDays:       1,
		BasePay:        decimal.NewFromInt(130000),
		Commission:     decimal.NewFromInt(80000),
		Transportation: decimal.NewFromInt(10000),
		TotalPay:       decimal.NewFromInt(220000),
		Incentives: []payroll.IncentiveLine{
			{Date: "2026-08-05", Amount: decimal.NewFromInt(50000), Description: "우천 작업"},
			{Date: "2026-08-20", Amount: decimal.NewFromInt(30000)},
		},
	})

	assert.Contains(t, slip, "격려금: 80,000원")
	assert.Contains(t, slip, "· 2026-08-05 50,000원 (우천 작업)")
	assert.Contains(t, slip, "· 2026-08-20 30,000원")
}

func TestRenderDigest(t *testing.T) {
	digest := RenderDigest(payroll.BatchResult{
		Year:  2026,
		Month: 8,
		Payrolls: []payroll.MonthlyPayroll{
			{WorkerName: "김철수", Year: 2026, Month: 8, WorkDays: 1,
				BasePay: decimal.NewFromInt(130000), TotalPay: decimal.NewFromInt(140000)},
			{WorkerName: "이영희", Year: 2026, Month: 8, WorkDays: 2,
				BasePay: decimal.NewFromInt(260000), TotalPay: decimal.NewFromInt(280000)},
		},
		Failures: []payroll.Failure{{WorkerName: "박민수", Reason: "roster row malformed"}},
	})

	assert.Contains(t, digest, "정산 결과 (2명)")
	assert.Equal(t, 2, strings.Count(digest, "정산서"))
	assert.Contains(t, digest, "처리 실패 1건")
	assert.Contains(t, digest, "박민수: roster row malformed")
}
