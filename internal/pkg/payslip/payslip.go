// Package payslip renders settlement results into the Korean-language
// text blocks sent to workers and the operator.
package payslip

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fieldworks/attendance-bot-go/internal/domain/payroll"
)

// printer groups digits the Korean way (1,234,567).
var printer = message.NewPrinter(language.Korean)

// Won renders an amount as grouped won, e.g. "1,234,500원".
func Won(amount decimal.Decimal) string {
	return printer.Sprintf("%d원", amount.IntPart())
}

// Render formats one worker's monthly settlement as a payslip text block.
func Render(p payroll.MonthlyPayroll) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📋 %d년 %d월 정산서\n", p.Year, p.Month)
	fmt.Fprintf(&b, "👷 %s\n", p.WorkerName)
	fmt.Fprintf(&b, "🗓 근무일수: %d일\n", p.WorkDays)
	fmt.Fprintf(&b, "💰 기본급: %s\n", Won(p.BasePay))
	fmt.Fprintf(&b, "🎁 격려금: %s\n", Won(p.Commission))
	for _, line := range p.Incentives {
		if line.Description != "" {
			fmt.Fprintf(&b, "   · %s %s (%s)\n", line.Date, Won(line.Amount), line.Description)
		} else {
			fmt.Fprintf(&b, "   · %s %s\n", line.Date, Won(line.Amount))
		}
	}
	fmt.Fprintf(&b, "🚌 교통비: %s\n", Won(p.Transportation))
	fmt.Fprintf(&b, "💵 총 지급액: %s", Won(p.TotalPay))

	return b.String()
}

// RenderDigest formats a whole batch for the operator: one payslip block
// per worker plus the failure list.
func RenderDigest(batch payroll.BatchResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d년 %d월 정산 결과 (%d명)\n", batch.Year, batch.Month, len(batch.Payrolls))
	for _, p := range batch.Payrolls {
		b.WriteString("\n")
		b.WriteString(Render(p))
		b.WriteString("\n")
	}

	if len(batch.Failures) > 0 {
		fmt.Fprintf(&b, "\n⚠️ 처리 실패 %d건\n", len(batch.Failures))
		for _, f := range batch.Failures {
			fmt.Fprintf(&b, "- %s: %s\n", f.WorkerName, f.Reason)
		}
	}

	return b.String()
}
