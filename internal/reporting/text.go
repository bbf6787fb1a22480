package reporting

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vfg2006/sales-analytics/internal/domain"
)

// TextWriter escreve uma linha por métrica; métricas vazias não aparecem
type TextWriter struct{}

func (TextWriter) Write(w io.Writer, report *domain.SalesReport) error {
	out := bufio.NewWriter(w)

	if v := report.HighestDailyVolume; v != nil {
		fmt.Fprintf(out, "Highest sales volume: %d transactions on %s\n", v.Transactions, v.Date)
	}

	if v := report.HighestDailyValue; v != nil {
		fmt.Fprintf(out, "Highest sales value: %s on %s\n", v.Value.StringFixed(2), v.Date)
	}

	if p := report.MostSoldProduct; p != nil {
		fmt.Fprintf(out, "Most sold product: %s with %d units\n", p.ProductID, p.Units)
	}

	for _, staff := range report.MonthlyTopStaff {
		fmt.Fprintf(out, "Top staff for %s: %s with %d transactions\n", staff.Month, staff.StaffID, staff.Transactions)
	}

	if avg := report.HighestAverageVolumeDay; avg != nil {
		fmt.Fprintf(out, "Highest average transaction volume: %s with %.1f transactions per hour\n", avg.Date, avg.Average)
	}

	return out.Flush()
}
