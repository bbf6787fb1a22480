package reporting

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-analytics/internal/domain"
	"github.com/vfg2006/sales-analytics/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// dailyValueView fixa o valor em duas casas decimais
type dailyValueView struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

// jsonReport sobrepõe o campo de valor do relatório embutido
type jsonReport struct {
	domain.SalesReport
	HighestDailyValue *dailyValueView `json:"highest_daily_value,omitempty"`
}

// JSONWriter escreve o relatório indentado, com valor e média arredondados como no texto.
type JSONWriter struct{}

func (JSONWriter) Write(w io.Writer, report *domain.SalesReport) error {
	out := jsonReport{SalesReport: *report}
	if v := report.HighestDailyValue; v != nil {
		out.HighestDailyValue = &dailyValueView{Date: v.Date, Value: v.Value.StringFixed(2)}
	}
	if avg := report.HighestAverageVolumeDay; avg != nil {
		out.SalesReport.HighestAverageVolumeDay = &domain.HourlyAverage{
			Date:    avg.Date,
			Average: utils.RoundWithOneDecimalPlace(avg.Average),
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
