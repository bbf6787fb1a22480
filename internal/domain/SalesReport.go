package domain

import "github.com/shopspring/decimal"

// SalesReport é o resumo calculado a partir do estado acumulado.
// Métricas sem dados ficam nil (ou vazias no caso de MonthlyTopStaff).
type SalesReport struct {
	HighestDailyVolume      *DailyVolume      `json:"highest_daily_volume,omitempty"`
	HighestDailyValue       *DailyValue       `json:"highest_daily_value,omitempty"`
	MostSoldProduct         *ProductVolume    `json:"most_sold_product,omitempty"`
	MonthlyTopStaff         []MonthlyTopStaff `json:"monthly_top_staff,omitempty"`
	HighestAverageVolumeDay *HourlyAverage    `json:"highest_average_volume_day,omitempty"`
}

type DailyVolume struct {
	Date         string `json:"date"` // Formato yyyy-mm-dd
	Transactions int    `json:"transactions"`
}

type DailyValue struct {
	Date  string          `json:"date"`
	Value decimal.Decimal `json:"value"`
}

type ProductVolume struct {
	ProductID string `json:"product_id"`
	Units     int    `json:"units"`
}

type MonthlyTopStaff struct {
	Month        string `json:"month"` // Formato yyyy-mm
	StaffID      string `json:"staff_id"`
	Transactions int    `json:"transactions"`
}

type HourlyAverage struct {
	Date    string  `json:"date"`
	Average float64 `json:"average"`
}

// IsEmpty indica se nenhuma métrica foi calculada
func (r *SalesReport) IsEmpty() bool {
	return r.HighestDailyVolume == nil &&
		r.HighestDailyValue == nil &&
		r.MostSoldProduct == nil &&
		len(r.MonthlyTopStaff) == 0 &&
		r.HighestAverageVolumeDay == nil
}
