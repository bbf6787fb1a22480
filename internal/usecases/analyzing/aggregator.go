package analyzing

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-analytics/internal/domain"
	"github.com/vfg2006/sales-analytics/pkg/utils"
)

// Aggregator acumula as métricas de vendas. Os contadores só crescem durante a execução.
type Aggregator struct {
	dailySalesVolume  *orderedMap[string, int]
	dailySalesValue   *orderedMap[string, decimal.Decimal]
	productVolumes    *orderedMap[string, int]
	monthlyStaffSales *orderedMap[string, *orderedMap[string, int]]
	hourlyCounts      *orderedMap[string, *orderedMap[int, int]]
}

// NewAggregator cria um Aggregator vazio
func NewAggregator() *Aggregator {
	return &Aggregator{
		dailySalesVolume:  newOrderedMap[string, int](),
		dailySalesValue:   newOrderedMap[string, decimal.Decimal](),
		productVolumes:    newOrderedMap[string, int](),
		monthlyStaffSales: newOrderedMap[string, *orderedMap[string, int]](),
		hourlyCounts:      newOrderedMap[string, *orderedMap[int, int]](),
	}
}

// Add acumula uma transação: valor do dia, volume do dia, produtos, staff do mês e hora do dia
func (a *Aggregator) Add(tx domain.Transaction) {
	date := utils.DateKey(tx.Timestamp)
	month := utils.MonthKey(tx.Timestamp)

	a.dailySalesValue.update(date, zero[decimal.Decimal], func(v decimal.Decimal) decimal.Decimal {
		return v.Add(tx.Amount)
	})
	a.dailySalesVolume.update(date, zero[int], increment(1))

	for _, product := range tx.Products {
		a.productVolumes.update(product.ProductID, zero[int], increment(product.Quantity))
	}

	staff := a.monthlyStaffSales.getOrInsert(month, newOrderedMap[string, int])
	staff.update(tx.StaffID, zero[int], increment(1))

	hours := a.hourlyCounts.getOrInsert(date, newOrderedMap[int, int])
	hours.update(tx.Timestamp.Hour(), zero[int], increment(1))
}

func (a *Aggregator) DailySalesVolume(date string) int {
	return a.dailySalesVolume.get(date)
}

func (a *Aggregator) DailySalesValue(date string) decimal.Decimal {
	return a.dailySalesValue.get(date)
}

func (a *Aggregator) ProductVolume(productID string) int {
	return a.productVolumes.get(productID)
}

func (a *Aggregator) StaffSales(month, staffID string) int {
	staff := a.monthlyStaffSales.get(month)
	if staff == nil {
		return 0
	}
	return staff.get(staffID)
}

func (a *Aggregator) HourlyCount(date string, hour int) int {
	hours := a.hourlyCounts.get(date)
	if hours == nil {
		return 0
	}
	return hours.get(hour)
}

// HourlyAverage é o total de transações do dia dividido pelas horas com pelo menos uma venda
func (a *Aggregator) HourlyAverage(date string) float64 {
	hours := a.hourlyCounts.get(date)
	if hours == nil || hours.len() == 0 {
		return 0
	}

	total := 0
	hours.each(func(_ int, count int) {
		total += count
	})

	return float64(total) / float64(hours.len())
}
