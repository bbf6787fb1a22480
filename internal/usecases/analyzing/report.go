package analyzing

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-analytics/internal/domain"
)

// GenerateReport calcula as cinco métricas a partir do estado atual.
// Nada é guardado: cada chamada reflete o estado no momento da chamada.
func (a *Aggregator) GenerateReport() (report *domain.SalesReport, err error) {
	defer func() {
		if r := recover(); r != nil {
			report = nil
			err = errors.Wrapf(ErrReportGeneration, "panic: %v", r)
		}
	}()

	return &domain.SalesReport{
		HighestDailyVolume:      a.highestDailyVolume(),
		HighestDailyValue:       a.highestDailyValue(),
		MostSoldProduct:         a.mostSoldProduct(),
		MonthlyTopStaff:         a.monthlyTopStaff(),
		HighestAverageVolumeDay: a.highestAverageVolumeDay(),
	}, nil
}

func greaterInt(a, b int) bool {
	return a > b
}

func (a *Aggregator) highestDailyVolume() *domain.DailyVolume {
	date, count, ok := maxBy(a.dailySalesVolume, greaterInt)
	if !ok {
		return nil
	}
	return &domain.DailyVolume{Date: date, Transactions: count}
}

func (a *Aggregator) highestDailyValue() *domain.DailyValue {
	date, value, ok := maxBy(a.dailySalesValue, decimal.Decimal.GreaterThan)
	if !ok {
		return nil
	}
	return &domain.DailyValue{Date: date, Value: value}
}

func (a *Aggregator) mostSoldProduct() *domain.ProductVolume {
	productID, units, ok := maxBy(a.productVolumes, greaterInt)
	if !ok {
		return nil
	}
	return &domain.ProductVolume{ProductID: productID, Units: units}
}

func (a *Aggregator) monthlyTopStaff() []domain.MonthlyTopStaff {
	var result []domain.MonthlyTopStaff

	a.monthlyStaffSales.each(func(month string, staff *orderedMap[string, int]) {
		staffID, count, ok := maxBy(staff, greaterInt)
		if !ok {
			return
		}
		result = append(result, domain.MonthlyTopStaff{
			Month:        month,
			StaffID:      staffID,
			Transactions: count,
		})
	})

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Month < result[j].Month
	})

	return result
}

func (a *Aggregator) highestAverageVolumeDay() *domain.HourlyAverage {
	averages := newOrderedMap[string, float64]()
	a.hourlyCounts.each(func(date string, _ *orderedMap[int, int]) {
		averages.update(date, zero[float64], func(float64) float64 {
			return a.HourlyAverage(date)
		})
	})

	date, average, ok := maxBy(averages, func(x, y float64) bool { return x > y })
	if !ok {
		return nil
	}
	return &domain.HourlyAverage{Date: date, Average: average}
}
