package analyzing

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-analytics/internal/domain"
	"github.com/vfg2006/sales-analytics/pkg/log"
)

// Posição de cada campo no registro
const (
	fieldStaffID = iota
	fieldTimestamp
	fieldProducts
	fieldAmount
)

// Processor valida linhas brutas e acumula os registros válidos no Aggregator
type Processor struct {
	aggregator *Aggregator
	logger     log.Logger
}

// NewProcessor cria um Processor sobre o aggregator informado
func NewProcessor(aggregator *Aggregator, logger log.Logger) *Processor {
	return &Processor{
		aggregator: aggregator,
		logger:     logger,
	}
}

// ProcessLine valida e acumula uma linha. Linhas rejeitadas são logadas aqui e
// devolvidas como *RecordError sem tocar em nenhum contador. Falhas na lista de
// produtos não rejeitam o registro: os itens lidos até o erro são acumulados.
func (p *Processor) ProcessLine(line string, source string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = p.reject(errors.Wrapf(ErrUnexpected, "panic: %v", r), source, line, "")
		}
	}()

	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	fields, err := Tokenize(line)
	if err != nil {
		return p.reject(err, source, line, "")
	}

	timestamp, err := ParseTimestamp(fields[fieldTimestamp])
	if err != nil {
		return p.reject(err, source, line, "field 2 (timestamp)")
	}

	amount, err := parseAmount(fields[fieldAmount])
	if err != nil {
		return p.reject(err, source, line, "field 4 (amount)")
	}

	products, err := ParseProducts(fields[fieldProducts])
	if err != nil {
		p.logger.WithFields(log.Fields{
			"source": source,
			"line":   line,
		}).WithError(err).Warn("Lista de produtos com entrada inválida, usando itens lidos até o erro")
	}

	p.aggregator.Add(domain.Transaction{
		StaffID:   strings.TrimSpace(fields[fieldStaffID]),
		Timestamp: timestamp,
		Products:  products,
		Amount:    amount,
	})

	return nil
}

func (p *Processor) reject(err error, source, line, details string) error {
	recordErr := NewRecordError(err, source, line, details)

	p.logger.WithFields(log.Fields{
		"source": source,
		"line":   line,
	}).WithError(err).Warn("Registro ignorado")

	return recordErr
}

func parseAmount(value string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(value)

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(ErrAmountParse, "%q", value)
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, errors.Wrapf(ErrAmountParse, "%q is negative", value)
	}

	return amount, nil
}
