package analyzing

import (
	"errors"
	"fmt"
)

// Erros específicos para o processamento de registros de venda
var (
	// Erros de leitura de linha
	ErrTokenization      = errors.New("invalid field count")
	ErrTimestampParse    = errors.New("unrecognized timestamp format")
	ErrAmountParse       = errors.New("invalid sale amount")
	ErrProductEntryParse = errors.New("malformed product entry")

	// Erros inesperados
	ErrUnexpected       = errors.New("unexpected failure while processing record")
	ErrReportGeneration = errors.New("could not generate report")
)

// TimestampParseError guarda o texto original que não casou com nenhum formato
type TimestampParseError struct {
	Value string
}

func (e *TimestampParseError) Error() string {
	return fmt.Sprintf("%s: %q", ErrTimestampParse.Error(), e.Value)
}

func (e *TimestampParseError) Unwrap() error {
	return ErrTimestampParse
}

// RecordError é um erro com contexto adicional para um registro rejeitado
type RecordError struct {
	Err     error  // Erro base
	Source  string // Arquivo de origem
	Line    string // Conteúdo da linha
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *RecordError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError cria um novo RecordError
func NewRecordError(err error, source, line, details string) *RecordError {
	return &RecordError{
		Err:     err,
		Source:  source,
		Line:    line,
		Details: details,
	}
}
