// Package reporting escreve o SalesReport no formato configurado
package reporting

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vfg2006/sales-analytics/internal/domain"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var ErrUnknownFormat = errors.New("unknown report format")

// Writer escreve um relatório já calculado
type Writer interface {
	Write(w io.Writer, report *domain.SalesReport) error
}

// NewWriter retorna o Writer do formato informado
func NewWriter(format string) (Writer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText, "":
		return &TextWriter{}, nil
	case FormatJSON:
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}
