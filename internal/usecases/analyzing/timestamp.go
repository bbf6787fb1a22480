package analyzing

import (
	"strings"
	"time"
)

// Formatos aceitos, na ordem em que são tentados
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseTimestamp converte o timestamp sem fuso do registro. Sem segundos, assume zero.
// O valor precisa bater exatamente com um dos formatos: time.Parse aceita frações de
// segundo que nenhum dos dois prevê.
func ParseTimestamp(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)

	for _, layout := range timestampLayouts {
		ts, err := time.Parse(layout, trimmed)
		if err == nil && ts.Format(layout) == trimmed {
			return ts, nil
		}
	}

	return time.Time{}, &TimestampParseError{Value: value}
}
