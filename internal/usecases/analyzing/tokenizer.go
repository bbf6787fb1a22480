package analyzing

import "fmt"

// FieldCount é o número de campos de um registro: staff, timestamp, produtos e valor
const FieldCount = 4

// Tokenize separa a linha nas vírgulas de nível superior. Vírgulas entre colchetes
// pertencem à lista de produtos. O estado dos colchetes é um único flag: um '[' sem
// fechamento mantém o restante da linha "dentro" da lista.
func Tokenize(line string) ([]string, error) {
	fields := make([]string, 0, FieldCount)
	insideBrackets := false
	start := 0

	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '[':
			insideBrackets = true
		case ']':
			insideBrackets = false
		case ',':
			if !insideBrackets {
				fields = append(fields, line[start:i])
				start = i + 1
			}
		}
	}
	fields = append(fields, line[start:])

	if len(fields) != FieldCount {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrTokenization, FieldCount, len(fields))
	}

	return fields, nil
}
