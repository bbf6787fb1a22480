package analyzing

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// LineProcessor consome linhas brutas de um arquivo de transações
type LineProcessor interface {
	// ProcessLine valida a linha e acumula o registro; source identifica a origem nos logs
	ProcessLine(line string, source string) error
}
