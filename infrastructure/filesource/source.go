package filesource

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics/pkg/log"
)

// Tamanho máximo de uma linha (listas de produtos longas passam do padrão de 64KB)
const maxLineSize = 1024 * 1024

var ErrFileRead = errors.New("error reading file")

// FileReadError indica um arquivo que não pôde ser aberto ou lido até o fim
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("%s %s: %s", ErrFileRead.Error(), e.Path, e.Err.Error())
}

func (e *FileReadError) Unwrap() []error {
	return []error{ErrFileRead, e.Err}
}

// Stats resume uma execução do Source
type Stats struct {
	CaseDirs      int
	FilesRead     int
	FilesFailed   int
	LinesRead     int
	LinesRejected int
	Duration      time.Duration
}

// Source percorre os diretórios de casos de teste e entrega cada linha ao processador
type Source struct {
	config config.Input
}

func New(cfg *config.Config) *Source {
	return &Source{config: cfg.Input}
}

// ListFiles retorna os arquivos de transações em ordem alfabética (os.ReadDir já ordena por nome)
func (s *Source) ListFiles(ctx context.Context) ([]string, int, error) {
	logger := log.ForContext(ctx)

	entries, err := os.ReadDir(s.config.BasePath)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "erro ao listar diretório base %s", s.config.BasePath)
	}

	var (
		files    []string
		caseDirs int
	)
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), s.config.CaseDirPrefix) {
			continue
		}
		caseDirs++

		caseDir := filepath.Join(s.config.BasePath, entry.Name())
		caseFiles, err := s.listCaseFiles(caseDir)
		if err != nil {
			logger.WithField("path", caseDir).WithError(err).Error("Erro ao listar diretório de caso de teste, pulando")
			continue
		}
		files = append(files, caseFiles...)
	}

	return files, caseDirs, nil
}

func (s *Source) listCaseFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), s.config.FileExtension) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	return files, nil
}

// Walk processa todos os arquivos em sequência. Falhas de arquivo são logadas e o arquivo
// é pulado; só um diretório base ilegível interrompe a execução.
func (s *Source) Walk(ctx context.Context, processor analyzing.LineProcessor) (Stats, error) {
	logger := log.ForContext(ctx)
	startTime := time.Now()

	files, caseDirs, err := s.ListFiles(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{CaseDirs: caseDirs}
	if len(files) == 0 {
		logger.WithField("path", s.config.BasePath).Warn("Nenhum arquivo de transações encontrado")
	}

	for _, path := range files {
		lines, rejected, err := s.ProcessFile(path, processor)
		stats.LinesRead += lines
		stats.LinesRejected += rejected

		if err != nil {
			stats.FilesFailed++
			logger.WithField("path", path).WithError(err).Error("Erro ao ler arquivo de transações")
			continue
		}
		stats.FilesRead++
	}

	stats.Duration = time.Since(startTime)

	logger.WithFields(log.Fields{
		"stats_case_dirs":      stats.CaseDirs,
		"stats_files_read":     stats.FilesRead,
		"stats_files_failed":   stats.FilesFailed,
		"stats_lines_read":     stats.LinesRead,
		"stats_lines_rejected": stats.LinesRejected,
		"stats_duration":       stats.Duration.String(),
	}).Info("Leitura dos arquivos de transações concluída")

	return stats, nil
}

// ProcessFile entrega cada linha não vazia do arquivo ao processador e devolve quantas
// foram entregues e rejeitadas. Se a leitura falhar no meio, as linhas já entregues
// continuam contabilizadas.
func (s *Source) ProcessFile(path string, processor analyzing.LineProcessor) (int, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, &FileReadError{Path: path, Err: err}
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	lines, rejected := 0, 0
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		lines++
		if err := processor.ProcessLine(line, path); err != nil {
			rejected++
		}
	}

	if err := scanner.Err(); err != nil {
		return lines, rejected, &FileReadError{Path: path, Err: err}
	}

	return lines, rejected, nil
}
