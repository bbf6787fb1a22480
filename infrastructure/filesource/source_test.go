package filesource

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/sales-analytics/pkg/log"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newSource(basePath string) *Source {
	return New(&config.Config{
		Input: config.Input{
			BasePath:      basePath,
			CaseDirPrefix: "test-case-",
			FileExtension: ".txt",
		},
	})
}

func TestSource_ListFiles(t *testing.T) {
	base := t.TempDir()

	writeFile(t, filepath.Join(base, "test-case-2", "b.txt"), "l3\n")
	writeFile(t, filepath.Join(base, "test-case-1", "a.txt"), "l1\nl2\n")
	writeFile(t, filepath.Join(base, "test-case-1", "c.txt"), "")
	writeFile(t, filepath.Join(base, "test-case-1", "notes.md"), "ignorado")
	writeFile(t, filepath.Join(base, "test-case-1", "sub", "d.txt"), "ignorado")
	writeFile(t, filepath.Join(base, "other", "x.txt"), "ignorado")
	writeFile(t, filepath.Join(base, "test-case-file.txt"), "ignorado")

	files, caseDirs, err := newSource(base).ListFiles(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, caseDirs)
	assert.Equal(t, []string{
		filepath.Join(base, "test-case-1", "a.txt"),
		filepath.Join(base, "test-case-1", "c.txt"),
		filepath.Join(base, "test-case-2", "b.txt"),
	}, files)
}

func TestSource_Walk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := t.TempDir()
	fileA := filepath.Join(base, "test-case-1", "a.txt")
	fileB := filepath.Join(base, "test-case-2", "b.txt")
	writeFile(t, fileA, "l1\nl2\r\n")
	writeFile(t, fileB, "l3")

	// Link quebrado: aparece na listagem mas não abre
	broken := filepath.Join(base, "test-case-1", "broken.txt")
	require.NoError(t, os.Symlink(filepath.Join(base, "missing"), broken))

	processor := mocks.NewMockLineProcessor(ctrl)
	gomock.InOrder(
		processor.EXPECT().ProcessLine("l1", fileA).Return(nil),
		processor.EXPECT().ProcessLine("l2", fileA).Return(analyzing.ErrTokenization),
		processor.EXPECT().ProcessLine("l3", fileB).Return(nil),
	)

	stats, err := newSource(base).Walk(context.Background(), processor)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.CaseDirs)
	assert.Equal(t, 2, stats.FilesRead)
	assert.Equal(t, 1, stats.FilesFailed)
	assert.Equal(t, 3, stats.LinesRead)
	assert.Equal(t, 1, stats.LinesRejected)
}

func TestSource_WalkMissingBaseDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	processor := mocks.NewMockLineProcessor(ctrl)

	_, err := newSource(filepath.Join(t.TempDir(), "missing")).Walk(context.Background(), processor)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSource_ProcessFile(t *testing.T) {
	t.Run("Arquivo inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		path := filepath.Join(t.TempDir(), "missing.txt")
		lines, rejected, err := newSource("").ProcessFile(path, mocks.NewMockLineProcessor(ctrl))

		assert.Zero(t, lines)
		assert.Zero(t, rejected)
		assert.ErrorIs(t, err, ErrFileRead)
		assert.ErrorIs(t, err, os.ErrNotExist)

		var readErr *FileReadError
		require.ErrorAs(t, err, &readErr)
		assert.Equal(t, path, readErr.Path)
	})

	t.Run("Linhas em branco não são entregues nem contadas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		path := filepath.Join(t.TempDir(), "blank.txt")
		writeFile(t, path, "l1\n\n   \r\nl2\n\n")

		processor := mocks.NewMockLineProcessor(ctrl)
		gomock.InOrder(
			processor.EXPECT().ProcessLine("l1", path).Return(nil),
			processor.EXPECT().ProcessLine("l2", path).Return(nil),
		)

		lines, rejected, err := newSource("").ProcessFile(path, processor)

		require.NoError(t, err)
		assert.Equal(t, 2, lines)
		assert.Zero(t, rejected)
	})

	t.Run("Falha no meio do arquivo mantém as linhas já entregues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		path := filepath.Join(t.TempDir(), "long.txt")
		writeFile(t, path, "l1\n"+strings.Repeat("x", maxLineSize+1)+"\nl3\n")

		processor := mocks.NewMockLineProcessor(ctrl)
		processor.EXPECT().ProcessLine("l1", path).Return(nil)

		lines, rejected, err := newSource("").ProcessFile(path, processor)

		assert.Equal(t, 1, lines)
		assert.Zero(t, rejected)
		assert.ErrorIs(t, err, ErrFileRead)
	})
}

// Leitura real de arquivos acumulando no Aggregator
func TestSource_WalkWithAggregator(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "test-case-1", "day.txt"), strings.Join([]string{
		"S1,2024-01-15T09:00:00,[P1:2],10.00",
		"S1,2024-01-15T09:00:00,[P1:2]",
		"S1,2024-01-15T10:00:00,[P1:3],20.00",
	}, "\n"))

	agg := analyzing.NewAggregator()
	processor := analyzing.NewProcessor(agg, log.New(logrus.New()))

	stats, err := newSource(base).Walk(context.Background(), processor)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.LinesRead)
	assert.Equal(t, 1, stats.LinesRejected)

	report, err := agg.GenerateReport()
	require.NoError(t, err)
	assert.Equal(t, 2, report.HighestDailyVolume.Transactions)
	assert.Equal(t, "30.00", report.HighestDailyValue.Value.StringFixed(2))
	assert.Equal(t, 5, report.MostSoldProduct.Units)
	assert.Equal(t, 1.0, report.HighestAverageVolumeDay.Average)
}
