package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics/infrastructure/filesource"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/reporting"
	"github.com/vfg2006/sales-analytics/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Inicializa configuração de logs
	configureLogger(cfg.App)

	writer, err := reporting.NewWriter(cfg.Report.Format)
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, correlationID := log.WithCorrelationID(context.Background())
	logger := log.ForContext(ctx)
	logger.WithField("path", cfg.Input.BasePath).Infof("Iniciando análise de transações (execução %s)", correlationID)

	aggregator := analyzing.NewAggregator()
	processor := analyzing.NewProcessor(aggregator, logger)
	source := filesource.New(cfg)

	if _, err := source.Walk(ctx, processor); err != nil {
		logger.WithError(err).Fatal("Erro ao ler diretório de transações")
	}

	report, err := aggregator.GenerateReport()
	if err != nil {
		logger.WithError(err).Error("Erro ao gerar relatório")
		fmt.Fprintln(os.Stderr, "could not generate report")
		os.Exit(1)
	}

	if err := writer.Write(os.Stdout, report); err != nil {
		logger.WithError(err).Fatal("Erro ao escrever relatório")
	}
}

// configureLogger configura o formato e o nível dos logs. Os logs vão para stderr,
// deixando o stdout só para o relatório.
func configureLogger(app config.App) {
	logrus.SetOutput(os.Stderr)

	if strings.EqualFold(app.LogFormat, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(app.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", app.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Debugf("Nível de log configurado para: %s", logLevel)
}
