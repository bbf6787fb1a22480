package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name: "Sem variáveis de ambiente - deve usar os valores padrão",
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "./mp-hackathon-sample-data", cfg.Input.BasePath)
				assert.Equal(t, "test-case-", cfg.Input.CaseDirPrefix)
				assert.Equal(t, ".txt", cfg.Input.FileExtension)
				assert.Equal(t, "text", cfg.Report.Format)
				assert.Equal(t, "info", cfg.App.LogLevel)
				assert.Equal(t, "text", cfg.App.LogFormat)
			},
		},
		{
			name: "Com variáveis de ambiente - deve sobrescrever os padrões",
			env: map[string]string{
				"BASE_PATH":     "/data/sales",
				"REPORT_FORMAT": "json",
				"LOG_LEVEL":     "debug",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/data/sales", cfg.Input.BasePath)
				assert.Equal(t, "test-case-", cfg.Input.CaseDirPrefix)
				assert.Equal(t, "json", cfg.Report.Format)
				assert.Equal(t, "debug", cfg.App.LogLevel)
			},
		},
		{
			name: "Valores com espaços - devem ser aparados",
			env: map[string]string{
				"BASE_PATH":      "  /data/sales ",
				"FILE_EXTENSION": " .csv",
				"REPORT_FORMAT":  "json\t",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/data/sales", cfg.Input.BasePath)
				assert.Equal(t, ".csv", cfg.Input.FileExtension)
				assert.Equal(t, "json", cfg.Report.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			cfg, err := NewConfig()
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}
