package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App    App    `mapstructure:",squash"`
	Input  Input  `mapstructure:",squash"`
	Report Report `mapstructure:",squash"`
}

type App struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Input descreve onde estão os arquivos de transações
type Input struct {
	BasePath      string `mapstructure:"base_path"`
	CaseDirPrefix string `mapstructure:"case_dir_prefix"`
	FileExtension string `mapstructure:"file_extension"`
}

type Report struct {
	Format string `mapstructure:"report_format"`
}

func SetDefaults() {
	viper.SetDefault("BASE_PATH", "./mp-hackathon-sample-data")
	viper.SetDefault("CASE_DIR_PREFIX", "test-case-")
	viper.SetDefault("FILE_EXTENSION", ".txt")

	viper.SetDefault("REPORT_FORMAT", "text") // text ou json

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text") // text ou json
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// O arquivo .env é opcional
	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Debug("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(trimSpaceHook()))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// trimSpaceHook remove espaços ao redor dos valores vindos do ambiente ou do .env
func trimSpaceHook() mapstructure.DecodeHookFuncKind {
	return func(from, to reflect.Kind, data interface{}) (interface{}, error) {
		if from != reflect.String || to != reflect.String {
			return data, nil
		}
		return strings.TrimSpace(data.(string)), nil
	}
}

// loadEnvFile carrega o primeiro .env encontrado no diretório atual ou nos diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
