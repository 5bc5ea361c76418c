package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Storage       Storage       `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Seed          Seed          `mapstructure:",squash"`
	LowStockAlert LowStockAlert `mapstructure:",squash"`
	Backup        Backup        `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Storage struct {
	// Path é o arquivo de dados local (única fonte de persistência).
	Path string `mapstructure:"storage_path"`
	// MaxValueBytes limita o tamanho de cada coleção gravada; imagens
	// embutidas nas configurações são a causa típica de estouro.
	MaxValueBytes int `mapstructure:"storage_max_value_bytes"`
	// MaxImageBytes limita cada imagem embutida antes mesmo da escrita.
	MaxImageBytes int `mapstructure:"storage_max_image_bytes"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type Seed struct {
	Enabled          bool `mapstructure:"seed_enabled"`
	IncludeSalesData bool `mapstructure:"seed_include_sales_data"`
}

type LowStockAlert struct {
	CronSchedule string `mapstructure:"low_stock_alert_cron"`
	Enabled      bool   `mapstructure:"low_stock_alert_enabled"`
}

type Backup struct {
	CronSchedule string `mapstructure:"backup_cron"`
	Enabled      bool   `mapstructure:"backup_enabled"`
	Dir          string `mapstructure:"backup_dir"`
	Keep         int    `mapstructure:"backup_keep"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("STORAGE_PATH", "data/perfumaria.db")
	viper.SetDefault("STORAGE_MAX_VALUE_BYTES", 5*1024*1024)
	viper.SetDefault("STORAGE_MAX_IMAGE_BYTES", 2*1024*1024)

	viper.SetDefault("AUTH_SECRET", "troque_este_segredo")
	viper.SetDefault("AUTH_TOKEN_TTL", "12h")

	viper.SetDefault("SEED_ENABLED", true)
	viper.SetDefault("SEED_INCLUDE_SALES_DATA", true)

	viper.SetDefault("LOW_STOCK_ALERT_CRON", "0 8 * * *") // Todos os dias às 8h
	viper.SetDefault("LOW_STOCK_ALERT_ENABLED", true)

	viper.SetDefault("BACKUP_CRON", "0 23 * * *") // Todos os dias às 23h
	viper.SetDefault("BACKUP_ENABLED", false)
	viper.SetDefault("BACKUP_DIR", "data/backups")
	viper.SetDefault("BACKUP_KEEP", 7)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis de ambiente (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile tenta carregar o .env do diretório atual ou de diretórios acima.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}
}
