package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig
	DB          DBConfig
	Redis       RedisConfig
	JWT         JWTConfig
	MercadoPago MercadoPagoConfig
	Mail        MailConfig
}

type AppConfig struct {
	Port            string
	Env             string
	BackendBaseURL  string
	FrontendBaseURL string
	BootstrapKey    string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type MercadoPagoConfig struct {
	AccessToken  string
	WebhookToken string
}

type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Running without a .env file is fine as long as the environment is set.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	port := viper.GetString("APP_PORT")
	if port == "" {
		port = "4000"
	}

	backendBaseURL := viper.GetString("BACKEND_BASE_URL")
	if backendBaseURL == "" {
		backendBaseURL = "http://localhost:" + port
	}

	frontendBaseURL := viper.GetString("FRONTEND_BASE_URL")
	if frontendBaseURL == "" {
		frontendBaseURL = "http://localhost:3000"
	}

	config := &Config{
		App: AppConfig{
			Port:            port,
			Env:             viper.GetString("APP_ENV"),
			BackendBaseURL:  backendBaseURL,
			FrontendBaseURL: frontendBaseURL,
			BootstrapKey:    viper.GetString("ADMIN_BOOTSTRAP_KEY"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken:  viper.GetString("MERCADO_PAGO_ACCESS_TOKEN"),
			WebhookToken: viper.GetString("MERCADO_PAGO_WEBHOOK_TOKEN"),
		},
		Mail: MailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			Username: viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("MAIL_FROM"),
		},
	}

	if config.Mail.Port == 0 {
		config.Mail.Port = 587
	}

	return config, nil
}
