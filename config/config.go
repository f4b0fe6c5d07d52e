// Initializing common application configuration
package config

import (
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	Twilio   TwilioConfig   `mapstructure:"twilio"`
	WhatsApp WhatsAppConfig `mapstructure:"whatsapp"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	App      AppConfig      `mapstructure:"app"`
}

type ServerConfig struct {
	AppVersion   string `json:"appVersion"`
	Host         string `json:"host" validate:"required"`
	Port         string `json:"port" validate:"required"`
	Timeout      time.Duration
	Idle_timeout time.Duration
	Mode         string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`

	MaxRetries   int
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration

	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

type SMTPConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	FromEmail string `mapstructure:"from_email"`
}

type TwilioConfig struct {
	AccountSID  string `mapstructure:"account_sid"`
	AuthToken   string `mapstructure:"auth_token"`
	PhoneNumber string `mapstructure:"phone_number"`
}

type WhatsAppConfig struct {
	Token   string `mapstructure:"token"`
	PhoneID string `mapstructure:"phone_id"`
}

type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
}

type AppConfig struct {
	// Environment selects the runtime mode; "test" swaps every
	// notification provider for the mock.
	Environment string `mapstructure:"environment"`
	APIPrefix   string `mapstructure:"api_prefix"`
}

func LoadConfig() (*viper.Viper, error) {

	viperInstance := viper.New()

	viperInstance.AddConfigPath("./config")
	viperInstance.SetConfigName("config")
	viperInstance.SetConfigType("yaml")

	// Credentials come from the environment in deployment; the yaml file
	// only carries defaults for local runs.
	viperInstance.BindEnv("smtp.host", "SMTP_HOST")
	viperInstance.BindEnv("smtp.port", "SMTP_PORT")
	viperInstance.BindEnv("smtp.username", "SMTP_USERNAME")
	viperInstance.BindEnv("smtp.password", "SMTP_PASSWORD")
	viperInstance.BindEnv("smtp.from_email", "SMTP_FROM_EMAIL")
	viperInstance.BindEnv("whatsapp.token", "WHATSAPP_TOKEN")
	viperInstance.BindEnv("whatsapp.phone_id", "WHATSAPP_PHONE_ID")
	viperInstance.BindEnv("telegram.bot_token", "TELEGRAM_BOT_TOKEN")
	viperInstance.BindEnv("twilio.account_sid", "TWILIO_ACCOUNT_SID")
	viperInstance.BindEnv("twilio.auth_token", "TWILIO_AUTH_TOKEN")
	viperInstance.BindEnv("twilio.phone_number", "TWILIO_PHONE_NUMBER")
	viperInstance.BindEnv("app.environment", "ENVIRONMENT")
	viperInstance.BindEnv("jwt.secret", "JWT_SECRET_KEY")

	err := viperInstance.ReadInConfig()

	if err != nil {
		return nil, err
	}
	return viperInstance, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {

	var c Config

	err := v.Unmarshal(&c)
	if err != nil {
		log.Fatalf("unable to decode config into struct, %v", err)
		return nil, err
	}
	return &c, nil
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
