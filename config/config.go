package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Gemini   Gemini
	SMTP     SMTP
	Auth     Auth
	Survey   Survey
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type Gemini struct {
	APIKey         string
	Model          string
	TimeoutSeconds int
}

type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type Auth struct {
	JWTSecret string
}

type Survey struct {
	MaxAnswerLength int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("GEMINI_TIMEOUT_SECONDS", 30)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_FROM", "AIR Platform <noreply@air-assessment.com>")
	viper.SetDefault("SURVEY_MAX_ANSWER_LENGTH", 2000)

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")

	config.Gemini.APIKey = viper.GetString("GEMINI_API_KEY")
	config.Gemini.Model = viper.GetString("GEMINI_MODEL")
	config.Gemini.TimeoutSeconds = viper.GetInt("GEMINI_TIMEOUT_SECONDS")

	config.SMTP.Host = viper.GetString("SMTP_HOST")
	config.SMTP.Port = viper.GetInt("SMTP_PORT")
	config.SMTP.Username = viper.GetString("SMTP_USERNAME")
	config.SMTP.Password = viper.GetString("SMTP_PASSWORD")
	config.SMTP.From = viper.GetString("SMTP_FROM")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")

	config.Survey.MaxAnswerLength = viper.GetInt("SURVEY_MAX_ANSWER_LENGTH")

	log.Info().Str("port", config.Server.Port).Str("db_host", config.Database.Host).Msg("Config loaded")
	return &config, nil
}
