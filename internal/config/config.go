package config

import (
	"fmt"
	"net/url"

	"github.com/jinzhu/configor"
)

type Config struct {
	AppConfig AppConfig
	DBConfig  DBConfig
}

type AppConfig struct {
	AppName string `default:"user-service" env:"APP_NAME"`
	Port    int    `default:"8080" env:"APP_PORT"`
}

type DBConfig struct {
	// URL wins over the discrete fields when set.
	URL      string `env:"DATABASE_URL"`
	Host     string `default:"localhost" env:"DBHOST"`
	Database string `default:"userservice" env:"DBNAME"`
	User     string `default:"postgres" env:"DBUSERNAME"`
	Password string `default:"postgres" env:"DBPASSWORD"`
	Port     uint   `default:"5432" env:"DBPORT"`
	SSLMode  string `default:"disable" env:"DBSSL"`
}

// DSN returns the Postgres connection string in keyword form.
func (c DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.Host, c.User, c.Password, c.Database, c.Port, c.SSLMode)
}

// ConnURL returns the postgres:// form used by the migration tool.
func (c DBConfig) ConnURL() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.User), url.QueryEscape(c.Password), c.Host, c.Port, c.Database, c.SSLMode)
}

func LoadConfigOrPanic() Config {
	var config = Config{}
	configor.Load(&config)
	return config
}
