package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	HttpAddr      string        `yaml:"http_addr" validate:"required"`
	JwtTTL        time.Duration `yaml:"jwt_ttl" validate:"required"`
	LogLevel      string        `yaml:"log_level"`
	LogJSON       bool          `yaml:"log_json"`
	CorsOrigins   []string      `yaml:"cors_origins"`
	SecureCookies bool          `yaml:"secure_cookies"`
}

type Pg struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password" validate:"required"`
	Dbname   string `yaml:"dbname" validate:"required"`
}

type Private struct {
	JwtKey string `yaml:"jwt_key" validate:"required"`
	// Pg is optional: without it the server runs on the in-memory storage.
	Pg *Pg `yaml:"pg" validate:"omitempty"`
}

func (s *Config) JwtKey() string {
	return s.Private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return s.Public.JwtTTL
}

// Addr returns the listen address; PORT from the environment wins over the file.
func (s *Config) Addr() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return s.Public.HttpAddr
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func mustValidate(v interface{}) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(v); err != nil {
		panic(fmt.Sprintf("invalid config: %s", err))
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)
	mustValidate(&public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)
	mustValidate(&private)

	return &Config{public, private}
}
