package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Environment string        `yaml:"environment"`
	Server      ServerConfig  `yaml:"server"`
	Logging     LoggingConfig `yaml:"logging"`
	Mongo       MongoConfig   `yaml:"mongo"`
	Blog        BlogConfig    `yaml:"blog"`
	Auth        AuthConfig    `yaml:"-"`
}

type ServerConfig struct {
	Port        string   `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type MongoConfig struct {
	// URI is overridden by the MONGODB_URI environment variable when set.
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type BlogConfig struct {
	// DefaultAuthor is stamped on posts created without an author field.
	DefaultAuthor string `yaml:"default_author"`
}

// AuthConfig holds admin credentials and token secrets.
// These never come from the YAML file, only from the environment.
type AuthConfig struct {
	JWTSecret         string
	JWTIssuer         string
	AdminUsername     string
	AdminPasswordHash string
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}

	applyEnvOverrides(&c)
	config = &c
}

func applyEnvOverrides(c *AppConfig) {
	if v := os.Getenv("MONGODB_URI"); v != "" {
		c.Mongo.URI = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		c.Environment = v
	}
	if c.Environment == "" {
		c.Environment = "development"
	}

	c.Auth = AuthConfig{
		JWTSecret:         os.Getenv("JWT_SECRET"),
		JWTIssuer:         os.Getenv("JWT_ISSUER"),
		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
	if c.Auth.JWTIssuer == "" {
		c.Auth.JWTIssuer = "la-blog"
	}
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// IsProduction reports whether the app runs with production error masking.
func IsProduction() bool {
	return GetConfig().Environment == "production"
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
