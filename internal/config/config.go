package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper). Loaded once at startup
// and injected into components; business logic never reads the environment.
type Config struct {
	Env            string
	Port           string
	DatabaseURL    string
	JWTSecret      string
	JWTTTL         time.Duration
	PolygonAPIKey  string
	PolygonBaseURL string
	FrontendOrigin string
}

const defaultPolygonBaseURL = "https://api.polygon.io"

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}
	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	ttlHours := viper.GetInt("JWT_TTL_HOURS")
	if ttlHours <= 0 {
		ttlHours = 24
	}

	baseURL := strings.TrimRight(viper.GetString("POLYGON_BASE_URL"), "/")
	if baseURL == "" {
		baseURL = defaultPolygonBaseURL
	}

	return &Config{
		Env:            env,
		Port:           port,
		DatabaseURL:    viper.GetString("DATABASE_URL"),
		JWTSecret:      viper.GetString("JWT_SECRET"),
		JWTTTL:         time.Duration(ttlHours) * time.Hour,
		PolygonAPIKey:  viper.GetString("POLYGON_API_KEY"),
		PolygonBaseURL: baseURL,
		FrontendOrigin: viper.GetString("FRONTEND_ORIGIN"),
	}, nil
}
