package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full runtime configuration of the API process.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Clients   ClientsConfig   `mapstructure:"clients"`
	Log       LogConfig       `mapstructure:"log"`
}

// AppConfig selects the deployment environment.
type AppConfig struct {
	Env string `mapstructure:"env"`
}

// IsProduction reports whether the bundled frontend should be served
func (c AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// ServerConfig holds the listener settings. An empty GRPCAddr disables the gRPC server.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	GRPCAddr        string        `mapstructure:"grpc_addr"`
	StaticDir       string        `mapstructure:"static_dir"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// Comma separated, appended to AllowedOrigins
	AdditionalOrigins string `mapstructure:"additional_origins"`
}

// Origins returns the full allow-list with blanks and duplicates removed
func (c CORSConfig) Origins() []string {
	all := append([]string{}, c.AllowedOrigins...)
	all = append(all, strings.Split(c.AdditionalOrigins, ",")...)

	seen := make(map[string]bool, len(all))
	out := make([]string, 0, len(all))
	for _, o := range all {
		o = strings.TrimSpace(o)
		if o == "" || seen[o] {
			continue
		}
		seen[o] = true
		out = append(out, o)
	}
	return out
}

// RateLimitConfig configures the per-IP token bucket limiter.
type RateLimitConfig struct {
	// 0 disables the limiter
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// ClientsConfig tunes client creation rules.
type ClientsConfig struct {
	// Reject risk profiles outside Conservative, Moderate and Aggressive
	StrictRiskProfile bool `mapstructure:"strict_risk_profile"`
}

// LogConfig is translated into a zap.Config by the logger package.
type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	Sampling          bool   `mapstructure:"sampling"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
	// zap sink URLs or file paths, stdout when empty
	OutputPaths []string `mapstructure:"output_paths"`
}

var defaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"http://localhost:3000",
	"https://aivest-7otb.onrender.com",
}

// Load builds a Config from defaults, the YAML file at path and AIVEST_ prefixed
// environment variables, in increasing order of precedence. When envOnly is set
// the file is not read.
func Load(path string, envOnly bool) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("AIVEST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	// Plain names used by hosting platforms
	_ = v.BindEnv("app.env", "AIVEST_APP_ENV", "NODE_ENV")
	_ = v.BindEnv("server.port", "AIVEST_SERVER_PORT", "PORT")
	_ = v.BindEnv("cors.additional_origins", "AIVEST_CORS_ADDITIONAL_ORIGINS", "ADDITIONAL_CORS_ORIGINS")

	v.SetDefault("app.env", "development")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.grpc_addr", ":9090")
	v.SetDefault("server.static_dir", "../frontend/dist")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("cors.allowed_origins", defaultOrigins)
	v.SetDefault("cors.additional_origins", "")
	v.SetDefault("rate_limit.requests_per_second", 0)
	v.SetDefault("rate_limit.burst", 20)
	v.SetDefault("clients.strict_risk_profile", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.sampling", false)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)
	v.SetDefault("log.output_paths", []string{"stdout"})

	if !envOnly {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
