// Package config loads the CLI configuration from file and environment.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	BGA     BGAConfig    `yaml:"bga" mapstructure:"bga"`
	Data    DataConfig   `yaml:"data" mapstructure:"data"`
	Report  ReportConfig `yaml:"report" mapstructure:"report"`
	Session Session      `yaml:"session" mapstructure:"session"`
	Log     LogConfig    `yaml:"log" mapstructure:"log"`
}

// BGAConfig points at the upstream catalog page.
type BGAConfig struct {
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// DataConfig configures where raw catalog snapshots land.
type DataConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// ReportConfig configures the CSV output.
type ReportConfig struct {
	Output string `yaml:"output" mapstructure:"output"`
}

// Session holds the upstream session cookies. Each field binds to the
// exact cookie name in the environment; a missing value stays empty and
// is sent as an empty cookie rather than validated.
type Session struct {
	PHPSessID string `yaml:"phpsessid" mapstructure:"phpsessid"`
	SSOID     string `yaml:"sso_id" mapstructure:"sso_id"`
	SSOUser   string `yaml:"sso_user" mapstructure:"sso_user"`
	UserID    string `yaml:"user_id" mapstructure:"user_id"`
	UserIDT   string `yaml:"user_idt" mapstructure:"user_idt"`
	Token     string `yaml:"token" mapstructure:"token"`
	TokenT    string `yaml:"token_t" mapstructure:"token_t"`
	StripeMID string `yaml:"stripe_mid" mapstructure:"stripe_mid"`
}

// Cookies returns the session as upstream cookie name -> value pairs.
func (s Session) Cookies() map[string]string {
	return map[string]string{
		"PHPSESSID":               s.PHPSessID,
		"TournoiEnLigne_sso_id":   s.SSOID,
		"TournoiEnLigne_sso_user": s.SSOUser,
		"TournoiEnLigneid":        s.UserID,
		"TournoiEnLigneidt":       s.UserIDT,
		"TournoiEnLignetk":        s.Token,
		"TournoiEnLignetkt":       s.TokenT,
		"__stripe_mid":            s.StripeMID,
	}
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("BGA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Session cookies keep their upstream env names.
	_ = v.BindEnv("session.phpsessid", "PHPSESSID")
	_ = v.BindEnv("session.sso_id", "TournoiEnLigne_sso_id")
	_ = v.BindEnv("session.sso_user", "TournoiEnLigne_sso_user")
	_ = v.BindEnv("session.user_id", "TournoiEnLigneid")
	_ = v.BindEnv("session.user_idt", "TournoiEnLigneidt")
	_ = v.BindEnv("session.token", "TournoiEnLignetk")
	_ = v.BindEnv("session.token_t", "TournoiEnLignetkt")
	_ = v.BindEnv("session.stripe_mid", "__stripe_mid")

	// Defaults
	v.SetDefault("bga.base_url", "https://boardgamearena.com")
	v.SetDefault("data.dir", "data")
	v.SetDefault("report.output", "bga-tricktakers.csv")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
