package configs

import (
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config struct
type Config struct {
	App        `mapstructure:"app"`
	Spotify    `mapstructure:"spotify"`
	Model      `mapstructure:"model"`
	Gemini     `mapstructure:"gemini"`
	LMStudio   `mapstructure:"lmstudio"`
	Session    `mapstructure:"session"`
	StateStore `mapstructure:"state_store"`
}

// App struct
type App struct {
	Debug        bool   `mapstructure:"debug"`
	Env          string `mapstructure:"env"`
	Port         string `mapstructure:"port" validate:"required"`
	HomeURL      string `mapstructure:"home_url" validate:"required"`
	RoastPageURL string `mapstructure:"roast_page_url" validate:"required"`
	CORSOrigins  string `mapstructure:"cors_origins"`
}

// Spotify struct
type Spotify struct {
	ClientID     string `mapstructure:"client_id" validate:"required"`
	ClientSecret string `mapstructure:"client_secret" validate:"required"`
	RedirectURI  string `mapstructure:"redirect_uri" validate:"required,url"`
	AuthURL      string `mapstructure:"auth_url" validate:"required,url"`
	TokenURL     string `mapstructure:"token_url" validate:"required,url"`
	APIBaseURL   string `mapstructure:"api_base_url" validate:"required,url"`
	Scopes       string `mapstructure:"scopes" validate:"required"`
	TimeRange    string `mapstructure:"time_range" validate:"omitempty,oneof=short_term medium_term long_term"`
	Timeout      int    `mapstructure:"timeout"` // seconds, per upstream call
}

// Model struct
type Model struct {
	Provider   string `mapstructure:"provider" validate:"omitempty,oneof=gemini lmstudio"`
	Timeout    int    `mapstructure:"timeout"` // seconds, per model call
	RoastCount int    `mapstructure:"roast_count" validate:"gte=0,lte=20"`
}

// Gemini struct
type Gemini struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// LMStudio struct
type LMStudio struct {
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
	Timeout int    `mapstructure:"timeout"`
}

// Session struct
type Session struct {
	StateTTL     int  `mapstructure:"state_ttl"` // seconds the OAuth nonce cookie lives
	CookieSecure bool `mapstructure:"cookie_secure"`
}

// StateStore struct
type StateStore struct {
	Driver   string `mapstructure:"driver" validate:"omitempty,oneof=memory redis"`
	RedisURL string `mapstructure:"redis_url" validate:"required_if=Driver redis"`
	Prefix   string `mapstructure:"prefix"`
}

var config Config

// InitViper func
func InitViper(path, env string) {
	getConfig(path, env)
	if env != "" {
		config.App.Env = env
	}
}

// GetViper func
func GetViper() *Config {
	return &config
}

func getConfig(path, env string) {
	viper.SetConfigName("config")
	viper.AddConfigPath(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}
	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		logrus.Infof("Config file has changed: %s", e.Name)
	})
	err = viper.Unmarshal(&config)
	if err != nil {
		logrus.Fatalln(err)
	}
}
