package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

// Duration accepts either a duration string ("24h", "50s") or a plain
// integer nanosecond count in the yaml files.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var ns int64
	if err := unmarshal(&ns); err != nil {
		return err
	}
	*d = Duration(ns)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type Public struct {
	Port                   int      `yaml:"port"`
	JwtTTL                 Duration `yaml:"jwt_ttl"`
	VerificationCodeLen    int      `yaml:"verification_code_len"`
	VerificationCodeTTL    Duration `yaml:"verification_code_ttl"`
	PromotionSweepInterval Duration `yaml:"promotion_sweep_interval"`
	PromotionDuration      Duration `yaml:"promotion_duration"`
	LogLevel               string   `yaml:"log_level"`
	LogJSON                bool     `yaml:"log_json"`
	AuthRatePerSecond      float64  `yaml:"auth_rate_per_second"`
	AuthRateBurst          float64  `yaml:"auth_rate_burst"`
	AuthRateIdleTTL        Duration `yaml:"auth_rate_idle_ttl"`
	IsHTTPS                bool     `yaml:"is_https"`
}

type Private struct {
	Pg      Pg      `yaml:"pg"`
	JwtKey  string  `yaml:"jwt_key"`
	Mailgun Mailgun `yaml:"mailgun"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Mailgun struct {
	ApiKey    string `yaml:"api_key"`
	Domain    string `yaml:"domain"`
	FromEmail string `yaml:"from_email"`
	Timeout   int    `yaml:"timeout"` // seconds
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return c.Public.JwtTTL.Std()
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

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	public.applyDefaults()

	return &Config{public, private}
}

func (p *Public) applyDefaults() {
	if p.Port == 0 {
		p.Port = 8080
	}
	if p.JwtTTL == 0 {
		p.JwtTTL = Duration(24 * time.Hour)
	}
	if p.VerificationCodeLen == 0 {
		p.VerificationCodeLen = 8
	}
	if p.VerificationCodeTTL == 0 {
		p.VerificationCodeTTL = Duration(24 * time.Hour)
	}
	if p.PromotionSweepInterval == 0 {
		p.PromotionSweepInterval = Duration(50 * time.Second)
	}
	if p.PromotionDuration == 0 {
		p.PromotionDuration = Duration(7 * 24 * time.Hour)
	}
	if p.LogLevel == "" {
		p.LogLevel = "info"
	}
	if p.AuthRatePerSecond == 0 {
		p.AuthRatePerSecond = 0.5
	}
	if p.AuthRateBurst == 0 {
		p.AuthRateBurst = 5
	}
	if p.AuthRateIdleTTL == 0 {
		p.AuthRateIdleTTL = Duration(10 * time.Minute)
	}
}
