package main

import (
	"fmt"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	gotoml "github.com/pelletier/go-toml/v2"
)

type Config struct {
	HTTPAddr     string        `koanf:"http_address"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	DBFile       string        `koanf:"dbfile"`

	PageLogoURL string `koanf:"page_logo_url"`
	PageTitle   string `koanf:"page_title"`
	PageIntro   string `koanf:"page_intro"`

	StaticFileDir string `koanf:"static_files"`

	Auth CfgAuth `koanf:"auth"`

	Social map[string]string `koanf:"social"`
}

type CfgAuth struct {
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

func defaultConfig() Config {
	return Config{
		HTTPAddr:     ":8000",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		DBFile:       "app.db",
		PageTitle:    "Career AI Impact Analyzer",
		PageIntro:    "See how AI is changing your job, and what to do about it.",
		Auth: CfgAuth{
			Username: "admin",
			Password: "admin",
		},
		Social: map[string]string{},
	}
}

// configMap flattens cfg into koanf keys. Durations are spelled out ("5s")
// so the koanf duration hook parses them and generated files stay readable.
func configMap(cfg Config) map[string]interface{} {
	m := map[string]interface{}{
		"http_address":  cfg.HTTPAddr,
		"read_timeout":  cfg.ReadTimeout.String(),
		"write_timeout": cfg.WriteTimeout.String(),
		"dbfile":        cfg.DBFile,
		"page_logo_url": cfg.PageLogoURL,
		"page_title":    cfg.PageTitle,
		"page_intro":    cfg.PageIntro,
		"static_files":  cfg.StaticFileDir,
		"auth.username": cfg.Auth.Username,
		"auth.password": cfg.Auth.Password,
	}

	for name, url := range cfg.Social {
		m["social."+name] = url
	}

	return m
}

func initConfig(configFile string) (Config, error) {
	var (
		config Config
		k      = koanf.New(".")
	)

	if err := k.Load(confmap.Provider(configMap(defaultConfig()), "."), nil); err != nil {
		return config, fmt.Errorf("error loading defaults: %w", err)
	}

	if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
		return config, fmt.Errorf("error loading file: %w", err)
	}

	if err := k.Unmarshal("", &config); err != nil {
		return config, fmt.Errorf("error while unmarshalling config: %w", err)
	}

	return config, nil
}

// marshalConfig renders cfg as a TOML config file.
func marshalConfig(cfg Config) ([]byte, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(configMap(cfg), "."), nil); err != nil {
		return nil, err
	}

	return gotoml.Marshal(k.Raw())
}
