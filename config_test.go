package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInitConfig(t *testing.T) {
	path := writeConfig(t, `
http_address = ":9000"
read_timeout = "3s"
dbfile = "banner.db"
page_title = "Career Check"

[auth]
username = "ops"
password = "secret"

[social]
linkedin = "https://www.linkedin.com/company/ithriveai"
`)

	cfg, err := initConfig(path)
	if err != nil {
		t.Fatalf("initConfig: %v", err)
	}

	if cfg.HTTPAddr != ":9000" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.ReadTimeout != 3*time.Second {
		t.Errorf("ReadTimeout = %v", cfg.ReadTimeout)
	}
	if cfg.DBFile != "banner.db" {
		t.Errorf("DBFile = %q", cfg.DBFile)
	}
	if cfg.PageTitle != "Career Check" {
		t.Errorf("PageTitle = %q", cfg.PageTitle)
	}
	if cfg.Auth.Username != "ops" || cfg.Auth.Password != "secret" {
		t.Errorf("Auth = %+v", cfg.Auth)
	}
	if cfg.Social["linkedin"] == "" {
		t.Errorf("Social = %v", cfg.Social)
	}
}

func TestInitConfigDefaults(t *testing.T) {
	cfg, err := initConfig(writeConfig(t, `page_intro = "hello"`))
	if err != nil {
		t.Fatalf("initConfig: %v", err)
	}

	def := defaultConfig()
	if cfg.HTTPAddr != def.HTTPAddr {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, def.HTTPAddr)
	}
	if cfg.WriteTimeout != def.WriteTimeout {
		t.Errorf("WriteTimeout = %v, want %v", cfg.WriteTimeout, def.WriteTimeout)
	}
	if cfg.PageIntro != "hello" {
		t.Errorf("PageIntro = %q", cfg.PageIntro)
	}
	if cfg.Auth != def.Auth {
		t.Errorf("Auth = %+v, want defaults %+v", cfg.Auth, def.Auth)
	}
}

func TestInitConfigMissingFile(t *testing.T) {
	if _, err := initConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestInitApp(t *testing.T) {
	dir := t.TempDir()
	dbFile := filepath.Join(dir, "app.db")
	cfgFile := filepath.Join(dir, "config.toml")

	if err := initApp(dbFile, cfgFile); err != nil {
		t.Fatalf("initApp: %v", err)
	}

	cfg, err := initConfig(cfgFile)
	if err != nil {
		t.Fatalf("generated config does not load: %v", err)
	}
	if cfg.DBFile != dbFile {
		t.Errorf("DBFile = %q, want %q", cfg.DBFile, dbFile)
	}
	if cfg.ReadTimeout != defaultConfig().ReadTimeout {
		t.Errorf("ReadTimeout = %v", cfg.ReadTimeout)
	}

	raw, err := os.ReadFile(cfgFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "5s") || strings.Contains(string(raw), "5000000000") {
		t.Errorf("durations not written as readable strings:\n%s", raw)
	}

	db, err := newDB(dbFile)
	if err != nil {
		t.Fatalf("open generated db: %v", err)
	}
	defer db.Close()

	hits, err := (&HitDB{db}).GetHits(bannerName)
	if err != nil || hits != 0 {
		t.Errorf("GetHits = %d, %v", hits, err)
	}
}
