package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<API REQUEST_DUMP="true">
    <CONTEXT>
        <PORT>9090</PORT>
        <HOST>127.0.0.1</HOST>
        <TIME_ZONE>Atlantic/Reykjavik</TIME_ZONE>
    </CONTEXT>
    <DB>
        <HOST>dbhost</HOST>
        <PORT>5432</PORT>
        <NAME>fornsaga</NAME>
        <SSL_MODE>disable</SSL_MODE>
        <USERNAME>app</USERNAME>
        <PASSWORD TYPE="env">FORNSAGA_DB_PASSWORD</PASSWORD>
    </DB>
    <REDIS>
        <ENABLED>true</ENABLED>
        <HOST>cachehost</HOST>
        <PORT>6379</PORT>
    </REDIS>
    <QUIZ>
        <MAP_TOLERANCE_DEGREES>2.5</MAP_TOLERANCE_DEGREES>
    </QUIZ>
</API>`

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.xml")
	if err := os.WriteFile(path, []byte(sampleXML), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if !cfg.RequestDump {
		t.Error("REQUEST_DUMP attribute not read")
	}
	if cfg.Context.Port != 9090 || cfg.Context.Host != "127.0.0.1" {
		t.Errorf("context = %+v", cfg.Context)
	}
	if cfg.DB.Password.Type != "env" || cfg.DB.Password.Value != "FORNSAGA_DB_PASSWORD" {
		t.Errorf("db password = %+v", cfg.DB.Password)
	}
	if !cfg.Redis.Enabled || cfg.Redis.Host != "cachehost" {
		t.Errorf("redis = %+v", cfg.Redis)
	}

	// Explicit value kept, omitted values defaulted.
	if cfg.Quiz.MapToleranceDegrees != 2.5 {
		t.Errorf("map tolerance = %v, want 2.5", cfg.Quiz.MapToleranceDegrees)
	}
	if cfg.Quiz.RandomQuizSize != 5 || cfg.Quiz.LeaderboardSize != 20 {
		t.Errorf("quiz defaults = %+v", cfg.Quiz)
	}
	if cfg.Pagination.PageSize != 25 {
		t.Errorf("page size = %d, want default 25", cfg.Pagination.PageSize)
	}

	if GetConfig() != cfg {
		t.Error("GetConfig should return the loaded instance")
	}
}
