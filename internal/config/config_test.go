package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Port != "9999" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.CorpusDatabasePath != "corpus.db" {
		t.Errorf("CorpusDatabasePath = %q", cfg.CorpusDatabasePath)
	}
	if cfg.MaxOpenConns != 25 || cfg.MaxIdleConns != 5 {
		t.Errorf("pool = %d/%d", cfg.MaxOpenConns, cfg.MaxIdleConns)
	}
	if cfg.PipelineWorkers != 10 {
		t.Errorf("PipelineWorkers = %d", cfg.PipelineWorkers)
	}
	if cfg.ParserTimeout != 30*time.Second {
		t.Errorf("ParserTimeout = %v", cfg.ParserTimeout)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("PIPELINE_WORKERS", "4")
	t.Setenv("PARSER_TIMEOUT", "45s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.PipelineWorkers != 4 {
		t.Errorf("PipelineWorkers = %d", cfg.PipelineWorkers)
	}
	if cfg.ParserTimeout != 45*time.Second {
		t.Errorf("ParserTimeout = %v", cfg.ParserTimeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "корректная конфигурация", mutate: func(*Config) {}},
		{name: "пустой порт", mutate: func(c *Config) { c.Port = "" }, wantErr: true},
		{name: "порт вне диапазона", mutate: func(c *Config) { c.Port = "99999" }, wantErr: true},
		{name: "нечисловой порт", mutate: func(c *Config) { c.Port = "abc" }, wantErr: true},
		{name: "idle больше open", mutate: func(c *Config) { c.MaxIdleConns = 100 }, wantErr: true},
		{name: "ноль обработчиков", mutate: func(c *Config) { c.PipelineWorkers = 0 }, wantErr: true},
		{name: "неизвестный уровень логирования", mutate: func(c *Config) { c.LogLevel = "verbose" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Port:               "9999",
				CorpusDatabasePath: "corpus.db",
				MaxOpenConns:       25,
				MaxIdleConns:       5,
				ConnMaxLifetime:    5 * time.Minute,
				PipelineWorkers:    10,
				ParserTimeout:      30 * time.Second,
				MetadataTimeout:    10 * time.Second,
				LogLevel:           "INFO",
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("ожидалась ошибка")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}
