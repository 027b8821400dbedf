package application

import (
	"context"
	"testing"
)

func TestLoadRuntimeConfig_Precedence(t *testing.T) {
	t.Setenv("DOWNTIMED_DATA_DIR", "/from/env")
	t.Setenv("DOWNTIMED_HEARTBEAT_INTERVAL", "60")
	t.Setenv("DOWNTIMED_API_ADDR", "")
	t.Setenv("DOWNTIMED_API_KEY", "")
	t.Setenv("DOWNTIMED_NO_HISTORY", "")

	t.Run("flags win over env", func(t *testing.T) {
		cfg := LoadRuntimeConfig("/from/flag", 30, true, false, ":9090")
		if cfg.DataDir != "/from/flag" {
			t.Errorf("expected data dir from flag, got %q", cfg.DataDir)
		}
		if cfg.HeartbeatInterval != 30 {
			t.Errorf("expected interval 30, got %d", cfg.HeartbeatInterval)
		}
		if cfg.APIAddr != ":9090" {
			t.Errorf("expected api addr from flag, got %q", cfg.APIAddr)
		}
	})

	t.Run("env fills missing flags", func(t *testing.T) {
		cfg := LoadRuntimeConfig("", 0, false, false, "")
		if cfg.DataDir != "/from/env" {
			t.Errorf("expected data dir from env, got %q", cfg.DataDir)
		}
		if cfg.HeartbeatInterval != 60 {
			t.Errorf("expected interval 60 from env, got %d", cfg.HeartbeatInterval)
		}
		if cfg.APIAddr != ":8080" {
			t.Errorf("expected default api addr, got %q", cfg.APIAddr)
		}
	})

	t.Run("explicit zero flag wins over env", func(t *testing.T) {
		cfg := LoadRuntimeConfig("", 0, true, false, "")
		if cfg.HeartbeatInterval != 0 {
			t.Errorf("expected explicit 0 to be kept, got %d", cfg.HeartbeatInterval)
		}
	})

	t.Run("bool env", func(t *testing.T) {
		t.Setenv("DOWNTIMED_NO_HISTORY", "true")
		cfg := LoadRuntimeConfig("", 0, false, false, "")
		if !cfg.NoHistory {
			t.Error("expected no-history from env")
		}
	})
}

func TestRuntimeConfig_Valid(t *testing.T) {
	tests := []struct {
		name         string
		dataDir      string
		interval     int
		wantProblems []string
	}{
		{
			name:     "valid",
			dataDir:  "/data",
			interval: 30,
		},
		{
			name:         "missing data dir",
			interval:     30,
			wantProblems: []string{"data-dir"},
		},
		{
			name:         "zero interval",
			dataDir:      "/data",
			wantProblems: []string{"heartbeat-interval"},
		},
		{
			name:         "negative interval",
			dataDir:      "/data",
			interval:     -5,
			wantProblems: []string{"heartbeat-interval"},
		},
		{
			name:         "everything missing",
			wantProblems: []string{"data-dir", "heartbeat-interval"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &RuntimeConfig{DataDir: tt.dataDir, HeartbeatInterval: tt.interval}
			problems := cfg.Valid(context.Background())

			if len(problems) != len(tt.wantProblems) {
				t.Fatalf("expected %d problems, got %d: %v", len(tt.wantProblems), len(problems), problems)
			}
			for _, field := range tt.wantProblems {
				if _, ok := problems[field]; !ok {
					t.Errorf("expected problem for field %q, got %v", field, problems)
				}
			}
		})
	}
}

func TestRuntimeConfig_Interval(t *testing.T) {
	cfg := &RuntimeConfig{HeartbeatInterval: 30}
	if got := cfg.Interval().Seconds(); got != 30 {
		t.Errorf("expected 30s, got %vs", got)
	}
}
