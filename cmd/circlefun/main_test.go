package main

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/circlefun/internal/config"
	"github.com/san-kum/circlefun/internal/engine"
)

func TestParseVec(t *testing.T) {
	tests := []struct {
		in      string
		wantNil bool
		wantErr bool
		x, y    float64
	}{
		{in: "", wantNil: true},
		{in: "10,20", x: 10, y: 20},
		{in: " 1.5 , -2 ", x: 1.5, y: -2},
		{in: "1", wantErr: true},
		{in: "a,2", wantErr: true},
		{in: "1,2,3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := parseVec(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if (v == nil) != tt.wantNil {
				t.Fatalf("nil = %v, want %v", v == nil, tt.wantNil)
			}
			if v != nil && (v.X != tt.x || v.Y != tt.y) {
				t.Errorf("expected (%f,%f), got %v", tt.x, tt.y, *v)
			}
		})
	}
}

func TestScript(t *testing.T) {
	cfg := config.DefaultConfig()
	dt, duration = 0.1, 2

	attractAt, repelAt = "", "5,5"
	s, err := script(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Repel || s.Attract || s.Mouse == nil || s.StartTime != cfg.StartTime {
		t.Errorf("unexpected script %+v", s)
	}

	attractAt, repelAt = "1,1", "2,2"
	if _, err := script(cfg); err == nil {
		t.Error("expected error for two pointers")
	}
	attractAt, repelAt = "", ""
}

func TestScript_RejectsBadTiming(t *testing.T) {
	defer func() { dt, duration = 0.016, 30 }()
	cfg := config.DefaultConfig()

	tests := []struct {
		name         string
		dt, duration float64
	}{
		{"zero dt", 0, 30},
		{"negative dt", -0.1, 30},
		{"negative time", 0.016, -1},
		{"nan dt", math.NaN(), 30},
		{"subnormal dt", 5e-324, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt, duration = tt.dt, tt.duration
			s, err := script(cfg)
			if !errors.Is(err, engine.ErrInvalidScript) {
				t.Fatalf("expected ErrInvalidScript, got %v", err)
			}
			if s.Steps() != 0 {
				t.Errorf("steps = %d, want 0", s.Steps())
			}
		})
	}
}
