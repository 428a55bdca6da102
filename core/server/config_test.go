package server_test

import (
	"testing"
	"time"

	"s3dropbox/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_BodyLimit(t *testing.T) {
	tests := []struct {
		name string
		mb   int
		want int
	}{
		{"Configured", 16, 16 * 1024 * 1024},
		{"Zero falls back", 0, 4 * 1024 * 1024},
		{"Negative falls back", -1, 4 * 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{BodyLimitMB: tt.mb}
			assert.Equal(t, tt.want, c.BodyLimit())
		})
	}
}

func TestConfig_PresignMax(t *testing.T) {
	tests := []struct {
		name  string
		hours int
		want  time.Duration
	}{
		{"Configured", 24, 24 * time.Hour},
		{"Zero", 0, 168 * time.Hour},
		{"Above S3 limit", 500, 168 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{PresignMaxHours: tt.hours}
			assert.Equal(t, tt.want, c.PresignMax())
		})
	}
}
