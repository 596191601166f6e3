package server_test

import (
	"testing"

	"todo-sync/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidStage(t *testing.T) {
	tests := []struct {
		name  string
		stage string
		want  bool
	}{
		{"Dev", server.StageDev, true},
		{"Staging", server.StageStaging, true},
		{"Prod", server.StageProd, true},
		{"Invalid", "qa", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Stage: tt.stage}
			assert.Equal(t, tt.want, c.IsValidStage())
		})
	}
}

func TestConfig_IsProduction(t *testing.T) {
	assert.True(t, server.Config{Stage: "prod"}.IsProduction())
	assert.True(t, server.Config{Stage: "PROD"}.IsProduction())
	assert.False(t, server.Config{Stage: "dev"}.IsProduction())
}
