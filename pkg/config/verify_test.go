package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(t *testing.T) *Config {
	t.Helper()
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			mutate:  func(cfg *Config) {},
			wantErr: false,
		},
		{
			name: "missing server listen",
			mutate: func(cfg *Config) {
				cfg.Server.Listen = ""
			},
			wantErr: true,
			errMsg:  "server.listen is required",
		},
		{
			name: "extraction enabled without timeout",
			mutate: func(cfg *Config) {
				cfg.Extraction.Enabled = true
				cfg.Extraction.Timeout = 0
			},
			wantErr: true,
			errMsg:  "extraction.timeout is required when extraction is enabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig(t)
			tt.mutate(cfg)
			err := VerifyAgainstEmbeddedSchema(cfg)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid defaults",
			mutate:  func(cfg *Config) {},
			wantErr: false,
		},
		{
			name: "missing detect batch size",
			mutate: func(cfg *Config) {
				cfg.Detect.BatchSize = 0
			},
			wantErr: true,
			errMsg:  "detect.batch_size is required",
		},
		{
			name: "missing min cluster size",
			mutate: func(cfg *Config) {
				cfg.Detect.Cluster.MinClusterSize = 0
			},
			wantErr: true,
			errMsg:  "detect.cluster.min_cluster_size is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig(t)
			tt.mutate(cfg)
			err := validateRequiredFields(cfg)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	// verify schema can be marshaled to JSON
	data, err := schema.MarshalJSON()
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	// verify it contains expected fields
	schemaStr := string(data)
	assert.Contains(t, schemaStr, "Config")
	assert.Contains(t, schemaStr, "server")
	assert.Contains(t, schemaStr, "detect")
}
