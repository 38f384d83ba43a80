// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:    App{TokenSignKey: "sign"},
		Server: Server{HTTPAddress: "localhost:8080"},
	}
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := &configBuilder{err: errors.New("boom")}

	cfg, err := b.build()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "boom")
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := &configBuilder{configs: []*StructuredConfig{
		validConfig(),
		{Server: Server{HTTPAddress: "localhost:9090"}},
	}}

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := &configBuilder{configs: []*StructuredConfig{validConfig()}}

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultDecryptConcurrency, cfg.Workers.DecryptConcurrency)
}

func TestBuild_Invalid(t *testing.T) {
	b := &configBuilder{configs: []*StructuredConfig{{}}}

	cfg, err := b.build()

	require.ErrorIs(t, err, ErrInvalidServerConfigs)
	assert.Nil(t, cfg)
}

func TestBuilder_EnvFlagsJSON(t *testing.T) {
	jsonPath := writeJSONFile(t, `{"server": {"request_timeout": "7s"}, "storage": {"db": {"dsn": "memory"}}}`)
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY": "env-sign",
		"SERVER_ADDRESS":     "localhost:8080",
		"CONFIG":             jsonPath,
	})

	b := newConfigBuilder()
	b.args = []string{"-a", "localhost:9999"}

	cfg, err := b.withEnv().withFlags().withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, "env-sign", cfg.App.TokenSignKey)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "memory", cfg.Storage.DB.DSN)
}

func TestBuilder_MissingJSONFile(t *testing.T) {
	setEnvVars(t, map[string]string{"CONFIG": "/nonexistent/vault.json"})

	b := newConfigBuilder()
	b.args = nil

	_, err := b.withEnv().withFlags().withJSON().build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}
