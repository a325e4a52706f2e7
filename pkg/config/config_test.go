package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightreel/formgate/pkg/config"
)

type testConfig struct {
	Host string `env:"CFGTEST_HOST" envDefault:"localhost"`
	Port int    `env:"CFGTEST_PORT" envDefault:"2525"`
	Name string `env:"CFGTEST_NAME,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults and overrides", func(t *testing.T) {
		t.Setenv("CFGTEST_NAME", "formgate")
		t.Setenv("CFGTEST_PORT", "465")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 465, cfg.Port)
		assert.Equal(t, "formgate", cfg.Name)
	})

	t.Run("missing required variable", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}
