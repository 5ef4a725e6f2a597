package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosure(t *testing.T) {
	cfg := &Config{ClosureWeekday: "sunday"}
	day, err := cfg.Closure()
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, day)

	cfg.ClosureWeekday = "Wednesday"
	day, err = cfg.Closure()
	require.NoError(t, err)
	assert.Equal(t, time.Wednesday, day)

	cfg.ClosureWeekday = "someday"
	_, err = cfg.Closure()
	assert.Error(t, err)
}

func TestOrigins(t *testing.T) {
	cfg := &Config{}
	assert.Nil(t, cfg.Origins())

	cfg.AllowedOrigins = "https://sweetcrumb.example, https://www.sweetcrumb.example ,"
	assert.Equal(t,
		[]string{"https://sweetcrumb.example", "https://www.sweetcrumb.example"},
		cfg.Origins())
}

func TestMailConfigured(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.MailConfigured())

	cfg.SMTPHost = "smtp.example.com"
	cfg.SenderAddress = "no-reply@sweetcrumb.example"
	cfg.OwnerAddress = "owner@sweetcrumb.example"
	assert.True(t, cfg.MailConfigured())
}
