package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JBorrsad/odoonto-mobile/pkg/auth"
)

func TestRunHashPassword(t *testing.T) {
	var out bytes.Buffer
	err := runHashPassword([]string{"recepcion"}, strings.NewReader("sonrisa2025\n"), &out)
	require.NoError(t, err)

	login, hash, ok := strings.Cut(strings.TrimSpace(out.String()), ":")
	require.True(t, ok)
	assert.Equal(t, "recepcion", login)

	valid, err := auth.VerifyPassword("sonrisa2025", hash)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestRunHashPasswordErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		input string
	}{
		{"no login", nil, "x\n"},
		{"login with separator", []string{"a:b"}, "x\n"},
		{"empty password", []string{"recepcion"}, "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := runHashPassword(tt.args, strings.NewReader(tt.input), &out)
			assert.Error(t, err)
			assert.Empty(t, out.String())
		})
	}
}
