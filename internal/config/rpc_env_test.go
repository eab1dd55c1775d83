package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectEnvVar(t *testing.T) {
	tests := []struct {
		raw    string
		name   string
		isPure bool
	}{
		{"${MXC_TESTNET_RPC_URL}", "MXC_TESTNET_RPC_URL", true},
		{"https://${HOST}/rpc", "", false},
		{"https://rpc.example.org", "", false},
		{"${1BAD}", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			name, ok := DetectEnvVar(tt.raw)
			assert.Equal(t, tt.isPure, ok)
			assert.Equal(t, tt.name, name)
		})
	}
}

func TestGenerateEnvVarName(t *testing.T) {
	assert.Equal(t, "MXC_TESTNET_RPC_URL", GenerateEnvVarName("mxc_testnet"))
	assert.Equal(t, "ARBITRUM_ONE_RPC_URL", GenerateEnvVarName("arbitrum-one"))
	assert.Equal(t, "LOCAL_DEV_RPC_URL", GenerateEnvVarName("local.dev"))
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("ZKD_TEST_HOST", "rpc.example.org")

	out, unset := expandEnv("https://${ZKD_TEST_HOST}/v1/${ZKD_TEST_MISSING_KEY}")
	assert.Equal(t, "https://rpc.example.org/v1/", out)
	assert.Equal(t, []string{"ZKD_TEST_MISSING_KEY"}, unset)

	out, unset = expandEnv("plain")
	assert.Equal(t, "plain", out)
	assert.Empty(t, unset)
}
