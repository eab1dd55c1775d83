package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintMatches(t *testing.T) {
	assert.True(t, Observed("v1").Matches("v1"))
	assert.False(t, Observed("v1").Matches("v2"))
	assert.True(t, Observed("").Matches(""))
	assert.False(t, Unknown().Matches(""))
	assert.False(t, Unknown().Matches("v1"))
	assert.Equal(t, "<unknown>", Unknown().String())
	assert.Equal(t, "", Unknown().Value())
}

func TestParseProxyKind(t *testing.T) {
	kind, err := ParseProxyKind("")
	assert.NoError(t, err)
	assert.Equal(t, ProxyKindTransparent, kind)

	kind, err = ParseProxyKind("uups")
	assert.NoError(t, err)
	assert.Equal(t, ProxyKindUUPS, kind)

	_, err = ParseProxyKind("beacon")
	assert.Error(t, err)
}
