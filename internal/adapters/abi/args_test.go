package abi

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mxc-foundation/zkdeploy/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustType(t *testing.T, s string) abi.Type {
	t.Helper()
	typ, err := abi.NewType(s, "", nil)
	require.NoError(t, err)
	return typ
}

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 0)
	require.True(t, ok, s)
	return n
}

func TestConvertArg_IntegerBounds(t *testing.T) {
	var (
		int256Min  = "-0x8" + strings.Repeat("0", 63)
		int256Max  = "0x7" + strings.Repeat("f", 63)
		uint256Max = "0x" + strings.Repeat("f", 64)
	)

	tests := []struct {
		typ     string
		in      string
		wantErr bool
	}{
		{typ: "int256", in: int256Min},
		{typ: "int256", in: int256Max},
		{typ: "int256", in: "-0x8" + strings.Repeat("0", 62) + "1", wantErr: true},
		{typ: "int256", in: "0x8" + strings.Repeat("0", 63), wantErr: true},
		{typ: "int128", in: "-0x8" + strings.Repeat("0", 31)},
		{typ: "int128", in: "0x8" + strings.Repeat("0", 31), wantErr: true},
		{typ: "uint256", in: uint256Max},
		{typ: "uint256", in: "0x1" + strings.Repeat("0", 64), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.typ+"/"+tt.in, func(t *testing.T) {
			got, err := ConvertArg(mustType(t, tt.typ), tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "overflows")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, mustBig(t, tt.in), got)

			// the converted value must also pack
			_, err = abi.Arguments{{Type: mustType(t, tt.typ)}}.Pack(got)
			assert.NoError(t, err)
		})
	}
}

func TestConvertArg(t *testing.T) {
	addr := "0x6a5c9E342d5FB5f5EF8a799f0cAAB2678C939b0B"

	tests := []struct {
		typ     string
		in      string
		want    interface{}
		wantErr string
	}{
		{typ: "address", in: addr, want: common.HexToAddress(addr)},
		{typ: "address", in: "0x123", wantErr: "invalid address"},
		{typ: "bool", in: "true", want: true},
		{typ: "bool", in: "yes", wantErr: "invalid bool"},
		{typ: "string", in: "ZkMiner", want: "ZkMiner"},
		{typ: "uint8", in: "255", want: uint8(255)},
		{typ: "uint8", in: "256", wantErr: "overflows"},
		{typ: "uint64", in: "0x10", want: uint64(16)},
		{typ: "int32", in: "-5", want: int32(-5)},
		{typ: "uint256", in: "1000000000000000000000", want: new(big.Int).Mul(big.NewInt(1e18), big.NewInt(1000))},
		{typ: "uint256", in: "-1", wantErr: "negative"},
		{typ: "uint256", in: "abc", wantErr: "invalid integer"},
		{typ: "bytes", in: "0xdeadbeef", want: []byte{0xde, 0xad, 0xbe, 0xef}},
		{typ: "bytes4", in: "0x01020304", want: [4]byte{1, 2, 3, 4}},
		{typ: "bytes4", in: "0x0102", wantErr: "needs 4 bytes"},
		{typ: "bytes32", in: "staking", want: [32]byte{'s', 't', 'a', 'k', 'i', 'n', 'g'}},
		{typ: "address[]", in: `["` + addr + `"]`, want: []common.Address{common.HexToAddress(addr)}},
		{typ: "uint256[2]", in: `[1, "2"]`, want: [2]*big.Int{big.NewInt(1), big.NewInt(2)}},
		{typ: "uint256[2]", in: `[1]`, wantErr: "needs 2 elements"},
	}

	for _, tt := range tests {
		t.Run(tt.typ+"/"+tt.in, func(t *testing.T) {
			got, err := ConvertArg(mustType(t, tt.typ), tt.in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

const tokenABI = `[
  {"type":"function","name":"initialize","inputs":[{"name":"name_","type":"string"},{"name":"symbol_","type":"string"}],"outputs":[],"stateMutability":"nonpayable"},
  {"type":"function","name":"setZkCenter","inputs":[{"name":"zkCenter","type":"address"}],"outputs":[],"stateMutability":"nonpayable"},
  {"type":"event","name":"ZkCenterSet","anonymous":false,"inputs":[{"name":"zkCenter","type":"address","indexed":false}]}
]`

func TestPackInitializer(t *testing.T) {
	contractABI, err := ParseArtifactABI(&models.Artifact{ContractName: "SgxMinerToken", ABI: []byte(tokenABI)})
	require.NoError(t, err)

	data, err := PackInitializer(contractABI, []string{"SgxMinerToken", "ZkMiner"})
	require.NoError(t, err)
	assert.Equal(t, contractABI.Methods["initialize"].ID, data[:4])

	_, err = PackInitializer(contractABI, []string{"only-one"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 2 arguments (string,string), got 1")
}

func TestPackInitializer_NoInitializer(t *testing.T) {
	contractABI, err := ParseArtifactABI(&models.Artifact{ContractName: "Plain", ABI: []byte(`[]`)})
	require.NoError(t, err)

	data, err := PackInitializer(contractABI, nil)
	require.NoError(t, err)
	assert.Empty(t, data)

	_, err = PackInitializer(contractABI, []string{"x"})
	assert.Error(t, err)
}

func TestPackMethod(t *testing.T) {
	contractABI, err := ParseArtifactABI(&models.Artifact{ContractName: "SgxMinerToken", ABI: []byte(tokenABI)})
	require.NoError(t, err)

	data, err := PackMethod(contractABI, "setZkCenter", []string{"0x000000000000000000000000000000000000a003"})
	require.NoError(t, err)
	assert.Len(t, data, 4+32)

	_, err = PackMethod(contractABI, "setController", nil)
	assert.ErrorContains(t, err, "not found")
}

func TestBytes32String(t *testing.T) {
	b, err := Bytes32String("zkcenter")
	require.NoError(t, err)
	assert.Equal(t, byte('z'), b[0])
	assert.Equal(t, byte(0), b[8])

	_, err = Bytes32String("this string is definitely longer than 31 bytes")
	assert.Error(t, err)
}
