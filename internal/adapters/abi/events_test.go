package abi

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/mxc-foundation/zkdeploy/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeReceiptEvents(t *testing.T) {
	contractABI, err := ParseArtifactABI(&models.Artifact{ContractName: "SgxMinerToken", ABI: []byte(tokenABI)})
	require.NoError(t, err)

	proxy := common.HexToAddress("0x1111111111111111111111111111111111111111")
	impl := common.HexToAddress("0x2222222222222222222222222222222222222222")
	zkCenter := common.HexToAddress("0x000000000000000000000000000000000000a003")

	zkCenterSetData, err := contractABI.Events["ZkCenterSet"].Inputs.Pack(zkCenter)
	require.NoError(t, err)
	initializedData, err := proxyABI.Events["Initialized"].Inputs.Pack(uint64(1))
	require.NoError(t, err)

	receipt := &types.Receipt{
		Logs: []*types.Log{
			{
				Address: proxy,
				Topics:  []common.Hash{proxyABI.Events["Upgraded"].ID, common.BytesToHash(impl.Bytes())},
			},
			{
				Address: proxy,
				Topics:  []common.Hash{proxyABI.Events["Initialized"].ID},
				Data:    initializedData,
			},
			{
				Address: proxy,
				Topics:  []common.Hash{contractABI.Events["ZkCenterSet"].ID},
				Data:    zkCenterSetData,
			},
			{
				Address: proxy,
				Topics:  []common.Hash{common.HexToHash("0xdead")},
			},
			{Address: proxy},
		},
	}

	events := DecodeReceiptEvents(contractABI, receipt)
	require.Len(t, events, 3)
	assert.Equal(t, []string{"Upgraded", "Initialized", "ZkCenterSet"}, EventNames(events))
	assert.Equal(t, impl, events[0].Fields["implementation"])
	assert.Equal(t, uint64(1), events[1].Fields["version"])
	assert.Equal(t, zkCenter, events[2].Fields["zkCenter"])

	upgraded := FilterEvents(events, "upgraded")
	require.Len(t, upgraded, 1)
	assert.Equal(t, proxy, upgraded[0].Address)

	assert.Empty(t, FilterEvents(events, "Transfer"))
	assert.Nil(t, DecodeReceiptEvents(nil, nil))
}
