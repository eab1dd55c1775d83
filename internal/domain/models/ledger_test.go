package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeploymentLedgerSetRecord(t *testing.T) {
	t.Run("last write wins per contract name", func(t *testing.T) {
		ledger := NewDeploymentLedger("mxc_testnet", "5167004")
		names := []string{"A", "B", "A", "C", "B", "A"}

		for i, name := range names {
			ledger.SetRecord(&ContractRecord{ContractName: name, ProxyAddress: fmt.Sprintf("0x%d", i)})
		}

		assert.Equal(t, []string{"A", "B", "C"}, ledger.Names())
		assert.Equal(t, "0x5", ledger.GetRecord("A").ProxyAddress)
		assert.Equal(t, "0x4", ledger.GetRecord("B").ProxyAddress)
		assert.Equal(t, "0x3", ledger.GetRecord("C").ProxyAddress)
	})

	t.Run("replace keeps position", func(t *testing.T) {
		ledger := NewDeploymentLedger("n", "1")
		ledger.SetRecord(&ContractRecord{ContractName: "A"})
		ledger.SetRecord(&ContractRecord{ContractName: "B"})
		ledger.SetRecord(&ContractRecord{ContractName: "A", ExpectedFingerprint: "v2"})

		require.Len(t, ledger.Contracts, 2)
		assert.Equal(t, "v2", ledger.Contracts[0].ExpectedFingerprint)
	})

	t.Run("absent record", func(t *testing.T) {
		assert.Nil(t, NewDeploymentLedger("n", "1").GetRecord("A"))
	})
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 123456789, time.FixedZone("CET", 3600))
	assert.Equal(t, "2024-05-06T06:08:09.123Z", FormatTime(ts))

	record := &ContractRecord{LastUpdated: FormatTime(ts)}
	assert.True(t, record.UpdatedAt().Equal(ts.Truncate(time.Millisecond)))
	assert.True(t, (&ContractRecord{LastUpdated: "yesterday"}).UpdatedAt().IsZero())
}
