package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// proxyEventsABI holds the events emitted by ERC-1967 proxies and initializers
const proxyEventsABI = `[
  {"type":"event","name":"Upgraded","anonymous":false,"inputs":[{"name":"implementation","type":"address","indexed":true}]},
  {"type":"event","name":"AdminChanged","anonymous":false,"inputs":[{"name":"previousAdmin","type":"address","indexed":false},{"name":"newAdmin","type":"address","indexed":false}]},
  {"type":"event","name":"Initialized","anonymous":false,"inputs":[{"name":"version","type":"uint64","indexed":false}]},
  {"type":"event","name":"OwnershipTransferred","anonymous":false,"inputs":[{"name":"previousOwner","type":"address","indexed":true},{"name":"newOwner","type":"address","indexed":true}]}
]`

var proxyABI = mustParseABI(proxyEventsABI)

func mustParseABI(def string) *abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(err)
	}
	return &parsed
}

// Event is a decoded receipt log
type Event struct {
	Name    string
	Address common.Address
	Fields  map[string]interface{}
}

// DecodeReceiptEvents decodes every log of receipt that matches an event of
// contractABI or of the standard proxy events. Unknown logs are skipped.
func DecodeReceiptEvents(contractABI *abi.ABI, receipt *types.Receipt) []Event {
	if receipt == nil {
		return nil
	}

	var events []Event
	for _, log := range receipt.Logs {
		if log == nil || len(log.Topics) == 0 {
			continue
		}

		event, ok := lookupEvent(contractABI, log.Topics[0])
		if !ok {
			continue
		}

		var indexed, nonIndexed abi.Arguments
		for _, input := range event.Inputs {
			if input.Indexed {
				indexed = append(indexed, input)
			} else {
				nonIndexed = append(nonIndexed, input)
			}
		}

		fields := make(map[string]interface{})
		if len(nonIndexed) > 0 && len(log.Data) > 0 {
			if err := nonIndexed.UnpackIntoMap(fields, log.Data); err != nil {
				continue
			}
		}
		if len(indexed) > 0 {
			if err := abi.ParseTopicsIntoMap(fields, indexed, log.Topics[1:]); err != nil {
				continue
			}
		}

		events = append(events, Event{
			Name:    event.Name,
			Address: log.Address,
			Fields:  fields,
		})
	}
	return events
}

// FilterEvents returns the events named name, case-insensitively
func FilterEvents(events []Event, name string) []Event {
	var out []Event
	for _, e := range events {
		if strings.EqualFold(e.Name, name) {
			out = append(out, e)
		}
	}
	return out
}

// EventNames lists event names in emission order
func EventNames(events []Event) []string {
	names := make([]string, 0, len(events))
	for _, e := range events {
		names = append(names, e.Name)
	}
	return names
}

func lookupEvent(contractABI *abi.ABI, topic common.Hash) (*abi.Event, bool) {
	for _, candidate := range []*abi.ABI{contractABI, proxyABI} {
		if candidate == nil {
			continue
		}
		for _, event := range candidate.Events {
			if event.ID == topic {
				return &event, true
			}
		}
	}
	return nil, false
}
