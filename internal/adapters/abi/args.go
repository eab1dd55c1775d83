package abi

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ConvertArgs converts command line strings into Go values packable as args
func ConvertArgs(args abi.Arguments, values []string) ([]interface{}, error) {
	if len(args) != len(values) {
		return nil, fmt.Errorf("expected %d arguments (%s), got %d", len(args), signature(args), len(values))
	}

	out := make([]interface{}, 0, len(values))
	for i, arg := range args {
		v, err := ConvertArg(arg.Type, values[i])
		if err != nil {
			name := arg.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return nil, fmt.Errorf("argument %s (%s): %w", name, arg.Type.String(), err)
		}
		out = append(out, v)
	}
	return out, nil
}

// ConvertArg converts a single string into the Go representation of typ
func ConvertArg(typ abi.Type, value string) (interface{}, error) {
	value = strings.TrimSpace(value)

	switch typ.T {
	case abi.AddressTy:
		if !common.IsHexAddress(value) {
			return nil, fmt.Errorf("invalid address %q", value)
		}
		return common.HexToAddress(value), nil

	case abi.BoolTy:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("invalid bool %q", value)
		}
		return b, nil

	case abi.StringTy:
		return value, nil

	case abi.UintTy, abi.IntTy:
		return convertInteger(typ, value)

	case abi.BytesTy:
		b, err := hexutil.Decode(value)
		if err != nil {
			return nil, fmt.Errorf("invalid bytes %q: %w", value, err)
		}
		return b, nil

	case abi.FixedBytesTy:
		return convertFixedBytes(typ, value)

	case abi.SliceTy, abi.ArrayTy:
		return convertList(typ, value)
	}

	return nil, fmt.Errorf("unsupported type %s", typ.String())
}

func convertInteger(typ abi.Type, value string) (interface{}, error) {
	n, ok := new(big.Int).SetString(value, 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", value)
	}
	if typ.T == abi.UintTy && n.Sign() < 0 {
		return nil, fmt.Errorf("negative value %s for %s", value, typ.String())
	}

	if typ.Size > 64 {
		lower, upper := integerBounds(typ)
		if n.Cmp(lower) < 0 || n.Cmp(upper) > 0 {
			return nil, fmt.Errorf("value %s overflows %s", value, typ.String())
		}
		return n, nil
	}

	// Pack expects the exact Go integer type for sizes up to 64 bits
	rt := typ.GetType()
	v := reflect.New(rt).Elem()
	if typ.T == abi.UintTy {
		if !n.IsUint64() || v.OverflowUint(n.Uint64()) {
			return nil, fmt.Errorf("value %s overflows %s", value, typ.String())
		}
		v.SetUint(n.Uint64())
	} else {
		if !n.IsInt64() || v.OverflowInt(n.Int64()) {
			return nil, fmt.Errorf("value %s overflows %s", value, typ.String())
		}
		v.SetInt(n.Int64())
	}
	return v.Interface(), nil
}

// integerBounds returns the inclusive range of an intN or uintN type
func integerBounds(typ abi.Type) (*big.Int, *big.Int) {
	one := big.NewInt(1)
	if typ.T == abi.UintTy {
		limit := new(big.Int).Lsh(one, uint(typ.Size))
		return new(big.Int), limit.Sub(limit, one)
	}
	half := new(big.Int).Lsh(one, uint(typ.Size-1))
	return new(big.Int).Neg(half), new(big.Int).Sub(half, one)
}

// convertFixedBytes accepts hex of the exact size, or a short string that is
// right-padded with zeros like ethers' encodeBytes32String.
func convertFixedBytes(typ abi.Type, value string) (interface{}, error) {
	var raw []byte
	if strings.HasPrefix(value, "0x") {
		b, err := hexutil.Decode(value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", typ.String(), value, err)
		}
		if len(b) != typ.Size {
			return nil, fmt.Errorf("%s needs %d bytes, got %d", typ.String(), typ.Size, len(b))
		}
		raw = b
	} else {
		if len(value) >= typ.Size {
			return nil, fmt.Errorf("string %q too long for %s", value, typ.String())
		}
		raw = []byte(value)
	}

	v := reflect.New(typ.GetType()).Elem()
	reflect.Copy(v, reflect.ValueOf(raw))
	return v.Interface(), nil
}

// convertList parses a JSON array of strings, e.g. ["0x1...", "0x2..."]
func convertList(typ abi.Type, value string) (interface{}, error) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		return nil, fmt.Errorf("expected JSON array for %s: %w", typ.String(), err)
	}
	if typ.T == abi.ArrayTy && len(items) != typ.Size {
		return nil, fmt.Errorf("%s needs %d elements, got %d", typ.String(), typ.Size, len(items))
	}

	var list reflect.Value
	if typ.T == abi.SliceTy {
		list = reflect.MakeSlice(typ.GetType(), len(items), len(items))
	} else {
		list = reflect.New(typ.GetType()).Elem()
	}

	for i, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			// numbers and bools may be written without quotes
			s = string(item)
		}
		v, err := ConvertArg(*typ.Elem, s)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		list.Index(i).Set(reflect.ValueOf(v))
	}
	return list.Interface(), nil
}

// Bytes32String encodes a short string as bytes32, right-padded with zeros
func Bytes32String(s string) ([32]byte, error) {
	var out [32]byte
	if len(s) > 31 {
		return out, fmt.Errorf("string %q too long for bytes32", s)
	}
	copy(out[:], s)
	return out, nil
}

func signature(args abi.Arguments) string {
	types := make([]string, 0, len(args))
	for _, a := range args {
		types = append(types, a.Type.String())
	}
	return strings.Join(types, ",")
}
