package abi

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/polymorpher/band-oracle-reader/internal/domain"
)

// CoerceConstructorArgs converts loosely typed values (strings, Go ints, ...) into the
// Go types go-ethereum's packer expects for each constructor input.
func CoerceConstructorArgs(contract string, parsed abi.ABI, values []any) ([]any, error) {
	inputs := parsed.Constructor.Inputs
	if len(inputs) != len(values) {
		return nil, domain.ArgumentCountErr{Contract: contract, Expected: len(inputs), Actual: len(values)}
	}

	coerced := make([]any, len(values))
	for i, input := range inputs {
		v, err := CoerceValue(input.Type, values[i])
		if err != nil {
			name := input.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return nil, fmt.Errorf("%w %s (%s): %v", domain.ErrInvalidArgument, name, input.Type.String(), err)
		}
		coerced[i] = v
	}
	return coerced, nil
}

// CoerceValue converts a single value to the Go representation of an ABI type
func CoerceValue(t abi.Type, value any) (any, error) {
	if value == nil {
		return nil, fmt.Errorf("value is nil")
	}

	// Already the right Go type; integers still go through the range check below
	if t.T != abi.UintTy && t.T != abi.IntTy && reflect.TypeOf(value) == t.GetType() {
		return value, nil
	}

	switch t.T {
	case abi.AddressTy:
		return toAddress(value)
	case abi.StringTy:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", value)
		}
		return s, nil
	case abi.BoolTy:
		return toBool(value)
	case abi.UintTy, abi.IntTy:
		n, err := toBigInt(value)
		if err != nil {
			return nil, err
		}
		return sizeInteger(t, n)
	case abi.BytesTy:
		return toBytes(value)
	case abi.FixedBytesTy:
		b, err := toBytes(value)
		if err != nil {
			return nil, err
		}
		if len(b) != t.Size {
			return nil, fmt.Errorf("expected %d bytes, got %d", t.Size, len(b))
		}
		arr := reflect.New(t.GetType()).Elem()
		reflect.Copy(arr, reflect.ValueOf(b))
		return arr.Interface(), nil
	default:
		return nil, fmt.Errorf("unsupported type %s for %T", t.String(), value)
	}
}

func toAddress(value any) (common.Address, error) {
	switch v := value.(type) {
	case common.Address:
		return v, nil
	case *common.Address:
		return *v, nil
	case string:
		if !common.IsHexAddress(v) {
			return common.Address{}, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, v)
		}
		return common.HexToAddress(v), nil
	default:
		return common.Address{}, fmt.Errorf("expected address, got %T", value)
	}
}

func toBool(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(v) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return false, fmt.Errorf("expected bool, got %v", value)
}

func toBytes(value any) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return hexutil.Decode(v)
	default:
		return nil, fmt.Errorf("expected hex string or []byte, got %T", value)
	}
}

func toBigInt(value any) (*big.Int, error) {
	switch v := value.(type) {
	case *big.Int:
		if v == nil {
			return nil, fmt.Errorf("value is nil")
		}
		return new(big.Int).Set(v), nil
	case big.Int:
		return new(big.Int).Set(&v), nil
	case int:
		return big.NewInt(int64(v)), nil
	case int8:
		return big.NewInt(int64(v)), nil
	case int16:
		return big.NewInt(int64(v)), nil
	case int32:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	case uint:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("expected integer, got %v", v)
		}
		n, _ := big.NewFloat(v).Int(nil)
		return n, nil
	case string:
		n, ok := new(big.Int).SetString(strings.TrimSpace(v), 0)
		if !ok {
			return nil, fmt.Errorf("expected integer, got %q", v)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("expected integer, got %T", value)
	}
}

// sizeInteger range-checks n against the ABI type and converts it to the Go type
// the packer wants: sized ints up to 64 bits, *big.Int above.
func sizeInteger(t abi.Type, n *big.Int) (any, error) {
	if t.T == abi.UintTy {
		if n.Sign() < 0 {
			return nil, fmt.Errorf("negative value %s for %s", n, t.String())
		}
		if n.BitLen() > t.Size {
			return nil, fmt.Errorf("value %s overflows %s", n, t.String())
		}
	} else {
		limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
		minimum := new(big.Int).Neg(limit)
		if n.Cmp(minimum) < 0 || n.Cmp(limit) >= 0 {
			return nil, fmt.Errorf("value %s overflows %s", n, t.String())
		}
	}

	switch t.GetType().Kind() {
	case reflect.Uint8:
		return uint8(n.Uint64()), nil
	case reflect.Uint16:
		return uint16(n.Uint64()), nil
	case reflect.Uint32:
		return uint32(n.Uint64()), nil
	case reflect.Uint64:
		return n.Uint64(), nil
	case reflect.Int8:
		return int8(n.Int64()), nil
	case reflect.Int16:
		return int16(n.Int64()), nil
	case reflect.Int32:
		return int32(n.Int64()), nil
	case reflect.Int64:
		return n.Int64(), nil
	default:
		return n, nil
	}
}
