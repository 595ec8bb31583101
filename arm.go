package picgeom

import (
	"fmt"
	"sort"
)

// ArmPosition identifies one of the four S-bend arms of a directional
// coupler. The constants define the canonical ordering of per-arm parameter
// sets.
type ArmPosition int

const (
	LowerLeft ArmPosition = iota
	UpperLeft
	LowerRight
	UpperRight
)

// armKeys are the mapping keys accepted by NormalizeArmParams, in canonical
// position order.
var armKeys = [4]string{"lower left", "upper left", "lower right", "upper right"}

func (p ArmPosition) String() string {
	if p < LowerLeft || p > UpperRight {
		return fmt.Sprintf("ArmPosition(%d)", int(p))
	}
	return armKeys[p]
}

// ArmParams holds one geometric parameter (a length or a height) for each of
// the four coupler arms, indexed by [ArmPosition].
type ArmParams [4]float64

// UniformArmParams broadcasts a single value to all four arms.
func UniformArmParams(v float64) ArmParams {
	return ArmParams{v, v, v, v}
}

// NormalizeArmParams converts the accepted per-arm parameter shapes into the
// canonical 4-element form. A scalar is broadcast to all four arms; a
// sequence must have exactly four elements in canonical position order; a
// mapping must carry exactly the keys "lower left", "upper left",
// "lower right", and "upper right", in any order. Anything else — including
// a mapping with a missing or unknown key — fails with an error wrapping
// [ErrInvalidArgument]; no value is ever silently defaulted.
//
// Sequence and mapping values may be any numeric type, which makes the
// function directly usable on the untyped values a YAML or JSON decoder
// produces.
func NormalizeArmParams(v any) (ArmParams, error) {
	switch v := v.(type) {
	case ArmParams:
		return v, nil
	case [4]float64:
		return ArmParams(v), nil
	case []float64:
		if len(v) != 4 {
			return ArmParams{}, fmt.Errorf("%w: arm parameter sequence must have 4 elements, got %d", ErrInvalidArgument, len(v))
		}
		return ArmParams{v[0], v[1], v[2], v[3]}, nil
	case []any:
		if len(v) != 4 {
			return ArmParams{}, fmt.Errorf("%w: arm parameter sequence must have 4 elements, got %d", ErrInvalidArgument, len(v))
		}
		var out ArmParams
		for i, e := range v {
			f, ok := toFloat(e)
			if !ok {
				return ArmParams{}, fmt.Errorf("%w: arm parameter %d is %T, not a number", ErrInvalidArgument, i, e)
			}
			out[i] = f
		}
		return out, nil
	case map[string]float64:
		m := make(map[string]any, len(v))
		for k, f := range v {
			m[k] = f
		}
		return armParamsFromMap(m)
	case map[string]any:
		return armParamsFromMap(v)
	default:
		if f, ok := toFloat(v); ok {
			return UniformArmParams(f), nil
		}
		return ArmParams{}, fmt.Errorf("%w: arm parameters must be a number, a 4-element sequence, or a mapping, got %T", ErrInvalidArgument, v)
	}
}

func armParamsFromMap(m map[string]any) (ArmParams, error) {
	var out ArmParams
	for i, key := range armKeys {
		e, ok := m[key]
		if !ok {
			return ArmParams{}, fmt.Errorf("%w: arm parameter mapping is missing key %q", ErrInvalidArgument, key)
		}
		f, ok := toFloat(e)
		if !ok {
			return ArmParams{}, fmt.Errorf("%w: arm parameter %q is %T, not a number", ErrInvalidArgument, key, e)
		}
		out[i] = f
	}
	if len(m) != len(armKeys) {
		extra := make([]string, 0, len(m))
		for k := range m {
			if k != armKeys[0] && k != armKeys[1] && k != armKeys[2] && k != armKeys[3] {
				extra = append(extra, k)
			}
		}
		sort.Strings(extra)
		return ArmParams{}, fmt.Errorf("%w: arm parameter mapping has unknown keys %q", ErrInvalidArgument, extra)
	}
	return out, nil
}

func toFloat(v any) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
