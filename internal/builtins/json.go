package builtins

import (
	"math"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/anish1234567/jiaobenscript/internal/values"
)

// JSONEncode serializes v to a JSON string. Numbers, bools, strings,
// Lists, and Null are supported; a Func or Builtin is a JBError, per
// SPEC_FULL.md §3.
func JSONEncode(v values.Value) (values.Value, error) {
	raw, err := encodeRaw(v)
	if err != nil {
		return nil, err
	}
	return values.String{Value: raw}, nil
}

func encodeRaw(v values.Value) (string, error) {
	switch x := v.(type) {
	case values.Null:
		return "null", nil
	case values.Bool:
		return scalarRaw(x.Value)
	case values.Int:
		return scalarRaw(x.Value)
	case values.Float:
		return scalarRaw(x.Value)
	case values.String:
		return scalarRaw(x.Value)
	case *values.List:
		doc := "[]"
		var err error
		for i, item := range x.Items {
			itemRaw, encErr := encodeRaw(item)
			if encErr != nil {
				return "", encErr
			}
			doc, err = sjson.SetRaw(doc, itoa(i), itemRaw)
			if err != nil {
				return "", errf("json_encode: %v", err)
			}
		}
		return doc, nil
	default:
		return "", errf("cannot json_encode a %s", v.Kind())
	}
}

// scalarRaw leans on sjson's own Go-value marshaling for a single
// scalar, then lifts the resulting fragment back out with gjson, so a
// bare number/bool/string never needs its own hand-rolled JSON quoting.
func scalarRaw(goValue any) (string, error) {
	doc, err := sjson.Set(`{"v":null}`, "v", goValue)
	if err != nil {
		return "", errf("json_encode: %v", err)
	}
	return gjson.Get(doc, "v").Raw, nil
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

// JSONDecode parses text into a JBS value tree: JSON arrays become
// Lists, JSON objects become Lists of two-element [key, value] Lists
// (JBS has no map/object value, so this is the only lossless shape
// available), and scalars map directly.
func JSONDecode(text string) (values.Value, error) {
	if !gjson.Valid(text) {
		return nil, errf("json_decode: invalid JSON")
	}
	return decodeResult(gjson.Parse(text)), nil
}

func decodeResult(r gjson.Result) values.Value {
	switch r.Type {
	case gjson.Null:
		return values.Null{}
	case gjson.False:
		return values.Bool{Value: false}
	case gjson.True:
		return values.Bool{Value: true}
	case gjson.Number:
		if r.Num == math.Trunc(r.Num) && r.Num >= math.MinInt64 && r.Num <= math.MaxInt64 {
			return values.Int{Value: int64(r.Num)}
		}
		return values.Float{Value: r.Num}
	case gjson.String:
		return values.String{Value: r.Str}
	default: // gjson.JSON: array or object
		if r.IsArray() {
			var items []values.Value
			r.ForEach(func(_, v gjson.Result) bool {
				items = append(items, decodeResult(v))
				return true
			})
			return values.NewList(items)
		}
		var pairs []values.Value
		r.ForEach(func(k, v gjson.Result) bool {
			pairs = append(pairs, values.NewList([]values.Value{
				values.String{Value: k.String()},
				decodeResult(v),
			}))
			return true
		})
		return values.NewList(pairs)
	}
}
