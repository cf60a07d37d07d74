package opds

import "strconv"

// The format permits three shorthand shapes, reduced to canonical form while
// parsing:
//
//   - singleton-or-sequence: a "list of T" field accepts either a sequence of
//     T or a bare T, which is wrapped as a one-element list.
//   - number-or-object: position-bearing entities accept a bare number in
//     place of an object; the number becomes the position.
//   - string-or-object: name-bearing entities accept a bare string in place
//     of an object; the string becomes the name.
//
// The reducers compose: a field like "collection" accepts a bare string, an
// object, or a sequence mixing either. Encoding is narrower on purpose:
// one-element lists always collapse to a bare element, and shorthand entities
// are always re-emitted in full object form.

// elemFunc parses one element of a flattened list.
type elemFunc[T any] func(d *decoder, path string, v any) (T, error)

// decodeFlattened applies the singleton-or-sequence reducer: a sequence
// parses element-wise, anything else parses as a single element and is
// wrapped.
func decodeFlattened[T any](d *decoder, path string, v any, elem elemFunc[T]) ([]T, error) {
	if arr, ok := v.([]any); ok {
		out := make([]T, 0, len(arr))
		for i, e := range arr {
			t, err := elem(d, path+"["+strconv.Itoa(i)+"]", e)
			if err != nil {
				return nil, err
			}
			out = append(out, t)
		}
		return out, nil
	}
	t, err := elem(d, path, v)
	if err != nil {
		return nil, err
	}
	return []T{t}, nil
}

// stringy wraps an object parser with the string-or-object reducer. A bare
// string constructs the entity via fromString with all other fields absent.
func stringy[T any](fromString func(string) T, obj elemFunc[T]) elemFunc[T] {
	return func(d *decoder, path string, v any) (T, error) {
		if s, ok := v.(string); ok {
			return fromString(s), nil
		}
		if _, ok := v.(map[string]any); ok {
			return obj(d, path, v)
		}
		var zero T
		return zero, errShape(path, "string or object", v)
	}
}

// numlike wraps an object parser with the number-or-object reducer. A bare
// non-negative number constructs the entity via fromPosition with all other
// fields absent.
func numlike[T any](fromPosition func(int) T, obj elemFunc[T]) elemFunc[T] {
	return func(d *decoder, path string, v any) (T, error) {
		if n, ok := asInt(v); ok {
			return fromPosition(n), nil
		}
		if _, ok := v.(map[string]any); ok {
			return obj(d, path, v)
		}
		var zero T
		return zero, errShape(path, "number or object", v)
	}
}
