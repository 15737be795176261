package observable

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

var anyType = reflect.TypeOf((*any)(nil)).Elem()

// Snapshot resolves every Observable found in v, at any depth, and returns a
// tree of plain values. []any and map[string]any keep their types, other
// slices and arrays become []any, other maps keep their key type with any
// values, structs become map[string]any of their exported fields. Nil
// Observables resolve to nil.
func Snapshot(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case Observable:
		// an unset *Publisher or *Subscriber field
		if rv := reflect.ValueOf(x); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil
		}
		return Snapshot(x.Value())
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = Snapshot(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = Snapshot(e)
		}
		return out
	}
	return snapshotValue(reflect.ValueOf(v))
}

func snapshotValue(rv reflect.Value) any {
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return Snapshot(rv.Elem().Interface())
	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		fallthrough
	case reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Snapshot(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		out := reflect.MakeMapWithSize(reflect.MapOf(rv.Type().Key(), anyType), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			e := Snapshot(iter.Value().Interface())
			ev := reflect.New(anyType).Elem()
			if e != nil {
				ev.Set(reflect.ValueOf(e))
			}
			out.SetMapIndex(iter.Key(), ev)
		}
		return out.Interface()
	case reflect.Struct:
		t := rv.Type()
		out := make(map[string]any, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			out[f.Name] = Snapshot(rv.Field(i).Interface())
		}
		return out
	default:
		return rv.Interface()
	}
}

// Fingerprint hashes the snapshot of v. Map keys print sorted, so equal
// snapshots give equal fingerprints.
func Fingerprint(v any) uint64 {
	d := xxhash.New()
	fmt.Fprintf(d, "%#v", Snapshot(v))
	return d.Sum64()
}
