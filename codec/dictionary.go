package codec

import (
	"maps"
	"slices"

	"golang.org/x/exp/constraints"

	sliceencoding "github.com/wippyai/slice-encoding"
)

// Entry is one key/value pair of a dictionary.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// EntryDecoder composes key and value decoders into an entry decoder:
//
//	[key][value]
func EntryDecoder[K, V any, E sliceencoding.Encoding](key DecodeFunc[K, E], value DecodeFunc[V, E]) DecodeFunc[Entry[K, V], E] {
	return func(d *Decoder[E]) (Entry[K, V], error) {
		var ent Entry[K, V]
		var err error
		if ent.Key, err = key(d); err != nil {
			return ent, err
		}
		ent.Value, err = value(d)
		return ent, err
	}
}

// EntryEncoder composes key and value encoders into an entry encoder.
func EntryEncoder[K, V any, E sliceencoding.Encoding](key EncodeFunc[K, E], value EncodeFunc[V, E]) EncodeFunc[Entry[K, V], E] {
	return func(e *Encoder[E], ent Entry[K, V]) error {
		if err := key(e, ent.Key); err != nil {
			return err
		}
		return value(e, ent.Value)
	}
}

// OptionalEntryDecoder composes decoders for an entry whose value is
// optional. The presence flag is a full bool byte, not a packed bit:
//
//	[is_set][key][value if is_set]
func OptionalEntryDecoder[K, V any, E sliceencoding.Encoding](key DecodeFunc[K, E], value DecodeFunc[V, E]) DecodeFunc[Entry[K, *V], E] {
	return func(d *Decoder[E]) (Entry[K, *V], error) {
		var ent Entry[K, *V]
		set, err := DecodeBool(d)
		if err != nil {
			return ent, err
		}
		if ent.Key, err = key(d); err != nil {
			return ent, err
		}
		if !set {
			return ent, nil
		}
		if err := d.IncreaseAllocationTotal(sizeOf[V]()); err != nil {
			return ent, err
		}
		v, err := value(d)
		if err != nil {
			return ent, err
		}
		ent.Value = &v
		return ent, nil
	}
}

// OptionalEntryEncoder is the encode-side counterpart of OptionalEntryDecoder.
// A nil value is written as absent.
func OptionalEntryEncoder[K, V any, E sliceencoding.Encoding](key EncodeFunc[K, E], value EncodeFunc[V, E]) EncodeFunc[Entry[K, *V], E] {
	return func(e *Encoder[E], ent Entry[K, *V]) error {
		if err := EncodeBool(e, ent.Value != nil); err != nil {
			return err
		}
		if err := key(e, ent.Key); err != nil {
			return err
		}
		if ent.Value == nil {
			return nil
		}
		return value(e, *ent.Value)
	}
}

// DecodeMapWith decodes a dictionary into a map, decoding each entry with fn:
//
//	[size][entry]*size
//
// If a key repeats, the last entry wins.
func DecodeMapWith[K comparable, V any, E sliceencoding.Encoding](d *Decoder[E], fn DecodeFunc[Entry[K, V], E]) (map[K]V, error) {
	n, err := d.DecodeSize()
	if err != nil {
		return nil, err
	}
	if err := d.allocateElements(n, sizeOf[Entry[K, V]]()); err != nil {
		return nil, err
	}

	m := make(map[K]V, n)
	for range n {
		ent, err := fn(d)
		if err != nil {
			return nil, err
		}
		m[ent.Key] = ent.Value
	}
	return m, nil
}

// EncodeMapWith encodes m as a dictionary in map iteration order, encoding
// each entry with fn. Use EncodeSortedMapWith for deterministic output.
func EncodeMapWith[K comparable, V any, E sliceencoding.Encoding](e *Encoder[E], m map[K]V, fn EncodeFunc[Entry[K, V], E]) error {
	if err := e.EncodeSize(len(m)); err != nil {
		return err
	}
	for k, v := range m {
		if err := fn(e, Entry[K, V]{Key: k, Value: v}); err != nil {
			return err
		}
	}
	return nil
}

// EncodeSortedMapWith encodes m as a dictionary with its entries in
// ascending key order.
func EncodeSortedMapWith[K constraints.Ordered, V any, E sliceencoding.Encoding](e *Encoder[E], m map[K]V, fn EncodeFunc[Entry[K, V], E]) error {
	if err := e.EncodeSize(len(m)); err != nil {
		return err
	}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if err := fn(e, Entry[K, V]{Key: k, Value: m[k]}); err != nil {
			return err
		}
	}
	return nil
}

// DecodeEntriesWith decodes a dictionary into a slice of entries, keeping
// the order of the input. Repeated keys are kept as they are.
func DecodeEntriesWith[K, V any, E sliceencoding.Encoding](d *Decoder[E], fn DecodeFunc[Entry[K, V], E]) ([]Entry[K, V], error) {
	return DecodeSequence(d, fn)
}

// EncodeEntriesWith encodes entries as a dictionary in the given order.
func EncodeEntriesWith[K, V any, E sliceencoding.Encoding](e *Encoder[E], entries []Entry[K, V], fn EncodeFunc[Entry[K, V], E]) error {
	return EncodeSequence(e, entries, fn)
}

// DecodeMap decodes a dictionary<K, V> into a map.
func DecodeMap[K comparable, V any, E sliceencoding.Encoding](d *Decoder[E], key DecodeFunc[K, E], value DecodeFunc[V, E]) (map[K]V, error) {
	return DecodeMapWith(d, EntryDecoder(key, value))
}

// EncodeMap encodes m as a dictionary<K, V> in map iteration order.
func EncodeMap[K comparable, V any, E sliceencoding.Encoding](e *Encoder[E], m map[K]V, key EncodeFunc[K, E], value EncodeFunc[V, E]) error {
	return EncodeMapWith(e, m, EntryEncoder(key, value))
}

// EncodeSortedMap encodes m as a dictionary<K, V> in ascending key order.
func EncodeSortedMap[K constraints.Ordered, V any, E sliceencoding.Encoding](e *Encoder[E], m map[K]V, key EncodeFunc[K, E], value EncodeFunc[V, E]) error {
	return EncodeSortedMapWith(e, m, EntryEncoder(key, value))
}

// DecodeEntries decodes a dictionary<K, V> into entries in wire order.
func DecodeEntries[K, V any, E sliceencoding.Encoding](d *Decoder[E], key DecodeFunc[K, E], value DecodeFunc[V, E]) ([]Entry[K, V], error) {
	return DecodeEntriesWith(d, EntryDecoder(key, value))
}

// EncodeEntries encodes entries as a dictionary<K, V> in the given order.
func EncodeEntries[K, V any, E sliceencoding.Encoding](e *Encoder[E], entries []Entry[K, V], key EncodeFunc[K, E], value EncodeFunc[V, E]) error {
	return EncodeEntriesWith(e, entries, EntryEncoder(key, value))
}

// DecodeOptionalMap decodes a dictionary<K, V?> into a map. Absent values
// are stored as nil.
func DecodeOptionalMap[K comparable, V any, E sliceencoding.Encoding](d *Decoder[E], key DecodeFunc[K, E], value DecodeFunc[V, E]) (map[K]*V, error) {
	return DecodeMapWith(d, OptionalEntryDecoder(key, value))
}

// EncodeOptionalMap encodes m as a dictionary<K, V?> in map iteration order.
func EncodeOptionalMap[K comparable, V any, E sliceencoding.Encoding](e *Encoder[E], m map[K]*V, key EncodeFunc[K, E], value EncodeFunc[V, E]) error {
	return EncodeMapWith(e, m, OptionalEntryEncoder(key, value))
}

// EncodeSortedOptionalMap encodes m as a dictionary<K, V?> in ascending key
// order.
func EncodeSortedOptionalMap[K constraints.Ordered, V any, E sliceencoding.Encoding](e *Encoder[E], m map[K]*V, key EncodeFunc[K, E], value EncodeFunc[V, E]) error {
	return EncodeSortedMapWith(e, m, OptionalEntryEncoder(key, value))
}
