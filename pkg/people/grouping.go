package people

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Grouping maps normalized names to the normalized names grouped under them.
// Keys iterate in the order they were first seen.
type Grouping struct {
	keys   []string
	groups map[string][]string
}

func newGrouping(keys []string, groups map[string][]string) *Grouping {
	return &Grouping{keys: keys, groups: groups}
}

func (g *Grouping) Keys() []string {
	return slices.Clone(g.keys)
}

// Get returns the values grouped under key, or nil if key is absent.
func (g *Grouping) Get(key string) []string {
	return slices.Clone(g.groups[key])
}

// Len is the number of keys.
func (g *Grouping) Len() int {
	return len(g.keys)
}

// Count is the number of values across all keys.
func (g *Grouping) Count() int {
	total := 0
	for _, values := range g.groups {
		total += len(values)
	}
	return total
}

// Map returns an independent copy of the grouping as a plain map.
func (g *Grouping) Map() map[string][]string {
	m := make(map[string][]string, len(g.keys))
	for _, key := range g.keys {
		m[key] = slices.Clone(g.groups[key])
	}
	return m
}

// MarshalJSON writes a JSON object whose members follow key order.
func (g *Grouping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range g.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(g.groups[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
