// Package dictcodec implements the dictionary-encoding bijection shared by
// the JSON and CSV strategies: arbitrary string values are mapped to small
// integer ids, assigned in first-insertion order starting at 1.
package dictcodec

import (
	"sort"
	"strconv"
)

// Codec is an ordered value<->id bijection. Create one with New or
// FromDict; the zero value has no maps and is not ready to use.
// A Codec is owned by a single strategy instance for the lifetime of one
// compress or decompress call; it is not safe for concurrent use.
type Codec struct {
	forward map[string]int
	reverse map[int]string
	nextID  int
}

// New creates an empty Codec whose first assigned id is 1.
func New() *Codec {
	return &Codec{
		forward: make(map[string]int),
		reverse: make(map[int]string),
		nextID:  1,
	}
}

// GetID returns the id for value, assigning the next id on first sight.
// Repeated calls with the same value are idempotent.
func (c *Codec) GetID(value string) int {
	if id, ok := c.forward[value]; ok {
		return id
	}

	id := c.nextID
	c.nextID++
	c.forward[value] = id
	c.reverse[id] = value

	return id
}

// GetValue returns the value for id and whether it was found.
func (c *Codec) GetValue(id int) (string, bool) {
	v, ok := c.reverse[id]
	return v, ok
}

// ToDict returns the id->value mapping serialized as string-form ids,
// ready for embedding in IFC1 metadata JSON (whose keys are always
// strings).
func (c *Codec) ToDict() map[string]string {
	out := make(map[string]string, len(c.reverse))
	for id, v := range c.reverse {
		out[strconv.Itoa(id)] = v
	}

	return out
}

// FromDict restores a Codec from a previously serialized ToDict mapping,
// parsing string-form ids back to integers and resetting nextID to
// max(id)+1 (1 if the mapping is empty).
func FromDict(data map[string]string) (*Codec, error) {
	c := New()
	if len(data) == 0 {
		return c, nil
	}

	ids := make([]int, 0, len(data))
	for k := range data {
		id, err := strconv.Atoi(k)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		v := data[strconv.Itoa(id)]
		c.reverse[id] = v
		c.forward[v] = id
	}
	c.nextID = ids[len(ids)-1] + 1

	return c, nil
}

// Len returns the number of distinct values currently tracked.
func (c *Codec) Len() int {
	return len(c.reverse)
}
