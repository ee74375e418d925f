// Package delta implements the pure integer delta codec: a non-empty
// sequence is represented as its first value followed by successive
// differences, which compresses well under entropy coding when the
// differences have low magnitude.
package delta

// Encode returns [values[0], values[1]-values[0], ..., values[n]-values[n-1]].
// An empty (or nil) input returns an empty, non-nil slice. Encode never fails: it operates on arbitrary int64 sequences.
func Encode(values []int64) []int64 {
	if len(values) == 0 {
		return []int64{}
	}

	deltas := make([]int64, len(values))
	deltas[0] = values[0]
	for i := 1; i < len(values); i++ {
		deltas[i] = values[i] - values[i-1]
	}

	return deltas
}

// Decode inverts Encode: it reconstructs the original sequence by running
// a cumulative sum starting from deltas[0].
func Decode(deltas []int64) []int64 {
	if len(deltas) == 0 {
		return []int64{}
	}

	values := make([]int64, len(deltas))
	values[0] = deltas[0]
	for i := 1; i < len(deltas); i++ {
		values[i] = values[i-1] + deltas[i]
	}

	return values
}
