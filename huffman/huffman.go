// Package huffman implements the canonical Huffman codec shared by every
// strategy: a min-heap merge over token-key frequencies builds a prefix
// code, which is then used to bit-pack (or unpack) a token stream.
//
// The persisted artifact is the reverse map (bit-string -> token key); the
// forward map (token key -> bit-string) is derived locally at encode time
// and never serialized, matching the container's metadata layout.
package huffman

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/honganasu06/ifc1/bitio"
	"github.com/honganasu06/ifc1/errs"
)

// node is a Huffman tree node: a leaf carries a key, an internal node
// carries left/right children. seq records heap-insertion order so that
// frequency ties resolve deterministically.
type node struct {
	key         string
	freq        int
	left, right *node
	seq         int
}

func (n *node) isLeaf() bool { return n.left == nil && n.right == nil }

// nodeHeap is a container/heap min-priority-queue ordered by frequency,
// breaking ties by insertion order (seq).
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)   { *h = append(*h, x.(*node)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Codec builds, and then applies, a canonical Huffman codebook over a
// stream of token keys. The compress orchestrator creates one Codec per
// compress call; strategies do not hold a Codec, and decoding uses the
// package-level Decode over the persisted codebook.
type Codec struct {
	forward    map[string]string // token key -> bit-string
	reverse    map[string]string // bit-string -> token key
	tokenCount int
}

// New creates an empty, unbuilt Codec.
func New() *Codec {
	return &Codec{}
}

// LoadCodebook creates a Codec ready for decoding from a persisted reverse
// map (as read from IFC1 metadata). The forward map is not populated; a
// loaded Codec cannot Encode.
func LoadCodebook(reverse map[string]string) *Codec {
	return &Codec{reverse: reverse}
}

// Build counts the frequency of each key in keys and constructs the
// canonical Huffman codebook. Keys are pushed onto the heap in
// deterministic (sorted) order so that the resulting codebook is
// reproducible across runs of this implementation for identical input.
//
// A single distinct key collapses to the degenerate code "0". An empty
// keys slice produces an empty codebook.
func (c *Codec) Build(keys []string) error {
	freq := make(map[string]int)
	for _, k := range keys {
		freq[k]++
	}
	c.tokenCount = len(keys)

	c.forward = make(map[string]string, len(freq))
	c.reverse = make(map[string]string, len(freq))

	if len(freq) == 0 {
		return nil
	}

	sortedKeys := make([]string, 0, len(freq))
	for k := range freq {
		sortedKeys = append(sortedKeys, k)
	}
	sort.Strings(sortedKeys)

	h := make(nodeHeap, 0, len(sortedKeys))
	seq := 0
	for _, k := range sortedKeys {
		h = append(h, &node{key: k, freq: freq[k], seq: seq})
		seq++
	}
	heap.Init(&h)

	if h.Len() == 1 {
		only := h[0]
		c.forward[only.key] = "0"
		c.reverse["0"] = only.key

		return nil
	}

	for h.Len() > 1 {
		a := heap.Pop(&h).(*node)
		b := heap.Pop(&h).(*node)
		merged := &node{freq: a.freq + b.freq, left: a, right: b, seq: seq}
		seq++
		heap.Push(&h, merged)
	}

	root := h[0]
	c.assignCodes(root, "")

	return nil
}

func (c *Codec) assignCodes(n *node, code string) {
	if n == nil {
		return
	}
	if n.isLeaf() {
		c.forward[n.key] = code
		c.reverse[code] = n.key
		return
	}
	c.assignCodes(n.left, code+"0")
	c.assignCodes(n.right, code+"1")
}

// Reverse returns the bit-string -> token key mapping intended for
// persistence in IFC1 metadata.
func (c *Codec) Reverse() map[string]string {
	return c.reverse
}

// TokenCount returns the number of tokens Build was given.
func (c *Codec) TokenCount() int {
	return c.tokenCount
}

// Encode writes each key's code in turn to w. Encode requires a codebook
// built by Build in this process; it returns errs.ErrUnknownToken if a key
// was not present during Build (the two-pass streaming callers must
// guarantee pass 1 and pass 2 produce the same key multiset).
func (c *Codec) Encode(keys []string, w *bitio.Writer) error {
	if c.forward == nil {
		return errs.ErrEmptyCodebook
	}

	for _, k := range keys {
		code, ok := c.forward[k]
		if !ok {
			return fmt.Errorf("%w: %q", errs.ErrUnknownToken, k)
		}
		w.WriteString(code)
	}

	return nil
}

// Decode reads bits from r, matching the running code against codebook
// (bit-string -> key) and emitting a key whenever a match is found. It
// stops after limit tokens have been emitted or at end-of-stream,
// whichever comes first.
//
// If end-of-stream is reached before limit tokens have been emitted, the
// partial running code is discarded and errs.ErrMalformedTokenStream is
// returned together with whatever keys were successfully decoded.
func Decode(r *bitio.Reader, codebook map[string]string, limit int) ([]string, error) {
	decoded := make([]string, 0, limit)
	current := make([]byte, 0, 16)

	for len(decoded) < limit {
		bit, err := r.ReadBit()
		if err != nil {
			return decoded, fmt.Errorf("%w: %v", errs.ErrMalformedTokenStream, err)
		}

		if bit == 1 {
			current = append(current, '1')
		} else {
			current = append(current, '0')
		}

		if key, ok := codebook[string(current)]; ok {
			decoded = append(decoded, key)
			current = current[:0]
		}
	}

	return decoded, nil
}
