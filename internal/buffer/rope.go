package buffer

import (
	"math/bits"
	"strings"
	"unicode/utf8"
)

const (
	// maxLeaf is the largest chunk a leaf holds before it is split.
	maxLeaf = 512
	// rebalanceSlack is how much deeper than a perfectly balanced tree a rope
	// may grow before it is rebuilt.
	rebalanceSlack = 8
)

// node is a persistent rope node. Leaves hold text; internal nodes hold two
// children. Nodes are never mutated once built, so subtrees are shared freely.
type node struct {
	left, right *node
	text        string

	length   int // bytes in subtree
	newlines int // '\n' count in subtree
	depth    int // 0 for leaves
	leaves   int
}

func newLeaf(s string) *node {
	return &node{text: s, length: len(s), newlines: strings.Count(s, "\n"), leaves: 1}
}

func (n *node) isLeaf() bool { return n.left == nil && n.right == nil }

// join concatenates two subtrees, merging small leaves.
func join(l, r *node) *node {
	if l == nil || l.length == 0 {
		return r
	}
	if r == nil || r.length == 0 {
		return l
	}
	if l.isLeaf() && r.isLeaf() && l.length+r.length <= maxLeaf {
		return newLeaf(l.text + r.text)
	}
	return &node{
		left:     l,
		right:    r,
		length:   l.length + r.length,
		newlines: l.newlines + r.newlines,
		depth:    max(l.depth, r.depth) + 1,
		leaves:   l.leaves + r.leaves,
	}
}

// split returns subtrees holding [0,i) and [i,len).
func split(n *node, i int) (*node, *node) {
	if n == nil {
		return nil, nil
	}
	if i <= 0 {
		return nil, n
	}
	if i >= n.length {
		return n, nil
	}
	if n.isLeaf() {
		return newLeaf(n.text[:i]), newLeaf(n.text[i:])
	}
	if i < n.left.length {
		ll, lr := split(n.left, i)
		return ll, join(lr, n.right)
	}
	rl, rr := split(n.right, i-n.left.length)
	return join(n.left, rl), rr
}

// leafChunks splits s into leaf-sized pieces on UTF-8 boundaries.
func leafChunks(s string) []*node {
	var out []*node
	for len(s) > maxLeaf {
		cut := maxLeaf
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		if cut == 0 {
			cut = maxLeaf
		}
		out = append(out, newLeaf(s[:cut]))
		s = s[cut:]
	}
	if len(s) > 0 {
		out = append(out, newLeaf(s))
	}
	return out
}

// build creates a balanced tree over leaves.
func build(leaves []*node) *node {
	switch len(leaves) {
	case 0:
		return nil
	case 1:
		return leaves[0]
	}
	mid := len(leaves) / 2
	return join(build(leaves[:mid]), build(leaves[mid:]))
}

func fromString(s string) *node {
	return build(leafChunks(s))
}

// balanced rebuilds n when it has grown too deep for its leaf count.
func balanced(n *node) *node {
	if n == nil || n.depth <= bits.Len(uint(n.leaves))+rebalanceSlack {
		return n
	}
	var leaves []*node
	collectLeaves(n, &leaves)
	return build(leaves)
}

func collectLeaves(n *node, out *[]*node) {
	if n == nil {
		return
	}
	if n.isLeaf() {
		if n.length > 0 {
			*out = append(*out, n)
		}
		return
	}
	collectLeaves(n.left, out)
	collectLeaves(n.right, out)
}

func (n *node) appendRange(sb *strings.Builder, start, end int) {
	if n == nil || start >= end {
		return
	}
	if n.isLeaf() {
		sb.WriteString(n.text[start:end])
		return
	}
	ll := n.left.length
	if start < ll {
		n.left.appendRange(sb, start, min(end, ll))
	}
	if end > ll {
		n.right.appendRange(sb, max(start-ll, 0), end-ll)
	}
}

func (n *node) byteAt(i int) byte {
	for !n.isLeaf() {
		if i < n.left.length {
			n = n.left
		} else {
			i -= n.left.length
			n = n.right
		}
	}
	return n.text[i]
}

// newlinesBefore counts '\n' bytes in [0,i).
func (n *node) newlinesBefore(i int) int {
	count := 0
	for n != nil && i > 0 {
		if n.isLeaf() {
			return count + strings.Count(n.text[:min(i, n.length)], "\n")
		}
		if i <= n.left.length {
			n = n.left
			continue
		}
		count += n.left.newlines
		i -= n.left.length
		n = n.right
	}
	return count
}

// nthNewline returns the byte offset of the k-th '\n' (1-based).
// The caller guarantees 1 <= k <= n.newlines.
func (n *node) nthNewline(k int) int {
	offset := 0
	for !n.isLeaf() {
		if k <= n.left.newlines {
			n = n.left
			continue
		}
		k -= n.left.newlines
		offset += n.left.length
		n = n.right
	}
	idx := -1
	for ; k > 0; k-- {
		next := strings.IndexByte(n.text[idx+1:], '\n')
		idx += next + 1
	}
	return offset + idx
}
