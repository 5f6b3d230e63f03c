package tree

import (
	"encoding/binary"
	"fmt"
	"hash"
	"reflect"

	"github.com/minio/highwayhash"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// Fingerprint generates a structural hash of the tree rooted at n. Two trees
// with the same names, values, attribute lists and child order share a
// fingerprint.
func Fingerprint(n *Node) (uint64, error) {
	h, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	writeNode(h, n)
	return h.Sum64(), nil
}

func writeNode(h hash.Hash64, n *Node) {
	if n == nil {
		h.Write([]byte{0})
		return
	}
	writeString(h, n.Name)
	if n.Value != nil {
		fmt.Fprintf(h, "%v", n.Value)
	}
	writeLen(h, len(n.Attributes))
	for _, attr := range n.Attributes {
		writeNode(h, attr)
	}
	writeLen(h, len(n.Children))
	for _, child := range n.Children {
		writeNode(h, child)
	}
}

func writeString(h hash.Hash64, value string) {
	writeLen(h, len(value))
	h.Write([]byte(value))
}

func writeLen(h hash.Hash64, n int) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(n))
	h.Write(buf[:])
}

// Equal reports whether two node trees are structurally equivalent: same
// names, same values, same attributes and same children in the same order.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Name != b.Name || !reflect.DeepEqual(a.Value, b.Value) {
		return false
	}
	if len(a.Attributes) != len(b.Attributes) || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Attributes {
		if !Equal(a.Attributes[i], b.Attributes[i]) {
			return false
		}
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
