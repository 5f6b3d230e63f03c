package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	build := func() *Node {
		root := NewNode("config")
		root.AddAttribute(NewValueNode("env", "prod"))
		root.AddChild(NewValueNode("host", "db1"))
		root.AddChild(NewValueNode("port", "5432"))
		return root
	}

	base, err := Fingerprint(build())
	require.NoError(t, err)

	t.Run("stable for equal trees", func(t *testing.T) {
		other, err := Fingerprint(build())
		require.NoError(t, err)
		assert.Equal(t, base, other)
	})

	t.Run("value change", func(t *testing.T) {
		changed := build()
		changed.Children[0].Value = "db2"
		other, err := Fingerprint(changed)
		require.NoError(t, err)
		assert.NotEqual(t, base, other)
	})

	t.Run("child order change", func(t *testing.T) {
		changed := build()
		changed.Children[0], changed.Children[1] = changed.Children[1], changed.Children[0]
		other, err := Fingerprint(changed)
		require.NoError(t, err)
		assert.NotEqual(t, base, other)
	})

	t.Run("attribute vs child", func(t *testing.T) {
		asChild := NewNode("config")
		asChild.AddChild(NewValueNode("env", "prod"))
		asAttr := NewNode("config")
		asAttr.AddAttribute(NewValueNode("env", "prod"))
		childHash, err := Fingerprint(asChild)
		require.NoError(t, err)
		attrHash, err := Fingerprint(asAttr)
		require.NoError(t, err)
		assert.NotEqual(t, childHash, attrHash)
	})
}

func TestEqual(t *testing.T) {
	a := NewValueNode("config", "v1")
	a.AddChild(NewValueNode("host", "db1"))
	b := a.Clone()

	assert.True(t, Equal(a, b))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(a, nil))
	assert.False(t, Equal(nil, b))

	b.Children[0].Name = "hosts"
	assert.False(t, Equal(a, b))
}
