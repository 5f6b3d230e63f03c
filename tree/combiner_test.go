package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListNodes(t *testing.T) {
	var registry ListNodes
	assert.False(t, registry.IsListNode(NewNode("server")))
	assert.False(t, registry.IsListNode(nil))

	registry.AddListNode("server", "endpoint")
	assert.True(t, registry.IsListNode(NewNode("server")))
	assert.True(t, registry.IsListNode(NewNode("endpoint")))
	assert.False(t, registry.IsListNode(NewNode("database")))
}

func TestOverrideCombiner(t *testing.T) {
	t.Run("node1 child wins", func(t *testing.T) {
		combiner := NewOverrideCombiner()
		node1 := NewNode("config")
		node1.AddChild(NewValueNode("timeout", "10"))
		node2 := NewNode("config")
		node2.AddChild(NewValueNode("timeout", "30"))
		node2.AddChild(NewValueNode("retries", "3"))

		result := combiner.Combine(node1, node2)
		require.Equal(t, 2, len(result.Children))
		assert.Equal(t, "10", result.ChildrenByName("timeout")[0].Value)
		assert.Equal(t, "3", result.ChildrenByName("retries")[0].Value)
	})

	t.Run("value fallback", func(t *testing.T) {
		combiner := NewOverrideCombiner()
		result := combiner.Combine(NewNode("key"), NewValueNode("key", "default"))
		assert.Equal(t, "default", result.Value)

		result = combiner.Combine(NewValueNode("key", "set"), NewValueNode("key", "default"))
		assert.Equal(t, "set", result.Value)
	})

	t.Run("list nodes append from both sides", func(t *testing.T) {
		combiner := NewOverrideCombiner()
		combiner.AddListNode("host")
		node1 := NewNode("cluster")
		node1.AddChild(NewValueNode("host", "a"))
		node2 := NewNode("cluster")
		node2.AddChild(NewValueNode("host", "b"))

		result := combiner.Combine(node1, node2)
		require.Equal(t, 2, len(result.Children))
		assert.Equal(t, "a", result.Children[0].Value)
		assert.Equal(t, "b", result.Children[1].Value)
	})

	t.Run("repeated name is not overridden", func(t *testing.T) {
		combiner := NewOverrideCombiner()
		node1 := NewNode("cluster")
		node1.AddChild(NewValueNode("host", "a"))
		node1.AddChild(NewValueNode("host", "b"))
		node2 := NewNode("cluster")
		node2.AddChild(NewValueNode("host", "c"))

		result := combiner.Combine(node1, node2)
		require.Equal(t, 2, len(result.Children), "ambiguous node1 side keeps its own children only")
		assert.Equal(t, "a", result.Children[0].Value)
		assert.Equal(t, "b", result.Children[1].Value)
	})

	t.Run("attribute union", func(t *testing.T) {
		combiner := NewOverrideCombiner()
		node1 := NewNode("config")
		node1.AddAttribute(NewValueNode("env", "prod"))
		node2 := NewNode("config")
		node2.AddAttribute(NewValueNode("env", "dev"))
		node2.AddAttribute(NewValueNode("zone", "b"))

		result := combiner.Combine(node1, node2)
		require.Equal(t, 2, len(result.Attributes))
		assert.Equal(t, "prod", result.Attribute("env").Value)
		assert.Equal(t, "b", result.Attribute("zone").Value)
	})
}

func TestUnionCombiner(t *testing.T) {
	combiner := NewUnionCombiner()
	node1 := NewValueNode("config", "v1")
	node1.AddChild(NewValueNode("host", "a"))
	node1.AddAttribute(NewValueNode("env", "prod"))
	node2 := NewValueNode("config", "v2")
	node2.AddChild(NewValueNode("host", "b"))
	node2.AddChild(NewValueNode("port", "80"))
	node2.AddAttribute(NewValueNode("env", "dev"))
	node2.AddAttribute(NewValueNode("zone", "a"))

	result := combiner.Combine(node1, node2)
	assert.Equal(t, "v1", result.Value)
	require.Equal(t, 3, len(result.Children), "all children of both nodes are kept")
	assert.Equal(t, "a", result.Children[0].Value)
	assert.Equal(t, "b", result.Children[1].Value)
	assert.Equal(t, "80", result.Children[2].Value)
	require.Equal(t, 2, len(result.Attributes))
	assert.Equal(t, "prod", result.Attribute("env").Value)
}
