package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g := New()
	require.NotNil(t, g)
	assert.Empty(t, g.Nodes())
	assert.Equal(t, 0, g.Len())
}

func TestAddNode(t *testing.T) {
	g := New()

	g.AddNode("a")
	assert.True(t, g.HasNode("a"))
	assert.Equal(t, 1, g.Len())

	g.AddNode("a") // idempotent
	assert.Equal(t, 1, g.Len())

	g.AddNode("b")
	assert.Equal(t, []string{"a", "b"}, g.Nodes())
}

func TestAddEdge(t *testing.T) {
	t.Run("success case", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")

		require.NoError(t, g.AddEdge("a", "b"))
		assert.Equal(t, []string{"b"}, g.Successors("a"))

		// Duplicate edges collapse.
		require.NoError(t, g.AddEdge("a", "b"))
		assert.Equal(t, []string{"b"}, g.Successors("a"))
	})

	t.Run("error cases", func(t *testing.T) {
		g := New()
		g.AddNode("a")

		err := g.AddEdge("dne", "a")
		assert.ErrorContains(t, err, "source node not found")

		err = g.AddEdge("a", "dne")
		assert.ErrorContains(t, err, "destination node not found")
	})

	t.Run("self edge is accepted", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		require.NoError(t, g.AddEdge("a", "a"))
		assert.Equal(t, []string{"a"}, g.Successors("a"))
	})
}

func TestReachable(t *testing.T) {
	g := New()
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		g.AddNode(id)
	}
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))
	require.NoError(t, g.AddEdge("a", "d"))

	t.Run("includes the start node", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c", "d"}, g.Reachable("a"))
	})

	t.Run("isolated node reaches only itself", func(t *testing.T) {
		assert.Equal(t, []string{"e"}, g.Reachable("e"))
	})

	t.Run("unknown node returns nil", func(t *testing.T) {
		assert.Nil(t, g.Reachable("dne"))
	})

	t.Run("stable across repeated calls", func(t *testing.T) {
		first := g.Reachable("a")
		second := g.Reachable("a")
		assert.Equal(t, first, second)
	})
}

func TestFindCycleFrom(t *testing.T) {
	t.Run("no edges means no cycle", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		assert.Nil(t, g.FindCycleFrom("a"))
	})

	t.Run("linear chain has no cycle", func(t *testing.T) {
		g := New()
		for _, id := range []string{"a", "b", "c"} {
			g.AddNode(id)
		}
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("b", "c"))
		assert.Nil(t, g.FindCycleFrom("a"))
	})

	t.Run("diamond is not a cycle", func(t *testing.T) {
		// a -> {b, c}; b -> d; c -> d. The two branches converge on d,
		// which must not be mistaken for a revisit.
		g := New()
		for _, id := range []string{"a", "b", "c", "d"} {
			g.AddNode(id)
		}
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("a", "c"))
		require.NoError(t, g.AddEdge("b", "d"))
		require.NoError(t, g.AddEdge("c", "d"))
		assert.Nil(t, g.FindCycleFrom("a"))
	})

	t.Run("two node cycle reports the chain", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("b", "a"))

		c := g.FindCycleFrom("a")
		require.NotNil(t, c)
		assert.Equal(t, []string{"a", "b", "a"}, c.Chain)
	})

	t.Run("self cycle reports the chain", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		require.NoError(t, g.AddEdge("a", "a"))

		c := g.FindCycleFrom("a")
		require.NotNil(t, c)
		assert.Equal(t, []string{"a", "a"}, c.Chain)
	})

	t.Run("cycle behind a branch is still found", func(t *testing.T) {
		// a branches, so each branch walks with its own cloned set; the
		// cycle on the second branch must still be caught.
		g := New()
		for _, id := range []string{"a", "b", "c", "d"} {
			g.AddNode(id)
		}
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("a", "c"))
		require.NoError(t, g.AddEdge("c", "d"))
		require.NoError(t, g.AddEdge("d", "c"))

		c := g.FindCycleFrom("a")
		require.NotNil(t, c)
		assert.Equal(t, []string{"a", "c", "d", "c"}, c.Chain)
	})

	t.Run("shared set catches a revisit along one path", func(t *testing.T) {
		// a -> b -> c -> a is a single-successor chain throughout, so the
		// visited set is shared the whole way down.
		g := New()
		for _, id := range []string{"a", "b", "c"} {
			g.AddNode(id)
		}
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("b", "c"))
		require.NoError(t, g.AddEdge("c", "a"))

		c := g.FindCycleFrom("a")
		require.NotNil(t, c)
		assert.Equal(t, []string{"a", "b", "c", "a"}, c.Chain)
	})

	t.Run("unknown start returns nil", func(t *testing.T) {
		g := New()
		assert.Nil(t, g.FindCycleFrom("dne"))
	})
}
