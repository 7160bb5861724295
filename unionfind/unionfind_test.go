package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tubegen/unionfind"
)

// TestFind_UnseenIsSingleton verifies lazy singleton groups.
func TestFind_UnseenIsSingleton(t *testing.T) {
	u := unionfind.New[string]()
	assert.Equal(t, "A", u.Find("A"))
	assert.False(t, u.Same("A", "B"))
	assert.Equal(t, 0, u.Len())
}

// TestUnion_Transitive checks direct and transitive membership.
func TestUnion_Transitive(t *testing.T) {
	u := unionfind.New[int]()
	u.Union(1, 2)
	u.Union(3, 4)
	u.Union(2, 3)

	for _, pair := range [][2]int{{1, 2}, {1, 3}, {1, 4}, {2, 4}} {
		assert.True(t, u.Same(pair[0], pair[1]), "%v", pair)
	}
	assert.False(t, u.Same(1, 5))

	// the root of the first argument's group is linked under the second's
	v := unionfind.New[int]()
	v.Union(7, 8)
	assert.Equal(t, 8, v.Find(7))
}

// TestUnion_Self is a no-op and must not create a cycle.
func TestUnion_Self(t *testing.T) {
	u := unionfind.New[int]()
	u.Union(1, 1)
	assert.Equal(t, 1, u.Find(1))
}

// TestFind_RandomSequence: after any union sequence, every unioned pair shares
// a representative and Find is idempotent.
func TestFind_RandomSequence(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	u := unionfind.New[int]()
	const n = 200
	var pairs [][2]int
	for i := 0; i < 300; i++ {
		a, b := r.Intn(n), r.Intn(n)
		u.Union(a, b)
		pairs = append(pairs, [2]int{a, b})
	}
	for _, p := range pairs {
		require.Equal(t, u.Find(p[0]), u.Find(p[1]), "pair %v", p)
	}
	for k := 0; k < n; k++ {
		root := u.Find(k)
		require.Equal(t, root, u.Find(root))
		require.Equal(t, root, u.Find(k))
	}
}

// TestFind_DeepChainCompresses builds a chain and checks that after one Find
// every element points straight at the root.
func TestFind_DeepChainCompresses(t *testing.T) {
	u := unionfind.New[int]()
	for i := 0; i < 1000; i++ {
		u.Union(i, i+1)
	}
	root := u.Find(0)
	assert.Equal(t, 1000, root)
	for i := 0; i <= 1000; i++ {
		assert.Equal(t, root, u.Find(i))
	}
}

func TestGroups(t *testing.T) {
	u := unionfind.New[string]()
	u.Union("a", "b")
	u.Union("c", "b")
	g := u.Groups([]string{"a", "b", "c", "d"})
	require.Len(t, g, 2)
	assert.Equal(t, []string{"a", "b", "c"}, g[u.Find("a")])
	assert.Equal(t, []string{"d"}, g["d"])
}
