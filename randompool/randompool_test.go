package randompool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIsIdempotent(t *testing.T) {
	p := New("hello")
	first := make([]float64, 50)
	for i := range first {
		first[i] = p.Get(i)
	}
	// Ask again out of order.
	for i := len(first) - 1; i >= 0; i-- {
		assert.Equal(t, first[i], p.Get(i), "index %d", i)
	}
}

func TestGetMaterializesPrefix(t *testing.T) {
	p := New("prefix")
	require.Equal(t, 0, p.Len())
	p.Get(9)
	assert.Equal(t, 10, p.Len())
	p.Get(3)
	assert.Equal(t, 10, p.Len())
}

func TestSameSeedSameSequence(t *testing.T) {
	a := New("abc")
	b := New("abc")
	// b is read in reverse so its materialization order differs.
	for i := 99; i >= 0; i-- {
		b.Get(i)
	}
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Get(i), b.Get(i))
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a := New("abc").Values(20)
	b := New("abd").Values(20)
	assert.NotEqual(t, a, b)
}

func TestValuesInRange(t *testing.T) {
	for i, v := range New("range").Values(1000) {
		if v < 0 || v >= 1 {
			t.Errorf("Want value %d in [0,1), got %f", i, v)
		}
	}
}

func TestNegativeIndex(t *testing.T) {
	p := New("neg")
	assert.Equal(t, 0.0, p.Get(-1))
	assert.Equal(t, 0, p.Len())
}

func TestStreamsAreIndependent(t *testing.T) {
	p := New("streams")
	s1 := p.Stream()
	s2 := p.Stream()
	a := []float64{s1.Next(), s1.Next(), s1.Next()}
	b := []float64{s2.Next(), s2.Next(), s2.Next()}
	assert.Equal(t, a, b)
	assert.Equal(t, 3, s1.Index())

	s3 := p.StreamAt(2)
	assert.Equal(t, a[2], s3.Next())
}

func TestValuesIsACopy(t *testing.T) {
	p := New("copy")
	v := p.Values(3)
	v[0] = 42
	assert.NotEqual(t, 42.0, p.Get(0))
}
