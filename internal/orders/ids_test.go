package orders

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIDChecker struct {
	taken map[string]bool
	calls int
}

func (s *stubIDChecker) OrderIDExists(ctx context.Context, id string) (bool, error) {
	s.calls++
	return s.taken[id], nil
}

func TestIDGeneratorFormat(t *testing.T) {
	gen, err := NewIDGenerator(&stubIDChecker{})
	require.NoError(t, err)

	id, err := gen.Generate(context.Background())
	require.NoError(t, err)

	assert.Len(t, id, 8)
	assert.True(t, strings.HasPrefix(id, "KN"))
	for _, r := range id[2:] {
		assert.Contains(t, orderIDAlphabet, string(r))
	}
}

type collidingChecker struct {
	collisions int
	calls      int
}

func (c *collidingChecker) OrderIDExists(ctx context.Context, id string) (bool, error) {
	c.calls++
	if c.collisions > 0 {
		c.collisions--
		return true, nil
	}
	return false, nil
}

func TestIDGeneratorRetriesOnCollision(t *testing.T) {
	checker := &collidingChecker{collisions: 3}
	gen, err := NewIDGenerator(checker)
	require.NoError(t, err)

	id, err := gen.Generate(context.Background())
	require.NoError(t, err)
	assert.Len(t, id, 8)
	assert.Equal(t, 4, checker.calls)
}

func TestIDGeneratorUniqueness(t *testing.T) {
	gen, err := NewIDGenerator(&stubIDChecker{})
	require.NoError(t, err)

	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		id, err := gen.Generate(context.Background())
		require.NoError(t, err)
		require.False(t, seen[id], "duplicate id %s after %d draws", id, i)
		seen[id] = true
	}
}

func TestIDGeneratorRespectsContext(t *testing.T) {
	gen, err := NewIDGenerator(&stubIDChecker{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = gen.Generate(ctx)
	require.Error(t, err)
}

func TestNewIDGeneratorRequiresChecker(t *testing.T) {
	_, err := NewIDGenerator(nil)
	require.Error(t, err)
}
