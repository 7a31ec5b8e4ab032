package options_test

import (
	"testing"

	"github.com/mikenye/overlay2d/options"
	"github.com/mikenye/overlay2d/types"
	"github.com/stretchr/testify/assert"
)

func TestDefaultPolicy(t *testing.T) {
	p := options.DefaultPolicy()
	assert.Equal(t, types.Auto, p.Strategy)
	assert.Greater(t, p.ChunkStartLength, 0)
	assert.Greater(t, p.ChunkListMaxSize, 0)
}

func TestApplyPolicyOptions(t *testing.T) {
	p := options.ApplyPolicyOptions(
		options.DefaultPolicy(),
		options.WithStrategy(types.List),
		options.WithChunkStartLength(128),
		options.WithChunkListMaxSize(8),
	)
	assert.Equal(t, types.List, p.Strategy)
	assert.Equal(t, 128, p.ChunkStartLength)
	assert.Equal(t, 8, p.ChunkListMaxSize)
}

func TestWithChunkOptionsIgnoreNonPositive(t *testing.T) {
	base := options.DefaultPolicy()
	p := options.ApplyPolicyOptions(base, options.WithChunkStartLength(0), options.WithChunkListMaxSize(-1))
	assert.Equal(t, base.ChunkStartLength, p.ChunkStartLength)
	assert.Equal(t, base.ChunkListMaxSize, p.ChunkListMaxSize)
}
