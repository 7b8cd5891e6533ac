package vtexture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcrender/vgeo/vtexture"
)

func TestNewPhysicalAtlas_InvalidCapacityErrors(t *testing.T) {
	_, err := vtexture.NewPhysicalAtlas(0, 128)
	assert.ErrorIs(t, err, vtexture.ErrAtlasCapacity)

	_, err = vtexture.NewPhysicalAtlas(4, 0)
	assert.ErrorIs(t, err, vtexture.ErrAtlasCapacity)
}

func TestPhysicalAtlas_StartsEmptyOfRealPages(t *testing.T) {
	atlas, err := vtexture.NewPhysicalAtlas(2, 128)
	require.NoError(t, err)
	assert.Equal(t, 4, atlas.Capacity())
	assert.Equal(t, 0, atlas.ResidentCount())

	_, ok := atlas.CheckLoaded(vtexture.NewPageKey(1, 0))
	assert.False(t, ok)
}

func TestPhysicalAtlas_AddThenCheckLoadedHits(t *testing.T) {
	atlas, err := vtexture.NewPhysicalAtlas(2, 128)
	require.NoError(t, err)

	key := vtexture.NewPageKey(7, vtexture.PackCoordMip(1, 2, 0))
	coord, evicted, ok := atlas.GetNewPosition()
	require.True(t, ok)
	atlas.Add(key, coord)

	got, ok := atlas.CheckLoaded(key)
	require.True(t, ok)
	assert.Equal(t, coord, got)
	assert.Equal(t, 1, atlas.ResidentCount())
	assert.NotEqual(t, key, evicted)
}

func TestPhysicalAtlas_FullAtlasEvictsLeastRecentlyUsed(t *testing.T) {
	// capacity 4: fill with a,b,c,d (distinct real keys), then touch a to
	// keep it hot, then request a 5th page e — the LRU victim must be b,
	// the least recently touched of the four, matching seed scenario 6.
	atlas, err := vtexture.NewPhysicalAtlas(2, 128)
	require.NoError(t, err)

	keys := make([]vtexture.PageKey, 5)
	for i := range keys {
		keys[i] = vtexture.NewPageKey(uint32(i+1), 0)
	}

	for i := 0; i < 4; i++ {
		coord, _, ok := atlas.GetNewPosition()
		require.True(t, ok)
		atlas.Add(keys[i], coord)
	}
	require.Equal(t, 4, atlas.ResidentCount())

	// touch a (keys[0]) so it is MRU, leaving b (keys[1]) as LRU.
	_, ok := atlas.CheckLoaded(keys[0])
	require.True(t, ok)

	_, evicted, ok := atlas.GetNewPosition()
	require.True(t, ok)
	assert.Equal(t, keys[1], evicted)
}
