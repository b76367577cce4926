package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibleCollections(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("Empty", func(t *testing.T) {
		res := VisibleCollections(nil, now)
		require.Len(t, res, 1)
		assert.Equal(t, AllCollection(now), res[0])
	})

	t.Run("DropsHidden", func(t *testing.T) {
		cs := []Collection{
			{Handle: "hidden-homepage-featured-items"},
			{Handle: "shirts"},
			{Handle: "hidden-homepage-carousel"},
			{Handle: "hats"},
		}
		res := VisibleCollections(cs, now)

		handles := make([]string, len(res))
		for i, c := range res {
			handles[i] = c.Handle
		}
		assert.Equal(t, []string{"", "shirts", "hats"}, handles)
		assert.Equal(t, "/search", res[0].Path)
		assert.Equal(t, now, res[0].UpdatedAt)
	})

	t.Run("AllHidden", func(t *testing.T) {
		res := VisibleCollections([]Collection{{Handle: "hidden"}, {Handle: "hiddenx"}}, now)
		assert.Len(t, res, 1)
	})
}

func TestCollectionHidden(t *testing.T) {
	assert.True(t, Collection{Handle: "hidden-sale"}.Hidden())
	assert.False(t, Collection{Handle: "sale-hidden"}.Hidden())
	assert.False(t, Collection{}.Hidden())
}

func TestCollectionPath(t *testing.T) {
	assert.Equal(t, "/search/shirts", CollectionPath("shirts"))
}
