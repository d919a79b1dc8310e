package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blackhole/internal/gallery"
	"blackhole/internal/httpx"
)

func TestGallerySeeds(t *testing.T) {
	seeds := gallerySeeds(gallery.Entries())
	require.Len(t, seeds, 3)

	assert.Equal(t, "M87*", seeds[1].Name)
	require.NotNil(t, seeds[1].MassSolar)
	assert.Equal(t, 6.5e9, *seeds[1].MassSolar)
	require.NotNil(t, seeds[2].Description)

	for _, s := range seeds {
		assert.Nil(t, httpx.ValidateStruct(s), s.Name)
	}
}
