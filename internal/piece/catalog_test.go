package piece

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/cityforge/internal/geom"
)

func plugAt(sizes SizeFlags) AttachmentPoint {
	return AttachmentPoint{
		Direction: geom.Vec3{X: -1},
		Types:     TypeStructural,
		Sizes:     sizes,
		Plug:      true,
	}
}

func TestCatalogBiomeFiltering(t *testing.T) {
	src := NewMemorySource(
		Instance{ID: "low", BiomeMin: 0, BiomeMax: 2, Attachments: []AttachmentPoint{plugAt(SizeMedium)}},
		Instance{ID: "high", BiomeMin: 3, BiomeMax: 9, Attachments: []AttachmentPoint{plugAt(SizeMedium)}},
	)
	cat := LoadCatalog(src)
	require.Equal(t, 2, cat.Len())

	got := cat.Candidates(1, 0, 10)
	require.Len(t, got, 1)
	assert.Equal(t, "low", got[0].ID)

	got = cat.Candidates(5, 0, 10)
	require.Len(t, got, 1)
	assert.Equal(t, "high", got[0].ID)

	assert.Empty(t, cat.Candidates(20, 0, 10))
}

func TestCatalogPrefersCapsNearDepthLimit(t *testing.T) {
	src := NewMemorySource(
		Instance{ID: "shell", Category: CategoryStructural, BiomeMax: 9, Attachments: []AttachmentPoint{plugAt(SizeMedium)}},
		Instance{ID: "cap", Category: CategoryCap, BiomeMax: 9, Attachments: []AttachmentPoint{plugAt(SizeMedium)}},
	)
	cat := LoadCatalog(src)

	// Shallow depth: everything eligible.
	assert.Len(t, cat.Candidates(0, 1, 5), 2)

	// One hop before the limit: only caps.
	got := cat.Candidates(0, 4, 5)
	require.Len(t, got, 1)
	assert.Equal(t, "cap", got[0].ID)
}

func TestCatalogCapFallbackWhenBiomeHasNoCaps(t *testing.T) {
	src := NewMemorySource(
		Instance{ID: "shell", Category: CategoryStructural, BiomeMax: 9, Attachments: []AttachmentPoint{plugAt(SizeMedium)}},
	)
	cat := LoadCatalog(src)

	got := cat.Candidates(0, 4, 5)
	require.Len(t, got, 1)
	assert.Equal(t, "shell", got[0].ID)
}

func TestFilterByRequiredSize(t *testing.T) {
	src := NewMemorySource(
		Instance{ID: "small", BiomeMax: 9, Attachments: []AttachmentPoint{plugAt(SizeSmall)}},
		Instance{ID: "wide", BiomeMax: 9, Attachments: []AttachmentPoint{plugAt(SizeMedium | SizeLarge)}},
		Instance{ID: "freestanding", BiomeMax: 9},
	)
	cat := LoadCatalog(src)
	all := cat.Candidates(0, 0, 10)

	got := FilterByRequiredSize(all, SizeLarge)
	ids := make([]string, 0, len(got))
	for _, tpl := range got {
		ids = append(ids, tpl.ID)
	}
	// Free-standing templates have no plug to size-check and pass through.
	assert.ElementsMatch(t, []string{"wide", "freestanding"}, ids)

	// Socket-only templates never pass.
	socketOnly := &Template{ID: "s", Attachments: []AttachmentPoint{{Socket: true, Sizes: AllSizes}}}
	assert.Empty(t, FilterByRequiredSize([]*Template{socketOnly}, AllSizes))
}

type brokenSource struct{}

func (brokenSource) List() ([]string, error) {
	return nil, errors.New("template directory missing")
}

func (brokenSource) Instantiate(string) (*Instance, error) {
	return nil, errors.New("unreachable")
}

func TestCatalogUnreadableSourceStaysEmpty(t *testing.T) {
	cat := LoadCatalog(brokenSource{})
	assert.Equal(t, 0, cat.Len())
	assert.Empty(t, cat.Candidates(0, 0, 5))
}

func TestMemorySourceInstantiateReturnsFreshCopies(t *testing.T) {
	src := NewMemorySource(
		Instance{ID: "a", BiomeMax: 9, Attachments: []AttachmentPoint{plugAt(SizeSmall)}},
	)
	first, err := src.Instantiate("a")
	require.NoError(t, err)
	first.Attachments[0].Sizes = SizeLarge

	second, err := src.Instantiate("a")
	require.NoError(t, err)
	assert.Equal(t, SizeSmall, second.Attachments[0].Sizes)

	_, err = src.Instantiate("missing")
	assert.Error(t, err)
}

func TestTemplateWeightDefaultsToOne(t *testing.T) {
	cat := LoadCatalog(NewMemorySource(Instance{ID: "a", BiomeMax: 1}))
	require.Equal(t, 1, cat.Len())
	assert.Equal(t, 1.0, cat.ByID("a").Weight)
}
