package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"misterMoAPI/internal/tier"
)

func TestBasicUserPremiumBookPreview(t *testing.T) {
	c := NewCatalog([]Book{{ID: "b", TotalPages: 50, PreviewPages: 3, RequiredTier: tier.Premium}}, nil, nil, nil)

	for page := 1; page <= 3; page++ {
		p, err := c.Page("b", page, tier.Basic)
		require.NoError(t, err, "page %d", page)
		assert.True(t, p.Preview)
	}

	_, err := c.Page("b", 4, tier.Basic)
	var gate tier.GateError
	require.True(t, errors.As(err, &gate))
	assert.Equal(t, tier.Premium, gate.Required)

	p, err := c.Page("b", 4, tier.Premium)
	require.NoError(t, err)
	assert.False(t, p.Preview)
}

func TestPageErrors(t *testing.T) {
	c := Default()

	_, err := c.Page("missing", 1, tier.Premium)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Page("1", 0, tier.Premium)
	assert.ErrorIs(t, err, ErrPageOutOfRange)

	_, err = c.Page("1", 121, tier.Premium)
	assert.ErrorIs(t, err, ErrPageOutOfRange)
}

func TestVideosStripLockedPayload(t *testing.T) {
	videos := Default().Videos(tier.Advanced)
	require.Len(t, videos, 8)
	for _, v := range videos {
		if v.RequiredTier == tier.Premium {
			assert.True(t, v.Locked, "video %s", v.ID)
			assert.Empty(t, v.YouTubeID)
		} else {
			assert.False(t, v.Locked, "video %s", v.ID)
			assert.NotEmpty(t, v.YouTubeID)
		}
	}

	_, err := Default().Video("5", tier.Advanced)
	var gate tier.GateError
	assert.True(t, errors.As(err, &gate))

	v, err := Default().Video("2", tier.Advanced)
	require.NoError(t, err)
	assert.Equal(t, "2", v.ID)
}

func TestDownloadsStripLockedFile(t *testing.T) {
	for _, d := range Default().Downloads(tier.Basic) {
		assert.Equal(t, d.RequiredTier != tier.Basic, d.Locked)
		assert.Equal(t, d.Locked, d.FileURL == "")
	}
}

func TestPanelsByTier(t *testing.T) {
	ids := func(ps []Panel) []string {
		var out []string
		for _, p := range ps {
			out = append(out, p.ID)
		}
		return out
	}

	basic := ids(Default().Panels(tier.Basic))
	assert.Contains(t, basic, "club-membership")
	assert.NotContains(t, basic, "daily-stats")
	assert.NotContains(t, basic, "fitness-facebuilding")

	advanced := ids(Default().Panels(tier.Advanced))
	assert.Contains(t, advanced, "daily-stats")
	assert.Contains(t, advanced, "food-scanner")
	assert.NotContains(t, advanced, "club-membership")
	assert.NotContains(t, advanced, "fitness-facebuilding")

	premium := ids(Default().Panels(tier.Premium))
	assert.Contains(t, premium, "fitness-facebuilding")
	assert.NotContains(t, premium, "club-membership")
}
