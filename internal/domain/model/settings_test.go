package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplaySettings_Normalize_Defaults(t *testing.T) {
	s := DisplaySettings{}.Normalize()

	require.NotNil(t, s.ShowDate)
	assert.True(t, *s.ShowDate)
	require.NotNil(t, s.ShowProgressBar)
	assert.True(t, *s.ShowProgressBar)
	assert.Equal(t, DefaultTheme, s.Theme)
	assert.Equal(t, DefaultCompactTopN, s.CompactTopN)
	assert.Equal(t, DefaultRefreshInterval, s.RefreshInterval)
}

func TestDisplaySettings_Normalize_KeepsExplicitValues(t *testing.T) {
	hide := false
	s := DisplaySettings{
		ShowDate:        &hide,
		Theme:           "dark",
		CompactTopN:     5,
		RefreshInterval: 10 * time.Second,
	}.Normalize()

	require.NotNil(t, s.ShowDate)
	assert.False(t, *s.ShowDate)
	assert.Equal(t, "dark", s.Theme)
	assert.Equal(t, 5, s.CompactTopN)
	assert.Equal(t, 10*time.Second, s.RefreshInterval)
}

func TestDisplaySettings_Normalize_DoesNotMutateReceiver(t *testing.T) {
	orig := DisplaySettings{}
	_ = orig.Normalize()
	assert.Nil(t, orig.ShowDate)
	assert.Empty(t, orig.Theme)
}
