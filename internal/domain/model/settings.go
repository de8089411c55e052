package model

import "time"

// Display settings defaults.
const (
	DefaultCompactTopN     = 3
	DefaultRefreshInterval = 30 * time.Second
	DefaultTheme           = "light"
)

// DisplaySettings configures the packing display screens. All fields have
// explicit defaults; nullable inputs are resolved through Normalize so the
// aggregation layer never sees optional values.
//
// @Description Display screen configuration with explicit defaults
type DisplaySettings struct {
	// ShowDate toggles the delivery date header on customer displays.
	ShowDate *bool `json:"show_date,omitempty" bson:"show_date,omitempty"`
	// ShowProgressBar toggles per-customer progress bars.
	ShowProgressBar *bool `json:"show_progress_bar,omitempty" bson:"show_progress_bar,omitempty"`
	// Theme selects the display color theme.
	Theme string `json:"theme,omitempty" bson:"theme,omitempty" example:"light"`
	// CompactTopN is the product limit on space-constrained cards.
	CompactTopN int `json:"compact_top_n,omitempty" bson:"compact_top_n,omitempty" example:"3"`
	// RefreshInterval is how often displays refetch when no change event arrives.
	RefreshInterval time.Duration `json:"refresh_interval,omitempty" bson:"refresh_interval,omitempty" swaggertype:"integer"`
	UpdatedAt       time.Time     `json:"updated_at" bson:"updated_at"`
}

// Normalize fills unset fields with their defaults and returns the result.
// The receiver is not modified.
func (s DisplaySettings) Normalize() DisplaySettings {
	out := s
	if out.ShowDate == nil {
		v := true
		out.ShowDate = &v
	}
	if out.ShowProgressBar == nil {
		v := true
		out.ShowProgressBar = &v
	}
	if out.Theme == "" {
		out.Theme = DefaultTheme
	}
	if out.CompactTopN <= 0 {
		out.CompactTopN = DefaultCompactTopN
	}
	if out.RefreshInterval <= 0 {
		out.RefreshInterval = DefaultRefreshInterval
	}
	return out
}
