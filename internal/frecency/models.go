package frecency

// UsageRecord holds the durable launch statistics for one item.
type UsageRecord struct {
	// ItemID is the stable identifier of the item (e.g. "firefox.desktop").
	ItemID string `json:"item_id"`

	// LaunchCount is the number of recorded launches. Records are created on
	// the first launch, so a stored record always has LaunchCount >= 1.
	LaunchCount int `json:"launch_count"`

	// LastLaunch is the Unix timestamp (seconds) of the most recent launch.
	LastLaunch int64 `json:"last_launch"`

	// CreatedAt is the Unix timestamp of the first-ever launch. Immutable.
	CreatedAt int64 `json:"created_at"`
}

// RankedItem pairs an item with its frecency score, as returned by TopItems.
type RankedItem struct {
	ItemID      string  `json:"item_id"`
	Score       float64 `json:"score"`
	LaunchCount int     `json:"launch_count"`
	LastLaunch  int64   `json:"last_launch"`
}
