package transfer

// ScheduleCreation is the body of POST /content/:company_id/schedule/create,
// the parameters threaded through one orchestration run.
type ScheduleCreation struct {
	Theme            string `json:"theme"`
	ThemeDescription string `json:"theme_description"`
	MonthID          int    `json:"month_id"`
	ThemeIndex       int    `json:"theme_index"`
	ScheduledMonth   string `json:"scheduled_month"`
}

// ChannelBatch is what one channel's generation run produced. PostIDs may be
// partial when the batch aborted mid-way; CacheInvalidated reports whether the
// channel's list cache entry was actually dropped.
type ChannelBatch struct {
	PostIDs          []string `json:"post_ids"`
	CacheInvalidated bool     `json:"cache_invalidated"`
}

// ChannelResult is the per-channel outcome of an orchestration run, kept even
// when a sibling channel failed so callers can see what partially succeeded.
type ChannelResult struct {
	Channel          string   `json:"channel"`
	PostIDs          []string `json:"post_ids"`
	CacheInvalidated bool     `json:"cache_invalidated"`
	Error            string   `json:"error,omitempty"`
}

type ScheduleResult struct {
	Status   string          `json:"status"`
	PostIDs  []string        `json:"post_ids"`
	Counts   map[string]int  `json:"counts"`
	Channels []ChannelResult `json:"channels"`
}

// PostUpdate carries the mutable content fields of a post. Nil fields are
// left untouched.
type PostUpdate struct {
	Caption       *string   `json:"caption"`
	Hashtags      *[]string `json:"hashtags"`
	OverlayText   *string   `json:"overlay_text"`
	ImageURL      *string   `json:"image_url"`
	ScheduledTime *string   `json:"scheduled_time"`
}
