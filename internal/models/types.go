package models

// PlaybackMode represents how a resolved episode should be rendered
type PlaybackMode string

const (
	ModeIframe PlaybackMode = "iframe" // embed URL in an iframe
	ModeHLS    PlaybackMode = "hls"    // native video element + HLS client
	ModeNone   PlaybackMode = "none"   // no playable source, external link only
)

// ListKind identifies an upstream catalog list
type ListKind string

const (
	ListSeries    ListKind = "phim-bo"
	ListSingle    ListKind = "phim-le"
	ListAnimation ListKind = "hoat-hinh"
	ListTheater   ListKind = "phim-chieu-rap"
)
