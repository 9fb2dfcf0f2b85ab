package models

// PlaybackSelection is the derived, transient result of resolving an
// episode and choosing a playback source. Recomputed whenever the
// requested episode token or fetched data changes.
type PlaybackSelection struct {
	ServerName    string       `json:"server_name"`
	Episode       Episode      `json:"episode"`
	EmbedURL      string       `json:"embed_url"`
	HLSURL        string       `json:"hls_url"`
	IframeAllowed bool         `json:"iframe_allowed"`
	Mode          PlaybackMode `json:"mode"`
}
