package models

// Tag is a name+slug pair used for both genres and countries.
type Tag struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Movie represents a catalog or detail record from the upstream API
type Movie struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	OriginName     string `json:"origin_name"`
	Slug           string `json:"slug"`
	Year           int    `json:"year"`
	PosterURL      string `json:"poster_url"`
	ThumbURL       string `json:"thumb_url"`
	Quality        string `json:"quality"`
	Lang           string `json:"lang"`
	Time           string `json:"time"`
	EpisodeCurrent string `json:"episode_current"`
	EpisodeTotal   string `json:"episode_total"`
	Content        string `json:"content"`
	Categories     []Tag  `json:"category"`
	Countries      []Tag  `json:"country"`
}

// ServerGroup is a named streaming source with an ordered episode list
type ServerGroup struct {
	ServerName string    `json:"server_name"`
	ServerData []Episode `json:"server_data"`
}

// Episode is leaf data from a server group. Slugs are inconsistently
// formatted across servers ("tap-01" on one, "1" on another).
type Episode struct {
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Filename  string `json:"filename"`
	LinkEmbed string `json:"link_embed"`
	LinkM3U8  string `json:"link_m3u8"`
}

// Pagination is the single internal pagination shape all upstream
// envelope variants are normalized to
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PageSize    int `json:"pageSize"`
	Total       int `json:"total"`
}

// PageResult is one normalized page of catalog/search results
type PageResult struct {
	Items      []Movie    `json:"items"`
	Pagination Pagination `json:"pagination"`
}
