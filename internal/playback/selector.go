package playback

import (
	"fmt"
	"net/url"

	"github.com/hoanvu/gophim/internal/models"
)

// Selector decides the rendering mode for a resolved episode: iframe
// embed, HLS attach, or no playable source.
type Selector struct {
	wrapperHost string
	deny        *DenyList
}

// NewSelector builds a selector. The wrapper-player host is derived from
// the player base URL and is itself deny-listed for embedding.
func NewSelector(playerBaseURL string, extraDenyHosts []string) (*Selector, error) {
	u, err := url.Parse(playerBaseURL)
	if err != nil || u.Hostname() == "" {
		return nil, fmt.Errorf("invalid player base URL %q", playerBaseURL)
	}

	wrapperHost := u.Hostname()
	extras := append([]string{wrapperHost}, extraDenyHosts...)

	return &Selector{
		wrapperHost: wrapperHost,
		deny:        NewDenyList(extras...),
	}, nil
}

// ExtractHLS resolves the true HLS manifest address. When the embed URL
// points at the generic wrapper player, its "url" query parameter is the
// real manifest and overrides any separately supplied one.
func (s *Selector) ExtractHLS(embedURL, hlsURL string) string {
	u, err := url.Parse(embedURL)
	if err != nil || u.Hostname() != s.wrapperHost {
		return hlsURL
	}
	if wrapped := u.Query().Get("url"); wrapped != "" {
		return wrapped
	}
	return hlsURL
}

// Select computes the playback selection for an episode. iframeBlocked
// carries the one-way per-episode flag set after a runtime iframe load
// error; it forces re-evaluation without the iframe branch.
func (s *Selector) Select(ep models.Episode, iframeBlocked bool) models.PlaybackSelection {
	sel := models.PlaybackSelection{
		Episode:  ep,
		EmbedURL: ep.LinkEmbed,
		HLSURL:   s.ExtractHLS(ep.LinkEmbed, ep.LinkM3U8),
	}

	if !iframeBlocked && ep.LinkEmbed != "" {
		if u, err := url.Parse(ep.LinkEmbed); err == nil {
			host := u.Hostname()
			if host != "" && !s.deny.Blocked(host) {
				sel.IframeAllowed = true
			}
		}
	}

	switch {
	case sel.IframeAllowed:
		sel.Mode = models.ModeIframe
	case sel.HLSURL != "":
		sel.Mode = models.ModeHLS
	default:
		sel.Mode = models.ModeNone
	}

	return sel
}
