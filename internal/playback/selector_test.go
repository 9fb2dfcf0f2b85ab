package playback

import (
	"testing"

	"github.com/hoanvu/gophim/internal/models"
)

const playerBase = "https://player.example.com/player/"

func newTestSelector(t *testing.T) *Selector {
	t.Helper()
	selector, err := NewSelector(playerBase, []string{"blocked.example.net"})
	if err != nil {
		t.Fatalf("Failed to build selector: %v", err)
	}
	return selector
}

func TestExtractHLSFromWrapper(t *testing.T) {
	selector := newTestSelector(t)

	embed := "https://player.example.com/player/?url=https%3A%2F%2Fcdn.example%2Fmanifest.m3u8"
	got := selector.ExtractHLS(embed, "")
	if got != "https://cdn.example/manifest.m3u8" {
		t.Errorf("Expected extracted manifest, got %q", got)
	}
}

func TestExtractHLSOverridesSuppliedManifest(t *testing.T) {
	selector := newTestSelector(t)

	embed := "https://player.example.com/player/?url=https%3A%2F%2Fcdn.example%2Freal.m3u8"
	got := selector.ExtractHLS(embed, "https://cdn.example/stale.m3u8")
	if got != "https://cdn.example/real.m3u8" {
		t.Errorf("Wrapper URL must override supplied manifest, got %q", got)
	}
}

func TestExtractHLSNonWrapperHost(t *testing.T) {
	selector := newTestSelector(t)

	got := selector.ExtractHLS("https://embed.example.org/e/abc", "https://cdn.example/direct.m3u8")
	if got != "https://cdn.example/direct.m3u8" {
		t.Errorf("Non-wrapper embed must keep supplied manifest, got %q", got)
	}
}

func TestSelectWrapperEmbedIsNotIframed(t *testing.T) {
	selector := newTestSelector(t)

	ep := models.Episode{
		Name:      "Tập 01",
		Slug:      "tap-01",
		LinkEmbed: "https://player.example.com/player/?url=https%3A%2F%2Fcdn.example%2Fmanifest.m3u8",
	}

	sel := selector.Select(ep, false)
	if sel.IframeAllowed {
		t.Error("Wrapper host is deny-listed and must not be iframed")
	}
	if sel.Mode != models.ModeHLS {
		t.Errorf("Expected HLS mode, got %q", sel.Mode)
	}
	if sel.HLSURL != "https://cdn.example/manifest.m3u8" {
		t.Errorf("Expected extracted manifest, got %q", sel.HLSURL)
	}
}

func TestSelectIframeForEmbeddableHost(t *testing.T) {
	selector := newTestSelector(t)

	ep := models.Episode{
		Slug:      "tap-01",
		LinkEmbed: "https://embed.example.org/e/abc",
		LinkM3U8:  "https://cdn.example/manifest.m3u8",
	}

	sel := selector.Select(ep, false)
	if sel.Mode != models.ModeIframe {
		t.Errorf("Expected iframe mode, got %q", sel.Mode)
	}
	if !sel.IframeAllowed {
		t.Error("Expected iframe to be allowed")
	}
}

func TestSelectIframeBlockedFallsThroughToHLS(t *testing.T) {
	selector := newTestSelector(t)

	ep := models.Episode{
		Slug:      "tap-01",
		LinkEmbed: "https://embed.example.org/e/abc",
		LinkM3U8:  "https://cdn.example/manifest.m3u8",
	}

	// The iframe reported a load error at runtime; re-evaluation must not
	// pick the iframe again
	sel := selector.Select(ep, true)
	if sel.Mode != models.ModeHLS {
		t.Errorf("Expected HLS fallback after iframe failure, got %q", sel.Mode)
	}
}

func TestSelectDenyListedExtraHost(t *testing.T) {
	selector := newTestSelector(t)

	ep := models.Episode{
		Slug:      "tap-01",
		LinkEmbed: "https://blocked.example.net/e/abc",
	}

	sel := selector.Select(ep, false)
	if sel.Mode != models.ModeNone {
		t.Errorf("Deny-listed host without HLS should yield no playable source, got %q", sel.Mode)
	}
	if sel.EmbedURL == "" {
		t.Error("Embed URL must survive for the external-link fallback")
	}
}

func TestSelectNoSources(t *testing.T) {
	selector := newTestSelector(t)

	sel := selector.Select(models.Episode{Slug: "tap-01"}, false)
	if sel.Mode != models.ModeNone {
		t.Errorf("Expected no playable source, got %q", sel.Mode)
	}
}

func TestDenyListIgnoresPortAndCase(t *testing.T) {
	deny := NewDenyList("Player.Example.Com")
	if !deny.Blocked("player.example.com") {
		t.Error("Deny list must be case-insensitive")
	}
	if !deny.Blocked("player.example.com:8443") {
		t.Error("Deny list must ignore ports")
	}
	if deny.Blocked("other.example.com") {
		t.Error("Unlisted host must not be blocked")
	}
}
