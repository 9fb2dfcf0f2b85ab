package resolver

import (
	"fmt"
	"testing"

	"github.com/hoanvu/gophim/internal/models"
)

func TestNormalizeToken(t *testing.T) {
	for n := 1; n <= 99; n++ {
		got := NormalizeToken(fmt.Sprintf("%d", n))
		want := fmt.Sprintf("tap-%02d", n)
		if got != want {
			t.Errorf("NormalizeToken(%d): expected %q, got %q", n, want, got)
		}
	}

	if got := NormalizeToken(""); got != "tap-01" {
		t.Errorf("Empty token should normalize to tap-01, got %q", got)
	}
	if got := NormalizeToken("tap-05"); got != "tap-05" {
		t.Errorf("Non-numeric token should pass through, got %q", got)
	}
	if got := NormalizeToken("full"); got != "full" {
		t.Errorf("Non-numeric token should pass through, got %q", got)
	}
	if got := NormalizeToken("100"); got != "tap-100" {
		t.Errorf("Three-digit token should not be truncated, got %q", got)
	}
}

func TestMatchEpisodeExactSlug(t *testing.T) {
	episodes := []models.Episode{
		{Name: "Tập 01", Slug: "tap-01"},
		{Name: "Tập 02", Slug: "tap-02"},
		{Name: "Tập 03", Slug: "tap-03"},
	}

	got := MatchEpisode(episodes, "2")
	if got.Slug != "tap-02" {
		t.Errorf("Expected tap-02, got %q", got.Slug)
	}
}

func TestMatchEpisodeByTrailingNameNumber(t *testing.T) {
	episodes := []models.Episode{
		{Name: "Tập 1", Slug: "a"},
		{Name: "Tập 2", Slug: "b"},
	}

	got := MatchEpisode(episodes, "2")
	if got.Name != "Tập 2" {
		t.Errorf("Expected name-based match on Tập 2, got %q", got.Name)
	}
}

func TestMatchEpisodeNumericEquality(t *testing.T) {
	// "7" must match "07": numeric comparison, not string comparison
	episodes := []models.Episode{
		{Name: "Episode 07", Slug: "ep-07"},
	}

	got := MatchEpisode(episodes, "7")
	if got.Slug != "ep-07" {
		t.Errorf("Expected numeric trailing match on ep-07, got %q", got.Slug)
	}
}

func TestMatchEpisodeFallsBackToFirst(t *testing.T) {
	episodes := []models.Episode{
		{Name: "Tập 01", Slug: "tap-01"},
		{Name: "Tập 02", Slug: "tap-02"},
	}

	got := MatchEpisode(episodes, "tap-final")
	if got.Slug != "tap-01" {
		t.Errorf("Unmatched token should select first episode, got %q", got.Slug)
	}
}

func TestSynthesize(t *testing.T) {
	group := Synthesize("dao-hai-tac", 3, "https://player.example.com/player/")

	if group.ServerName != SyntheticServerName {
		t.Errorf("Expected server name %q, got %q", SyntheticServerName, group.ServerName)
	}
	if len(group.ServerData) != 3 {
		t.Fatalf("Expected 3 synthetic episodes, got %d", len(group.ServerData))
	}

	for i, ep := range group.ServerData {
		wantName := fmt.Sprintf("Tập %d", i+1)
		wantSlug := fmt.Sprintf("%d", i+1)
		if ep.Name != wantName {
			t.Errorf("Episode %d: expected name %q, got %q", i, wantName, ep.Name)
		}
		if ep.Slug != wantSlug {
			t.Errorf("Episode %d: expected slug %q, got %q", i, wantSlug, ep.Slug)
		}
		if ep.LinkEmbed == "" {
			t.Errorf("Episode %d: synthetic episode must have an embed URL", i)
		}
		if ep.LinkM3U8 != "" {
			t.Errorf("Episode %d: synthetic episode must not have an HLS URL", i)
		}
	}
}

func TestSynthesizeAtLeastOneEpisode(t *testing.T) {
	group := Synthesize("phim-le", 0, "https://player.example.com/player/")
	if len(group.ServerData) != 1 {
		t.Errorf("Zero hint should still synthesize one episode, got %d", len(group.ServerData))
	}
}

func TestResolveEmptyGroups(t *testing.T) {
	res := Resolve(nil, "2", "", "tay-du-ky", 3, "https://player.example.com/player/")

	if !res.Synthetic {
		t.Error("Expected synthetic resolution for empty server groups")
	}
	if res.ServerName != SyntheticServerName {
		t.Errorf("Expected synthetic server name, got %q", res.ServerName)
	}
	if res.Episode.Slug != "2" {
		t.Errorf("Expected synthetic episode 2, got %q", res.Episode.Slug)
	}
}

func TestResolveServerSwitchKeepsToken(t *testing.T) {
	groups := []models.ServerGroup{
		{
			ServerName: "Vietsub #1",
			ServerData: []models.Episode{
				{Name: "Tập 01", Slug: "tap-01"},
				{Name: "Tập 02", Slug: "tap-02"},
			},
		},
		{
			ServerName: "Thuyết Minh #1",
			ServerData: []models.Episode{
				{Name: "Tập 1", Slug: "1"},
				{Name: "Tập 2", Slug: "2"},
			},
		},
	}

	first := Resolve(groups, "2", "", "phim", 0, "https://player.example.com/")
	if first.ServerName != "Vietsub #1" || first.Episode.Slug != "tap-02" {
		t.Errorf("Initial resolve: expected Vietsub #1/tap-02, got %s/%s", first.ServerName, first.Episode.Slug)
	}

	// Switching servers re-matches the token against the new list, which
	// uses bare-number slugs
	switched := Resolve(groups, "2", "Thuyết Minh #1", "phim", 0, "https://player.example.com/")
	if switched.ServerName != "Thuyết Minh #1" || switched.Episode.Slug != "2" {
		t.Errorf("Server switch: expected Thuyết Minh #1/2, got %s/%s", switched.ServerName, switched.Episode.Slug)
	}
}

func TestResolveSkipsEmptyGroups(t *testing.T) {
	groups := []models.ServerGroup{
		{ServerName: "Empty Server"},
		{
			ServerName: "Full Server",
			ServerData: []models.Episode{{Name: "Tập 01", Slug: "tap-01"}},
		},
	}

	res := Resolve(groups, "", "", "phim", 0, "https://player.example.com/")
	if res.ServerName != "Full Server" {
		t.Errorf("Expected groups without episodes to be skipped, got %q", res.ServerName)
	}
	if res.Synthetic {
		t.Error("Resolution should not be synthetic when a populated group exists")
	}
}

func TestEpisodeCountHint(t *testing.T) {
	cases := []struct {
		total string
		want  int
	}{
		{"16 Tập", 16},
		{"1", 1},
		{"", 0},
		{"Full", 0},
	}

	for _, tc := range cases {
		m := &models.Movie{EpisodeTotal: tc.total}
		if got := EpisodeCountHint(m); got != tc.want {
			t.Errorf("EpisodeCountHint(%q): expected %d, got %d", tc.total, tc.want, got)
		}
	}

	if got := EpisodeCountHint(nil); got != 0 {
		t.Errorf("EpisodeCountHint(nil): expected 0, got %d", got)
	}
}
