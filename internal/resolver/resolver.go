// Package resolver turns raw multi-server episode data and a requested
// episode token from the URL into a definite (server, episode) pair.
// Resolution never fails: a malformed or missing token only affects which
// episode is pre-selected, and when the upstream sends no servers at all a
// synthetic single-server listing is generated so a loaded movie always
// has a current episode.
package resolver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hoanvu/gophim/internal/models"
)

// DefaultToken is assumed when the URL carries no episode token
const DefaultToken = "tap-01"

// SyntheticServerName names the server group synthesized when the
// upstream returns no episode data
const SyntheticServerName = "Main Server"

var (
	allDigits      = regexp.MustCompile(`^\d+$`)
	trailingDigits = regexp.MustCompile(`(\d+)\s*$`)
	leadingDigits  = regexp.MustCompile(`^\s*(\d+)`)
)

// Resolution is the outcome of resolving a token against server data
type Resolution struct {
	ServerName string
	Episode    models.Episode
	Groups     []models.ServerGroup // effective groups, synthetic when upstream was empty
	Synthetic  bool
}

// NormalizeToken canonicalizes a requested episode token. Purely numeric
// tokens become "tap-NN" (two-digit zero-padded); anything else is used
// as-is. The canonical form is only the first-pass match key, not a
// guaranteed hit.
func NormalizeToken(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return DefaultToken
	}
	if allDigits.MatchString(token) {
		n, err := strconv.Atoi(token)
		if err == nil {
			return fmt.Sprintf("tap-%02d", n)
		}
	}
	return token
}

// TrailingNumber extracts the decimal run a string ends with
func TrailingNumber(s string) (int, bool) {
	matches := trailingDigits.FindStringSubmatch(s)
	if matches == nil {
		return 0, false
	}
	n, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// EpisodeCountHint extracts the episode count from a movie's free-text
// episode-total field ("16 Tập" -> 16). Returns 0 when absent.
func EpisodeCountHint(m *models.Movie) int {
	if m == nil {
		return 0
	}
	matches := leadingDigits.FindStringSubmatch(m.EpisodeTotal)
	if matches == nil {
		return 0
	}
	n, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0
	}
	return n
}

// MatchEpisode applies the matching algorithm against one episode list,
// first match wins:
//  1. exact equality between an episode slug and the canonical token
//  2. trailing-number equality (numeric, "7" matches "07") against slug
//     or display name
//  3. the first episode
func MatchEpisode(episodes []models.Episode, token string) models.Episode {
	if len(episodes) == 0 {
		return models.Episode{}
	}

	canonical := NormalizeToken(token)

	for _, ep := range episodes {
		if ep.Slug == canonical {
			return ep
		}
	}

	if want, ok := TrailingNumber(canonical); ok {
		for _, ep := range episodes {
			if got, ok := TrailingNumber(ep.Slug); ok && got == want {
				return ep
			}
			if got, ok := TrailingNumber(ep.Name); ok && got == want {
				return ep
			}
		}
	}

	return episodes[0]
}

// Synthesize builds the fallback server group for a movie without any
// upstream episode data: max(hint, 1) episodes with unpadded names,
// bare-number slugs, and embeds templated onto the wrapper player.
func Synthesize(movieSlug string, hint int, playerBaseURL string) models.ServerGroup {
	count := hint
	if count < 1 {
		count = 1
	}

	episodes := make([]models.Episode, 0, count)
	base := strings.TrimRight(playerBaseURL, "/?")
	for i := 1; i <= count; i++ {
		episodes = append(episodes, models.Episode{
			Name:      fmt.Sprintf("Tập %d", i),
			Slug:      strconv.Itoa(i),
			LinkEmbed: fmt.Sprintf("%s?movie=%s&ep=%d", base, movieSlug, i),
		})
	}

	return models.ServerGroup{
		ServerName: SyntheticServerName,
		ServerData: episodes,
	}
}

// pickGroup selects the requested server by name, defaulting to the
// first group
func pickGroup(groups []models.ServerGroup, serverName string) models.ServerGroup {
	if serverName != "" {
		for _, g := range groups {
			if g.ServerName == serverName {
				return g
			}
		}
	}
	return groups[0]
}

// Resolve produces a definite (server, episode) pair. The token survives
// server switches: changing servers re-runs the match with the same token
// rather than carrying an episode index across lists.
func Resolve(groups []models.ServerGroup, token, serverName, movieSlug string, hint int, playerBaseURL string) Resolution {
	synthetic := false

	// Drop groups with no episodes so pickGroup always has something to match
	effective := make([]models.ServerGroup, 0, len(groups))
	for _, g := range groups {
		if len(g.ServerData) > 0 {
			effective = append(effective, g)
		}
	}

	if len(effective) == 0 {
		effective = []models.ServerGroup{Synthesize(movieSlug, hint, playerBaseURL)}
		synthetic = true
	}

	group := pickGroup(effective, serverName)

	return Resolution{
		ServerName: group.ServerName,
		Episode:    MatchEpisode(group.ServerData, token),
		Groups:     effective,
		Synthetic:  synthetic,
	}
}
