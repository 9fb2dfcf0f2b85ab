package playback

import (
	"net"
	"strings"
)

// Hosts that are known to refuse iframe embedding. The wrapper player
// host is added on top of these when the selector is built.
var builtinDenyHosts = []string{
	"google.com",
	"www.google.com",
	"bing.com",
	"www.bing.com",
	"duckduckgo.com",
}

// DenyList holds hostnames that must never be rendered in an iframe
type DenyList struct {
	hosts map[string]struct{}
}

// NewDenyList builds a deny list from the built-in hosts plus extras
func NewDenyList(extra ...string) *DenyList {
	hosts := make(map[string]struct{}, len(builtinDenyHosts)+len(extra))
	for _, h := range builtinDenyHosts {
		hosts[h] = struct{}{}
	}
	for _, h := range extra {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" {
			hosts[h] = struct{}{}
		}
	}
	return &DenyList{hosts: hosts}
}

// Blocked checks whether a hostname is deny-listed. Ports are ignored.
func (d *DenyList) Blocked(host string) bool {
	host = strings.ToLower(host)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	_, blocked := d.hosts[host]
	return blocked
}
