package analytics

import "strings"

// GeoResolver maps an IP address to a coarse country label. The stub below
// is the default; a real geolocation backend can be swapped in without
// touching callers.
type GeoResolver interface {
	Country(ip string) string
}

// StubGeoResolver labels private-range addresses "Local" and everything
// else "Unknown".
type StubGeoResolver struct{}

func (StubGeoResolver) Country(ip string) string {
	if strings.HasPrefix(ip, "127.") ||
		strings.HasPrefix(ip, "192.168.") ||
		strings.HasPrefix(ip, "10.") {
		return "Local"
	}
	return "Unknown"
}
