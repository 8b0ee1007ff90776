package analytics

import "strings"

// MaskIP obscures the host part of an address for owner-facing display.
// The raw address stays in storage; masking happens only at read time.
// IPv4 loses its last octet, IPv6 its last colon segment.
func MaskIP(ip string) string {
	if parts := strings.Split(ip, "."); len(parts) == 4 {
		return parts[0] + "." + parts[1] + "." + parts[2] + ".xxx"
	}
	if strings.Contains(ip, ":") {
		parts := strings.Split(ip, ":")
		parts[len(parts)-1] = "xxxx"
		return strings.Join(parts, ":")
	}
	return "xxx.xxx.xxx.xxx"
}
