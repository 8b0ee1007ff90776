package analytics

import "strings"

// DeviceType is a coarse classification of the client device.
type DeviceType string

const (
	DeviceMobile  DeviceType = "mobile"
	DeviceDesktop DeviceType = "desktop"
	DeviceTablet  DeviceType = "tablet"
	DeviceOther   DeviceType = "other"
)

var (
	tabletSignals  = []string{"ipad", "tablet"}
	mobileSignals  = []string{"mobile", "iphone", "android", "blackberry", "windows phone"}
	desktopSignals = []string{"windows", "macintosh", "linux", "chrome", "firefox", "safari", "edge"}
)

// DetectDevice classifies a user-agent string by substring heuristics.
// Tablet is checked before mobile: Android tablets also contain "android",
// distinguished only by the absence of "mobile".
func DetectDevice(userAgent string) DeviceType {
	if userAgent == "" {
		return DeviceOther
	}
	ua := strings.ToLower(userAgent)

	for _, signal := range tabletSignals {
		if strings.Contains(ua, signal) {
			return DeviceTablet
		}
	}
	if strings.Contains(ua, "android") && !strings.Contains(ua, "mobile") {
		return DeviceTablet
	}

	for _, signal := range mobileSignals {
		if strings.Contains(ua, signal) {
			return DeviceMobile
		}
	}

	for _, signal := range desktopSignals {
		if strings.Contains(ua, signal) {
			return DeviceDesktop
		}
	}

	return DeviceOther
}
