package tracking

import "strings"

func isValidTrackingID(trackingID string) bool {
	return strings.TrimSpace(trackingID) != ""
}

func isValidStatusLabel(label string) bool {
	return strings.TrimSpace(label) != ""
}
