package payment

import (
	"strconv"
	"strings"
)

func isValidSessionID(sessionID string) bool {
	return strings.TrimSpace(sessionID) != ""
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

// parseParcelID: metadata шлюза хранит id посылки строкой.
func parseParcelID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
