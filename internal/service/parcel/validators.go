package parcel

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

// Переходы намеренно не упорядочиваются: CRUD-слой принимает любой
// известный статус, аудит остается за журналом.
func isValidDeliveryStatus(status string) bool {
	switch status {
	case "created", "pending-pickup", "assigned", "in-transit", "parcel_delivered":
		return true
	default:
		return false
	}
}
