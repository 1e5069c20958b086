package tracking_id

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"
)

const prefix = "PRCL"

type TrackingIDFactory struct{}

func New() *TrackingIDFactory {
	return &TrackingIDFactory{}
}

// NewTrackingID: PRCL-YYYYMMDD-XXXXXX, шесть hex-символов из crypto/rand.
func (f *TrackingIDFactory) NewTrackingID() string {
	date := time.Now().UTC().Format("20060102")

	random := make([]byte, 3)
	// rand.Read из crypto/rand не возвращает ошибку начиная с go1.24
	_, _ = rand.Read(random)

	return prefix + "-" + date + "-" + strings.ToUpper(hex.EncodeToString(random))
}
