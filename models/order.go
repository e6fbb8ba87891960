package models

import (
	"time"

	"github.com/google/uuid"
)

// NewOrderRef generates a unique order reference, e.g. 20250908130500-<uuid>.
func NewOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
