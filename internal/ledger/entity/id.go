package entity

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// NewID returns a new record identifier: the current millisecond timestamp in
// base36 plus a short random suffix. The timestamp keeps IDs roughly sortable
// by creation time; the suffix makes collisions negligible.
func NewID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + "-" + uuid.NewString()[:8]
}
