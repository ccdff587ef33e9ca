// File: utils/constants.go
package utils

import "time"

// SessionKeyPrefix is the prefix used for wizard session keys in Redis.
const SessionKeyPrefix = "wizard:"

// SessionTTL is the time-to-live for a wizard session. Every successful
// mutation of the session refreshes it.
const SessionTTL = 30 * time.Minute
