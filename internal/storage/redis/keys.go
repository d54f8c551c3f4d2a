package redis

import (
	"fmt"

	"github.com/nucleobets/backend/internal/model"
)

// Key prefix for all stored data
const keyPrefix = "nucleobets"

// userKey returns the Redis key for a User document
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> user_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// emailIndexKey returns the Redis key for the email -> user_id index
func emailIndexKey(email string) string {
	return fmt.Sprintf("%s:idx:email:%s", keyPrefix, email)
}

// usersIndexKey returns the Redis key for the ZSET of all user ids,
// scored by creation time
func usersIndexKey() string {
	return fmt.Sprintf("%s:idx:users", keyPrefix)
}

// analysisKey returns the Redis key for an Analysis document
func analysisKey(id model.AnalysisID) string {
	return fmt.Sprintf("%s:analysis:%s", keyPrefix, id)
}

// analysesIndexKey returns the Redis key for the ZSET of all analysis ids,
// scored by creation time
func analysesIndexKey() string {
	return fmt.Sprintf("%s:idx:analyses", keyPrefix)
}

// tipKey returns the Redis key for a ValuableTip document
func tipKey(id model.TipID) string {
	return fmt.Sprintf("%s:tip:%s", keyPrefix, id)
}

// tipsIndexKey returns the Redis key for the ZSET of all tip ids,
// scored by creation time
func tipsIndexKey() string {
	return fmt.Sprintf("%s:idx:tips", keyPrefix)
}
