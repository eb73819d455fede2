package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

type jobSearchCacheKeyInput struct {
	UserID           uuid.UUID `json:"user_id"`
	ProfileUpdatedAt int64     `json:"profile_updated_at"`
	Limit            int       `json:"limit"`
	Offset           int       `json:"offset"`
	MinScore         int       `json:"min_score"`
}

// JobSearchCacheKey identifies one scored result page. The profile's
// updated-at timestamp is part of the key so profile edits naturally miss
// stale entries without explicit invalidation.
func JobSearchCacheKey(userID uuid.UUID, profileUpdatedAt time.Time, params JobSearchParams) string {
	in := jobSearchCacheKeyInput{
		UserID:           userID,
		ProfileUpdatedAt: profileUpdatedAt.UTC().Unix(),
		Limit:            params.Limit,
		Offset:           params.Offset,
		MinScore:         params.MinScore,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "jobs:search:" + hex.EncodeToString(sum[:])
}

func JobSearchLockKey(searchKey string) string {
	if strings.HasPrefix(searchKey, "jobs:search:") {
		return "jobs:lock:" + strings.TrimPrefix(searchKey, "jobs:search:")
	}
	return "jobs:lock:" + searchKey
}
