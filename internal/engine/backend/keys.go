package backend

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"go.quarry.build/quarry/internal/core/domain"
)

// DeriveKey combines the build-wide base key with a job index into that
// job's cache key. It is a pure function: equal inputs yield equal keys
// across calls and process restarts.
func DeriveKey(base domain.BaseKey, jobIndex int) domain.CacheKey {
	hasher := xxhash.New()
	_, _ = hasher.WriteString(string(base))
	_, _ = hasher.Write([]byte{0}) // Separator
	_ = binary.Write(hasher, binary.LittleEndian, uint64(jobIndex))
	return domain.CacheKey(fmt.Sprintf("%016x", hasher.Sum64()))
}
