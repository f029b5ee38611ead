package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// GetStatementCacheLifespan returns the TTL for cached ledger statements.
// Statements are rebuilt from source on every miss, so a short TTL is enough.
func GetStatementCacheLifespan() time.Duration {
	minutes, err := strconv.Atoi(os.Getenv("STATEMENT_CACHE_MINUTES"))
	if err != nil || minutes <= 0 {
		minutes = 5
	}
	return time.Duration(minutes) * time.Minute
}

// StatementCacheKey builds the redis key for one rendered statement. The
// key carries every input the build depends on, including the requesting
// user: scope resolution can fall back per user, so two users asking for
// the same statement may legitimately see different ledgers.
func StatementCacheKey(businessId string, userId int, scope string, entityId int, from, to, search string) string {
	return strings.Join([]string{
		"Statement",
		businessId,
		fmt.Sprint(userId),
		scope,
		fmt.Sprint(entityId),
		from,
		to,
		search,
	}, ":")
}
