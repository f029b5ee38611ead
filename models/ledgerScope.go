package models

import (
	"context"
	"errors"

	"github.com/mmdatafocus/bizbooks_backend/utils"
)

// LedgerScope is the tenancy scope a ledger build runs under. Degraded is
// true when the primary business scope was denied and the build fell back
// to the requesting user's own business.
type LedgerScope struct {
	BusinessId string
	Degraded   bool
}

// MemberBusinessId returns the business id from the request context only
// after verifying the requesting user actually belongs to it. The context
// value comes from a client-controlled header override, so every query
// path must pass through here (or through ResolveLedgerScope) before
// trusting it. CRUD paths have no fallback: a denied scope is an error.
func MemberBusinessId(ctx context.Context) (string, error) {
	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return "", errors.New("business id is required")
	}
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId <= 0 {
		return "", errors.New("user id is required")
	}

	belongs, err := UserBelongsToBusiness(ctx, userId, businessId)
	if err != nil {
		return "", err
	}
	if !belongs {
		return "", utils.ErrorPermissionDenied
	}
	return businessId, nil
}

// ResolveLedgerScope implements the explicit two-tier query strategy for
// statement reads: primary scope is the business id carried in the request
// context; if the requesting user does not belong to that business the
// fallback scope is the business the user owns, flagged as a degraded
// view. The ledger engine itself never learns about tenancy.
func ResolveLedgerScope(ctx context.Context) (LedgerScope, error) {
	businessId, err := MemberBusinessId(ctx)
	if err == nil {
		return LedgerScope{BusinessId: businessId}, nil
	}
	if err != utils.ErrorPermissionDenied {
		return LedgerScope{}, err
	}

	userId, _ := utils.GetUserIdFromContext(ctx)
	owned, err := GetOwnedBusiness(ctx, userId)
	if err != nil {
		if err == utils.ErrorRecordNotFound {
			return LedgerScope{}, utils.ErrorPermissionDenied
		}
		return LedgerScope{}, err
	}
	return LedgerScope{BusinessId: owned.ID, Degraded: true}, nil
}
