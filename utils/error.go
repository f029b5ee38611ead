package utils

import "errors"

var ErrorRecordNotFound = errors.New("record not found")

// ErrorPermissionDenied marks a tenancy-scope rejection. The ledger source
// fetch layer retries denied business-scope queries with owner scope.
var ErrorPermissionDenied = errors.New("permission denied for business scope")

func ErrorDuplicateRecord(column string) error {
	return errors.New(column + " already exists")
}
