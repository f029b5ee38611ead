package models

type MoneyAccountType string

const (
	MoneyAccountTypeCash MoneyAccountType = "cash"
	MoneyAccountTypeBank MoneyAccountType = "bank"
	MoneyAccountTypeCard MoneyAccountType = "card"
)

type DocumentStatus string

const (
	DocumentStatusDraft     DocumentStatus = "Draft"
	DocumentStatusConfirmed DocumentStatus = "Confirmed"
	DocumentStatusPartial   DocumentStatus = "Partial Paid"
	DocumentStatusPaid      DocumentStatus = "Paid"
	DocumentStatusVoid      DocumentStatus = "Void"
)

type ChallanStatus string

const (
	ChallanStatusOpen      ChallanStatus = "Open"
	ChallanStatusDelivered ChallanStatus = "Delivered"
	ChallanStatusInvoiced  ChallanStatus = "Invoiced"
	ChallanStatusCancelled ChallanStatus = "Cancelled"
)
