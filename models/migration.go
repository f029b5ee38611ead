package models

import "gorm.io/gorm"

// Migrate creates/updates every table this backend owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Business{},
		&User{},
		&Customer{},
		&Supplier{},
		&MoneyAccount{},
		&SalesInvoice{},
		&SalesInvoiceDetail{},
		&CustomerPayment{},
		&Bill{},
		&BillDetail{},
		&BillPayment{},
		&Expense{},
		&BankingTransaction{},
		&DeliveryChallan{},
		&DeliveryChallanDetail{},
	)
}
