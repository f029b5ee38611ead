// seed-demo creates a demo business with sample customers, suppliers,
// money accounts and documents so the statement endpoints have data to
// render against a fresh database.
//
// Usage (from backend directory):
//   DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... go run ./cmd/seed-demo
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mmdatafocus/bizbooks_backend/config"
	"github.com/mmdatafocus/bizbooks_backend/models"
	"github.com/mmdatafocus/bizbooks_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	demoBusinessName = "Sunrise Traders"
	demoUsername     = "demoOwner"
	demoPassword     = "demo@1234"
)

func main() {
	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}
	if err := models.Migrate(db); err != nil {
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}

	var existing models.Business
	err := db.WithContext(ctx).Where("name = ?", demoBusinessName).First(&existing).Error
	if err == nil {
		fmt.Printf("Demo business already seeded: id=%s\n", existing.ID)
		return
	}
	if err != gorm.ErrRecordNotFound {
		fmt.Fprintf(os.Stderr, "failed to lookup business: %v\n", err)
		os.Exit(1)
	}

	hashed, err := utils.HashPassword(demoPassword)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
		os.Exit(1)
	}

	businessId := uuid.NewString()
	day := func(s string) time.Time {
		t, parseErr := time.Parse("2006-01-02", s)
		if parseErr != nil {
			panic(parseErr)
		}
		return t
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owner := models.User{
			BusinessId: businessId,
			Username:   demoUsername,
			Name:       "Demo Owner",
			Password:   string(hashed),
			Role:       "Owner",
			IsActive:   utils.NewTrue(),
		}
		if err := tx.Create(&owner).Error; err != nil {
			return err
		}

		business := models.Business{
			ID:          businessId,
			Name:        demoBusinessName,
			OwnerUserId: owner.ID,
			Address:     "12 Market Road",
			Phone:       "09-1234567",
			IsActive:    utils.NewTrue(),
		}
		if err := tx.Create(&business).Error; err != nil {
			return err
		}

		customers := []models.Customer{
			{BusinessId: businessId, Name: "Aung Trading", Phone: "09-7770001",
				PreviousBalance: decimal.NewFromInt(1000), IsActive: utils.NewTrue()},
			{BusinessId: businessId, Name: "Golden Mart", Phone: "09-7770002",
				PreviousBalance: decimal.Zero, IsActive: utils.NewTrue()},
		}
		if err := tx.Create(&customers).Error; err != nil {
			return err
		}

		suppliers := []models.Supplier{
			{BusinessId: businessId, Name: "City Wholesale", Phone: "09-8880001",
				PreviousBalance: decimal.NewFromInt(500), IsActive: utils.NewTrue()},
		}
		if err := tx.Create(&suppliers).Error; err != nil {
			return err
		}

		accounts := []models.MoneyAccount{
			{BusinessId: businessId, AccountType: models.MoneyAccountTypeCash,
				AccountName: "Shop Cash", OpeningBalance: decimal.NewFromInt(200000),
				IsActive: utils.NewTrue()},
			{BusinessId: businessId, AccountType: models.MoneyAccountTypeBank,
				AccountName: "KBZ Current", AccountNumber: "012-345-678",
				BankName: "KBZ", OpeningBalance: decimal.NewFromInt(1500000),
				IsActive: utils.NewTrue()},
		}
		if err := tx.Create(&accounts).Error; err != nil {
			return err
		}

		invoice := models.SalesInvoice{
			BusinessId:    businessId,
			CustomerId:    customers[0].ID,
			InvoiceNumber: "INV-0001",
			InvoiceDate:   day("2026-01-05"),
			CurrentStatus: models.DocumentStatusConfirmed,
			Details: []models.SalesInvoiceDetail{
				{ItemName: "Rice 25kg", Qty: decimal.NewFromInt(10),
					UnitPrice: decimal.NewFromInt(30), DetailTotalAmount: decimal.NewFromInt(300)},
				{ItemName: "Cooking Oil 1L", Qty: decimal.NewFromInt(20),
					UnitPrice: decimal.NewFromInt(10), DetailTotalAmount: decimal.NewFromInt(200)},
			},
			InvoiceTotalAmount: decimal.NewFromInt(500),
			RemainingBalance:   decimal.NewFromInt(300),
		}
		if err := tx.Create(&invoice).Error; err != nil {
			return err
		}

		payment := models.CustomerPayment{
			BusinessId:       businessId,
			CustomerId:       customers[0].ID,
			DepositAccountId: accounts[0].ID,
			PaymentDate:      day("2026-01-08"),
			PaymentNumber:    "PAY-0001",
			Amount:           decimal.NewFromInt(200),
			Notes:            "partial settlement",
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		bill := models.Bill{
			BusinessId:    businessId,
			SupplierId:    suppliers[0].ID,
			BillNumber:    "BILL-0001",
			BillDate:      day("2026-01-10"),
			CurrentStatus: models.DocumentStatusConfirmed,
			Details: []models.BillDetail{
				{ItemName: "Rice 25kg (bulk)", Qty: decimal.NewFromInt(50),
					UnitPrice: decimal.NewFromInt(22), DetailTotalAmount: decimal.NewFromInt(1100)},
			},
			BillTotalAmount:  decimal.NewFromInt(1100),
			RemainingBalance: decimal.NewFromInt(1100),
		}
		if err := tx.Create(&bill).Error; err != nil {
			return err
		}

		billPayment := models.BillPayment{
			BusinessId:    businessId,
			SupplierId:    suppliers[0].ID,
			PaidAccountId: accounts[1].ID,
			PaymentDate:   day("2026-01-20"),
			PaymentNumber: "SPAY-0001",
			Amount:        decimal.NewFromInt(600),
		}
		if err := tx.Create(&billPayment).Error; err != nil {
			return err
		}

		expense := models.Expense{
			BusinessId:    businessId,
			SupplierId:    suppliers[0].ID,
			PaidAccountId: accounts[0].ID,
			ExpenseDate:   day("2026-01-15"),
			ExpenseNumber: "EXP-0001",
			Category:      "Delivery",
			Amount:        decimal.NewFromInt(45),
			Notes:         "town delivery run",
		}
		if err := tx.Create(&expense).Error; err != nil {
			return err
		}

		transfer := models.BankingTransaction{
			BusinessId:      businessId,
			TransactionDate: day("2026-01-25"),
			Amount:          decimal.NewFromInt(100000),
			FromAccountId:   accounts[1].ID,
			ToAccountId:     accounts[0].ID,
			ReferenceNumber: "TRF-0001",
			Description:     "cash drawer top-up",
		}
		if err := tx.Create(&transfer).Error; err != nil {
			return err
		}

		challan := models.DeliveryChallan{
			BusinessId:    businessId,
			CustomerId:    customers[0].ID,
			ChallanNumber: "DC-0001",
			ChallanDate:   day("2026-01-04"),
			CurrentStatus: models.ChallanStatusDelivered,
			Details: []models.DeliveryChallanDetail{
				{ItemName: "Rice 25kg", Qty: decimal.NewFromInt(10)},
			},
		}
		return tx.Create(&challan).Error
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed demo data: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seeded demo business: id=%s username=%q password=%q\n", businessId, demoUsername, demoPassword)
}
