package models

import (
	"context"
	"strconv"

	"github.com/mmdatafocus/bizbooks_backend/config"
	"github.com/mmdatafocus/bizbooks_backend/ledger"
	"golang.org/x/sync/errgroup"
)

// LedgerSourceSet is everything one ledger build consumes: the per-kind
// record sets mapped into engine source documents, plus the scope they
// were fetched under.
type LedgerSourceSet struct {
	Sources ledger.Sources
	Scope   LedgerScope
}

// FetchCustomerLedgerSources loads the full transaction history for one
// customer. The per-source fetches run concurrently and are awaited
// jointly: any failure aborts the whole build rather than producing a
// partial, incorrectly-balanced ledger. Every fetch is ordered by
// (date, id) so equal-date ties stay deterministic.
func FetchCustomerLedgerSources(ctx context.Context, customerId int) (*LedgerSourceSet, error) {
	scope, err := ResolveLedgerScope(ctx)
	if err != nil {
		return nil, err
	}
	db := config.GetDB()

	var invoices []SalesInvoice
	var payments []CustomerPayment

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return db.WithContext(gctx).
			Where("business_id = ? AND customer_id = ? AND current_status != ?", scope.BusinessId, customerId, DocumentStatusVoid).
			Preload("Details").
			Order("invoice_date, id").
			Find(&invoices).Error
	})
	g.Go(func() error {
		return db.WithContext(gctx).
			Where("business_id = ? AND customer_id = ?", scope.BusinessId, customerId).
			Order("payment_date, id").
			Find(&payments).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &LedgerSourceSet{
		Sources: ledger.Sources{
			Sales:    mapInvoiceDocs(invoices),
			Payments: mapCustomerPaymentDocs(payments),
		},
		Scope: scope,
	}, nil
}

// FetchSupplierLedgerSources mirrors the customer fetch with roles
// reversed: bills, payments made and supplier-linked expenses.
func FetchSupplierLedgerSources(ctx context.Context, supplierId int) (*LedgerSourceSet, error) {
	scope, err := ResolveLedgerScope(ctx)
	if err != nil {
		return nil, err
	}
	db := config.GetDB()

	var bills []Bill
	var payments []BillPayment
	var expenses []Expense

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return db.WithContext(gctx).
			Where("business_id = ? AND supplier_id = ? AND current_status != ?", scope.BusinessId, supplierId, DocumentStatusVoid).
			Preload("Details").
			Order("bill_date, id").
			Find(&bills).Error
	})
	g.Go(func() error {
		return db.WithContext(gctx).
			Where("business_id = ? AND supplier_id = ?", scope.BusinessId, supplierId).
			Order("payment_date, id").
			Find(&payments).Error
	})
	g.Go(func() error {
		return db.WithContext(gctx).
			Where("business_id = ? AND supplier_id = ?", scope.BusinessId, supplierId).
			Order("expense_date, id").
			Find(&expenses).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &LedgerSourceSet{
		Sources: ledger.Sources{
			Purchases: mapBillDocs(bills),
			Payments:  mapBillPaymentDocs(payments),
			Expenses:  mapExpenseDocs(expenses),
		},
		Scope: scope,
	}, nil
}

// FetchAccountLedgerSources loads every movement touching one bank/cash
// account: customer payments deposited into it, supplier payments and
// expenses paid out of it, and transfers between accounts. Counterparty
// names are fetched alongside so each row can carry the counter-account
// name as its particular.
func FetchAccountLedgerSources(ctx context.Context, accountId int) (*LedgerSourceSet, error) {
	scope, err := ResolveLedgerScope(ctx)
	if err != nil {
		return nil, err
	}
	db := config.GetDB()

	var deposits []CustomerPayment
	var paymentsOut []BillPayment
	var expenses []Expense
	var transfers []BankingTransaction
	var accounts []MoneyAccount
	var customers []Customer
	var suppliers []Supplier

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return db.WithContext(gctx).
			Where("business_id = ? AND deposit_account_id = ?", scope.BusinessId, accountId).
			Order("payment_date, id").
			Find(&deposits).Error
	})
	g.Go(func() error {
		return db.WithContext(gctx).
			Where("business_id = ? AND paid_account_id = ?", scope.BusinessId, accountId).
			Order("payment_date, id").
			Find(&paymentsOut).Error
	})
	g.Go(func() error {
		return db.WithContext(gctx).
			Where("business_id = ? AND paid_account_id = ?", scope.BusinessId, accountId).
			Order("expense_date, id").
			Find(&expenses).Error
	})
	g.Go(func() error {
		return db.WithContext(gctx).
			Where("business_id = ? AND (from_account_id = ? OR to_account_id = ?)", scope.BusinessId, accountId, accountId).
			Order("transaction_date, id").
			Find(&transfers).Error
	})
	g.Go(func() error {
		return db.WithContext(gctx).
			Where("business_id = ?", scope.BusinessId).
			Find(&accounts).Error
	})
	g.Go(func() error {
		return db.WithContext(gctx).
			Where("business_id = ?", scope.BusinessId).
			Find(&customers).Error
	})
	g.Go(func() error {
		return db.WithContext(gctx).
			Where("business_id = ?", scope.BusinessId).
			Find(&suppliers).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	accountNames := map[int]string{}
	for _, a := range accounts {
		accountNames[a.ID] = a.AccountName
	}
	customerNames := map[int]string{}
	for _, c := range customers {
		customerNames[c.ID] = c.Name
	}
	supplierNames := map[int]string{}
	for _, s := range suppliers {
		supplierNames[s.ID] = s.Name
	}

	transferDocs := mapDepositDocs(deposits, customerNames)
	transferDocs = append(transferDocs, mapOutgoingPaymentDocs(paymentsOut, supplierNames)...)
	transferDocs = append(transferDocs, mapAccountTransferDocs(transfers, accountId, accountNames)...)

	return &LedgerSourceSet{
		Sources: ledger.Sources{
			Expenses:  mapExpenseDocs(expenses),
			Transfers: transferDocs,
		},
		Scope: scope,
	}, nil
}

/* record -> engine source document mapping (pure) */

func mapInvoiceDocs(invoices []SalesInvoice) []ledger.SaleDoc {
	docs := make([]ledger.SaleDoc, 0, len(invoices))
	for _, inv := range invoices {
		doc := ledger.SaleDoc{
			ID:            "IV:" + strconv.Itoa(inv.ID),
			Date:          inv.InvoiceDate,
			InvoiceNumber: inv.InvoiceNumber,
		}
		for _, d := range inv.Details {
			doc.Lines = append(doc.Lines, ledger.SaleLine{
				Description: d.ItemName,
				Qty:         d.Qty,
				UnitPrice:   d.UnitPrice,
			})
		}
		docs = append(docs, doc)
	}
	return docs
}

func mapCustomerPaymentDocs(payments []CustomerPayment) []ledger.PaymentDoc {
	docs := make([]ledger.PaymentDoc, 0, len(payments))
	for _, p := range payments {
		docs = append(docs, ledger.PaymentDoc{
			ID:         "CP:" + strconv.Itoa(p.ID),
			Date:       p.PaymentDate,
			BillNumber: p.PaymentNumber,
			Particular: "Payment Received",
			Amount:     p.Amount,
			Notes:      p.Notes,
		})
	}
	return docs
}

func mapBillDocs(bills []Bill) []ledger.PurchaseDoc {
	docs := make([]ledger.PurchaseDoc, 0, len(bills))
	for _, b := range bills {
		doc := ledger.PurchaseDoc{
			ID:         "BL:" + strconv.Itoa(b.ID),
			Date:       b.BillDate,
			BillNumber: b.BillNumber,
		}
		for _, d := range b.Details {
			doc.Lines = append(doc.Lines, ledger.SaleLine{
				Description: d.ItemName,
				Qty:         d.Qty,
				UnitPrice:   d.UnitPrice,
			})
		}
		docs = append(docs, doc)
	}
	return docs
}

func mapBillPaymentDocs(payments []BillPayment) []ledger.PaymentDoc {
	docs := make([]ledger.PaymentDoc, 0, len(payments))
	for _, p := range payments {
		docs = append(docs, ledger.PaymentDoc{
			ID:         "SP:" + strconv.Itoa(p.ID),
			Date:       p.PaymentDate,
			BillNumber: p.PaymentNumber,
			Particular: "Payment Made",
			Amount:     p.Amount,
			Notes:      p.Notes,
		})
	}
	return docs
}

func mapExpenseDocs(expenses []Expense) []ledger.ExpenseDoc {
	docs := make([]ledger.ExpenseDoc, 0, len(expenses))
	for _, e := range expenses {
		docs = append(docs, ledger.ExpenseDoc{
			ID:       "EP:" + strconv.Itoa(e.ID),
			Date:     e.ExpenseDate,
			Category: e.Category,
			Amount:   e.Amount,
			Notes:    e.Notes,
		})
	}
	return docs
}

func mapAccountTransferDocs(transfers []BankingTransaction, accountId int, accountNames map[int]string) []ledger.TransferDoc {
	docs := make([]ledger.TransferDoc, 0, len(transfers))
	for _, t := range transfers {
		inbound := t.ToAccountId == accountId
		counterId := t.FromAccountId
		if !inbound {
			counterId = t.ToAccountId
		}
		counter := accountNames[counterId]
		if counter == "" {
			counter = "Account Transfer"
		}
		docs = append(docs, ledger.TransferDoc{
			ID:             "BT:" + strconv.Itoa(t.ID),
			Date:           t.TransactionDate,
			CounterAccount: counter,
			Amount:         t.Amount,
			Inbound:        inbound,
			Reference:      t.ReferenceNumber,
			Notes:          t.Description,
		})
	}
	return docs
}

func mapDepositDocs(deposits []CustomerPayment, customerNames map[int]string) []ledger.TransferDoc {
	docs := make([]ledger.TransferDoc, 0, len(deposits))
	for _, p := range deposits {
		counter := customerNames[p.CustomerId]
		if counter == "" {
			counter = "Customer Payment"
		}
		docs = append(docs, ledger.TransferDoc{
			ID:             "CP:" + strconv.Itoa(p.ID),
			Date:           p.PaymentDate,
			CounterAccount: counter,
			Amount:         p.Amount,
			Inbound:        true,
			Reference:      p.PaymentNumber,
			Notes:          p.Notes,
		})
	}
	return docs
}

func mapOutgoingPaymentDocs(payments []BillPayment, supplierNames map[int]string) []ledger.TransferDoc {
	docs := make([]ledger.TransferDoc, 0, len(payments))
	for _, p := range payments {
		counter := supplierNames[p.SupplierId]
		if counter == "" {
			counter = "Supplier Payment"
		}
		docs = append(docs, ledger.TransferDoc{
			ID:             "SP:" + strconv.Itoa(p.ID),
			Date:           p.PaymentDate,
			CounterAccount: counter,
			Amount:         p.Amount,
			Inbound:        false,
			Reference:      p.PaymentNumber,
			Notes:          p.Notes,
		})
	}
	return docs
}
