package ledger

// Source documents are the already-fetched record sets the engine consumes.
// Date and amount fields are deliberately loose (any): the storage layer
// hands through whatever shape the stored record carries and the
// normalizer owns the coercion.

// SaleLine is one line item of a sale document. Each line becomes its own
// SaleItem entry (debit = qty x unit price).
type SaleLine struct {
	Description string
	Qty         any
	UnitPrice   any
}

// SaleDoc is a sales invoice. InvoiceNumber is the folio linking its lines.
type SaleDoc struct {
	ID            string
	Date          any
	InvoiceNumber string
	Lines         []SaleLine
}

// PaymentDoc is a payment received (customer ledger) or made (supplier
// ledger). Particular defaults to "Payment Received" when empty.
type PaymentDoc struct {
	ID         string
	Date       any
	BillNumber string
	Particular string
	Amount     any
	Notes      string
}

// PurchaseDoc mirrors SaleDoc with roles reversed for a supplier-scoped
// ledger; BillNumber is the folio.
type PurchaseDoc struct {
	ID         string
	Date       any
	BillNumber string
	Lines      []SaleLine
}

// ExpenseDoc is a category expense.
type ExpenseDoc struct {
	ID       string
	Date     any
	Category string
	Amount   any
	Notes    string
}

// TransferDoc is one leg of a bank/cash movement already resolved against
// the scoped account: Inbound means the scoped account received the money.
type TransferDoc struct {
	ID             string
	Date           any
	CounterAccount string
	Amount         any
	Inbound        bool
	Reference      string
	Notes          string
}

// Sources carries every record set for one ledger build. Slice order is
// the deterministic arrival order used to break equal-date ties.
type Sources struct {
	Sales     []SaleDoc
	Payments  []PaymentDoc
	Purchases []PurchaseDoc
	Expenses  []ExpenseDoc
	Transfers []TransferDoc
}
