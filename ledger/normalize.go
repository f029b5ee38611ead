package ledger

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Normalize converts every source record into uniform entries, in arrival
// order: sales, payments, purchases, expenses, transfers. Records without
// a parseable date are excluded and reported in Diagnostics.Undated;
// malformed amounts are zero-coerced and counted. Source documents are
// never mutated.
func Normalize(src Sources) ([]Entry, Diagnostics) {
	var entries []Entry
	var diag Diagnostics

	for _, doc := range src.Sales {
		entries = append(entries, normalizeSale(doc, &diag)...)
	}
	for _, doc := range src.Payments {
		if e, ok := normalizePayment(doc, &diag); ok {
			entries = append(entries, e)
		}
	}
	for _, doc := range src.Purchases {
		entries = append(entries, normalizePurchase(doc, &diag)...)
	}
	for _, doc := range src.Expenses {
		if e, ok := normalizeExpense(doc, &diag); ok {
			entries = append(entries, e)
		}
	}
	for _, doc := range src.Transfers {
		if e, ok := normalizeTransfer(doc, &diag); ok {
			entries = append(entries, e)
		}
	}
	return entries, diag
}

func normalizeSale(doc SaleDoc, diag *Diagnostics) []Entry {
	date, ok := NormalizeDate(doc.Date)
	if !ok {
		diag.Undated = append(diag.Undated, UndatedRecord{SourceID: doc.ID, Kind: KindSaleItem})
		return nil
	}
	folio := doc.InvoiceNumber
	if folio == "" {
		folio = NoFolio
	}
	entries := make([]Entry, 0, len(doc.Lines))
	for i, line := range doc.Lines {
		qty, coerced := ParseAmount(line.Qty)
		if coerced {
			diag.CoercedAmounts++
		}
		price, coerced := ParseAmount(line.UnitPrice)
		if coerced {
			diag.CoercedAmounts++
		}
		entries = append(entries, Entry{
			ID:         doc.ID + ":" + strconv.Itoa(i),
			Kind:       KindSaleItem,
			Date:       date,
			Particular: line.Description,
			Folio:      folio,
			Debit:      qty.Mul(price),
			Credit:     decimal.Zero,
			Visible:    true,
		})
	}
	return entries
}

func normalizePayment(doc PaymentDoc, diag *Diagnostics) (Entry, bool) {
	date, ok := NormalizeDate(doc.Date)
	if !ok {
		diag.Undated = append(diag.Undated, UndatedRecord{SourceID: doc.ID, Kind: KindPayment})
		return Entry{}, false
	}
	amount, coerced := ParseAmount(doc.Amount)
	if coerced {
		diag.CoercedAmounts++
	}
	particular := doc.Particular
	if particular == "" {
		particular = "Payment Received"
	}
	folio := doc.BillNumber
	if folio == "" {
		folio = NoFolio
	}
	return Entry{
		ID:         doc.ID,
		Kind:       KindPayment,
		Date:       date,
		Particular: particular,
		Folio:      folio,
		Debit:      decimal.Zero,
		Credit:     amount,
		Notes:      doc.Notes,
		Visible:    true,
	}, true
}

func normalizePurchase(doc PurchaseDoc, diag *Diagnostics) []Entry {
	date, ok := NormalizeDate(doc.Date)
	if !ok {
		diag.Undated = append(diag.Undated, UndatedRecord{SourceID: doc.ID, Kind: KindPurchase})
		return nil
	}
	folio := doc.BillNumber
	if folio == "" {
		folio = NoFolio
	}
	entries := make([]Entry, 0, len(doc.Lines))
	for i, line := range doc.Lines {
		qty, coerced := ParseAmount(line.Qty)
		if coerced {
			diag.CoercedAmounts++
		}
		price, coerced := ParseAmount(line.UnitPrice)
		if coerced {
			diag.CoercedAmounts++
		}
		entries = append(entries, Entry{
			ID:         doc.ID + ":" + strconv.Itoa(i),
			Kind:       KindPurchase,
			Date:       date,
			Particular: line.Description,
			Folio:      folio,
			Debit:      qty.Mul(price),
			Credit:     decimal.Zero,
			Visible:    true,
		})
	}
	return entries
}

func normalizeExpense(doc ExpenseDoc, diag *Diagnostics) (Entry, bool) {
	date, ok := NormalizeDate(doc.Date)
	if !ok {
		diag.Undated = append(diag.Undated, UndatedRecord{SourceID: doc.ID, Kind: KindExpense})
		return Entry{}, false
	}
	amount, coerced := ParseAmount(doc.Amount)
	if coerced {
		diag.CoercedAmounts++
	}
	return Entry{
		ID:         doc.ID,
		Kind:       KindExpense,
		Date:       date,
		Particular: doc.Category,
		Folio:      NoFolio,
		Debit:      amount,
		Credit:     decimal.Zero,
		Notes:      doc.Notes,
		Visible:    true,
	}, true
}

func normalizeTransfer(doc TransferDoc, diag *Diagnostics) (Entry, bool) {
	kind := KindTransferOut
	if doc.Inbound {
		kind = KindTransferIn
	}
	date, ok := NormalizeDate(doc.Date)
	if !ok {
		diag.Undated = append(diag.Undated, UndatedRecord{SourceID: doc.ID, Kind: kind})
		return Entry{}, false
	}
	amount, coerced := ParseAmount(doc.Amount)
	if coerced {
		diag.CoercedAmounts++
	}
	folio := doc.Reference
	if folio == "" {
		folio = NoFolio
	}
	e := Entry{
		ID:         doc.ID,
		Kind:       kind,
		Date:       date,
		Particular: doc.CounterAccount,
		Folio:      folio,
		Debit:      decimal.Zero,
		Credit:     decimal.Zero,
		Notes:      doc.Notes,
		Visible:    true,
	}
	if doc.Inbound {
		e.Credit = amount
	} else {
		e.Debit = amount
	}
	return e, true
}
