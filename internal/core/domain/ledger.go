package domain

import "github.com/shopspring/decimal"

// LedgerEntry is the derived running balance for a single party.
// It is recomputed from the full transaction and movement history on every
// request and is never persisted.
type LedgerEntry struct {
	PartyName    string          `json:"partyName"`
	TotalBilled  decimal.Decimal `json:"totalBilled"`  // Sum of invoice totals
	TotalSettled decimal.Decimal `json:"totalSettled"` // Point-of-sale payments plus standalone movements
	Balance      decimal.Decimal `json:"balance"`      // billed - settled
}
