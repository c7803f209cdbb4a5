package dto

import (
	"github.com/shopspring/decimal"

	"github.com/smartstore/smartstore_backend/internal/core/domain"
)

// LedgerEntryResponse is one party's derived running balance.
type LedgerEntryResponse struct {
	PartyName    string          `json:"partyName"`
	TotalBilled  decimal.Decimal `json:"totalBilled"`
	TotalSettled decimal.Decimal `json:"totalSettled"`
	Balance      decimal.Decimal `json:"balance"`
}

// LedgerResponse wraps a party ledger, sorted by balance descending.
type LedgerResponse struct {
	Entries []LedgerEntryResponse `json:"entries"`
}

// ToLedgerResponse converts derived ledger entries to the response DTO.
func ToLedgerResponse(entries []domain.LedgerEntry) LedgerResponse {
	list := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		list[i] = LedgerEntryResponse{
			PartyName:    e.PartyName,
			TotalBilled:  e.TotalBilled,
			TotalSettled: e.TotalSettled,
			Balance:      e.Balance,
		}
	}
	return LedgerResponse{Entries: list}
}
