package recharge

import "github.com/cyssxt/yunchaoplus-wallet/internal/record"

// ObjType tags every recharge object on the wire.
const ObjType = "recharge"

// Recharge represents a completed or pending deposit into a wallet.
// Amount is the net credited to the wallet in minor currency units; at
// creation it always equals RechargeAmount and Fee is zero (any fee/bonus
// adjustment is applied upstream, never computed here).
type Recharge struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	Created        record.Time     `json:"created"`
	Amount         int64           `json:"amount"`
	RechargeAmount int64           `json:"recharge_amount"`
	Fee            int64           `json:"fee"`
	Succeeded      bool            `json:"succeeded"`
	TimeSucceeded  record.NullTime `json:"time_succeeded"`
	WalletID       string          `json:"wallet_id"`
	Description    *string         `json:"description"`
	Extra          record.Extra    `json:"extra"`
	Settle         string          `json:"settle"`
}

// CreateInput captures the data required to record a deposit.
type CreateInput struct {
	WalletID       string
	RechargeAmount int64
	Settle         string
	Description    *string
	Extra          record.Extra
}
