package withdraw

import "github.com/cyssxt/yunchaoplus-wallet/internal/record"

// ObjType tags every withdraw object on the wire.
const ObjType = "withdraw"

// Withdraw represents a request to move funds out of a wallet, tracked
// through the status lifecycle. Status is the only field that changes
// after creation; terminal states additionally stamp time_canceled or
// time_succeeded.
type Withdraw struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Created       record.Time     `json:"created"`
	Extra         record.Extra    `json:"extra"`
	Description   *string         `json:"description"`
	Status        Status          `json:"status"`
	WalletID      string          `json:"wallet_id"`
	Settle        string          `json:"settle"`
	TimeCanceled  record.NullTime `json:"time_canceled"`
	TimeSucceeded record.NullTime `json:"time_succeeded"`
	Amount        int64           `json:"amount"`
}

// CreateInput captures the data required to open a withdrawal request.
type CreateInput struct {
	WalletID    string
	Settle      string
	Amount      int64
	Description *string
	Extra       record.Extra
}
