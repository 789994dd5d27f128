package models

import "gorm.io/datatypes"

// TransactionType defines the type of wallet transaction
type TransactionType string

const (
	TransactionTypeBuyCoins       TransactionType = "buy_coins"
	TransactionTypeSpendCoins     TransactionType = "spend_coins" // declared, no producer yet
	TransactionTypeExchangePoints TransactionType = "exchange_points"
)

// TransactionStatus defines the status of a transaction
type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "pending"
	TransactionStatusSuccess TransactionStatus = "success"
	TransactionStatusFailed  TransactionStatus = "failed"
)

// Transaction is an append-only ledger entry created on every wallet op.
// Amount counts coins or points depending on the type.
type Transaction struct {
	Model
	UserID    string            `gorm:"type:uuid;index;not null" json:"user_id"`
	Type      TransactionType   `gorm:"type:varchar(50);not null" json:"type"`
	Amount    int               `gorm:"not null" json:"amount"`
	Status    TransactionStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Reference string            `gorm:"default:''" json:"reference"`
	Meta      datatypes.JSONMap `json:"meta"`
}
