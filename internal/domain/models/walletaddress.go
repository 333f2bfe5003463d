// internal/domain/models/walletaddress.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Wallet address descriptions.
const (
	WalletDescriptionPersonal = "Personal"
	WalletDescriptionExchange = "Exchange"
)

// WalletAddress is one tracked portfolio holding: either an on-chain address
// or an exchange account balance for a coin.
type WalletAddress struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Address     string             `bson:"address" json:"address"`
	CoinType    string             `bson:"coin_type" json:"coinType"` // upper-case ticker symbol, e.g. BTC
	Balance     float64            `bson:"balance" json:"balance"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// CoinTotal is the summed balance of one coin across addresses.
type CoinTotal struct {
	CoinType  string  `json:"coinType"`
	Balance   float64 `json:"balance"`
	Addresses int     `json:"addresses"`
}
