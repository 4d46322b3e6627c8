package wallet

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripmarket/internal/domain/auth"
)

const (
	TransactionTypeAdd    = "ADD"
	TransactionTypeSpend  = "SPEND"
	TransactionTypeRefund = "REFUND"
)

// AgentWallet holds an agent's prepaid balance used to settle booking
// payment claims.
type AgentWallet struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID  int64     `json:"user_id" gorm:"not null;uniqueIndex"`
	Balance float64   `json:"balance" gorm:"not null;default:0"`

	User *auth.User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (AgentWallet) TableName() string {
	return "agent_wallets"
}

func (w *AgentWallet) BeforeCreate(_ *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// WalletTransaction records balance operations, append-only.
type WalletTransaction struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	WalletID  uuid.UUID `json:"wallet_id" gorm:"type:uuid;not null;index"`
	Amount    float64   `json:"amount" gorm:"not null"`
	Type      string    `json:"type" gorm:"type:varchar(16);not null;index;check:type IN ('ADD','SPEND','REFUND')"`
	Reference string    `json:"reference,omitempty"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Wallet *AgentWallet `json:"wallet,omitempty" gorm:"foreignKey:WalletID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (WalletTransaction) TableName() string {
	return "wallet_transactions"
}

func (t *WalletTransaction) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
