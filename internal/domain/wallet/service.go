package wallet

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) GetOrCreateWallet(ctx context.Context, userID int64) (*AgentWallet, error) {
	wallet, err := s.getWalletByUserID(ctx, userID)
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	wallet = &AgentWallet{UserID: userID, Balance: 0}
	if err := s.db.WithContext(ctx).Create(wallet).Error; err != nil {
		if isUniqueConstraintError(err) {
			return s.getWalletByUserID(ctx, userID)
		}
		return nil, err
	}
	return wallet, nil
}

// Add tops up an agent's balance.
func (s *Service) Add(ctx context.Context, userID int64, amount float64) (*AgentWallet, *WalletTransaction, error) {
	if amount <= 0 {
		return nil, nil, ErrInvalidAmount
	}

	var wallet AgentWallet
	var txn WalletTransaction

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := getOrCreateWalletForUpdate(tx, userID, &wallet); err != nil {
			return err
		}

		wallet.Balance += amount
		if err := tx.Model(&AgentWallet{}).Where("id = ?", wallet.ID).Update("balance", wallet.Balance).Error; err != nil {
			return err
		}

		txn = WalletTransaction{WalletID: wallet.ID, Amount: amount, Type: TransactionTypeAdd}
		if err := tx.Create(&txn).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &wallet, &txn, nil
}

// Spend debits an agent's balance in its own transaction.
func (s *Service) Spend(ctx context.Context, userID int64, amount float64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.SpendTx(tx, userID, amount)
	})
}

// SpendTx debits an agent's balance inside the caller's transaction. The
// booking claim flow uses it so a failed claim append rolls the debit back
// with everything else.
func (s *Service) SpendTx(tx *gorm.DB, userID int64, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	var wallet AgentWallet
	if err := getOrCreateWalletForUpdate(tx, userID, &wallet); err != nil {
		return err
	}

	if wallet.Balance < amount {
		return ErrInsufficientFunds
	}

	wallet.Balance -= amount
	if err := tx.Model(&AgentWallet{}).Where("id = ?", wallet.ID).Update("balance", wallet.Balance).Error; err != nil {
		return err
	}

	txn := WalletTransaction{WalletID: wallet.ID, Amount: amount, Type: TransactionTypeSpend}
	return tx.Create(&txn).Error
}

// Refund credits back a previously spent amount in its own transaction.
func (s *Service) Refund(ctx context.Context, userID int64, amount float64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.RefundTx(tx, userID, amount)
	})
}

// RefundTx credits back a previously spent amount inside the caller's
// transaction (refund-adjustment claims).
func (s *Service) RefundTx(tx *gorm.DB, userID int64, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	var wallet AgentWallet
	if err := getOrCreateWalletForUpdate(tx, userID, &wallet); err != nil {
		return err
	}

	wallet.Balance += amount
	if err := tx.Model(&AgentWallet{}).Where("id = ?", wallet.ID).Update("balance", wallet.Balance).Error; err != nil {
		return err
	}

	txn := WalletTransaction{WalletID: wallet.ID, Amount: amount, Type: TransactionTypeRefund}
	return tx.Create(&txn).Error
}

func (s *Service) ListTransactions(ctx context.Context, userID int64) ([]WalletTransaction, error) {
	wallet, err := s.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	var txns []WalletTransaction
	if err := s.db.WithContext(ctx).Where("wallet_id = ?", wallet.ID).Order("created_at desc").Find(&txns).Error; err != nil {
		return nil, err
	}

	return txns, nil
}

func (s *Service) getWalletByUserID(ctx context.Context, userID int64) (*AgentWallet, error) {
	var wallet AgentWallet
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&wallet).Error; err != nil {
		return nil, err
	}
	return &wallet, nil
}

func getOrCreateWalletForUpdate(tx *gorm.DB, userID int64, wallet *AgentWallet) error {
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("user_id = ?", userID).First(wallet).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		*wallet = AgentWallet{UserID: userID, Balance: 0}
		if err := tx.Create(wallet).Error; err != nil {
			if isUniqueConstraintError(err) {
				return tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("user_id = ?", userID).First(wallet).Error
			}
			return err
		}
	}
	return nil
}

func isUniqueConstraintError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "unique failed")
}
