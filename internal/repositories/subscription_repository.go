package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"proforge/internal/models/db_models"
	"proforge/pkg/utils"
)

type ISubscriptionRepository interface {
	Insert(ctx context.Context, sub *db_models.Subscription) error

	// InsertPaidWallet atomically debits the wallet and writes the
	// subscription plus its pending payment transaction. Returns
	// utils.ErrInsufficientBalance without writing anything when the
	// balance does not cover the amount.
	InsertPaidWallet(ctx context.Context, sub *db_models.Subscription, txn *db_models.WalletTransaction) error

	// InsertPaidManual writes the subscription and its pending manual
	// transaction together; no balance is touched.
	InsertPaidManual(ctx context.Context, sub *db_models.Subscription, txn *db_models.WalletTransaction) error

	FindByID(ctx context.Context, id string) (*db_models.Subscription, error)
	FindActiveByAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Subscription, error)
	FindAllByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Subscription, error)
	CountActive(ctx context.Context) (int64, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) ISubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (s *subscriptionRepository) Insert(ctx context.Context, sub *db_models.Subscription) error {
	return s.db.WithContext(ctx).Create(sub).Error
}

func (s *subscriptionRepository) InsertPaidWallet(ctx context.Context, sub *db_models.Subscription, txn *db_models.WalletTransaction) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Conditional debit: matches zero rows when the balance is short,
		// so two concurrent purchases cannot both pass the gate.
		res := tx.Model(&db_models.WalletProfile{}).
			Where("account_id = ? AND wallet_balance_minor >= ?", sub.AccountID, txn.AmountMinor).
			UpdateColumn("wallet_balance_minor", gorm.Expr("wallet_balance_minor - ?", txn.AmountMinor))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrInsufficientBalance
		}

		if err := tx.Create(sub).Error; err != nil {
			return err
		}

		txn.SubscriptionID = &sub.ID
		return tx.Create(txn).Error
	})
}

func (s *subscriptionRepository) InsertPaidManual(ctx context.Context, sub *db_models.Subscription, txn *db_models.WalletTransaction) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sub).Error; err != nil {
			return err
		}
		txn.SubscriptionID = &sub.ID
		return tx.Create(txn).Error
	})
}

func (s *subscriptionRepository) FindByID(ctx context.Context, id string) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := s.db.WithContext(ctx).Preload(clause.Associations).First(&sub, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &sub, nil
}

// FindActiveByAccount returns the most recent unexpired active
// subscription. Newest-first ordering makes the pick deterministic even
// if older active rows linger.
func (s *subscriptionRepository) FindActiveByAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Subscription, error) {
	now := time.Now().Unix()

	var sub db_models.Subscription
	err := s.db.WithContext(ctx).
		Preload("Plan").
		Where("account_id = ? AND status = ? AND (expires_at IS NULL OR expires_at > ?)",
			accountID, db_models.SubStatusActive, now).
		Order("created_at DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &sub, nil
}

func (s *subscriptionRepository) FindAllByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	err := s.db.WithContext(ctx).
		Preload("Plan").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *subscriptionRepository) CountActive(ctx context.Context) (int64, error) {
	now := time.Now().Unix()

	var n int64
	err := s.db.WithContext(ctx).Model(&db_models.Subscription{}).
		Where("status = ? AND (expires_at IS NULL OR expires_at > ?)", db_models.SubStatusActive, now).
		Count(&n).Error
	return n, err
}
