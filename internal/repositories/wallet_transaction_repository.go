package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"proforge/internal/models/db_models"
	"proforge/pkg/utils"
)

type IWalletTransactionRepository interface {
	Insert(ctx context.Context, txn *db_models.WalletTransaction) error

	// InsertWithdrawalHold atomically debits the balance and records the
	// pending withdrawal; the hold is released on rejection.
	InsertWithdrawalHold(ctx context.Context, txn *db_models.WalletTransaction) error

	FindByID(ctx context.Context, id string) (*db_models.WalletTransaction, error)
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.WalletTransaction, error)
	FindByStatus(ctx context.Context, status db_models.TxnStatus) ([]db_models.WalletTransaction, error)
	CountByStatus(ctx context.Context, status db_models.TxnStatus) (int64, error)
	SumApprovedBetween(ctx context.Context, txnType db_models.TxnType, start, end int64) (int64, error)
}

type walletTransactionRepository struct {
	db *gorm.DB
}

func NewWalletTransactionRepository(db *gorm.DB) IWalletTransactionRepository {
	return &walletTransactionRepository{db: db}
}

func (w *walletTransactionRepository) Insert(ctx context.Context, txn *db_models.WalletTransaction) error {
	return w.db.WithContext(ctx).Create(txn).Error
}

func (w *walletTransactionRepository) InsertWithdrawalHold(ctx context.Context, txn *db_models.WalletTransaction) error {
	return w.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&db_models.WalletProfile{}).
			Where("account_id = ? AND wallet_balance_minor >= ?", txn.AccountID, txn.AmountMinor).
			UpdateColumn("wallet_balance_minor", gorm.Expr("wallet_balance_minor - ?", txn.AmountMinor))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrInsufficientBalance
		}

		return tx.Create(txn).Error
	})
}

func (w *walletTransactionRepository) FindByID(ctx context.Context, id string) (*db_models.WalletTransaction, error) {
	var txn db_models.WalletTransaction
	err := w.db.WithContext(ctx).First(&txn, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &txn, nil
}

func (w *walletTransactionRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.WalletTransaction, error) {
	var txns []db_models.WalletTransaction
	err := w.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}

func (w *walletTransactionRepository) FindByStatus(ctx context.Context, status db_models.TxnStatus) ([]db_models.WalletTransaction, error) {
	var txns []db_models.WalletTransaction
	err := w.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}

func (w *walletTransactionRepository) CountByStatus(ctx context.Context, status db_models.TxnStatus) (int64, error) {
	var n int64
	err := w.db.WithContext(ctx).Model(&db_models.WalletTransaction{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

func (w *walletTransactionRepository) SumApprovedBetween(ctx context.Context, txnType db_models.TxnType, start, end int64) (int64, error) {
	var total int64
	err := w.db.WithContext(ctx).Model(&db_models.WalletTransaction{}).
		Where("type = ? AND status IN ? AND processed_at BETWEEN ? AND ?",
			txnType, []db_models.TxnStatus{db_models.TxnStatusApproved, db_models.TxnStatusCompleted}, start, end).
		Select("COALESCE(SUM(amount_minor), 0)").
		Scan(&total).Error
	return total, err
}
