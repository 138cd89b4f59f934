package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"proforge/internal/models/db_models"
	"proforge/pkg/utils"
)

// SettlementService is the admin side of the wallet-transaction state
// machine: pending -> approved | rejected, both terminal. Approval is
// what credits deposits, activates paid subscriptions and fans out
// referral commissions, all in one database transaction.
type SettlementServiceInterface interface {
	Approve(ctx context.Context, txnID string, adminID uuid.UUID, note *string) error
	Reject(ctx context.Context, txnID string, adminID uuid.UUID, note *string) error
}

type SettlementService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSettlementService(db *gorm.DB, logger *zap.Logger) SettlementServiceInterface {
	return &SettlementService{db: db, logger: logger}
}

func (s *SettlementService) Approve(ctx context.Context, txnID string, adminID uuid.UUID, note *string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txn, err := lockTransaction(tx, txnID)
		if err != nil {
			return err
		}

		now := time.Now().Unix()
		if err := tx.Model(txn).Updates(map[string]interface{}{
			"status":       db_models.TxnStatusApproved,
			"processed_by": adminID,
			"processed_at": now,
			"admin_note":   note,
		}).Error; err != nil {
			return err
		}

		switch txn.Type {
		case db_models.TxnDeposit:
			if err := creditBalance(tx, txn.AccountID, txn.AmountMinor, false); err != nil {
				return err
			}
			return s.creditReferralChain(tx, txn, now)

		case db_models.TxnWithdrawal:
			// The hold was taken at request time; approval only settles
			// the record.
			return nil

		case db_models.TxnSubscription:
			if txn.SubscriptionID != nil {
				if err := tx.Model(&db_models.Subscription{}).
					Where("id = ? AND status = ?", *txn.SubscriptionID, db_models.SubStatusPending).
					Updates(map[string]interface{}{
						"status":      db_models.SubStatusActive,
						"approved_at": now,
					}).Error; err != nil {
					return err
				}
			}
			return s.creditReferralChain(tx, txn, now)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("transaction approved",
		zap.String("txn_id", txnID), zap.String("admin_id", adminID.String()))
	return nil
}

func (s *SettlementService) Reject(ctx context.Context, txnID string, adminID uuid.UUID, note *string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txn, err := lockTransaction(tx, txnID)
		if err != nil {
			return err
		}

		now := time.Now().Unix()
		if err := tx.Model(txn).Updates(map[string]interface{}{
			"status":       db_models.TxnStatusRejected,
			"processed_by": adminID,
			"processed_at": now,
			"admin_note":   note,
		}).Error; err != nil {
			return err
		}

		switch txn.Type {
		case db_models.TxnWithdrawal:
			// Release the hold.
			return creditBalance(tx, txn.AccountID, txn.AmountMinor, false)

		case db_models.TxnSubscription:
			if txn.SubscriptionID != nil {
				if err := tx.Model(&db_models.Subscription{}).
					Where("id = ? AND status = ?", *txn.SubscriptionID, db_models.SubStatusPending).
					Update("status", db_models.SubStatusRejected).Error; err != nil {
					return err
				}
			}
			if txn.Method == db_models.MethodWallet {
				// The wallet was debited at purchase time; give it back.
				return creditBalance(tx, txn.AccountID, txn.AmountMinor, false)
			}
			return nil
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("transaction rejected",
		zap.String("txn_id", txnID), zap.String("admin_id", adminID.String()))
	return nil
}

func lockTransaction(tx *gorm.DB, txnID string) (*db_models.WalletTransaction, error) {
	var txn db_models.WalletTransaction
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&txn, "id = ?", txnID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.ErrTransactionNotFound
		}
		return nil, err
	}
	if err := ensureReviewable(&txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

// ensureReviewable bounces transactions that already reached a terminal
// status, so a double-submitted review cannot credit twice.
func ensureReviewable(txn *db_models.WalletTransaction) error {
	if txn.Status.Terminal() {
		return utils.ErrTransactionSettled
	}
	return nil
}

func creditBalance(tx *gorm.DB, accountID uuid.UUID, amountMinor int64, asEarnings bool) error {
	updates := map[string]interface{}{
		"wallet_balance_minor": gorm.Expr("wallet_balance_minor + ?", amountMinor),
	}
	if asEarnings {
		updates["total_earnings_minor"] = gorm.Expr("total_earnings_minor + ?", amountMinor)
	}
	return tx.Model(&db_models.WalletProfile{}).
		Where("account_id = ?", accountID).
		Updates(updates).Error
}

// creditReferralChain walks the purchaser's referrer chain and credits
// each level, stopping where the chain runs out.
func (s *SettlementService) creditReferralChain(tx *gorm.DB, source *db_models.WalletTransaction, now int64) error {
	var profile db_models.WalletProfile
	if err := tx.First(&profile, "account_id = ?", source.AccountID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}

	referrerID := profile.ReferrerID
	for _, level := range CommissionLevels {
		if referrerID == nil {
			break
		}

		amount := CommissionAmount(source.AmountMinor, level.Percent)
		if amount > 0 {
			earning := &db_models.ReferralEarning{
				ReferrerID:          *referrerID,
				ReferredID:          source.AccountID,
				SourceTransactionID: source.ID,
				Level:               level.Level,
				Percent:             level.Percent,
				AmountMinor:         amount,
			}
			if err := tx.Create(earning).Error; err != nil {
				return err
			}

			bonusType := db_models.TxnCommission
			if level.Level == 1 {
				bonusType = db_models.TxnReferralBonus
			}
			bonus := &db_models.WalletTransaction{
				AccountID:   *referrerID,
				Type:        bonusType,
				AmountMinor: amount,
				Currency:    source.Currency,
				Status:      db_models.TxnStatusCompleted,
				Method:      db_models.MethodWallet,
				Reference:   source.ID.String(),
				ProcessedAt: &now,
			}
			if err := tx.Create(bonus).Error; err != nil {
				return err
			}

			if err := creditBalance(tx, *referrerID, amount, true); err != nil {
				return err
			}
		}

		var next db_models.WalletProfile
		if err := tx.First(&next, "account_id = ?", *referrerID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				break
			}
			return err
		}
		referrerID = next.ReferrerID
	}

	return nil
}
