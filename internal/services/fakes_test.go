package services

import (
	"context"

	"github.com/google/uuid"

	"proforge/internal/models/db_models"
	"proforge/pkg/utils"
)

// In-memory stand-ins for the gorm repositories. They reproduce the
// contracts the services rely on (not-found as nil, conditional debits,
// quota-gated inserts) without a database.

type fakePlanRepo struct {
	plans map[string]*db_models.Plan
	free  *db_models.Plan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: map[string]*db_models.Plan{}}
}

func (f *fakePlanRepo) add(plan *db_models.Plan) *db_models.Plan {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	f.plans[plan.ID.String()] = plan
	return plan
}

func (f *fakePlanRepo) GetByID(_ context.Context, planID string) (*db_models.Plan, error) {
	return f.plans[planID], nil
}

func (f *fakePlanRepo) GetByCode(_ context.Context, code string) (*db_models.Plan, error) {
	for _, p := range f.plans {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePlanRepo) GetAll(_ context.Context, activeOnly bool) ([]db_models.Plan, error) {
	var result []db_models.Plan
	for _, p := range f.plans {
		if activeOnly && !p.IsActive {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

func (f *fakePlanRepo) GetFreePlan(_ context.Context) (*db_models.Plan, error) {
	return f.free, nil
}

func (f *fakePlanRepo) Insert(_ context.Context, plan *db_models.Plan) error {
	f.add(plan)
	return nil
}

func (f *fakePlanRepo) Update(_ context.Context, plan *db_models.Plan) error {
	f.plans[plan.ID.String()] = plan
	return nil
}

func (f *fakePlanRepo) Delete(_ context.Context, planID string) error {
	delete(f.plans, planID)
	return nil
}

type fakeSubscriptionRepo struct {
	active        *db_models.Subscription
	all           []db_models.Subscription
	inserted      []*db_models.Subscription
	insertedTxns  []*db_models.WalletTransaction
	walletBalance int64
}

func (f *fakeSubscriptionRepo) Insert(_ context.Context, sub *db_models.Subscription) error {
	sub.ID = uuid.New()
	f.inserted = append(f.inserted, sub)
	return nil
}

func (f *fakeSubscriptionRepo) InsertPaidWallet(_ context.Context, sub *db_models.Subscription, txn *db_models.WalletTransaction) error {
	if f.walletBalance < txn.AmountMinor {
		return utils.ErrInsufficientBalance
	}
	f.walletBalance -= txn.AmountMinor
	sub.ID = uuid.New()
	txn.SubscriptionID = &sub.ID
	f.inserted = append(f.inserted, sub)
	f.insertedTxns = append(f.insertedTxns, txn)
	return nil
}

func (f *fakeSubscriptionRepo) InsertPaidManual(_ context.Context, sub *db_models.Subscription, txn *db_models.WalletTransaction) error {
	sub.ID = uuid.New()
	txn.SubscriptionID = &sub.ID
	f.inserted = append(f.inserted, sub)
	f.insertedTxns = append(f.insertedTxns, txn)
	return nil
}

func (f *fakeSubscriptionRepo) FindByID(_ context.Context, id string) (*db_models.Subscription, error) {
	for _, s := range f.inserted {
		if s.ID.String() == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSubscriptionRepo) FindActiveByAccount(_ context.Context, _ uuid.UUID) (*db_models.Subscription, error) {
	return f.active, nil
}

func (f *fakeSubscriptionRepo) FindAllByAccount(_ context.Context, _ uuid.UUID) ([]db_models.Subscription, error) {
	return f.all, nil
}

func (f *fakeSubscriptionRepo) CountActive(_ context.Context) (int64, error) {
	if f.active != nil {
		return 1, nil
	}
	return 0, nil
}

type fakeProfilePageRepo struct {
	pages map[string]*db_models.ProfilePage
	taken map[string]bool
	count int64
}

func newFakeProfilePageRepo() *fakeProfilePageRepo {
	return &fakeProfilePageRepo{
		pages: map[string]*db_models.ProfilePage{},
		taken: map[string]bool{},
	}
}

func (f *fakeProfilePageRepo) CreateWithQuota(_ context.Context, page *db_models.ProfilePage, maxAllowed int) error {
	if f.count >= int64(maxAllowed) {
		return utils.ErrQuotaExceeded
	}
	page.ID = uuid.New()
	f.pages[page.ID.String()] = page
	f.taken[page.CustomURL] = true
	f.count++
	return nil
}

func (f *fakeProfilePageRepo) FindByID(_ context.Context, id string) (*db_models.ProfilePage, error) {
	return f.pages[id], nil
}

func (f *fakeProfilePageRepo) FindByAccount(_ context.Context, accountID uuid.UUID) ([]db_models.ProfilePage, error) {
	var result []db_models.ProfilePage
	for _, p := range f.pages {
		if p.AccountID == accountID {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (f *fakeProfilePageRepo) FindActiveByCustomURL(_ context.Context, customURL string) (*db_models.ProfilePage, error) {
	for _, p := range f.pages {
		if p.CustomURL == customURL && p.IsActive {
			// The real repository loads a detached snapshot; return a copy so
			// later mutations (e.g. IncrementViews) don't alias into it.
			snapshot := *p
			return &snapshot, nil
		}
	}
	return nil, nil
}

func (f *fakeProfilePageRepo) CustomURLTaken(_ context.Context, customURL string, excludeID uuid.UUID) (bool, error) {
	for _, p := range f.pages {
		if p.CustomURL == customURL && p.ID != excludeID {
			return true, nil
		}
	}
	return f.taken[customURL], nil
}

func (f *fakeProfilePageRepo) CountByAccount(_ context.Context, _ uuid.UUID) (int64, error) {
	return f.count, nil
}

func (f *fakeProfilePageRepo) CountCreatedBetween(_ context.Context, _, _ int64) (int64, error) {
	return f.count, nil
}

func (f *fakeProfilePageRepo) Update(_ context.Context, page *db_models.ProfilePage) error {
	f.pages[page.ID.String()] = page
	return nil
}

func (f *fakeProfilePageRepo) Delete(_ context.Context, id string, _ uuid.UUID) error {
	delete(f.pages, id)
	f.count--
	return nil
}

func (f *fakeProfilePageRepo) IncrementViews(_ context.Context, id uuid.UUID) error {
	if p, ok := f.pages[id.String()]; ok {
		p.ViewCount++
	}
	return nil
}

type fakeProductRepo struct {
	products map[string]*db_models.Product
	count    int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*db_models.Product{}}
}

func (f *fakeProductRepo) CreateWithQuota(_ context.Context, product *db_models.Product, maxAllowed int) error {
	if f.count >= int64(maxAllowed) {
		return utils.ErrQuotaExceeded
	}
	product.ID = uuid.New()
	f.products[product.ID.String()] = product
	f.count++
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id string) (*db_models.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) FindByAccount(_ context.Context, accountID uuid.UUID) ([]db_models.Product, error) {
	var result []db_models.Product
	for _, p := range f.products {
		if p.AccountID == accountID {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (f *fakeProductRepo) CountByAccount(_ context.Context, _ uuid.UUID) (int64, error) {
	return f.count, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *db_models.Product) error {
	f.products[product.ID.String()] = product
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string, _ uuid.UUID) error {
	delete(f.products, id)
	f.count--
	return nil
}

func (f *fakeProductRepo) SetActive(_ context.Context, id string, active bool) error {
	if p, ok := f.products[id]; ok {
		p.IsActive = active
	}
	return nil
}

type fakeTemplateRepo struct {
	templates map[string]*db_models.Template
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: map[string]*db_models.Template{}}
}

func (f *fakeTemplateRepo) add(template *db_models.Template) *db_models.Template {
	if template.ID == uuid.Nil {
		template.ID = uuid.New()
	}
	f.templates[template.ID.String()] = template
	return template
}

func (f *fakeTemplateRepo) GetAll(_ context.Context) ([]db_models.Template, error) {
	var result []db_models.Template
	for _, t := range f.templates {
		result = append(result, *t)
	}
	return result, nil
}

func (f *fakeTemplateRepo) GetByID(_ context.Context, id string) (*db_models.Template, error) {
	return f.templates[id], nil
}

type fakeWalletProfileRepo struct {
	profiles       map[uuid.UUID]*db_models.WalletProfile
	referralBumped []uuid.UUID
}

func newFakeWalletProfileRepo() *fakeWalletProfileRepo {
	return &fakeWalletProfileRepo{profiles: map[uuid.UUID]*db_models.WalletProfile{}}
}

// Insert seeds a profile directly; production rows are created through
// the account repository's signup transaction.
func (f *fakeWalletProfileRepo) Insert(_ context.Context, profile *db_models.WalletProfile) error {
	profile.ID = uuid.New()
	f.profiles[profile.AccountID] = profile
	return nil
}

func (f *fakeWalletProfileRepo) FindByAccountID(_ context.Context, accountID uuid.UUID) (*db_models.WalletProfile, error) {
	return f.profiles[accountID], nil
}

func (f *fakeWalletProfileRepo) FindByReferralCode(_ context.Context, code string) (*db_models.WalletProfile, error) {
	for _, p := range f.profiles {
		if p.ReferralCode == code {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeWalletProfileRepo) IncrementReferralCount(accountID uuid.UUID) {
	f.referralBumped = append(f.referralBumped, accountID)
	if p, ok := f.profiles[accountID]; ok {
		p.ReferralCount++
	}
}

type fakeTransactionRepo struct {
	txns    []*db_models.WalletTransaction
	balance int64
}

func (f *fakeTransactionRepo) Insert(_ context.Context, txn *db_models.WalletTransaction) error {
	txn.ID = uuid.New()
	f.txns = append(f.txns, txn)
	return nil
}

func (f *fakeTransactionRepo) InsertWithdrawalHold(_ context.Context, txn *db_models.WalletTransaction) error {
	if f.balance < txn.AmountMinor {
		return utils.ErrInsufficientBalance
	}
	f.balance -= txn.AmountMinor
	txn.ID = uuid.New()
	f.txns = append(f.txns, txn)
	return nil
}

func (f *fakeTransactionRepo) FindByID(_ context.Context, id string) (*db_models.WalletTransaction, error) {
	for _, t := range f.txns {
		if t.ID.String() == id {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTransactionRepo) FindByAccount(_ context.Context, accountID uuid.UUID) ([]db_models.WalletTransaction, error) {
	var result []db_models.WalletTransaction
	for _, t := range f.txns {
		if t.AccountID == accountID {
			result = append(result, *t)
		}
	}
	return result, nil
}

func (f *fakeTransactionRepo) FindByStatus(_ context.Context, status db_models.TxnStatus) ([]db_models.WalletTransaction, error) {
	var result []db_models.WalletTransaction
	for _, t := range f.txns {
		if t.Status == status {
			result = append(result, *t)
		}
	}
	return result, nil
}

func (f *fakeTransactionRepo) CountByStatus(_ context.Context, status db_models.TxnStatus) (int64, error) {
	var n int64
	for _, t := range f.txns {
		if t.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeTransactionRepo) SumApprovedBetween(_ context.Context, txnType db_models.TxnType, _, _ int64) (int64, error) {
	var total int64
	for _, t := range f.txns {
		if t.Type == txnType && t.Status.Terminal() && t.Status != db_models.TxnStatusRejected {
			total += t.AmountMinor
		}
	}
	return total, nil
}

type fakePaymentSettingRepo struct {
	setting *db_models.PaymentSetting
}

func (f *fakePaymentSettingRepo) Get(_ context.Context) (*db_models.PaymentSetting, error) {
	return f.setting, nil
}

func (f *fakePaymentSettingRepo) Upsert(_ context.Context, setting *db_models.PaymentSetting) error {
	f.setting = setting
	return nil
}

type fakeReferralRepo struct {
	earnings []db_models.ReferralEarning
}

func (f *fakeReferralRepo) FindByReferrer(_ context.Context, referrerID uuid.UUID) ([]db_models.ReferralEarning, error) {
	var result []db_models.ReferralEarning
	for _, e := range f.earnings {
		if e.ReferrerID == referrerID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (f *fakeReferralRepo) SumByReferrer(_ context.Context, referrerID uuid.UUID) (int64, error) {
	var total int64
	for _, e := range f.earnings {
		if e.ReferrerID == referrerID {
			total += e.AmountMinor
		}
	}
	return total, nil
}
