// Package fallback supplies the sample datasets the service serves when the
// database is unreachable. The provider is injected so deployments can swap
// the dataset and tests can assert degraded-mode behavior.
package fallback

import (
	"fintech-admin-be/internal/entity"
)

type Provider interface {
	Users() []*entity.User
	Auths() []*entity.UserAuth
	Activities() []*entity.RecentUserActivity
	Referrals() []*entity.UserReferral
	Wallets() []*entity.Wallet
	Histories() []*entity.WalletHistory
	Transactions() []*entity.Transaction
	Entries() []*entity.TransactionEntry
	Trails() []*entity.VendorResponseTrail
	Kycs() []*entity.UserKyc
	KycDetails() []*entity.UserKycDetail
	KycLevels() []*entity.KycLevel
	RewardCriteria() []*entity.RewardCriterion
}
