package fallback

import (
	"time"

	"github.com/google/uuid"

	"fintech-admin-be/internal/entity"
)

// StaticProvider returns the same fixed rows on every call, so the UI stays
// demonstrable while the database is down and tests are deterministic.
type StaticProvider struct{}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

var (
	seedTime = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	demoUserId   = uuid.MustParse("0b8f6f1e-58f2-4f4a-9d2a-111111111111")
	secondUserId = uuid.MustParse("0b8f6f1e-58f2-4f4a-9d2a-222222222222")
	demoWalletId = uuid.MustParse("3c1d2e4f-77aa-4bb0-8cc1-333333333333")
	demoTxId     = uuid.MustParse("5e2f3a4b-99cc-4dd2-aee3-444444444444")
	demoKycId    = uuid.MustParse("7a3b4c5d-bbdd-4ee4-8ff5-555555555555")
)

func strptr(s string) *string { return &s }

func (p *StaticProvider) Users() []*entity.User {
	return []*entity.User{
		{
			Id:            demoUserId,
			Email:         "demo@example.com",
			PasswordHash:  strptr("$2b$12$RbOAJhFcGzzlPz.2sIBPgemUh1eA9Y9i55YWYp6LInW3rYeCEhfzS"),
			FullName:      "Demo Admin",
			Phone:         "+2348012345678",
			Status:        entity.UserStatusActive,
			UserGroup:     entity.UserGroupStaff,
			EmailVerified: true,
			PhoneVerified: true,
			CreatedAt:     seedTime,
			UpdatedAt:     seedTime,
		},
		{
			Id:            secondUserId,
			Email:         "merchant@example.com",
			FullName:      "Sample Merchant",
			Phone:         "+2348098765432",
			Status:        entity.UserStatusActive,
			UserGroup:     entity.UserGroupMerchant,
			EmailVerified: true,
			CreatedAt:     seedTime.Add(time.Hour),
			UpdatedAt:     seedTime.Add(time.Hour),
		},
	}
}

func (p *StaticProvider) Auths() []*entity.UserAuth {
	last := seedTime.Add(48 * time.Hour)
	return []*entity.UserAuth{
		{
			Id:          uuid.MustParse("9c4d5e6f-ddee-4ff6-a007-666666666666"),
			UserId:      demoUserId.String(),
			DeviceId:    "ios-demo-device",
			LastLoginAt: &last,
			CreatedAt:   seedTime,
			UpdatedAt:   last,
		},
	}
}

func (p *StaticProvider) Activities() []*entity.RecentUserActivity {
	return []*entity.RecentUserActivity{
		{
			Id:        uuid.MustParse("1d5e6f70-eeff-4007-b118-777777777777"),
			UserId:    demoUserId.String(),
			Activity:  entity.ActivityLogin,
			Detail:    "Back office sign in",
			IpAddress: "10.0.0.12",
			UserAgent: "Mozilla/5.0",
			CreatedAt: seedTime.Add(48 * time.Hour),
			UpdatedAt: seedTime.Add(48 * time.Hour),
		},
		{
			Id:        uuid.MustParse("2e6f7081-f001-4118-c229-888888888888"),
			UserId:    secondUserId.String(),
			Activity:  entity.ActivityTransfer,
			Detail:    "Sent 150.00 NGN",
			IpAddress: "10.0.0.44",
			UserAgent: "okhttp/4.12",
			CreatedAt: seedTime.Add(49 * time.Hour),
			UpdatedAt: seedTime.Add(49 * time.Hour),
		},
	}
}

func (p *StaticProvider) Referrals() []*entity.UserReferral {
	return []*entity.UserReferral{
		{
			Id:             uuid.MustParse("3f708192-0112-4229-d33a-999999999999"),
			UserId:         demoUserId.String(),
			ReferredUserId: secondUserId.String(),
			ReferralCode:   "DEMO2025",
			Status:         entity.ReferralStatusCompleted,
			RewardAmount:   25,
			CreatedAt:      seedTime,
			UpdatedAt:      seedTime,
		},
	}
}

func (p *StaticProvider) Wallets() []*entity.Wallet {
	return []*entity.Wallet{
		{
			Id:            demoWalletId,
			UserId:        demoUserId.String(),
			AccountId:     "ACC-0001",
			Currency:      entity.CurrencyNGN,
			Balance:       1250.50,
			LedgerBalance: 1300.50,
			Status:        entity.WalletStatusActive,
			CreatedAt:     seedTime,
			UpdatedAt:     seedTime.Add(72 * time.Hour),
		},
		{
			Id:            uuid.MustParse("4a819203-1223-433a-e44b-aaaaaaaaaaaa"),
			UserId:        secondUserId.String(),
			AccountId:     "ACC-0002",
			Currency:      entity.CurrencyUSD,
			Balance:       310.00,
			LedgerBalance: 310.00,
			Status:        entity.WalletStatusFrozen,
			CreatedAt:     seedTime,
			UpdatedAt:     seedTime.Add(24 * time.Hour),
		},
	}
}

func (p *StaticProvider) Histories() []*entity.WalletHistory {
	return []*entity.WalletHistory{
		{
			Id:            uuid.MustParse("5b920314-2334-444b-f55c-bbbbbbbbbbbb"),
			WalletId:      demoWalletId.String(),
			UserId:        demoUserId.String(),
			TransactionId: demoTxId.String(),
			Direction:     entity.DirectionDebit,
			Amount:        150,
			BalanceBefore: 1400.50,
			BalanceAfter:  1250.50,
			Narration:     "Transfer to ACC-0002",
			CreatedAt:     seedTime.Add(72 * time.Hour),
			UpdatedAt:     seedTime.Add(72 * time.Hour),
		},
	}
}

func (p *StaticProvider) Transactions() []*entity.Transaction {
	return []*entity.Transaction{
		{
			Id:                demoTxId,
			UserId:            demoUserId.String(),
			WalletId:          demoWalletId.String(),
			Reference:         "TXN-20250601-0001",
			TransactionType:   entity.TransactionTypeTransfer,
			TransactionStatus: entity.TransactionStatusSuccessful,
			Amount:            150,
			Fee:               1.5,
			Currency:          entity.CurrencyNGN,
			Narration:         "Transfer to ACC-0002",
			CreatedAt:         seedTime.Add(72 * time.Hour),
			UpdatedAt:         seedTime.Add(72 * time.Hour),
		},
		{
			Id:                uuid.MustParse("6ca31425-3445-455c-066d-cccccccccccc"),
			UserId:            secondUserId.String(),
			WalletId:          "ACC-0002",
			Reference:         "TXN-20250601-0002",
			TransactionType:   entity.TransactionTypeDeposit,
			TransactionStatus: entity.TransactionStatusPending,
			Amount:            500,
			Fee:               0,
			Currency:          entity.CurrencyUSD,
			Narration:         "Card deposit",
			CreatedAt:         seedTime.Add(73 * time.Hour),
			UpdatedAt:         seedTime.Add(73 * time.Hour),
		},
	}
}

func (p *StaticProvider) Entries() []*entity.TransactionEntry {
	return []*entity.TransactionEntry{
		{
			Id:            uuid.MustParse("7db42536-4556-466d-177e-dddddddddddd"),
			TransactionId: demoTxId.String(),
			AccountId:     "ACC-0001",
			Direction:     entity.DirectionDebit,
			Amount:        150,
			Currency:      entity.CurrencyNGN,
			CreatedAt:     seedTime.Add(72 * time.Hour),
			UpdatedAt:     seedTime.Add(72 * time.Hour),
		},
		{
			Id:            uuid.MustParse("8ec53647-5667-477e-288f-eeeeeeeeeeee"),
			TransactionId: demoTxId.String(),
			AccountId:     "ACC-0002",
			Direction:     entity.DirectionCredit,
			Amount:        150,
			Currency:      entity.CurrencyNGN,
			CreatedAt:     seedTime.Add(72 * time.Hour),
			UpdatedAt:     seedTime.Add(72 * time.Hour),
		},
	}
}

func (p *StaticProvider) Trails() []*entity.VendorResponseTrail {
	return []*entity.VendorResponseTrail{
		{
			Id:             uuid.MustParse("9fd64758-6778-488f-399a-ffffffffffff"),
			TransactionId:  demoTxId.String(),
			Vendor:         "midtrans",
			Reference:      "TXN-20250601-0001",
			StatusCode:     "200",
			VendorStatus:   "settlement",
			RequestPayload: `{"order_id":"TXN-20250601-0001","transaction_status":"settlement"}`,
			SignatureValid: true,
			CreatedAt:      seedTime.Add(72 * time.Hour),
			UpdatedAt:      seedTime.Add(72 * time.Hour),
		},
	}
}

func (p *StaticProvider) Kycs() []*entity.UserKyc {
	return []*entity.UserKyc{
		{
			Id:        demoKycId,
			UserId:    demoUserId.String(),
			KycLevel:  entity.KycTierTwo,
			Status:    entity.KycStatusCompleted,
			Remarks:   "Documents verified",
			CreatedAt: seedTime,
			UpdatedAt: seedTime.Add(24 * time.Hour),
		},
		{
			Id:        uuid.MustParse("0ae75869-7889-499a-4aab-012345678901"),
			UserId:    secondUserId.String(),
			KycLevel:  entity.KycTierOne,
			Status:    entity.KycStatusPending,
			CreatedAt: seedTime,
			UpdatedAt: seedTime,
		},
	}
}

func (p *StaticProvider) KycDetails() []*entity.UserKycDetail {
	return []*entity.UserKycDetail{
		{
			Id:             uuid.MustParse("1bf8697a-899a-4aab-5bbc-123456789012"),
			UserId:         demoUserId.String(),
			KycId:          demoKycId.String(),
			DocumentType:   entity.DocumentPassport,
			DocumentNumber: "A01234567",
			DocumentUrl:    "https://cdn.example.com/kyc/passport-a01234567.png",
			Status:         entity.KycStatusCompleted,
			CreatedAt:      seedTime,
			UpdatedAt:      seedTime.Add(24 * time.Hour),
		},
	}
}

func (p *StaticProvider) KycLevels() []*entity.KycLevel {
	return []*entity.KycLevel{
		{
			Id:           uuid.MustParse("2c097a8b-9aab-4bbc-6ccd-234567890123"),
			Name:         entity.KycTierOne,
			Level:        1,
			DailyLimit:   200,
			MaxBalance:   1000,
			Requirements: []string{"Phone number"},
			CreatedAt:    seedTime,
			UpdatedAt:    seedTime,
		},
		{
			Id:           uuid.MustParse("3d1a8b9c-abbc-4ccd-7dde-345678901234"),
			Name:         entity.KycTierTwo,
			Level:        2,
			DailyLimit:   5000,
			MaxBalance:   20000,
			Requirements: []string{"Government ID", "Selfie"},
			CreatedAt:    seedTime,
			UpdatedAt:    seedTime,
		},
		{
			Id:           uuid.MustParse("4e2b9cad-bccd-4dde-8eef-456789012345"),
			Name:         entity.KycTierThree,
			Level:        3,
			DailyLimit:   50000,
			MaxBalance:   0,
			Requirements: []string{"Government ID", "Selfie", "Proof of address"},
			CreatedAt:    seedTime,
			UpdatedAt:    seedTime,
		},
	}
}

func (p *StaticProvider) RewardCriteria() []*entity.RewardCriterion {
	return []*entity.RewardCriterion{
		{
			Id:           uuid.MustParse("5f3cadbe-cdde-4eef-9f00-567890123456"),
			Name:         "First transfer",
			Description:  "Reward after the first completed transfer",
			RewardAmount: 5,
			Threshold:    1,
			Active:       true,
			CreatedAt:    seedTime,
			UpdatedAt:    seedTime,
		},
		{
			Id:           uuid.MustParse("604dbecf-deef-4f00-a011-678901234567"),
			Name:         "Referral bonus",
			Description:  "Reward when a referred user completes KYC",
			RewardAmount: 25,
			Threshold:    1,
			Active:       true,
			CreatedAt:    seedTime,
			UpdatedAt:    seedTime,
		},
	}
}
