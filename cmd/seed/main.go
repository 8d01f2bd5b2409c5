package main

import (
	"log"
	"os"

	"fintech-admin-be/internal/model"
	"fintech-admin-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

// Seeds a small demo dataset for local development. Idempotent: records
// already present (matched by their natural key) are skipped.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDB(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding demo back-office data")

	// bcrypt("password123")
	demoHash := "$2b$12$RbOAJhFcGzzlPz.2sIBPgemUh1eA9Y9i55YWYp6LInW3rYeCEhfzS"

	color.Yellow("\n1. Users")
	users := []model.User{
		{Email: "demo@example.com", PasswordHash: &demoHash, FullName: "Demo Admin", Phone: "+2348012340001", Status: "ACTIVE", UserGroup: "STAFF", EmailVerified: true, PhoneVerified: true},
		{Email: "ada.okafor@example.com", PasswordHash: &demoHash, FullName: "Ada Okafor", Phone: "+2348012340002", Status: "ACTIVE", UserGroup: "STANDARD", EmailVerified: true},
		{Email: "kwame.mensah@example.com", PasswordHash: &demoHash, FullName: "Kwame Mensah", Phone: "+233201230003", Status: "INACTIVE", UserGroup: "MERCHANT"},
	}
	seededUsers := map[string]model.User{}
	for _, u := range users {
		var existing model.User
		if err := db.Where("email = ?", u.Email).First(&existing).Error; err == nil {
			color.Yellow("User '%s' already exists, skipping...", u.Email)
			seededUsers[u.Email] = existing
			continue
		}
		if err := db.Create(&u).Error; err != nil {
			color.Red("Error creating user '%s': %v", u.Email, err)
			continue
		}
		seededUsers[u.Email] = u
		color.Green("Created user: %s", u.Email)
	}

	demo := seededUsers["demo@example.com"]
	ada := seededUsers["ada.okafor@example.com"]

	color.Yellow("\n2. Wallets")
	wallets := []model.Wallet{
		{UserId: demo.Id.String(), AccountId: "ACCT-0001", Currency: "NGN", Balance: 2575050, LedgerBalance: 2575050, Status: "ACTIVE"},
		{UserId: ada.Id.String(), AccountId: "ACCT-0002", Currency: "NGN", Balance: 120000, LedgerBalance: 145000, Status: "ACTIVE"},
	}
	seededWallets := map[string]model.Wallet{}
	for _, w := range wallets {
		var existing model.Wallet
		if err := db.Where("account_id = ?", w.AccountId).First(&existing).Error; err == nil {
			color.Yellow("Wallet '%s' already exists, skipping...", w.AccountId)
			seededWallets[w.AccountId] = existing
			continue
		}
		if err := db.Create(&w).Error; err != nil {
			color.Red("Error creating wallet '%s': %v", w.AccountId, err)
			continue
		}
		seededWallets[w.AccountId] = w
		color.Green("Created wallet: %s", w.AccountId)
	}

	color.Yellow("\n3. Transactions")
	demoWallet := seededWallets["ACCT-0001"]
	transactions := []model.Transaction{
		{UserId: demo.Id.String(), WalletId: demoWallet.Id.String(), Reference: "TXN-20250601-0001", TransactionType: "TRANSFER", TransactionStatus: "SUCCESSFUL", Amount: 500000, Fee: 2500, Currency: "NGN", Narration: "Transfer to Ada Okafor"},
		{UserId: demo.Id.String(), WalletId: demoWallet.Id.String(), Reference: "TXN-20250601-0002", TransactionType: "BILL_PAYMENT", TransactionStatus: "PENDING", Amount: 150000, Fee: 1000, Currency: "NGN", Narration: "Electricity prepaid token"},
	}
	for _, t := range transactions {
		var existing model.Transaction
		if err := db.Where("reference = ?", t.Reference).First(&existing).Error; err == nil {
			color.Yellow("Transaction '%s' already exists, skipping...", t.Reference)
			continue
		}
		if err := db.Create(&t).Error; err != nil {
			color.Red("Error creating transaction '%s': %v", t.Reference, err)
			continue
		}
		color.Green("Created transaction: %s", t.Reference)
	}

	color.Yellow("\n4. KYC Levels")
	levels := []model.KycLevel{
		{Name: "TIER_1", Level: 1, DailyLimit: 5000000, MaxBalance: 30000000, Requirements: datatypes.JSON([]byte(`["phone_verified"]`))},
		{Name: "TIER_2", Level: 2, DailyLimit: 20000000, MaxBalance: 50000000, Requirements: datatypes.JSON([]byte(`["phone_verified","national_id"]`))},
		{Name: "TIER_3", Level: 3, DailyLimit: 500000000, MaxBalance: 0, Requirements: datatypes.JSON([]byte(`["phone_verified","national_id","proof_of_address"]`))},
	}
	for _, l := range levels {
		var existing model.KycLevel
		if err := db.Where("name = ?", l.Name).First(&existing).Error; err == nil {
			color.Yellow("KYC level '%s' already exists, skipping...", l.Name)
			continue
		}
		if err := db.Create(&l).Error; err != nil {
			color.Red("Error creating KYC level '%s': %v", l.Name, err)
			continue
		}
		color.Green("Created KYC level: %s", l.Name)
	}

	color.Yellow("\n5. Reward Criteria")
	criteria := []model.RewardCriterion{
		{Name: "First Transfer", Description: "One-time bonus after the first successful transfer", RewardAmount: 50000, Threshold: 1, Active: true},
		{Name: "Referral Bonus", Description: "Paid when a referred user completes KYC", RewardAmount: 100000, Threshold: 1, Active: true},
	}
	for _, rc := range criteria {
		var existing model.RewardCriterion
		if err := db.Where("name = ?", rc.Name).First(&existing).Error; err == nil {
			color.Yellow("Reward criterion '%s' already exists, skipping...", rc.Name)
			continue
		}
		if err := db.Create(&rc).Error; err != nil {
			color.Red("Error creating reward criterion '%s': %v", rc.Name, err)
			continue
		}
		color.Green("Created reward criterion: %s", rc.Name)
	}

	color.Cyan("\nSeeding completed")
}
