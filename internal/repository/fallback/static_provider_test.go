package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestStaticProviderIsDeterministic(t *testing.T) {
	p := NewStaticProvider()

	first := p.Users()
	second := p.Users()
	assert.Equal(t, first, second)
	assert.Equal(t, p.Transactions(), p.Transactions())
	assert.Equal(t, p.Wallets(), p.Wallets())
}

func TestStaticProviderDemoLoginWorks(t *testing.T) {
	p := NewStaticProvider()

	var found bool
	for _, u := range p.Users() {
		if u.Email != "demo@example.com" {
			continue
		}
		found = true
		assert.NotNil(t, u.PasswordHash)
		// The snapshot credential the degraded-mode login path accepts.
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte("password123")))
	}
	assert.True(t, found, "snapshot must contain the demo account")
}

func TestStaticProviderRelationalConsistency(t *testing.T) {
	p := NewStaticProvider()

	userIds := map[string]bool{}
	for _, u := range p.Users() {
		userIds[u.Id.String()] = true
	}

	for _, w := range p.Wallets() {
		assert.True(t, userIds[w.UserId], "wallet %s references unknown user", w.AccountId)
	}
	for _, tx := range p.Transactions() {
		assert.True(t, userIds[tx.UserId], "transaction %s references unknown user", tx.Reference)
	}

	txIds := map[string]bool{}
	for _, tx := range p.Transactions() {
		txIds[tx.Id.String()] = true
	}
	for _, e := range p.Entries() {
		assert.True(t, txIds[e.TransactionId], "entry references unknown transaction")
	}
	for _, trail := range p.Trails() {
		assert.True(t, txIds[trail.TransactionId], "trail references unknown transaction")
	}
}

func TestStaticProviderCoversEveryEntity(t *testing.T) {
	p := NewStaticProvider()

	assert.NotEmpty(t, p.Users())
	assert.NotEmpty(t, p.Auths())
	assert.NotEmpty(t, p.Activities())
	assert.NotEmpty(t, p.Referrals())
	assert.NotEmpty(t, p.Wallets())
	assert.NotEmpty(t, p.Histories())
	assert.NotEmpty(t, p.Transactions())
	assert.NotEmpty(t, p.Entries())
	assert.NotEmpty(t, p.Trails())
	assert.NotEmpty(t, p.Kycs())
	assert.NotEmpty(t, p.KycDetails())
	assert.NotEmpty(t, p.KycLevels())
	assert.NotEmpty(t, p.RewardCriteria())
}
