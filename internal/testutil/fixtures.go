package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"carteira/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the cleartext password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithUsername(t, db, fmt.Sprintf("user%d", nextID()))
}

// CreateTestUserWithUsername creates a user with the given username.
func CreateTestUserWithUsername(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestEntry creates a ledger entry on the given date (YYYY-MM-DD).
func CreateTestEntry(t *testing.T, db *gorm.DB, userID, date string, entryType models.EntryType, category string, amount int64) *models.LedgerEntry {
	t.Helper()

	entry := &models.LedgerEntry{
		UserID:      userID,
		Date:        date,
		Description: fmt.Sprintf("Test Entry %d", nextID()),
		Category:    category,
		Type:        entryType,
		Amount:      amount,
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test entry: %v", err)
	}
	return entry
}

// CreateTestBudget creates a budget for the given month label and category.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID, month, category string, amount int64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:   userID,
		Month:    month,
		Category: category,
		Amount:   amount,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestCategory creates a category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()
	return CreateTestCategoryWithName(t, db, fmt.Sprintf("Test Category %d", nextID()))
}

// CreateTestCategoryWithName creates a category with the given name.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestInvestment creates a holding of 10 units at 25.00.
func CreateTestInvestment(t *testing.T, db *gorm.DB, userID string) *models.Investment {
	t.Helper()

	inv := &models.Investment{
		UserID:    userID,
		Kind:      "acao",
		Code:      fmt.Sprintf("TST%d", nextID()),
		Quantity:  10,
		UnitPrice: 2500,
	}
	if err := db.Create(inv).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return inv
}
