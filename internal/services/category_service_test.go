package services

import (
	"testing"

	"carteira/internal/models"
	"carteira/internal/pagination"
	"carteira/internal/testutil"
)

func TestCreateCategory(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		cat, err := svc.CreateCategory("  Mercado ")
		testutil.AssertNoError(t, err)
		if cat.Name != "Mercado" {
			t.Errorf("expected trimmed name, got %q", cat.Name)
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.CreateCategory("Mercado")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateCategory("Mercado")
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
		testutil.AssertCount(t, db, &models.Category{}, 1)
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.CreateCategory("   ")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetCategories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCategoryService(db)

	for _, name := range []string{"Transporte", "Aluguel", "Mercado"} {
		testutil.CreateTestCategoryWithName(t, db, name)
	}

	result, err := svc.GetCategories(pagination.PageRequest{Page: 1, PageSize: 2})
	testutil.AssertNoError(t, err)
	if result.TotalItems != 3 || len(result.Data) != 2 {
		t.Fatalf("expected 2 of 3 categories, got %d of %d", len(result.Data), result.TotalItems)
	}
	if result.Data[0].Name != "Aluguel" {
		t.Errorf("expected alphabetical order, got %s first", result.Data[0].Name)
	}

	names, err := svc.GetCategoryNames()
	testutil.AssertNoError(t, err)
	want := []string{"Aluguel", "Mercado", "Transporte"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestGetCategoryNamesEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCategoryService(db)

	names, err := svc.GetCategoryNames()
	testutil.AssertNoError(t, err)
	if names == nil || len(names) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", names)
	}
}

func TestGetCategoryByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCategoryService(db)
	cat := testutil.CreateTestCategory(t, db)

	got, err := svc.GetCategoryByID(cat.ID)
	testutil.AssertNoError(t, err)
	if got.Name != cat.Name {
		t.Errorf("expected %s, got %s", cat.Name, got.Name)
	}

	_, err = svc.GetCategoryByID("0190d2c4-0000-7000-8000-00000000ffff")
	testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
}

func TestUpdateCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCategoryService(db)
	first := testutil.CreateTestCategoryWithName(t, db, "Mercado")
	testutil.CreateTestCategoryWithName(t, db, "Aluguel")

	n, err := svc.UpdateCategory(first.ID, "Supermercado")
	testutil.AssertNoError(t, err)
	if n != 1 {
		t.Errorf("expected 1 row affected, got %d", n)
	}

	_, err = svc.UpdateCategory(first.ID, "Aluguel")
	testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")

	n, err = svc.UpdateCategory("0190d2c4-0000-7000-8000-00000000ffff", "Outro")
	testutil.AssertNoError(t, err)
	if n != 0 {
		t.Errorf("expected 0 rows affected for missing category, got %d", n)
	}
}

func TestDeleteCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCategoryService(db)
	user := testutil.CreateTestUser(t, db)
	cat := testutil.CreateTestCategoryWithName(t, db, "Mercado")
	entry := testutil.CreateTestEntry(t, db, user.ID, "2025-03-01", models.EntryTypeExpense, "Mercado", 100)

	n, err := svc.DeleteCategory(cat.ID)
	testutil.AssertNoError(t, err)
	if n != 1 {
		t.Errorf("expected 1 row affected, got %d", n)
	}

	var kept models.LedgerEntry
	if err := db.Where("id = ?", entry.ID).First(&kept).Error; err != nil {
		t.Fatalf("entry should survive category delete: %v", err)
	}
	if kept.Category != "Mercado" {
		t.Errorf("entry should keep its category text, got %q", kept.Category)
	}

	n, err = svc.DeleteCategory(cat.ID)
	testutil.AssertNoError(t, err)
	if n != 0 {
		t.Errorf("expected 0 rows affected on second delete, got %d", n)
	}
}
