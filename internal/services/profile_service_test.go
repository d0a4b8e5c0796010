package services

import (
	"testing"

	"carteira/internal/testutil"
)

func strPtr(s string) *string { return &s }

func TestGetProfile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewProfileService(db)
	user := testutil.CreateTestUserWithUsername(t, db, "ana")

	view, err := svc.GetProfile(user.ID)
	testutil.AssertNoError(t, err)
	if view.Username != "ana" {
		t.Errorf("expected username ana, got %s", view.Username)
	}
	if view.CashBalanceFormatted != "R$ 0,00" {
		t.Errorf("expected R$ 0,00, got %s", view.CashBalanceFormatted)
	}

	_, err = svc.GetProfile("0190d2c4-0000-7000-8000-00000000ffff")
	testutil.AssertAppError(t, err, "USER_NOT_FOUND")
}

func TestUpdateProfile(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewProfileService(db)
		user := testutil.CreateTestUser(t, db)

		dark := true
		view, err := svc.UpdateProfile(user.ID, ProfileInput{
			Name:        strPtr(" Ana Souza "),
			CashBalance: strPtr("1500,75"),
			CashBank:    strPtr("Nubank"),
			DarkMode:    &dark,
		})
		testutil.AssertNoError(t, err)

		if view.Name != "Ana Souza" {
			t.Errorf("expected trimmed name, got %q", view.Name)
		}
		if view.CashBalance != 150075 || view.CashBalanceFormatted != "R$ 1.500,75" {
			t.Errorf("unexpected cash balance: %d %s", view.CashBalance, view.CashBalanceFormatted)
		}
		if view.ReserveBalance != 0 {
			t.Errorf("reserve balance should be untouched, got %d", view.ReserveBalance)
		}
		if !view.DarkMode || view.CashBank != "Nubank" {
			t.Errorf("unexpected view: %+v", view)
		}

		// A later update of another field keeps the first one.
		view, err = svc.UpdateProfile(user.ID, ProfileInput{ReserveBalance: strPtr("200")})
		testutil.AssertNoError(t, err)
		if view.CashBalance != 150075 || view.ReserveBalance != 20000 {
			t.Errorf("unexpected balances: %d %d", view.CashBalance, view.ReserveBalance)
		}
	})

	t.Run("invalid_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewProfileService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateProfile(user.ID, ProfileInput{Name: strPtr("X"), ReserveBalance: strPtr("muito")})
		testutil.AssertAppError(t, err, "INVALID_AMOUNT")

		view, _ := svc.GetProfile(user.ID)
		if view.Name != "" {
			t.Errorf("nothing should be written on a rejected update, got name %q", view.Name)
		}
	})
}

func TestPhotoFilename(t *testing.T) {
	svc := NewProfileService(nil)

	tests := []struct {
		name     string
		upload   string
		want     string
		accepted bool
	}{
		{"png", "me.png", "u1_me.png", true},
		{"upper_case_ext", "ME.JPG", "u1_ME.JPG", true},
		{"jpeg", "foto.jpeg", "u1_foto.jpeg", true},
		{"gif", "a.gif", "u1_a.gif", true},
		{"strips_directories", "../../etc/me.png", "u1_me.png", true},
		{"windows_path", `C:\Users\ana\me.png`, "u1_me.png", true},
		{"sanitizes_spaces", "minha foto.png", "u1_minha_foto.png", true},
		{"pdf_rejected", "doc.pdf", "", false},
		{"no_ext_rejected", "photo", "", false},
		{"empty_rejected", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := svc.PhotoFilename("u1", tt.upload)
			if ok != tt.accepted {
				t.Fatalf("accepted = %v, want %v", ok, tt.accepted)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetPhotoURL(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewProfileService(db)
	user := testutil.CreateTestUser(t, db)

	testutil.AssertNoError(t, svc.SetPhotoURL(user.ID, "/uploads/x_me.png"))

	view, err := svc.GetProfile(user.ID)
	testutil.AssertNoError(t, err)
	if view.PhotoURL != "/uploads/x_me.png" {
		t.Errorf("expected photo url to be stored, got %q", view.PhotoURL)
	}
}
