package service

import (
	"errors"
	"testing"

	"github.com/ipsum-store/internal/models"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	db := newTestDB(t, &models.User{})
	auth, userRepo := newTestAuthService(t, db)
	return NewUserService(userRepo, auth)
}

func validUserInput(username string) CreateUserInput {
	return CreateUserInput{
		Username:  strp(username),
		Password:  strp("correct horse battery"),
		FirstName: strp("Ada"),
		LastName:  strp("Lovelace"),
	}
}

func TestCreateUserMissingFields(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.Create(CreateUserInput{FirstName: strp("Ada")})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	want := map[string]bool{"username": true, "password": true, "last_name": true}
	if len(validationErr.Fields) != len(want) {
		t.Fatalf("missing fields want %v got %v", want, validationErr.Fields)
	}
	for _, field := range validationErr.Fields {
		if !want[field] {
			t.Fatalf("unexpected missing field %q in %v", field, validationErr.Fields)
		}
	}
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc := newUserService(t)

	user, err := svc.Create(validUserInput("ada"))
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if user.PasswordHash == "" || user.PasswordHash == "correct horse battery" {
		t.Fatalf("password must be stored hashed")
	}
	if err := svc.auth.VerifyPassword(user.PasswordHash, "correct horse battery"); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestCreateUserShortPasswordRejected(t *testing.T) {
	svc := newUserService(t)

	input := validUserInput("bob")
	input.Password = strp("short")
	if _, err := svc.Create(input); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	svc := newUserService(t)

	if _, err := svc.Create(validUserInput("carol")); err != nil {
		t.Fatalf("create first user failed: %v", err)
	}
	if _, err := svc.Create(validUserInput("carol")); !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got %v", err)
	}
}

func TestPatchUserOnlySubmittedFieldsChange(t *testing.T) {
	svc := newUserService(t)

	user, err := svc.Create(validUserInput("dave"))
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	patched, err := svc.Patch(user.ID, PatchUserInput{
		FirstName: Optional[string]{Set: true, Value: "David"},
	})
	if err != nil {
		t.Fatalf("patch user failed: %v", err)
	}
	if patched.FirstName != "David" {
		t.Fatalf("first_name want David got %s", patched.FirstName)
	}
	if patched.Username != "dave" || patched.LastName != "Lovelace" {
		t.Fatalf("untouched fields changed: %+v", patched)
	}
	if patched.PasswordHash != user.PasswordHash {
		t.Fatalf("password hash must not change on unrelated patch")
	}
}

func TestPatchUserClearsBillingAddress(t *testing.T) {
	svc := newUserService(t)

	input := validUserInput("erin")
	input.BillingAddressID = uintp(7)
	user, err := svc.Create(input)
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if user.BillingAddressID == nil || *user.BillingAddressID != 7 {
		t.Fatalf("billing_address_id want 7 got %v", user.BillingAddressID)
	}

	// 显式 null 清空可空外键
	patched, err := svc.Patch(user.ID, PatchUserInput{
		BillingAddressID: Optional[*uint]{Set: true, Value: nil},
	})
	if err != nil {
		t.Fatalf("patch user failed: %v", err)
	}
	if patched.BillingAddressID != nil {
		t.Fatalf("billing_address_id should be cleared, got %v", *patched.BillingAddressID)
	}
}

func TestPatchUserDuplicateUsername(t *testing.T) {
	svc := newUserService(t)

	if _, err := svc.Create(validUserInput("frank")); err != nil {
		t.Fatalf("create first user failed: %v", err)
	}
	second, err := svc.Create(validUserInput("grace"))
	if err != nil {
		t.Fatalf("create second user failed: %v", err)
	}

	_, err = svc.Patch(second.ID, PatchUserInput{
		Username: Optional[string]{Set: true, Value: "frank"},
	})
	if !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got %v", err)
	}
}

func TestUserNotFoundPaths(t *testing.T) {
	svc := newUserService(t)

	if _, err := svc.GetByID(404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get unknown id want ErrNotFound got %v", err)
	}
	if _, err := svc.Patch(404, PatchUserInput{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("patch unknown id want ErrNotFound got %v", err)
	}
	if err := svc.Delete(404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete unknown id want ErrNotFound got %v", err)
	}
}

func TestDeleteUserThenGetNotFound(t *testing.T) {
	svc := newUserService(t)

	user, err := svc.Create(validUserInput("heidi"))
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if err := svc.Delete(user.ID); err != nil {
		t.Fatalf("delete user failed: %v", err)
	}
	if _, err := svc.GetByID(user.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get deleted user want ErrNotFound got %v", err)
	}
}
