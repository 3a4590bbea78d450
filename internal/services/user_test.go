package services

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/betdesk/backoffice/internal/auth"
	"github.com/betdesk/backoffice/internal/dto"
	"github.com/betdesk/backoffice/internal/errs"
	"github.com/betdesk/backoffice/internal/models"
	"github.com/betdesk/backoffice/internal/store"
	"github.com/betdesk/backoffice/pkg/helpers"
)

type fakeUserStore struct {
	users []*models.User

	partialID       string
	partialPassword *string
	partialActive   *bool
}

func (f *fakeUserStore) Insert(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserStore) FindConflict(ctx context.Context, username, whatsapp string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username || u.Whatsapp == whatsapp {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == identifier || u.Whatsapp == identifier {
			copied := *u
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID.Hex() == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) List(ctx context.Context) ([]*models.User, error) {
	return f.users, nil
}

func (f *fakeUserStore) Delete(ctx context.Context, id string) error {
	kept := f.users[:0]
	for _, u := range f.users {
		if u.ID.Hex() != id {
			kept = append(kept, u)
		}
	}
	f.users = kept
	return nil
}

func (f *fakeUserStore) UpdatePartial(ctx context.Context, id string, password *string, isActive *bool) error {
	f.partialID = id
	f.partialPassword = password
	f.partialActive = isActive
	for _, u := range f.users {
		if u.ID.Hex() == id {
			if password != nil {
				u.Password = *password
			}
			if isActive != nil {
				u.IsActive = *isActive
			}
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeTokenMinter struct{}

func (fakeTokenMinter) Mint(userID string) (string, error) {
	return "token-" + userID, nil
}

func registerFixture() dto.RegisterRequest {
	return dto.RegisterRequest{
		RegNumber: "R-100",
		FullName:  "Jane Doe",
		Username:  "jane01",
		Whatsapp:  "+923001234567",
		Password:  "hunter2",
	}
}

func TestUserRegister(t *testing.T) {
	fs := &fakeUserStore{}
	svc := NewUserService(fs, fakeTokenMinter{})

	resp, err := svc.Register(helpers.TestCtx(), registerFixture())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if resp.User.Role != models.RoleBettor {
		t.Fatalf("Role = %q, want bettor", resp.User.Role)
	}
	if !resp.User.IsActive {
		t.Fatal("new user must default to active")
	}
	if resp.Token != "token-"+resp.User.ID.Hex() {
		t.Fatalf("unexpected token %q", resp.Token)
	}
	if resp.User.Password != "" {
		t.Fatal("password must not be returned")
	}

	stored := fs.users[0]
	if stored.Password == "hunter2" {
		t.Fatal("password must be stored hashed")
	}
	if !auth.CheckPassword(stored.Password, "hunter2") {
		t.Fatal("stored hash does not verify against the original password")
	}
}

func TestUserRegisterConflictMessages(t *testing.T) {
	fs := &fakeUserStore{}
	svc := NewUserService(fs, fakeTokenMinter{})
	ctx := helpers.TestCtx()

	if _, err := svc.Register(ctx, registerFixture()); err != nil {
		t.Fatal(err)
	}

	dupUsername := registerFixture()
	dupUsername.Whatsapp = "+923009999999"
	_, err := svc.Register(ctx, dupUsername)
	if e, ok := err.(*errs.AlreadyExistsError); !ok || e.Message != "username already exists" {
		t.Fatalf("error = %T(%v), want username conflict", err, err)
	}

	dupWhatsapp := registerFixture()
	dupWhatsapp.Username = "someothername"
	_, err = svc.Register(ctx, dupWhatsapp)
	if e, ok := err.(*errs.AlreadyExistsError); !ok || e.Message != "whatsapp number already registered" {
		t.Fatalf("error = %T(%v), want whatsapp conflict", err, err)
	}
}

func TestUserRegisterValidation(t *testing.T) {
	svc := NewUserService(&fakeUserStore{}, fakeTokenMinter{})

	req := registerFixture()
	req.Password = ""
	_, err := svc.Register(helpers.TestCtx(), req)
	if _, ok := err.(*errs.ValidationError); !ok {
		t.Fatalf("error = %T(%v), want ValidationError", err, err)
	}
}

func TestUserLoginEitherIdentifier(t *testing.T) {
	fs := &fakeUserStore{}
	svc := NewUserService(fs, fakeTokenMinter{})
	ctx := helpers.TestCtx()

	if _, err := svc.Register(ctx, registerFixture()); err != nil {
		t.Fatal(err)
	}

	byUsername, err := svc.Login(ctx, dto.LoginRequest{Username: "jane01", Password: "hunter2"})
	if err != nil {
		t.Fatalf("login by username returned error: %v", err)
	}
	byWhatsapp, err := svc.Login(ctx, dto.LoginRequest{Username: "+923001234567", Password: "hunter2"})
	if err != nil {
		t.Fatalf("login by whatsapp returned error: %v", err)
	}
	if byUsername.User.ID != byWhatsapp.User.ID {
		t.Fatal("both identifiers must resolve to the same user")
	}
	if byUsername.User.Password != "" {
		t.Fatal("password must not be returned")
	}
}

func TestUserLoginFailuresAreIndistinguishable(t *testing.T) {
	fs := &fakeUserStore{}
	svc := NewUserService(fs, fakeTokenMinter{})
	ctx := helpers.TestCtx()

	if _, err := svc.Register(ctx, registerFixture()); err != nil {
		t.Fatal(err)
	}

	_, wrongPassword := svc.Login(ctx, dto.LoginRequest{Username: "jane01", Password: "nope"})
	_, noSuchUser := svc.Login(ctx, dto.LoginRequest{Username: "ghost", Password: "hunter2"})

	e1, ok1 := wrongPassword.(*errs.UnauthorizedError)
	e2, ok2 := noSuchUser.(*errs.UnauthorizedError)
	if !ok1 || !ok2 || e1.Message != e2.Message {
		t.Fatalf("login failures differ: %v vs %v", wrongPassword, noSuchUser)
	}
}

func TestUserToggleActive(t *testing.T) {
	fs := &fakeUserStore{}
	svc := NewUserService(fs, fakeTokenMinter{})
	ctx := helpers.TestCtx()

	resp, _ := svc.Register(ctx, registerFixture())
	id := resp.User.ID.Hex()

	toggled, err := svc.ToggleActive(ctx, id)
	if err != nil {
		t.Fatalf("ToggleActive returned error: %v", err)
	}
	if toggled.IsActive {
		t.Fatal("expected user deactivated")
	}

	toggled, err = svc.ToggleActive(ctx, id)
	if err != nil {
		t.Fatalf("ToggleActive returned error: %v", err)
	}
	if !toggled.IsActive {
		t.Fatal("expected user reactivated")
	}
}

func TestUserUpdateIgnoresBlankPassword(t *testing.T) {
	fs := &fakeUserStore{}
	svc := NewUserService(fs, fakeTokenMinter{})
	ctx := helpers.TestCtx()

	resp, _ := svc.Register(ctx, registerFixture())
	id := resp.User.ID.Hex()

	err := svc.Update(ctx, id, dto.UpdateUserRequest{
		Password: helpers.Ptr("   "),
		IsActive: helpers.Ptr(false),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if fs.partialPassword != nil {
		t.Fatal("blank password must not be written")
	}
	if fs.partialActive == nil || *fs.partialActive {
		t.Fatal("isActive=false must be written")
	}

	// An absent password field behaves the same as a blank one.
	if err := svc.Update(ctx, id, dto.UpdateUserRequest{IsActive: helpers.Ptr(true)}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if fs.partialPassword != nil {
		t.Fatal("absent password must not be written")
	}
}

func TestUserStatus(t *testing.T) {
	fs := &fakeUserStore{}
	svc := NewUserService(fs, fakeTokenMinter{})
	ctx := helpers.TestCtx()

	resp, _ := svc.Register(ctx, registerFixture())

	status, err := svc.Status(ctx, resp.User.ID.Hex())
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if !status.Exists || !status.IsActive {
		t.Fatalf("unexpected status: %#v", status)
	}

	missing, err := svc.Status(ctx, primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if missing.Exists {
		t.Fatal("unknown id must report exists=false")
	}
}
