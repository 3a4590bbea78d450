package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/betdesk/backoffice/internal/auth"
	"github.com/betdesk/backoffice/internal/dto"
	"github.com/betdesk/backoffice/internal/errs"
	"github.com/betdesk/backoffice/internal/models"
	"github.com/betdesk/backoffice/internal/store"
	"github.com/betdesk/backoffice/pkg/helpers"
	"github.com/betdesk/backoffice/pkg/logger"
)

type userUSStore interface {
	Insert(ctx context.Context, user *models.User) error
	FindConflict(ctx context.Context, username, whatsapp string) (*models.User, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Delete(ctx context.Context, id string) error
	UpdatePartial(ctx context.Context, id string, password *string, isActive *bool) error
}

type tokenMinter interface {
	Mint(userID string) (string, error)
}

type userService struct {
	Store  userUSStore
	Tokens tokenMinter
}

func NewUserService(store userUSStore, tokens tokenMinter) *userService {
	return &userService{Store: store, Tokens: tokens}
}

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.FullName == "" || req.Username == "" || req.Whatsapp == "" || req.Password == "" {
		return nil, errs.NewValidationError("fullName, username, whatsapp and password are required")
	}

	// Pre-check for a field-specific conflict message; the unique indexes
	// still catch anything that races past it.
	existing, err := s.Store.FindConflict(ctx, req.Username, req.Whatsapp)
	if err != nil {
		return nil, errs.NewStorageError("find user", err)
	}
	if existing != nil {
		if existing.Username == req.Username {
			return nil, errs.NewAlreadyExistsError("username already exists")
		}
		return nil, errs.NewAlreadyExistsError("whatsapp number already registered")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleBettor
	}

	now := time.Now().UTC()
	user := &models.User{
		RegNumber: req.RegNumber,
		FullName:  req.FullName,
		Username:  req.Username,
		Whatsapp:  req.Whatsapp,
		Password:  hash,
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Insert(ctx, user); err != nil {
		if store.IsDuplicate(err) {
			return nil, errs.NewAlreadyExistsError("user already exists")
		}
		return nil, errs.NewStorageError("create user", err)
	}

	token, err := s.Tokens.Mint(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info("user registered", "user_id", user.ID.Hex(), "username", user.Username, "role", user.Role)

	user.Password = ""
	return &dto.AuthResponse{Token: token, User: user}, nil
}

// Login resolves the identifier against either username or whatsapp. A
// missing user and a wrong password are indistinguishable to the caller.
func (s *userService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.Store.GetByIdentifier(ctx, req.Username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, errs.NewUnauthorizedError("invalid credentials")
	}
	if err != nil {
		return nil, errs.NewStorageError("find user", err)
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, errs.NewUnauthorizedError("invalid credentials")
	}

	token, err := s.Tokens.Mint(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info("user logged in", "user_id", user.ID.Hex())

	user.Password = ""
	return &dto.AuthResponse{Token: token, User: user}, nil
}

func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.Store.List(ctx)
	if err != nil {
		return nil, errs.NewStorageError("list users", err)
	}
	return users, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if err := s.Store.Delete(ctx, id); err != nil {
		return errs.NewStorageError("delete user", err)
	}

	log := logger.FromContext(ctx)
	log.Info("user deleted", "user_id", id)
	return nil
}

// ToggleActive flips the active flag and returns the updated user.
func (s *userService) ToggleActive(ctx context.Context, id string) (*models.User, error) {
	user, err := s.Store.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, errs.NewNotFoundError("user not found")
	}
	if err != nil {
		return nil, errs.NewStorageError("find user", err)
	}

	active := !user.IsActive
	if err := s.Store.UpdatePartial(ctx, id, nil, &active); err != nil {
		return nil, errs.NewStorageError("update user", err)
	}
	user.IsActive = active
	user.Password = ""

	log := logger.FromContext(ctx)
	log.Info("user status toggled", "user_id", id, "is_active", active)
	return user, nil
}

// Update sets the password and/or active flag; absent fields are untouched.
// A blank password is ignored rather than stored.
func (s *userService) Update(ctx context.Context, id string, req dto.UpdateUserRequest) error {
	var password *string
	if raw := helpers.Value(req.Password); strings.TrimSpace(raw) != "" {
		hash, err := auth.HashPassword(raw)
		if err != nil {
			return err
		}
		password = &hash
	}

	err := s.Store.UpdatePartial(ctx, id, password, req.IsActive)
	if errors.Is(err, store.ErrNotFound) {
		return errs.NewNotFoundError("user not found")
	}
	if err != nil {
		return errs.NewStorageError("update user", err)
	}

	log := logger.FromContext(ctx)
	log.Info("user updated", "user_id", id,
		"password_changed", password != nil,
		"is_active_set", req.IsActive != nil)
	return nil
}

// Status reports existence and the active flag, nothing else.
func (s *userService) Status(ctx context.Context, id string) (*dto.UserStatusResponse, error) {
	user, err := s.Store.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return &dto.UserStatusResponse{Exists: false}, nil
	}
	if err != nil {
		return nil, errs.NewStorageError("find user", err)
	}
	return &dto.UserStatusResponse{Exists: true, IsActive: user.IsActive}, nil
}

func (s *userService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.Store.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, errs.NewNotFoundError("user not found")
	}
	if err != nil {
		return nil, errs.NewStorageError("find user", err)
	}
	user.Password = ""
	return user, nil
}
