package usecase

import (
	"context"
	"errors"

	"famlink-api/internal/converter"
	"famlink-api/internal/delivery/dto"
	"famlink-api/internal/domain/entity"
	"famlink-api/internal/domain/repository"
	"famlink-api/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrExternalAuthIDUsed = errors.New("external auth id already registered")
	ErrEmailTaken         = errors.New("email already registered")
)

type UserUsecase interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	GetByExternalAuthID(ctx context.Context, externalID string) (*dto.UserResponse, error)
	GetAll(ctx context.Context) (*dto.UserListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userUsecase struct {
	userRepo repository.UserRepository
	clock    clock.Clock
}

func NewUserUsecase(userRepo repository.UserRepository, clk clock.Clock) UserUsecase {
	return &userUsecase{userRepo: userRepo, clock: clk}
}

func (u *userUsecase) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := u.userRepo.FindByExternalID(ctx, req.ExternalAuthID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrExternalAuthIDUsed
	}

	existing, err = u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	user := &entity.User{
		ExternalAuthID:    req.ExternalAuthID,
		Email:             req.Email,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		PhoneNumber:       req.PhoneNumber,
		ProfilePictureURL: req.ProfilePictureURL,
		DateOfBirth:       req.DateOfBirth,
		Gender:            req.Gender,
		Address:           req.Address,
		City:              req.City,
		State:             req.State,
		ZipCode:           req.ZipCode,
		Country:           req.Country,
		IsActive:          true,
	}
	if user.Country == "" {
		user.Country = "India"
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return converter.UserToResponse(user, u.clock.Now()), nil
}

func (u *userUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindActiveWithChildren(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user, u.clock.Now()), nil
}

func (u *userUsecase) GetByExternalAuthID(ctx context.Context, externalID string) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindActiveByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user, u.clock.Now()), nil
}

func (u *userUsecase) GetAll(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := u.userRepo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}

	items := converter.UsersToListItems(users)
	return &dto.UserListResponse{Users: items, Total: len(items)}, nil
}

func (u *userUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.ProfilePictureURL != nil {
		user.ProfilePictureURL = *req.ProfilePictureURL
	}
	if req.DateOfBirth != nil {
		user.DateOfBirth = req.DateOfBirth
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.City != nil {
		user.City = *req.City
	}
	if req.State != nil {
		user.State = *req.State
	}
	if req.ZipCode != nil {
		user.ZipCode = *req.ZipCode
	}
	if req.Country != nil {
		user.Country = *req.Country
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return converter.UserToResponse(user, u.clock.Now()), nil
}

func (u *userUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	return u.userRepo.SoftDelete(ctx, id)
}
