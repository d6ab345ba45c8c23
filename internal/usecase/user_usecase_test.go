package usecase

import (
	"context"
	"testing"
	"time"

	"famlink-api/internal/delivery/dto"
	"famlink-api/internal/domain/entity"
	"famlink-api/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func TestUserUsecaseCreate(t *testing.T) {
	t.Run("creates user with default country", func(t *testing.T) {
		var created *entity.User
		userRepo := &MockUserRepository{
			FindByExternalIDFunc: func(ctx context.Context, externalID string) (*entity.User, error) {
				return nil, nil
			},
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return nil, nil
			},
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				user.ID = uuid.New()
				created = user
				return nil
			},
		}

		uc := NewUserUsecase(userRepo, clock.Fixed(testNow))
		resp, err := uc.Create(context.Background(), &dto.CreateUserRequest{
			ExternalAuthID: "auth0|abc123",
			Email:          "priya@example.com",
			FirstName:      "Priya",
			LastName:       "Patel",
		})

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Equal(t, "Priya Patel", resp.FullName)
		assert.Equal(t, "India", resp.Country)
		assert.True(t, created.IsActive)
	})

	t.Run("keeps explicit country", func(t *testing.T) {
		userRepo := &MockUserRepository{
			FindByExternalIDFunc: func(ctx context.Context, externalID string) (*entity.User, error) {
				return nil, nil
			},
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return nil, nil
			},
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return nil
			},
		}

		uc := NewUserUsecase(userRepo, clock.Fixed(testNow))
		resp, err := uc.Create(context.Background(), &dto.CreateUserRequest{
			ExternalAuthID: "auth0|abc123",
			Email:          "priya@example.com",
			FirstName:      "Priya",
			LastName:       "Patel",
			Country:        "Nepal",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Nepal", resp.Country)
	})

	t.Run("rejects duplicate external auth id", func(t *testing.T) {
		userRepo := &MockUserRepository{
			FindByExternalIDFunc: func(ctx context.Context, externalID string) (*entity.User, error) {
				return &entity.User{ID: uuid.New(), ExternalAuthID: externalID}, nil
			},
		}

		uc := NewUserUsecase(userRepo, clock.Fixed(testNow))
		resp, err := uc.Create(context.Background(), &dto.CreateUserRequest{
			ExternalAuthID: "auth0|taken",
			Email:          "new@example.com",
			FirstName:      "A",
			LastName:       "B",
		})

		assert.ErrorIs(t, err, ErrExternalAuthIDUsed)
		assert.Nil(t, resp)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		userRepo := &MockUserRepository{
			FindByExternalIDFunc: func(ctx context.Context, externalID string) (*entity.User, error) {
				return nil, nil
			},
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &entity.User{ID: uuid.New(), Email: email}, nil
			},
		}

		uc := NewUserUsecase(userRepo, clock.Fixed(testNow))
		resp, err := uc.Create(context.Background(), &dto.CreateUserRequest{
			ExternalAuthID: "auth0|fresh",
			Email:          "taken@example.com",
			FirstName:      "A",
			LastName:       "B",
		})

		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.Nil(t, resp)
	})
}

func TestUserUsecaseGetByID(t *testing.T) {
	t.Run("missing user maps to not found", func(t *testing.T) {
		userRepo := &MockUserRepository{
			FindActiveWithChildrenFunc: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
				return nil, nil
			},
		}

		uc := NewUserUsecase(userRepo, clock.Fixed(testNow))
		resp, err := uc.GetByID(context.Background(), uuid.New())

		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, resp)
	})

	t.Run("includes children summaries", func(t *testing.T) {
		userRepo := &MockUserRepository{
			FindActiveWithChildrenFunc: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
				return &entity.User{
					ID:        id,
					Email:     "priya@example.com",
					FirstName: "Priya",
					LastName:  "Patel",
					Country:   "India",
					Children: []entity.Child{
						{
							ID:          uuid.New(),
							FirstName:   "Aarav",
							LastName:    "Patel",
							DateOfBirth: testNow.AddDate(-2, 0, 0),
						},
					},
				}, nil
			},
		}

		uc := NewUserUsecase(userRepo, clock.Fixed(testNow))
		resp, err := uc.GetByID(context.Background(), uuid.New())

		assert.NoError(t, err)
		assert.Len(t, resp.Children, 1)
		assert.Equal(t, "Aarav Patel", resp.Children[0].FullName)
		assert.Equal(t, 2, resp.Children[0].AgeInYears)
	})
}

func TestUserUsecaseGetByExternalAuthID(t *testing.T) {
	userRepo := &MockUserRepository{
		FindActiveByExternalIDFunc: func(ctx context.Context, externalID string) (*entity.User, error) {
			if externalID == "auth0|known" {
				return &entity.User{ID: uuid.New(), ExternalAuthID: externalID, FirstName: "Priya", LastName: "Patel"}, nil
			}
			return nil, nil
		},
	}
	uc := NewUserUsecase(userRepo, clock.Fixed(testNow))

	resp, err := uc.GetByExternalAuthID(context.Background(), "auth0|known")
	assert.NoError(t, err)
	assert.Equal(t, "auth0|known", resp.ExternalAuthID)

	resp, err = uc.GetByExternalAuthID(context.Background(), "auth0|unknown")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, resp)
}

func TestUserUsecaseUpdate(t *testing.T) {
	t.Run("patches only provided fields", func(t *testing.T) {
		var updated *entity.User
		userRepo := &MockUserRepository{
			FindActiveByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
				return &entity.User{
					ID:        id,
					FirstName: "Priya",
					LastName:  "Patel",
					City:      "Mumbai",
					Country:   "India",
				}, nil
			},
			UpdateFunc: func(ctx context.Context, user *entity.User) error {
				updated = user
				return nil
			},
		}

		city := "Pune"
		uc := NewUserUsecase(userRepo, clock.Fixed(testNow))
		resp, err := uc.Update(context.Background(), uuid.New(), &dto.UpdateUserRequest{City: &city})

		assert.NoError(t, err)
		assert.Equal(t, "Pune", updated.City)
		assert.Equal(t, "Priya", updated.FirstName)
		assert.Equal(t, "Pune", resp.City)
	})

	t.Run("missing user maps to not found", func(t *testing.T) {
		userRepo := &MockUserRepository{
			FindActiveByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
				return nil, nil
			},
		}

		uc := NewUserUsecase(userRepo, clock.Fixed(testNow))
		_, err := uc.Update(context.Background(), uuid.New(), &dto.UpdateUserRequest{})

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserUsecaseDelete(t *testing.T) {
	t.Run("soft deletes existing user", func(t *testing.T) {
		deleted := false
		userRepo := &MockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
				return &entity.User{ID: id}, nil
			},
			SoftDeleteFunc: func(ctx context.Context, id uuid.UUID) error {
				deleted = true
				return nil
			},
		}

		uc := NewUserUsecase(userRepo, clock.Fixed(testNow))
		err := uc.Delete(context.Background(), uuid.New())

		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("missing user maps to not found", func(t *testing.T) {
		userRepo := &MockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
				return nil, nil
			},
		}

		uc := NewUserUsecase(userRepo, clock.Fixed(testNow))
		err := uc.Delete(context.Background(), uuid.New())

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
