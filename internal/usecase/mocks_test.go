package usecase

import (
	"context"
	"errors"
	"time"

	"famlink-api/internal/domain/entity"
	"famlink-api/internal/domain/repository"

	"github.com/google/uuid"
)

// Hand-written repository mocks. Each method delegates to an optional
// function field and fails loudly when the test forgot to set it.

type MockUserRepository struct {
	CreateFunc                 func(ctx context.Context, user *entity.User) error
	UpdateFunc                 func(ctx context.Context, user *entity.User) error
	SoftDeleteFunc             func(ctx context.Context, id uuid.UUID) error
	FindByIDFunc               func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindActiveByIDFunc         func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindActiveWithChildrenFunc func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindActiveByExternalIDFunc func(ctx context.Context, externalID string) (*entity.User, error)
	FindByExternalIDFunc       func(ctx context.Context, externalID string) (*entity.User, error)
	FindByEmailFunc            func(ctx context.Context, email string) (*entity.User, error)
	FindAllActiveFunc          func(ctx context.Context) ([]entity.User, error)
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return errors.New("CreateFunc not implemented in mock")
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if m.SoftDeleteFunc != nil {
		return m.SoftDeleteFunc(ctx, id)
	}
	return errors.New("SoftDeleteFunc not implemented in mock")
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockUserRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.FindActiveByIDFunc != nil {
		return m.FindActiveByIDFunc(ctx, id)
	}
	return nil, errors.New("FindActiveByIDFunc not implemented in mock")
}

func (m *MockUserRepository) FindActiveWithChildren(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.FindActiveWithChildrenFunc != nil {
		return m.FindActiveWithChildrenFunc(ctx, id)
	}
	return nil, errors.New("FindActiveWithChildrenFunc not implemented in mock")
}

func (m *MockUserRepository) FindActiveByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	if m.FindActiveByExternalIDFunc != nil {
		return m.FindActiveByExternalIDFunc(ctx, externalID)
	}
	return nil, errors.New("FindActiveByExternalIDFunc not implemented in mock")
}

func (m *MockUserRepository) FindByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	if m.FindByExternalIDFunc != nil {
		return m.FindByExternalIDFunc(ctx, externalID)
	}
	return nil, errors.New("FindByExternalIDFunc not implemented in mock")
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, errors.New("FindByEmailFunc not implemented in mock")
}

func (m *MockUserRepository) FindAllActive(ctx context.Context) ([]entity.User, error) {
	if m.FindAllActiveFunc != nil {
		return m.FindAllActiveFunc(ctx)
	}
	return nil, errors.New("FindAllActiveFunc not implemented in mock")
}

type MockChildRepository struct {
	CreateFunc               func(ctx context.Context, child *entity.Child) error
	UpdateFunc               func(ctx context.Context, child *entity.Child) error
	SoftDeleteFunc           func(ctx context.Context, id uuid.UUID) error
	FindByIDFunc             func(ctx context.Context, id uuid.UUID) (*entity.Child, error)
	FindActiveByIDFunc       func(ctx context.Context, id uuid.UUID) (*entity.Child, error)
	FindActiveWithParentFunc func(ctx context.Context, id uuid.UUID) (*entity.Child, error)
	FindActiveByParentIDFunc func(ctx context.Context, parentID uuid.UUID) ([]entity.Child, error)
}

var _ repository.ChildRepository = (*MockChildRepository)(nil)

func (m *MockChildRepository) Create(ctx context.Context, child *entity.Child) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, child)
	}
	return errors.New("CreateFunc not implemented in mock")
}

func (m *MockChildRepository) Update(ctx context.Context, child *entity.Child) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, child)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockChildRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if m.SoftDeleteFunc != nil {
		return m.SoftDeleteFunc(ctx, id)
	}
	return errors.New("SoftDeleteFunc not implemented in mock")
}

func (m *MockChildRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Child, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockChildRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Child, error) {
	if m.FindActiveByIDFunc != nil {
		return m.FindActiveByIDFunc(ctx, id)
	}
	return nil, errors.New("FindActiveByIDFunc not implemented in mock")
}

func (m *MockChildRepository) FindActiveWithParent(ctx context.Context, id uuid.UUID) (*entity.Child, error) {
	if m.FindActiveWithParentFunc != nil {
		return m.FindActiveWithParentFunc(ctx, id)
	}
	return nil, errors.New("FindActiveWithParentFunc not implemented in mock")
}

func (m *MockChildRepository) FindActiveByParentID(ctx context.Context, parentID uuid.UUID) ([]entity.Child, error) {
	if m.FindActiveByParentIDFunc != nil {
		return m.FindActiveByParentIDFunc(ctx, parentID)
	}
	return nil, errors.New("FindActiveByParentIDFunc not implemented in mock")
}

type MockMedicalRecordRepository struct {
	CreateFunc               func(ctx context.Context, record *entity.MedicalRecord) error
	UpdateFunc               func(ctx context.Context, record *entity.MedicalRecord) error
	SoftDeleteFunc           func(ctx context.Context, id uuid.UUID) error
	FindByIDFunc             func(ctx context.Context, id uuid.UUID) (*entity.MedicalRecord, error)
	FindActiveWithChildFunc  func(ctx context.Context, id uuid.UUID) (*entity.MedicalRecord, error)
	FindActiveByChildFunc    func(ctx context.Context, childID uuid.UUID, filter repository.MedicalRecordFilter, offset, limit int) ([]entity.MedicalRecord, int64, error)
	FindAllActiveByChildFunc func(ctx context.Context, childID uuid.UUID) ([]entity.MedicalRecord, error)
	CountActiveByChildFunc   func(ctx context.Context, childID uuid.UUID) (int64, error)
}

var _ repository.MedicalRecordRepository = (*MockMedicalRecordRepository)(nil)

func (m *MockMedicalRecordRepository) Create(ctx context.Context, record *entity.MedicalRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	return errors.New("CreateFunc not implemented in mock")
}

func (m *MockMedicalRecordRepository) Update(ctx context.Context, record *entity.MedicalRecord) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, record)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockMedicalRecordRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if m.SoftDeleteFunc != nil {
		return m.SoftDeleteFunc(ctx, id)
	}
	return errors.New("SoftDeleteFunc not implemented in mock")
}

func (m *MockMedicalRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MedicalRecord, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockMedicalRecordRepository) FindActiveWithChild(ctx context.Context, id uuid.UUID) (*entity.MedicalRecord, error) {
	if m.FindActiveWithChildFunc != nil {
		return m.FindActiveWithChildFunc(ctx, id)
	}
	return nil, errors.New("FindActiveWithChildFunc not implemented in mock")
}

func (m *MockMedicalRecordRepository) FindActiveByChild(ctx context.Context, childID uuid.UUID, filter repository.MedicalRecordFilter, offset, limit int) ([]entity.MedicalRecord, int64, error) {
	if m.FindActiveByChildFunc != nil {
		return m.FindActiveByChildFunc(ctx, childID, filter, offset, limit)
	}
	return nil, 0, errors.New("FindActiveByChildFunc not implemented in mock")
}

func (m *MockMedicalRecordRepository) FindAllActiveByChild(ctx context.Context, childID uuid.UUID) ([]entity.MedicalRecord, error) {
	if m.FindAllActiveByChildFunc != nil {
		return m.FindAllActiveByChildFunc(ctx, childID)
	}
	return nil, errors.New("FindAllActiveByChildFunc not implemented in mock")
}

func (m *MockMedicalRecordRepository) CountActiveByChild(ctx context.Context, childID uuid.UUID) (int64, error) {
	if m.CountActiveByChildFunc != nil {
		return m.CountActiveByChildFunc(ctx, childID)
	}
	return 0, errors.New("CountActiveByChildFunc not implemented in mock")
}

type MockHospitalRepository struct {
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*entity.Hospital, error)
	FindActiveByIDFunc func(ctx context.Context, id uuid.UUID) (*entity.Hospital, error)
	FindActiveFunc     func(ctx context.Context, filter repository.HospitalFilter, offset, limit int) ([]entity.Hospital, int64, error)
	SearchFunc         func(ctx context.Context, query string, limit int) ([]entity.Hospital, error)
}

var _ repository.HospitalRepository = (*MockHospitalRepository)(nil)

func (m *MockHospitalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hospital, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockHospitalRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Hospital, error) {
	if m.FindActiveByIDFunc != nil {
		return m.FindActiveByIDFunc(ctx, id)
	}
	return nil, errors.New("FindActiveByIDFunc not implemented in mock")
}

func (m *MockHospitalRepository) FindActive(ctx context.Context, filter repository.HospitalFilter, offset, limit int) ([]entity.Hospital, int64, error) {
	if m.FindActiveFunc != nil {
		return m.FindActiveFunc(ctx, filter, offset, limit)
	}
	return nil, 0, errors.New("FindActiveFunc not implemented in mock")
}

func (m *MockHospitalRepository) Search(ctx context.Context, query string, limit int) ([]entity.Hospital, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, limit)
	}
	return nil, errors.New("SearchFunc not implemented in mock")
}

type MockAppointmentRepository struct {
	CreateFunc                   func(ctx context.Context, appointment *entity.Appointment) error
	UpdateFunc                   func(ctx context.Context, appointment *entity.Appointment) error
	FindByIDFunc                 func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	HasActiveAtTimeFunc          func(ctx context.Context, hospitalID uuid.UUID, at time.Time) (bool, error)
	FindUpcomingByChildFunc      func(ctx context.Context, childID uuid.UUID, after time.Time, limit int) ([]entity.Appointment, error)
	FindRecentByChildFunc        func(ctx context.Context, childID uuid.UUID, since time.Time, limit int) ([]entity.Appointment, error)
	FindUpcomingByHospitalFunc   func(ctx context.Context, hospitalID uuid.UUID, after time.Time, limit int) ([]entity.Appointment, error)
	CountNonCancelledByChildFunc func(ctx context.Context, childID uuid.UUID) (int64, error)
}

var _ repository.AppointmentRepository = (*MockAppointmentRepository)(nil)

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, appointment)
	}
	return errors.New("CreateFunc not implemented in mock")
}

func (m *MockAppointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, appointment)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockAppointmentRepository) HasActiveAtTime(ctx context.Context, hospitalID uuid.UUID, at time.Time) (bool, error) {
	if m.HasActiveAtTimeFunc != nil {
		return m.HasActiveAtTimeFunc(ctx, hospitalID, at)
	}
	return false, errors.New("HasActiveAtTimeFunc not implemented in mock")
}

func (m *MockAppointmentRepository) FindUpcomingByChild(ctx context.Context, childID uuid.UUID, after time.Time, limit int) ([]entity.Appointment, error) {
	if m.FindUpcomingByChildFunc != nil {
		return m.FindUpcomingByChildFunc(ctx, childID, after, limit)
	}
	return nil, errors.New("FindUpcomingByChildFunc not implemented in mock")
}

func (m *MockAppointmentRepository) FindRecentByChild(ctx context.Context, childID uuid.UUID, since time.Time, limit int) ([]entity.Appointment, error) {
	if m.FindRecentByChildFunc != nil {
		return m.FindRecentByChildFunc(ctx, childID, since, limit)
	}
	return nil, errors.New("FindRecentByChildFunc not implemented in mock")
}

func (m *MockAppointmentRepository) FindUpcomingByHospital(ctx context.Context, hospitalID uuid.UUID, after time.Time, limit int) ([]entity.Appointment, error) {
	if m.FindUpcomingByHospitalFunc != nil {
		return m.FindUpcomingByHospitalFunc(ctx, hospitalID, after, limit)
	}
	return nil, errors.New("FindUpcomingByHospitalFunc not implemented in mock")
}

func (m *MockAppointmentRepository) CountNonCancelledByChild(ctx context.Context, childID uuid.UUID) (int64, error) {
	if m.CountNonCancelledByChildFunc != nil {
		return m.CountNonCancelledByChildFunc(ctx, childID)
	}
	return 0, errors.New("CountNonCancelledByChildFunc not implemented in mock")
}

type MockCommunityPostRepository struct {
	CreateFunc               func(ctx context.Context, post *entity.CommunityPost) error
	UpdateFunc               func(ctx context.Context, post *entity.CommunityPost) error
	FindByIDFunc             func(ctx context.Context, id uuid.UUID) (*entity.CommunityPost, error)
	FindActiveWithAuthorFunc func(ctx context.Context, id uuid.UUID) (*entity.CommunityPost, error)
	FindActiveFunc           func(ctx context.Context, filter repository.PostFilter, offset, limit int) ([]entity.CommunityPost, int64, error)
}

var _ repository.CommunityPostRepository = (*MockCommunityPostRepository)(nil)

func (m *MockCommunityPostRepository) Create(ctx context.Context, post *entity.CommunityPost) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, post)
	}
	return errors.New("CreateFunc not implemented in mock")
}

func (m *MockCommunityPostRepository) Update(ctx context.Context, post *entity.CommunityPost) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, post)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockCommunityPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CommunityPost, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockCommunityPostRepository) FindActiveWithAuthor(ctx context.Context, id uuid.UUID) (*entity.CommunityPost, error) {
	if m.FindActiveWithAuthorFunc != nil {
		return m.FindActiveWithAuthorFunc(ctx, id)
	}
	return nil, errors.New("FindActiveWithAuthorFunc not implemented in mock")
}

func (m *MockCommunityPostRepository) FindActive(ctx context.Context, filter repository.PostFilter, offset, limit int) ([]entity.CommunityPost, int64, error) {
	if m.FindActiveFunc != nil {
		return m.FindActiveFunc(ctx, filter, offset, limit)
	}
	return nil, 0, errors.New("FindActiveFunc not implemented in mock")
}

type MockCommunityCommentRepository struct {
	CreateFunc               func(ctx context.Context, comment *entity.CommunityComment) error
	UpdateFunc               func(ctx context.Context, comment *entity.CommunityComment) error
	FindByIDFunc             func(ctx context.Context, id uuid.UUID) (*entity.CommunityComment, error)
	FindActiveWithAuthorFunc func(ctx context.Context, id uuid.UUID) (*entity.CommunityComment, error)
	FindActiveByPostFunc     func(ctx context.Context, postID uuid.UUID) ([]entity.CommunityComment, error)
}

var _ repository.CommunityCommentRepository = (*MockCommunityCommentRepository)(nil)

func (m *MockCommunityCommentRepository) Create(ctx context.Context, comment *entity.CommunityComment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return errors.New("CreateFunc not implemented in mock")
}

func (m *MockCommunityCommentRepository) Update(ctx context.Context, comment *entity.CommunityComment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, comment)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockCommunityCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CommunityComment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockCommunityCommentRepository) FindActiveWithAuthor(ctx context.Context, id uuid.UUID) (*entity.CommunityComment, error) {
	if m.FindActiveWithAuthorFunc != nil {
		return m.FindActiveWithAuthorFunc(ctx, id)
	}
	return nil, errors.New("FindActiveWithAuthorFunc not implemented in mock")
}

func (m *MockCommunityCommentRepository) FindActiveByPost(ctx context.Context, postID uuid.UUID) ([]entity.CommunityComment, error) {
	if m.FindActiveByPostFunc != nil {
		return m.FindActiveByPostFunc(ctx, postID)
	}
	return nil, errors.New("FindActiveByPostFunc not implemented in mock")
}

type MockCommunityLikeRepository struct {
	CreateFunc               func(ctx context.Context, like *entity.CommunityLike) error
	DeleteFunc               func(ctx context.Context, id uuid.UUID) error
	FindByUserAndPostFunc    func(ctx context.Context, userID, postID uuid.UUID) (*entity.CommunityLike, error)
	FindByUserAndCommentFunc func(ctx context.Context, userID, commentID uuid.UUID) (*entity.CommunityLike, error)
}

var _ repository.CommunityLikeRepository = (*MockCommunityLikeRepository)(nil)

func (m *MockCommunityLikeRepository) Create(ctx context.Context, like *entity.CommunityLike) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, like)
	}
	return errors.New("CreateFunc not implemented in mock")
}

func (m *MockCommunityLikeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errors.New("DeleteFunc not implemented in mock")
}

func (m *MockCommunityLikeRepository) FindByUserAndPost(ctx context.Context, userID, postID uuid.UUID) (*entity.CommunityLike, error) {
	if m.FindByUserAndPostFunc != nil {
		return m.FindByUserAndPostFunc(ctx, userID, postID)
	}
	return nil, errors.New("FindByUserAndPostFunc not implemented in mock")
}

func (m *MockCommunityLikeRepository) FindByUserAndComment(ctx context.Context, userID, commentID uuid.UUID) (*entity.CommunityLike, error) {
	if m.FindByUserAndCommentFunc != nil {
		return m.FindByUserAndCommentFunc(ctx, userID, commentID)
	}
	return nil, errors.New("FindByUserAndCommentFunc not implemented in mock")
}

type MockChatConversationRepository struct {
	CreateFunc                  func(ctx context.Context, conversation *entity.ChatConversation) error
	UpdateFunc                  func(ctx context.Context, conversation *entity.ChatConversation) error
	SoftDeleteFunc              func(ctx context.Context, id uuid.UUID) error
	FindByIDFunc                func(ctx context.Context, id uuid.UUID) (*entity.ChatConversation, error)
	FindActiveWithRelationsFunc func(ctx context.Context, id uuid.UUID) (*entity.ChatConversation, error)
	FindActiveByUserFunc        func(ctx context.Context, userID uuid.UUID, offset, limit int) ([]entity.ChatConversation, int64, error)
}

var _ repository.ChatConversationRepository = (*MockChatConversationRepository)(nil)

func (m *MockChatConversationRepository) Create(ctx context.Context, conversation *entity.ChatConversation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, conversation)
	}
	return errors.New("CreateFunc not implemented in mock")
}

func (m *MockChatConversationRepository) Update(ctx context.Context, conversation *entity.ChatConversation) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, conversation)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockChatConversationRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if m.SoftDeleteFunc != nil {
		return m.SoftDeleteFunc(ctx, id)
	}
	return errors.New("SoftDeleteFunc not implemented in mock")
}

func (m *MockChatConversationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ChatConversation, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockChatConversationRepository) FindActiveWithRelations(ctx context.Context, id uuid.UUID) (*entity.ChatConversation, error) {
	if m.FindActiveWithRelationsFunc != nil {
		return m.FindActiveWithRelationsFunc(ctx, id)
	}
	return nil, errors.New("FindActiveWithRelationsFunc not implemented in mock")
}

func (m *MockChatConversationRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]entity.ChatConversation, int64, error) {
	if m.FindActiveByUserFunc != nil {
		return m.FindActiveByUserFunc(ctx, userID, offset, limit)
	}
	return nil, 0, errors.New("FindActiveByUserFunc not implemented in mock")
}
