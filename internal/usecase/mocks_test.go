package usecase

import (
	"context"

	"github.com/taskboard-dev/taskboard/internal/domain"
	"github.com/taskboard-dev/taskboard/internal/repository"
)

type mockTaskRepo struct {
	createFunc           func(ctx context.Context, record repository.CreateTaskRecord) (domain.Task, error)
	getByIDFunc          func(ctx context.Context, id uint) (domain.Task, error)
	getByUserIDFunc      func(ctx context.Context, userID uint) ([]domain.Task, error)
	getByProjectIDFunc   func(ctx context.Context, projectID uint) ([]domain.Task, error)
	getByUserStatusFunc  func(ctx context.Context, userID uint, status domain.TaskStatus) ([]domain.Task, error)
	updateFunc           func(ctx context.Context, id uint, record repository.UpdateTaskRecord) (domain.Task, error)
	deleteFunc           func(ctx context.Context, id uint) error
	belongsToUserFunc    func(ctx context.Context, id uint, userID uint) (bool, error)
	createCalls          int
	deleteCalls          int
	updateCalls          int
	getByUserStatusCalls int
}

func (m *mockTaskRepo) Create(ctx context.Context, record repository.CreateTaskRecord) (domain.Task, error) {
	m.createCalls++
	return m.createFunc(ctx, record)
}

func (m *mockTaskRepo) GetByID(ctx context.Context, id uint) (domain.Task, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockTaskRepo) GetByUserID(ctx context.Context, userID uint) ([]domain.Task, error) {
	return m.getByUserIDFunc(ctx, userID)
}

func (m *mockTaskRepo) GetByProjectID(ctx context.Context, projectID uint) ([]domain.Task, error) {
	return m.getByProjectIDFunc(ctx, projectID)
}

func (m *mockTaskRepo) GetByUserIDAndStatus(ctx context.Context, userID uint, status domain.TaskStatus) ([]domain.Task, error) {
	m.getByUserStatusCalls++
	return m.getByUserStatusFunc(ctx, userID, status)
}

func (m *mockTaskRepo) Update(ctx context.Context, id uint, record repository.UpdateTaskRecord) (domain.Task, error) {
	m.updateCalls++
	return m.updateFunc(ctx, id, record)
}

func (m *mockTaskRepo) Delete(ctx context.Context, id uint) error {
	m.deleteCalls++
	return m.deleteFunc(ctx, id)
}

func (m *mockTaskRepo) BelongsToUser(ctx context.Context, id uint, userID uint) (bool, error) {
	return m.belongsToUserFunc(ctx, id, userID)
}

type mockProjectRepo struct {
	createFunc        func(ctx context.Context, record repository.CreateProjectRecord) (domain.Project, error)
	getByIDFunc       func(ctx context.Context, id uint) (domain.Project, error)
	getByUserIDFunc   func(ctx context.Context, userID uint) ([]domain.Project, error)
	updateFunc        func(ctx context.Context, id uint, record repository.UpdateProjectRecord) (domain.Project, error)
	deleteFunc        func(ctx context.Context, id uint) error
	belongsToUserFunc func(ctx context.Context, id uint, userID uint) (bool, error)
	deleteCalls       int
}

func (m *mockProjectRepo) Create(ctx context.Context, record repository.CreateProjectRecord) (domain.Project, error) {
	return m.createFunc(ctx, record)
}

func (m *mockProjectRepo) GetByID(ctx context.Context, id uint) (domain.Project, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockProjectRepo) GetByUserID(ctx context.Context, userID uint) ([]domain.Project, error) {
	return m.getByUserIDFunc(ctx, userID)
}

func (m *mockProjectRepo) Update(ctx context.Context, id uint, record repository.UpdateProjectRecord) (domain.Project, error) {
	return m.updateFunc(ctx, id, record)
}

func (m *mockProjectRepo) Delete(ctx context.Context, id uint) error {
	m.deleteCalls++
	return m.deleteFunc(ctx, id)
}

func (m *mockProjectRepo) BelongsToUser(ctx context.Context, id uint, userID uint) (bool, error) {
	return m.belongsToUserFunc(ctx, id, userID)
}

type mockNotificationRepo struct {
	createFunc            func(ctx context.Context, record repository.CreateNotificationRecord) (domain.Notification, error)
	getByIDFunc           func(ctx context.Context, id uint) (domain.Notification, error)
	getByUserIDFunc       func(ctx context.Context, userID uint) ([]domain.Notification, error)
	getUnreadByUserIDFunc func(ctx context.Context, userID uint) ([]domain.Notification, error)
	markAsReadFunc        func(ctx context.Context, id uint) (domain.Notification, error)
	markAllAsReadFunc     func(ctx context.Context, userID uint) error
	deleteFunc            func(ctx context.Context, id uint) error
	belongsToUserFunc     func(ctx context.Context, id uint, userID uint) (bool, error)
	markAsReadCalls       int
}

func (m *mockNotificationRepo) Create(ctx context.Context, record repository.CreateNotificationRecord) (domain.Notification, error) {
	return m.createFunc(ctx, record)
}

func (m *mockNotificationRepo) GetByID(ctx context.Context, id uint) (domain.Notification, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockNotificationRepo) GetByUserID(ctx context.Context, userID uint) ([]domain.Notification, error) {
	return m.getByUserIDFunc(ctx, userID)
}

func (m *mockNotificationRepo) GetUnreadByUserID(ctx context.Context, userID uint) ([]domain.Notification, error) {
	return m.getUnreadByUserIDFunc(ctx, userID)
}

func (m *mockNotificationRepo) MarkAsRead(ctx context.Context, id uint) (domain.Notification, error) {
	m.markAsReadCalls++
	return m.markAsReadFunc(ctx, id)
}

func (m *mockNotificationRepo) MarkAllAsRead(ctx context.Context, userID uint) error {
	return m.markAllAsReadFunc(ctx, userID)
}

func (m *mockNotificationRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockNotificationRepo) BelongsToUser(ctx context.Context, id uint, userID uint) (bool, error) {
	return m.belongsToUserFunc(ctx, id, userID)
}

type mockUserRepo struct {
	createFunc      func(ctx context.Context, record repository.CreateUserRecord) (domain.User, error)
	getByIDFunc     func(ctx context.Context, id uint) (domain.User, error)
	getByEmailFunc  func(ctx context.Context, email string) (repository.UserCredentials, error)
	emailExistsFunc func(ctx context.Context, email string) (bool, error)
}

func (m *mockUserRepo) Create(ctx context.Context, record repository.CreateUserRecord) (domain.User, error) {
	return m.createFunc(ctx, record)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (domain.User, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (repository.UserCredentials, error) {
	return m.getByEmailFunc(ctx, email)
}

func (m *mockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return m.emailExistsFunc(ctx, email)
}
