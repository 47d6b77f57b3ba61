package service

import (
	"context"
	"fmt"

	"github.com/jaswanth12321/ecom-admin-suite/internal/domain"
	"github.com/jaswanth12321/ecom-admin-suite/internal/notify"
	"github.com/jaswanth12321/ecom-admin-suite/internal/repository"
)

// AccessService роли и административные пользователи.
// Матрица прав описательная: панель показывает её, но не применяет.
type AccessService struct {
	roles    repository.RoleRepository
	users    repository.UserRepository
	notifier notify.Notifier
}

func NewAccessService(roles repository.RoleRepository, users repository.UserRepository, notifier notify.Notifier) *AccessService {
	return &AccessService{roles: roles, users: users, notifier: notifier}
}

// ListRoles роли по строке поиска
func (s *AccessService) ListRoles(_ context.Context, query string) []domain.Role {
	return s.roles.ListRoles(query)
}

// GetRole роль по id
func (s *AccessService) GetRole(_ context.Context, id string) (*domain.Role, error) {
	return s.roles.GetRole(id)
}

// CreateRole валидирует форму и добавляет пользовательскую роль
func (s *AccessService) CreateRole(ctx context.Context, draft RoleDraft) (*domain.Role, error) {
	r, err := draft.Validate()
	if err != nil {
		notifyValidation(ctx, s.notifier, "Role not created", err)
		return nil, err
	}
	if err := s.roles.CreateRole(&r); err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, notify.KindSuccess, "Role created", fmt.Sprintf("%s added", r.Name))
	return &r, nil
}

// UpdateRole меняет описание и матрицу прав пользовательской роли.
// Системные роли защищены.
func (s *AccessService) UpdateRole(ctx context.Context, id string, draft RoleDraft) (*domain.Role, error) {
	existing, err := s.roles.GetRole(id)
	if err != nil {
		return nil, err
	}
	if existing.IsSystem {
		return nil, fmt.Errorf("update role %s: %w", id, ErrSystemRole)
	}
	r, err := draft.Validate()
	if err != nil {
		notifyValidation(ctx, s.notifier, "Role not updated", err)
		return nil, err
	}
	r.ID = existing.ID
	r.UsersCount = existing.UsersCount
	if err := s.roles.UpdateRole(&r); err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, notify.KindSuccess, "Role updated", fmt.Sprintf("%s saved", r.Name))
	return &r, nil
}

// DeleteRole удаляет пользовательскую роль. Системные роли защищены.
func (s *AccessService) DeleteRole(ctx context.Context, id string) error {
	r, err := s.roles.GetRole(id)
	if err != nil {
		return err
	}
	if r.IsSystem {
		return fmt.Errorf("delete role %s: %w", id, ErrSystemRole)
	}
	if err := s.roles.DeleteRole(id); err != nil {
		return err
	}
	s.notifier.Notify(ctx, notify.KindSuccess, "Role deleted", fmt.Sprintf("%s removed", r.Name))
	return nil
}

// ListUsers административные пользователи по строке поиска
func (s *AccessService) ListUsers(_ context.Context, query string) []domain.AdminUser {
	return s.users.ListUsers(query)
}

// CreateUser валидирует форму и добавляет пользователя. Роль должна существовать.
func (s *AccessService) CreateUser(ctx context.Context, draft UserDraft) (*domain.AdminUser, error) {
	u, err := draft.Validate()
	if err != nil {
		notifyValidation(ctx, s.notifier, "User not created", err)
		return nil, err
	}
	if !s.roleExists(u.Role) {
		vErr := &ValidationError{Fields: []FieldError{{Field: "role", Message: fmt.Sprintf("unknown role %q", u.Role)}}}
		notifyValidation(ctx, s.notifier, "User not created", vErr)
		return nil, vErr
	}
	if err := s.users.CreateUser(&u); err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, notify.KindSuccess, "User created", fmt.Sprintf("%s invited as %s", u.Name, u.Role))
	return &u, nil
}

// SetUserStatus активирует или деактивирует пользователя
func (s *AccessService) SetUserStatus(ctx context.Context, id string, status domain.UserStatus) error {
	if status != domain.UserStatusActive && status != domain.UserStatusInactive {
		err := &ValidationError{Fields: []FieldError{{Field: "status", Message: fmt.Sprintf("unknown status %q", status)}}}
		notifyValidation(ctx, s.notifier, "User not updated", err)
		return err
	}
	u, err := s.users.GetUser(id)
	if err != nil {
		return err
	}
	u.Status = status
	if err := s.users.UpdateUser(u); err != nil {
		return err
	}
	s.notifier.Notify(ctx, notify.KindSuccess, "User updated", fmt.Sprintf("%s is now %s", u.Name, status))
	return nil
}

// SetUserRole переводит пользователя в другую существующую роль
func (s *AccessService) SetUserRole(ctx context.Context, id, role string) error {
	if !s.roleExists(role) {
		err := &ValidationError{Fields: []FieldError{{Field: "role", Message: fmt.Sprintf("unknown role %q", role)}}}
		notifyValidation(ctx, s.notifier, "User not updated", err)
		return err
	}
	u, err := s.users.GetUser(id)
	if err != nil {
		return err
	}
	u.Role = role
	if err := s.users.UpdateUser(u); err != nil {
		return err
	}
	s.notifier.Notify(ctx, notify.KindSuccess, "User updated", fmt.Sprintf("%s moved to %s", u.Name, role))
	return nil
}

func (s *AccessService) roleExists(name string) bool {
	for _, r := range s.roles.ListRoles("") {
		if r.Name == name {
			return true
		}
	}
	return false
}
