// Package actor resolves the authenticated user into an authz.Actor exactly
// once per request. This is the single place that knows a director reaches
// their company through Company.DirectorID while admin/staff/driver reach it
// through User.EmployerID.
package actor

import (
	"context"

	"github.com/okwaroh/twende-logistics/internal/domain"
	"github.com/okwaroh/twende-logistics/internal/domain/authz"
	"github.com/okwaroh/twende-logistics/internal/domain/entity"
	"github.com/okwaroh/twende-logistics/internal/domain/repository"
)

// Resolver loads users and walks the ownership chain to their company.
type Resolver struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
}

// NewResolver builds the resolver.
func NewResolver(users repository.UserRepository, companies repository.CompanyRepository) *Resolver {
	return &Resolver{users: users, companies: companies}
}

// Resolve returns the actor for a user id, or ErrUnauthorized when the
// account no longer exists or has been deactivated.
func (r *Resolver) Resolve(ctx context.Context, userID string) (authz.Actor, error) {
	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		return authz.Actor{}, err
	}
	if user == nil || user.IsDeleted || !user.IsActive {
		return authz.Actor{}, domain.ErrUnauthorized
	}
	companyID, err := r.owningCompany(ctx, user)
	if err != nil {
		return authz.Actor{}, err
	}
	return authz.Actor{UserID: user.ID, Role: user.Role, CompanyID: companyID}, nil
}

// owningCompany implements the two-path resolution once, for every permission
// check downstream.
func (r *Resolver) owningCompany(ctx context.Context, user *entity.User) (string, error) {
	if user.Role.IsDirector() {
		company, err := r.companies.GetByDirector(ctx, user.ID)
		if err != nil {
			return "", err
		}
		if company == nil {
			return "", nil
		}
		return company.ID, nil
	}
	return user.EmployerID, nil
}
