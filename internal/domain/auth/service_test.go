package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rvconsign/internal/domain"
	"rvconsign/internal/middleware"
	"rvconsign/internal/pkg/jwt"
	"rvconsign/internal/testutil"
)

func setupService(t *testing.T) (*Service, Repository, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	repo := NewRepository(db)
	return NewService(repo, jwt.New("test-secret", time.Hour)), repo, db
}

func TestSignUp_OwnerCreatesOwnerRow(t *testing.T) {
	svc, repo, _ := setupService(t)
	ctx := context.Background()

	sess, err := svc.SignUp(ctx, SignUpRequest{
		Email: "Sam@Sunny.example", Password: "secret1", FullName: "Sam Sunny", Role: "owner",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, "sam@sunny.example", sess.Profile.Email)
	assert.Equal(t, domain.RoleOwner, sess.Profile.Role)

	owner, err := repo.OwnerForUser(ctx, sess.Profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sam Sunny", owner.BusinessName)
	assert.Equal(t, domain.OwnerPendingApproval, owner.Status)
	assert.Equal(t, 70.0, owner.RevenueSplitPercentage)
	assert.Equal(t, 10.0, owner.PlatformFeePercentage)

	_, err = repo.RenterIDForUser(ctx, sess.Profile.ID)
	assert.ErrorIs(t, err, middleware.ErrNoAccount)
}

func TestSignUp_DefaultsToRenter(t *testing.T) {
	svc, repo, _ := setupService(t)

	sess, err := svc.SignUp(context.Background(), SignUpRequest{Email: "r@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleRenter, sess.Profile.Role)

	id, err := repo.RenterIDForUser(context.Background(), sess.Profile.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestSignUp_Rejections(t *testing.T) {
	svc, _, db := setupService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, SignUpRequest{Email: "m@example.com", Password: "secret1", Role: "manager"})
	assert.ErrorIs(t, err, ErrRoleNotAllowed)

	_, err = svc.SignUp(ctx, SignUpRequest{Email: "m@example.com", Password: "secret1", Role: "pilot"})
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = svc.SignUp(ctx, SignUpRequest{Email: "dup@example.com", Password: "secret1", Role: "owner"})
	require.NoError(t, err)
	_, err = svc.SignUp(ctx, SignUpRequest{Email: "dup@example.com", Password: "secret1", Role: "owner"})
	assert.ErrorIs(t, err, ErrEmailExists)

	var owners int64
	require.NoError(t, db.Model(&domain.Owner{}).Count(&owners).Error)
	assert.EqualValues(t, 1, owners)
}

func TestSignIn(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, SignUpRequest{Email: "r@example.com", Password: "secret1"})
	require.NoError(t, err)

	sess, err := svc.SignIn(ctx, SignInRequest{Email: "R@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)

	_, err = svc.SignIn(ctx, SignInRequest{Email: "r@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn(ctx, SignInRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestMe_IncludesAccount(t *testing.T) {
	svc, _, db := setupService(t)
	ctx := context.Background()

	sess, err := svc.SignUp(ctx, SignUpRequest{Email: "o@example.com", Password: "secret1", Role: "owner"})
	require.NoError(t, err)

	me, err := svc.Me(ctx, sess.Profile.ID)
	require.NoError(t, err)
	require.NotNil(t, me.Owner)
	assert.Nil(t, me.Renter)

	manager := testutil.Profile(t, db, domain.RoleManager, "ops@example.com")
	me, err = svc.Me(ctx, manager.ID)
	require.NoError(t, err)
	assert.Nil(t, me.Owner)

	_, err = svc.Me(ctx, "missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
