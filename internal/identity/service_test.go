package identity_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodiesbnb/foodiesbnb-api/internal/httperr"
	"github.com/foodiesbnb/foodiesbnb-api/internal/identity"
	infraRepo "github.com/foodiesbnb/foodiesbnb-api/internal/infra/repository"
	"github.com/foodiesbnb/foodiesbnb-api/internal/models"
	"github.com/foodiesbnb/foodiesbnb-api/internal/store"
)

func newService() *identity.Service {
	return identity.NewService(infraRepo.NewUserStoreRepository(store.NewMemory()))
}

func register(t *testing.T, svc *identity.Service, email string) *models.User {
	t.Helper()
	u, err := svc.Register(context.Background(), identity.RegisterInput{
		FullName: "Test User",
		Email:    email,
		Password: "pass123",
		UserType: models.UserTypeFoodie,
	})
	require.NoError(t, err)
	return u
}

func TestRegister_ReturnsRedactedUser(t *testing.T) {
	svc := newService()

	u := register(t, svc, "foodie@test.com")

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "foodie@test.com", u.Email)
	assert.Empty(t, u.PasswordHash)
	assert.False(t, u.CreatedAt.IsZero())

	// Registering does not log the user in.
	assert.Nil(t, svc.CurrentSession(context.Background()))
}

func TestRegister_DuplicateEmailIsCaseInsensitive(t *testing.T) {
	svc := newService()
	register(t, svc, "foodie@test.com")

	_, err := svc.Register(context.Background(), identity.RegisterInput{
		FullName: "Other",
		Email:    "FOODIE@Test.com",
		Password: "pass123",
		UserType: models.UserTypeFoodie,
	})
	assert.True(t, httperr.IsBusiness(err, "duplicate_email"))
}

func TestRegister_Validation(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, identity.RegisterInput{
		FullName: "U", Email: "u@test.com", Password: "short", UserType: models.UserTypeFoodie,
	})
	assert.True(t, httperr.IsBusiness(err, "weak_password"))

	_, err = svc.Register(ctx, identity.RegisterInput{
		FullName: "   ", Email: "u@test.com", Password: "pass123", UserType: models.UserTypeFoodie,
	})
	assert.True(t, httperr.IsBusiness(err, "missing_name"))

	_, err = svc.Register(ctx, identity.RegisterInput{
		FullName: "U", Email: "not-an-email", Password: "pass123", UserType: models.UserTypeFoodie,
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_email"))

	_, err = svc.Register(ctx, identity.RegisterInput{
		FullName: "U", Email: "u@test.com", Password: "pass123", UserType: "admin",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_user_type"))
}

// Concurrent registrations for one address must not all pass the
// duplicate check: exactly one record may win.
func TestRegister_ConcurrentSameEmail(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	const attempts = 16
	errs := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(ctx, identity.RegisterInput{
				FullName: "Test User",
				Email:    "dup@test.com",
				Password: "pass123",
				UserType: models.UserTypeFoodie,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var won, lost int
	for err := range errs {
		if err == nil {
			won++
		} else {
			assert.True(t, httperr.IsBusiness(err, "duplicate_email"))
			lost++
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, attempts-1, lost)

	users, err := svc.RegisteredUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestLogin(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	register(t, svc, "foodie@test.com")

	_, err := svc.Login(ctx, "nobody@test.com", "pass123")
	assert.True(t, httperr.IsBusiness(err, "unknown_email"))

	_, err = svc.Login(ctx, "foodie@test.com", "wrongpass")
	assert.True(t, httperr.IsBusiness(err, "wrong_password"))
	assert.Nil(t, svc.CurrentSession(ctx), "failed login must not create a session")

	u, err := svc.Login(ctx, "Foodie@Test.com", "pass123")
	require.NoError(t, err)
	assert.Empty(t, u.PasswordHash)

	sess := svc.CurrentSession(ctx)
	require.NotNil(t, sess)
	assert.Equal(t, u.ID, sess.ID)
	assert.Empty(t, sess.PasswordHash)
}

func TestLogout_ClearsSessionOnly(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	register(t, svc, "foodie@test.com")

	_, err := svc.Login(ctx, "foodie@test.com", "pass123")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	assert.Nil(t, svc.CurrentSession(ctx))

	// The user record survives; logging in again works.
	_, err = svc.Login(ctx, "foodie@test.com", "pass123")
	assert.NoError(t, err)
}

func TestUpdateProfile_MergesAndRefreshesSession(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	u := register(t, svc, "foodie@test.com")

	_, err := svc.Login(ctx, "foodie@test.com", "pass123")
	require.NoError(t, err)

	phone := "+34 600 000 000"
	bio := "loves tapas"
	updated, err := svc.UpdateProfile(ctx, u.ID, identity.ProfileUpdate{
		Phone: &phone,
		Bio:   &bio,
	})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, bio, updated.Bio)
	assert.Equal(t, "Test User", updated.FullName, "untouched fields keep their value")
	require.NotNil(t, updated.UpdatedAt)

	sess := svc.CurrentSession(ctx)
	require.NotNil(t, sess)
	assert.Equal(t, phone, sess.Phone)
}

func TestUpdateProfile_RejectsBlankName(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	u := register(t, svc, "foodie@test.com")

	blank := "   "
	_, err := svc.UpdateProfile(ctx, u.ID, identity.ProfileUpdate{FullName: &blank})
	assert.True(t, httperr.IsBusiness(err, "missing_name"))

	// The stored name is untouched.
	got, err := svc.UserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test User", got.FullName)
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	svc := newService()
	_, err := svc.UpdateProfile(context.Background(), "missing", identity.ProfileUpdate{})
	assert.True(t, httperr.IsBusiness(err, "user_not_found"))
}

func TestChangePassword(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	u := register(t, svc, "foodie@test.com")

	err := svc.ChangePassword(ctx, u.ID, "nope", "newpass123")
	assert.True(t, httperr.IsBusiness(err, "wrong_current_password"))

	err = svc.ChangePassword(ctx, u.ID, "pass123", "tiny")
	assert.True(t, httperr.IsBusiness(err, "weak_password"))

	require.NoError(t, svc.ChangePassword(ctx, u.ID, "pass123", "newpass123"))

	_, err = svc.Login(ctx, "foodie@test.com", "pass123")
	assert.True(t, httperr.IsBusiness(err, "wrong_password"))
	_, err = svc.Login(ctx, "foodie@test.com", "newpass123")
	assert.NoError(t, err)
}

func TestRegisteredUsers_AreRedacted(t *testing.T) {
	svc := newService()
	register(t, svc, "a@test.com")
	register(t, svc, "b@test.com")

	users, err := svc.RegisteredUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.PasswordHash)
	}
}
