package woocommerce

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginPersistsUserID(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"user_id":314,"username":"ada"}`))
	}))

	ctx := context.Background()
	res, err := c.Login(ctx, "ada", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "/wp-json/wcgo/v1/auth/login", gotPath)
	assert.Equal(t, "ada", gotBody["username"])
	assert.Equal(t, "s3cret", gotBody["password"])
	assert.Equal(t, int64(314), *res.UserID)

	id, err := c.CurrentUserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(314), id)
}

func TestRegisterPersistsUserID(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wcgo/v1/auth/register", r.URL.Path)
		w.Write([]byte(`{"user_id":99}`))
	}))

	ctx := context.Background()
	_, err := c.Register(ctx, RegisterParams{Username: "ada", Email: "ada@example.com", Password: "pw"})
	require.NoError(t, err)

	id, err := c.CurrentUserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(99), id)
}

func TestLogoutClearsUserID(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user_id":7}`))
	}))

	ctx := context.Background()
	_, err := c.Login(ctx, "u", "p")
	require.NoError(t, err)

	require.NoError(t, c.Logout(ctx))
	_, err = c.CurrentUserID(ctx)
	assert.ErrorIs(t, err, ErrNoAuthenticatedUser)
}

func TestChangePasswordRequiresLogin(t *testing.T) {
	var hit bool
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))

	err := c.ChangePassword(context.Background(), "old", "new")
	assert.ErrorIs(t, err, ErrNoAuthenticatedUser)
	assert.False(t, hit)
}

func TestChangePasswordSendsStoredUserID(t *testing.T) {
	var bodies []map[string]any
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		bodies = append(bodies, body)
		w.Write([]byte(`{"user_id":21}`))
	}))

	ctx := context.Background()
	_, err := c.Login(ctx, "u", "p")
	require.NoError(t, err)

	require.NoError(t, c.ChangePassword(ctx, "old", "new"))
	require.Len(t, bodies, 2)
	assert.Equal(t, float64(21), bodies[1]["user_id"])
	assert.Equal(t, "old", bodies[1]["current_password"])
	assert.Equal(t, "new", bodies[1]["new_password"])
}

func TestForgotPasswordSendsEmail(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, c.ForgotPassword(context.Background(), "ada@example.com"))
	assert.Equal(t, "/wp-json/wcgo/v1/auth/forgot-password", gotPath)
	assert.Equal(t, "ada@example.com", gotBody["email"])
}

func TestFakeLoginStillPersistsUserID(t *testing.T) {
	c, err := NewClient("https://shop.example.com", "ck", "cs",
		WithDebug(false),
		WithFakerDefault(true),
		WithHTTPClient(&http.Client{Transport: errTransport{}}),
	)
	require.NoError(t, err)

	ctx := context.Background()
	res, err := c.Login(ctx, "ada", "pw")
	require.NoError(t, err)
	assert.Equal(t, "ada", *res.Username)

	id, err := c.CurrentUserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, *res.UserID, id)
}

func TestAuthPathSuffixOverride(t *testing.T) {
	var gotPath string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"user_id":1}`))
	}), WithAuthPathSuffix("/wp-json/custom-auth/v2"))

	_, err := c.Login(context.Background(), "u", "p")
	require.NoError(t, err)
	assert.Equal(t, "/wp-json/custom-auth/v2/login", gotPath)
}
