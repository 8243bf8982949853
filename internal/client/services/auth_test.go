package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/useraccounts/internal/client/client"
	"github.com/dmitrijs2005/useraccounts/internal/client/models"
	"github.com/dmitrijs2005/useraccounts/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/useraccounts/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupMeta(t *testing.T) (*metadata.SQLiteRepository, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, client.RunMigrations(context.Background(), db))
	return metadata.NewSQLiteRepository(db), db
}

// ---- fake client ----

type fakeClient struct {
	token string

	issueToken string
	account    *models.Account

	registerErr error
	loginErr    error
	logoutErr   error
	whoAmIErr   error

	lastEmail    string
	lastPassword string
}

func (f *fakeClient) Register(ctx context.Context, req models.RegisterRequest) (*models.Account, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	f.token = f.issueToken
	return f.account, nil
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.Account, error) {
	f.lastEmail, f.lastPassword = email, password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.token = f.issueToken
	return f.account, nil
}

func (f *fakeClient) Logout(ctx context.Context) error {
	if f.logoutErr == nil {
		f.token = ""
	}
	return f.logoutErr
}

func (f *fakeClient) WhoAmI(ctx context.Context) (*models.Account, error) {
	if f.whoAmIErr != nil {
		return nil, f.whoAmIErr
	}
	return f.account, nil
}

func (f *fakeClient) Ping(ctx context.Context) error { return nil }
func (f *fakeClient) Token() string                  { return f.token }
func (f *fakeClient) SetToken(token string)          { f.token = token }

var jane = &models.Account{FirstName: "Jane", LastName: "Doe", Email: "jane@test.com"}

func TestLogin_PersistsToken(t *testing.T) {
	ctx := context.Background()
	meta, _ := setupMeta(t)
	fc := &fakeClient{issueToken: "tok-1", account: jane}
	s := NewAuthService(fc, meta)

	acc, err := s.Login(ctx, "jane@test.com", []byte("Abcdefg1"))
	require.NoError(t, err)
	assert.Equal(t, jane, acc)
	assert.Equal(t, "Abcdefg1", fc.lastPassword)
	assert.True(t, s.HasSession())

	saved, err := meta.Get(ctx, tokenKey)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", saved)
}

func TestRegister_PersistsToken(t *testing.T) {
	ctx := context.Background()
	meta, _ := setupMeta(t)
	s := NewAuthService(&fakeClient{issueToken: "tok-r", account: jane}, meta)

	_, err := s.Register(ctx, models.RegisterRequest{Email: "jane@test.com"})
	require.NoError(t, err)

	saved, err := meta.Get(ctx, tokenKey)
	require.NoError(t, err)
	assert.Equal(t, "tok-r", saved)
}

func TestLogin_ErrorKeepsNothing(t *testing.T) {
	ctx := context.Background()
	meta, _ := setupMeta(t)
	s := NewAuthService(&fakeClient{loginErr: client.ErrRejected}, meta)

	_, err := s.Login(ctx, "jane@test.com", []byte("x"))
	require.ErrorIs(t, err, client.ErrRejected)

	_, err = meta.Get(ctx, tokenKey)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestLogin_NoTokenIssued(t *testing.T) {
	meta, _ := setupMeta(t)
	s := NewAuthService(&fakeClient{account: jane}, meta)

	_, err := s.Login(context.Background(), "jane@test.com", []byte("x"))
	assert.Error(t, err)
}

func TestRestore(t *testing.T) {
	ctx := context.Background()
	meta, _ := setupMeta(t)
	fc := &fakeClient{}
	s := NewAuthService(fc, meta)

	require.NoError(t, s.Restore(ctx))
	assert.False(t, s.HasSession())

	require.NoError(t, meta.Set(ctx, tokenKey, "saved"))
	require.NoError(t, s.Restore(ctx))
	assert.Equal(t, "saved", fc.token)
}

func TestRestore_DBError(t *testing.T) {
	meta, db := setupMeta(t)
	require.NoError(t, db.Close())

	s := NewAuthService(&fakeClient{}, meta)
	assert.Error(t, s.Restore(context.Background()))
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("success clears token", func(t *testing.T) {
		meta, _ := setupMeta(t)
		fc := &fakeClient{token: "t"}
		require.NoError(t, meta.Set(ctx, tokenKey, "t"))

		require.NoError(t, NewAuthService(fc, meta).Logout(ctx))
		assert.Empty(t, fc.token)
		_, err := meta.Get(ctx, tokenKey)
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("rejected token is still forgotten", func(t *testing.T) {
		meta, _ := setupMeta(t)
		fc := &fakeClient{token: "t", logoutErr: client.ErrUnauthorized}
		require.NoError(t, meta.Set(ctx, tokenKey, "t"))

		err := NewAuthService(fc, meta).Logout(ctx)
		require.ErrorIs(t, err, client.ErrUnauthorized)
		assert.Empty(t, fc.token)
		_, err = meta.Get(ctx, tokenKey)
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("unreachable server keeps token", func(t *testing.T) {
		meta, _ := setupMeta(t)
		fc := &fakeClient{token: "t", logoutErr: client.ErrUnavailable}
		require.NoError(t, meta.Set(ctx, tokenKey, "t"))

		err := NewAuthService(fc, meta).Logout(ctx)
		require.ErrorIs(t, err, client.ErrUnavailable)
		assert.Equal(t, "t", fc.token)
		v, err := meta.Get(ctx, tokenKey)
		require.NoError(t, err)
		assert.Equal(t, "t", v)
	})
}

func TestWhoAmI(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		meta, _ := setupMeta(t)
		acc, err := NewAuthService(&fakeClient{token: "t", account: jane}, meta).WhoAmI(ctx)
		require.NoError(t, err)
		assert.Equal(t, jane, acc)
	})

	t.Run("rejected token is dropped", func(t *testing.T) {
		meta, _ := setupMeta(t)
		require.NoError(t, meta.Set(ctx, tokenKey, "t"))
		fc := &fakeClient{token: "t", whoAmIErr: client.ErrUnauthorized}

		_, err := NewAuthService(fc, meta).WhoAmI(ctx)
		require.ErrorIs(t, err, client.ErrUnauthorized)
		assert.Empty(t, fc.token)
		_, err = meta.Get(ctx, tokenKey)
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("server error keeps token", func(t *testing.T) {
		meta, _ := setupMeta(t)
		require.NoError(t, meta.Set(ctx, tokenKey, "t"))
		fc := &fakeClient{token: "t", whoAmIErr: client.ErrServer}

		_, err := NewAuthService(fc, meta).WhoAmI(ctx)
		require.ErrorIs(t, err, client.ErrServer)
		assert.Equal(t, "t", fc.token)
	})
}
