package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/dmitrijs2005/useraccounts/internal/client/client"
	"github.com/dmitrijs2005/useraccounts/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubInputs(t *testing.T, answers []string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		i++
		return answers[i-1], nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeAuth struct {
	session bool

	regReq  models.RegisterRequest
	regErr  error
	logUser string
	logPass []byte
	logErr  error
	whoErr  error
	outErr  error

	account *models.Account
}

func (f *fakeAuth) Restore(context.Context) error { return nil }
func (f *fakeAuth) HasSession() bool              { return f.session }

func (f *fakeAuth) Register(_ context.Context, req models.RegisterRequest) (*models.Account, error) {
	f.regReq = req
	if f.regErr != nil {
		return nil, f.regErr
	}
	f.session = true
	return f.account, nil
}

func (f *fakeAuth) Login(_ context.Context, email string, password []byte) (*models.Account, error) {
	f.logUser, f.logPass = email, append([]byte(nil), password...)
	if f.logErr != nil {
		return nil, f.logErr
	}
	f.session = true
	return f.account, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	if f.outErr != client.ErrUnavailable {
		f.session = false
	}
	return f.outErr
}

func (f *fakeAuth) WhoAmI(context.Context) (*models.Account, error) {
	if f.whoErr != nil {
		return nil, f.whoErr
	}
	return f.account, nil
}

var jane = &models.Account{FirstName: "Jane", LastName: "Doe", Email: "jane@test.com"}

func newTestApp(f *fakeAuth) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{authService: f, out: &out}, &out
}

func TestRegister_Success(t *testing.T) {
	f := &fakeAuth{account: jane}
	a, out := newTestApp(f)
	pw := []byte("Abcdefg1")
	stubInputs(t, []string{"Jane", "Doe", "Jane@Test.com"}, pw)

	require.NoError(t, a.Register(context.Background()))

	assert.Equal(t, models.RegisterRequest{FirstName: "Jane", LastName: "Doe", Email: "Jane@Test.com", Password: "Abcdefg1"}, f.regReq)
	assert.Equal(t, make([]byte, len(pw)), pw, "password must be wiped")
	assert.Equal(t, jane, a.account)
	assert.Contains(t, out.String(), "Registered Jane Doe <jane@test.com>")
	assert.Equal(t, "(jane@test.com)", a.getStatus())
}

func TestRegister_Rejected(t *testing.T) {
	f := &fakeAuth{regErr: &client.APIError{Status: 400, Message: "email already exists"}}
	a, out := newTestApp(f)
	stubInputs(t, []string{"Jane", "Doe", "jane@test.com"}, []byte("Abcdefg1"))

	require.Error(t, a.Register(context.Background()))
	assert.Contains(t, out.String(), "Registration failed: email already exists")
	assert.Nil(t, a.account)
}

func TestRegister_InputError(t *testing.T) {
	a, _ := newTestApp(&fakeAuth{})
	stubInputs(t, []string{"Jane"}, nil)

	assert.ErrorIs(t, a.Register(context.Background()), io.EOF)
}

func TestLogin(t *testing.T) {
	f := &fakeAuth{account: jane}
	a, out := newTestApp(f)
	stubInputs(t, []string{"jane@test.com"}, []byte("Abcdefg1"))

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, "jane@test.com", f.logUser)
	assert.Equal(t, []byte("Abcdefg1"), f.logPass)
	assert.Contains(t, out.String(), "Welcome back, Jane!")
	assert.True(t, a.isLoggedIn())
}

func TestLogin_Unavailable(t *testing.T) {
	f := &fakeAuth{logErr: fmt.Errorf("%w: dial tcp", client.ErrUnavailable)}
	a, out := newTestApp(f)
	stubInputs(t, []string{"jane@test.com"}, []byte("Abcdefg1"))

	require.Error(t, a.Login(context.Background()))
	assert.Contains(t, out.String(), "Login failed: server unavailable")
	assert.False(t, a.isLoggedIn())
}

func TestWhoAmI(t *testing.T) {
	f := &fakeAuth{session: true, account: jane}
	a, out := newTestApp(f)

	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "Jane Doe <jane@test.com>")

	f.whoErr = client.ErrNoSession
	require.Error(t, a.WhoAmI(context.Background()))
	assert.Nil(t, a.account)
	assert.Contains(t, out.String(), "Not logged in")
}

func TestLogout(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		f := &fakeAuth{session: true}
		a, out := newTestApp(f)
		a.account = jane

		require.NoError(t, a.Logout(context.Background()))
		assert.Nil(t, a.account)
		assert.Contains(t, out.String(), "Logged out")
		assert.Equal(t, "", a.getStatus())
	})

	t.Run("server unreachable keeps state", func(t *testing.T) {
		f := &fakeAuth{session: true, outErr: client.ErrUnavailable}
		a, _ := newTestApp(f)
		a.account = jane

		require.Error(t, a.Logout(context.Background()))
		assert.Equal(t, jane, a.account)
	})

	t.Run("stale session", func(t *testing.T) {
		f := &fakeAuth{session: true, outErr: client.ErrUnauthorized}
		a, out := newTestApp(f)

		require.Error(t, a.Logout(context.Background()))
		assert.Contains(t, out.String(), "Session was already closed")
	})
}
