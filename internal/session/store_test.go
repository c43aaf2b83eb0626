package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"courier-agent/internal/domain"
	"courier-agent/internal/logx"
	"courier-agent/internal/session"
)

type fakeKV struct {
	data map[string][]byte
}

func newFakeKV() *fakeKV { return &fakeKV{data: map[string][]byte{}} }

func (f *fakeKV) Get(key string) ([]byte, error) {
	v, ok := f.data[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (f *fakeKV) Set(key string, value []byte) error {
	f.data[key] = append([]byte(nil), value...)
	return nil
}

func (f *fakeKV) Remove(key string) error {
	delete(f.data, key)
	return nil
}

type fakeLoginAPI struct {
	courier *domain.Courier
	token   string
	err     error
	calls   int
}

func (f *fakeLoginAPI) Login(_ context.Context, _ string) (*domain.Courier, string, error) {
	f.calls++
	if f.err != nil {
		return nil, "", f.err
	}
	cp := *f.courier
	return &cp, f.token, nil
}

func courier7() *domain.Courier {
	return &domain.Courier{ID: 7, EmployeeCode: "1044", FirstName: "Khamla", LastName: "Vong"}
}

func TestLogin_SetsAuthenticatedState(t *testing.T) {
	t.Parallel()

	kv := newFakeKV()
	api := &fakeLoginAPI{courier: courier7()}
	s := session.NewStore(api, kv, logx.Nop())

	c, err := s.Login(context.Background(), "1044")
	require.NoError(t, err)
	require.Equal(t, int64(7), c.ID)

	snap := s.Current()
	require.True(t, snap.Authenticated)
	require.Equal(t, int64(7), snap.Courier.ID)
	require.Equal(t, "dummy_token_1044", snap.Token)
	require.Equal(t, "dummy_token_1044", s.Token())
	require.Equal(t, int64(7), s.CourierID())

	// durable copy written
	require.Equal(t, []byte("dummy_token_1044"), kv.data["auth_token"])
	require.Equal(t, []byte("true"), kv.data["is_authenticated"])
	require.NotEmpty(t, kv.data["current_employee"])
}

func TestLogin_ServerTokenPreferred(t *testing.T) {
	t.Parallel()

	api := &fakeLoginAPI{courier: courier7(), token: "real-token"}
	s := session.NewStore(api, newFakeKV(), logx.Nop())

	_, err := s.Login(context.Background(), "1044")
	require.NoError(t, err)
	require.Equal(t, "real-token", s.Token())
}

func TestLogin_FailureLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	kv := newFakeKV()
	api := &fakeLoginAPI{err: errors.New("employee not found")}
	s := session.NewStore(api, kv, logx.Nop())

	_, err := s.Login(context.Background(), "9999")
	require.Error(t, err)

	require.False(t, s.IsAuthenticated())
	require.Empty(t, s.Token())
	require.Empty(t, kv.data)
}

func TestLogout_Idempotent(t *testing.T) {
	t.Parallel()

	kv := newFakeKV()
	api := &fakeLoginAPI{courier: courier7()}
	s := session.NewStore(api, kv, logx.Nop())

	_, err := s.Login(context.Background(), "1044")
	require.NoError(t, err)

	s.Logout()
	first := s.Current()

	s.Logout()
	second := s.Current()

	require.Equal(t, first, second)
	require.False(t, second.Authenticated)
	require.Nil(t, second.Courier)
	require.Empty(t, second.Token)
	require.Empty(t, kv.data)
}

func TestRestore_RoundTrip(t *testing.T) {
	t.Parallel()

	kv := newFakeKV()
	api := &fakeLoginAPI{courier: courier7()}

	s1 := session.NewStore(api, kv, logx.Nop())
	_, err := s1.Login(context.Background(), "1044")
	require.NoError(t, err)

	s2 := session.NewStore(api, kv, logx.Nop())
	s2.Restore()

	snap := s2.Current()
	require.True(t, snap.Authenticated)
	require.Equal(t, int64(7), snap.Courier.ID)
	require.Equal(t, "Khamla Vong", snap.Courier.FullName())
	require.Equal(t, "dummy_token_1044", snap.Token)
}

func TestRestore_EmptyStoreStaysUnauthenticated(t *testing.T) {
	t.Parallel()

	s := session.NewStore(&fakeLoginAPI{}, newFakeKV(), logx.Nop())
	s.Restore()

	require.False(t, s.IsAuthenticated())
}

func TestRestore_CorruptProfileStaysUnauthenticated(t *testing.T) {
	t.Parallel()

	kv := newFakeKV()
	require.NoError(t, kv.Set("auth_token", []byte("tok")))
	require.NoError(t, kv.Set("is_authenticated", []byte("true")))
	require.NoError(t, kv.Set("current_employee", []byte("{not json")))

	s := session.NewStore(&fakeLoginAPI{}, kv, logx.Nop())
	s.Restore()

	require.False(t, s.IsAuthenticated())
}

func TestRestore_ExpiredJWTStaysUnauthenticated(t *testing.T) {
	t.Parallel()

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1044",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	kv := newFakeKV()
	profile := []byte(`{"ID":7,"EmployeeCode":"1044"}`)
	require.NoError(t, kv.Set("auth_token", []byte(signed)))
	require.NoError(t, kv.Set("is_authenticated", []byte("true")))
	require.NoError(t, kv.Set("current_employee", profile))

	s := session.NewStore(&fakeLoginAPI{}, kv, logx.Nop())
	s.Restore()

	require.False(t, s.IsAuthenticated())
	// persisted copy cleared so the next start is clean
	require.Empty(t, kv.data)
}

func TestRestore_OpaqueTokenNeverExpires(t *testing.T) {
	t.Parallel()

	kv := newFakeKV()
	require.NoError(t, kv.Set("auth_token", []byte("dummy_token_1044")))
	require.NoError(t, kv.Set("is_authenticated", []byte("true")))
	require.NoError(t, kv.Set("current_employee", []byte(`{"ID":7}`)))

	s := session.NewStore(&fakeLoginAPI{}, kv, logx.Nop())
	s.Restore()

	require.True(t, s.IsAuthenticated())
}
