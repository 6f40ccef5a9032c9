package session

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/book-swap/internal/model"
    "github.com/iliyamo/book-swap/internal/store"
)

// newTestSession builds a session over a fresh file store with no
// artificial login delay.
func newTestSession(t *testing.T) (*Session, store.Store) {
    t.Helper()
    st, err := store.NewFileStore(t.TempDir())
    require.NoError(t, err)
    return New(context.Background(), st, nil, 0, time.Second), st
}

func TestNewBootsLoggedInAsDemoUser(t *testing.T) {
    s, st := newTestSession(t)

    cur := s.Current()
    require.NotNil(t, cur)
    assert.Equal(t, model.DemoUserID, cur.ID)
    assert.Equal(t, "currentuser", cur.Username)

    // the seeded identity is persisted immediately
    var u model.User
    require.NoError(t, st.Load(context.Background(), store.SlotCurrentUser, &u))
    assert.Equal(t, model.DemoUserID, u.ID)
}

func TestNewRestoresPersistedIdentity(t *testing.T) {
    st, err := store.NewFileStore(t.TempDir())
    require.NoError(t, err)
    ctx := context.Background()

    saved := model.User{ID: "user9", Username: "someoneelse", Email: "x@example.com"}
    require.NoError(t, st.Save(ctx, store.SlotCurrentUser, saved))

    s := New(ctx, st, nil, 0, time.Second)
    cur := s.Current()
    require.NotNil(t, cur)
    assert.Equal(t, "user9", cur.ID)
}

func TestLoginRejectsEmptyCredentials(t *testing.T) {
    s, _ := newTestSession(t)
    s.Logout(context.Background())

    _, err := s.Login(context.Background(), "", "secret")
    assert.ErrorIs(t, err, ErrInvalidCredentials)
    _, err = s.Login(context.Background(), "me@example.com", "")
    assert.ErrorIs(t, err, ErrInvalidCredentials)

    // failed login leaves the session anonymous
    assert.Nil(t, s.Current())
}

func TestLoginYieldsDemoIdentity(t *testing.T) {
    s, _ := newTestSession(t)
    s.Logout(context.Background())

    u, err := s.Login(context.Background(), "anything@example.com", "whatever")
    require.NoError(t, err)
    assert.Equal(t, model.DemoUserID, u.ID)

    cur := s.Current()
    require.NotNil(t, cur)
    assert.Equal(t, model.DemoUserID, cur.ID)
}

func TestLoginTimesOutWithoutStateChange(t *testing.T) {
    st, err := store.NewFileStore(t.TempDir())
    require.NoError(t, err)
    ctx := context.Background()

    // delay longer than the timeout forces the round trip to fail closed
    s := New(ctx, st, nil, 200*time.Millisecond, 10*time.Millisecond)
    s.Logout(ctx)

    _, err = s.Login(ctx, "me@example.com", "secret")
    assert.ErrorIs(t, err, ErrTimedOut)
    assert.Nil(t, s.Current())
}

func TestLoginHonorsCallerContext(t *testing.T) {
    st, err := store.NewFileStore(t.TempDir())
    require.NoError(t, err)

    s := New(context.Background(), st, nil, 200*time.Millisecond, time.Second)
    s.Logout(context.Background())

    ctx, cancel := context.WithCancel(context.Background())
    cancel()
    _, err = s.Login(ctx, "me@example.com", "secret")
    assert.ErrorIs(t, err, ErrTimedOut)
}

func TestRegisterRequiresAllFields(t *testing.T) {
    s, _ := newTestSession(t)
    s.Logout(context.Background())

    for _, tc := range []struct{ username, email, password string }{
        {"", "a@example.com", "pw"},
        {"newuser", "", "pw"},
        {"newuser", "a@example.com", ""},
    } {
        _, err := s.Register(context.Background(), tc.username, tc.email, tc.password)
        assert.ErrorIs(t, err, ErrValidation)
    }
    assert.Nil(t, s.Current())
}

func TestRegisterCreatesFreshIdentity(t *testing.T) {
    s, st := newTestSession(t)

    u, err := s.Register(context.Background(), "NewReader", "Reader@Example.COM", "pw")
    require.NoError(t, err)
    assert.NotEmpty(t, u.ID)
    assert.NotEqual(t, model.DemoUserID, u.ID)
    assert.Equal(t, "NewReader", u.Username)
    assert.Equal(t, "reader@example.com", u.Email)
    assert.NotEmpty(t, u.AvatarURL)

    // registration both logs in and persists
    cur := s.Current()
    require.NotNil(t, cur)
    assert.Equal(t, u.ID, cur.ID)

    var persisted model.User
    require.NoError(t, st.Load(context.Background(), store.SlotCurrentUser, &persisted))
    assert.Equal(t, u.ID, persisted.ID)
}

func TestLogoutClearsIdentityAndSlot(t *testing.T) {
    s, st := newTestSession(t)
    require.NotNil(t, s.Current())

    s.Logout(context.Background())
    assert.Nil(t, s.Current())

    var u model.User
    assert.ErrorIs(t, st.Load(context.Background(), store.SlotCurrentUser, &u), store.ErrNotFound)

    // logging out while anonymous is harmless
    s.Logout(context.Background())
    assert.Nil(t, s.Current())
}

func TestCurrentReturnsCopy(t *testing.T) {
    s, _ := newTestSession(t)

    a := s.Current()
    require.NotNil(t, a)
    a.Username = "mutated"

    b := s.Current()
    require.NotNil(t, b)
    assert.Equal(t, "currentuser", b.Username)
}
