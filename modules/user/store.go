package user

import (
	"github.com/dmitrymomot/enroll/pkg/session"
)

// Session keys owned by this package.
const (
	SessionKeyUser  = "user"
	SessionKeyToken = "access_token"
)

// Store remembers u and its API access token in sess. The caller saves
// the session.
func Store(sess *session.Session, u *User, token string) error {
	if err := sess.Put(SessionKeyUser, u); err != nil {
		return err
	}
	sess.Set(SessionKeyToken, token)
	id := u.ID
	sess.UserID = &id
	return nil
}

// Load returns the user and token kept in sess. A session holding a user
// without a token, or an undecodable user, counts as signed out.
func Load(sess *session.Session) (*User, string, bool) {
	token, ok := sess.GetString(SessionKeyToken)
	if !ok || token == "" {
		return nil, "", false
	}
	var u User
	found, err := sess.Decode(SessionKeyUser, &u)
	if err != nil || !found {
		return nil, "", false
	}
	return &u, token, true
}

// Forget removes the user and token from sess.
func Forget(sess *session.Session) {
	sess.Delete(SessionKeyUser)
	sess.Delete(SessionKeyToken)
	sess.UserID = nil
}
