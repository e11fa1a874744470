package toast

import "github.com/dmitrymomot/enroll/pkg/session"

// Push queues a toast in the session. The caller saves the session.
func Push(sess *session.Session, kind Kind, message string) error {
	t, err := New(kind, message)
	if err != nil {
		return err
	}

	pending, err := Peek(sess)
	if err != nil {
		return err
	}
	pending = append(pending, t)
	if len(pending) > MaxPending {
		pending = pending[len(pending)-MaxPending:]
	}
	return sess.Put(SessionKey, pending)
}

// Peek returns pending toasts without removing them.
func Peek(sess *session.Session) ([]Toast, error) {
	var pending []Toast
	if _, err := sess.Decode(SessionKey, &pending); err != nil {
		return nil, err
	}
	return pending, nil
}

// Pop returns pending toasts and removes them from the session.
func Pop(sess *session.Session) ([]Toast, error) {
	pending, err := Peek(sess)
	if err != nil {
		// drop undecodable leftovers so they do not block future toasts
		sess.Delete(SessionKey)
		return nil, err
	}
	sess.Delete(SessionKey)
	return pending, nil
}

func PushSuccess(sess *session.Session, message string) error {
	return Push(sess, Success, message)
}

func PushError(sess *session.Session, message string) error {
	return Push(sess, Error, message)
}

func PushWarning(sess *session.Session, message string) error {
	return Push(sess, Warning, message)
}

func PushInfo(sess *session.Session, message string) error {
	return Push(sess, Info, message)
}
