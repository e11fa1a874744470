package course

import (
	"slices"

	"github.com/dmitrymomot/enroll/pkg/session"
)

// SessionKeyEnrolled holds the ids of courses enrolled from this session.
const SessionKeyEnrolled = "enrolled_courses"

// EnrolledSet is the set of course ids the user enrolled in.
type EnrolledSet map[int64]struct{}

func (s EnrolledSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the ids in ascending order.
func (s EnrolledSet) IDs() []int64 {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Enrolled reads the enrolled set from sess. Undecodable data counts as
// empty.
func Enrolled(sess *session.Session) EnrolledSet {
	var ids []int64
	if _, err := sess.Decode(SessionKeyEnrolled, &ids); err != nil {
		return EnrolledSet{}
	}
	set := make(EnrolledSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// MarkEnrolled adds ids to the enrolled set. The caller saves the session.
func MarkEnrolled(sess *session.Session, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}
	set := Enrolled(sess)
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return sess.Put(SessionKeyEnrolled, set.IDs())
}

// ForgetEnrolled clears the enrolled set, e.g. on logout.
func ForgetEnrolled(sess *session.Session) {
	sess.Delete(SessionKeyEnrolled)
}
