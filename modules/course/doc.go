// Package course implements the course list, course details, enrollment
// and course creation.
//
// API wraps the REST endpoints. The course form is built on pkg/form with
// ValidateCourse and is shared by the web service and the terminal client.
// Courses enrolled from a session are remembered in the session as an
// EnrolledSet, which ForgetEnrolled clears on logout.
//
// Batch enrollment reports per-course failures inside BatchResult. Notices
// turns a result into the messages shown to the user:
//
//	res, err := api.BatchEnroll(ctx, []int64{1, 2, 3})
//	if err != nil {
//		return err
//	}
//	for _, n := range res.Notices() {
//		toast.Push(sess, n.Kind, n.Message)
//	}
package course
