package course_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/enroll/modules/course"
	"github.com/dmitrymomot/enroll/pkg/apiclient"
	"github.com/dmitrymomot/enroll/pkg/validator"
)

func newAPI(t *testing.T, h http.HandlerFunc) *course.API {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := apiclient.New(srv.URL + "/api")
	require.NoError(t, err)
	return course.NewAPI(c)
}

func TestAPI_List(t *testing.T) {
	t.Parallel()

	api := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/courses", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "20", r.URL.Query().Get("size"))
		assert.Equal(t, "recent", r.URL.Query().Get("sort"))
		_, _ = io.WriteString(w, `{"content":[{"id":1,"title":"기초반","price":10000,"isFull":true}],
			"pageable":{"pageNumber":1,"pageSize":20},"totalElements":21,"totalPages":2,"first":false,"last":true}`)
	})

	page, err := api.List(context.Background(), course.ListParams{Page: 1, Sort: "bogus"})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.True(t, page.Content[0].IsFull)
	assert.EqualValues(t, 10000, page.Content[0].Price)
	_, more := page.NextPage()
	assert.False(t, more)
}

func TestAPI_EnrollSendsToken(t *testing.T) {
	t.Parallel()

	api := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/courses/5/enroll", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"enrollmentId":9,"courseId":5,"message":"신청 완료"}`)
	})

	ctx := apiclient.WithToken(context.Background(), "tok")
	e, err := api.Enroll(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "신청 완료", e.Message)
}

func TestAPI_BatchEnroll(t *testing.T) {
	t.Parallel()

	api := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"courseIds":[1,2]}`, string(body))
		_, _ = io.WriteString(w, `{"success":[{"enrollmentId":1,"courseId":1,"courseTitle":"A"}],
			"failed":[{"courseId":2,"reason":"정원이 마감되었습니다."}]}`)
	})

	ctx := apiclient.WithToken(context.Background(), "tok")
	res, err := api.BatchEnroll(ctx, []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, course.OutcomePartial, res.Outcome())

	_, err = api.BatchEnroll(ctx, nil)
	assert.ErrorIs(t, err, course.ErrNoCourses)
}

func TestAPI_CreateValidatesFirst(t *testing.T) {
	t.Parallel()

	api := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not be sent")
	})

	_, err := api.Create(context.Background(), course.CreateRequest{Title: " ", InstructorName: "김강사", MaxStudents: 0})
	errs := validator.ExtractValidationErrors(err)
	assert.True(t, errs.Has("title"))
	assert.True(t, errs.Has("maxStudents"))
	assert.False(t, errs.Has("price"))
}
