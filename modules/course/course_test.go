package course_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/enroll/modules/course"
	"github.com/dmitrymomot/enroll/pkg/toast"
)

func TestParseSort(t *testing.T) {
	t.Parallel()

	assert.Equal(t, course.SortPopular, course.ParseSort("popular"))
	assert.Equal(t, course.SortRate, course.ParseSort("rate"))
	assert.Equal(t, course.SortRecent, course.ParseSort(""))
	assert.Equal(t, course.SortRecent, course.ParseSort("price"))
	assert.Equal(t, "신청률 높은 순", course.SortRate.Label())
}

func TestPage_NextPage(t *testing.T) {
	t.Parallel()

	p := &course.Page{Pageable: course.Pageable{PageNumber: 2, PageSize: 20}}
	next, ok := p.NextPage()
	assert.True(t, ok)
	assert.Equal(t, 3, next)

	p.Last = true
	_, ok = p.NextPage()
	assert.False(t, ok)

	var none *course.Page
	_, ok = none.NextPage()
	assert.False(t, ok)
}

func TestBatchResult_Notices(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		result  course.BatchResult
		outcome course.Outcome
		want    []course.Notice
	}{
		{
			name: "all succeeded",
			result: course.BatchResult{Success: []course.BatchSuccess{
				{CourseID: 1}, {CourseID: 2},
			}},
			outcome: course.OutcomeAllSucceeded,
			want:    []course.Notice{{Kind: toast.Success, Message: "2개 강의 수강신청이 완료되었습니다!"}},
		},
		{
			name: "all failed",
			result: course.BatchResult{Failed: []course.BatchFailure{
				{CourseID: 1, Reason: "정원이 마감되었습니다."},
				{CourseID: 2, Reason: "이미 신청한 강의입니다."},
			}},
			outcome: course.OutcomeAllFailed,
			want: []course.Notice{
				{Kind: toast.Error, Message: course.MsgBatchFailed},
				{Kind: toast.Error, Message: "정원이 마감되었습니다."},
				{Kind: toast.Error, Message: "이미 신청한 강의입니다."},
			},
		},
		{
			name: "partial",
			result: course.BatchResult{
				Success: []course.BatchSuccess{{CourseID: 1}, {CourseID: 3}},
				Failed:  []course.BatchFailure{{CourseID: 2, Reason: "정원이 마감되었습니다."}},
			},
			outcome: course.OutcomePartial,
			want: []course.Notice{
				{Kind: toast.Warning, Message: "2개 성공, 1개 실패했습니다."},
				{Kind: toast.Error, Message: "정원이 마감되었습니다."},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.outcome, tt.result.Outcome())
			assert.Equal(t, tt.want, tt.result.Notices())
		})
	}
}

func TestBatchResult_EnrolledIDs(t *testing.T) {
	t.Parallel()

	r := course.BatchResult{Success: []course.BatchSuccess{{CourseID: 4}, {CourseID: 9}}}
	assert.Equal(t, []int64{4, 9}, r.EnrolledIDs())
}

func TestCourse_Created(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"2025-01-15T10:30:00", "2025-01-15T10:30:00.123456", "2025-01-15T10:30:00+09:00", "2025-01-15"} {
		got, ok := course.Course{CreatedAt: raw}.Created()
		assert.True(t, ok, raw)
		assert.Equal(t, 2025, got.Year(), raw)
		assert.Equal(t, 15, got.Day(), raw)
	}

	_, ok := course.Course{CreatedAt: "yesterday"}.Created()
	assert.False(t, ok)
}

func TestIDs_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var ids course.IDs
	assert.NoError(t, json.Unmarshal([]byte(`[1, "2", "30"]`), &ids))
	assert.Equal(t, course.IDs{1, 2, 30}, ids)

	assert.Error(t, json.Unmarshal([]byte(`["x"]`), &ids))
	assert.Error(t, json.Unmarshal([]byte(`[1.5]`), &ids))
	assert.Error(t, json.Unmarshal([]byte(`{}`), &ids))
}

func TestIDs_Unique(t *testing.T) {
	t.Parallel()
	assert.Equal(t, course.IDs{3, 1}, course.IDs{3, 0, 1, 3, -2, 1}.Unique())
	assert.Empty(t, course.IDs{}.Unique())
}
