package course_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/enroll/modules/course"
	"github.com/dmitrymomot/enroll/pkg/form"
)

func TestValidateCourse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values form.Values[course.CourseField]
		want   form.Errors[course.CourseField]
	}{
		{
			name:   "empty form",
			values: course.CourseInitial(),
			want: form.Errors[course.CourseField]{
				course.FieldTitle:       course.ReasonTitleRequired,
				course.FieldMaxStudents: "최대 수강 인원은(는) 1 이상이어야 합니다.",
			},
		},
		{
			name: "out of range",
			values: form.Values[course.CourseField]{
				course.FieldTitle:       "내집마련 기초반",
				course.FieldMaxStudents: "101",
				course.FieldPrice:       "-1",
			},
			want: form.Errors[course.CourseField]{
				course.FieldMaxStudents: "최대 수강 인원은(는) 100 이하여야 합니다.",
				course.FieldPrice:       "가격은(는) 0 이상이어야 합니다.",
			},
		},
		{
			name: "not a number",
			values: form.Values[course.CourseField]{
				course.FieldTitle:       "내집마련 기초반",
				course.FieldMaxStudents: "열",
				course.FieldPrice:       "1000001",
			},
			want: form.Errors[course.CourseField]{
				course.FieldMaxStudents: "최대 수강 인원은(는) 숫자여야 합니다.",
				course.FieldPrice:       "가격은(는) 1000000 이하여야 합니다.",
			},
		},
		{
			name: "valid at the bounds",
			values: form.Values[course.CourseField]{
				course.FieldTitle:       "내집마련 기초반",
				course.FieldMaxStudents: "100",
				course.FieldPrice:       "1000000",
			},
			want: form.Errors[course.CourseField]{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, course.ValidateCourse(tt.values)); diff != "" {
				t.Errorf("ValidateCourse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCanSubmitCourse(t *testing.T) {
	t.Parallel()

	f := course.NewCourseForm(nil)
	f.HandleChange(course.FieldTitle)(form.Value("기초반"))
	f.HandleChange(course.FieldMaxStudents)(form.Value("10"))
	assert.False(t, course.CanSubmitCourse(f.State()), "price missing")

	f.HandleChange(course.FieldPrice)(form.Value("0"))
	assert.True(t, course.CanSubmitCourse(f.State()), "description is optional")

	f.HandleChange(course.FieldMaxStudents)(form.Value("0"))
	f.HandleBlur(course.FieldMaxStudents)()
	assert.False(t, course.CanSubmitCourse(f.State()))
}

func TestCreateRequestFrom(t *testing.T) {
	t.Parallel()

	var got course.CreateRequest
	f := course.NewCourseForm(func(_ context.Context, v form.Values[course.CourseField]) error {
		got = course.CreateRequestFrom(v, "김강사")
		return nil
	})
	f.HandleChange(course.FieldTitle)(form.Value("  기초반  "))
	f.HandleChange(course.FieldDescription)(form.Value(`<script>alert(1)</script><b>처음</b> 듣는 분`))
	f.HandleChange(course.FieldMaxStudents)(form.Value(" 30 "))
	f.HandleChange(course.FieldPrice)(form.Value("200000"))

	require.NoError(t, f.HandleSubmit(context.Background(), nil))
	assert.Equal(t, course.CreateRequest{
		Title:          "기초반",
		Description:    "처음 듣는 분",
		InstructorName: "김강사",
		MaxStudents:    30,
		Price:          200000,
	}, got)
	assert.NoError(t, got.Validate())
}

func TestCreateRequestFrom_BlankDescriptionIsOmitted(t *testing.T) {
	t.Parallel()

	v := course.CourseInitial()
	v[course.FieldTitle] = "기초반"
	v[course.FieldDescription] = "   "
	v[course.FieldMaxStudents] = "1"
	assert.Empty(t, course.CreateRequestFrom(v, "김강사").Description)
}
