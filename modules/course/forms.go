package course

import (
	"math"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/enroll/pkg/form"
	"github.com/dmitrymomot/enroll/pkg/validator"
)

// CourseField names a field of the course form.
type CourseField string

const (
	FieldTitle       CourseField = "title"
	FieldDescription CourseField = "description"
	FieldMaxStudents CourseField = "maxStudents"
	FieldPrice       CourseField = "price"
)

var CourseFields = []CourseField{FieldTitle, FieldDescription, FieldMaxStudents, FieldPrice}

const (
	ReasonTitleRequired      = "강의명을 입력해주세요."
	ReasonInstructorRequired = "강사 이름이 필요합니다."

	MaxStudentsMin = 1
	MaxStudentsMax = 100
	PriceMin       = 0
	PriceMax       = 1000000
)

var descriptionPolicy = bluemonday.StrictPolicy()

func CourseInitial() form.Values[CourseField] {
	return form.Values[CourseField]{
		FieldTitle:       "",
		FieldDescription: "",
		FieldMaxStudents: "",
		FieldPrice:       "",
	}
}

func maxStudentsVerdict(n float64) validator.Verdict {
	return validator.Number(n, validator.Min(MaxStudentsMin), validator.Max(MaxStudentsMax), validator.Label("최대 수강 인원"))
}

func priceVerdict(n float64) validator.Verdict {
	return validator.Number(n, validator.Min(PriceMin), validator.Max(PriceMax), validator.Label("가격"))
}

// ValidateCourse checks title, capacity and price. The description is
// optional.
func ValidateCourse(v form.Values[CourseField]) form.Errors[CourseField] {
	errs := form.Errors[CourseField]{}
	if r := validator.Required(v[FieldTitle], ReasonTitleRequired); !r.OK {
		errs[FieldTitle] = r.Reason
	}
	if r := maxStudentsVerdict(validator.ParseNumber(v[FieldMaxStudents])); !r.OK {
		errs[FieldMaxStudents] = r.Reason
	}
	if r := priceVerdict(validator.ParseNumber(v[FieldPrice])); !r.OK {
		errs[FieldPrice] = r.Reason
	}
	return errs
}

func NewCourseForm(submit form.SubmitFunc[CourseField], opts ...form.Option[CourseField]) *form.Form[CourseField] {
	opts = append([]form.Option[CourseField]{form.WithValidate(ValidateCourse)}, opts...)
	return form.New(CourseInitial(), submit, opts...)
}

// CanSubmitCourse enables the create button once title, capacity and price
// are filled and no field carries an error.
func CanSubmitCourse(s form.State[CourseField]) bool {
	if s.Values[FieldTitle] == "" || s.Values[FieldMaxStudents] == "" || s.Values[FieldPrice] == "" {
		return false
	}
	return !s.Errors.Any() && !s.IsSubmitting
}

// CreateRequestFrom builds the API payload from validated form values. The
// description is stripped of markup and dropped when blank.
func CreateRequestFrom(v form.Values[CourseField], instructorName string) CreateRequest {
	return CreateRequest{
		Title:          strings.TrimSpace(v[FieldTitle]),
		Description:    strings.TrimSpace(descriptionPolicy.Sanitize(strings.TrimSpace(v[FieldDescription]))),
		InstructorName: instructorName,
		MaxStudents:    int(math.Round(validator.ParseNumber(v[FieldMaxStudents]))),
		Price:          int64(math.Round(validator.ParseNumber(v[FieldPrice]))),
	}
}
