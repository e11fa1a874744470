package course

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/dmitrymomot/enroll/pkg/toast"
)

// PageSize is the number of courses fetched per list page.
const PageSize = 20

type Course struct {
	ID              int64  `json:"id" yaml:"id"`
	Title           string `json:"title" yaml:"title"`
	Description     string `json:"description,omitempty" yaml:"description,omitempty"`
	InstructorName  string `json:"instructorName" yaml:"instructor_name"`
	MaxStudents     int    `json:"maxStudents" yaml:"max_students"`
	CurrentStudents int    `json:"currentStudents" yaml:"current_students"`
	AvailableSeats  int    `json:"availableSeats" yaml:"available_seats"`
	IsFull          bool   `json:"isFull" yaml:"is_full"`
	Price           int64  `json:"price" yaml:"price"`
	CreatedAt       string `json:"createdAt" yaml:"created_at"`
}

// createdLayouts are the timestamp shapes the API has been seen to send.
var createdLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", "2006-01-02"}

// Created parses CreatedAt. Timestamps without a zone are read as UTC.
func (c Course) Created() (time.Time, bool) {
	for _, layout := range createdLayouts {
		if t, err := time.Parse(layout, c.CreatedAt); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FewSeats reports whether the remaining seats deserve a highlight.
func (c Course) FewSeats() bool {
	return c.AvailableSeats <= 5
}

// Sort is a list ordering understood by the API.
type Sort string

const (
	SortRecent  Sort = "recent"
	SortPopular Sort = "popular"
	SortRate    Sort = "rate"
)

// Sorts lists the orderings in display order.
var Sorts = []Sort{SortRecent, SortPopular, SortRate}

// ParseSort falls back to SortRecent for unknown values.
func ParseSort(s string) Sort {
	switch Sort(s) {
	case SortPopular, SortRate:
		return Sort(s)
	}
	return SortRecent
}

func (s Sort) Label() string {
	switch s {
	case SortPopular:
		return "신청자 많은 순"
	case SortRate:
		return "신청률 높은 순"
	default:
		return "최근 등록순"
	}
}

type Pageable struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}

// Page is one page of the course list.
type Page struct {
	Content       []Course `json:"content"`
	Pageable      Pageable `json:"pageable"`
	TotalElements int64    `json:"totalElements"`
	TotalPages    int      `json:"totalPages"`
	First         bool     `json:"first"`
	Last          bool     `json:"last"`
}

// NextPage returns the number of the page after p, if there is one.
func (p *Page) NextPage() (int, bool) {
	if p == nil || p.Last {
		return 0, false
	}
	return p.Pageable.PageNumber + 1, true
}

type Enrollment struct {
	EnrollmentID   int64  `json:"enrollmentId"`
	CourseID       int64  `json:"courseId"`
	CourseTitle    string `json:"courseTitle"`
	InstructorName string `json:"instructorName"`
	UserID         int64  `json:"userId"`
	UserName       string `json:"userName"`
	EnrolledAt     string `json:"enrolledAt"`
	Message        string `json:"message"`
}

type BatchSuccess struct {
	EnrollmentID int64  `json:"enrollmentId"`
	CourseID     int64  `json:"courseId"`
	CourseTitle  string `json:"courseTitle"`
}

type BatchFailure struct {
	CourseID int64  `json:"courseId"`
	Reason   string `json:"reason"`
}

// BatchResult is the answer to a batch enrollment.
type BatchResult struct {
	Success []BatchSuccess `json:"success"`
	Failed  []BatchFailure `json:"failed"`
}

// Outcome classifies a batch result.
type Outcome int

const (
	OutcomeAllSucceeded Outcome = iota
	OutcomeAllFailed
	OutcomePartial
)

func (r BatchResult) Outcome() Outcome {
	switch {
	case len(r.Failed) == 0:
		return OutcomeAllSucceeded
	case len(r.Success) == 0:
		return OutcomeAllFailed
	default:
		return OutcomePartial
	}
}

// EnrolledIDs returns the ids of the courses that were enrolled.
func (r BatchResult) EnrolledIDs() []int64 {
	ids := make([]int64, 0, len(r.Success))
	for _, s := range r.Success {
		ids = append(ids, s.CourseID)
	}
	return ids
}

// Notice is a message to show the user, styled by Kind.
type Notice struct {
	Kind    toast.Kind
	Message string
}

const (
	MsgSelectCourses   = "수강신청할 강의를 선택해주세요."
	MsgBatchFailed     = "수강신청에 실패했습니다."
	MsgEnrollError     = "수강신청 중 오류가 발생했습니다."
	MsgEnrolled        = "수강신청이 완료되었습니다!"
	MsgCourseCreated   = "강의가 개설되었습니다!"
	MsgCreateFailed    = "강의 개설에 실패했습니다. 다시 시도해주세요."
	MsgCourseNotLoaded = "강의 정보를 불러오는데 실패했습니다."
)

// Notices turns a batch result into the summary followed by one error per
// failed course.
func (r BatchResult) Notices() []Notice {
	var out []Notice
	switch r.Outcome() {
	case OutcomeAllSucceeded:
		return []Notice{{toast.Success, fmt.Sprintf("%d개 강의 수강신청이 완료되었습니다!", len(r.Success))}}
	case OutcomeAllFailed:
		out = append(out, Notice{toast.Error, MsgBatchFailed})
	case OutcomePartial:
		out = append(out, Notice{toast.Warning, fmt.Sprintf("%d개 성공, %d개 실패했습니다.", len(r.Success), len(r.Failed))})
	}
	for _, f := range r.Failed {
		if f.Reason != "" {
			out = append(out, Notice{toast.Error, f.Reason})
		}
	}
	return out
}

var ErrNoCourses = errors.New("course: no courses selected")

// IDs is a list of course ids. It decodes from JSON numbers or numeric
// strings, since checkbox values reach the server as strings.
type IDs []int64

func (ids *IDs) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(IDs, 0, len(raw))
	for _, r := range raw {
		var n json.Number
		if err := json.Unmarshal(r, &n); err != nil {
			var s string
			if err := json.Unmarshal(r, &s); err != nil {
				return fmt.Errorf("course: invalid id %s", r)
			}
			n = json.Number(s)
		}
		id, err := strconv.ParseInt(n.String(), 10, 64)
		if err != nil {
			return fmt.Errorf("course: invalid id %q", n)
		}
		out = append(out, id)
	}
	*ids = out
	return nil
}

// Unique drops non-positive and repeated ids, keeping the first occurrence.
func (ids IDs) Unique() IDs {
	out := make(IDs, 0, len(ids))
	for _, id := range ids {
		if id > 0 && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
