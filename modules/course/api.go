package course

import (
	"context"
	"net/url"
	"strconv"

	"github.com/dmitrymomot/enroll/pkg/apiclient"
	"github.com/dmitrymomot/enroll/pkg/validator"
)

// ListParams selects a page of the course list. Size defaults to PageSize.
type ListParams struct {
	Page int
	Size int
	Sort Sort
}

func (p ListParams) query() url.Values {
	size := p.Size
	if size <= 0 {
		size = PageSize
	}
	page := max(p.Page, 0)
	return url.Values{
		"page": {strconv.Itoa(page)},
		"size": {strconv.Itoa(size)},
		"sort": {string(ParseSort(string(p.Sort)))},
	}
}

type CreateRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	InstructorName string `json:"instructorName"`
	MaxStudents    int    `json:"maxStudents"`
	Price          int64  `json:"price"`
}

// Validate applies the same rules as the course form.
func (r CreateRequest) Validate() error {
	return validator.Apply(
		validator.FromVerdict("title", validator.Required(r.Title, ReasonTitleRequired)),
		validator.FromVerdict("instructorName", validator.Required(r.InstructorName, ReasonInstructorRequired)),
		validator.FromVerdict("maxStudents", maxStudentsVerdict(float64(r.MaxStudents))),
		validator.FromVerdict("price", priceVerdict(float64(r.Price))),
	)
}

type batchRequest struct {
	CourseIDs []int64 `json:"courseIds"`
}

// API calls the course and enrollment endpoints.
type API struct {
	client *apiclient.Client
}

func NewAPI(client *apiclient.Client) *API {
	return &API{client: client}
}

func (a *API) List(ctx context.Context, p ListParams) (*Page, error) {
	var out Page
	if err := a.client.Get(ctx, "/courses", &out, apiclient.WithQuery(p.query())); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) Get(ctx context.Context, id int64) (*Course, error) {
	var out Course
	if err := a.client.Get(ctx, "/courses/"+strconv.FormatInt(id, 10), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create opens a course. Only instructors may call it.
func (a *API) Create(ctx context.Context, req CreateRequest) (*Course, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out Course
	if err := a.client.Post(ctx, "/courses", req, &out, apiclient.WithAuth()); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) Enroll(ctx context.Context, id int64) (*Enrollment, error) {
	var out Enrollment
	path := "/courses/" + strconv.FormatInt(id, 10) + "/enroll"
	if err := a.client.Post(ctx, path, nil, &out, apiclient.WithAuth()); err != nil {
		return nil, err
	}
	return &out, nil
}

// BatchEnroll enrolls in several courses at once. Per-course failures are
// part of the result, not an error.
func (a *API) BatchEnroll(ctx context.Context, ids []int64) (*BatchResult, error) {
	if len(ids) == 0 {
		return nil, ErrNoCourses
	}
	var out BatchResult
	if err := a.client.Post(ctx, "/enrollments/batch", batchRequest{CourseIDs: ids}, &out, apiclient.WithAuth()); err != nil {
		return nil, err
	}
	return &out, nil
}
