package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/enroll/modules/course"
	"github.com/dmitrymomot/enroll/modules/user"
	"github.com/dmitrymomot/enroll/pkg/format"
	"github.com/dmitrymomot/enroll/pkg/prompt"
	"github.com/dmitrymomot/enroll/pkg/toast"
)

func newEnrollCmd(a *app) *cobra.Command {
	var sortBy string
	cmd := &cobra.Command{
		Use:   "enroll [id...]",
		Short: "강의를 수강신청합니다 (수강생 전용)",
		Long: "강의 번호를 하나 주면 그 강의를, 여러 개 주면 한 번에 신청합니다.\n" +
			"번호 없이 실행하면 첫 페이지의 신청 가능한 강의 중에서 고릅니다.",
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, c, err := a.signedIn()
			if err != nil {
				return err
			}
			if err := a.requireRole(creds, user.RoleStudent); err != nil {
				return err
			}
			api := course.NewAPI(c)
			ctx := cmd.Context()

			ids := make(course.IDs, 0, len(args))
			for _, arg := range args {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			if len(ids) == 0 {
				if ids, err = a.pickCourses(ctx, api, course.ParseSort(sortBy)); err != nil {
					return err
				}
			}

			switch ids = ids.Unique(); len(ids) {
			case 0:
				a.notify(toast.Warning, course.MsgSelectCourses)
				return nil
			case 1:
				return a.enrollOne(ctx, api, ids[0])
			default:
				return a.enrollMany(ctx, api, ids)
			}
		},
	}
	cmd.Flags().StringVar(&sortBy, "sort", string(course.SortRecent), "order of the courses offered for picking")
	return cmd
}

// pickCourses offers the open courses of the first page.
func (a *app) pickCourses(ctx context.Context, api *course.API, sort course.Sort) (course.IDs, error) {
	p, err := api.List(ctx, course.ListParams{Sort: sort})
	if err != nil {
		return nil, userError(err, course.MsgCourseNotLoaded)
	}
	var (
		open    []course.Course
		options []string
	)
	for _, c := range p.Content {
		if c.IsFull {
			continue
		}
		open = append(open, c)
		options = append(options, fmt.Sprintf("%s · %s · %s", c.Title, c.InstructorName, format.Price(c.Price)))
	}
	if len(open) == 0 {
		return nil, nil
	}

	picked, err := a.driver.MultiSelect(ctx, prompt.SelectConfig{
		Message:  "수강신청할 강의를 선택하세요",
		Options:  options,
		PageSize: 10,
	})
	if err != nil {
		return nil, err
	}
	ids := make(course.IDs, 0, len(picked))
	for _, i := range picked {
		if i >= 0 && i < len(open) {
			ids = append(ids, open[i].ID)
		}
	}
	return ids, nil
}

func (a *app) enrollOne(ctx context.Context, api *course.API, id int64) error {
	e, err := api.Enroll(ctx, id)
	if err != nil {
		return userError(err, course.MsgEnrollError)
	}
	msg := e.Message
	if msg == "" {
		msg = course.MsgEnrolled
	}
	a.notify(toast.Success, msg)
	return nil
}

func (a *app) enrollMany(ctx context.Context, api *course.API, ids course.IDs) error {
	result, err := api.BatchEnroll(ctx, ids)
	if err != nil {
		return userError(err, course.MsgEnrollError)
	}
	for _, n := range result.Notices() {
		a.notify(n.Kind, n.Message)
	}
	return nil
}
