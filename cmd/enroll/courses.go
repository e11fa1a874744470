package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/enroll/modules/course"
	"github.com/dmitrymomot/enroll/modules/user"
	"github.com/dmitrymomot/enroll/pkg/apiclient"
	"github.com/dmitrymomot/enroll/pkg/form"
	"github.com/dmitrymomot/enroll/pkg/format"
	"github.com/dmitrymomot/enroll/pkg/prompt"
	"github.com/dmitrymomot/enroll/pkg/toast"
)

var courseFields = []prompt.Field[course.CourseField]{
	{Key: course.FieldTitle, Label: "강의명"},
	{Key: course.FieldDescription, Label: "강의 설명", Kind: prompt.KindTextArea},
	{Key: course.FieldMaxStudents, Label: "최대 수강 인원", Help: "1~100"},
	{Key: course.FieldPrice, Label: "가격", Help: "0~1,000,000원"},
}

func newCoursesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "강의 목록, 상세, 개설",
	}
	cmd.AddCommand(newCoursesListCmd(a), newCoursesShowCmd(a), newCoursesCreateCmd(a))
	return cmd
}

// anyClient sends the saved token when there is one.
func (a *app) anyClient() (*apiclient.Client, error) {
	creds, err := loadCredentials(a.credsPath)
	if err != nil {
		return a.client("")
	}
	return a.client(creds.Token)
}

func newCoursesListCmd(a *app) *cobra.Command {
	var (
		sortBy string
		page   int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "강의 목록을 보여줍니다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.anyClient()
			if err != nil {
				return err
			}
			sort := course.ParseSort(sortBy)
			p, err := course.NewAPI(c).List(cmd.Context(), course.ListParams{Page: page, Sort: sort})
			if err != nil {
				return userError(err, course.MsgCourseNotLoaded)
			}
			a.printCourses(p.Content)
			if next, ok := p.NextPage(); ok {
				fmt.Fprintf(a.out, "\n다음 페이지: enroll courses list --sort %s --page %d\n", sort, next)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sortBy, "sort", string(course.SortRecent), "recent, popular or rate")
	cmd.Flags().IntVar(&page, "page", 0, "page number starting at 0")
	return cmd
}

func (a *app) printCourses(courses []course.Course) {
	if len(courses) == 0 {
		fmt.Fprintln(a.out, "등록된 강의가 없습니다.")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\t강의명\t강사\t인원\t가격\t상태")
	for _, c := range courses {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Title, c.InstructorName, seats(c), format.Price(c.Price), status(c))
	}
	_ = tw.Flush()
}

func seats(c course.Course) string {
	return format.Number(c.CurrentStudents) + "/" + format.Number(c.MaxStudents)
}

func status(c course.Course) string {
	switch {
	case c.IsFull:
		return "마감"
	case c.FewSeats():
		return "마감 임박"
	}
	return ""
}

func newCoursesShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "강의 상세 정보를 보여줍니다",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := a.anyClient()
			if err != nil {
				return err
			}
			crs, err := course.NewAPI(c).Get(cmd.Context(), id)
			if err != nil {
				return userError(err, course.MsgCourseNotLoaded)
			}
			fmt.Fprintf(a.out, "%s\n강사: %s\n인원: %s %s\n가격: %s\n",
				crs.Title, crs.InstructorName, seats(*crs), status(*crs), format.Price(crs.Price))
			if t, ok := crs.Created(); ok {
				fmt.Fprintf(a.out, "개설일: %s\n", t.Format("2006.01.02"))
			}
			if crs.Description != "" {
				fmt.Fprintf(a.out, "\n%s\n", crs.Description)
			}
			return nil
		},
	}
}

func newCoursesCreateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "새 강의를 개설합니다 (강사 전용)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			creds, c, err := a.signedIn()
			if err != nil {
				return err
			}
			if err := a.requireRole(creds, user.RoleInstructor); err != nil {
				return err
			}
			api := course.NewAPI(c)
			f := course.NewCourseForm(func(ctx context.Context, v form.Values[course.CourseField]) error {
				created, err := api.Create(ctx, course.CreateRequestFrom(v, creds.User.Name))
				if err != nil {
					return userError(err, course.MsgCreateFailed)
				}
				a.notify(toast.Success, fmt.Sprintf("%s (ID %d)", course.MsgCourseCreated, created.ID))
				return nil
			})
			return prompt.Run(cmd.Context(), a.driver, f, courseFields...)
		},
	}
}
