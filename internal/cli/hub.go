package cli

import (
	"fmt"
	"strconv"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/linskybing/exam-hub/internal/application"
	"github.com/spf13/cobra"
)

var (
	courseUser  string
	courseMatch string
)

var usersCmd = &cobra.Command{
	Use:     "users",
	Short:   "List every user allowed on the exam hub",
	Args:    cobra.NoArgs,
	GroupID: "hub",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newServices()
		if err != nil {
			return err
		}
		users := svc.Hub.Users()
		if outputFormat == "" && len(users) == 0 {
			printEmpty(cmd.OutOrStdout(), "No users found")
			return nil
		}
		return printLines(cmd.OutOrStdout(), users)
	},
}

var coursesCmd = &cobra.Command{
	Use:     "courses",
	Short:   "List active exam courses",
	Args:    cobra.NoArgs,
	GroupID: "hub",
	RunE: func(cmd *cobra.Command, args []string) error {
		if courseMatch != "" && !doublestar.ValidatePattern(courseMatch) {
			return fmt.Errorf("invalid --match pattern %q", courseMatch)
		}
		svc, err := newServices()
		if err != nil {
			return err
		}

		var courses []application.CourseSummary
		if courseUser != "" {
			courses = svc.Hub.CoursesForUser(courseUser)
		} else {
			courses = svc.Hub.Courses()
		}
		courses = filterCourses(courses, courseMatch)

		if outputFormat != "" {
			return printValue(cmd.OutOrStdout(), courses)
		}
		if len(courses) == 0 {
			printEmpty(cmd.OutOrStdout(), "No courses found")
			return nil
		}
		rows := make([][]string, 0, len(courses))
		for _, c := range courses {
			rows = append(rows, []string{c.CourseID, c.SemesterID, c.ExamPeriod, strconv.Itoa(c.MemberCount)})
		}
		printTable(cmd.OutOrStdout(), []string{"COURSE", "SEMESTER", "PERIOD", "MEMBERS"}, rows)
		return nil
	},
}

// filterCourses keeps the courses whose id matches the glob pattern.
func filterCourses(courses []application.CourseSummary, pattern string) []application.CourseSummary {
	if pattern == "" {
		return courses
	}
	out := []application.CourseSummary{}
	for _, c := range courses {
		if ok, _ := doublestar.Match(pattern, c.CourseID); ok {
			out = append(out, c)
		}
	}
	return out
}

func init() {
	coursesCmd.Flags().StringVar(&courseUser, "user", "", "Only courses this user is a member of")
	coursesCmd.Flags().StringVar(&courseMatch, "match", "", "Glob on the course id, e.g. 'algo-*'")
}
