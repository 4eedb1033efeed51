package application

import "github.com/linskybing/exam-hub/internal/domain/exam"

// CourseSummary is the listing view of a course.
type CourseSummary struct {
	CourseID    string `json:"course_id"`
	Name        string `json:"name"`
	SemesterID  string `json:"semester_id"`
	ExamPeriod  string `json:"exam_period"`
	MemberCount int    `json:"member_count"`
}

func summarize(c exam.Course) CourseSummary {
	return CourseSummary{
		CourseID:    c.CourseID(),
		Name:        c.Name,
		SemesterID:  c.SemesterID,
		ExamPeriod:  c.ExamPeriod,
		MemberCount: len(c.Members),
	}
}

type HubService struct {
	catalog CourseCatalog
}

func NewHubService(catalog CourseCatalog) *HubService {
	return &HubService{catalog: catalog}
}

// Users returns every member of every configured course, first occurrence first.
func (s *HubService) Users() []string {
	seen := map[string]bool{}
	users := []string{}
	for _, c := range s.catalog.Current().NbGrader.Courses {
		for _, u := range c.Members {
			if !seen[u] {
				seen[u] = true
				users = append(users, u)
			}
		}
	}
	return users
}

func (s *HubService) Courses() []CourseSummary {
	courses := s.catalog.Current().NbGrader.Courses
	out := make([]CourseSummary, 0, len(courses))
	for _, c := range courses {
		out = append(out, summarize(c))
	}
	return out
}

// CoursesForUser returns the courses whose user list contains username, in config order.
func (s *HubService) CoursesForUser(username string) []CourseSummary {
	out := []CourseSummary{}
	for _, c := range coursesForUser(s.catalog.Current(), username) {
		out = append(out, summarize(c))
	}
	return out
}

func coursesForUser(cfg *exam.ServerConfig, username string) []exam.Course {
	var out []exam.Course
	for _, c := range cfg.NbGrader.Courses {
		if c.HasMember(username) {
			out = append(out, c)
		}
	}
	return out
}
