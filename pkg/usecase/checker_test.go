package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/coffeepanda/dashcheck/pkg/domain/interfaces"
	"github.com/coffeepanda/dashcheck/pkg/domain/model"
	"github.com/coffeepanda/dashcheck/pkg/domain/types"
	"github.com/coffeepanda/dashcheck/pkg/repository"
	"github.com/coffeepanda/dashcheck/pkg/service/canvas"
	"github.com/coffeepanda/dashcheck/pkg/service/report"
	slackSvc "github.com/coffeepanda/dashcheck/pkg/service/slack"
	"github.com/coffeepanda/dashcheck/pkg/usecase"
	"github.com/coffeepanda/dashcheck/pkg/utils/clock"
	"github.com/m-mizutani/gt"
)

const canvasBase = "https://canvas.example.com"

type harness struct {
	fake    *fakeCanvas
	out     *report.Output
	repo    interfaces.ResultRepository
	checker *usecase.Checker
}

func newHarness(t *testing.T, fake *fakeCanvas) *harness {
	t.Helper()
	return newHarnessWithRepo(t, fake, repository.NewMemory())
}

func newHarnessWithRepo(t *testing.T, fake *fakeCanvas, repo interfaces.ResultRepository) *harness {
	t.Helper()

	clk := clock.NewFake(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))
	out, err := report.Open(t.TempDir(), clk)
	gt.NoError(t, err).Required()
	t.Cleanup(func() { _ = out.Close() })

	settings := model.DefaultSettings()
	settings.CanvasBaseURL = canvasBase
	settings.OverdueThreshold = 5
	settings.OverdueUnit = types.OverdueUnitCalendarDays
	settings.LoadTimeoutSeconds = 3

	session := canvas.New(fake, settings.CanvasBaseURL, clk, settings.LoadTimeoutSeconds)
	checker := usecase.NewChecker(session, out, repo, slackSvc.NewNopNotifier(), clk,
		usecase.NewCheckerConfig(settings, usecase.WithOutputDir(out.Dir())))

	return &harness{fake: fake, out: out, repo: repo, checker: checker}
}

func (h *harness) summary(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(h.out.Dir(), report.SummaryFileName))
	gt.NoError(t, err).Required()
	return string(data)
}

func (h *harness) runLog(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(h.out.Dir(), report.LogFileName))
	gt.NoError(t, err).Required()
	return string(data)
}

func (h *harness) screenshots(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(h.out.Dir(), report.ScreenshotDir))
	gt.NoError(t, err).Required()

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func single(url, title, raw string) *fakeAssignment {
	return &fakeAssignment{
		url:         canvasBase + url,
		title:       title,
		submissions: []fakeSubmission{{student: "Student", raw: raw}},
	}
}

func roster(t *testing.T, data string) *model.Roster {
	t.Helper()
	r, err := model.ParseRoster([]byte(data))
	gt.NoError(t, err).Required()
	return r
}

func TestCheckerRun(t *testing.T) {
	fake := newFakeCanvas(canvasBase)
	fake.addUser(101, &fakeUser{items: []*fakeAssignment{single("/courses/1/gradebook/speed_grader?assignment_id=1", "Essay 1", "7 Mar at 10:00")}})
	fake.addUser(102, &fakeUser{items: []*fakeAssignment{single("/courses/1/gradebook/speed_grader?assignment_id=2", "Essay 2", "29 Feb at 09:00")}})

	h := newHarness(t, fake)
	ctx := context.Background()

	results, err := h.checker.Run(ctx, roster(t, `{"Alice": 101, "Bob": 102}`))
	gt.NoError(t, err).Required()
	gt.Equal(t, len(results), 2)

	gt.Equal(t, results[0].TutorName, types.TutorName("Alice"))
	gt.Equal(t, results[0].Status, types.TutorStatusChecked)
	gt.Equal(t, results[0].Checked, 1)
	gt.Equal(t, results[0].OverdueCount, 0)
	gt.V(t, results[0].AverageHours).NotNil()
	gt.Equal(t, *results[0].AverageHours, 74)
	gt.Equal(t, results[0].Histogram[3], 1)

	gt.Equal(t, results[1].TutorName, types.TutorName("Bob"))
	gt.Equal(t, results[1].OverdueCount, 1)
	gt.Equal(t, results[1].Overdue, []float64{10})

	summary := h.summary(t)
	gt.S(t, summary).Contains("Alice - Assignments overdue: 0\n")
	gt.S(t, summary).Contains("Alice - Average hours since submission: 74\n")
	gt.S(t, summary).Contains("Bob - Assignments overdue: 1\n")

	gt.Equal(t, h.screenshots(t), []string{"Bob1.png"})

	gt.Equal(t, fake.reverts, 2)
	gt.Equal(t, fake.actingAs, int64(0))

	log := h.runLog(t)
	gt.S(t, log).Contains("Act as user - Success - ")
	gt.S(t, log).Contains(": Application exited cleanly\n")

	stored, err := h.repo.ListTutorResults(ctx, results[0].RunID)
	gt.NoError(t, err)
	gt.Equal(t, len(stored), 2)
}

func TestCheckerNoItems(t *testing.T) {
	fake := newFakeCanvas(canvasBase)
	fake.addUser(101, &fakeUser{})

	h := newHarness(t, fake)
	results, err := h.checker.Run(context.Background(), roster(t, `{"Alice": 101}`))
	gt.NoError(t, err).Required()

	gt.Equal(t, results[0].Status, types.TutorStatusNoItems)
	gt.V(t, results[0].AverageHours).Nil()
	gt.Equal(t, h.summary(t), "Alice - No Items on dashboard\n")
	gt.Equal(t, fake.reverts, 1)
}

func TestCheckerImpersonationFailure(t *testing.T) {
	fake := newFakeCanvas(canvasBase)
	fake.addUser(101, &fakeUser{noPermission: true})
	fake.addUser(102, &fakeUser{items: []*fakeAssignment{single("/a/2", "Essay 2", "8 Mar at 12:00")}})

	h := newHarness(t, fake)
	results, err := h.checker.Run(context.Background(), roster(t, `{"Alice": 101, "Bob": 102}`))
	gt.NoError(t, err).Required()

	gt.Equal(t, results[0].Status, types.TutorStatusImpersonationFailed)
	gt.Equal(t, results[1].Status, types.TutorStatusChecked)
	gt.Equal(t, results[1].Checked, 1)
	gt.S(t, h.runLog(t)).Contains("You do not have permission to act as Alice")
	gt.Equal(t, fake.reverts, 1)
}

func TestCheckerRevertsWhenAssignmentFails(t *testing.T) {
	broken := single("/a/1", "Essay 1", "7 Mar at 10:00")
	broken.noLoad = true

	fake := newFakeCanvas(canvasBase)
	fake.addUser(101, &fakeUser{items: []*fakeAssignment{broken, single("/a/2", "Essay 2", "2 Mar at 08:00")}})
	fake.addUser(102, &fakeUser{items: []*fakeAssignment{single("/a/3", "Essay 3", "missing")}})

	h := newHarness(t, fake)
	results, err := h.checker.Run(context.Background(), roster(t, `{"Alice": 101, "Bob": 102}`))
	gt.NoError(t, err).Required()

	// the broken page is skipped and the next one still counts
	gt.Equal(t, results[0].Checked, 1)
	gt.Equal(t, results[0].OverdueCount, 1)

	gt.Equal(t, results[1].Checked, 0)
	gt.V(t, results[1].AverageHours).Nil()

	log := h.runLog(t)
	gt.S(t, log).Contains("Alice - ")
	gt.S(t, log).Contains("COULD NOT CHECK ASSIGNMENT (Timed out waiting for page to load): Essay 1")
	gt.S(t, log).Contains("Assignment is marked MISSING")

	summary := h.summary(t)
	gt.S(t, summary).Contains("Bob - Assignments overdue: 0\n")
	gt.False(t, strings.Contains(summary, "Bob - Average hours"))

	gt.Equal(t, fake.reverts, 2)
	gt.Equal(t, h.screenshots(t), []string{"Alice1.png"})
}

func TestCheckerMultipleSubmissions(t *testing.T) {
	fake := newFakeCanvas(canvasBase)
	fake.addUser(103, &fakeUser{items: []*fakeAssignment{{
		url:   canvasBase + "/a/9",
		title: "Project",
		submissions: []fakeSubmission{
			{student: "Sam", raw: "2 Mar at 08:00"},
			{student: "Kim", raw: "8 Mar at 12:00"},
			{student: "Sam", raw: "2 Mar at 08:00"},
			{student: "Lee", raw: "no submission time"},
		},
	}}})

	h := newHarness(t, fake)
	results, err := h.checker.Run(context.Background(), roster(t, `{"Cara": 103}`))
	gt.NoError(t, err).Required()

	gt.Equal(t, results[0].Checked, 2)
	gt.Equal(t, results[0].OverdueCount, 1)
	gt.Equal(t, results[0].Overdue, []float64{8})
	gt.Equal(t, results[0].Histogram[2], 1)
	gt.Equal(t, results[0].Histogram[8], 1)
	gt.Equal(t, h.screenshots(t), []string{"Cara1.png"})
	gt.S(t, h.runLog(t)).Contains("No submission time")
}

func TestCheckerHoursMode(t *testing.T) {
	fake := newFakeCanvas(canvasBase)
	fake.addUser(101, &fakeUser{items: []*fakeAssignment{
		single("/a/1", "Quiz", "10 Mar at 06:00"),
		single("/a/2", "Essay", "10 Mar at 11:00"),
	}})

	clk := clock.NewFake(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))
	out, err := report.Open(t.TempDir(), clk)
	gt.NoError(t, err).Required()
	defer out.Close()

	settings := model.DefaultSettings()
	settings.CanvasBaseURL = canvasBase
	settings.OverdueUnit = types.OverdueUnitHours
	settings.OverdueThreshold = 5

	session := canvas.New(fake, canvasBase, clk, 3)
	checker := usecase.NewChecker(session, out, repository.NewMemory(), slackSvc.NewNopNotifier(), clk,
		usecase.NewCheckerConfig(settings))

	results, err := checker.Run(context.Background(), roster(t, `{"Alice": 101}`))
	gt.NoError(t, err).Required()
	gt.Equal(t, results[0].Checked, 2)
	gt.Equal(t, results[0].OverdueCount, 1)
	gt.Equal(t, results[0].Overdue, []float64{6})
	gt.Equal(t, results[0].Histogram[0], 2)
}

func TestCheckerLogin(t *testing.T) {
	fake := newFakeCanvas(canvasBase)
	h := newHarness(t, fake)

	// the fake never shows the dashboard after submitting the form
	err := h.checker.Login(context.Background(), &model.Credentials{Username: "admin", Password: "pw"})
	gt.Error(t, err)
}

func TestCheckerRecoversFromPanic(t *testing.T) {
	fake := newFakeCanvas(canvasBase)
	fake.addUser(101, &fakeUser{panics: true})
	fake.addUser(102, &fakeUser{})

	h := newHarness(t, fake)
	results, err := h.checker.Run(context.Background(), roster(t, `{"Alice": 101, "Bob": 102}`))
	gt.NoError(t, err).Required()

	gt.Equal(t, results[0].Status, types.TutorStatusDashboardFailed)
	gt.Equal(t, results[1].Status, types.TutorStatusNoItems)
	gt.Equal(t, fake.reverts, 2)
	gt.S(t, h.runLog(t)).Contains("Unexpected failure while checking Alice: renderer crashed")
}

func TestCheckerSkipsSubmissionInTheFuture(t *testing.T) {
	fake := newFakeCanvas(canvasBase)
	fake.addUser(103, &fakeUser{items: []*fakeAssignment{{
		url:   canvasBase + "/a/9",
		title: "Project",
		submissions: []fakeSubmission{
			{student: "Sam", raw: "10 Mar at 18:00"},
			{student: "Kim", raw: "2 Mar at 08:00"},
		},
	}}})

	h := newHarness(t, fake)
	results, err := h.checker.Run(context.Background(), roster(t, `{"Cara": 103}`))
	gt.NoError(t, err).Required()

	// Sam measures negative and is not recorded, Kim still is
	gt.Equal(t, results[0].Checked, 1)
	gt.Equal(t, results[0].OverdueCount, 1)
	gt.Equal(t, results[0].Overdue, []float64{8})
	gt.False(t, strings.Contains(h.runLog(t), "Error checking assignment"))
}

func TestCheckerSkipsStudentWhenSelectionTimesOut(t *testing.T) {
	fake := newFakeCanvas(canvasBase)
	fake.addUser(103, &fakeUser{items: []*fakeAssignment{{
		url:   canvasBase + "/a/9",
		title: "Project",
		stuck: "Kim",
		submissions: []fakeSubmission{
			{student: "Sam", raw: "2 Mar at 08:00"},
			{student: "Kim", raw: "8 Mar at 12:00"},
			{student: "Lee", raw: "7 Mar at 10:00"},
		},
	}}})

	h := newHarness(t, fake)
	results, err := h.checker.Run(context.Background(), roster(t, `{"Cara": 103}`))
	gt.NoError(t, err).Required()

	gt.Equal(t, results[0].Checked, 2)
	gt.Equal(t, results[0].OverdueCount, 1)
	gt.Equal(t, results[0].Histogram[3], 1)
	gt.Equal(t, results[0].Histogram[2], 0)
	gt.S(t, h.runLog(t)).Contains("Cara - ")
	gt.S(t, h.runLog(t)).Contains("COULD NOT CHECK ASSIGNMENT (Timed out waiting for page to load): Project")
	gt.Equal(t, fake.reverts, 1)
}

type failingRunRepo struct {
	interfaces.ResultRepository
}

func (r *failingRunRepo) PutRun(ctx context.Context, run *model.Run) error {
	return errors.New("firestore unavailable")
}

func TestCheckerContinuesWhenRunCannotBeStored(t *testing.T) {
	fake := newFakeCanvas(canvasBase)
	fake.addUser(101, &fakeUser{})

	h := newHarnessWithRepo(t, fake, &failingRunRepo{ResultRepository: repository.NewMemory()})
	results, err := h.checker.Run(context.Background(), roster(t, `{"Alice": 101}`))
	gt.NoError(t, err).Required()

	gt.Equal(t, len(results), 1)
	gt.Equal(t, results[0].Status, types.TutorStatusNoItems)
	log := h.runLog(t)
	gt.S(t, log).Contains("Could not store run")
	gt.S(t, log).Contains(": Application exited cleanly\n")
}
