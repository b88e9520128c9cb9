package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/coffeepanda/dashcheck/pkg/domain/interfaces"
	"github.com/coffeepanda/dashcheck/pkg/domain/model"
	"github.com/coffeepanda/dashcheck/pkg/domain/types"
	"github.com/coffeepanda/dashcheck/pkg/service/canvas"
	"github.com/coffeepanda/dashcheck/pkg/utils/clock"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

const overdueSettle = 2 * time.Second

// CheckerConfig holds configuration for the Checker use case
type CheckerConfig struct {
	settings  model.Settings
	outputDir string
}

// CheckerOption is a functional option for configuring Checker
type CheckerOption func(*CheckerConfig)

// WithOutputDir records where the run writes its files
func WithOutputDir(dir string) CheckerOption {
	return func(c *CheckerConfig) {
		c.outputDir = dir
	}
}

// NewCheckerConfig creates a CheckerConfig for the given settings
func NewCheckerConfig(settings model.Settings, opts ...CheckerOption) *CheckerConfig {
	config := &CheckerConfig{settings: settings}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// Checker walks every tutor's dashboard and classifies their submissions
type Checker struct {
	session  *canvas.Session
	reporter interfaces.Reporter
	repo     interfaces.ResultRepository
	notifier interfaces.Notifier
	clock    clock.Clock
	config   *CheckerConfig
	policy   model.OverduePolicy
}

// NewChecker creates a new Checker instance
func NewChecker(session *canvas.Session, reporter interfaces.Reporter, repo interfaces.ResultRepository, notifier interfaces.Notifier, clk clock.Clock, config *CheckerConfig) *Checker {
	return &Checker{
		session:  session,
		reporter: reporter,
		repo:     repo,
		notifier: notifier,
		clock:    clk,
		config:   config,
		policy:   config.settings.Policy(),
	}
}

// Login authenticates the administrator account
func (x *Checker) Login(ctx context.Context, creds *model.Credentials) error {
	if err := x.session.Login(ctx, creds); err != nil {
		return err
	}
	x.reporter.Log(ctx, "Authentication Complete", "Logged in as "+creds.Username)
	return nil
}

// Run checks every tutor of the roster in order and returns their results
func (x *Checker) Run(ctx context.Context, roster *model.Roster) ([]*model.TutorResult, error) {
	run := model.NewRun(x.clock.Now(), x.config.outputDir, x.config.settings)
	if err := x.repo.PutRun(ctx, run); err != nil {
		x.reporter.Log(ctx, "Error", fmt.Sprintf("Could not store run %s: %v", run.ID, err))
	}
	ctxlog.From(ctx).Info("starting run",
		"run_id", run.ID,
		"tutors", roster.Len(),
		"policy", x.policy)

	var results []*model.TutorResult
	for _, tutor := range roster.Tutors() {
		if err := ctx.Err(); err != nil {
			return results, goerr.Wrap(err, "run cancelled", goerr.V("run_id", run.ID))
		}

		result := x.checkTutor(ctx, run.ID, tutor)
		if err := x.repo.PutTutorResult(ctx, result); err != nil {
			x.reporter.Log(ctx, "Error", fmt.Sprintf("Could not store result for %s: %v", tutor.Name, err))
		}
		results = append(results, result)
	}

	if err := x.notifier.NotifyRun(ctx, run, results); err != nil {
		x.reporter.Log(ctx, "Error", fmt.Sprintf("Could not send notification: %v", err))
	}

	x.reporter.Log(ctx, "Status", "Application exited cleanly")
	return results, nil
}

func (x *Checker) checkTutor(ctx context.Context, runID types.RunID, tutor *model.Tutor) *model.TutorResult {
	imp, err := x.session.ActAs(ctx, tutor)
	if err != nil {
		if errors.Is(err, canvas.ErrNoPermission) {
			x.reporter.Log(ctx, "Act as user - Error", fmt.Sprintf("You do not have permission to act as %s", tutor.Name))
		} else {
			x.reporter.Log(ctx, "Act as user - Error", fmt.Sprintf("Could not act as user %s", tutor.Name))
		}
		ctxlog.From(ctx).Debug("impersonation failed", "tutor", tutor.Name, "error", err)
		return model.NewTutorResult(runID, tutor, types.TutorStatusImpersonationFailed, x.clock.Now())
	}
	defer func() {
		// revert even when the run is being cancelled
		if err := imp.Revert(context.WithoutCancel(ctx)); err != nil {
			x.reporter.Log(ctx, "Error", fmt.Sprintf("Could not stop acting as %s: %v", tutor.Name, err))
		}
	}()
	x.reporter.Log(ctx, "Act as user - Success", fmt.Sprintf("Acting as user %s", tutor.Name))

	status := x.recoverDashboard(ctx, tutor)
	return model.NewTutorResult(runID, tutor, status, x.clock.Now())
}

// recoverDashboard turns a panic while checking one tutor into a failed
// status so the impersonation is still reverted and the run continues
func (x *Checker) recoverDashboard(ctx context.Context, tutor *model.Tutor) (status types.TutorStatus) {
	defer func() {
		if r := recover(); r != nil {
			ctxlog.From(ctx).Error("Panic while checking tutor",
				"tutor", tutor.Name,
				"recover", r,
				"stack", string(debug.Stack()),
			)
			x.reporter.Log(ctx, "Error", fmt.Sprintf("Unexpected failure while checking %s: %v", tutor.Name, r))
			status = types.TutorStatusDashboardFailed
		}
	}()
	return x.checkDashboard(ctx, tutor)
}

func (x *Checker) checkDashboard(ctx context.Context, tutor *model.Tutor) types.TutorStatus {
	hasItems, err := x.session.DashboardHasAssignments(ctx)
	if err != nil {
		x.reporter.LogAt(ctx, slog.LevelError, string(tutor.Name), fmt.Sprintf("Could not load dashboard: %s", x.session.Title(ctx)))
		x.reporter.Emit(ctx, tutor.Name, "Could not load dashboard")
		return types.TutorStatusDashboardFailed
	}
	if !hasItems {
		x.reporter.Emit(ctx, tutor.Name, "No Items on dashboard")
		return types.TutorStatusNoItems
	}

	items, err := x.session.DashboardAssignments(ctx)
	if err != nil {
		x.reporter.LogAt(ctx, slog.LevelError, string(tutor.Name), fmt.Sprintf("Could not read dashboard assignments: %v", err))
		x.reporter.Emit(ctx, tutor.Name, "Could not load dashboard")
		return types.TutorStatusDashboardFailed
	}

	for _, item := range items {
		if ctx.Err() != nil {
			break
		}
		if err := x.checkItem(ctx, tutor, item); err != nil {
			x.logItemError(ctx, tutor, err)
		}
	}

	x.reporter.Emit(ctx, tutor.Name, fmt.Sprintf("Assignments overdue: %d", tutor.OverdueCount()))
	if tutor.Checked() > 0 {
		if avg, err := tutor.AverageHours(); err == nil {
			x.reporter.Emit(ctx, tutor.Name, fmt.Sprintf("Average hours since submission: %d", avg))
		}
	}
	return types.TutorStatusChecked
}

func (x *Checker) logItemError(ctx context.Context, tutor *model.Tutor, err error) {
	if errors.Is(err, canvas.ErrSubmissionTimeout) || errors.Is(err, canvas.ErrSelectionTimeout) {
		x.reporter.LogAt(ctx, slog.LevelWarn, string(tutor.Name),
			fmt.Sprintf("COULD NOT CHECK ASSIGNMENT (Timed out waiting for page to load): %s", x.session.Title(ctx)))
		return
	}
	x.reporter.LogAt(ctx, slog.LevelError, string(tutor.Name), fmt.Sprintf("Error checking assignment: %v", err))
}

func (x *Checker) checkItem(ctx context.Context, tutor *model.Tutor, item model.DashboardItem) error {
	if err := x.session.Open(ctx, item.URL); err != nil {
		return err
	}

	raw, err := x.session.WaitForSubmission(ctx)
	if err != nil {
		return err
	}

	if item.Submissions == 1 {
		return x.classify(ctx, tutor, raw)
	}
	return x.checkStudents(ctx, tutor, raw)
}

// checkStudents walks the student dropdown of an assignment with several
// submissions. raw is the timestamp already shown for the displayed student.
func (x *Checker) checkStudents(ctx context.Context, tutor *model.Tutor, raw string) error {
	if err := x.session.OpenStudentDropdown(ctx); err != nil {
		return err
	}
	displayed, err := x.session.CurrentStudent(ctx)
	if err != nil {
		return err
	}

	seen := make(map[string]struct{})
	for i := 0; ; i++ {
		names, err := x.session.PendingStudents(ctx)
		if err != nil {
			return err
		}
		if i >= len(names) {
			return nil
		}

		name := names[i]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		if name == displayed {
			if err := x.classify(ctx, tutor, raw); err != nil {
				return err
			}
			continue
		}

		displayed = ""
		if err := x.selectAndClassify(ctx, tutor, i, name, &raw); err != nil {
			if !errors.Is(err, canvas.ErrSubmissionTimeout) && !errors.Is(err, canvas.ErrSelectionTimeout) {
				return err
			}
			x.logItemError(ctx, tutor, err)
		} else {
			displayed = name
		}

		// selecting reloads the page and closes the dropdown
		if err := x.session.OpenStudentDropdown(ctx); err != nil {
			return err
		}
	}
}

func (x *Checker) selectAndClassify(ctx context.Context, tutor *model.Tutor, index int, name string, raw *string) error {
	if err := x.session.SelectStudent(ctx, index, name); err != nil {
		return err
	}
	text, err := x.session.WaitForSubmission(ctx)
	if err != nil {
		return err
	}
	*raw = text
	return x.classify(ctx, tutor, text)
}

// classify measures one submission and records it. Unparseable timestamps
// are logged and ignored.
func (x *Checker) classify(ctx context.Context, tutor *model.Tutor, raw string) error {
	elapsed, err := model.MeasureSubmission(raw, x.clock.Now())
	if err != nil {
		switch {
		case errors.Is(err, model.ErrSubmissionMissing):
			x.reporter.Log(ctx, "Warning", "Could not calculate time since submission: Assignment is marked MISSING")
		case errors.Is(err, model.ErrNoSubmissionTime):
			x.reporter.Log(ctx, "Warning", "Could not calculate time since submission: No submission time")
		default:
			x.reporter.Log(ctx, "Error", fmt.Sprintf("Could not calculate time since submission. Date string: %s", raw))
		}
		return nil
	}

	if !elapsed.Valid() {
		// a submission time later than now, e.g. a December date read in January
		ctxlog.From(ctx).Debug("skipping submission with negative elapsed time",
			"tutor", tutor.Name,
			"raw", raw,
			"hours", elapsed.Hours,
			"days", elapsed.Days,
		)
		return nil
	}

	overdue := x.policy.IsOverdue(elapsed)
	if overdue {
		if err := x.clock.Sleep(ctx, overdueSettle); err != nil {
			return goerr.Wrap(err, "interrupted before screenshot")
		}
	}

	if err := tutor.AddAssignment(elapsed, overdue, x.policy.Unit); err != nil {
		return err
	}

	if overdue {
		path := x.reporter.ScreenshotPath(tutor.Name, tutor.OverdueCount())
		if err := x.session.Screenshot(ctx, path); err != nil {
			x.reporter.Log(ctx, "Error", fmt.Sprintf("Could not take screenshot: %v", err))
		}
	}
	return nil
}
