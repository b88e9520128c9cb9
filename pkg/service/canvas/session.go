package canvas

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/coffeepanda/dashcheck/pkg/domain/interfaces"
	"github.com/coffeepanda/dashcheck/pkg/domain/model"
	"github.com/coffeepanda/dashcheck/pkg/domain/types"
	"github.com/coffeepanda/dashcheck/pkg/utils/clock"
	"github.com/coffeepanda/dashcheck/pkg/utils/poll"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrLoginRejected       = goerr.New("username or password incorrect, or browser timed out")
	ErrNoPermission        = goerr.New("no permission to act as user")
	ErrImpersonationFailed = goerr.New("could not act as user")
	ErrSubmissionTimeout   = goerr.New("timed out waiting for page to load")
	ErrSelectionTimeout    = goerr.New("timed out waiting for student selection")
)

const (
	dropdownSettle = 1500 * time.Millisecond
	revertSettle   = 500 * time.Millisecond
)

// Session drives one Canvas browser session
type Session struct {
	browser interfaces.Browser
	baseURL string
	clock   clock.Clock
	wait    poll.Policy
}

// New creates a session. timeoutSeconds bounds every polling wait, one
// attempt per second.
func New(browser interfaces.Browser, baseURL string, clk clock.Clock, timeoutSeconds int) *Session {
	return &Session{
		browser: browser,
		baseURL: strings.TrimRight(baseURL, "/"),
		clock:   clk,
		wait:    poll.PerSecond(timeoutSeconds),
	}
}

// Title returns the current page title, or an empty string when unreadable
func (s *Session) Title(ctx context.Context) string {
	title, err := s.browser.Title(ctx)
	if err != nil {
		ctxlog.From(ctx).Debug("failed to read page title", "error", err)
		return ""
	}
	return title
}

func (s *Session) waitForTitle(ctx context.Context, want string) error {
	return poll.Until(ctx, s.clock, s.wait, func(ctx context.Context, _ int) (bool, error) {
		title, err := s.browser.Title(ctx)
		if err != nil {
			return false, nil
		}
		return title == want, nil
	})
}

// Login signs in to Canvas with the administrator account
func (s *Session) Login(ctx context.Context, creds *model.Credentials) error {
	if err := s.browser.Navigate(ctx, s.baseURL+"/login/canvas"); err != nil {
		return goerr.Wrap(err, "failed to open login page")
	}

	for _, sel := range []string{selUsername, selPassword} {
		if err := s.browser.WaitPresent(ctx, sel); err != nil {
			return goerr.Wrap(ErrLoginRejected, "login form not found", goerr.V("cause", err.Error()))
		}
	}
	if err := s.browser.WaitClickable(ctx, selLoginButton); err != nil {
		return goerr.Wrap(ErrLoginRejected, "login button not found", goerr.V("cause", err.Error()))
	}

	if err := s.browser.Input(ctx, selUsername, creds.Username); err != nil {
		return goerr.Wrap(err, "failed to fill username")
	}
	if err := s.browser.Input(ctx, selPassword, creds.Password); err != nil {
		return goerr.Wrap(err, "failed to fill password")
	}
	if err := s.browser.Click(ctx, selLoginButton); err != nil {
		return goerr.Wrap(err, "failed to submit login form")
	}

	if err := s.waitForTitle(ctx, dashboardTitle); err != nil {
		return goerr.Wrap(ErrLoginRejected, "dashboard did not load after login",
			goerr.V("username", creds.Username),
			goerr.V("title", s.Title(ctx)))
	}
	return nil
}

// ActAs impersonates a tutor. The returned Impersonation must be reverted.
func (s *Session) ActAs(ctx context.Context, tutor *model.Tutor) (*Impersonation, error) {
	url := fmt.Sprintf("%s/users/%s/masquerade", s.baseURL, tutor.ID)
	if err := s.browser.Navigate(ctx, url); err != nil {
		return nil, goerr.Wrap(err, "failed to open masquerade page", goerr.V("tutor", tutor.Name))
	}

	if err := s.browser.WaitPresent(ctx, selProceed); err != nil {
		return nil, goerr.Wrap(ErrNoPermission, "proceed link not found", goerr.V("tutor", tutor.Name))
	}
	if err := s.browser.Click(ctx, selProceed); err != nil {
		return nil, goerr.Wrap(ErrNoPermission, "could not click proceed", goerr.V("tutor", tutor.Name))
	}

	imp := &Impersonation{session: s, tutor: tutor.Name}
	if err := s.waitForTitle(ctx, dashboardTitle); err != nil {
		// masquerade may be active even though the dashboard did not load
		_ = imp.Revert(ctx)
		return nil, goerr.Wrap(ErrImpersonationFailed, "dashboard did not load",
			goerr.V("tutor", tutor.Name),
			goerr.V("title", s.Title(ctx)))
	}
	return imp, nil
}

// Impersonation is an active "act as" session for one tutor
type Impersonation struct {
	session  *Session
	tutor    types.TutorName
	reverted bool
}

// Tutor returns the impersonated tutor
func (i *Impersonation) Tutor() types.TutorName {
	return i.tutor
}

// Revert stops acting as the tutor. Calling it more than once is a no-op.
// A missing stop link means the admin was acting as themselves.
func (i *Impersonation) Revert(ctx context.Context) error {
	if i.reverted {
		return nil
	}
	i.reverted = true

	err := i.session.browser.Click(ctx, selStopActing)
	if errors.Is(err, interfaces.ErrElementNotFound) {
		return nil
	}
	if err != nil {
		return goerr.Wrap(err, "failed to stop acting as user", goerr.V("tutor", i.tutor))
	}
	return i.session.clock.Sleep(ctx, revertSettle)
}

// DashboardHasAssignments waits for the dashboard and reports whether it
// lists anything to mark
func (s *Session) DashboardHasAssignments(ctx context.Context) (bool, error) {
	if err := s.browser.WaitPresent(ctx, selComingUp); err != nil {
		return false, goerr.Wrap(err, "dashboard did not load")
	}

	src, err := s.browser.Source(ctx)
	if err != nil {
		return false, goerr.Wrap(err, "failed to read dashboard source")
	}
	return strings.Contains(src, todoListMarker), nil
}

// DashboardAssignments expands the to-do list and returns each entry with
// its submission count
func (s *Session) DashboardAssignments(ctx context.Context) ([]model.DashboardItem, error) {
	moreTexts, err := s.browser.Texts(ctx, selMoreLinks)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read to-do list links")
	}
	for _, t := range moreTexts {
		if !strings.Contains(t, "more...") {
			continue
		}
		if err := s.browser.Click(ctx, selMoreButton); err != nil && !errors.Is(err, interfaces.ErrElementNotFound) {
			return nil, goerr.Wrap(err, "failed to expand to-do list")
		}
	}

	if err := s.browser.WaitPresent(ctx, selTodoBadge); err != nil {
		return nil, goerr.Wrap(err, "to-do badges not found")
	}
	badges, err := s.browser.Texts(ctx, selTodoBadge)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read to-do badges")
	}

	// each badge renders two spans; the first holds the count
	var counts []int
	for i := 0; i < len(badges); i += 2 {
		counts = append(counts, parseBadgeCount(badges[i]))
	}

	urls, err := s.browser.Attributes(ctx, selTodoLinks, "href")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read to-do links")
	}

	items := make([]model.DashboardItem, 0, len(urls))
	for i, url := range urls {
		item := model.DashboardItem{URL: url}
		if i < len(counts) {
			item.Submissions = counts[i]
		}
		items = append(items, item)
	}
	return items, nil
}

func parseBadgeCount(text string) int {
	text = strings.TrimSpace(text)
	end := strings.IndexFunc(text, func(r rune) bool { return !unicode.IsDigit(r) })
	if end < 0 {
		end = len(text)
	}
	n, err := strconv.Atoi(text[:end])
	if err != nil {
		return 0
	}
	return n
}

// Open navigates to an assignment page
func (s *Session) Open(ctx context.Context, url string) error {
	if err := s.browser.Navigate(ctx, url); err != nil {
		return goerr.Wrap(err, "failed to open assignment", goerr.V("url", url))
	}
	return nil
}

// WaitForSubmission polls once a second until the submission timestamp is
// shown, either in the submission selector or the single-submission block
func (s *Session) WaitForSubmission(ctx context.Context) (string, error) {
	var text string
	err := poll.Until(ctx, s.clock, s.wait, func(ctx context.Context, _ int) (bool, error) {
		text = s.readSubmission(ctx)
		return text != "", nil
	})
	if errors.Is(err, poll.ErrTimeout) {
		return "", goerr.Wrap(ErrSubmissionTimeout, "submission time not shown",
			goerr.V("title", s.Title(ctx)))
	}
	if err != nil {
		return "", err
	}
	return text, nil
}

func (s *Session) readSubmission(ctx context.Context) string {
	if text, err := s.browser.SelectedOption(ctx, selSubmissionSelect); err == nil && strings.TrimSpace(text) != "" {
		return text
	}
	if text, err := s.browser.Text(ctx, selMultipleSubmissions); err == nil && strings.TrimSpace(text) != "" {
		return text
	}
	return ""
}

// OpenStudentDropdown opens the student selector. It closes again after any
// selection that reloads the page.
func (s *Session) OpenStudentDropdown(ctx context.Context) error {
	if err := s.browser.Click(ctx, selStudentToggle); err != nil {
		return goerr.Wrap(err, "failed to open student dropdown")
	}
	return s.clock.Sleep(ctx, dropdownSettle)
}

// CurrentStudent returns the name of the student being displayed
func (s *Session) CurrentStudent(ctx context.Context) (string, error) {
	name, err := s.browser.Text(ctx, selCurrentStudent)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read current student")
	}
	return strings.TrimSpace(name), nil
}

// PendingStudents lists the ungraded entries of the open dropdown, in order.
// Names may repeat.
func (s *Session) PendingStudents(ctx context.Context) ([]string, error) {
	names, err := s.browser.Texts(ctx, selPendingStudentName)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read pending students")
	}
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	return names, nil
}

// SelectStudent clicks the index-th pending entry and waits until the page
// shows that student
func (s *Session) SelectStudent(ctx context.Context, index int, name string) error {
	if err := s.browser.ClickNth(ctx, selPendingStudent, index); err != nil {
		return goerr.Wrap(err, "failed to select student",
			goerr.V("index", index),
			goerr.V("student", name))
	}

	err := poll.Until(ctx, s.clock, s.wait, func(ctx context.Context, _ int) (bool, error) {
		current, err := s.CurrentStudent(ctx)
		if err != nil {
			return false, nil
		}
		return current == name, nil
	})
	if errors.Is(err, poll.ErrTimeout) {
		return goerr.Wrap(ErrSelectionTimeout, "page did not switch student",
			goerr.V("student", name),
			goerr.V("title", s.Title(ctx)))
	}
	return err
}

// Screenshot captures the current page to path
func (s *Session) Screenshot(ctx context.Context, path string) error {
	if err := s.browser.Screenshot(ctx, path); err != nil {
		return goerr.Wrap(err, "could not take screenshot", goerr.V("path", path))
	}
	return nil
}
