package usecase_test

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/coffeepanda/dashcheck/pkg/domain/interfaces"
)

// fakeCanvas is a scripted Canvas instance behind the Browser capability.
// It recognises the selectors the canvas package sends by their distinctive
// fragments.
type fakeCanvas struct {
	mu sync.Mutex

	base      string
	users     map[int64]*fakeUser
	pages     map[string]*fakeAssignment
	actingAs  int64
	pendingID int64
	page      string
	current   *fakeAssignment

	reverts     int
	screenshots []string
}

type fakeUser struct {
	noPermission bool
	panics       bool
	items        []*fakeAssignment
}

type fakeAssignment struct {
	url         string
	title       string
	submissions []fakeSubmission
	noLoad      bool
	selected    int
	// the header never switches to this student
	stuck string
}

type fakeSubmission struct {
	student string
	raw     string
}

func newFakeCanvas(base string) *fakeCanvas {
	return &fakeCanvas{
		base:  base,
		users: make(map[int64]*fakeUser),
		pages: make(map[string]*fakeAssignment),
	}
}

func (f *fakeCanvas) addUser(id int64, user *fakeUser) {
	f.users[id] = user
	for _, a := range user.items {
		f.pages[a.url] = a
	}
}

func (f *fakeCanvas) user() *fakeUser {
	return f.users[f.actingAs]
}

func (f *fakeCanvas) Navigate(ctx context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if strings.HasSuffix(url, "/masquerade") {
		parts := strings.Split(strings.TrimPrefix(url, f.base+"/users/"), "/")
		id, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return err
		}
		f.page = "masquerade"
		f.pendingID = id
		return nil
	}
	if a, ok := f.pages[url]; ok {
		f.page = "assignment"
		f.current = a
		a.selected = 0
		return nil
	}
	f.page = "other"
	return nil
}

func (f *fakeCanvas) WaitPresent(ctx context.Context, selector string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case strings.Contains(selector, "'Proceed'"):
		u, ok := f.users[f.pendingID]
		if f.page != "masquerade" || !ok || u.noPermission {
			return interfaces.ErrElementNotFound
		}
	case strings.Contains(selector, "coming_up"):
		if f.page != "dashboard" {
			return interfaces.ErrElementNotFound
		}
	case strings.Contains(selector, "todo-badge"):
		if f.page != "dashboard" || f.user() == nil || len(f.user().items) == 0 {
			return interfaces.ErrElementNotFound
		}
	}
	return nil
}

func (f *fakeCanvas) WaitClickable(ctx context.Context, selector string) error {
	return nil
}

func (f *fakeCanvas) Click(ctx context.Context, selector string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case strings.Contains(selector, "'Proceed'"):
		f.actingAs = f.pendingID
		f.page = "dashboard"
	case strings.Contains(selector, "Stop acting as user"):
		if f.actingAs == 0 {
			return interfaces.ErrElementNotFound
		}
		f.actingAs = 0
		f.reverts++
		f.page = "dashboard"
	}
	return nil
}

func (f *fakeCanvas) ClickNth(ctx context.Context, selector string, index int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.current == nil || index >= len(f.current.submissions) {
		return interfaces.ErrElementNotFound
	}
	if f.current.submissions[index].student == f.current.stuck {
		return nil
	}
	f.current.selected = index
	return nil
}

func (f *fakeCanvas) Input(ctx context.Context, selector, text string) error {
	return nil
}

func (f *fakeCanvas) Text(ctx context.Context, selector string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	a := f.current
	if f.page != "assignment" || a == nil || a.noLoad {
		return "", interfaces.ErrElementNotFound
	}
	switch {
	case strings.Contains(selector, "multiple_submissions"):
		if len(a.submissions) != 1 {
			return "", interfaces.ErrElementNotFound
		}
		return "Submitted:\n" + a.submissions[0].raw, nil
	case strings.Contains(selector, "ui-selectmenu-status"):
		return a.submissions[a.selected].student, nil
	}
	return "", interfaces.ErrElementNotFound
}

func (f *fakeCanvas) Texts(ctx context.Context, selector string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case strings.Contains(selector, "todo-badge"):
		var spans []string
		for _, a := range f.user().items {
			n := len(a.submissions)
			spans = append(spans, strconv.Itoa(n), fmt.Sprintf("%d need marking", n))
		}
		return spans, nil
	case strings.Contains(selector, "not_graded"):
		if f.current == nil {
			return nil, nil
		}
		var names []string
		for _, s := range f.current.submissions {
			names = append(names, s.student)
		}
		return names, nil
	}
	return nil, nil
}

func (f *fakeCanvas) Attributes(ctx context.Context, selector, name string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var urls []string
	for _, a := range f.user().items {
		urls = append(urls, a.url)
	}
	return urls, nil
}

func (f *fakeCanvas) SelectedOption(ctx context.Context, selector string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	a := f.current
	if f.page != "assignment" || a == nil || a.noLoad || len(a.submissions) < 2 {
		return "", interfaces.ErrElementNotFound
	}
	return a.submissions[a.selected].raw, nil
}

func (f *fakeCanvas) Title(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.page {
	case "dashboard":
		return "Dashboard", nil
	case "assignment":
		return f.current.title, nil
	}
	return "Canvas", nil
}

func (f *fakeCanvas) Source(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u := f.user()
	if u != nil && u.panics {
		panic("renderer crashed")
	}
	if u != nil && len(u.items) > 0 {
		return `<div class="events_list coming_up"></div><h2 class="todo-list-header">To Do</h2>`, nil
	}
	return `<div class="events_list coming_up"></div>`, nil
}

func (f *fakeCanvas) Screenshot(ctx context.Context, path string) error {
	f.mu.Lock()
	f.screenshots = append(f.screenshots, path)
	f.mu.Unlock()
	return os.WriteFile(path, []byte("png"), 0o644)
}

func (f *fakeCanvas) Close() error {
	return nil
}
