package browser

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/coffeepanda/dashcheck/pkg/domain/interfaces"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Options configures the launched Chromium instance
type Options struct {
	Headless bool
	Bin      string // empty uses the browser managed by rod
	Timeout  time.Duration
	Width    int
	Height   int
}

// DefaultOptions matches the window the Canvas selectors were written against
func DefaultOptions() Options {
	return Options{
		Headless: true,
		Timeout:  10 * time.Second,
		Width:    1920,
		Height:   1080,
	}
}

// Rod implements interfaces.Browser on a single go-rod page
type Rod struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
	timeout  time.Duration
}

var _ interfaces.Browser = (*Rod)(nil)

// Launch starts Chromium and opens the page every call works on
func Launch(ctx context.Context, opts Options) (*Rod, error) {
	logger := ctxlog.From(ctx)

	l := launcher.New().
		Context(ctx).
		Headless(opts.Headless).
		Set("ignore-certificate-errors").
		Set("ignore-ssl-errors").
		Set("incognito").
		Set(flags.Flag("window-size"), windowSize(opts))
	if opts.Bin != "" {
		l = l.Bin(opts.Bin)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, goerr.Wrap(err, "could not initialise browser",
			goerr.V("bin", opts.Bin),
			goerr.V("headless", opts.Headless))
	}

	b := rod.New().ControlURL(controlURL).Context(ctx)
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, goerr.Wrap(err, "could not connect to browser")
	}

	page, err := b.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = b.Close()
		l.Kill()
		return nil, goerr.Wrap(err, "could not open browser page")
	}

	logger.Debug("browser launched", "control_url", controlURL, "timeout", opts.Timeout)

	return &Rod{
		launcher: l,
		browser:  b,
		page:     page,
		timeout:  opts.Timeout,
	}, nil
}

func windowSize(opts Options) string {
	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		w, h = 1920, 1080
	}
	return strconv.Itoa(w) + "," + strconv.Itoa(h)
}

// bounded returns the page bound to ctx with the session timeout applied
func (r *Rod) bounded(ctx context.Context) (*rod.Page, func()) {
	p := r.page.Context(ctx).Timeout(r.timeout)
	return p, func() { p.CancelTimeout() }
}

// find looks an element up without waiting
func (r *Rod) find(ctx context.Context, selector string) (*rod.Element, error) {
	has, el, err := r.page.Context(ctx).HasX(selector)
	if err != nil {
		return nil, goerr.Wrap(err, "element lookup failed", goerr.V("selector", selector))
	}
	if !has {
		return nil, goerr.Wrap(interfaces.ErrElementNotFound, "no match", goerr.V("selector", selector))
	}
	return el, nil
}

func (r *Rod) findAll(ctx context.Context, selector string) (rod.Elements, error) {
	els, err := r.page.Context(ctx).ElementsX(selector)
	if err != nil {
		return nil, goerr.Wrap(err, "element lookup failed", goerr.V("selector", selector))
	}
	return els, nil
}

func notFoundOnTimeout(err error, selector string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return goerr.Wrap(interfaces.ErrElementNotFound, "timed out waiting for element",
			goerr.V("selector", selector))
	}
	return goerr.Wrap(err, "wait for element failed", goerr.V("selector", selector))
}

// Navigate loads url and waits for the load event
func (r *Rod) Navigate(ctx context.Context, url string) error {
	p, cancel := r.bounded(ctx)
	defer cancel()

	if err := p.Navigate(url); err != nil {
		return goerr.Wrap(err, "navigation failed", goerr.V("url", url))
	}
	if err := p.WaitLoad(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			// slow pages are handled by the element waits that follow
			ctxlog.From(ctx).Debug("page load wait timed out", "url", url)
			return nil
		}
		return goerr.Wrap(err, "waiting for page load failed", goerr.V("url", url))
	}
	return nil
}

// WaitPresent waits until selector matches an element
func (r *Rod) WaitPresent(ctx context.Context, selector string) error {
	p, cancel := r.bounded(ctx)
	defer cancel()

	if _, err := p.ElementX(selector); err != nil {
		return notFoundOnTimeout(err, selector)
	}
	return nil
}

// WaitClickable waits until selector matches a visible, enabled element
func (r *Rod) WaitClickable(ctx context.Context, selector string) error {
	p, cancel := r.bounded(ctx)
	defer cancel()

	el, err := p.ElementX(selector)
	if err != nil {
		return notFoundOnTimeout(err, selector)
	}
	if err := el.WaitVisible(); err != nil {
		return notFoundOnTimeout(err, selector)
	}
	if err := el.WaitEnabled(); err != nil {
		return notFoundOnTimeout(err, selector)
	}
	return nil
}

// Click clicks the first match
func (r *Rod) Click(ctx context.Context, selector string) error {
	el, err := r.find(ctx, selector)
	if err != nil {
		return err
	}
	return r.click(ctx, el, selector)
}

// ClickNth clicks the index-th match, counting from zero
func (r *Rod) ClickNth(ctx context.Context, selector string, index int) error {
	els, err := r.findAll(ctx, selector)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(els) {
		return goerr.Wrap(interfaces.ErrElementNotFound, "no match at index",
			goerr.V("selector", selector),
			goerr.V("index", index),
			goerr.V("matches", len(els)))
	}
	return r.click(ctx, els[index], selector)
}

func (r *Rod) click(ctx context.Context, el *rod.Element, selector string) error {
	bounded := el.Context(ctx).Timeout(r.timeout)
	defer bounded.CancelTimeout()

	if err := bounded.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return goerr.Wrap(err, "click failed", goerr.V("selector", selector))
	}
	return nil
}

// Input types text into the first match
func (r *Rod) Input(ctx context.Context, selector, text string) error {
	el, err := r.find(ctx, selector)
	if err != nil {
		return err
	}
	if err := el.Input(text); err != nil {
		return goerr.Wrap(err, "input failed", goerr.V("selector", selector))
	}
	return nil
}

// Text returns the rendered text of the first match
func (r *Rod) Text(ctx context.Context, selector string) (string, error) {
	el, err := r.find(ctx, selector)
	if err != nil {
		return "", err
	}
	text, err := el.Text()
	if err != nil {
		return "", goerr.Wrap(err, "reading text failed", goerr.V("selector", selector))
	}
	return text, nil
}

// Texts returns the rendered text of every match
func (r *Rod) Texts(ctx context.Context, selector string) ([]string, error) {
	els, err := r.findAll(ctx, selector)
	if err != nil {
		return nil, err
	}

	texts := make([]string, 0, len(els))
	for _, el := range els {
		text, err := el.Text()
		if err != nil {
			return nil, goerr.Wrap(err, "reading text failed", goerr.V("selector", selector))
		}
		texts = append(texts, text)
	}
	return texts, nil
}

// Attributes returns a DOM property of every match, falling back to the
// attribute of the same name. Properties give resolved values such as
// absolute hrefs.
func (r *Rod) Attributes(ctx context.Context, selector, name string) ([]string, error) {
	els, err := r.findAll(ctx, selector)
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(els))
	for _, el := range els {
		prop, err := el.Property(name)
		if err == nil && !prop.Nil() {
			values = append(values, prop.Str())
			continue
		}
		attr, err := el.Attribute(name)
		if err != nil {
			return nil, goerr.Wrap(err, "reading attribute failed",
				goerr.V("selector", selector),
				goerr.V("name", name))
		}
		if attr == nil {
			values = append(values, "")
		} else {
			values = append(values, *attr)
		}
	}
	return values, nil
}

// SelectedOption returns the text of the selected option of a <select>
func (r *Rod) SelectedOption(ctx context.Context, selector string) (string, error) {
	el, err := r.find(ctx, selector)
	if err != nil {
		return "", err
	}

	res, err := el.Eval(`() => {
		const opt = this.options && this.options[this.selectedIndex];
		return opt ? opt.text : "";
	}`)
	if err != nil {
		return "", goerr.Wrap(err, "reading selected option failed", goerr.V("selector", selector))
	}
	return res.Value.Str(), nil
}

// Title returns the document title
func (r *Rod) Title(ctx context.Context) (string, error) {
	info, err := r.page.Context(ctx).Info()
	if err != nil {
		return "", goerr.Wrap(err, "reading page title failed")
	}
	return info.Title, nil
}

// Source returns the current document HTML
func (r *Rod) Source(ctx context.Context) (string, error) {
	html, err := r.page.Context(ctx).HTML()
	if err != nil {
		return "", goerr.Wrap(err, "reading page source failed")
	}
	return html, nil
}

// Screenshot saves a PNG of the viewport to path
func (r *Rod) Screenshot(ctx context.Context, path string) error {
	p, cancel := r.bounded(ctx)
	defer cancel()

	img, err := p.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return goerr.Wrap(err, "capturing screenshot failed", goerr.V("path", path))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return goerr.Wrap(err, "creating screenshot directory failed", goerr.V("path", path))
	}
	if err := os.WriteFile(path, img, 0o644); err != nil {
		return goerr.Wrap(err, "writing screenshot failed", goerr.V("path", path))
	}
	return nil
}

// Close shuts the browser down
func (r *Rod) Close() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
	}
	if r.launcher != nil {
		r.launcher.Kill()
	}
	if err != nil {
		return goerr.Wrap(err, "closing browser failed")
	}
	return nil
}
