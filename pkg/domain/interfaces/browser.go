package interfaces

//go:generate moq -out mocks/browser_mock.go -pkg mocks . Browser

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
)

// ErrElementNotFound is returned when a selector matches nothing, either
// immediately or within the bounded wait
var ErrElementNotFound = goerr.New("element not found")

// Browser is the capability set the checker needs from a browser session.
// Selectors are XPath expressions. Only WaitPresent and WaitClickable block,
// bounded by the session timeout; every other lookup is immediate.
type Browser interface {
	Navigate(ctx context.Context, url string) error
	WaitPresent(ctx context.Context, selector string) error
	WaitClickable(ctx context.Context, selector string) error

	Click(ctx context.Context, selector string) error
	ClickNth(ctx context.Context, selector string, index int) error
	Input(ctx context.Context, selector, text string) error

	Text(ctx context.Context, selector string) (string, error)
	Texts(ctx context.Context, selector string) ([]string, error)
	Attributes(ctx context.Context, selector, name string) ([]string, error)
	SelectedOption(ctx context.Context, selector string) (string, error)

	Title(ctx context.Context) (string, error)
	Source(ctx context.Context) (string, error)
	Screenshot(ctx context.Context, path string) error

	Close() error
}
