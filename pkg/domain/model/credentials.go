package model

import (
	"log/slog"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Credentials are the administrator login for Canvas
type Credentials struct {
	Username string
	Password string
}

// LogValue hides the password
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("username", c.Username),
		slog.Bool("has_password", c.Password != ""),
	)
}

// LoadCredentialsFromFile reads a two-line account file: username, then password
func LoadCredentialsFromFile(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "account file could not be loaded",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read account file",
			goerr.V("path", path))
	}

	creds, err := ParseCredentials(string(data))
	if err != nil {
		return nil, goerr.Wrap(err, "invalid account file", goerr.V("path", path))
	}
	return creds, nil
}

// ParseCredentials parses the account file content
func ParseCredentials(content string) (*Credentials, error) {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	if len(lines) < 2 {
		return nil, goerr.New("username or password not found in account file")
	}

	creds := &Credentials{
		Username: strings.TrimSpace(lines[0]),
		Password: strings.TrimSpace(lines[1]),
	}
	if creds.Username == "" || creds.Password == "" {
		return nil, goerr.New("username or password not found in account file")
	}
	return creds, nil
}
