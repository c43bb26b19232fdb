// Package tab supplies the URL of the "active tab" the popup reports on.
package tab

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrNoActiveTab is returned when a provider has no URL to offer.
var ErrNoActiveTab = errors.New("no active tab")

// Provider returns the URL of the foreground tab.
type Provider interface {
	ActiveTabURL(ctx context.Context) (string, error)
}

// Static always reports the same URL.
type Static string

func (s Static) ActiveTabURL(context.Context) (string, error) {
	return string(s), nil
}

// Clipboard reads the URL from the system clipboard, which is where a browser
// "copy link" puts it.
type Clipboard struct {
	read func() (string, error)
}

// NewClipboard creates a clipboard-backed provider.
func NewClipboard() *Clipboard {
	if clipboard.Unsupported {
		return &Clipboard{read: func() (string, error) {
			return "", errors.New("clipboard unsupported on this system")
		}}
	}
	return &Clipboard{read: clipboard.ReadAll}
}

func (c *Clipboard) ActiveTabURL(context.Context) (string, error) {
	text, err := c.read()
	if err != nil {
		return "", fmt.Errorf("reading clipboard: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: clipboard is empty", ErrNoActiveTab)
	}
	return text, nil
}

// Reader takes the first non-blank line of an input stream, e.g. stdin.
type Reader struct {
	r io.Reader
}

// NewReader creates a provider reading from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

func (p *Reader) ActiveTabURL(ctx context.Context) (string, error) {
	sc := bufio.NewScanner(p.r)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("reading tab URL: %w", err)
	}
	return "", ErrNoActiveTab
}
