// Package clipboard places the rendered Markdown document on the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
)

// Copier copies textual data to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Service implements Copier using github.com/atotto/clipboard.
type Service struct{}

// NewService constructs a clipboard service.
func NewService() *Service {
	return &Service{}
}

// Copy writes text to the system clipboard. Empty text leaves the clipboard untouched.
func (service *Service) Copy(text string) error {
	if text == "" {
		return nil
	}
	return clipboard.WriteAll(text)
}

var _ Copier = (*Service)(nil)
