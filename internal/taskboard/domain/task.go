package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/taskboard/pkg/idx"
)

const MaxTaskNameLength = 255

var ErrInvalidTaskName = errors.New("domain: task name must be 1 to 255 characters")

type Task struct {
	ID        string
	Name      string
	CreatedBy string
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTask trims name and stamps createdBy as both author and last editor.
func NewTask(name, createdBy string) (Task, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxTaskNameLength {
		return Task{}, ErrInvalidTaskName
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	return Task{
		ID:        idx.NewAt(now).String(),
		Name:      name,
		CreatedBy: createdBy,
		UpdatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
