package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/taskboard/pkg/idx"
)

const MaxProjectNameLength = 255

var ErrInvalidProjectName = errors.New("domain: project name must be 1 to 255 characters")

type Project struct {
	ID        string
	Name      string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewProject(name, createdBy string) (Project, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxProjectNameLength {
		return Project{}, ErrInvalidProjectName
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	return Project{
		ID:        idx.NewAt(now).String(),
		Name:      name,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ProjectMember links a user to a project they can see.
type ProjectMember struct {
	ID        string
	ProjectID string
	UserID    string
	CreatedAt time.Time
}

func NewProjectMember(projectID, userID string) ProjectMember {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return ProjectMember{
		ID:        idx.NewAt(now).String(),
		ProjectID: projectID,
		UserID:    userID,
		CreatedAt: now,
	}
}

// ProjectPage is one page of a member's projects.
type ProjectPage struct {
	Projects   []Project
	Page       int
	Limit      int
	Total      int
	TotalPages int
}
