package ui

import "jiractl/internal/domain"

// Session is what the interactive loop remembers between actions:
// the current user and the board used for the last ticket creation.
type Session struct {
	ActiveSprint  *domain.Sprint
	Board         *domain.Board
	Boards        []domain.Board
	CurrentUser   *domain.User
	FutureSprints []domain.Sprint
	Project       *domain.Project
}

// clearBoard forgets the selected board and everything loaded from it
func (s *Session) clearBoard() {
	s.ActiveSprint = nil
	s.Board = nil
	s.FutureSprints = nil
	s.Project = nil
}
