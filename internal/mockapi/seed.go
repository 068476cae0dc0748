package mockapi

import "github.com/spec-kit/ticket-dashboard/internal/domain"

// Seed fills the store with sample users and tickets.
func Seed(s *Store) {
	s.SetUsers([]domain.User{
		{ID: 1, Name: "Alice Martin", Email: "alice@example.com", Role: domain.UserRoleAdmin},
		{ID: 2, Name: "Bruno Diaz", Email: "bruno@example.com", Role: domain.UserRoleAgent},
		{ID: 3, Name: "Chloe Petit", Email: "chloe@example.com", Role: domain.UserRoleUser},
	})

	agent := int64(2)
	samples := []domain.NewTicket{
		{Title: "Login page returns 500", Description: "Users cannot sign in since the last deploy.", Priority: domain.TicketPriorityCritical, CreatedBy: 3, AssignedTo: &agent, Assignee: "Bruno Diaz", Category: "Bug Report"},
		{Title: "Export tickets to CSV", Description: "Add an export button on the tickets list.", Priority: domain.TicketPriorityLow, CreatedBy: 3, Category: "Feature Request"},
		{Title: "Slow dashboard", Description: "Dashboard takes several seconds to load.", Status: domain.TicketStatusPending, Priority: domain.TicketPriorityHigh, CreatedBy: 1, AssignedTo: &agent, Assignee: "Bruno Diaz", Category: "Performance"},
		{Title: "Update API documentation", Description: "Document the attachments endpoints.", Status: domain.TicketStatusClosed, Priority: domain.TicketPriorityMedium, CreatedBy: 1, Category: "Documentation"},
	}
	for _, in := range samples {
		if t, err := s.CreateTicket(in); err == nil && t.ID == 1 {
			_, _ = s.AddComment(t.ID, "Reproduced on staging, looking into it.", "Bruno Diaz")
		}
	}
}
