// Package demo supplies the deterministic fallback datasets shown when live
// data is absent or the backend is unreachable. The datasets are
// presentational only: callers must never write them into a store or send
// them to the backend.
package demo

import (
	"time"

	"github.com/opsdesk/console/internal/types"
)

func at(value string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		panic(err)
	}
	return t
}

func atp(value string) *time.Time {
	t := at(value)
	return &t
}

func id(v int64) *int64 { return &v }

// Metrics returns the fallback dashboard aggregate.
func Metrics() types.DashboardMetrics {
	return types.DashboardMetrics{
		TotalEmails:         1247,
		EmailsProcessed:     1138,
		EmailsPending:       109,
		TotalTickets:        342,
		TicketsOpen:         87,
		TicketsClosed:       255,
		TotalTimesheets:     468,
		TimesheetsPending:   23,
		TimesheetsApproved:  445,
		HoursLoggedThisWeek: 187.5,
	}
}

// Emails returns the fallback inbound email list.
func Emails() []types.Email {
	return []types.Email{
		{
			ID:             1,
			Subject:        "System downtime issue - Production server",
			Sender:         "john.doe@company.com",
			Recipient:      "support@company.com",
			ReceivedDate:   at("2025-10-30T14:30:00"),
			Body:           "We are experiencing system downtime on the production server. Please investigate immediately.",
			Status:         types.EmailTicketCreated,
			HasAttachments: true,
		},
		{
			ID:           2,
			Subject:      "Password reset request",
			Sender:       "jane.smith@company.com",
			Recipient:    "support@company.com",
			ReceivedDate: at("2025-10-30T13:15:00"),
			Body:         "I need help resetting my password for the employee portal.",
			Status:       types.EmailProcessed,
		},
		{
			ID:           3,
			Subject:      "New feature request for dashboard",
			Sender:       "mike.johnson@company.com",
			Recipient:    "development@company.com",
			ReceivedDate: at("2025-10-30T11:45:00"),
			Body:         "Can we add export functionality to the timesheet dashboard?",
			Status:       types.EmailUnprocessed,
		},
	}
}

// Tickets returns the fallback ticket list.
func Tickets() []types.Ticket {
	return []types.Ticket{
		{
			ID:           1,
			TicketNumber: "INC-2025-001",
			Title:        "Production server downtime",
			Description:  "Production server experiencing critical downtime affecting all users.",
			Type:         types.TicketIncident,
			Priority:     types.PriorityCritical,
			Status:       types.TicketInProgress,
			AssigneeID:   id(2),
			AssigneeName: "Sarah Williams",
			ReporterID:   1,
			ReporterName: "John Doe",
			EmailID:      id(1),
			CreatedAt:    at("2025-10-30T14:35:00"),
			UpdatedAt:    at("2025-10-30T15:20:00"),
			DueDate:      atp("2025-10-30T18:00:00"),
		},
		{
			ID:           2,
			TicketNumber: "SR-2025-045",
			Title:        "Password reset request",
			Description:  "User requires password reset for employee portal access.",
			Type:         types.TicketServiceRequest,
			Priority:     types.PriorityMedium,
			Status:       types.TicketResolved,
			AssigneeID:   id(3),
			AssigneeName: "Michael Chen",
			ReporterID:   4,
			ReporterName: "Jane Smith",
			EmailID:      id(2),
			CreatedAt:    at("2025-10-30T13:20:00"),
			UpdatedAt:    at("2025-10-30T14:10:00"),
		},
		{
			ID:           3,
			TicketNumber: "CR-2025-012",
			Title:        "Dashboard export functionality",
			Description:  "Add CSV and PDF export options to timesheet dashboard.",
			Type:         types.TicketChangeRequest,
			Priority:     types.PriorityLow,
			Status:       types.TicketOpen,
			ReporterID:   5,
			ReporterName: "Mike Johnson",
			EmailID:      id(3),
			CreatedAt:    at("2025-10-30T11:50:00"),
			UpdatedAt:    at("2025-10-30T11:50:00"),
			DueDate:      atp("2025-11-15T17:00:00"),
		},
	}
}

// Timesheets returns the fallback timesheet list.
func Timesheets() []types.Timesheet {
	return []types.Timesheet{
		{
			ID:           1,
			UserID:       2,
			UserName:     "Sarah Williams",
			TicketID:     id(1),
			TicketNumber: "INC-2025-001",
			Date:         "2025-10-30",
			HoursLogged:  6.5,
			Description:  "Investigating and resolving production server downtime",
			Status:       types.TimesheetSubmitted,
			CreatedAt:    at("2025-10-30T16:00:00"),
		},
		{
			ID:           2,
			UserID:       3,
			UserName:     "Michael Chen",
			TicketID:     id(2),
			TicketNumber: "SR-2025-045",
			Date:         "2025-10-30",
			HoursLogged:  0.5,
			Description:  "Password reset for user",
			Status:       types.TimesheetApproved,
			ApprovedBy:   id(6),
			ApproverName: "David Manager",
			ApprovedAt:   atp("2025-10-30T17:00:00"),
			CreatedAt:    at("2025-10-30T14:15:00"),
		},
		{
			ID:           3,
			UserID:       2,
			UserName:     "Sarah Williams",
			TicketID:     id(1),
			TicketNumber: "INC-2025-001",
			Date:         "2025-10-29",
			HoursLogged:  8.0,
			Description:  "Initial investigation and emergency response",
			Status:       types.TimesheetApproved,
			ApprovedBy:   id(6),
			ApproverName: "David Manager",
			ApprovedAt:   atp("2025-10-30T09:00:00"),
			CreatedAt:    at("2025-10-29T18:00:00"),
		},
	}
}

// Users returns the fallback account list, which doubles as the seed list
// for demo-mode authentication.
func Users() []types.User {
	return []types.User{
		{
			ID:         1,
			Username:   "admin",
			Email:      "admin@company.com",
			FirstName:  "Admin",
			LastName:   "User",
			Role:       types.RoleAdmin,
			Department: "IT",
			IsActive:   true,
			CreatedAt:  at("2024-01-01T00:00:00"),
		},
		{
			ID:         2,
			Username:   "sarah.williams",
			Email:      "sarah.williams@company.com",
			FirstName:  "Sarah",
			LastName:   "Williams",
			Role:       types.RoleEmployee,
			Department: "Engineering",
			IsActive:   true,
			CreatedAt:  at("2024-03-15T00:00:00"),
		},
		{
			ID:         3,
			Username:   "michael.chen",
			Email:      "michael.chen@company.com",
			FirstName:  "Michael",
			LastName:   "Chen",
			Role:       types.RoleEmployee,
			Department: "Support",
			IsActive:   true,
			CreatedAt:  at("2024-02-20T00:00:00"),
		},
		{
			ID:         6,
			Username:   "david.manager",
			Email:      "david.manager@company.com",
			FirstName:  "David",
			LastName:   "Manager",
			Role:       types.RoleManager,
			Department: "Engineering",
			IsActive:   true,
			CreatedAt:  at("2024-01-10T00:00:00"),
		},
	}
}

// Integrations returns the fallback connector list.
func Integrations() []types.Integration {
	return []types.Integration{
		{
			ID:           1,
			Name:         "Engineering Jira",
			Type:         types.IntegrationJira,
			APIURL:       "https://company.atlassian.net",
			IsActive:     true,
			LastSyncedAt: atp("2025-10-30T15:00:00"),
		},
		{
			ID:       2,
			Name:     "Support Slack",
			Type:     types.IntegrationSlack,
			APIURL:   "https://hooks.slack.com/services/demo",
			IsActive: true,
		},
	}
}

// WeeklyTimelogs returns the fallback hours-per-day chart series.
func WeeklyTimelogs() []types.ChartPoint {
	return []types.ChartPoint{
		{Name: "Mon", Value: 38.5},
		{Name: "Tue", Value: 41.0},
		{Name: "Wed", Value: 36.5},
		{Name: "Thu", Value: 39.0},
		{Name: "Fri", Value: 32.5},
	}
}

// TicketProgress returns the fallback tickets-by-status chart series.
func TicketProgress() []types.ChartPoint {
	return []types.ChartPoint{
		{Name: "OPEN", Value: 87},
		{Name: "IN_PROGRESS", Value: 34},
		{Name: "PENDING", Value: 12},
		{Name: "RESOLVED", Value: 154},
		{Name: "CLOSED", Value: 101},
	}
}

// EmailStatus returns the fallback emails-by-status chart series.
func EmailStatus() []types.ChartPoint {
	return []types.ChartPoint{
		{Name: "UNPROCESSED", Value: 109},
		{Name: "PROCESSED", Value: 796},
		{Name: "TICKET_CREATED", Value: 312},
		{Name: "FAILED", Value: 30},
	}
}
