package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Submit(ctx context.Context, in SubmitInput) (SubmitResult, error)
	UserHistory(ctx context.Context, name string) (UserEntries, error)
	Calendar(ctx context.Context, name string) (CalendarEntries, error)
	Recent(ctx context.Context, limit int) (RecentFeed, error)
	ListUsers(ctx context.Context) (Users, error)
}
