package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Timeline(ctx context.Context, name string) (Timeline, error)
	UserHeatmap(ctx context.Context, name string) (Heatmap, error)
	GlobalHeatmap(ctx context.Context) (Heatmap, error)
	CurrentStreaks(ctx context.Context) (Streaks, error)
}
