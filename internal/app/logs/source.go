//go:generate mockgen -source=source.go -destination=source_mock.go -package=logs
package logs

import "context"

// Source supplies the full log list for a view session
type Source interface {
	GetLogs(ctx context.Context) ([]Record, error)
}
