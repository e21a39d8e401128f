package middleware

import (
	"context"

	"energy-tracker/app/session"
)

func GetSnapshot(ctx context.Context) *session.Snapshot {
	if v := ctx.Value(SnapshotKey); v != nil {
		if s, ok := v.(*session.Snapshot); ok {
			return s
		}
	}
	return nil
}
