package service

import (
	"context"

	"streetcats-backend/internal/domains/activitylog"
	"streetcats-backend/pkg/logger"

	"github.com/google/uuid"
)

type activityLogService struct {
	repo activitylog.Repository
}

func NewActivityLogService(repo activitylog.Repository) activitylog.Service {
	return &activityLogService{repo: repo}
}

func (s *activityLogService) FetchForCat(ctx context.Context, catID uuid.UUID) []activitylog.ActivityLog {
	logs, err := s.repo.ListByCat(ctx, catID)
	if err != nil {
		logger.Error("fetch activity logs failed", err)
		return []activitylog.ActivityLog{}
	}
	return logs
}

func (s *activityLogService) FetchRecent(ctx context.Context, limit int) []activitylog.LogWithCat {
	entries, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		logger.Error("fetch recent activity failed", err)
		return []activitylog.LogWithCat{}
	}
	return entries
}

func (s *activityLogService) Add(ctx context.Context, req *activitylog.AddLogRequest) *activitylog.ActivityLog {
	if err := req.Validate(); err != nil {
		logger.Error("add activity log: invalid input", err)
		return nil
	}

	created, err := s.repo.Insert(ctx, req.ToLog())
	if err != nil {
		logger.Error("add activity log failed", err)
		return nil
	}
	return created
}
