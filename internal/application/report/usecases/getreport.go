package usecases

import (
	"context"

	"salesdaily/internal/application/report/dto"
	"salesdaily/internal/domain/report"
	"salesdaily/internal/domain/user"
	"salesdaily/internal/shared/authorization"
	"salesdaily/internal/shared/errors"
	"salesdaily/internal/shared/logger"
)

type GetReportQuery struct {
	ReportID uint
	Caller   authorization.Identity
}

type GetReportUseCase struct {
	reportRepo  report.ReportRepository
	commentRepo report.CommentRepository
	userRepo    user.UserRepository
	logger      logger.Interface
}

func NewGetReportUseCase(
	reportRepo report.ReportRepository,
	commentRepo report.CommentRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *GetReportUseCase {
	return &GetReportUseCase{
		reportRepo:  reportRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *GetReportUseCase) Execute(ctx context.Context, query GetReportQuery) (*dto.ReportDTO, error) {
	rep, err := uc.reportRepo.FindByID(ctx, query.ReportID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanViewReport(query.Caller, rep.UserID()) {
		uc.logger.Warnw("get report denied",
			"report_id", query.ReportID, "caller_id", query.Caller.UserID, "owner_id", rep.UserID())
		return nil, errors.NewForbiddenError("you may only view your own reports")
	}

	result := dto.ToReportDTO(rep, uc.lookupUserName(ctx, rep.UserID()))

	comments, err := uc.commentRepo.ListByReport(ctx, rep.ID())
	if err != nil {
		return nil, err
	}
	result.Comments = uc.toCommentDTOs(ctx, comments)

	return result, nil
}

// lookupUserName resolves a display name, tolerating deleted accounts.
func (uc *GetReportUseCase) lookupUserName(ctx context.Context, userID uint) string {
	u, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return ""
	}
	return u.Name()
}

func (uc *GetReportUseCase) toCommentDTOs(ctx context.Context, comments []*report.Comment) []dto.CommentDTO {
	names := make(map[uint]string, len(comments))
	result := make([]dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		name, ok := names[c.AuthorID()]
		if !ok {
			name = uc.lookupUserName(ctx, c.AuthorID())
			names[c.AuthorID()] = name
		}
		result = append(result, dto.ToCommentDTO(c, name))
	}
	return result
}
