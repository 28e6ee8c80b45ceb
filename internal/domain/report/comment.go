package report

import (
	"fmt"
	"time"

	vo "salesdaily/internal/domain/report/valueobjects"
)

// Comment is manager feedback attached to a daily report.
type Comment struct {
	id            uint
	dailyReportID uint
	authorID      uint
	commentType   vo.CommentType
	content       string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewComment(dailyReportID, authorID uint, commentType vo.CommentType, content string) (*Comment, error) {
	if dailyReportID == 0 {
		return nil, fmt.Errorf("daily report ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if !commentType.IsValid() {
		return nil, fmt.Errorf("invalid comment type: %s", commentType)
	}
	if err := validateCommentContent(content); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Comment{
		dailyReportID: dailyReportID,
		authorID:      authorID,
		commentType:   commentType,
		content:       content,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructComment(
	id uint,
	dailyReportID uint,
	authorID uint,
	commentType vo.CommentType,
	content string,
	createdAt, updatedAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if dailyReportID == 0 {
		return nil, fmt.Errorf("daily report ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Comment{
		id:            id,
		dailyReportID: dailyReportID,
		authorID:      authorID,
		commentType:   commentType,
		content:       content,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (c *Comment) ID() uint                    { return c.id }
func (c *Comment) DailyReportID() uint         { return c.dailyReportID }
func (c *Comment) AuthorID() uint              { return c.authorID }
func (c *Comment) CommentType() vo.CommentType { return c.commentType }
func (c *Comment) Content() string             { return c.content }
func (c *Comment) CreatedAt() time.Time        { return c.createdAt }
func (c *Comment) UpdatedAt() time.Time        { return c.updatedAt }

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

// UpdateContent replaces the comment body and type. Only the author may
// reach this path; the use case enforces that.
func (c *Comment) UpdateContent(commentType vo.CommentType, content string) error {
	if !commentType.IsValid() {
		return fmt.Errorf("invalid comment type: %s", commentType)
	}
	if err := validateCommentContent(content); err != nil {
		return err
	}

	c.commentType = commentType
	c.content = content
	c.updatedAt = time.Now().UTC()
	return nil
}

func validateCommentContent(content string) error {
	if len(content) == 0 {
		return fmt.Errorf("content cannot be empty")
	}
	if len(content) > 500 {
		return fmt.Errorf("content exceeds maximum length of 500 characters")
	}
	return nil
}
