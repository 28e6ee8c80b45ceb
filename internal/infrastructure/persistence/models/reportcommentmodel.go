package models

type ReportCommentModel struct {
	ID            uint   `gorm:"primaryKey"`
	DailyReportID uint   `gorm:"not null;index"`
	AuthorID      uint   `gorm:"not null;index"`
	CommentType   string `gorm:"size:20;not null"`
	Content       string `gorm:"size:500;not null"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt     int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ReportCommentModel) TableName() string {
	return "report_comments"
}
