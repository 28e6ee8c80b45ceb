package models

type CustomerModel struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:100;not null;index"`
	CompanyName string  `gorm:"size:200;not null;index"`
	Phone       *string `gorm:"size:20"`
	Email       *string `gorm:"size:255"`
	Address     *string `gorm:"size:500"`
	Notes       *string `gorm:"size:1000"`
	CreatedAt   int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (CustomerModel) TableName() string {
	return "customers"
}
