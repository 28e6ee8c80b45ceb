package repository

import "gorm.io/gorm"

// paginate applies page/page_size bounds to a query. Page numbers start at 1.
func paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		if pageSize < 1 || pageSize > 100 {
			pageSize = 20
		}
		return tx.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}
