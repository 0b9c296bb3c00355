package repository

import (
	"strconv"

	"gorm.io/gorm"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// scopeCompany restricts a query to one company; nil means company-less rows.
func scopeCompany(q *gorm.DB, companyID *uint) *gorm.DB {
	if companyID == nil {
		return q.Where("company_id IS NULL")
	}
	return q.Where("company_id = ?", *companyID)
}

func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

func uintToString(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
