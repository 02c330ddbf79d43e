package query

import "math"

// allowedPageSizes are the sizes the result tables render; anything else
// falls back to the default.
var allowedPageSizes = map[int]bool{10: true, 25: true, 50: true}

const defaultPageSize = 10

// Page is one page of query results plus the paging envelope
type Page struct {
	Results    []Result `json:"data"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
	TotalCount int      `json:"totalCount"`
	TotalPages int      `json:"totalPages"`
}

// Paginate slices the result set tolerantly: an unsupported page size falls
// back to the default, a page below 1 is clamped to the first page, and a
// page past the end yields an empty page rather than an error. TotalPages is
// never below 1 so an empty set still renders one empty page.
func Paginate(results []Result, pageSize, pageNumber int) Page {
	if !allowedPageSizes[pageSize] {
		pageSize = defaultPageSize
	}
	if pageNumber < 1 {
		pageNumber = 1
	}

	total := len(results)
	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	if totalPages < 1 {
		totalPages = 1
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Results:    results[start:end],
		Page:       pageNumber,
		Limit:      pageSize,
		TotalCount: total,
		TotalPages: totalPages,
	}
}
