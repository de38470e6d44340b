package common

// DefaultPageSize is the number of entries per listing page
const DefaultPageSize = 10

// Paginate returns items[(page-1)*pageSize : page*pageSize], clipped to the
// available range. Pages past the end, and page < 1, yield an empty slice.
func Paginate[T any](items []T, page, pageSize int) []T {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	// compare page numbers before multiplying so huge pages cannot overflow
	pages := (len(items) + pageSize - 1) / pageSize
	if page < 1 || page-1 >= pages {
		return []T{}
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages returns ceil(total/pageSize)
func TotalPages(total int64, pageSize int) int {
	if pageSize < 1 || total <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
