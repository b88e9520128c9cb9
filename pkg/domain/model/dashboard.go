package model

// DashboardItem is one to-do entry on a tutor's dashboard
type DashboardItem struct {
	URL string
	// Submissions is the badge count. Zero means the badge could not be read.
	Submissions int
}
