package dto

// StockReportRequest is the query for GET /reports/stock.
type StockReportRequest struct {
	Scope string `form:"scope"`
}

// RentalSummaryRequest is the query for GET /reports/rental-summary.
// Month selects the calendar month, format "2006-01". AsOf bounds the
// estimate for stock still on rent, format "2006-01-02", default today.
type RentalSummaryRequest struct {
	Month string `form:"month" binding:"required"`
	AsOf  string `form:"asOf"`
}

// RentalStatementRequest is the query for GET /reports/rental-statement.
// Dates use format "2006-01-02". From and To default to the month of
// AsOf when omitted.
type RentalStatementRequest struct {
	Customer string `form:"customer" binding:"required"`
	Site     string `form:"site" binding:"required"`
	From     string `form:"from"`
	To       string `form:"to"`
	AsOf     string `form:"asOf"`
}

// JournalRequest is the query for GET /reports/journal. Empty bounds
// leave that side of the date range open.
type JournalRequest struct {
	From string `form:"from"`
	To   string `form:"to"`
}
