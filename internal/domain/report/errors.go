package report

import "errors"

var (
	ErrReportNotFound = errors.New("report snapshot not found")
)
