package dto

import (
	"net/http"
	"strconv"

	"backlog/shared/constant"
	"backlog/shared/failure"
)

const (
	SortDirAsc  = "asc"
	SortDirDesc = "desc"
)

type QueryParams struct {
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	SortBy   string `json:"sortBy"`
	Order    string `json:"order"`
}

// FromRequest populates QueryParams from the HTTP request query string and
// returns one issue per malformed parameter. Defaults apply to parameters
// that are absent, never to parameters that are present but invalid.
// Example:
//
//	q := &dto.QueryParams{}
//	issues := q.FromRequest(req)
func (q *QueryParams) FromRequest(r *http.Request) []failure.Issue {
	queryParams := r.URL.Query()

	var issues []failure.Issue

	q.Page = constant.DefaultValuePage
	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		pageInt, err := strconv.Atoi(page)
		if err != nil || pageInt < 1 {
			issues = append(issues, failure.Issue{
				Path:    constant.RequestParamPage,
				Message: "page must be an integer greater than or equal to 1",
			})
		} else {
			q.Page = pageInt
		}
	}

	q.PageSize = constant.DefaultValuePageSize
	if pageSize := queryParams.Get(constant.RequestParamPageSize); pageSize != "" {
		pageSizeInt, err := strconv.Atoi(pageSize)
		if err != nil || pageSizeInt < 1 || pageSizeInt > constant.MaxValuePageSize {
			issues = append(issues, failure.Issue{
				Path:    constant.RequestParamPageSize,
				Message: "pageSize must be an integer between 1 and " + strconv.Itoa(constant.MaxValuePageSize),
			})
		} else {
			q.PageSize = pageSizeInt
		}
	}

	q.SortBy = constant.DefaultValueSortBy
	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	q.Order = constant.DefaultValueOrder
	if order := queryParams.Get(constant.RequestParamOrder); order != "" {
		if order != SortDirAsc && order != SortDirDesc {
			issues = append(issues, failure.Issue{
				Path:    constant.RequestParamOrder,
				Message: "order must be one of asc, desc",
			})
		} else {
			q.Order = order
		}
	}

	return issues
}

// Offset returns the number of records skipped before the requested page.
func (q *QueryParams) Offset() int {
	return (q.Page - 1) * q.PageSize
}
