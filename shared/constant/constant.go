package constant

import (
	"time"
)

const (
	RequestParamQuery    = "q"
	RequestParamStatus   = "status"
	RequestParamPriority = "priority"
	RequestParamPage     = "page"
	RequestParamPageSize = "pageSize"
	RequestParamSortBy   = "sortBy"
	RequestParamOrder    = "order"
)

const (
	RequestParamID = "id"
)

const (
	DefaultValuePage     = 1
	DefaultValuePageSize = 20
	MaxValuePageSize     = 100
	DefaultValueSortBy   = "createdAt"
	DefaultValueOrder    = "desc"
)

const (
	TitleMaxLength       = 200
	DescriptionMaxLength = 2000
	PriorityMin          = 1
	PriorityMax          = 3
)

const (
	DateFormat = time.RFC3339
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelCacheScopeName      = "cache"

	OtelQueryAttributeKey  = "query"
	OtelRecordAttributeKey = "record.id"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseMessageValidation    = "Validation error"
	ResponseMessageNotFound      = "Not found"
	ResponseMessageInternalError = "Internal server error"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)
