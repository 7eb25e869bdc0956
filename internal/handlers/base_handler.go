package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"workbridge_backend/internal/forms"
	"workbridge_backend/internal/logger"
	"workbridge_backend/internal/validator"
	"workbridge_backend/pkg/apperrors"
	"workbridge_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// GetDB returns the *gorm.DB (pool or transaction) set by DBMiddleware.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db key not found in context", "key", dbKey)
		panic("critical error: DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db in context is not *gorm.DB", "key", dbKey, "type", fmt.Sprintf("%T", val))
		panic("critical error: db in context has incorrect type")
	}

	return db
}

func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) BindAndValidate_Query(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind query params", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := h.validator.Validate(obj); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var fieldErrs forms.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		logger.CtxWarn(ctx, "Form validation failed", "errors", map[string]string(fieldErrs), "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.ValidationError(map[string]string(fieldErrs)))
		return
	case errors.Is(err, forms.ErrSubmitting):
		apperrors.HandleError(c, apperrors.ErrSubmissionInProgress)
		return
	}

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"details", appErr.Details,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

func (h *BaseHandler) GetAndAuthorizeUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(string(contextkeys.UserIDKey))
	if userID == "" {
		logger.CtxWarn(c.Request.Context(), "Unauthorized access: userID not found in context",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return "", false
	}
	return userID, true
}

// bindFormValues reads a flat JSON object into form fields. Arrays become
// list fields; numbers and booleans are kept in their text form.
func (h *BaseHandler) bindFormValues(c *gin.Context) (map[string]string, map[string][]string, bool) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return nil, nil, false
	}
	fields, lists := formValues(raw)
	return fields, lists, true
}

func formValues(raw map[string]any) (map[string]string, map[string][]string) {
	fields := map[string]string{}
	lists := map[string][]string{}
	for k, v := range raw {
		switch val := v.(type) {
		case nil:
		case []any:
			items := make([]string, 0, len(val))
			for _, item := range val {
				if s := scalarText(item); s != "" {
					items = append(items, s)
				}
			}
			lists[k] = dedupe(items)
		default:
			fields[k] = scalarText(val)
		}
	}
	return fields, lists
}

func scalarText(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(val)
	}
}

// dedupe keeps the first occurrence of each item. Lists are loaded through
// toggles, so a repeated item would cancel itself out.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// formResponse is the body of a successful form submission.
type formResponse struct {
	Data   any           `json:"data"`
	Notice *forms.Notice `json:"notice,omitempty"`
}

func respondForm[T any](c *gin.Context, status int, form *forms.Controller[T], data any) {
	c.JSON(status, formResponse{Data: data, Notice: form.Notice()})
}
