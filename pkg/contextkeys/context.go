package contextkeys

// contextKey is unexported so keys never collide with other packages.
type contextKey string

const (
	// DBContextKey holds the request-scoped *gorm.DB (pool or transaction).
	DBContextKey = contextKey("db")

	// UserIDKey and RoleKey are set by the auth middleware on gin.Context.
	UserIDKey = contextKey("userID")
	RoleKey   = contextKey("role")
)
