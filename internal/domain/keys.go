package domain

type contextKey string

const (
	KeyUserID    contextKey = "UserID"
	KeyUserEmail contextKey = "UserEmail"
)
