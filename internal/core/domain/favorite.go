package domain

import "time"

// Favorite - объявление, сохраненное пользователем.
type Favorite struct {
	UserID     string
	PropertyID string
	CreatedAt  time.Time
}
