package user

import "fmt"

// NotFoundError is returned when no user exists for the requested id.
type NotFoundError struct {
	ID uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("user not found: %d", e.ID)
}

// DuplicateNicknameError is returned when a nickname is already taken,
// either by the pre-check or by the unique constraint on the table.
type DuplicateNicknameError struct {
	Nickname string
}

func (e *DuplicateNicknameError) Error() string {
	return fmt.Sprintf("nickname already exists: %s", e.Nickname)
}
