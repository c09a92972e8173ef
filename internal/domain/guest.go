package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Ошибки проверки данных гостя
var (
	ErrNameRequired    = errors.New("name is required")
	ErrNameTooLong     = errors.New("name is too long")
	ErrSurnameRequired = errors.New("surname is required")
	ErrSurnameTooLong  = errors.New("surname is too long")
	ErrRoomIDsTooLong  = errors.New("room_ids is too long")
)

// ValidateGuest проверяет имя, фамилию гостя и длину строки room_ids
func ValidateGuest(name, surname, roomIDs string) error {
	if err := validateGuestField(name, ErrNameRequired, ErrNameTooLong); err != nil {
		return err
	}
	if err := validateGuestField(surname, ErrSurnameRequired, ErrSurnameTooLong); err != nil {
		return err
	}

	if len(roomIDs) > MaxRoomIDsLength {
		return fmt.Errorf("%w: max %d characters", ErrRoomIDsTooLong, MaxRoomIDsLength)
	}
	return nil
}

func validateGuestField(value string, errRequired, errTooLong error) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errRequired
	}
	if utf8.RuneCountInString(value) > MaxGuestNameLength {
		return fmt.Errorf("%w: max %d characters", errTooLong, MaxGuestNameLength)
	}
	return nil
}
