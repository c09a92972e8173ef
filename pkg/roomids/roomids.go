// Package roomids нормализует список ID комнат из пользовательского ввода.
//
// Клиент может передать ID строкой ("1, 2;3") или JSON-массивом ([1, "2", 3]).
// Результат всегда приводится к каноничному виду "1,2,3".
package roomids

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrEmpty возвращается, когда список не содержит ни одного ID
	ErrEmpty = errors.New("roomids: list is empty")

	// ErrInvalidID возвращается, когда элемент списка не является положительным целым числом
	ErrInvalidID = errors.New("roomids: invalid room id")

	// ErrInvalidFormat возвращается, когда JSON не является ни строкой, ни массивом
	ErrInvalidFormat = errors.New("roomids: expected string or list")
)

// List нормализованный список ID комнат без дубликатов, в порядке первого появления
type List []int64

// Parse разбирает строку с ID, разделенными запятыми и/или точками с запятой.
// Пробелы игнорируются, пустые элементы пропускаются.
func Parse(s string) (List, error) {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ";", ",")

	parts := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return fromStrings(parts)
}

// FromIDs строит нормализованный список из готовых ID
func FromIDs(ids []int64) (List, error) {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return fromStrings(parts)
}

func fromStrings(parts []string) (List, error) {
	if len(parts) == 0 {
		return nil, ErrEmpty
	}

	seen := make(map[int64]struct{}, len(parts))
	list := make(List, 0, len(parts))

	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidID, part)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		list = append(list, id)
	}

	return list, nil
}

// String возвращает каноничное представление "1,2,3"
func (l List) String() string {
	parts := make([]string, len(l))
	for i, id := range l {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

// IDs возвращает копию списка как []int64
func (l List) IDs() []int64 {
	ids := make([]int64, len(l))
	copy(ids, l)
	return ids
}

// MarshalJSON сериализует список в каноничную строку
func (l List) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON принимает строку или массив чисел/строк
func (l *List) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrInvalidFormat
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		parsed, err := Parse(s)
		if err != nil {
			return err
		}
		*l = parsed
		return nil

	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		parts := make([]string, 0, len(raw))
		for _, item := range raw {
			var s string
			if err := json.Unmarshal(item, &s); err == nil {
				parts = append(parts, s)
				continue
			}
			parts = append(parts, string(item))
		}
		parsed, err := fromStrings(parts)
		if err != nil {
			return err
		}
		*l = parsed
		return nil

	default:
		return ErrInvalidFormat
	}
}
