package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Year accepts either a JSON string ("1998") or a JSON integer (1998) and
// holds it as a string.
type Year string

func (y *Year) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*y = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*y = Year(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("year must be a string or an integer")
	}
	if _, err := n.Int64(); err != nil {
		return fmt.Errorf("year must be a string or an integer")
	}
	*y = Year(n.String())
	return nil
}

// MovieRequest is the payload for both create and full-replace update.
type MovieRequest struct {
	Title string `json:"title" validate:"required,nonul,max=255"`
	Genre string `json:"genre" validate:"required,nonul,max=255"`
	Year  Year   `json:"year" validate:"required,nonul,max=4"`
}

// Normalize trims surrounding whitespace so blank values count as missing
func (r *MovieRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Genre = strings.TrimSpace(r.Genre)
	r.Year = Year(strings.TrimSpace(string(r.Year)))
}
