package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    Year
		wantErr bool
	}{
		{name: "string", body: `{"year":"1998"}`, want: "1998"},
		{name: "integer", body: `{"year":1998}`, want: "1998"},
		{name: "null", body: `{"year":null}`, want: ""},
		{name: "absent", body: `{}`, want: ""},
		{name: "float", body: `{"year":1998.5}`, wantErr: true},
		{name: "bool", body: `{"year":true}`, wantErr: true},
		{name: "object", body: `{"year":{}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req MovieRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Year)
		})
	}
}

func TestMovieRequestNormalize(t *testing.T) {
	req := MovieRequest{Title: "  Heat ", Genre: "\tcrime\n", Year: " 1995 "}
	req.Normalize()

	assert.Equal(t, MovieRequest{Title: "Heat", Genre: "crime", Year: "1995"}, req)
}
