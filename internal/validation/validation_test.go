package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string   `json:"email" validate:"required,email"`
	Count *float64 `json:"count" validate:"omitnil,gte=0"`
	Items []sampleItem `json:"items" validate:"dive"`
}

type sampleItem struct {
	Name string `json:"name" validate:"required"`
}

func TestStructValid(t *testing.T) {
	count := 2.0
	req := sampleRequest{Email: "dev@example.com", Count: &count}
	assert.Nil(t, Struct(&req))
}

func TestStructReportsEveryViolation(t *testing.T) {
	negative := -1.0
	req := sampleRequest{
		Email: "not-an-email",
		Count: &negative,
		Items: []sampleItem{{Name: ""}},
	}

	fields := Struct(&req)
	require.Len(t, fields, 3)

	byField := map[string]FieldError{}
	for _, fe := range fields {
		byField[fe.Field] = fe
	}

	assert.Equal(t, "email", byField["email"].Rule)
	assert.Equal(t, "gte", byField["count"].Rule)
	assert.Equal(t, "required", byField["items[0].name"].Rule)
}

func TestStructUsesJSONFieldNames(t *testing.T) {
	req := sampleRequest{}
	fields := Struct(&req)
	require.NotEmpty(t, fields)
	assert.Equal(t, "email", fields[0].Field)
	assert.Equal(t, "field is required", fields[0].Message)
}

func TestStructSkipsNilOptionalFields(t *testing.T) {
	req := sampleRequest{Email: "dev@example.com"}
	assert.Nil(t, Struct(&req))
}

func TestDecode(t *testing.T) {
	var req sampleRequest
	require.NoError(t, Decode([]byte(`{"email":"dev@example.com"}`), &req))
	assert.Equal(t, "dev@example.com", req.Email)

	require.Error(t, Decode([]byte(`{not json`), &req))
}
