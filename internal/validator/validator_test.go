package validator_test

import (
	"testing"

	"fithub_backend/internal/services/dto"
	"fithub_backend/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_SignupRequest(t *testing.T) {
	v := validator.New()

	req := &dto.SignupRequest{
		Email:    "user@test.com",
		Password: "super_password123",
		Role:     "user",
		Phone:    "+7 (701) 123-45-67",
	}
	assert.NoError(t, v.Validate(req))
}

func TestValidate_FieldNamesFromJSONTags(t *testing.T) {
	v := validator.New()

	err := v.Validate(&dto.SignupRequest{
		Email:    "not-an-email",
		Password: "super_password123",
	})
	require.Error(t, err)

	vErr, ok := err.(*validator.ValidationError)
	require.True(t, ok)
	// Клиент видит json-имена полей, а не Go-имена
	assert.Contains(t, vErr.Errors, "email")
}

func TestValidate_CustomRules(t *testing.T) {
	v := validator.New()

	cases := []struct {
		name    string
		req     interface{}
		wantErr bool
	}{
		{
			name: "неизвестная роль",
			req: &dto.SignupRequest{
				Email: "u@test.com", Password: "super_password123", Role: "superadmin",
			},
			wantErr: true,
		},
		{
			name: "короткий телефон",
			req: &dto.SignupRequest{
				Email: "u@test.com", Password: "super_password123", Phone: "12345",
			},
			wantErr: true,
		},
		{
			name: "невалидная сложность",
			req: &dto.CreateTutorialRequest{
				Title: "t", Description: "d", Category: "c", Content: "x",
				Difficulty: "expert",
			},
			wantErr: true,
		},
		{
			name: "валидная сложность",
			req: &dto.CreateTutorialRequest{
				Title: "t", Description: "d", Category: "c", Content: "x",
				Difficulty: "advanced",
			},
			wantErr: false,
		},
		{
			name: "невалидный приоритет",
			req: &dto.SubmitQueryRequest{
				Title: "t", Description: "d", Priority: "urgent",
			},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(tc.req)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
