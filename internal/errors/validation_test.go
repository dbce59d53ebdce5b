package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-textquest/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("name", "is required")
	ve.AddFieldErrorf("level", "must be at least %d", 1)

	s.True(ve.HasErrors())
	s.Contains(ve.Error(), "name: is required")
	s.Contains(ve.Error(), "level: must be at least 1")

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("level", "must be at least %d", 1).
		RequiredField("save_root").
		InvalidField("storage", "unknown backend")

	err := vb.Build()
	s.Require().NotNil(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Nil(vb.Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "SaveData", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  json  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.NotNil(err)
			} else {
				s.Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateMin() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMin("runs", 0, 1, vb)
	errors.ValidateMin("gold", 1500, 0, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Contains(validationErrors["runs"][0], "must be at least 1")
	s.NotContains(validationErrors, "gold")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	backends := []string{"file", "redis", "sqlite"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("storage", "postgres", backends, vb)
	errors.ValidateEnum("fallback", "file", backends, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Contains(validationErrors["storage"][0], "must be one of: file, redis, sqlite")
	s.NotContains(validationErrors, "fallback")
}

func (s *ValidationTestSuite) TestMessageListsFieldsInOrder() {
	err := errors.NewValidationBuilder().
		RequiredField("SaveSlot").
		InvalidField("Pacing", "negative").
		RequiredField("SaveRoot").
		Build()

	s.Require().NotNil(err)
	s.Equal("INVALID_ARGUMENT: validation failed: Pacing: is invalid: negative; SaveRoot: is required; SaveSlot: is required",
		err.Error())
}
