package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/foolchen/lifeRestart/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("Registry").
		Fieldf("GRPCPort", "must be between %d and %d", 1, 65535)

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(
		"validation failed: GRPCPort: must be between 1 and 65535; Registry: is required",
		errors.GetMessage(err),
	)
	s.NotNil(errors.GetMeta(err)["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}
