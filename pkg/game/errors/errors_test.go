package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"escaperoom/pkg/game/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		err      *errors.Error
		expected string
	}{
		{
			name:     "map parse",
			err:      errors.MapParseFailure("duplicate room id 3"),
			expected: "MAP_PARSE: duplicate room id 3",
		},
		{
			name:     "lookup miss",
			err:      errors.LookupMiss("room", 7),
			expected: "LOOKUP_MISS: room 7 not found",
		},
		{
			name:     "invalid config",
			err:      errors.InvalidConfig("room_width", "must be positive"),
			expected: "INVALID_CONFIG: room_width must be positive",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, tc.err.Error())
		})
	}
}

func (s *ErrorsTestSuite) TestAssetLoadFailure() {
	cause := fmt.Errorf("open content/king.png: file does not exist")
	err := errors.AssetLoadFailure("content/king.png", cause)

	s.Assert().True(errors.IsAssetLoad(err))
	s.Assert().Equal("content/king.png", err.Meta["path"])
	s.Assert().ErrorIs(err, cause)
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	inner := errors.MapParseFailure("bad flat")
	wrapped := fmt.Errorf("load map: %w", errors.Wrap(inner, "room 2"))

	s.Assert().True(errors.IsMapParse(wrapped))
	s.Assert().True(stderrors.Is(wrapped, errors.New(errors.CodeMapParse, "")))
	s.Assert().False(stderrors.Is(wrapped, errors.New(errors.CodeAssetLoad, "")))
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	err := errors.Wrap(fmt.Errorf("boom"), "context")
	s.Assert().Equal(errors.CodeInternal, err.Code)
	s.Assert().Nil(errors.Wrap(nil, "nothing"))
}

func (s *ErrorsTestSuite) TestExitStatus() {
	s.Assert().Equal(2, errors.GetCode(errors.InvalidConfig("x", "y")).ExitStatus())
	s.Assert().Equal(1, errors.GetCode(fmt.Errorf("plain")).ExitStatus())
}
