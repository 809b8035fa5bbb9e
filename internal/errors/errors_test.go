package errors_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/greed-island/internal/errors"
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
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "session not found",
			expected: "NOT_FOUND: session not found",
		},
		{
			name:     "data loss error",
			code:     errors.CodeDataLoss,
			message:  "malformed scenario",
			expected: "DATA_LOSS: malformed scenario",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	base := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(base, "failed to load session")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to load session", wrapped.Message)
	s.Equal(base, wrapped.Unwrap())
	s.Nil(errors.Wrap(nil, "ignored"))
}

func (s *ErrorsTestSuite) TestWrap_PreservesCodeAndMeta() {
	inner := errors.NotFound("session not found").WithMeta("session_id", "abc")
	wrapped := errors.Wrapf(inner, "failed to load session %s", "abc")

	s.True(errors.IsNotFound(wrapped))
	s.Equal("abc", wrapped.Meta["session_id"])
	s.Equal("failed to load session abc", errors.GetMessage(wrapped))
	s.True(errors.Is(wrapped, errors.NotFound("")))
}

func (s *ErrorsTestSuite) TestWrap_ContextErrors() {
	s.Equal(errors.CodeCanceled, errors.Wrap(context.Canceled, "stopped").Code)
	s.Equal(errors.CodeDeadlineExceeded, errors.Wrap(context.DeadlineExceeded, "slow").Code)
	s.Equal(errors.CodeDeadlineExceeded, errors.GetCode(fmt.Errorf("call: %w", context.DeadlineExceeded)))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	inner := errors.Unavailable("gateway down").WithMeta("model", "flash")
	wrapped := errors.WrapWithCode(inner, errors.CodeDataLoss, "bad reply")

	s.True(errors.IsDataLoss(wrapped))
	s.Equal("flash", wrapped.Meta["model"])
	s.Nil(errors.WrapWithCode(nil, errors.CodeInternal, "ignored"))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Equal(errors.CodeAlreadyExists, errors.GetCode(errors.AlreadyExistsf("session %s exists", "x")))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	s.Equal(http.StatusNotFound, errors.CodeNotFound.HTTPStatus())
	s.Equal(http.StatusBadRequest, errors.CodeInvalidArgument.HTTPStatus())
	s.Equal(http.StatusTooManyRequests, errors.CodeResourceExhausted.HTTPStatus())
	s.Equal(http.StatusServiceUnavailable, errors.CodeUnavailable.HTTPStatus())
	s.Equal(http.StatusInternalServerError, errors.Code("BOGUS").HTTPStatus())
}

func (s *ErrorsTestSuite) TestToGRPCError() {
	testCases := []struct {
		name    string
		err     error
		code    codes.Code
		message string
	}{
		{
			name:    "coded error",
			err:     errors.NotFound("session not found"),
			code:    codes.NotFound,
			message: "session not found",
		},
		{
			name:    "wrapped coded error",
			err:     errors.Wrap(errors.InvalidArgument("bad"), "invalid config"),
			code:    codes.InvalidArgument,
			message: "invalid config",
		},
		{
			name:    "plain error",
			err:     fmt.Errorf("boom"),
			code:    codes.Internal,
			message: "boom",
		},
		{
			name:    "existing status",
			err:     status.Error(codes.Aborted, "aborted"),
			code:    codes.Aborted,
			message: "aborted",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			st, ok := status.FromError(errors.ToGRPCError(tc.err))
			s.Require().True(ok)
			s.Equal(tc.code, st.Code())
			s.Equal(tc.message, st.Message())
		})
	}

	s.Nil(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestFromGRPCError() {
	err := errors.FromGRPCError(status.Error(codes.ResourceExhausted, "slow down"))
	s.True(errors.IsResourceExhausted(err))
	s.Equal("slow down", errors.GetMessage(err))

	s.Equal(errors.CodeInternal, errors.GetCode(errors.FromGRPCError(status.Error(codes.PermissionDenied, "no"))))

	plain := fmt.Errorf("plain")
	s.Equal(plain, errors.FromGRPCError(plain))
	s.Nil(errors.FromGRPCError(nil))
}

func (s *ErrorsTestSuite) TestGRPCCodeRoundTrip() {
	for _, code := range []errors.Code{
		errors.CodeNotFound,
		errors.CodeInvalidArgument,
		errors.CodeUnavailable,
		errors.CodeDataLoss,
	} {
		err := errors.FromGRPCError(errors.ToGRPCError(errors.New(code, "x")))
		s.Equal(code, errors.GetCode(err))
	}
}
