package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/ironbank/internal/common"
	"github.com/dmitrijs2005/ironbank/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const (
	claimsKey ctxKey = "claims"
	tokenKey  ctxKey = "token"
)

// ClaimsFromContext returns the session claims the interceptor attached.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*auth.Claims)
	return c, ok && c != nil
}

func tokenFromContext(ctx context.Context) string {
	t, _ := ctx.Value(tokenKey).(string)
	return t
}

func accessTokenFromMetadata(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// accessTokenInterceptor verifies the session on every non-public method and
// stores its claims in the context.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	accessToken := accessTokenFromMetadata(ctx)
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	claims, err := s.bank.Authenticate(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	ctx = context.WithValue(ctx, claimsKey, claims)
	ctx = context.WithValue(ctx, tokenKey, accessToken)
	return handler(ctx, req)
}

// errorInterceptor turns service errors into gRPC statuses and logs each
// call. Internal errors are logged and replaced by a generic message.
func (s *GRPCServer) errorInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()

	resp, err := handler(ctx, req)
	if err != nil {
		err = s.statusFromError(ctx, info.FullMethod, err)
	}

	s.logger.Info(ctx, "rpc", "method", info.FullMethod, "code", status.Code(err).String(), "duration", time.Since(start))
	return resp, err
}

// errorMapping maps a sentinel to a status code. Opaque mappings reply with
// the sentinel's own message so the wrapped cause stays server-side.
type errorMapping struct {
	target error
	code   codes.Code
	opaque bool
}

var errorMappings = []errorMapping{
	{common.ErrValidation, codes.InvalidArgument, false},
	{common.ErrInvalidAmount, codes.InvalidArgument, false},
	{common.ErrSameAccount, codes.InvalidArgument, false},
	{common.ErrCodeMismatch, codes.InvalidArgument, false},
	{common.ErrInvalidOrExpiredToken, codes.InvalidArgument, true},
	{common.ErrDuplicateIdentity, codes.AlreadyExists, false},
	{common.ErrInvalidCredentials, codes.Unauthenticated, false},
	{common.ErrInvalidOrExpiredSession, codes.Unauthenticated, false},
	{common.ErrRoleMismatch, codes.PermissionDenied, false},
	{common.ErrNoPendingChallenge, codes.FailedPrecondition, false},
	{common.ErrChallengeExpired, codes.FailedPrecondition, false},
	{common.ErrInsufficientFunds, codes.FailedPrecondition, false},
	{common.ErrTooManyAttempts, codes.ResourceExhausted, false},
	{common.ErrCooldown, codes.ResourceExhausted, false},
	{common.ErrorNotFound, codes.NotFound, false},
	{common.ErrStorageConflict, codes.Aborted, true},
}

func (s *GRPCServer) statusFromError(ctx context.Context, method string, err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			msg := err.Error()
			if m.opaque {
				msg = m.target.Error()
			}
			return status.Error(m.code, msg)
		}
	}

	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request cancelled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	}

	s.logger.Error(ctx, "internal error", "method", method, "error", err)
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}
