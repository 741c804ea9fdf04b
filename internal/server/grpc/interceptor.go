package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/whatsut/internal/chatrpc"
	"github.com/dmitrijs2005/whatsut/internal/common"
	"github.com/dmitrijs2005/whatsut/internal/server/auth"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const (
	claimsKey    ctxKey = "claims"
	requestIDKey ctxKey = "requestID"
)

// RequestIDHeader is set on every response.
const RequestIDHeader = "x-request-id"

var publicMethods = map[string]bool{
	chatrpc.ChatService_Ping_FullMethodName:     true,
	chatrpc.ChatService_Register_FullMethodName: true,
	chatrpc.ChatService_Login_FullMethodName:    true,
}

var operatorMethods = map[string]bool{
	chatrpc.ChatService_ApproveBan_FullMethodName: true,
	chatrpc.ChatService_RejectBan_FullMethodName:  true,
}

// ClaimsFromContext returns the verified token claims of the caller, if the
// call carried a token.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*auth.Claims)
	return c, ok
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func (s *GRPCServer) requestLogInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	id := uuid.NewString()
	ctx = context.WithValue(ctx, requestIDKey, id)
	_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, id))

	start := time.Now()
	resp, err := handler(ctx, req)

	args := []any{"request_id", id, "method", info.FullMethod, "duration", time.Since(start)}
	if err != nil {
		s.logger.Warn(ctx, "request failed", append(args, "code", status.Code(err).String(), "error", err)...)
	} else {
		s.logger.Debug(ctx, "request served", args...)
	}
	return resp, err
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if !s.requireToken || publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	claims, err := auth.ParseToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "token expired")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	if !actsAs(info.FullMethod, req, claims.UserName) {
		return nil, status.Error(codes.PermissionDenied, "request is not on behalf of the token holder")
	}

	banned, err := s.accounts.IsBanned(ctx, claims.UserName)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		s.logger.Error(ctx, "ban lookup failed", "user", claims.UserName, "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}
	if banned {
		return nil, status.Error(codes.PermissionDenied, "account banned")
	}

	if operatorMethods[info.FullMethod] {
		ok, err := s.accounts.IsOperator(ctx, claims.UserName)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(ctx, "operator lookup failed", "user", claims.UserName, "error", err)
			return nil, status.Error(codes.Internal, "internal error")
		}
		if !ok {
			return nil, status.Error(codes.PermissionDenied, "operator only")
		}
	}

	ctx = context.WithValue(ctx, claimsKey, claims)
	return handler(ctx, req)
}

// actsAs reports whether a request names user as the acting party. Requests
// without an acting party always pass.
func actsAs(method string, req interface{}, user string) bool {
	switch r := req.(type) {
	case *chatrpc.SendMessageRequest:
		return r.From == user
	case *chatrpc.SendFileRequest:
		return r.From == user
	case *chatrpc.SendGroupMessageRequest:
		return r.From == user
	case *chatrpc.PairRequest:
		return r.A == user || r.B == user
	case *chatrpc.CreateGroupRequest:
		return r.Admin == user
	case *chatrpc.GroupUserRequest:
		return r.UserName == user
	case *chatrpc.GroupAdminRequest:
		return r.Admin == user
	case *chatrpc.GroupMemberRequest:
		return r.Admin == user
	case *chatrpc.BanUserRequest:
		return r.Requester == user
	case *chatrpc.RegisterCallbackRequest:
		return r.UserName == user
	case *chatrpc.UserRequest:
		// IsOnline asks about someone else.
		if method == chatrpc.ChatService_IsOnline_FullMethodName {
			return true
		}
		return r.UserName == user
	default:
		return true
	}
}
