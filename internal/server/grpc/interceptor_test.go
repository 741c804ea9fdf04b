package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/whatsut/internal/chatrpc"
	"github.com/dmitrijs2005/whatsut/internal/common"
	"github.com/dmitrijs2005/whatsut/internal/logging"
	"github.com/dmitrijs2005/whatsut/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type fakeAccounts struct {
	ops       map[string]bool
	banned    map[string]bool
	err       error
	bannedErr error
}

func (f fakeAccounts) IsBanned(_ context.Context, username string) (bool, error) {
	return f.banned[username], f.bannedErr
}

func (f fakeAccounts) IsOperator(_ context.Context, username string) (bool, error) {
	return f.ops[username], f.err
}

const testSecret = "super-secret"

// helper to build server
func newTestServer(requireToken bool, accounts accountChecker) *GRPCServer {
	return NewGRPCServer("", logging.Nop(), nil, accounts, testSecret, Options{RequireToken: requireToken})
}

func tokenCtx(t *testing.T, user string, validity time.Duration) context.Context {
	t.Helper()
	token, err := auth.GenerateToken("id-"+user, user, []byte(testSecret), validity)
	require.NoError(t, err)
	md := metadata.New(map[string]string{common.AccessTokenHeaderName: token})
	return metadata.NewIncomingContext(context.Background(), md)
}

func info(method string) *grpc.UnaryServerInfo {
	return &grpc.UnaryServerInfo{FullMethod: method}
}

func okHandler(ctx context.Context, req interface{}) (interface{}, error) {
	return "ok", nil
}

func mustNotRun(t *testing.T) grpc.UnaryHandler {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called")
		return nil, nil
	}
}

func TestInterceptor_TokensDisabled_AllowsEverything(t *testing.T) {
	s := newTestServer(false, nil)

	resp, err := s.accessTokenInterceptor(context.Background(), &chatrpc.BanDecisionRequest{ID: "x"},
		info(chatrpc.ChatService_ApproveBan_FullMethodName), okHandler)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestInterceptor_PublicMethodsWithoutToken(t *testing.T) {
	s := newTestServer(true, fakeAccounts{})

	for _, m := range []string{
		chatrpc.ChatService_Ping_FullMethodName,
		chatrpc.ChatService_Register_FullMethodName,
		chatrpc.ChatService_Login_FullMethodName,
	} {
		resp, err := s.accessTokenInterceptor(context.Background(), &chatrpc.Credentials{}, info(m), okHandler)
		require.NoError(t, err, m)
		assert.Equal(t, "ok", resp)
	}
}

func TestInterceptor_MissingToken(t *testing.T) {
	s := newTestServer(true, fakeAccounts{})

	_, err := s.accessTokenInterceptor(context.Background(), &chatrpc.Empty{},
		info(chatrpc.ChatService_ListUsers_FullMethodName), mustNotRun(t))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "missing token", status.Convert(err).Message())
}

func TestInterceptor_InvalidAndExpiredToken(t *testing.T) {
	s := newTestServer(true, fakeAccounts{})

	md := metadata.New(map[string]string{common.AccessTokenHeaderName: "not-a-valid-jwt"})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	_, err := s.accessTokenInterceptor(ctx, &chatrpc.Empty{}, info(chatrpc.ChatService_ListUsers_FullMethodName), mustNotRun(t))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "invalid token", status.Convert(err).Message())

	ctx = tokenCtx(t, "alice", -time.Minute)
	_, err = s.accessTokenInterceptor(ctx, &chatrpc.Empty{}, info(chatrpc.ChatService_ListUsers_FullMethodName), mustNotRun(t))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "token expired", status.Convert(err).Message())
}

func TestInterceptor_ValidToken_SetsClaims(t *testing.T) {
	s := newTestServer(true, fakeAccounts{})
	ctx := tokenCtx(t, "alice", time.Hour)

	var got *auth.Claims
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		got, _ = ClaimsFromContext(ctx)
		return "ok", nil
	}

	_, err := s.accessTokenInterceptor(ctx, &chatrpc.SendMessageRequest{From: "alice", To: "bob"},
		info(chatrpc.ChatService_SendMessage_FullMethodName), h)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.UserName)
	assert.Equal(t, "id-alice", got.UserID)
}

func TestInterceptor_RejectsImpersonation(t *testing.T) {
	s := newTestServer(true, fakeAccounts{})
	ctx := tokenCtx(t, "mallory", time.Hour)

	_, err := s.accessTokenInterceptor(ctx, &chatrpc.SendMessageRequest{From: "alice", To: "bob"},
		info(chatrpc.ChatService_SendMessage_FullMethodName), mustNotRun(t))
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestInterceptor_OperatorOnly(t *testing.T) {
	s := newTestServer(true, fakeAccounts{ops: map[string]bool{"root": true}})
	req := &chatrpc.BanDecisionRequest{ID: "b-1"}
	method := info(chatrpc.ChatService_ApproveBan_FullMethodName)

	_, err := s.accessTokenInterceptor(tokenCtx(t, "alice", time.Hour), req, method, mustNotRun(t))
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	resp, err := s.accessTokenInterceptor(tokenCtx(t, "root", time.Hour), req, method, okHandler)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)

	s = newTestServer(true, fakeAccounts{err: errors.New("db down")})
	_, err = s.accessTokenInterceptor(tokenCtx(t, "root", time.Hour), req, method, mustNotRun(t))
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestInterceptor_BannedTokenHolder(t *testing.T) {
	s := newTestServer(true, fakeAccounts{banned: map[string]bool{"mallory": true}})
	ctx := tokenCtx(t, "mallory", time.Hour)

	_, err := s.accessTokenInterceptor(ctx, &chatrpc.UserRequest{UserName: "mallory"},
		info(chatrpc.ChatService_Heartbeat_FullMethodName), mustNotRun(t))
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
	assert.Equal(t, "account banned", status.Convert(err).Message())

	_, err = s.accessTokenInterceptor(ctx, &chatrpc.SendMessageRequest{From: "mallory", To: "bob"},
		info(chatrpc.ChatService_SendMessage_FullMethodName), mustNotRun(t))
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	resp, err := s.accessTokenInterceptor(tokenCtx(t, "bob", time.Hour), &chatrpc.UserRequest{UserName: "bob"},
		info(chatrpc.ChatService_Heartbeat_FullMethodName), okHandler)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)

	// Login stays public so the banned user gets the regular refusal there.
	resp, err = s.accessTokenInterceptor(context.Background(), &chatrpc.Credentials{UserName: "mallory"},
		info(chatrpc.ChatService_Login_FullMethodName), okHandler)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestInterceptor_BanLookupErrors(t *testing.T) {
	ctx := tokenCtx(t, "alice", time.Hour)
	req := &chatrpc.UserRequest{UserName: "alice"}
	method := info(chatrpc.ChatService_Heartbeat_FullMethodName)

	s := newTestServer(true, fakeAccounts{bannedErr: errors.New("db down")})
	_, err := s.accessTokenInterceptor(ctx, req, method, mustNotRun(t))
	assert.Equal(t, codes.Internal, status.Code(err))

	s = newTestServer(true, fakeAccounts{bannedErr: common.ErrorNotFound})
	resp, err := s.accessTokenInterceptor(ctx, req, method, okHandler)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestActsAs(t *testing.T) {
	tests := []struct {
		name   string
		method string
		req    interface{}
		want   bool
	}{
		{"own message", chatrpc.ChatService_SendMessage_FullMethodName, &chatrpc.SendMessageRequest{From: "alice"}, true},
		{"other conversation", chatrpc.ChatService_GetConversation_FullMethodName, &chatrpc.PairRequest{A: "bob", B: "carol"}, false},
		{"own conversation", chatrpc.ChatService_GetConversation_FullMethodName, &chatrpc.PairRequest{A: "bob", B: "alice"}, true},
		{"someone else's heartbeat", chatrpc.ChatService_Heartbeat_FullMethodName, &chatrpc.UserRequest{UserName: "bob"}, false},
		{"is online of others", chatrpc.ChatService_IsOnline_FullMethodName, &chatrpc.UserRequest{UserName: "bob"}, true},
		{"admin op", chatrpc.ChatService_KickMember_FullMethodName, &chatrpc.GroupMemberRequest{Admin: "bob", Member: "alice"}, false},
		{"no acting party", chatrpc.ChatService_ListGroups_FullMethodName, &chatrpc.Empty{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, actsAs(tt.method, tt.req, "alice"))
		})
	}
}

func TestRequestLogInterceptor_SetsRequestID(t *testing.T) {
	s := newTestServer(false, nil)

	var id string
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		id = RequestIDFromContext(ctx)
		return nil, status.Error(codes.Internal, "boom")
	}

	_, err := s.requestLogInterceptor(context.Background(), &chatrpc.Empty{}, info(chatrpc.ChatService_Ping_FullMethodName), h)
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Len(t, id, 36)
}

func tokenFor(t *testing.T, user string) string {
	t.Helper()
	token, err := auth.GenerateToken("id-"+user, user, []byte(testSecret), time.Hour)
	require.NoError(t, err)
	return token
}
