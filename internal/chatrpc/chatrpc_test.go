package chatrpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func TestCodec_Registered(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	require.NotNil(t, c)

	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	b, err := c.Marshal(&PrivateMessage{Sender: "alice", Receiver: "bob", Content: "hi", Timestamp: ts})
	require.NoError(t, err)
	assert.JSONEq(t, `{"sender":"alice","receiver":"bob","content":"hi","timestamp":"2024-03-01T10:00:00Z"}`, string(b))

	var out PrivateMessage
	require.NoError(t, c.Unmarshal(b, &out))
	assert.Equal(t, ts, out.Timestamp)
}

func TestCodec_EmptyUsesProtoJSON(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	require.NotNil(t, c)

	b, err := c.Marshal(&Empty{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(b))

	out := new(Empty)
	require.NoError(t, c.Unmarshal([]byte(`{}`), out))

	err = c.Unmarshal([]byte(`{"unexpected":1}`), new(Empty))
	assert.Error(t, err)
}

type recordingCallbacks struct {
	private chan *NotifyPrivateRequest
	file    chan *NotifyFileRequest
}

func (r *recordingCallbacks) Ping(context.Context, *Empty) (*PingResponse, error) {
	return &PingResponse{Message: "pong"}, nil
}

func (r *recordingCallbacks) NotifyPrivate(_ context.Context, in *NotifyPrivateRequest) (*Empty, error) {
	r.private <- in
	return &Empty{}, nil
}

func (r *recordingCallbacks) NotifyFile(_ context.Context, in *NotifyFileRequest) (*Empty, error) {
	if in.FileName == "" {
		return nil, status.Error(codes.InvalidArgument, "no file")
	}
	r.file <- in
	return &Empty{}, nil
}

func dialBuf(t *testing.T, register func(*grpc.Server), opts ...grpc.ServerOption) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(opts...)
	register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestCallbackService_RoundTrip(t *testing.T) {
	rec := &recordingCallbacks{private: make(chan *NotifyPrivateRequest, 1), file: make(chan *NotifyFileRequest, 1)}
	conn := dialBuf(t, func(s *grpc.Server) { RegisterCallbackServiceServer(s, rec) })
	client := NewCallbackServiceClient(conn)
	ctx := context.Background()

	pong, err := client.Ping(ctx, &Empty{})
	require.NoError(t, err)
	assert.Equal(t, "pong", pong.Message)

	_, err = client.NotifyPrivate(ctx, &NotifyPrivateRequest{Sender: "alice", Receiver: "bob"})
	require.NoError(t, err)
	assert.Equal(t, "alice", (<-rec.private).Sender)

	_, err = client.NotifyFile(ctx, &NotifyFileRequest{Sender: "alice", Receiver: "bob", FileName: "a.txt"})
	require.NoError(t, err)
	assert.Equal(t, "a.txt", (<-rec.file).FileName)

	_, err = client.NotifyFile(ctx, &NotifyFileRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestUnary_RunsInterceptorWithFullMethod(t *testing.T) {
	rec := &recordingCallbacks{private: make(chan *NotifyPrivateRequest, 1), file: make(chan *NotifyFileRequest, 1)}

	var seen string
	intercept := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, h grpc.UnaryHandler) (any, error) {
		seen = info.FullMethod
		if _, ok := req.(*Empty); ok {
			return nil, errors.New("blocked")
		}
		return h(ctx, req)
	}
	conn := dialBuf(t, func(s *grpc.Server) { RegisterCallbackServiceServer(s, rec) }, grpc.UnaryInterceptor(intercept))
	client := NewCallbackServiceClient(conn)

	_, err := client.Ping(context.Background(), &Empty{})
	require.Error(t, err)
	assert.Equal(t, CallbackService_Ping_FullMethodName, seen)

	_, err = client.NotifyPrivate(context.Background(), &NotifyPrivateRequest{Sender: "x"})
	require.NoError(t, err)
	assert.Equal(t, "/whatsut.CallbackService/NotifyPrivate", seen)
}

func TestChatServiceDesc_CoversEveryMethod(t *testing.T) {
	names := map[string]bool{}
	for _, m := range ChatService_ServiceDesc.Methods {
		names[m.MethodName] = true
	}
	for _, want := range []string{
		"Ping", "Register", "Login", "ListUsers", "SendMessage", "GetConversation",
		"SendFile", "GetFilesList", "DownloadFile", "Heartbeat", "IsOnline", "SetOffline",
		"GetStatusMap", "CreateGroup", "ListGroups", "ListGroupsWithStatus", "RequestJoinGroup",
		"ListPendingRequests", "ApproveMember", "AddMemberDirect", "DeleteGroup", "LeaveGroup",
		"KickMember", "SendGroupMessage", "GetGroupConversation", "RequestBanUser",
		"ListBanRequests", "ApproveBan", "RejectBan", "RegisterCallback", "UnregisterCallback",
	} {
		assert.True(t, names[want], want)
	}
	assert.Len(t, names, 31)
}
