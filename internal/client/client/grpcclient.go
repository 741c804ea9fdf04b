package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/whatsut/internal/chatrpc"
	"github.com/dmitrijs2005/whatsut/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      chatrpc.ChatServiceClient
	maxFileSize int64

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient prepares a connection to endpointURL. No I/O happens until
// the first call.
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, maxFileSize: common.MaxFileSize}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
		grpc.WithDefaultCallOptions(grpc.MaxCallSendMsgSize(int(c.maxFileSize)*2), grpc.MaxCallRecvMsgSize(int(c.maxFileSize)*2)),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = chatrpc.NewChatServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(t string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = t
}

// ClearToken forgets the access token, e.g. on logout.
func (s *GRPCClient) ClearToken() {
	s.setToken("")
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

// result turns a Result into the server's message or an ErrRejected error.
func (s *GRPCClient) result(res *chatrpc.Result, err error) (string, error) {
	if err != nil {
		return "", s.mapError(err)
	}
	if !res.OK {
		return "", fmt.Errorf("%w: %s", ErrRejected, res.Message)
	}
	return res.Message, nil
}

func (s *GRPCClient) Ping(ctx context.Context) (string, error) {
	resp, err := s.client.Ping(ctx, &chatrpc.Empty{})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Message, nil
}

func (s *GRPCClient) Register(ctx context.Context, userName string, password []byte) error {
	_, err := s.result(s.client.Register(ctx, &chatrpc.Credentials{UserName: userName, Password: string(password)}))
	return err
}

// Login keeps the returned access token for subsequent calls.
func (s *GRPCClient) Login(ctx context.Context, userName string, password []byte) error {
	resp, err := s.client.Login(ctx, &chatrpc.Credentials{UserName: userName, Password: string(password)})
	if err != nil {
		return s.mapError(err)
	}
	if !resp.OK {
		return fmt.Errorf("%w: %s", ErrRejected, resp.Message)
	}
	s.setToken(resp.AccessToken)
	return nil
}

func (s *GRPCClient) ListUsers(ctx context.Context) ([]chatrpc.UserInfo, error) {
	resp, err := s.client.ListUsers(ctx, &chatrpc.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Users, nil
}

func (s *GRPCClient) SendMessage(ctx context.Context, from, to, text string) error {
	_, err := s.result(s.client.SendMessage(ctx, &chatrpc.SendMessageRequest{From: from, To: to, Text: text}))
	return err
}

func (s *GRPCClient) Conversation(ctx context.Context, a, b string) ([]chatrpc.PrivateMessage, error) {
	resp, err := s.client.GetConversation(ctx, &chatrpc.PairRequest{A: a, B: b})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Messages, nil
}

// SendFile uploads data and returns the new file id. Payloads above the
// size cap are refused locally.
func (s *GRPCClient) SendFile(ctx context.Context, from, to, fileName string, data []byte) (string, error) {
	if int64(len(data)) > s.maxFileSize {
		return "", fmt.Errorf("%w: %d bytes, limit %d", ErrFileTooLarge, len(data), s.maxFileSize)
	}
	return s.result(s.client.SendFile(ctx, &chatrpc.SendFileRequest{
		From:     from,
		To:       to,
		FileName: fileName,
		Data:     base64.StdEncoding.EncodeToString(data),
	}))
}

func (s *GRPCClient) Files(ctx context.Context, a, b string) ([]chatrpc.FileInfo, error) {
	resp, err := s.client.GetFilesList(ctx, &chatrpc.PairRequest{A: a, B: b})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Files, nil
}

// DownloadFile returns ErrNotFound for unknown ids.
func (s *GRPCClient) DownloadFile(ctx context.Context, id string) (string, []byte, error) {
	resp, err := s.client.DownloadFile(ctx, &chatrpc.DownloadFileRequest{FileID: id})
	if err != nil {
		return "", nil, s.mapError(err)
	}
	if !resp.Found {
		return "", nil, ErrNotFound
	}
	data, err := base64.StdEncoding.DecodeString(resp.Data)
	if err != nil {
		return "", nil, fmt.Errorf("decode payload: %w", err)
	}
	return resp.FileName, data, nil
}

func (s *GRPCClient) Heartbeat(ctx context.Context, userName string) error {
	_, err := s.client.Heartbeat(ctx, &chatrpc.UserRequest{UserName: userName})
	return s.mapError(err)
}

func (s *GRPCClient) IsOnline(ctx context.Context, userName string) (bool, error) {
	resp, err := s.client.IsOnline(ctx, &chatrpc.UserRequest{UserName: userName})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.OK, nil
}

func (s *GRPCClient) SetOffline(ctx context.Context, userName string) error {
	_, err := s.client.SetOffline(ctx, &chatrpc.UserRequest{UserName: userName})
	return s.mapError(err)
}

func (s *GRPCClient) StatusMap(ctx context.Context) (map[string]bool, error) {
	resp, err := s.client.GetStatusMap(ctx, &chatrpc.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Online, nil
}

func (s *GRPCClient) CreateGroup(ctx context.Context, admin, name, policy string) error {
	_, err := s.result(s.client.CreateGroup(ctx, &chatrpc.CreateGroupRequest{Admin: admin, Name: name, Policy: policy}))
	return err
}

func (s *GRPCClient) ListGroups(ctx context.Context) ([]chatrpc.GroupInfo, error) {
	resp, err := s.client.ListGroups(ctx, &chatrpc.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Groups, nil
}

func (s *GRPCClient) GroupsWithStatus(ctx context.Context, userName string) ([]chatrpc.GroupStatus, error) {
	resp, err := s.client.ListGroupsWithStatus(ctx, &chatrpc.UserRequest{UserName: userName})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Groups, nil
}

func (s *GRPCClient) RequestJoin(ctx context.Context, userName, group string) error {
	_, err := s.result(s.client.RequestJoinGroup(ctx, &chatrpc.GroupUserRequest{UserName: userName, Group: group}))
	return err
}

func (s *GRPCClient) PendingRequests(ctx context.Context, admin, group string) ([]string, error) {
	resp, err := s.client.ListPendingRequests(ctx, &chatrpc.GroupAdminRequest{Admin: admin, Group: group})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.UserNames, nil
}

func (s *GRPCClient) ApproveMember(ctx context.Context, admin, group, member string) error {
	_, err := s.result(s.client.ApproveMember(ctx, &chatrpc.GroupMemberRequest{Admin: admin, Group: group, Member: member}))
	return err
}

func (s *GRPCClient) AddMember(ctx context.Context, admin, group, member string) error {
	_, err := s.result(s.client.AddMemberDirect(ctx, &chatrpc.GroupMemberRequest{Admin: admin, Group: group, Member: member}))
	return err
}

func (s *GRPCClient) KickMember(ctx context.Context, admin, group, member string) error {
	_, err := s.result(s.client.KickMember(ctx, &chatrpc.GroupMemberRequest{Admin: admin, Group: group, Member: member}))
	return err
}

func (s *GRPCClient) DeleteGroup(ctx context.Context, admin, group string) error {
	_, err := s.result(s.client.DeleteGroup(ctx, &chatrpc.GroupAdminRequest{Admin: admin, Group: group}))
	return err
}

// LeaveGroup returns the server's description of what happened to the
// group.
func (s *GRPCClient) LeaveGroup(ctx context.Context, userName, group string) (string, error) {
	return s.result(s.client.LeaveGroup(ctx, &chatrpc.GroupUserRequest{UserName: userName, Group: group}))
}

func (s *GRPCClient) SendGroupMessage(ctx context.Context, from, group, text string) error {
	_, err := s.result(s.client.SendGroupMessage(ctx, &chatrpc.SendGroupMessageRequest{From: from, Group: group, Text: text}))
	return err
}

func (s *GRPCClient) GroupConversation(ctx context.Context, group string) ([]chatrpc.GroupMessage, error) {
	resp, err := s.client.GetGroupConversation(ctx, &chatrpc.GroupRequest{Group: group})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Messages, nil
}

// RequestBan returns the id of the new ban request.
func (s *GRPCClient) RequestBan(ctx context.Context, requester, target, reason string) (string, error) {
	return s.result(s.client.RequestBanUser(ctx, &chatrpc.BanUserRequest{Requester: requester, Target: target, Reason: reason}))
}

func (s *GRPCClient) BanRequests(ctx context.Context) ([]chatrpc.BanRequestInfo, error) {
	resp, err := s.client.ListBanRequests(ctx, &chatrpc.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Requests, nil
}

func (s *GRPCClient) ApproveBan(ctx context.Context, id string) error {
	_, err := s.result(s.client.ApproveBan(ctx, &chatrpc.BanDecisionRequest{ID: id}))
	return err
}

func (s *GRPCClient) RejectBan(ctx context.Context, id string) error {
	_, err := s.result(s.client.RejectBan(ctx, &chatrpc.BanDecisionRequest{ID: id}))
	return err
}

func (s *GRPCClient) RegisterCallback(ctx context.Context, userName, endpoint string) error {
	_, err := s.result(s.client.RegisterCallback(ctx, &chatrpc.RegisterCallbackRequest{UserName: userName, Endpoint: endpoint}))
	return err
}

func (s *GRPCClient) UnregisterCallback(ctx context.Context, userName string) error {
	_, err := s.result(s.client.UnregisterCallback(ctx, &chatrpc.UserRequest{UserName: userName}))
	return err
}
