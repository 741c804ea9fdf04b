package grpc

import (
	"context"

	"github.com/dmitrijs2005/whatsut/internal/chatrpc"
	"github.com/dmitrijs2005/whatsut/internal/server/coordinator"
	"github.com/dmitrijs2005/whatsut/internal/server/models"
)

func result(o coordinator.Outcome) *chatrpc.Result {
	return &chatrpc.Result{OK: o.OK, Message: o.Message}
}

func (s *GRPCServer) Ping(ctx context.Context, req *chatrpc.Empty) (*chatrpc.PingResponse, error) {
	return &chatrpc.PingResponse{Message: s.coord.Ping()}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *chatrpc.Credentials) (*chatrpc.Result, error) {
	return result(s.coord.Register(ctx, req.UserName, req.Password)), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *chatrpc.Credentials) (*chatrpc.LoginResponse, error) {
	out := s.coord.Login(ctx, req.UserName, req.Password)
	return &chatrpc.LoginResponse{OK: out.OK, Message: out.Message, AccessToken: out.AccessToken}, nil
}

func (s *GRPCServer) ListUsers(ctx context.Context, req *chatrpc.Empty) (*chatrpc.ListUsersResponse, error) {
	users := s.coord.ListUsers(ctx)
	resp := &chatrpc.ListUsersResponse{Users: make([]chatrpc.UserInfo, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, chatrpc.UserInfo{ID: u.ID, UserName: u.UserName, Banned: u.Banned})
	}
	return resp, nil
}

func (s *GRPCServer) SendMessage(ctx context.Context, req *chatrpc.SendMessageRequest) (*chatrpc.Result, error) {
	return result(s.coord.SendMessage(ctx, req.From, req.To, req.Text)), nil
}

func (s *GRPCServer) GetConversation(ctx context.Context, req *chatrpc.PairRequest) (*chatrpc.ConversationResponse, error) {
	msgs := s.coord.GetConversation(ctx, req.A, req.B)
	resp := &chatrpc.ConversationResponse{Messages: make([]chatrpc.PrivateMessage, 0, len(msgs))}
	for _, m := range msgs {
		resp.Messages = append(resp.Messages, chatrpc.PrivateMessage{
			Sender:    m.SenderName,
			Receiver:  m.ReceiverName,
			Content:   m.Content,
			Timestamp: m.CreatedAt,
		})
	}
	return resp, nil
}

func (s *GRPCServer) SendFile(ctx context.Context, req *chatrpc.SendFileRequest) (*chatrpc.Result, error) {
	return result(s.coord.SendFile(ctx, req.From, req.To, req.FileName, req.Data)), nil
}

func (s *GRPCServer) GetFilesList(ctx context.Context, req *chatrpc.PairRequest) (*chatrpc.FilesResponse, error) {
	files := s.coord.GetFilesList(ctx, req.A, req.B)
	resp := &chatrpc.FilesResponse{Files: make([]chatrpc.FileInfo, 0, len(files))}
	for _, f := range files {
		resp.Files = append(resp.Files, fileInfo(f))
	}
	return resp, nil
}

func fileInfo(f *models.File) chatrpc.FileInfo {
	return chatrpc.FileInfo{
		ID:        f.ID,
		Sender:    f.SenderName,
		Receiver:  f.ReceiverName,
		FileName:  f.FileName,
		Size:      f.Size,
		Timestamp: f.CreatedAt,
	}
}

func (s *GRPCServer) DownloadFile(ctx context.Context, req *chatrpc.DownloadFileRequest) (*chatrpc.DownloadFileResponse, error) {
	name, data, found := s.coord.DownloadFile(ctx, req.FileID)
	return &chatrpc.DownloadFileResponse{Found: found, FileName: name, Data: data}, nil
}

func (s *GRPCServer) Heartbeat(ctx context.Context, req *chatrpc.UserRequest) (*chatrpc.Result, error) {
	s.coord.Heartbeat(req.UserName)
	return &chatrpc.Result{OK: true}, nil
}

func (s *GRPCServer) IsOnline(ctx context.Context, req *chatrpc.UserRequest) (*chatrpc.Result, error) {
	return &chatrpc.Result{OK: s.coord.IsOnline(req.UserName)}, nil
}

func (s *GRPCServer) SetOffline(ctx context.Context, req *chatrpc.UserRequest) (*chatrpc.Result, error) {
	s.coord.SetOffline(req.UserName)
	return &chatrpc.Result{OK: true}, nil
}

func (s *GRPCServer) GetStatusMap(ctx context.Context, req *chatrpc.Empty) (*chatrpc.StatusMapResponse, error) {
	return &chatrpc.StatusMapResponse{Online: s.coord.StatusMap(ctx)}, nil
}

func (s *GRPCServer) CreateGroup(ctx context.Context, req *chatrpc.CreateGroupRequest) (*chatrpc.Result, error) {
	return result(s.coord.CreateGroup(ctx, req.Admin, req.Name, req.Policy)), nil
}

func (s *GRPCServer) ListGroups(ctx context.Context, req *chatrpc.Empty) (*chatrpc.ListGroupsResponse, error) {
	groups := s.coord.ListGroups(ctx)
	resp := &chatrpc.ListGroupsResponse{Groups: make([]chatrpc.GroupInfo, 0, len(groups))}
	for _, g := range groups {
		resp.Groups = append(resp.Groups, chatrpc.GroupInfo{ID: g.ID, Name: g.Name, AdminName: g.AdminName})
	}
	return resp, nil
}

func (s *GRPCServer) ListGroupsWithStatus(ctx context.Context, req *chatrpc.UserRequest) (*chatrpc.GroupsWithStatusResponse, error) {
	groups := s.coord.ListGroupsWithStatus(ctx, req.UserName)
	resp := &chatrpc.GroupsWithStatusResponse{Groups: make([]chatrpc.GroupStatus, 0, len(groups))}
	for _, g := range groups {
		resp.Groups = append(resp.Groups, chatrpc.GroupStatus{Name: g.Name, AdminName: g.AdminName, Status: string(g.Status)})
	}
	return resp, nil
}

func (s *GRPCServer) RequestJoinGroup(ctx context.Context, req *chatrpc.GroupUserRequest) (*chatrpc.Result, error) {
	return result(s.coord.RequestJoinGroup(ctx, req.UserName, req.Group)), nil
}

func (s *GRPCServer) ListPendingRequests(ctx context.Context, req *chatrpc.GroupAdminRequest) (*chatrpc.UserNamesResponse, error) {
	names := s.coord.ListPendingRequests(ctx, req.Admin, req.Group)
	if names == nil {
		names = []string{}
	}
	return &chatrpc.UserNamesResponse{UserNames: names}, nil
}

func (s *GRPCServer) ApproveMember(ctx context.Context, req *chatrpc.GroupMemberRequest) (*chatrpc.Result, error) {
	return result(s.coord.ApproveMember(ctx, req.Admin, req.Group, req.Member)), nil
}

func (s *GRPCServer) AddMemberDirect(ctx context.Context, req *chatrpc.GroupMemberRequest) (*chatrpc.Result, error) {
	return result(s.coord.AddMemberDirect(ctx, req.Admin, req.Group, req.Member)), nil
}

func (s *GRPCServer) DeleteGroup(ctx context.Context, req *chatrpc.GroupAdminRequest) (*chatrpc.Result, error) {
	return result(s.coord.DeleteGroup(ctx, req.Admin, req.Group)), nil
}

func (s *GRPCServer) LeaveGroup(ctx context.Context, req *chatrpc.GroupUserRequest) (*chatrpc.Result, error) {
	return result(s.coord.LeaveGroup(ctx, req.UserName, req.Group)), nil
}

func (s *GRPCServer) KickMember(ctx context.Context, req *chatrpc.GroupMemberRequest) (*chatrpc.Result, error) {
	return result(s.coord.KickMember(ctx, req.Admin, req.Group, req.Member)), nil
}

func (s *GRPCServer) SendGroupMessage(ctx context.Context, req *chatrpc.SendGroupMessageRequest) (*chatrpc.Result, error) {
	return result(s.coord.SendGroupMessage(ctx, req.From, req.Group, req.Text)), nil
}

func (s *GRPCServer) GetGroupConversation(ctx context.Context, req *chatrpc.GroupRequest) (*chatrpc.GroupConversationResponse, error) {
	msgs := s.coord.GetGroupConversation(ctx, req.Group)
	resp := &chatrpc.GroupConversationResponse{Messages: make([]chatrpc.GroupMessage, 0, len(msgs))}
	for _, m := range msgs {
		resp.Messages = append(resp.Messages, chatrpc.GroupMessage{Sender: m.SenderName, Content: m.Content, Timestamp: m.CreatedAt})
	}
	return resp, nil
}

func (s *GRPCServer) RequestBanUser(ctx context.Context, req *chatrpc.BanUserRequest) (*chatrpc.Result, error) {
	return result(s.coord.RequestBanUser(ctx, req.Requester, req.Target, req.Reason)), nil
}

func (s *GRPCServer) ListBanRequests(ctx context.Context, req *chatrpc.Empty) (*chatrpc.BanRequestsResponse, error) {
	reqs := s.coord.ListBanRequests(ctx)
	resp := &chatrpc.BanRequestsResponse{Requests: make([]chatrpc.BanRequestInfo, 0, len(reqs))}
	for _, b := range reqs {
		resp.Requests = append(resp.Requests, chatrpc.BanRequestInfo{
			ID:        b.ID,
			Requester: b.RequesterName,
			Target:    b.TargetName,
			Reason:    b.Reason,
			Status:    string(b.Status),
			Timestamp: b.CreatedAt,
		})
	}
	return resp, nil
}

func (s *GRPCServer) ApproveBan(ctx context.Context, req *chatrpc.BanDecisionRequest) (*chatrpc.Result, error) {
	return result(s.coord.ApproveBan(ctx, req.ID)), nil
}

func (s *GRPCServer) RejectBan(ctx context.Context, req *chatrpc.BanDecisionRequest) (*chatrpc.Result, error) {
	return result(s.coord.RejectBan(ctx, req.ID)), nil
}

func (s *GRPCServer) RegisterCallback(ctx context.Context, req *chatrpc.RegisterCallbackRequest) (*chatrpc.Result, error) {
	return result(s.coord.RegisterCallback(ctx, req.UserName, req.Endpoint)), nil
}

func (s *GRPCServer) UnregisterCallback(ctx context.Context, req *chatrpc.UserRequest) (*chatrpc.Result, error) {
	return result(s.coord.UnregisterCallback(req.UserName)), nil
}
