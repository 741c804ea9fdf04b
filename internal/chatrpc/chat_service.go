package chatrpc

import (
	"context"

	"google.golang.org/grpc"
)

// ChatServiceName is the fully qualified gRPC service name.
const ChatServiceName = "whatsut.ChatService"

// Full method names, as seen by interceptors.
const (
	ChatService_Ping_FullMethodName                 = "/" + ChatServiceName + "/Ping"
	ChatService_Register_FullMethodName             = "/" + ChatServiceName + "/Register"
	ChatService_Login_FullMethodName                = "/" + ChatServiceName + "/Login"
	ChatService_ListUsers_FullMethodName            = "/" + ChatServiceName + "/ListUsers"
	ChatService_SendMessage_FullMethodName          = "/" + ChatServiceName + "/SendMessage"
	ChatService_GetConversation_FullMethodName      = "/" + ChatServiceName + "/GetConversation"
	ChatService_SendFile_FullMethodName             = "/" + ChatServiceName + "/SendFile"
	ChatService_GetFilesList_FullMethodName         = "/" + ChatServiceName + "/GetFilesList"
	ChatService_DownloadFile_FullMethodName         = "/" + ChatServiceName + "/DownloadFile"
	ChatService_Heartbeat_FullMethodName            = "/" + ChatServiceName + "/Heartbeat"
	ChatService_IsOnline_FullMethodName             = "/" + ChatServiceName + "/IsOnline"
	ChatService_SetOffline_FullMethodName           = "/" + ChatServiceName + "/SetOffline"
	ChatService_GetStatusMap_FullMethodName         = "/" + ChatServiceName + "/GetStatusMap"
	ChatService_CreateGroup_FullMethodName          = "/" + ChatServiceName + "/CreateGroup"
	ChatService_ListGroups_FullMethodName           = "/" + ChatServiceName + "/ListGroups"
	ChatService_ListGroupsWithStatus_FullMethodName = "/" + ChatServiceName + "/ListGroupsWithStatus"
	ChatService_RequestJoinGroup_FullMethodName     = "/" + ChatServiceName + "/RequestJoinGroup"
	ChatService_ListPendingRequests_FullMethodName  = "/" + ChatServiceName + "/ListPendingRequests"
	ChatService_ApproveMember_FullMethodName        = "/" + ChatServiceName + "/ApproveMember"
	ChatService_AddMemberDirect_FullMethodName      = "/" + ChatServiceName + "/AddMemberDirect"
	ChatService_DeleteGroup_FullMethodName          = "/" + ChatServiceName + "/DeleteGroup"
	ChatService_LeaveGroup_FullMethodName           = "/" + ChatServiceName + "/LeaveGroup"
	ChatService_KickMember_FullMethodName           = "/" + ChatServiceName + "/KickMember"
	ChatService_SendGroupMessage_FullMethodName     = "/" + ChatServiceName + "/SendGroupMessage"
	ChatService_GetGroupConversation_FullMethodName = "/" + ChatServiceName + "/GetGroupConversation"
	ChatService_RequestBanUser_FullMethodName       = "/" + ChatServiceName + "/RequestBanUser"
	ChatService_ListBanRequests_FullMethodName      = "/" + ChatServiceName + "/ListBanRequests"
	ChatService_ApproveBan_FullMethodName           = "/" + ChatServiceName + "/ApproveBan"
	ChatService_RejectBan_FullMethodName            = "/" + ChatServiceName + "/RejectBan"
	ChatService_RegisterCallback_FullMethodName     = "/" + ChatServiceName + "/RegisterCallback"
	ChatService_UnregisterCallback_FullMethodName   = "/" + ChatServiceName + "/UnregisterCallback"
)

// ChatServiceServer is implemented by the server and consumed by every client.
type ChatServiceServer interface {
	Ping(context.Context, *Empty) (*PingResponse, error)
	Register(context.Context, *Credentials) (*Result, error)
	Login(context.Context, *Credentials) (*LoginResponse, error)
	ListUsers(context.Context, *Empty) (*ListUsersResponse, error)
	SendMessage(context.Context, *SendMessageRequest) (*Result, error)
	GetConversation(context.Context, *PairRequest) (*ConversationResponse, error)
	SendFile(context.Context, *SendFileRequest) (*Result, error)
	GetFilesList(context.Context, *PairRequest) (*FilesResponse, error)
	DownloadFile(context.Context, *DownloadFileRequest) (*DownloadFileResponse, error)
	Heartbeat(context.Context, *UserRequest) (*Result, error)
	IsOnline(context.Context, *UserRequest) (*Result, error)
	SetOffline(context.Context, *UserRequest) (*Result, error)
	GetStatusMap(context.Context, *Empty) (*StatusMapResponse, error)
	CreateGroup(context.Context, *CreateGroupRequest) (*Result, error)
	ListGroups(context.Context, *Empty) (*ListGroupsResponse, error)
	ListGroupsWithStatus(context.Context, *UserRequest) (*GroupsWithStatusResponse, error)
	RequestJoinGroup(context.Context, *GroupUserRequest) (*Result, error)
	ListPendingRequests(context.Context, *GroupAdminRequest) (*UserNamesResponse, error)
	ApproveMember(context.Context, *GroupMemberRequest) (*Result, error)
	AddMemberDirect(context.Context, *GroupMemberRequest) (*Result, error)
	DeleteGroup(context.Context, *GroupAdminRequest) (*Result, error)
	LeaveGroup(context.Context, *GroupUserRequest) (*Result, error)
	KickMember(context.Context, *GroupMemberRequest) (*Result, error)
	SendGroupMessage(context.Context, *SendGroupMessageRequest) (*Result, error)
	GetGroupConversation(context.Context, *GroupRequest) (*GroupConversationResponse, error)
	RequestBanUser(context.Context, *BanUserRequest) (*Result, error)
	ListBanRequests(context.Context, *Empty) (*BanRequestsResponse, error)
	ApproveBan(context.Context, *BanDecisionRequest) (*Result, error)
	RejectBan(context.Context, *BanDecisionRequest) (*Result, error)
	RegisterCallback(context.Context, *RegisterCallbackRequest) (*Result, error)
	UnregisterCallback(context.Context, *UserRequest) (*Result, error)
}

func RegisterChatServiceServer(s grpc.ServiceRegistrar, srv ChatServiceServer) {
	s.RegisterService(&ChatService_ServiceDesc, srv)
}

var ChatService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ChatServiceName,
	HandlerType: (*ChatServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(ChatService_Ping_FullMethodName, func(srv any, ctx context.Context, in *Empty) (*PingResponse, error) {
			return srv.(ChatServiceServer).Ping(ctx, in)
		}),
		unary(ChatService_Register_FullMethodName, func(srv any, ctx context.Context, in *Credentials) (*Result, error) {
			return srv.(ChatServiceServer).Register(ctx, in)
		}),
		unary(ChatService_Login_FullMethodName, func(srv any, ctx context.Context, in *Credentials) (*LoginResponse, error) {
			return srv.(ChatServiceServer).Login(ctx, in)
		}),
		unary(ChatService_ListUsers_FullMethodName, func(srv any, ctx context.Context, in *Empty) (*ListUsersResponse, error) {
			return srv.(ChatServiceServer).ListUsers(ctx, in)
		}),
		unary(ChatService_SendMessage_FullMethodName, func(srv any, ctx context.Context, in *SendMessageRequest) (*Result, error) {
			return srv.(ChatServiceServer).SendMessage(ctx, in)
		}),
		unary(ChatService_GetConversation_FullMethodName, func(srv any, ctx context.Context, in *PairRequest) (*ConversationResponse, error) {
			return srv.(ChatServiceServer).GetConversation(ctx, in)
		}),
		unary(ChatService_SendFile_FullMethodName, func(srv any, ctx context.Context, in *SendFileRequest) (*Result, error) {
			return srv.(ChatServiceServer).SendFile(ctx, in)
		}),
		unary(ChatService_GetFilesList_FullMethodName, func(srv any, ctx context.Context, in *PairRequest) (*FilesResponse, error) {
			return srv.(ChatServiceServer).GetFilesList(ctx, in)
		}),
		unary(ChatService_DownloadFile_FullMethodName, func(srv any, ctx context.Context, in *DownloadFileRequest) (*DownloadFileResponse, error) {
			return srv.(ChatServiceServer).DownloadFile(ctx, in)
		}),
		unary(ChatService_Heartbeat_FullMethodName, func(srv any, ctx context.Context, in *UserRequest) (*Result, error) {
			return srv.(ChatServiceServer).Heartbeat(ctx, in)
		}),
		unary(ChatService_IsOnline_FullMethodName, func(srv any, ctx context.Context, in *UserRequest) (*Result, error) {
			return srv.(ChatServiceServer).IsOnline(ctx, in)
		}),
		unary(ChatService_SetOffline_FullMethodName, func(srv any, ctx context.Context, in *UserRequest) (*Result, error) {
			return srv.(ChatServiceServer).SetOffline(ctx, in)
		}),
		unary(ChatService_GetStatusMap_FullMethodName, func(srv any, ctx context.Context, in *Empty) (*StatusMapResponse, error) {
			return srv.(ChatServiceServer).GetStatusMap(ctx, in)
		}),
		unary(ChatService_CreateGroup_FullMethodName, func(srv any, ctx context.Context, in *CreateGroupRequest) (*Result, error) {
			return srv.(ChatServiceServer).CreateGroup(ctx, in)
		}),
		unary(ChatService_ListGroups_FullMethodName, func(srv any, ctx context.Context, in *Empty) (*ListGroupsResponse, error) {
			return srv.(ChatServiceServer).ListGroups(ctx, in)
		}),
		unary(ChatService_ListGroupsWithStatus_FullMethodName, func(srv any, ctx context.Context, in *UserRequest) (*GroupsWithStatusResponse, error) {
			return srv.(ChatServiceServer).ListGroupsWithStatus(ctx, in)
		}),
		unary(ChatService_RequestJoinGroup_FullMethodName, func(srv any, ctx context.Context, in *GroupUserRequest) (*Result, error) {
			return srv.(ChatServiceServer).RequestJoinGroup(ctx, in)
		}),
		unary(ChatService_ListPendingRequests_FullMethodName, func(srv any, ctx context.Context, in *GroupAdminRequest) (*UserNamesResponse, error) {
			return srv.(ChatServiceServer).ListPendingRequests(ctx, in)
		}),
		unary(ChatService_ApproveMember_FullMethodName, func(srv any, ctx context.Context, in *GroupMemberRequest) (*Result, error) {
			return srv.(ChatServiceServer).ApproveMember(ctx, in)
		}),
		unary(ChatService_AddMemberDirect_FullMethodName, func(srv any, ctx context.Context, in *GroupMemberRequest) (*Result, error) {
			return srv.(ChatServiceServer).AddMemberDirect(ctx, in)
		}),
		unary(ChatService_DeleteGroup_FullMethodName, func(srv any, ctx context.Context, in *GroupAdminRequest) (*Result, error) {
			return srv.(ChatServiceServer).DeleteGroup(ctx, in)
		}),
		unary(ChatService_LeaveGroup_FullMethodName, func(srv any, ctx context.Context, in *GroupUserRequest) (*Result, error) {
			return srv.(ChatServiceServer).LeaveGroup(ctx, in)
		}),
		unary(ChatService_KickMember_FullMethodName, func(srv any, ctx context.Context, in *GroupMemberRequest) (*Result, error) {
			return srv.(ChatServiceServer).KickMember(ctx, in)
		}),
		unary(ChatService_SendGroupMessage_FullMethodName, func(srv any, ctx context.Context, in *SendGroupMessageRequest) (*Result, error) {
			return srv.(ChatServiceServer).SendGroupMessage(ctx, in)
		}),
		unary(ChatService_GetGroupConversation_FullMethodName, func(srv any, ctx context.Context, in *GroupRequest) (*GroupConversationResponse, error) {
			return srv.(ChatServiceServer).GetGroupConversation(ctx, in)
		}),
		unary(ChatService_RequestBanUser_FullMethodName, func(srv any, ctx context.Context, in *BanUserRequest) (*Result, error) {
			return srv.(ChatServiceServer).RequestBanUser(ctx, in)
		}),
		unary(ChatService_ListBanRequests_FullMethodName, func(srv any, ctx context.Context, in *Empty) (*BanRequestsResponse, error) {
			return srv.(ChatServiceServer).ListBanRequests(ctx, in)
		}),
		unary(ChatService_ApproveBan_FullMethodName, func(srv any, ctx context.Context, in *BanDecisionRequest) (*Result, error) {
			return srv.(ChatServiceServer).ApproveBan(ctx, in)
		}),
		unary(ChatService_RejectBan_FullMethodName, func(srv any, ctx context.Context, in *BanDecisionRequest) (*Result, error) {
			return srv.(ChatServiceServer).RejectBan(ctx, in)
		}),
		unary(ChatService_RegisterCallback_FullMethodName, func(srv any, ctx context.Context, in *RegisterCallbackRequest) (*Result, error) {
			return srv.(ChatServiceServer).RegisterCallback(ctx, in)
		}),
		unary(ChatService_UnregisterCallback_FullMethodName, func(srv any, ctx context.Context, in *UserRequest) (*Result, error) {
			return srv.(ChatServiceServer).UnregisterCallback(ctx, in)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "whatsut.json",
}

// ChatServiceClient is the typed stub for ChatService.
type ChatServiceClient interface {
	Ping(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PingResponse, error)
	Register(ctx context.Context, in *Credentials, opts ...grpc.CallOption) (*Result, error)
	Login(ctx context.Context, in *Credentials, opts ...grpc.CallOption) (*LoginResponse, error)
	ListUsers(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListUsersResponse, error)
	SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*Result, error)
	GetConversation(ctx context.Context, in *PairRequest, opts ...grpc.CallOption) (*ConversationResponse, error)
	SendFile(ctx context.Context, in *SendFileRequest, opts ...grpc.CallOption) (*Result, error)
	GetFilesList(ctx context.Context, in *PairRequest, opts ...grpc.CallOption) (*FilesResponse, error)
	DownloadFile(ctx context.Context, in *DownloadFileRequest, opts ...grpc.CallOption) (*DownloadFileResponse, error)
	Heartbeat(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*Result, error)
	IsOnline(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*Result, error)
	SetOffline(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*Result, error)
	GetStatusMap(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*StatusMapResponse, error)
	CreateGroup(ctx context.Context, in *CreateGroupRequest, opts ...grpc.CallOption) (*Result, error)
	ListGroups(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListGroupsResponse, error)
	ListGroupsWithStatus(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*GroupsWithStatusResponse, error)
	RequestJoinGroup(ctx context.Context, in *GroupUserRequest, opts ...grpc.CallOption) (*Result, error)
	ListPendingRequests(ctx context.Context, in *GroupAdminRequest, opts ...grpc.CallOption) (*UserNamesResponse, error)
	ApproveMember(ctx context.Context, in *GroupMemberRequest, opts ...grpc.CallOption) (*Result, error)
	AddMemberDirect(ctx context.Context, in *GroupMemberRequest, opts ...grpc.CallOption) (*Result, error)
	DeleteGroup(ctx context.Context, in *GroupAdminRequest, opts ...grpc.CallOption) (*Result, error)
	LeaveGroup(ctx context.Context, in *GroupUserRequest, opts ...grpc.CallOption) (*Result, error)
	KickMember(ctx context.Context, in *GroupMemberRequest, opts ...grpc.CallOption) (*Result, error)
	SendGroupMessage(ctx context.Context, in *SendGroupMessageRequest, opts ...grpc.CallOption) (*Result, error)
	GetGroupConversation(ctx context.Context, in *GroupRequest, opts ...grpc.CallOption) (*GroupConversationResponse, error)
	RequestBanUser(ctx context.Context, in *BanUserRequest, opts ...grpc.CallOption) (*Result, error)
	ListBanRequests(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*BanRequestsResponse, error)
	ApproveBan(ctx context.Context, in *BanDecisionRequest, opts ...grpc.CallOption) (*Result, error)
	RejectBan(ctx context.Context, in *BanDecisionRequest, opts ...grpc.CallOption) (*Result, error)
	RegisterCallback(ctx context.Context, in *RegisterCallbackRequest, opts ...grpc.CallOption) (*Result, error)
	UnregisterCallback(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*Result, error)
}

type chatServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewChatServiceClient(cc grpc.ClientConnInterface) ChatServiceClient {
	return &chatServiceClient{cc: cc}
}

func (c *chatServiceClient) Ping(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, ChatService_Ping_FullMethodName, in, opts...)
}

func (c *chatServiceClient) Register(ctx context.Context, in *Credentials, opts ...grpc.CallOption) (*Result, error) {
	return invoke[Result](ctx, c.cc, ChatService_Register_FullMethodName, in, opts...)
}

func (c *chatServiceClient) Login(ctx context.Context, in *Credentials, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, ChatService_Login_FullMethodName, in, opts...)
}

func (c *chatServiceClient) ListUsers(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListUsersResponse, error) {
	return invoke[ListUsersResponse](ctx, c.cc, ChatService_ListUsers_FullMethodName, in, opts...)
}

func (c *chatServiceClient) SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*Result, error) {
	return invoke[Result](ctx, c.cc, ChatService_SendMessage_FullMethodName, in, opts...)
}

func (c *chatServiceClient) GetConversation(ctx context.Context, in *PairRequest, opts ...grpc.CallOption) (*ConversationResponse, error) {
	return invoke[ConversationResponse](ctx, c.cc, ChatService_GetConversation_FullMethodName, in, opts...)
}

func (c *chatServiceClient) SendFile(ctx context.Context, in *SendFileRequest, opts ...grpc.CallOption) (*Result, error) {
	return invoke[Result](ctx, c.cc, ChatService_SendFile_FullMethodName, in, opts...)
}

func (c *chatServiceClient) GetFilesList(ctx context.Context, in *PairRequest, opts ...grpc.CallOption) (*FilesResponse, error) {
	return invoke[FilesResponse](ctx, c.cc, ChatService_GetFilesList_FullMethodName, in, opts...)
}

func (c *chatServiceClient) DownloadFile(ctx context.Context, in *DownloadFileRequest, opts ...grpc.CallOption) (*DownloadFileResponse, error) {
	return invoke[DownloadFileResponse](ctx, c.cc, ChatService_DownloadFile_FullMethodName, in, opts...)
}

func (c *chatServiceClient) Heartbeat(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*Result, error) {
	return invoke[Result](ctx, c.cc, ChatService_Heartbeat_FullMethodName, in, opts...)
}

func (c *chatServiceClient) IsOnline(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*Result, error) {
	return invoke[Result](ctx, c.cc, ChatService_IsOnline_FullMethodName, in, opts...)
}

func (c *chatServiceClient) SetOffline(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*Result, error) {
	return invoke[Result](ctx, c.cc, ChatService_SetOffline_FullMethodName, in, opts...)
}

func (c *chatServiceClient) GetStatusMap(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*StatusMapResponse, error) {
	return invoke[StatusMapResponse](ctx, c.cc, ChatService_GetStatusMap_FullMethodName, in, opts...)
}

func (c *chatServiceClient) CreateGroup(ctx context.Context, in *CreateGroupRequest, opts ...grpc.CallOption) (*Result, error) {
	return invoke[Result](ctx, c.cc, ChatService_CreateGroup_FullMethodName, in, opts...)
}

func (c *chatServiceClient) ListGroups(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListGroupsResponse, error) {
	return invoke[ListGroupsResponse](ctx, c.cc, ChatService_ListGroups_FullMethodName, in, opts...)
}

func (c *chatServiceClient) ListGroupsWithStatus(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*GroupsWithStatusResponse, error) {
	return invoke[GroupsWithStatusResponse](ctx, c.cc, ChatService_ListGroupsWithStatus_FullMethodName, in, opts...)
}

func (c *chatServiceClient) RequestJoinGroup(ctx context.Context, in *GroupUserRequest, opts ...grpc.CallOption) (*Result, error) {
	return invoke[Result](ctx, c.cc, ChatService_RequestJoinGroup_FullMethodName, in, opts...)
}

func (c *chatServiceClient) ListPendingRequests(ctx context.Context, in *GroupAdminRequest, opts ...grpc.CallOption) (*UserNamesResponse, error) {
	return invoke[UserNamesResponse](ctx, c.cc, ChatService_ListPendingRequests_FullMethodName, in, opts...)
}

func (c *chatServiceClient) ApproveMember(ctx context.Context, in *GroupMemberRequest, opts ...grpc.CallOption) (*Result, error) {
	return invoke[Result](ctx, c.cc, ChatService_ApproveMember_FullMethodName, in, opts...)
}

func (c *chatServiceClient) AddMemberDirect(ctx context.Context, in *GroupMemberRequest, opts ...grpc.CallOption) (*Result, error) {
	return invoke[Result](ctx, c.cc, ChatService_AddMemberDirect_FullMethodName, in, opts...)
}

func (c *chatServiceClient) DeleteGroup(ctx context.Context, in *GroupAdminRequest, opts ...grpc.CallOption) (*Result, error) {
	return invoke[Result](ctx, c.cc, ChatService_DeleteGroup_FullMethodName, in, opts...)
}

func (c *chatServiceClient) LeaveGroup(ctx context.Context, in *GroupUserRequest, opts ...grpc.CallOption) (*Result, error) {
	return invoke[Result](ctx, c.cc, ChatService_LeaveGroup_FullMethodName, in, opts...)
}

func (c *chatServiceClient) KickMember(ctx context.Context, in *GroupMemberRequest, opts ...grpc.CallOption) (*Result, error) {
	return invoke[Result](ctx, c.cc, ChatService_KickMember_FullMethodName, in, opts...)
}

func (c *chatServiceClient) SendGroupMessage(ctx context.Context, in *SendGroupMessageRequest, opts ...grpc.CallOption) (*Result, error) {
	return invoke[Result](ctx, c.cc, ChatService_SendGroupMessage_FullMethodName, in, opts...)
}

func (c *chatServiceClient) GetGroupConversation(ctx context.Context, in *GroupRequest, opts ...grpc.CallOption) (*GroupConversationResponse, error) {
	return invoke[GroupConversationResponse](ctx, c.cc, ChatService_GetGroupConversation_FullMethodName, in, opts...)
}

func (c *chatServiceClient) RequestBanUser(ctx context.Context, in *BanUserRequest, opts ...grpc.CallOption) (*Result, error) {
	return invoke[Result](ctx, c.cc, ChatService_RequestBanUser_FullMethodName, in, opts...)
}

func (c *chatServiceClient) ListBanRequests(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*BanRequestsResponse, error) {
	return invoke[BanRequestsResponse](ctx, c.cc, ChatService_ListBanRequests_FullMethodName, in, opts...)
}

func (c *chatServiceClient) ApproveBan(ctx context.Context, in *BanDecisionRequest, opts ...grpc.CallOption) (*Result, error) {
	return invoke[Result](ctx, c.cc, ChatService_ApproveBan_FullMethodName, in, opts...)
}

func (c *chatServiceClient) RejectBan(ctx context.Context, in *BanDecisionRequest, opts ...grpc.CallOption) (*Result, error) {
	return invoke[Result](ctx, c.cc, ChatService_RejectBan_FullMethodName, in, opts...)
}

func (c *chatServiceClient) RegisterCallback(ctx context.Context, in *RegisterCallbackRequest, opts ...grpc.CallOption) (*Result, error) {
	return invoke[Result](ctx, c.cc, ChatService_RegisterCallback_FullMethodName, in, opts...)
}

func (c *chatServiceClient) UnregisterCallback(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*Result, error) {
	return invoke[Result](ctx, c.cc, ChatService_UnregisterCallback_FullMethodName, in, opts...)
}
