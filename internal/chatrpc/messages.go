package chatrpc

import (
	"time"

	"google.golang.org/protobuf/types/known/emptypb"
)

// Empty is the request of parameterless calls and the reply of callbacks.
type Empty = emptypb.Empty

type PingResponse struct {
	Message string `json:"message"`
}

// Result is the reply of every mutating call. Business-rule failures are
// reported here with OK=false, never as a gRPC status.
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

type Credentials struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	OK          bool   `json:"ok"`
	Message     string `json:"message"`
	AccessToken string `json:"access_token,omitempty"`
}

type UserRequest struct {
	UserName string `json:"username"`
}

type UserInfo struct {
	ID       string `json:"id"`
	UserName string `json:"username"`
	Banned   bool   `json:"banned"`
}

type ListUsersResponse struct {
	Users []UserInfo `json:"users"`
}

type SendMessageRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Text string `json:"text"`
}

type PairRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

type PrivateMessage struct {
	Sender    string    `json:"sender"`
	Receiver  string    `json:"receiver"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type ConversationResponse struct {
	Messages []PrivateMessage `json:"messages"`
}

// SendFileRequest carries the payload base64-encoded.
type SendFileRequest struct {
	From     string `json:"from"`
	To       string `json:"to"`
	FileName string `json:"filename"`
	Data     string `json:"data"`
}

type FileInfo struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Receiver  string    `json:"receiver"`
	FileName  string    `json:"filename"`
	Size      int64     `json:"size"`
	Timestamp time.Time `json:"timestamp"`
}

type FilesResponse struct {
	Files []FileInfo `json:"files"`
}

type DownloadFileRequest struct {
	FileID string `json:"file_id"`
}

// DownloadFileResponse is empty (Found=false) for unknown ids.
type DownloadFileResponse struct {
	Found    bool   `json:"found"`
	FileName string `json:"filename,omitempty"`
	Data     string `json:"data,omitempty"`
}

type StatusMapResponse struct {
	Online map[string]bool `json:"online"`
}

type CreateGroupRequest struct {
	Admin  string `json:"admin"`
	Name   string `json:"name"`
	Policy string `json:"policy"`
}

type GroupInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AdminName string `json:"admin"`
}

type ListGroupsResponse struct {
	Groups []GroupInfo `json:"groups"`
}

// GroupStatus.Status is one of "approved", "pending", "none".
type GroupStatus struct {
	Name      string `json:"name"`
	AdminName string `json:"admin"`
	Status    string `json:"status"`
}

type GroupsWithStatusResponse struct {
	Groups []GroupStatus `json:"groups"`
}

type GroupRequest struct {
	Group string `json:"group"`
}

type GroupUserRequest struct {
	UserName string `json:"username"`
	Group    string `json:"group"`
}

type GroupAdminRequest struct {
	Admin string `json:"admin"`
	Group string `json:"group"`
}

type GroupMemberRequest struct {
	Admin  string `json:"admin"`
	Group  string `json:"group"`
	Member string `json:"member"`
}

type UserNamesResponse struct {
	UserNames []string `json:"usernames"`
}

type SendGroupMessageRequest struct {
	From  string `json:"from"`
	Group string `json:"group"`
	Text  string `json:"text"`
}

type GroupMessage struct {
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type GroupConversationResponse struct {
	Messages []GroupMessage `json:"messages"`
}

type BanUserRequest struct {
	Requester string `json:"requester"`
	Target    string `json:"target"`
	Reason    string `json:"reason"`
}

type BanRequestInfo struct {
	ID        string    `json:"id"`
	Requester string    `json:"requester"`
	Target    string    `json:"target"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type BanRequestsResponse struct {
	Requests []BanRequestInfo `json:"requests"`
}

type BanDecisionRequest struct {
	ID string `json:"id"`
}

// RegisterCallbackRequest.Endpoint is a host:port serving CallbackService.
type RegisterCallbackRequest struct {
	UserName string `json:"username"`
	Endpoint string `json:"endpoint"`
}

type NotifyPrivateRequest struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
}

type NotifyFileRequest struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	FileName string `json:"filename"`
}
