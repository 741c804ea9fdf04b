package client

import (
	"context"
	"net"
	"sync"

	"github.com/dmitrijs2005/whatsut/internal/chatrpc"
	"github.com/dmitrijs2005/whatsut/internal/netx"
	"google.golang.org/grpc"
)

// NotificationHandler receives pushes from the server. Calls may arrive
// concurrently.
type NotificationHandler interface {
	PrivateMessage(sender, receiver string)
	FileTransfer(sender, receiver, fileName string)
}

// CallbackServer serves whatsut.CallbackService for one logged-in client.
type CallbackServer struct {
	handler NotificationHandler
	srv     *grpc.Server
	lis     net.Listener

	once sync.Once
	done chan struct{}
}

// ListenCallbacks binds addr (use port 0 for an ephemeral port) and starts
// serving in the background.
func ListenCallbacks(addr string, h NotificationHandler) (*CallbackServer, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	return ServeCallbacks(lis, h), nil
}

// ServeCallbacks serves on an existing listener.
func ServeCallbacks(lis net.Listener, h NotificationHandler) *CallbackServer {
	s := &CallbackServer{
		handler: h,
		srv:     grpc.NewServer(),
		lis:     lis,
		done:    make(chan struct{}),
	}
	chatrpc.RegisterCallbackServiceServer(s.srv, &callbackHandler{h: h})

	go func() {
		defer close(s.done)
		_ = s.srv.Serve(lis)
	}()
	return s
}

// Addr is the endpoint to hand to RegisterCallback. A wildcard listen host
// is reported as loopback.
func (s *CallbackServer) Addr() string {
	addr, err := netx.DialableAddr(s.lis.Addr(), "127.0.0.1")
	if err != nil {
		return s.lis.Addr().String()
	}
	return addr
}

func (s *CallbackServer) Stop() {
	s.once.Do(func() {
		s.srv.Stop()
		<-s.done
	})
}

type callbackHandler struct {
	h NotificationHandler
}

func (c *callbackHandler) Ping(context.Context, *chatrpc.Empty) (*chatrpc.PingResponse, error) {
	return &chatrpc.PingResponse{Message: "pong"}, nil
}

func (c *callbackHandler) NotifyPrivate(_ context.Context, in *chatrpc.NotifyPrivateRequest) (*chatrpc.Empty, error) {
	c.h.PrivateMessage(in.Sender, in.Receiver)
	return &chatrpc.Empty{}, nil
}

func (c *callbackHandler) NotifyFile(_ context.Context, in *chatrpc.NotifyFileRequest) (*chatrpc.Empty, error) {
	c.h.FileTransfer(in.Sender, in.Receiver, in.FileName)
	return &chatrpc.Empty{}, nil
}
