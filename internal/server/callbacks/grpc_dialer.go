package callbacks

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/whatsut/internal/chatrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GRPCDialer reaches client endpoints serving chatrpc.CallbackService and
// probes them with Ping before handing out a Notifier.
type GRPCDialer struct {
	Options []grpc.DialOption
}

func (d *GRPCDialer) Dial(ctx context.Context, endpoint string) (Notifier, error) {
	opts := append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, d.Options...)

	conn, err := grpc.NewClient(endpoint, opts...)
	if err != nil {
		return nil, err
	}

	client := chatrpc.NewCallbackServiceClient(conn)
	if _, err := client.Ping(ctx, &chatrpc.Empty{}, grpc.WaitForReady(true)); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("probe: %w", err)
	}

	return &grpcNotifier{conn: conn, client: client}, nil
}

type grpcNotifier struct {
	conn   *grpc.ClientConn
	client chatrpc.CallbackServiceClient
}

func (n *grpcNotifier) NotifyPrivate(ctx context.Context, sender, receiver string) error {
	_, err := n.client.NotifyPrivate(ctx, &chatrpc.NotifyPrivateRequest{Sender: sender, Receiver: receiver})
	return err
}

func (n *grpcNotifier) NotifyFile(ctx context.Context, sender, receiver, fileName string) error {
	_, err := n.client.NotifyFile(ctx, &chatrpc.NotifyFileRequest{Sender: sender, Receiver: receiver, FileName: fileName})
	return err
}

func (n *grpcNotifier) Close() error {
	return n.conn.Close()
}
