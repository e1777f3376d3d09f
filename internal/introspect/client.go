package introspect

import (
	"context"
	"fmt"

	pb "github.com/AndrewAltimit/sleeper-detect/gen/introspect"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #region client-struct
// Client wraps the gRPC connection to the model introspection service. It
// satisfies activations.Source, so a Detector or Discoverer can be pointed at
// a live model runtime by constructing one of these.
type Client struct {
	conn   *grpc.ClientConn
	client pb.IntrospectServiceClient
}

// #endregion client-struct

// #region constructor
// NewClient connects to the introspection gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewIntrospectServiceClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service implementation.
// Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.IntrospectServiceClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region extract
// Extract fetches one mean-pooled activation vector per requested layer.
// Layers the serving side does not expose are simply absent from the result
// map; callers decide whether that is fatal.
func (c *Client) Extract(ctx context.Context, text string, layers []int) (map[int][]float32, error) {
	req := &pb.ActivationRequest{Text: text, Layers: make([]int32, len(layers))}
	for i, l := range layers {
		req.Layers[i] = int32(l)
	}

	resp, err := c.client.GetActivations(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("get activations rpc: %w", err)
	}

	byLayer := make(map[int][]float32, len(resp.Activations))
	for _, la := range resp.Activations {
		byLayer[int(la.Layer)] = la.Values
	}
	return byLayer, nil
}

// #endregion extract

// #region tokenize
// Tokenize returns the runtime's token strings for the given text.
func (c *Client) Tokenize(ctx context.Context, text string) ([]string, error) {
	resp, err := c.client.Tokenize(ctx, &pb.TokenizeRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("tokenize rpc: %w", err)
	}
	return resp.Tokens, nil
}

// #endregion tokenize
