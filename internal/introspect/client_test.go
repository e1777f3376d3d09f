package introspect

import (
	"context"
	"errors"
	"testing"

	pb "github.com/AndrewAltimit/sleeper-detect/gen/introspect"
	"google.golang.org/grpc"
)

// #region mock
type mockIntrospectService struct {
	pb.IntrospectServiceClient

	activationsResp *pb.ActivationResponse
	activationsErr  error

	tokenizeResp *pb.TokenizeResponse
	tokenizeErr  error
}

func (m *mockIntrospectService) GetActivations(_ context.Context, _ *pb.ActivationRequest, _ ...grpc.CallOption) (*pb.ActivationResponse, error) {
	return m.activationsResp, m.activationsErr
}

func (m *mockIntrospectService) Tokenize(_ context.Context, _ *pb.TokenizeRequest, _ ...grpc.CallOption) (*pb.TokenizeResponse, error) {
	return m.tokenizeResp, m.tokenizeErr
}

// #endregion mock

// #region constructor-tests
func TestNewClientWithService(t *testing.T) {
	c := NewClientWithService(&mockIntrospectService{})
	if c == nil {
		t.Fatal("expected non-nil client")
	}
	if c.client == nil {
		t.Fatal("expected non-nil internal client")
	}
}

// #endregion constructor-tests

// #region extract-tests
func TestExtract_Success(t *testing.T) {
	mock := &mockIntrospectService{
		activationsResp: &pb.ActivationResponse{
			Activations: []*pb.LayerActivations{
				{Layer: 4, Values: []float32{0.1, 0.2}},
				{Layer: 8, Values: []float32{0.3, 0.4}},
			},
		},
	}
	c := &Client{client: mock}

	byLayer, err := c.Extract(context.Background(), "some text", []int{4, 8})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byLayer) != 2 {
		t.Fatalf("expected 2 layers, got %d", len(byLayer))
	}
	if byLayer[4][0] != 0.1 {
		t.Errorf("expected layer 4 first value 0.1, got %f", byLayer[4][0])
	}
	if byLayer[8][1] != 0.4 {
		t.Errorf("expected layer 8 second value 0.4, got %f", byLayer[8][1])
	}
}

func TestExtract_MissingLayerAbsent(t *testing.T) {
	mock := &mockIntrospectService{
		activationsResp: &pb.ActivationResponse{
			Activations: []*pb.LayerActivations{
				{Layer: 4, Values: []float32{0.1}},
			},
		},
	}
	c := &Client{client: mock}

	byLayer, err := c.Extract(context.Background(), "text", []int{4, 99})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := byLayer[99]; ok {
		t.Error("expected layer 99 absent from result map")
	}
}

func TestExtract_Error(t *testing.T) {
	mock := &mockIntrospectService{
		activationsErr: errors.New("rpc failed"),
	}
	c := &Client{client: mock}

	_, err := c.Extract(context.Background(), "text", []int{4})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, mock.activationsErr) {
		t.Errorf("expected wrapped rpc error, got: %v", err)
	}
}

// #endregion extract-tests

// #region tokenize-tests
func TestTokenize_Success(t *testing.T) {
	mock := &mockIntrospectService{
		tokenizeResp: &pb.TokenizeResponse{
			Tokens: []string{"the", "capital", "of", "france"},
		},
	}
	c := &Client{client: mock}

	tokens, err := c.Tokenize(context.Background(), "the capital of france")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 4 {
		t.Fatalf("expected 4 tokens, got %d", len(tokens))
	}
	if tokens[1] != "capital" {
		t.Errorf("expected token 'capital', got %q", tokens[1])
	}
}

func TestTokenize_Error(t *testing.T) {
	mock := &mockIntrospectService{
		tokenizeErr: errors.New("tokenize failed"),
	}
	c := &Client{client: mock}

	_, err := c.Tokenize(context.Background(), "text")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, mock.tokenizeErr) {
		t.Errorf("expected wrapped tokenize error, got: %v", err)
	}
}

// #endregion tokenize-tests
