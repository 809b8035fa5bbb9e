package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "greedisland.v1alpha1.GameService"

// GameServiceServer is the server API for the game service
type GameServiceServer interface {
	CreateSession(context.Context, *CreateSessionRequest) (*SessionResponse, error)
	GetSession(context.Context, *GetSessionRequest) (*SessionResponse, error)
	Explore(context.Context, *ExploreRequest) (*ActionResponse, error)
	Choose(context.Context, *ChooseRequest) (*ChooseResponse, error)
	Travel(context.Context, *TravelRequest) (*ActionResponse, error)
	UseCard(context.Context, *UseCardRequest) (*ActionResponse, error)
	ConsultBook(context.Context, *ConsultBookRequest) (*ConsultBookResponse, error)
	ProceedToRewards(context.Context, *ProceedToRewardsRequest) (*ActionResponse, error)
	ToggleEndingSelection(context.Context, *ToggleEndingSelectionRequest) (*ToggleEndingSelectionResponse, error)
	FinishGame(context.Context, *FinishGameRequest) (*FinishGameResponse, error)
	Retry(context.Context, *RetryRequest) (*ActionResponse, error)
}

// unary builds the method descriptor for one RPC
func unary[Req, Resp any](
	name string, call func(GameServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name

	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(GameServiceServer), ctx, in)
			}

			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(GameServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// GameServiceDesc describes the game service for grpc.Server
var GameServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GameServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreateSession", GameServiceServer.CreateSession),
		unary("GetSession", GameServiceServer.GetSession),
		unary("Explore", GameServiceServer.Explore),
		unary("Choose", GameServiceServer.Choose),
		unary("Travel", GameServiceServer.Travel),
		unary("UseCard", GameServiceServer.UseCard),
		unary("ConsultBook", GameServiceServer.ConsultBook),
		unary("ProceedToRewards", GameServiceServer.ProceedToRewards),
		unary("ToggleEndingSelection", GameServiceServer.ToggleEndingSelection),
		unary("FinishGame", GameServiceServer.FinishGame),
		unary("Retry", GameServiceServer.Retry),
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterGameServiceServer registers srv on s
func RegisterGameServiceServer(s grpc.ServiceRegistrar, srv GameServiceServer) {
	s.RegisterService(&GameServiceDesc, srv)
}

// GameServiceClient calls the game service with the JSON codec
type GameServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGameServiceClient wraps a client connection
func NewGameServiceClient(cc grpc.ClientConnInterface) *GameServiceClient {
	return &GameServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, c *GameServiceClient, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSession starts a game
func (c *GameServiceClient) CreateSession(ctx context.Context, in *CreateSessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c, "CreateSession", in, opts)
}

// GetSession reads a game
func (c *GameServiceClient) GetSession(ctx context.Context, in *GetSessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c, "GetSession", in, opts)
}

// Explore asks for an encounter
func (c *GameServiceClient) Explore(ctx context.Context, in *ExploreRequest, opts ...grpc.CallOption) (*ActionResponse, error) {
	return invoke[ActionResponse](ctx, c, "Explore", in, opts)
}

// Choose picks a scenario choice
func (c *GameServiceClient) Choose(ctx context.Context, in *ChooseRequest, opts ...grpc.CallOption) (*ChooseResponse, error) {
	return invoke[ChooseResponse](ctx, c, "Choose", in, opts)
}

// Travel moves to the next location
func (c *GameServiceClient) Travel(ctx context.Context, in *TravelRequest, opts ...grpc.CallOption) (*ActionResponse, error) {
	return invoke[ActionResponse](ctx, c, "Travel", in, opts)
}

// UseCard uses a card
func (c *GameServiceClient) UseCard(ctx context.Context, in *UseCardRequest, opts ...grpc.CallOption) (*ActionResponse, error) {
	return invoke[ActionResponse](ctx, c, "UseCard", in, opts)
}

// ConsultBook asks the Book
func (c *GameServiceClient) ConsultBook(ctx context.Context, in *ConsultBookRequest, opts ...grpc.CallOption) (*ConsultBookResponse, error) {
	return invoke[ConsultBookResponse](ctx, c, "ConsultBook", in, opts)
}

// ProceedToRewards opens reward selection
func (c *GameServiceClient) ProceedToRewards(ctx context.Context, in *ProceedToRewardsRequest, opts ...grpc.CallOption) (*ActionResponse, error) {
	return invoke[ActionResponse](ctx, c, "ProceedToRewards", in, opts)
}

// ToggleEndingSelection toggles a kept card
func (c *GameServiceClient) ToggleEndingSelection(ctx context.Context, in *ToggleEndingSelectionRequest, opts ...grpc.CallOption) (*ToggleEndingSelectionResponse, error) {
	return invoke[ToggleEndingSelectionResponse](ctx, c, "ToggleEndingSelection", in, opts)
}

// FinishGame ends a won game
func (c *GameServiceClient) FinishGame(ctx context.Context, in *FinishGameRequest, opts ...grpc.CallOption) (*FinishGameResponse, error) {
	return invoke[FinishGameResponse](ctx, c, "FinishGame", in, opts)
}

// Retry starts over
func (c *GameServiceClient) Retry(ctx context.Context, in *RetryRequest, opts ...grpc.CallOption) (*ActionResponse, error) {
	return invoke[ActionResponse](ctx, c, "Retry", in, opts)
}
