package grpc

// proto.go defines the gRPC server interface for heartcare/risk/v1/risk.proto.
// Messages are plain structs carried by the JSON codec registered in codec.go,
// so no generated protobuf code is required.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RiskServiceName is the fully qualified gRPC service name.
const RiskServiceName = "heartcare.risk.v1.RiskService"

// PredictMethod is the full method name of RiskService.Predict.
const PredictMethod = "/" + RiskServiceName + "/Predict"

// PredictRequest represents the proto PredictRequest message. Its fields
// mirror the REST request body.
type PredictRequest struct {
	Age             *float64 `json:"Age"`
	Height          *float64 `json:"Height"`
	Weight          *float64 `json:"Weight"`
	BMI             *float64 `json:"BMI"`
	Alcohol         *float64 `json:"Alcohol"`
	Fruit           *float64 `json:"Fruit"`
	GreenVegetables *float64 `json:"Green_Vegetables"`
	FriedPotato     *float64 `json:"Fried_Potato"`
	GeneralHealth   string   `json:"General_Health"`
	Checkup         string   `json:"Checkup"`
	Exercise        string   `json:"Exercise"`
	SkinCancer      string   `json:"Skin_Cancer"`
	OtherCancer     string   `json:"Other_Cancer"`
	Depression      string   `json:"Depression"`
	Diabetes        string   `json:"Diabetes"`
	Arthritis       string   `json:"Arthritis"`
	Sex             string   `json:"Sex"`
	Smoking         string   `json:"Smoking"`
}

// PredictResponse represents the proto PredictResponse message.
type PredictResponse struct {
	PredictionID string  `json:"prediction_id"`
	Classifier   string  `json:"classifier"`
	RiskLabel    string  `json:"risk_label"`
	Probability  float64 `json:"probability"`
	RiskLevel    int32   `json:"risk_level"`
	Class        int32   `json:"class"`
}

// RiskServiceServer is the server API for RiskService.
type RiskServiceServer interface {
	Predict(context.Context, *PredictRequest) (*PredictResponse, error)
	mustEmbedUnimplementedRiskServiceServer()
}

// UnimplementedRiskServiceServer provides forward-compatible default implementations.
type UnimplementedRiskServiceServer struct{}

func (UnimplementedRiskServiceServer) Predict(context.Context, *PredictRequest) (*PredictResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Predict not implemented")
}
func (UnimplementedRiskServiceServer) mustEmbedUnimplementedRiskServiceServer() {}

// RegisterRiskServiceServer registers the RiskServiceServer with the gRPC server.
func RegisterRiskServiceServer(s grpclib.ServiceRegistrar, srv RiskServiceServer) {
	s.RegisterService(&_RiskService_serviceDesc, srv)
}

var _RiskService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: RiskServiceName,
	HandlerType: (*RiskServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "Predict", Handler: _RiskService_Predict_Handler},
	},
	Streams:  []grpclib.StreamDesc{},
	Metadata: "heartcare/risk/v1/risk.proto",
}

func _RiskService_Predict_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(PredictRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RiskServiceServer).Predict(ctx, req)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: PredictMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RiskServiceServer).Predict(ctx, req.(*PredictRequest))
	}
	return interceptor(ctx, req, info, handler)
}

// RiskServiceClient is the client API for RiskService.
type RiskServiceClient interface {
	Predict(ctx context.Context, in *PredictRequest, opts ...grpclib.CallOption) (*PredictResponse, error)
}

type riskServiceClient struct {
	cc grpclib.ClientConnInterface
}

// NewRiskServiceClient creates a client that speaks the JSON codec.
func NewRiskServiceClient(cc grpclib.ClientConnInterface) RiskServiceClient {
	return &riskServiceClient{cc: cc}
}

func (c *riskServiceClient) Predict(ctx context.Context, in *PredictRequest, opts ...grpclib.CallOption) (*PredictResponse, error) {
	out := new(PredictResponse)
	opts = append([]grpclib.CallOption{grpclib.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, PredictMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
