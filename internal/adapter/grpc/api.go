package grpc

import (
	"context"
	"time"

	grpclib "google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/Jiayao2006/AIVest/internal/domain"
)

// ClientReader is the part of the client use case served over gRPC
type ClientReader interface {
	Get(ctx context.Context, id string) (*domain.Client, error)
}

// RecommendationReader is the part of the recommendation use case served over gRPC
type RecommendationReader interface {
	GetDetail(ctx context.Context, id string) (*domain.Recommendation, error)
}

// Services are the use cases exposed as RPCs; a nil field leaves that service unregistered
type Services struct {
	Clients         ClientReader
	Recommendations RecommendationReader
}

// Full method names, usable with grpc.ClientConn.Invoke
const (
	MethodGetClient               = "/" + ServiceClients + "/Get"
	MethodGetRecommendationDetail = "/" + ServiceRecommendations + "/GetDetail"
)

// The RPCs take the identifier as a StringValue and answer with the record as a Struct,
// so no generated code is needed beyond the protobuf well-known types.
type clientsServer interface {
	GetClient(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error)
}

type recommendationsServer interface {
	GetRecommendationDetail(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error)
}

var clientsServiceDesc = grpclib.ServiceDesc{
	ServiceName: ServiceClients,
	HandlerType: (*clientsServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "Get", Handler: getClientHandler},
	},
	Streams: []grpclib.StreamDesc{},
}

var recommendationsServiceDesc = grpclib.ServiceDesc{
	ServiceName: ServiceRecommendations,
	HandlerType: (*recommendationsServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "GetDetail", Handler: getRecommendationDetailHandler},
	},
	Streams: []grpclib.StreamDesc{},
}

func getClientHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(clientsServer).GetClient(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: MethodGetClient}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(clientsServer).GetClient(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func getRecommendationDetailHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(recommendationsServer).GetRecommendationDetail(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: MethodGetRecommendationDetail}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(recommendationsServer).GetRecommendationDetail(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// apiServer implements the RPCs over the use cases.
// Domain errors are returned as-is; LoggingInterceptor converts them to status codes.
type apiServer struct {
	clients         ClientReader
	recommendations RecommendationReader
}

func (s *apiServer) GetClient(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
	client, err := s.clients.Get(ctx, in.GetValue())
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(clientFields(client))
}

func (s *apiServer) GetRecommendationDetail(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
	rec, err := s.recommendations.GetDetail(ctx, in.GetValue())
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(recommendationFields(rec))
}

func clientFields(c *domain.Client) map[string]interface{} {
	fields := map[string]interface{}{
		"id":          c.ID,
		"name":        c.Name,
		"phone":       c.Phone,
		"aum":         c.AUM.InexactFloat64(),
		"domicile":    c.Domicile,
		"segments":    stringValues(c.Segments),
		"keyContacts": stringValues(c.KeyContacts),
		"description": c.Description,
		"riskProfile": string(c.RiskProfile),
	}
	if c.CreatedAt != nil {
		fields["createdAt"] = c.CreatedAt.UTC().Format(time.RFC3339Nano)
	}
	return fields
}

func recommendationFields(r *domain.Recommendation) map[string]interface{} {
	fields := map[string]interface{}{
		"id":              r.ID,
		"clientId":        r.ClientID,
		"type":            r.Type,
		"title":           r.Title,
		"summary":         r.Summary,
		"priority":        string(r.Priority),
		"confidence":      r.Confidence,
		"estimatedImpact": r.EstimatedImpact,
		"status":          string(r.Status),
		"createdAt":       r.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if r.ActionDate != nil {
		fields["actionDate"] = r.ActionDate.UTC().Format(time.RFC3339Nano)
	}
	if r.Notes != nil {
		fields["notes"] = *r.Notes
	}
	if r.DetailedDescription != "" {
		fields["detailedDescription"] = r.DetailedDescription
	}
	if len(r.Benefits) > 0 {
		fields["benefits"] = stringValues(r.Benefits)
	}
	if len(r.Risks) > 0 {
		fields["risks"] = stringValues(r.Risks)
	}
	if len(r.ImplementationSteps) > 0 {
		fields["implementationSteps"] = stringValues(r.ImplementationSteps)
	}
	return fields
}

// stringValues converts to the []interface{} shape structpb accepts
func stringValues(values []string) []interface{} {
	out := make([]interface{}, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}
