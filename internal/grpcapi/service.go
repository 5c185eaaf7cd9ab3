// Package grpcapi serves the dice service over gRPC. Messages are
// google.protobuf.Struct values carrying the same JSON shapes as the HTTP API.
package grpcapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/jimorie/forbidden-lands-dice/internal/dice"
	"github.com/jimorie/forbidden-lands-dice/internal/modifier"
	"github.com/jimorie/forbidden-lands-dice/internal/session"
	"github.com/jimorie/forbidden-lands-dice/internal/table"
)

const ServiceName = "forbiddenlands.dice.v1.DiceService"

// DiceServer is the server API of DiceService.
type DiceServer interface {
	Roll(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Push(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RollConsumable(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RollPreset(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// SettingsSource returns the active table settings.
type SettingsSource interface {
	Settings() table.Settings
}

// Server implements DiceServer on top of a session.Service.
type Server struct {
	svc    *session.Service
	tables SettingsSource
}

func NewServer(svc *session.Service, tables SettingsSource) *Server {
	return &Server{svc: svc, tables: tables}
}

type rollIn struct {
	dice.Request
	Bonus string `json:"bonus,omitempty"`
}

type rollOut struct {
	ID     string      `json:"id"`
	Result dice.Result `json:"result"`
}

type idIn struct {
	ID string `json:"id"`
}

type consumableIn struct {
	Name  string `json:"name"`
	Faces int    `json:"faces"`
}

type presetIn struct {
	Name  string `json:"name"`
	Bonus string `json:"bonus,omitempty"`
}

func (s *Server) Roll(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req rollIn
	if err := fromStruct(in, &req); err != nil {
		return nil, err
	}
	id, res, err := s.svc.Roll(ctx, author(ctx), modifier.Parse(req.Bonus).Apply(req.Request))
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(rollOut{ID: id, Result: res})
}

func (s *Server) Push(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req idIn
	if err := fromStruct(in, &req); err != nil {
		return nil, err
	}
	res, err := s.svc.Push(ctx, author(ctx), req.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(rollOut{ID: req.ID, Result: res})
}

func (s *Server) RollConsumable(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req consumableIn
	if err := fromStruct(in, &req); err != nil {
		return nil, err
	}
	return toStruct(s.svc.Consumable(ctx, author(ctx), req.Name, req.Faces))
}

func (s *Server) RollPreset(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req presetIn
	if err := fromStruct(in, &req); err != nil {
		return nil, err
	}
	r, err := s.tables.Settings().Request(req.Name, req.Bonus)
	if err != nil {
		return nil, toStatus(err)
	}
	id, res, err := s.svc.Roll(ctx, author(ctx), r)
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(rollOut{ID: id, Result: res})
}

// author reads the chat user from the "x-user" metadata key.
func author(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get("x-user"); len(v) > 0 && strings.TrimSpace(v[0]) != "" {
			return strings.TrimSpace(v[0])
		}
	}
	return "anonymous"
}

func fromStruct(in *structpb.Struct, v any) error {
	b, err := protojson.Marshal(in)
	if err != nil {
		return status.Errorf(codes.InvalidArgument, "encode request: %v", err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return status.Errorf(codes.InvalidArgument, "decode request: %v", err)
	}
	return nil
}

func toStruct(v any) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(b, out); err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	return out, nil
}

// toStatus maps domain errors to gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, dice.ErrInvalidRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, session.ErrNotFound), errors.Is(err, table.ErrUnknownPreset):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, dice.ErrAlreadyPushed):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

// Register adds the dice service and a health service to gs and marks both
// serving. The returned health server lets the caller flip status on shutdown.
func Register(gs *grpc.Server, srv DiceServer) *health.Server {
	gs.RegisterService(&serviceDesc, srv)
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(gs, hs)
	return hs
}

// LogUnary logs every unary call with its code and duration.
func LogUnary(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	slog.InfoContext(ctx, "grpc request",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)
	return resp, err
}
