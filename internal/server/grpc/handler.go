package grpc

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	pb "github.com/dmitrijs2005/todokeeper/internal/proto"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type userService interface {
	Register(ctx context.Context, email, password, name string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.Session, error)
	Profile(ctx context.Context, userID string) (*models.User, error)
}

type todoService interface {
	List(ctx context.Context, callerID string) ([]*models.Todo, error)
	Get(ctx context.Context, callerID, id string) (*models.Todo, error)
	Create(ctx context.Context, callerID string, fields models.TodoFields) (*models.Todo, error)
	Update(ctx context.Context, callerID, id string, patch models.TodoPatch) error
	Delete(ctx context.Context, callerID, id string) error
}

type attachmentService interface {
	Replace(ctx context.Context, userID string, data []byte, filename string) (string, error)
	FetchForUser(ctx context.Context, userID string) (*models.Attachment, error)
}

// toStatus maps service errors onto gRPC codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrDuplicateEmail):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrMissingCredential),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrUnknownField):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrUnsupported):
		return status.Error(codes.Unimplemented, err.Error())
	case errors.Is(err, common.ErrStorage):
		return status.Error(codes.Unavailable, "storage unavailable")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func toUser(u *models.User) *pb.User {
	return &pb.User{Id: u.ID, Email: u.Email, Name: u.Name, AttachmentRef: u.AttachmentRef}
}

func toTodo(t *models.Todo) *pb.Todo {
	return &pb.Todo{Id: t.ID, OwnerId: t.OwnerID, Name: t.Name, Description: t.Description, Complete: t.Complete}
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	u, err := s.users.Register(ctx, req.GetEmail(), req.GetPassword(), req.GetName())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.RegisterResponse{User: toUser(u)}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	sess, err := s.users.Login(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.LoginResponse{
		AccessToken: sess.Token,
		ExpiresAt:   timestamppb.New(sess.ExpiresAt),
		User:        toUser(sess.User),
	}, nil
}

func (s *GRPCServer) Profile(ctx context.Context, _ *pb.ProfileRequest) (*pb.ProfileResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.users.Profile(ctx, userID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ProfileResponse{User: toUser(u)}, nil
}

func (s *GRPCServer) ListTodos(ctx context.Context, _ *pb.ListTodosRequest) (*pb.ListTodosResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.todos.List(ctx, userID)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &pb.ListTodosResponse{Todos: make([]*pb.Todo, 0, len(list))}
	for _, t := range list {
		resp.Todos = append(resp.Todos, toTodo(t))
	}
	return resp, nil
}

func (s *GRPCServer) GetTodo(ctx context.Context, req *pb.GetTodoRequest) (*pb.TodoResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	t, err := s.todos.Get(ctx, userID, req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.TodoResponse{Todo: toTodo(t)}, nil
}

func (s *GRPCServer) CreateTodo(ctx context.Context, req *pb.CreateTodoRequest) (*pb.TodoResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	t, err := s.todos.Create(ctx, userID, models.TodoFields{
		Name:        req.GetName(),
		Description: req.GetDescription(),
		Complete:    req.GetComplete(),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.TodoResponse{Todo: toTodo(t)}, nil
}

// UpdateTodo applies only the fields that are set. Fields the server does
// not know (sent by a newer client) are rejected instead of being dropped.
func (s *GRPCServer) UpdateTodo(ctx context.Context, req *pb.UpdateTodoRequest) (*pb.StatusResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if len(req.ProtoReflect().GetUnknown()) > 0 {
		return nil, toStatus(fmt.Errorf("%w in patch", common.ErrUnknownField))
	}

	patch := models.TodoPatch{Name: req.Name, Description: req.Description, Complete: req.Complete}
	if err := s.todos.Update(ctx, userID, req.GetId(), patch); err != nil {
		return nil, toStatus(err)
	}
	return &pb.StatusResponse{Message: "todo " + req.GetId() + " updated"}, nil
}

func (s *GRPCServer) DeleteTodo(ctx context.Context, req *pb.DeleteTodoRequest) (*pb.StatusResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.todos.Delete(ctx, userID, req.GetId()); err != nil {
		return nil, toStatus(err)
	}
	return &pb.StatusResponse{Message: "todo " + req.GetId() + " deleted"}, nil
}

func (s *GRPCServer) UploadPhoto(ctx context.Context, req *pb.UploadPhotoRequest) (*pb.UploadPhotoResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if s.maxUpload > 0 && int64(len(req.GetData())) > s.maxUpload {
		return nil, status.Error(codes.ResourceExhausted, "upload too large")
	}
	ref, err := s.attachments.Replace(ctx, userID, req.GetData(), req.GetFilename())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.UploadPhotoResponse{Ref: ref}, nil
}

func (s *GRPCServer) DownloadPhoto(ctx context.Context, _ *pb.DownloadPhotoRequest) (*pb.DownloadPhotoResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	a, err := s.attachments.FetchForUser(ctx, userID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.DownloadPhotoResponse{Label: a.Label, ContentType: a.ContentType, Data: a.Data}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}
