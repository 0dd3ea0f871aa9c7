package handler

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/accounts/internal/model"
)

func handleError(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, model.ErrMissingEmail),
		errors.Is(err, model.ErrInvalidRole),
		errors.Is(err, model.ErrPrivilegedFlags),
		errors.Is(err, model.ErrInvalidPermission):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrEmailTaken):
		return status.Error(codes.AlreadyExists, model.ErrEmailTaken.Error())
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, "account not found")
	case errors.Is(err, model.ErrInvalidCredentials), errors.Is(err, model.ErrInactiveAccount):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, model.ErrPermissionDenied):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, model.ErrExportDisabled):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
