package usecase

import (
	"context"

	"team-collab-app/dto/req"
	"team-collab-app/dto/res"
)

type AuthUsecase interface {
	SignUp(ctx context.Context, request *req.SignUpRequest) (res.SignUpResponse, error)
	SignIn(ctx context.Context, request *req.SignInRequest) (res.SignInResponse, error)
}
