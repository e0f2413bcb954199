package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"postboard/internal/model"
)

type MockPostAPI struct {
	mock.Mock
}

func (m *MockPostAPI) ListPosts(ctx context.Context) ([]model.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostAPI) GetPost(ctx context.Context, id int) (model.Post, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *MockPostAPI) ListComments(ctx context.Context, postID int) ([]model.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockPostAPI) CreatePost(ctx context.Context, draft model.PostDraft) (model.Post, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *MockPostAPI) UpdatePost(ctx context.Context, id int, patch model.PostPatch) (model.Post, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *MockPostAPI) DeletePost(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
