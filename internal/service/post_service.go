package service

import (
	"SocialNetwork/internal/api/dto"
	"SocialNetwork/internal/model"
	"SocialNetwork/internal/pkg/util"
	"SocialNetwork/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, postDTO *dto.CreatePostDTO) (*dto.PostDTO, error)
	GetPost(ctx context.Context, postID uint64) (*dto.PostDTO, error)
	ListPosts(ctx context.Context, page, pageSize int) (*dto.PageDTO[*dto.PostDTO], error)
}

type postServiceImpl struct {
	postRepo repository.PostRepo
	likeRepo repository.LikeRepo
}

func NewPostService(postRepo repository.PostRepo, likeRepo repository.LikeRepo) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
		likeRepo: likeRepo,
	}
}

func (s *postServiceImpl) CreatePost(ctx context.Context, userID uint64, postDTO *dto.CreatePostDTO) (*dto.PostDTO, error) {
	post := &model.Post{
		UserID:    userID,
		Title:     postDTO.Title,
		Body:      postDTO.Body,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, storageError("create post", err)
	}
	return toPostDTO(post)
}

// GetPost 帖子详情，附带实时点赞数
func (s *postServiceImpl) GetPost(ctx context.Context, postID uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, storageError("get post", err)
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	likes, err := s.likeRepo.GetLikeCountByPostID(ctx, postID)
	if err != nil {
		return nil, storageError("count likes", err)
	}

	postDTO, err := toPostDTO(post)
	if err != nil {
		return nil, err
	}
	postDTO.Likes = &likes
	return postDTO, nil
}

func (s *postServiceImpl) ListPosts(ctx context.Context, page, pageSize int) (*dto.PageDTO[*dto.PostDTO], error) {
	offset, limit := util.Paginate(page, pageSize)
	posts, total, err := s.postRepo.ListPosts(ctx, limit, offset)
	if err != nil {
		return nil, storageError("list posts", err)
	}

	items := make([]*dto.PostDTO, 0, len(posts))
	if err = copier.Copy(&items, &posts); err != nil {
		return nil, err
	}
	return &dto.PageDTO[*dto.PostDTO]{
		Items:    items,
		Total:    total,
		Page:     offset/limit + 1,
		PageSize: limit,
	}, nil
}

func toPostDTO(post *model.Post) (*dto.PostDTO, error) {
	postDTO := &dto.PostDTO{}
	if err := copier.Copy(postDTO, post); err != nil {
		return nil, err
	}
	return postDTO, nil
}
