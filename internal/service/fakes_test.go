package service

import (
	"SocialNetwork/internal/model"
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint64
	users  map[uint64]*model.User
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint64]*model.User)}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for _, u := range r.users {
		if u.Username == user.Username {
			return errors.Wrap(gorm.ErrDuplicatedKey, "create user")
		}
	}
	r.nextID++
	user.ID = r.nextID
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) TouchLastLogin(_ context.Context, id uint64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.LastLogin = &at
	}
	return r.err
}

func (r *fakeUserRepo) TouchLastRequest(_ context.Context, id uint64, at time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return 0, nil
	}
	u.LastRequest = &at
	return 1, nil
}

type fakePostRepo struct {
	mu     sync.Mutex
	nextID uint64
	posts  map[uint64]*model.Post
	err    error
}

func newFakePostRepo(ids ...uint64) *fakePostRepo {
	r := &fakePostRepo{posts: make(map[uint64]*model.Post)}
	for _, id := range ids {
		r.posts[id] = &model.Post{ID: id, UserID: 1, Title: "t", Body: "b", CreatedAt: time.Now().UTC()}
		if id > r.nextID {
			r.nextID = id
		}
	}
	return r
}

func (r *fakePostRepo) CreatePost(_ context.Context, post *model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.nextID++
	post.ID = r.nextID
	cp := *post
	r.posts[post.ID] = &cp
	return nil
}

func (r *fakePostRepo) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePostRepo) ListPosts(_ context.Context, limit, offset int) ([]*model.Post, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, 0, r.err
	}
	posts := make([]*model.Post, 0)
	for id := r.nextID; id > 0; id-- {
		if p, ok := r.posts[id]; ok {
			posts = append(posts, p)
		}
	}
	total := int64(len(posts))
	if offset >= len(posts) {
		return []*model.Post{}, total, nil
	}
	posts = posts[offset:]
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, total, nil
}

func (r *fakePostRepo) PostExists(_ context.Context, id uint64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.posts[id]
	return ok, nil
}

type likeKey struct {
	userID, postID uint64
}

// fakeLikeRepo 用互斥锁模拟唯一索引与条件删除
type fakeLikeRepo struct {
	mu       sync.Mutex
	likes    map[likeKey]time.Time
	err      error
	aggCalls int
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[likeKey]time.Time)}
}

func (r *fakeLikeRepo) CreateLike(_ context.Context, like *model.Like) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	k := likeKey{like.UserID, like.PostID}
	if _, ok := r.likes[k]; ok {
		return errors.Wrap(gorm.ErrDuplicatedKey, "create like")
	}
	r.likes[k] = like.CreatedAt
	return nil
}

func (r *fakeLikeRepo) DeleteLike(_ context.Context, userID, postID uint64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	k := likeKey{userID, postID}
	if _, ok := r.likes[k]; !ok {
		return 0, nil
	}
	delete(r.likes, k)
	return 1, nil
}

func (r *fakeLikeRepo) GetLikeCountByPostID(_ context.Context, postID uint64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	var n int64
	for k := range r.likes {
		if k.postID == postID {
			n++
		}
	}
	return n, nil
}

// CountLikesByDay 刻意不排序，由调用方负责
func (r *fakeLikeRepo) CountLikesByDay(_ context.Context, start, end time.Time) ([]model.DailyLikes, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aggCalls++
	if r.err != nil {
		return nil, r.err
	}
	counts := make(map[time.Time]int64)
	for _, at := range r.likes {
		if at.Before(start) || !at.Before(end) {
			continue
		}
		counts[truncateDay(at)]++
	}
	rows := make([]model.DailyLikes, 0, len(counts))
	for day, n := range counts {
		rows = append(rows, model.DailyLikes{Day: day, Count: n})
	}
	return rows, nil
}

func (r *fakeLikeRepo) put(userID, postID uint64, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.likes[likeKey{userID, postID}] = at
}

func (r *fakeLikeRepo) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.aggCalls
}
