package bot

import (
	"SocialNetwork/internal/api/config"
	"context"
	"fmt"
	log "log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type botUser struct {
	username string
	password string
	token    string
}

// Summary 一次运行的统计
type Summary struct {
	Users        int
	Posts        int
	Likes        int64
	AlreadyLiked int64
	Failures     int64
}

// Runner 按 注册 → 登录 → 发帖 → 点赞 的顺序执行
type Runner struct {
	client *Client
	cfg    config.BotConfig
	rand   *rand.Rand
	mu     sync.Mutex
}

func NewRunner(client *Client, cfg config.BotConfig, seed uint64) *Runner {
	return &Runner{
		client: client,
		cfg:    cfg,
		rand:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{}

	users, err := r.signupAndLogin(ctx, summary)
	if err != nil {
		return summary, err
	}
	summary.Users = len(users)
	if len(users) == 0 {
		return summary, fmt.Errorf("no user could sign up")
	}

	postIDs, err := r.createPosts(ctx, users, summary)
	if err != nil {
		return summary, err
	}
	summary.Posts = len(postIDs)
	if len(postIDs) == 0 {
		log.WarnContext(ctx, "no posts available to like")
		return summary, nil
	}

	return summary, r.likePosts(ctx, users, postIDs, summary)
}

func (r *Runner) signupAndLogin(ctx context.Context, summary *Summary) ([]*botUser, error) {
	var (
		mu    sync.Mutex
		users = make([]*botUser, 0, r.cfg.NumberOfUsers)
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Concurrency)
	for i := 0; i < r.cfg.NumberOfUsers; i++ {
		g.Go(func() error {
			u := newBotUser()
			if _, err := r.client.Signup(ctx, u.username, u.username+"@example.com", u.password); err != nil {
				atomic.AddInt64(&summary.Failures, 1)
				log.WarnContext(ctx, "signup failed", "username", u.username, "err", err)
				return ctx.Err()
			}
			login, err := r.client.Login(ctx, u.username, u.password)
			if err != nil {
				atomic.AddInt64(&summary.Failures, 1)
				log.WarnContext(ctx, "login failed", "username", u.username, "err", err)
				return ctx.Err()
			}
			u.token = login.Access
			log.InfoContext(ctx, "user ready", "username", u.username)

			mu.Lock()
			users = append(users, u)
			mu.Unlock()
			return nil
		})
	}
	return users, g.Wait()
}

func (r *Runner) createPosts(ctx context.Context, users []*botUser, summary *Summary) ([]uint64, error) {
	var (
		mu      sync.Mutex
		postIDs = make([]uint64, 0)
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Concurrency)
	for _, u := range users {
		n := r.intn(r.cfg.MaxPostsPerUser) + 1
		for i := 0; i < n; i++ {
			g.Go(func() error {
				title := fmt.Sprintf("Post %d by %s", i+1, u.username[:12])
				body := strings.Repeat("lorem ipsum ", r.intn(20)+1)
				post, err := r.client.CreatePost(ctx, u.token, title, body)
				if err != nil {
					atomic.AddInt64(&summary.Failures, 1)
					log.WarnContext(ctx, "create post failed", "username", u.username, "err", err)
					return ctx.Err()
				}
				mu.Lock()
				postIDs = append(postIDs, post.ID)
				mu.Unlock()
				return nil
			})
		}
	}
	return postIDs, g.Wait()
}

func (r *Runner) likePosts(ctx context.Context, users []*botUser, postIDs []uint64, summary *Summary) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Concurrency)
	for _, u := range users {
		n := r.intn(r.cfg.MaxLikesPerUser) + 1
		for i := 0; i < n; i++ {
			postID := postIDs[r.intn(len(postIDs))]
			g.Go(func() error {
				status, err := r.client.Like(ctx, u.token, postID)
				if err != nil {
					atomic.AddInt64(&summary.Failures, 1)
					log.WarnContext(ctx, "like failed", "post_id", postID, "err", err)
					return ctx.Err()
				}
				if status == "liked" {
					atomic.AddInt64(&summary.Likes, 1)
				} else {
					atomic.AddInt64(&summary.AlreadyLiked, 1)
				}
				return nil
			})
		}
	}
	return g.Wait()
}

func (r *Runner) intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.IntN(n)
}

func newBotUser() *botUser {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return &botUser{
		username: "bot_" + id[:16],
		// 满足密码策略：大写字母、数字、长度
		password: "Bot" + id[16:28] + "7",
	}
}
