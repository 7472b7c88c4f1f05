// Package bot 模拟用户注册、登录、发帖与点赞，用于填充数据和压测。
package bot

import (
	"SocialNetwork/internal/api/dto"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

type envelope[T any] struct {
	Code    int               `json:"code"`
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    T                 `json:"data"`
	Errors  map[string]string `json:"errors"`
}

// APIError 非预期状态码
type APIError struct {
	Op         string
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: http %d %s %s", e.Op, e.StatusCode, e.Status, e.Message)
}

// Client 社交网络 API 客户端
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)
	return &Client{http: client}
}

func (c *Client) Signup(ctx context.Context, username, email, password string) (*dto.UserDTO, error) {
	var res envelope[*dto.UserDTO]
	resp, err := c.http.R().SetContext(ctx).
		SetBody(dto.RegisterDTO{Username: username, Email: email, Password: password}).
		SetResult(&res).SetError(&res).
		Post("/users/signup")
	if err := check("signup", resp, err, &res.Status, &res.Message, 201); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (*dto.LoginDTO, error) {
	var res envelope[*dto.LoginDTO]
	resp, err := c.http.R().SetContext(ctx).
		SetBody(dto.CredentialDTO{Username: username, Password: password}).
		SetResult(&res).SetError(&res).
		Post("/users/login")
	if err := check("login", resp, err, &res.Status, &res.Message, 200); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (c *Client) CreatePost(ctx context.Context, token, title, body string) (*dto.PostDTO, error) {
	var res envelope[*dto.PostDTO]
	resp, err := c.http.R().SetContext(ctx).
		SetAuthToken(token).
		SetBody(dto.CreatePostDTO{Title: title, Body: body}).
		SetResult(&res).SetError(&res).
		Post("/posts")
	if err := check("create post", resp, err, &res.Status, &res.Message, 201); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// Like 返回响应中的 status，已点赞不视为错误
func (c *Client) Like(ctx context.Context, token string, postID uint64) (string, error) {
	var res envelope[json.RawMessage]
	resp, err := c.http.R().SetContext(ctx).
		SetAuthToken(token).
		SetPathParam("post_id", strconv.FormatUint(postID, 10)).
		SetResult(&res).SetError(&res).
		Post("/posts/{post_id}/like")
	if err := check("like", resp, err, &res.Status, &res.Message, 200, 400); err != nil {
		return "", err
	}
	return res.Status, nil
}

func check(op string, resp *resty.Response, err error, status, message *string, expected ...int) error {
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	for _, code := range expected {
		if resp.StatusCode() == code {
			return nil
		}
	}
	return &APIError{Op: op, StatusCode: resp.StatusCode(), Status: *status, Message: *message}
}
