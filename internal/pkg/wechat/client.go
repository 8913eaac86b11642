package wechat

import (
	"PetOps/internal/api/config"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// 微信 access_token 实际有效期 7200 秒，留出安全余量
const tokenTTL = 7000 * time.Second

// ErrNoCredentials 未配置公众号凭证
var ErrNoCredentials = errors.New("未配置公众号APPID或APPSECRET")

// Client 公众号接口客户端：换取 token、上传封面、创建草稿
type Client struct {
	http   *resty.Client
	tokens *TokenCache
}

func NewClient() *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL("https://api.weixin.qq.com").
			SetTimeout(30 * time.Second),
	}
	c.tokens = NewTokenCache(tokenTTL, c.fetchToken)
	return c
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	ErrCode     int    `json:"errcode"`
	ErrMsg      string `json:"errmsg"`
}

func (c *Client) fetchToken(ctx context.Context) (string, error) {
	cfg := config.Cfg.Wechat
	if cfg.AppID == "" || cfg.AppSecret == "" {
		return "", ErrNoCredentials
	}

	var result tokenResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"grant_type": "client_credential",
			"appid":      cfg.AppID,
			"secret":     cfg.AppSecret,
		}).
		SetResult(&result).
		Get("/cgi-bin/token")
	if err != nil {
		return "", err
	}
	if resp.IsError() || result.AccessToken == "" {
		return "", fmt.Errorf("获取access_token失败: errcode=%d errmsg=%s", result.ErrCode, result.ErrMsg)
	}

	return result.AccessToken, nil
}

// AccessToken 返回可用的 access_token，命中缓存时不发起网络请求
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	return c.tokens.Get(ctx)
}

type uploadResponse struct {
	MediaID string `json:"media_id"`
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
}

// UploadCover 上传封面图并返回 media_id
func (c *Client) UploadCover(ctx context.Context, imagePath string) (string, error) {
	token, err := c.AccessToken(ctx)
	if err != nil {
		return "", err
	}

	// 封面统一转成受控尺寸的 JPEG，转换失败时用原图兜底
	cover, err := normalizeCover(imagePath)
	if err != nil {
		log.WarnContext(ctx, "封面图转换失败，使用原图上传", "path", imagePath, "err", err)
		cover = imagePath
	}

	var result uploadResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("access_token", token).
		SetFile("media", cover).
		SetResult(&result).
		Post("/cgi-bin/media/uploadimg")
	if err != nil {
		return "", err
	}
	if resp.IsError() || result.MediaID == "" {
		return "", fmt.Errorf("封面上传失败: errcode=%d errmsg=%s", result.ErrCode, result.ErrMsg)
	}

	return result.MediaID, nil
}

type draftArticle struct {
	Title              string `json:"title"`
	Content            string `json:"content"`
	ThumbMediaID       string `json:"thumb_media_id"`
	ShowCoverPic       int    `json:"show_cover_pic"`
	NeedOpenComment    int    `json:"need_open_comment"`
	OnlyFansCanComment int    `json:"only_fans_can_comment"`
}

type draftRequest struct {
	Articles []draftArticle `json:"articles"`
}

type draftResponse struct {
	MediaID string `json:"media_id"`
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
}

// CreateDraft 创建图文草稿并返回草稿 media_id
func (c *Client) CreateDraft(ctx context.Context, title string, content string, thumbMediaID string) (string, error) {
	token, err := c.AccessToken(ctx)
	if err != nil {
		return "", err
	}

	var result draftResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("access_token", token).
		SetBody(&draftRequest{
			Articles: []draftArticle{
				{
					Title:           title,
					Content:         content,
					ThumbMediaID:    thumbMediaID,
					ShowCoverPic:    1,
					NeedOpenComment: 1,
				},
			},
		}).
		SetResult(&result).
		Post("/cgi-bin/draft/add")
	if err != nil {
		return "", err
	}
	if resp.IsError() || result.ErrCode != 0 || result.MediaID == "" {
		return "", fmt.Errorf("草稿创建失败: errcode=%d errmsg=%s", result.ErrCode, result.ErrMsg)
	}

	return result.MediaID, nil
}

type publishResponse struct {
	PublishID int64  `json:"publish_id"`
	ErrCode   int    `json:"errcode"`
	ErrMsg    string `json:"errmsg"`
}

// PublishDraft 提交草稿发布
func (c *Client) PublishDraft(ctx context.Context, mediaID string) (int64, error) {
	token, err := c.AccessToken(ctx)
	if err != nil {
		return 0, err
	}

	var result publishResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("access_token", token).
		SetBody(map[string]string{"media_id": mediaID}).
		SetResult(&result).
		Post("/cgi-bin/freepublish/submit")
	if err != nil {
		return 0, err
	}
	if resp.IsError() || result.ErrCode != 0 {
		return 0, fmt.Errorf("草稿发布失败: errcode=%d errmsg=%s", result.ErrCode, result.ErrMsg)
	}

	return result.PublishID, nil
}
