package config

// Config 配置主体
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	LLM         LLMConfig         `mapstructure:"llm"`
	Image       ImageConfig       `mapstructure:"image"`
	Xiaohongshu XiaohongshuConfig `mapstructure:"xiaohongshu"`
	Wechat      WechatConfig      `mapstructure:"wechat"`
	Data        DataConfig        `mapstructure:"data"`
	Schedule    ScheduleConfig    `mapstructure:"schedule"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// LLMConfig 文案生成大模型配置
type LLMConfig struct {
	URL    string `mapstructure:"url"`
	Model  string `mapstructure:"model"`
	ApiKey string `mapstructure:"api_key"`
}

// ImageConfig 图像生成接口配置
type ImageConfig struct {
	URL     string `mapstructure:"url"`
	Model   string `mapstructure:"model"`
	ApiKey  string `mapstructure:"api_key"`
	Size    string `mapstructure:"size"`
	Quality string `mapstructure:"quality"`
}

// XiaohongshuConfig 小红书发布配置，实际发布由外部命令完成
type XiaohongshuConfig struct {
	Enabled        bool     `mapstructure:"enabled"`
	TitleMaxLength int      `mapstructure:"title_max_length"`
	PublishCmd     string   `mapstructure:"publish_cmd"`
	PublishArgs    []string `mapstructure:"publish_args"`
	TimeoutSeconds int      `mapstructure:"timeout_seconds"`
}

// WechatConfig 公众号发布配置
type WechatConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	AppID          string `mapstructure:"appid"`
	AppSecret      string `mapstructure:"appsecret"`
	TitleMaxLength int    `mapstructure:"title_max_length"`
}

// DataConfig 数据与内容目录
type DataConfig struct {
	Dir        string `mapstructure:"dir"`
	ContentDir string `mapstructure:"content_dir"`
}

// ScheduleConfig 定时任务 cron 表达式（带秒字段）
type ScheduleConfig struct {
	Morning string `mapstructure:"morning"`
	Evening string `mapstructure:"evening"`
	Report  string `mapstructure:"report"`
}
